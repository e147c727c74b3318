package ongkit

import (
	"io/fs"
	"testing"
)

func TestEmbeddedFS(t *testing.T) {
	cases := map[string]struct {
		fsys fs.FS
		file string
	}{
		"templates": {EmbeddedTemplates(), "project-card.tmpl"},
		"forms":     {EmbeddedForms(), "cadastro-voluntario.yaml"},
		"layouts":   {EmbeddedLayouts(), "index.html"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := fs.Stat(tc.fsys, tc.file); err != nil {
				t.Fatalf("expected %s in embedded fs: %v", tc.file, err)
			}
		})
	}
}
