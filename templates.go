package ongkit

import (
	"io/fs"

	"github.com/goliatone/go-ongkit/pkg/forms"
	"github.com/goliatone/go-ongkit/pkg/site"
	"github.com/goliatone/go-ongkit/pkg/template"
)

// EmbeddedTemplates exposes the built-in card fragments so callers can copy or
// extend them without importing the template package directly.
func EmbeddedTemplates() fs.FS {
	return template.TemplatesFS()
}

// EmbeddedForms exposes the built-in form definitions.
func EmbeddedForms() fs.FS {
	return forms.DefinitionsFS()
}

// EmbeddedLayouts exposes the pongo2 page layouts used by the site builder.
func EmbeddedLayouts() fs.FS {
	return site.LayoutsFS()
}
