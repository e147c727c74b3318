package site

import (
	"embed"
	"io/fs"
)

// DefaultLayout is the layout file executed by Build.
const DefaultLayout = "index.html"

//go:embed layouts/*.html
var embeddedLayouts embed.FS

//go:embed content/site.yaml
var embeddedContent embed.FS

// LayoutsFS exposes the embedded pongo2 layouts.
func LayoutsFS() fs.FS {
	sub, err := fs.Sub(embeddedLayouts, "layouts")
	if err != nil {
		return embeddedLayouts
	}
	return sub
}
