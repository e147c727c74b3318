package template

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// Built-in template names.
const (
	ProjectCard        = "project-card"
	AboutCard          = "about-card"
	VolunteerItem      = "volunteer-item"
	ValidationFeedback = "validation-feedback"
)

// TemplatesFS exposes the embedded site fragments.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
