package forms

import (
	"embed"
	"io/fs"
)

//go:embed definitions/*.yaml
var embeddedDefinitions embed.FS

// Built-in form ids.
const (
	VolunteerForm = "cadastro-voluntario"
	DonorForm     = "cadastro-doador"
	ContactForm   = "contato"
)

// DefinitionsFS exposes the embedded form definitions.
func DefinitionsFS() fs.FS {
	sub, err := fs.Sub(embeddedDefinitions, "definitions")
	if err != nil {
		return embeddedDefinitions
	}
	return sub
}
