package forms

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-ongkit/pkg/validation"
)

// Catalog holds form declarations by id.
type Catalog struct {
	forms map[string]Form
}

// NewCatalog builds a catalog from already decoded forms.
func NewCatalog(forms ...Form) (*Catalog, error) {
	c := &Catalog{forms: make(map[string]Form, len(forms))}
	for _, form := range forms {
		if err := c.add(form, "<memory>"); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadFS walks fsys and decodes every JSON/YAML form definition it finds.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{forms: make(map[string]Form)}
	if fsys == nil {
		return c, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("forms: read %s: %w", path, err)
		}
		form, err := parseForm(data, path)
		if err != nil {
			return err
		}
		return c.add(form, path)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Defaults returns the catalog of embedded form definitions.
func Defaults() *Catalog {
	c, err := LoadFS(DefinitionsFS())
	if err != nil {
		// Embedded definitions are covered by tests.
		panic(err)
	}
	return c
}

// Form returns the declaration for id.
func (c *Catalog) Form(id string) (Form, error) {
	if c == nil {
		return Form{}, fmt.Errorf("%w: %q", ErrFormNotFound, id)
	}
	form, ok := c.forms[strings.TrimSpace(id)]
	if !ok {
		return Form{}, fmt.Errorf("%w: %q", ErrFormNotFound, id)
	}
	return form, nil
}

// IDs returns the sorted form ids.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.forms))
	for id := range c.forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Merge copies every form of other into c, replacing forms with the same id.
func (c *Catalog) Merge(other *Catalog) {
	if c == nil || other == nil {
		return
	}
	for id, form := range other.forms {
		c.forms[id] = form
	}
}

func (c *Catalog) add(form Form, path string) error {
	id := strings.TrimSpace(form.ID)
	if id == "" {
		return fmt.Errorf("forms: file %s defines a form without id", path)
	}
	if _, exists := c.forms[id]; exists {
		return fmt.Errorf("%w: %q (file %s)", ErrDuplicateForm, id, path)
	}
	form.ID = id
	form = normaliseForm(form)
	c.forms[id] = form
	return nil
}

func parseForm(data []byte, path string) (Form, error) {
	var form Form
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &form); err != nil {
			return Form{}, fmt.Errorf("forms: parse %s: %w", path, err)
		}
		return form, nil
	}
	if err := yaml.Unmarshal(data, &form); err != nil {
		return Form{}, fmt.Errorf("forms: parse %s: %w", path, err)
	}
	return form, nil
}

func normaliseForm(form Form) Form {
	fields := make([]FieldSpec, 0, len(form.Fields))
	for _, field := range form.Fields {
		field.Name = strings.TrimSpace(field.Name)
		if field.Name == "" {
			continue
		}
		field.Type = validation.ParseFieldType(string(field.Type))
		if field.Label == "" {
			field.Label = field.Name
		}
		fields = append(fields, field)
	}
	form.Fields = fields
	return form
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
