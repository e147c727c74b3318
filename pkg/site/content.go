package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Info describes the organisation shown in the page header.
type Info struct {
	Name    string `json:"name" yaml:"name"`
	Tagline string `json:"tagline" yaml:"tagline"`
}

// Project is one social project card.
type Project struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Category     string   `json:"category" yaml:"category"`
	BadgeClass   string   `json:"badgeClass" yaml:"badgeClass"`
	Image        string   `json:"image" yaml:"image"`
	AltText      string   `json:"altText" yaml:"altText"`
	Description  string   `json:"description" yaml:"description"`
	Achievements []string `json:"achievements" yaml:"achievements"`
	Supporters   int      `json:"supporters" yaml:"supporters"`
}

// About is one card of the "about us" section.
type About struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// Content is everything the page is built from.
type Content struct {
	Site     Info      `json:"site" yaml:"site"`
	Projects []Project `json:"projects" yaml:"projects"`
	About    []About   `json:"about" yaml:"about"`
}

// ParseContent decodes YAML (or JSON, which YAML accepts) content.
func ParseContent(data []byte) (Content, error) {
	var content Content
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &content); err != nil {
			return Content{}, fmt.Errorf("site: parse content: %w", err)
		}
		return content.normalise(), nil
	}
	if err := yaml.Unmarshal(data, &content); err != nil {
		return Content{}, fmt.Errorf("site: parse content: %w", err)
	}
	return content.normalise(), nil
}

// LoadContentFile reads and parses a content file from disk.
func LoadContentFile(path string) (Content, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Content{}, fmt.Errorf("site: read %s: %w", path, err)
	}
	return ParseContent(data)
}

// DefaultContent returns the embedded sample content.
func DefaultContent() Content {
	data, err := embeddedContent.ReadFile("content/site.yaml")
	if err != nil {
		panic(err)
	}
	content, err := ParseContent(data)
	if err != nil {
		panic(err)
	}
	return content
}

func (c Content) normalise() Content {
	projects := make([]Project, len(c.Projects))
	for i, p := range c.Projects {
		p.ID = strings.TrimSpace(p.ID)
		if p.ID == "" {
			p.ID = Slug(p.Title)
		}
		if p.AltText == "" {
			p.AltText = p.Title
		}
		projects[i] = p
	}
	c.Projects = projects
	return c
}

// Slug turns a title into a lowercase ASCII identifier, dropping accents:
// "Educação para Todos" becomes "educacao-para-todos".
func Slug(title string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		title,
	)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
