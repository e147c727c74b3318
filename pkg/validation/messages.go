package validation

import (
	"strings"
	"sync"
)

// DefaultLocale is used when a locale has no entry for a key.
const DefaultLocale = "pt-BR"

// Catalog translates message keys into user facing text per locale.
type Catalog struct {
	mu       sync.RWMutex
	messages map[string]map[string]string
}

// NewCatalog returns a catalog seeded with pt-BR and en messages.
func NewCatalog() *Catalog {
	c := &Catalog{messages: make(map[string]map[string]string)}
	c.Register(DefaultLocale, map[string]string{
		MessageRequired:         "Este campo é obrigatório",
		MessageInvalidEmail:     "Digite um email válido",
		MessageInvalidPhone:     "Digite um telefone válido",
		MessageInvalidCPF:       "CPF inválido",
		MessageInvalidCEP:       "CEP inválido",
		MessageInvalidBirthDate: "Data de nascimento inválida",
		MessageNameTooShort:     "Nome deve ter pelo menos 2 caracteres",
		MessageSelectAtLeastOne: "Selecione pelo menos uma forma de ajudar",
		MessageValid:            "Campo válido",
	})
	c.Register("en", map[string]string{
		MessageRequired:         "This field is required",
		MessageInvalidEmail:     "Enter a valid email",
		MessageInvalidPhone:     "Enter a valid phone number",
		MessageInvalidCPF:       "Invalid CPF",
		MessageInvalidCEP:       "Invalid CEP",
		MessageInvalidBirthDate: "Invalid birth date",
		MessageNameTooShort:     "Name must have at least 2 characters",
		MessageSelectAtLeastOne: "Select at least one way to help",
		MessageValid:            "Valid field",
	})
	return c
}

// Register merges messages into locale, overwriting existing keys.
func (c *Catalog) Register(locale string, messages map[string]string) {
	locale = strings.TrimSpace(locale)
	if locale == "" || len(messages) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	target, ok := c.messages[locale]
	if !ok {
		target = make(map[string]string, len(messages))
		c.messages[locale] = target
	}
	for key, text := range messages {
		target[key] = text
	}
}

// Translate resolves key for locale, falling back to the base language
// ("pt" for "pt-PT"), then DefaultLocale, then the key itself.
func (c *Catalog) Translate(locale, key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, candidate := range localeChain(locale) {
		if text, ok := c.messages[candidate][key]; ok {
			return text
		}
	}
	return key
}

// Describe returns the text shown next to a field: the translated failure
// message, or the "valid" text for passing results.
func (c *Catalog) Describe(locale string, res Result) string {
	if res.Valid {
		return c.Translate(locale, MessageValid)
	}
	return c.Translate(locale, res.Message)
}

func localeChain(locale string) []string {
	locale = strings.TrimSpace(locale)
	chain := make([]string, 0, 3)
	if locale != "" {
		chain = append(chain, locale)
		if base, _, ok := strings.Cut(locale, "-"); ok && base != "" {
			chain = append(chain, base)
		}
	}
	return append(chain, DefaultLocale)
}
