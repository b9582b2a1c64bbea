// Package i18n provides internationalization support for error messages.
package i18n

import (
	"bytes"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
)

// Code is a machine-readable error code (duplicated from errors package to avoid cycle).
type Code = string

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale   string
	messages map[Code]string
}

var (
	catalogsMu sync.RWMutex
	catalogs   = map[string]*Catalog{}

	matcherMu sync.RWMutex
	matcher   language.Matcher
	locales   []string
)

// GetCatalog returns the catalog best matching the given locale tag.
// Matching uses BCP 47 semantics, so "en-GB" resolves to the en-US catalog
// when no closer locale is registered. Falls back to en-US.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = BaseLocale
	}

	if c, ok := lookupCatalog(requested); ok {
		return c
	}

	resolved := matchLocale(requested)
	if c, ok := lookupCatalog(resolved); ok {
		return c
	}
	c, _ := lookupCatalog(BaseLocale)
	return c
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template with the given metadata.
// Falls back to the error code itself if no template is found.
// Templates are always executed even with nil/empty metadata to ensure
// consistent output (template variables without metadata render as empty).
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	tmpl, ok := c.messages[code]
	if !ok {
		return code
	}

	if metadata == nil {
		metadata = map[string]string{}
	}

	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}

// RegisterCatalog registers a catalog for the given locale and rebuilds the
// locale matcher. Callers should only use this during init or in
// single-threaded test setup.
func RegisterCatalog(locale string, cat *Catalog) {
	catalogsMu.Lock()
	catalogs[locale] = cat
	catalogsMu.Unlock()
	rebuildMatcher()
}

// NewCatalog creates a new catalog with the given locale and messages.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	cloned := make(map[Code]string, len(messages))
	for key, value := range messages {
		cloned[key] = value
	}
	return &Catalog{
		locale:   locale,
		messages: cloned,
	}
}

func lookupCatalog(locale string) (*Catalog, bool) {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	cat, ok := catalogs[locale]
	return cat, ok
}

// matchLocale resolves a requested tag to the closest registered locale.
func matchLocale(requested string) string {
	tag, err := language.Parse(requested)
	if err != nil {
		return BaseLocale
	}

	matcherMu.RLock()
	m := matcher
	known := locales
	matcherMu.RUnlock()
	if m == nil || len(known) == 0 {
		return BaseLocale
	}

	_, index, _ := m.Match(tag)
	if index < 0 || index >= len(known) {
		return BaseLocale
	}
	return known[index]
}

func rebuildMatcher() {
	catalogsMu.RLock()
	registered := make([]string, 0, len(catalogs))
	// Base locale first so it wins ties and acts as the matcher default.
	if _, ok := catalogs[BaseLocale]; ok {
		registered = append(registered, BaseLocale)
	}
	for locale := range catalogs {
		if locale != BaseLocale {
			registered = append(registered, locale)
		}
	}
	catalogsMu.RUnlock()

	tags := make([]language.Tag, 0, len(registered))
	names := make([]string, 0, len(registered))
	for _, locale := range registered {
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, locale)
	}
	if len(tags) == 0 {
		return
	}

	matcherMu.Lock()
	matcher = language.NewMatcher(tags)
	locales = names
	matcherMu.Unlock()
}

func init() {
	RegisterCatalog(BaseLocale, enUSCatalog)
}
