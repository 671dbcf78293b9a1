// Package i18n provides localized user-facing error messages.
package i18n

import (
	"bytes"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
)

// BaseLocale is the fallback locale for every lookup.
const BaseLocale = "en-US"

// Catalog maps error codes to message templates for one locale.
type Catalog struct {
	locale   string
	messages map[string]string
}

var (
	catalogsMu sync.RWMutex
	catalogs   = map[string]*Catalog{}

	matcherMu sync.Mutex
	matcher   language.Matcher
	supported []string
)

func init() {
	RegisterCatalog(NewCatalog(BaseLocale, enUS))
	RegisterCatalog(NewCatalog("sv-SE", svSE))
}

// GetCatalog returns the catalog best matching locale, which may be a BCP 47
// tag or an Accept-Language style list. Unknown or empty locales resolve to
// BaseLocale.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		return lookupCatalog(BaseLocale)
	}
	if c := lookupCatalog(requested); c != nil {
		return c
	}
	return lookupCatalog(match(requested))
}

// RegisterCatalog adds or replaces the catalog for its locale.
func RegisterCatalog(c *Catalog) {
	if c == nil {
		return
	}
	catalogsMu.Lock()
	catalogs[c.locale] = c
	catalogsMu.Unlock()

	matcherMu.Lock()
	matcher = nil
	matcherMu.Unlock()
}

// NewCatalog creates a catalog for locale holding a copy of messages.
func NewCatalog(locale string, messages map[string]string) *Catalog {
	cloned := make(map[string]string, len(messages))
	for key, value := range messages {
		cloned[key] = value
	}
	return &Catalog{locale: locale, messages: cloned}
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template for code with metadata. It falls back
// to the code itself when no template exists and to the raw template when it
// cannot be rendered.
func (c *Catalog) Format(code string, metadata map[string]string) string {
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

func lookupCatalog(locale string) *Catalog {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	return catalogs[locale]
}

func match(requested string) string {
	desired, _, err := language.ParseAcceptLanguage(requested)
	if err != nil || len(desired) == 0 {
		return BaseLocale
	}

	matcherMu.Lock()
	if matcher == nil {
		rebuildMatcher()
	}
	m, locales := matcher, supported
	matcherMu.Unlock()

	_, index, confidence := m.Match(desired...)
	if confidence == language.No {
		return BaseLocale
	}
	return locales[index]
}

// rebuildMatcher must be called with matcherMu held. BaseLocale is listed
// first so it is the matcher's default.
func rebuildMatcher() {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()

	supported = []string{BaseLocale}
	for locale := range catalogs {
		if locale != BaseLocale {
			supported = append(supported, locale)
		}
	}
	tags := make([]language.Tag, 0, len(supported))
	for _, locale := range supported {
		tags = append(tags, language.Make(locale))
	}
	matcher = language.NewMatcher(tags)
}
