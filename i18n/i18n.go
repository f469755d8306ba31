// Package i18n holds the translated UI strings and picks a language from
// flags, config or the POSIX locale environment.
package i18n

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Translator resolves UI strings. Row labels and the greeting go through it.
type Translator interface {
	// T returns the translation for key.
	T(key string) string
	// Hello returns the greeting for name.
	Hello(name string) string
}

// Language describes one supported language.
type Language struct {
	Tag         language.Tag
	Code        string
	DisplayName string
}

// Available lists the supported languages; the first is the fallback.
var Available = []Language{
	{Tag: language.English, Code: "en", DisplayName: "English"},
	{Tag: language.Spanish, Code: "es", DisplayName: "Español"},
	{Tag: language.French, Code: "fr", DisplayName: "Français"},
	{Tag: language.German, Code: "de", DisplayName: "Deutsch"},
}

var matcher = language.NewMatcher(func() []language.Tag {
	tags := make([]language.Tag, len(Available))
	for i, l := range Available {
		tags[i] = l.Tag
	}
	return tags
}())

// Catalog is a Translator backed by the built-in string tables.
type Catalog struct {
	lang  Language
	table map[string]string
}

// New returns a Catalog for the best supported match of lang, which may be
// a BCP 47 tag ("de-AT") or a POSIX locale ("fr_FR.UTF-8"). Unknown or
// empty input selects English.
func New(lang string) *Catalog {
	l := Match(lang)
	return &Catalog{lang: l, table: tables[l.Code]}
}

// Match returns the supported Language closest to lang.
func Match(lang string) Language {
	tag, err := language.Parse(normalizeLocale(lang))
	if err != nil {
		return Available[0]
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Available[0]
	}
	return Available[idx]
}

// normalizeLocale turns "fr_FR.UTF-8@euro" into "fr-FR".
func normalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "C" || s == "POSIX" {
		return "en"
	}
	return strings.ReplaceAll(s, "_", "-")
}

// Language returns the catalog's language.
func (c *Catalog) Language() Language {
	return c.lang
}

// T returns the translation for key, falling back to English and then to
// the key itself.
func (c *Catalog) T(key string) string {
	if v, ok := c.table[key]; ok {
		return v
	}
	if v, ok := tables["en"][key]; ok {
		return v
	}
	return key
}

// Format translates key and substitutes {0}, {1}, ... with args.
func (c *Catalog) Format(key string, args ...string) string {
	s := c.T(key)
	for i, arg := range args {
		s = strings.ReplaceAll(s, "{"+strconv.Itoa(i)+"}", arg)
	}
	return s
}

// Hello implements Translator.
func (c *Catalog) Hello(name string) string {
	return c.Format("hello", name)
}

// FromEnv picks the language from the POSIX locale variables, in their
// standard precedence. It returns "" when none is set.
func FromEnv(lookup func(string) (string, bool)) string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
	}
	return ""
}

// Resolve returns the first non-empty language among the candidates,
// typically the --lang flag then the config value, before the locale.
func Resolve(lookup func(string) (string, bool), candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return FromEnv(lookup)
}
