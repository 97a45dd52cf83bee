package catalog

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ParseLocale parses a locale identifier such as "en", "fr_CA" or "pt-BR".
// Underscores are accepted as subtag separators for compatibility with
// resource bundle naming. Deprecated codes keep their declared spelling,
// so "iw" stays "iw" and matches a catalog stored under that name.
func ParseLocale(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return language.Und, fmt.Errorf("%w: empty locale", ErrInvalidLocale)
	}
	tag, err := language.Raw.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und, errors.Join(ErrInvalidLocale, fmt.Errorf("locale %q: %w", s, err))
	}
	return tag, nil
}

// MustParseLocale is like ParseLocale but panics on error.
func MustParseLocale(s string) language.Tag {
	tag, err := ParseLocale(s)
	if err != nil {
		panic(err)
	}
	return tag
}

// FileSuffix returns the locale in the form used by catalog file names,
// e.g. "fr_CA" for fr-CA.
func FileSuffix(locale language.Tag) string {
	return strings.ReplaceAll(locale.String(), "-", "_")
}

// localeSpellings lists the forms a locale may be stored under, most specific first.
func localeSpellings(locale language.Tag) []string {
	tag := locale.String()
	suffix := FileSuffix(locale)
	if suffix == tag {
		return []string{tag}
	}
	return []string{suffix, tag}
}
