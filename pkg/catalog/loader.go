package catalog

import (
	"context"
	"errors"

	"golang.org/x/text/language"
)

// Loader locates and parses the catalog for a name and locale.
//
// Implementations return ErrNotFound (possibly wrapped) when the catalog does
// not exist, and a non-nil, possibly empty, *Catalog otherwise. Loaders must be
// safe for concurrent use.
type Loader interface {
	Load(ctx context.Context, name string, locale language.Tag) (*Catalog, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, name string, locale language.Tag) (*Catalog, error)

// Load implements Loader.
func (f LoaderFunc) Load(ctx context.Context, name string, locale language.Tag) (*Catalog, error) {
	return f(ctx, name, locale)
}

// MapLoader serves catalogs from memory. Data maps catalog name to locale to
// entries; locales may be spelled "fr_CA" or "fr-CA".
// Data must not be modified once the loader is in use.
type MapLoader struct {
	Data map[string]map[string]map[string]string
}

// Load implements the Loader interface
func (l *MapLoader) Load(ctx context.Context, name string, locale language.Tag) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	locales, ok := l.Data[name]
	if !ok {
		return nil, ErrNotFound
	}
	for _, spelling := range localeSpellings(locale) {
		if entries, ok := locales[spelling]; ok {
			return New(name, locale, entries), nil
		}
	}
	return nil, ErrNotFound
}
