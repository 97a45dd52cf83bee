package catalog

import (
	"maps"
	"slices"

	"golang.org/x/text/language"
)

// Catalog is the set of entries loaded for one catalog name and locale.
// It is immutable and safe for concurrent use.
type Catalog struct {
	name    string
	locale  language.Tag
	entries map[string]string
}

// New builds a Catalog from a copy of entries. A nil map yields an empty catalog.
func New(name string, locale language.Tag, entries map[string]string) *Catalog {
	c := &Catalog{
		name:    name,
		locale:  locale,
		entries: make(map[string]string, len(entries)),
	}
	maps.Copy(c.entries, entries)
	return c
}

// Name returns the catalog base name.
func (c *Catalog) Name() string { return c.name }

// Locale returns the locale the catalog was loaded for.
func (c *Catalog) Locale() language.Tag { return c.locale }

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Keys returns a new set holding every key of the catalog.
// The caller owns the returned map.
func (c *Catalog) Keys() map[string]struct{} {
	keys := make(map[string]struct{}, len(c.entries))
	for k := range c.entries {
		keys[k] = struct{}{}
	}
	return keys
}

// SortedKeys returns the catalog keys in lexical order.
func (c *Catalog) SortedKeys() []string {
	return slices.Sorted(maps.Keys(c.entries))
}

// Has reports whether key is present.
func (c *Catalog) Has(key string) bool {
	_, ok := c.entries[key]
	return ok
}

// Value returns the text stored under key.
func (c *Catalog) Value(key string) (string, bool) {
	v, ok := c.entries[key]
	return v, ok
}
