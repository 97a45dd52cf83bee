package verifier

import (
	"fmt"
	"slices"
)

// KeyType is a closed set of message keys.
type KeyType interface {
	// TypeName returns the fully-qualified name used in findings and for
	// registry lookups.
	TypeName() string

	// MessageKeys returns the declared keys in declaration order.
	MessageKeys() []string
}

// CatalogNamer is implemented by key types that declare the base name of
// their catalogs. An empty name means no declaration.
type CatalogNamer interface {
	CatalogName() string
}

// LocaleNamer is implemented by key types that declare the locales their
// catalogs must exist for.
type LocaleNamer interface {
	LocaleNames() []string
}

// Descriptor registers a key type without any custom Go type.
// It implements KeyType, CatalogNamer and LocaleNamer.
type Descriptor struct {
	Name    string
	Catalog string
	Locales []string
	Keys    []string
}

// TypeName implements KeyType.
func (d *Descriptor) TypeName() string { return d.Name }

// MessageKeys implements KeyType.
func (d *Descriptor) MessageKeys() []string { return slices.Clone(d.Keys) }

// CatalogName implements CatalogNamer.
func (d *Descriptor) CatalogName() string { return d.Catalog }

// LocaleNames implements LocaleNamer.
func (d *Descriptor) LocaleNames() []string { return slices.Clone(d.Locales) }

// KeysOf converts string based constants into message keys.
func KeysOf[K ~string](keys ...K) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}

// StringerKeys converts constants with a String method, such as iota based
// enumerations, into message keys.
func StringerKeys[K fmt.Stringer](keys ...K) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out
}

// messageKeySet returns the declared keys without duplicates, keeping the
// first occurrence of each.
func messageKeySet(kt KeyType) []string {
	declared := kt.MessageKeys()
	seen := make(map[string]struct{}, len(declared))
	keys := make([]string, 0, len(declared))
	for _, k := range declared {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}
