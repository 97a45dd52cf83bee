package verifier

import "slices"

// Metadata resolves the declarations attached to a key type.
type Metadata interface {
	// CatalogName returns the catalog base name, or false when the key type
	// declares none.
	CatalogName(kt KeyType) (string, bool)

	// LocaleNames returns the declared locale identifiers, e.g. "en", "fr_CA".
	LocaleNames(kt KeyType) []string
}

// InterfaceMetadata reads declarations from the CatalogNamer and LocaleNamer
// interfaces. It is the default Metadata.
type InterfaceMetadata struct{}

// CatalogName implements Metadata.
func (InterfaceMetadata) CatalogName(kt KeyType) (string, bool) {
	namer, ok := kt.(CatalogNamer)
	if !ok {
		return "", false
	}
	name := namer.CatalogName()
	return name, name != ""
}

// LocaleNames implements Metadata.
func (InterfaceMetadata) LocaleNames(kt KeyType) []string {
	namer, ok := kt.(LocaleNamer)
	if !ok {
		return nil
	}
	return slices.Clone(namer.LocaleNames())
}
