package verifier

import (
	"fmt"

	"golang.org/x/text/language"
)

// Finding describes one inconsistency between a key type and a catalog.
type Finding struct {
	Kind        Kind
	Key         string // empty for structural kinds
	TypeName    string
	Locale      language.Tag
	CatalogName string
}

// String renders the finding for humans. It names the kind, the key when
// there is one, the key type and the locale.
func (f Finding) String() string {
	var msg string
	switch f.Kind {
	case KindMissingCatalogName:
		msg = "key type declares no catalog name"
	case KindCatalogNotFound:
		msg = fmt.Sprintf("catalog %q not found", f.CatalogName)
	case KindEmptyCatalog:
		msg = fmt.Sprintf("catalog %q has no entries", f.CatalogName)
	case KindEmptyKeySet:
		msg = "key type declares no keys"
	case KindKeyAbsentFromCatalog:
		msg = fmt.Sprintf("key %q is missing from catalog %q", f.Key, f.CatalogName)
	case KindKeyAbsentFromKeyType:
		msg = fmt.Sprintf("catalog %q entry %q is not declared by the key type", f.CatalogName, f.Key)
	default:
		msg = fmt.Sprintf("key %q", f.Key)
	}
	return fmt.Sprintf("[%s] %s (key type %s, locale %s)", f.Kind, msg, f.TypeName, f.Locale)
}

// Builder stamps the shared context of one verification onto findings.
type Builder struct {
	typeName    string
	locale      language.Tag
	catalogName string
}

// NewBuilder returns a Builder for findings about typeName, locale and catalogName.
func NewBuilder(typeName string, locale language.Tag, catalogName string) Builder {
	return Builder{typeName: typeName, locale: locale, catalogName: catalogName}
}

// Build returns a finding of the given kind for key.
func (b Builder) Build(kind Kind, key string) Finding {
	return Finding{
		Kind:        kind,
		Key:         key,
		TypeName:    b.typeName,
		Locale:      b.locale,
		CatalogName: b.catalogName,
	}
}
