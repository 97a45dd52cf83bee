package verifier

import (
	"fmt"
	"strings"
)

// Kind classifies a Finding. The set of kinds is closed.
type Kind string

const (
	// KindMissingCatalogName: the key type does not declare a catalog name.
	KindMissingCatalogName Kind = "missing_catalog_name_metadata"
	// KindCatalogNotFound: no catalog exists for the name and locale.
	KindCatalogNotFound Kind = "catalog_not_found"
	// KindEmptyCatalog: the catalog exists but has no entries.
	KindEmptyCatalog Kind = "empty_catalog"
	// KindEmptyKeySet: the key type declares no keys.
	KindEmptyKeySet Kind = "empty_key_set"
	// KindKeyAbsentFromCatalog: a declared key has no catalog entry.
	KindKeyAbsentFromCatalog Kind = "key_absent_from_catalog"
	// KindKeyAbsentFromKeyType: a catalog entry matches no declared key.
	KindKeyAbsentFromKeyType Kind = "key_absent_from_key_type"
)

var kinds = []Kind{
	KindMissingCatalogName,
	KindCatalogNotFound,
	KindEmptyCatalog,
	KindEmptyKeySet,
	KindKeyAbsentFromCatalog,
	KindKeyAbsentFromKeyType,
}

// Kinds returns every finding kind.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

// ParseKind returns the Kind named s, case-insensitively.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Structural reports whether the kind describes a catalog or key type that
// cannot be compared key by key.
func (k Kind) Structural() bool {
	switch k {
	case KindKeyAbsentFromCatalog, KindKeyAbsentFromKeyType:
		return false
	default:
		return true
	}
}

func (k Kind) String() string { return string(k) }
