package verifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10ncheck/pkg/catalog"
	"github.com/dmitrymomot/l10ncheck/pkg/logger"
)

// Verifier checks the catalogs of one key type.
type Verifier struct {
	keyType  KeyType
	typeName string
	loader   catalog.Loader
	metadata Metadata
	registry *Registry
	logger   *slog.Logger
}

// New creates a Verifier bound to kt that loads catalogs through loader.
// It panics if kt or loader is nil.
func New(kt KeyType, loader catalog.Loader, opts ...Option) *Verifier {
	if kt == nil {
		panic("verifier: key type is nil")
	}
	v := newVerifier(loader, opts)
	v.keyType = kt
	v.typeName = kt.TypeName()
	return v
}

// NewFromName creates a Verifier for the key type registered under name.
// It returns ErrKeyTypeNotFound if the name is not registered.
func NewFromName(name string, loader catalog.Loader, opts ...Option) (*Verifier, error) {
	v := newVerifier(loader, opts)
	kt, ok := v.registry.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyTypeNotFound, name)
	}
	v.keyType = kt
	v.typeName = name
	return v, nil
}

// MustNewFromName is like NewFromName but panics on error.
func MustNewFromName(name string, loader catalog.Loader, opts ...Option) *Verifier {
	v, err := NewFromName(name, loader, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

func newVerifier(loader catalog.Loader, opts []Option) *Verifier {
	if loader == nil {
		panic("verifier: catalog loader is nil")
	}
	v := &Verifier{
		loader:   loader,
		metadata: InterfaceMetadata{},
		registry: DefaultRegistry,
		logger:   discardLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// KeyType returns the bound key type.
func (v *Verifier) KeyType() KeyType { return v.keyType }

// TypeName returns the name of the bound key type.
func (v *Verifier) TypeName() string { return v.typeName }

// LocaleNames returns the locales declared by the key type.
func (v *Verifier) LocaleNames() []string { return v.metadata.LocaleNames(v.keyType) }

// CatalogName returns the catalog base name declared by the key type.
func (v *Verifier) CatalogName() (string, bool) { return v.metadata.CatalogName(v.keyType) }

// Verify compares the key type against its catalog for locale.
// The result is empty, never nil, when the catalog is consistent.
func (v *Verifier) Verify(ctx context.Context, locale language.Tag) []Finding {
	findings := make([]Finding, 0)

	catalogName, ok := v.CatalogName()
	if !ok {
		return append(findings, NewBuilder(v.typeName, locale, "").Build(KindMissingCatalogName, ""))
	}

	cat, found := v.load(ctx, catalogName, locale)
	b := NewBuilder(v.typeName, locale, catalogName)

	var catalogKeys map[string]struct{}
	if !found {
		findings = append(findings, b.Build(KindCatalogNotFound, ""))
	} else {
		catalogKeys = cat.Keys()
		if len(catalogKeys) == 0 {
			findings = append(findings, b.Build(KindEmptyCatalog, ""))
		}
	}

	keys := messageKeySet(v.keyType)
	if len(keys) == 0 {
		findings = append(findings, b.Build(KindEmptyKeySet, ""))
	}

	if len(findings) > 0 {
		return findings
	}

	for _, key := range keys {
		if _, ok := catalogKeys[key]; ok {
			delete(catalogKeys, key)
			continue
		}
		findings = append(findings, b.Build(KindKeyAbsentFromCatalog, key))
	}

	orphans := make([]string, 0, len(catalogKeys))
	for key := range catalogKeys {
		orphans = append(orphans, key)
	}
	slices.Sort(orphans)
	for _, key := range orphans {
		findings = append(findings, b.Build(KindKeyAbsentFromKeyType, key))
	}

	return findings
}

// load reports whether a catalog was found. Load failures other than a
// missing catalog are logged and treated as not found.
func (v *Verifier) load(ctx context.Context, name string, locale language.Tag) (*catalog.Catalog, bool) {
	cat, err := v.loader.Load(ctx, name, locale)
	switch {
	case err == nil && cat != nil:
		return cat, true
	case err == nil, errors.Is(err, catalog.ErrNotFound):
		return nil, false
	case ctx.Err() != nil:
		return nil, false
	default:
		v.logger.WarnContext(ctx, "failed to load catalog",
			logger.KeyType(v.typeName),
			logger.Catalog(name),
			logger.Locale(locale),
			logger.Error(err),
		)
		return nil, false
	}
}

// VerifyAllLocales runs Verify for every declared locale, in declaration order,
// and concatenates the findings. It fails if the key type declares no locales
// or one of them cannot be parsed. If ctx is done before every locale has been
// verified, the findings are discarded and ctx.Err() is returned wrapped.
func (v *Verifier) VerifyAllLocales(ctx context.Context) ([]Finding, error) {
	names := v.LocaleNames()
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoLocales, v.typeName)
	}

	locales := make([]language.Tag, 0, len(names))
	for _, name := range names {
		tag, err := catalog.ParseLocale(name)
		if err != nil {
			return nil, fmt.Errorf("key type %s: %w", v.typeName, err)
		}
		locales = append(locales, tag)
	}

	findings := make([]Finding, 0)
	for _, locale := range locales {
		findings = append(findings, v.Verify(ctx, locale)...)
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("key type %s: verification interrupted: %w", v.typeName, err)
		}
	}

	v.logger.DebugContext(ctx, "verified all locales",
		logger.KeyType(v.typeName),
		logger.Count(len(findings)),
	)
	return findings, nil
}

// TypeIsolatedVerify runs Verify and renders each finding as a string.
func (v *Verifier) TypeIsolatedVerify(ctx context.Context, locale language.Tag) []string {
	findings := v.Verify(ctx, locale)
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = f.String()
	}
	return out
}
