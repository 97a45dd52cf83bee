package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/l10ncheck/pkg/catalog"
	"github.com/dmitrymomot/l10ncheck/pkg/verifier"
)

// Manifest is a set of key type declarations.
type Manifest struct {
	KeyTypes []KeyType `yaml:"key_types" validate:"unique=Name,dive"`
}

// KeyType declares one key type.
type KeyType struct {
	Name    string   `yaml:"name" validate:"required"`
	Catalog string   `yaml:"catalog"`
	Locales []string `yaml:"locales" validate:"dive,locale"`
	Keys    []string `yaml:"keys" validate:"dive,required"`
}

// Descriptor converts the declaration into a verifier.Descriptor.
func (kt KeyType) Descriptor() *verifier.Descriptor {
	return &verifier.Descriptor{
		Name:    kt.Name,
		Catalog: kt.Catalog,
		Locales: slices.Clone(kt.Locales),
		Keys:    slices.Clone(kt.Keys),
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		_, err := catalog.ParseLocale(fl.Field().String())
		return err == nil
	})
	return v
}

// Parse decodes and validates a manifest. Unknown fields are rejected.
// Empty input is an empty manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrFailedToParse, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadFile reads and parses the manifest at path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToRead, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Glob loads every file matching the doublestar patterns and merges them in
// lexical path order. Each pattern must match at least one file.
func Glob(patterns ...string) (*Manifest, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoManifestMatched, pattern)
		}
		paths = append(paths, matches...)
	}
	slices.Sort(paths)
	paths = slices.Compact(paths)

	manifests := make([]*Manifest, 0, len(paths))
	for _, path := range paths {
		m, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, m)
	}
	return Merge(manifests...)
}

// Merge concatenates manifests and validates the result.
func Merge(manifests ...*Manifest) (*Manifest, error) {
	merged := &Manifest{}
	for _, m := range manifests {
		if m != nil {
			merged.KeyTypes = append(merged.KeyTypes, m.KeyTypes...)
		}
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Validate checks that names are present and unique and locales parse.
func (m *Manifest) Validate() error {
	err := validate.Struct(m)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Join(ErrInvalidManifest, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidManifest, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Manifest.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "unique":
		return "key type names must be unique"
	case "locale":
		return fmt.Sprintf("%s: invalid locale %q", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// Names returns the declared key type names in file order.
func (m *Manifest) Names() []string {
	names := make([]string, len(m.KeyTypes))
	for i, kt := range m.KeyTypes {
		names[i] = kt.Name
	}
	return names
}

// Register adds every declared key type to reg.
func (m *Manifest) Register(reg *verifier.Registry) error {
	for _, kt := range m.KeyTypes {
		if err := reg.Register(kt.Descriptor()); err != nil {
			return err
		}
	}
	return nil
}
