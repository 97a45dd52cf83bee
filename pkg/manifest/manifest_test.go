package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/l10ncheck/pkg/manifest"
	"github.com/dmitrymomot/l10ncheck/pkg/verifier"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		m, err := manifest.Parse([]byte(`
key_types:
  - name: app.Greetings
    catalog: messages
    locales: [en, fr_CA, pt-BR]
    keys: [GREETING, FAREWELL]
  - name: app.Empty
`))
		require.NoError(t, err)
		require.Len(t, m.KeyTypes, 2)
		assert.Equal(t, manifest.KeyType{
			Name:    "app.Greetings",
			Catalog: "messages",
			Locales: []string{"en", "fr_CA", "pt-BR"},
			Keys:    []string{"GREETING", "FAREWELL"},
		}, m.KeyTypes[0])
		assert.Equal(t, []string{"app.Greetings", "app.Empty"}, m.Names())
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		m, err := manifest.Parse(nil)
		require.NoError(t, err)
		assert.Empty(t, m.KeyTypes)
	})

	tests := []struct {
		name    string
		input   string
		wantErr error
		message string
	}{
		{
			name:    "malformed yaml",
			input:   "key_types: [",
			wantErr: manifest.ErrFailedToParse,
		},
		{
			name:    "unknown field",
			input:   "key_types:\n  - name: a\n    catalogue: x\n",
			wantErr: manifest.ErrFailedToParse,
		},
		{
			name:    "missing name",
			input:   "key_types:\n  - catalog: x\n",
			wantErr: manifest.ErrInvalidManifest,
			message: "KeyTypes[0].Name is required",
		},
		{
			name:    "duplicate names",
			input:   "key_types:\n  - name: a\n  - name: a\n",
			wantErr: manifest.ErrInvalidManifest,
			message: "key type names must be unique",
		},
		{
			name:    "invalid locale",
			input:   "key_types:\n  - name: a\n    locales: [en, toolonglanguage]\n",
			wantErr: manifest.ErrInvalidManifest,
			message: `invalid locale "toolonglanguage"`,
		},
		{
			name:    "blank key",
			input:   "key_types:\n  - name: a\n    keys: [A, \"\"]\n",
			wantErr: manifest.ErrInvalidManifest,
			message: "KeyTypes[0].Keys[1] is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := manifest.Parse([]byte(tt.input))
			require.ErrorIs(t, err, tt.wantErr)
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	m, err := manifest.LoadFile("testdata/app.l10n.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"app.Greetings", "app.Errors"}, m.Names())

	_, err = manifest.LoadFile("testdata/missing.yaml")
	assert.ErrorIs(t, err, manifest.ErrFailedToRead)
}

func TestGlob(t *testing.T) {
	t.Parallel()

	t.Run("recursive pattern", func(t *testing.T) {
		t.Parallel()
		m, err := manifest.Glob("testdata/**/*.l10n.yaml")
		require.NoError(t, err)
		assert.Equal(t, []string{"app.Greetings", "app.Errors", "billing.Invoices", "billing.Draft"}, m.Names())
	})

	t.Run("overlapping patterns load each file once", func(t *testing.T) {
		t.Parallel()
		m, err := manifest.Glob("testdata/app.l10n.yaml", "testdata/*.l10n.yaml")
		require.NoError(t, err)
		assert.Len(t, m.KeyTypes, 2)
	})

	t.Run("duplicates across files", func(t *testing.T) {
		t.Parallel()
		_, err := manifest.Glob("testdata/*.yaml")
		assert.ErrorIs(t, err, manifest.ErrInvalidManifest)
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()
		_, err := manifest.Glob("testdata/**/*.toml")
		assert.ErrorIs(t, err, manifest.ErrNoManifestMatched)
	})
}

func TestRegister(t *testing.T) {
	t.Parallel()

	m, err := manifest.LoadFile("testdata/nested/deeper/billing.l10n.yaml")
	require.NoError(t, err)

	reg := verifier.NewRegistry()
	require.NoError(t, m.Register(reg))
	assert.Equal(t, []string{"billing.Draft", "billing.Invoices"}, reg.Names())

	kt, ok := reg.Lookup("billing.Invoices")
	require.True(t, ok)
	assert.Equal(t, []string{"TOTAL"}, kt.MessageKeys())
	assert.Equal(t, []string{"de", "en-GB"}, kt.(verifier.LocaleNamer).LocaleNames())

	draft, _ := reg.Lookup("billing.Draft")
	_, hasCatalog := verifier.InterfaceMetadata{}.CatalogName(draft)
	assert.False(t, hasCatalog)

	assert.ErrorIs(t, m.Register(reg), verifier.ErrDuplicateKeyType)
}
