package verifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10ncheck/pkg/verifier"
)

func TestFindingString(t *testing.T) {
	t.Parallel()
	b := verifier.NewBuilder("app.Messages", language.MustParse("fr-CA"), "messages")

	tests := []struct {
		kind     verifier.Kind
		key      string
		expected string
	}{
		{
			kind:     verifier.KindKeyAbsentFromCatalog,
			key:      "FAREWELL",
			expected: `[key_absent_from_catalog] key "FAREWELL" is missing from catalog "messages" (key type app.Messages, locale fr-CA)`,
		},
		{
			kind:     verifier.KindKeyAbsentFromKeyType,
			key:      "EXTRA",
			expected: `[key_absent_from_key_type] catalog "messages" entry "EXTRA" is not declared by the key type (key type app.Messages, locale fr-CA)`,
		},
		{
			kind:     verifier.KindCatalogNotFound,
			expected: `[catalog_not_found] catalog "messages" not found (key type app.Messages, locale fr-CA)`,
		},
		{
			kind:     verifier.KindEmptyCatalog,
			expected: `[empty_catalog] catalog "messages" has no entries (key type app.Messages, locale fr-CA)`,
		},
		{
			kind:     verifier.KindEmptyKeySet,
			expected: `[empty_key_set] key type declares no keys (key type app.Messages, locale fr-CA)`,
		},
		{
			kind:     verifier.KindMissingCatalogName,
			expected: `[missing_catalog_name_metadata] key type declares no catalog name (key type app.Messages, locale fr-CA)`,
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, b.Build(tt.kind, tt.key).String())
		})
	}
}

func TestKinds(t *testing.T) {
	t.Parallel()

	all := verifier.Kinds()
	require.Len(t, all, 6)
	all[0] = "mutated"
	assert.Equal(t, verifier.KindMissingCatalogName, verifier.Kinds()[0])

	k, err := verifier.ParseKind(" Empty_Catalog ")
	require.NoError(t, err)
	assert.Equal(t, verifier.KindEmptyCatalog, k)

	_, err = verifier.ParseKind("nope")
	assert.ErrorIs(t, err, verifier.ErrUnknownKind)

	for _, k := range verifier.Kinds() {
		switch k {
		case verifier.KindKeyAbsentFromCatalog, verifier.KindKeyAbsentFromKeyType:
			assert.False(t, k.Structural(), k)
		default:
			assert.True(t, k.Structural(), k)
		}
	}
}

type level int

func (l level) String() string { return [...]string{"LOW", "HIGH"}[l] }

func TestKeyHelpers(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"RED", "GREEN"}, verifier.KeysOf(colorRed, colorGreen))
	assert.Equal(t, []string{"LOW", "HIGH"}, verifier.StringerKeys(level(0), level(1)))

	d := &verifier.Descriptor{Keys: []string{"A"}, Locales: []string{"en"}}
	keys := d.MessageKeys()
	keys[0] = "B"
	assert.Equal(t, []string{"A"}, d.Keys)
}
