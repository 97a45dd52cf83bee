package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10ncheck/pkg/catalog"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	entries := map[string]string{"GREETING": "Hi", "FAREWELL": "Bye"}
	cat := catalog.New("messages", language.English, entries)

	t.Run("copies entries on construction", func(t *testing.T) {
		t.Parallel()
		src := map[string]string{"A": "a"}
		c := catalog.New("x", language.English, src)
		src["B"] = "b"
		assert.Equal(t, 1, c.Len())
		assert.False(t, c.Has("B"))
	})

	t.Run("exposes name, locale and values", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "messages", cat.Name())
		assert.Equal(t, language.English, cat.Locale())
		assert.Equal(t, 2, cat.Len())

		v, ok := cat.Value("GREETING")
		require.True(t, ok)
		assert.Equal(t, "Hi", v)

		_, ok = cat.Value("MISSING")
		assert.False(t, ok)
	})

	t.Run("keys returns an independent set", func(t *testing.T) {
		t.Parallel()
		keys := cat.Keys()
		delete(keys, "GREETING")

		again := cat.Keys()
		assert.Len(t, again, 2)
		assert.Contains(t, again, "GREETING")
	})

	t.Run("sorted keys", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"FAREWELL", "GREETING"}, cat.SortedKeys())
	})

	t.Run("nil entries yield empty catalog", func(t *testing.T) {
		t.Parallel()
		c := catalog.New("x", language.English, nil)
		assert.Equal(t, 0, c.Len())
		assert.Empty(t, c.Keys())
	})
}

func TestParseLocale(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected string
		suffix   string
	}{
		{name: "language only", input: "en", expected: "en", suffix: "en"},
		{name: "underscore region", input: "fr_CA", expected: "fr-CA", suffix: "fr_CA"},
		{name: "hyphen region", input: "pt-BR", expected: "pt-BR", suffix: "pt_BR"},
		{name: "surrounding whitespace", input: "  de ", expected: "de", suffix: "de"},
		{name: "deprecated hebrew code", input: "iw", expected: "iw", suffix: "iw"},
		{name: "deprecated indonesian code", input: "in", expected: "in", suffix: "in"},
		{name: "deprecated serbo-croatian code", input: "sh", expected: "sh", suffix: "sh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tag, err := catalog.ParseLocale(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tag.String())
			assert.Equal(t, tt.suffix, catalog.FileSuffix(tag))
		})
	}

	t.Run("rejects empty and malformed locales", func(t *testing.T) {
		t.Parallel()
		for _, input := range []string{"", "   ", "toolonglanguage", "e"} {
			_, err := catalog.ParseLocale(input)
			require.Error(t, err, "input %q", input)
			assert.ErrorIs(t, err, catalog.ErrInvalidLocale)
		}
	})

	t.Run("must parse panics on invalid input", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { catalog.MustParseLocale("") })
		assert.NotPanics(t, func() { catalog.MustParseLocale("en") })
	})
}
