package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/l10ncheck/pkg/catalog"
)

func TestYAMLParser(t *testing.T) {
	t.Parallel()
	parser := catalog.NewYAMLParser()

	t.Run("parses flat documents", func(t *testing.T) {
		t.Parallel()
		entries, err := parser.Parse(context.Background(), []byte("GREETING: Hi\nFAREWELL: Bye\n"))
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"GREETING": "Hi", "FAREWELL": "Bye"}, entries)
	})

	t.Run("flattens nested maps with dots", func(t *testing.T) {
		t.Parallel()
		entries, err := parser.Parse(context.Background(), []byte("user:\n  greeting: Hello\n  count: 3\nblank:\n"))
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"user.greeting": "Hello", "user.count": "3", "blank": ""}, entries)
	})

	t.Run("empty content is an empty catalog", func(t *testing.T) {
		t.Parallel()
		entries, err := parser.Parse(context.Background(), []byte("  \n"))
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("rejects lists", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte("KEY:\n  - a\n  - b\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrUnsupportedValue)
	})

	t.Run("invalid syntax", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte("KEY: [unclosed"))
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrFailedToParseCatalog)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := parser.Parse(ctx, []byte("KEY: v"))
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrYAMLParsingCancelled)
	})
}

func TestJSONParser(t *testing.T) {
	t.Parallel()
	parser := catalog.NewJSONParser()

	t.Run("parses nested objects", func(t *testing.T) {
		t.Parallel()
		entries, err := parser.Parse(context.Background(), []byte(`{"a": {"b": "c"}, "n": 2, "ok": true}`))
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"a.b": "c", "n": "2", "ok": "true"}, entries)
	})

	t.Run("empty content is an empty catalog", func(t *testing.T) {
		t.Parallel()
		entries, err := parser.Parse(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("invalid syntax", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte(`{"a":`))
		assert.ErrorIs(t, err, catalog.ErrFailedToParseCatalog)
	})
}

func TestPropertiesParser(t *testing.T) {
	t.Parallel()
	parser := catalog.NewPropertiesParser()

	t.Run("parses key value pairs without expansion", func(t *testing.T) {
		t.Parallel()
		content := "# comment\nGREETING=Hallo\nFAREWELL = Bye ${name}\n"
		entries, err := parser.Parse(context.Background(), []byte(content))
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"GREETING": "Hallo", "FAREWELL": "Bye ${name}"}, entries)
	})

	t.Run("empty content is an empty catalog", func(t *testing.T) {
		t.Parallel()
		entries, err := parser.Parse(context.Background(), []byte(""))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestParserForFile(t *testing.T) {
	t.Parallel()
	tests := []struct {
		file     string
		expected catalog.Parser
	}{
		{file: "messages_en.yaml", expected: catalog.NewYAMLParser()},
		{file: "messages_en.YML", expected: catalog.NewYAMLParser()},
		{file: "messages_en.json", expected: catalog.NewJSONParser()},
		{file: "messages_en.properties", expected: catalog.NewPropertiesParser()},
		{file: "messages_en.txt", expected: nil},
		{file: "messages", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, catalog.ParserForFile(tt.file))
		})
	}
}
