package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10ncheck/pkg/report"
	"github.com/dmitrymomot/l10ncheck/pkg/verifier"
)

var (
	en   = language.English
	frCA = language.MustParse("fr-CA")
	de   = language.German
)

func sampleFindings() []verifier.Finding {
	fr := verifier.NewBuilder("app.Messages", frCA, "messages")
	german := verifier.NewBuilder("app.Messages", de, "messages")
	return []verifier.Finding{
		fr.Build(verifier.KindKeyAbsentFromCatalog, "FAREWELL"),
		fr.Build(verifier.KindKeyAbsentFromKeyType, "EXTRA"),
		german.Build(verifier.KindCatalogNotFound, ""),
	}
}

func sampleReport() *report.Report {
	rep := report.New()
	rep.AddType("app.Messages", []language.Tag{en, frCA, de}, sampleFindings())
	rep.AddError("app.Broken", errors.New("key type declares no locales"))
	return rep
}

func TestReport(t *testing.T) {
	t.Parallel()
	rep := sampleReport()

	require.Len(t, rep.Results, 3)
	assert.Equal(t, en, rep.Results[0].Locale)
	assert.True(t, rep.Results[0].Clean())
	assert.NotNil(t, rep.Results[0].Findings)
	assert.Len(t, rep.Results[1].Findings, 2)
	assert.Len(t, rep.Results[2].Findings, 1)

	assert.Equal(t, 3, rep.Total())
	assert.True(t, rep.HasFindings())
	assert.True(t, rep.HasErrors())
	assert.Equal(t, sampleFindings(), rep.Findings())
	assert.Equal(t, []string{"app.Broken", "app.Messages"}, rep.KeyTypes())
	assert.Equal(t, map[verifier.Kind]int{
		verifier.KindKeyAbsentFromCatalog: 1,
		verifier.KindKeyAbsentFromKeyType: 1,
		verifier.KindCatalogNotFound:      1,
	}, rep.Counts())
	assert.Equal(t, map[verifier.Kind]int{
		verifier.KindKeyAbsentFromCatalog: 1,
		verifier.KindKeyAbsentFromKeyType: 1,
	}, rep.Results[1].Counts())
}

func TestReport_UndeclaredLocale(t *testing.T) {
	t.Parallel()
	rep := report.New()
	rep.AddType("app.Messages", []language.Tag{en}, sampleFindings())
	require.Len(t, rep.Results, 3)
	assert.Equal(t, frCA, rep.Results[1].Locale)
	assert.Equal(t, de, rep.Results[2].Locale)
}

func TestReport_Empty(t *testing.T) {
	t.Parallel()
	rep := report.New()
	assert.False(t, rep.HasFindings())
	assert.False(t, rep.HasErrors())
	assert.Empty(t, rep.Findings())
}

func TestFilter(t *testing.T) {
	t.Parallel()
	all := sampleFindings()

	assert.Equal(t, all, report.Filter(all))
	filtered := report.Filter(all, verifier.KindKeyAbsentFromKeyType, verifier.KindCatalogNotFound)
	require.Len(t, filtered, 1)
	assert.Equal(t, "FAREWELL", filtered[0].Key)
	assert.NotNil(t, report.Filter(nil))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]report.Format{
		"":         report.FormatText,
		"TEXT":     report.FormatText,
		"json":     report.FormatJSON,
		"md":       report.FormatMarkdown,
		"markdown": report.FormatMarkdown,
	}
	for input, want := range tests {
		got, err := report.ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := report.ParseFormat("html")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
	assert.ErrorIs(t, report.Render(&bytes.Buffer{}, report.New(), "html"), report.ErrUnknownFormat)
}

func TestRenderText(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	require.NoError(t, report.Render(buf, sampleReport(), report.FormatText))

	expected := `[key_absent_from_catalog] key "FAREWELL" is missing from catalog "messages" (key type app.Messages, locale fr-CA)
[key_absent_from_key_type] catalog "messages" entry "EXTRA" is not declared by the key type (key type app.Messages, locale fr-CA)
[catalog_not_found] catalog "messages" not found (key type app.Messages, locale de)
error: key type app.Broken: key type declares no locales
`
	assert.Equal(t, expected, buf.String())
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	require.NoError(t, report.Render(buf, sampleReport(), report.FormatJSON))

	var out struct {
		Total   int            `json:"total"`
		Counts  map[string]int `json:"counts"`
		Results []struct {
			KeyType  string `json:"key_type"`
			Locale   string `json:"locale"`
			Findings []struct {
				Kind    string `json:"kind"`
				Key     string `json:"key"`
				Catalog string `json:"catalog"`
				Message string `json:"message"`
			} `json:"findings"`
		} `json:"results"`
		Errors []struct {
			KeyType string `json:"key_type"`
			Error   string `json:"error"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 1, out.Counts["catalog_not_found"])
	require.Len(t, out.Results, 3)
	assert.Equal(t, "en", out.Results[0].Locale)
	assert.Empty(t, out.Results[0].Findings)
	assert.Equal(t, "fr-CA", out.Results[1].Locale)
	assert.Equal(t, "key_absent_from_catalog", out.Results[1].Findings[0].Kind)
	assert.Equal(t, "FAREWELL", out.Results[1].Findings[0].Key)
	assert.Equal(t, "messages", out.Results[1].Findings[0].Catalog)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "app.Broken", out.Errors[0].KeyType)
}

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	require.NoError(t, report.Render(buf, sampleReport(), report.FormatMarkdown))
	out := buf.String()

	assert.Contains(t, out, "Key types: 2. Findings: 3.")
	assert.Contains(t, out, "| `app.Messages` | `en` | 0 | 0 | 0 | ok |")
	assert.Contains(t, out, "| `app.Messages` | `fr-CA` | 1 | 1 | 0 | findings |")
	assert.Contains(t, out, "| `app.Messages` | `de` | 0 | 0 | 1 | findings |")
	assert.Contains(t, out, "## `app.Messages` / `fr-CA`\n\n- key_absent_from_catalog: `FAREWELL`\n- key_absent_from_key_type: `EXTRA`\n")
	assert.Contains(t, out, "- catalog_not_found\n")
	assert.NotContains(t, out, "## `app.Messages` / `en`")
	assert.Contains(t, out, "## Errors\n\n- `app.Broken`: key type declares no locales\n")
}

func TestRenderMarkdown_EscapesKeys(t *testing.T) {
	t.Parallel()

	b := verifier.NewBuilder("app.A|B", en, "messages")
	rep := report.New()
	rep.AddType("app.A|B", []language.Tag{en}, []verifier.Finding{
		b.Build(verifier.KindKeyAbsentFromCatalog, "a`b"),
		b.Build(verifier.KindKeyAbsentFromKeyType, "`edge`"),
		b.Build(verifier.KindKeyAbsentFromKeyType, "line\nbreak"),
	})
	rep.AddError("app.Broken", errors.Join(errors.New("first"), errors.New("second")))

	buf := &bytes.Buffer{}
	require.NoError(t, report.Render(buf, rep, report.FormatMarkdown))
	out := buf.String()

	assert.Contains(t, out, "| `app.A\\|B` | `en` | 1 | 2 | 0 | findings |")
	assert.Contains(t, out, "## `app.A|B` / `en`")
	assert.Contains(t, out, "- key_absent_from_catalog: ``a`b``\n")
	assert.Contains(t, out, "- key_absent_from_key_type: `` `edge` ``\n")
	assert.Contains(t, out, "- key_absent_from_key_type: `line break`\n")
	assert.Contains(t, out, "- `app.Broken`: first second\n")
}
