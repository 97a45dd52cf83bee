package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrymomot/l10ncheck/pkg/verifier"
)

// Format selects a report rendering.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat returns the Format named s. "md" is accepted for markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Render writes rep to w in the given format.
func Render(w io.Writer, rep *Report, format Format) error {
	switch format {
	case FormatText:
		return renderText(w, rep)
	case FormatJSON:
		return renderJSON(w, rep)
	case FormatMarkdown:
		return renderMarkdown(w, rep)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// renderText prints one finding per line followed by failed key types.
func renderText(w io.Writer, rep *Report) error {
	var b strings.Builder
	for _, f := range rep.Findings() {
		b.WriteString(f.String())
		b.WriteByte('\n')
	}
	for _, e := range rep.Errors {
		fmt.Fprintf(&b, "error: key type %s: %v\n", e.KeyType, e.Err)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

type jsonReport struct {
	Total   int            `json:"total"`
	Counts  map[string]int `json:"counts"`
	Results []jsonResult   `json:"results"`
	Errors  []jsonError    `json:"errors,omitempty"`
}

type jsonResult struct {
	KeyType  string        `json:"key_type"`
	Locale   string        `json:"locale"`
	Findings []jsonFinding `json:"findings"`
}

type jsonFinding struct {
	Kind    string `json:"kind"`
	Key     string `json:"key,omitempty"`
	Catalog string `json:"catalog,omitempty"`
	Message string `json:"message"`
}

type jsonError struct {
	KeyType string `json:"key_type"`
	Error   string `json:"error"`
}

func renderJSON(w io.Writer, rep *Report) error {
	out := jsonReport{
		Total:   rep.Total(),
		Counts:  make(map[string]int),
		Results: make([]jsonResult, 0, len(rep.Results)),
	}
	for kind, n := range rep.Counts() {
		out.Counts[string(kind)] = n
	}
	for _, res := range rep.Results {
		jr := jsonResult{
			KeyType:  res.KeyType,
			Locale:   res.Locale.String(),
			Findings: make([]jsonFinding, 0, len(res.Findings)),
		}
		for _, f := range res.Findings {
			jr.Findings = append(jr.Findings, jsonFinding{
				Kind:    string(f.Kind),
				Key:     f.Key,
				Catalog: f.CatalogName,
				Message: f.String(),
			})
		}
		out.Results = append(out.Results, jr)
	}
	for _, e := range rep.Errors {
		out.Errors = append(out.Errors, jsonError{KeyType: e.KeyType, Error: e.Err.Error()})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return nil
}

func renderMarkdown(w io.Writer, rep *Report) error {
	var b strings.Builder
	b.WriteString("# Localization Catalog Report\n\n")
	fmt.Fprintf(&b, "Key types: %d. Findings: %d.\n\n", len(rep.KeyTypes()), rep.Total())

	b.WriteString("## Summary\n\n")
	b.WriteString("| Key Type | Locale | Missing | Extra | Structural | Status |\n")
	b.WriteString("| --- | --- | ---: | ---: | ---: | --- |\n")
	for _, res := range rep.Results {
		var missing, extra, structural int
		for _, f := range res.Findings {
			switch f.Kind {
			case verifier.KindKeyAbsentFromCatalog:
				missing++
			case verifier.KindKeyAbsentFromKeyType:
				extra++
			default:
				structural++
			}
		}
		status := "ok"
		if !res.Clean() {
			status = "findings"
		}
		fmt.Fprintf(&b, "| %s | %s | %d | %d | %d | %s |\n",
			cellCode(res.KeyType), cellCode(res.Locale.String()), missing, extra, structural, status)
	}

	for _, res := range rep.Results {
		if res.Clean() {
			continue
		}
		fmt.Fprintf(&b, "\n## %s / %s\n\n", inlineCode(res.KeyType), inlineCode(res.Locale.String()))
		for _, f := range res.Findings {
			if f.Key != "" {
				fmt.Fprintf(&b, "- %s: %s\n", f.Kind, inlineCode(f.Key))
			} else {
				fmt.Fprintf(&b, "- %s\n", f.Kind)
			}
		}
	}

	if len(rep.Errors) > 0 {
		b.WriteString("\n## Errors\n\n")
		for _, e := range rep.Errors {
			fmt.Fprintf(&b, "- %s: %s\n", inlineCode(e.KeyType), singleLine(e.Err.Error()))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func singleLine(s string) string { return lineBreaks.Replace(s) }

// inlineCode renders s as a markdown code span whose fence is longer than
// any backtick run inside s.
func inlineCode(s string) string {
	s = singleLine(s)
	longest, run := 0, 0
	for _, r := range s {
		if r != '`' {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		s = " " + s + " "
	}
	return fence + s + fence
}

// cellCode is inlineCode for table cells, where a pipe ends the cell even
// inside a code span.
func cellCode(s string) string {
	return inlineCode(strings.ReplaceAll(s, "|", `\|`))
}
