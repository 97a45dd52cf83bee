package report

import (
	"maps"
	"slices"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10ncheck/pkg/verifier"
)

// Result holds the findings for one key type and locale.
type Result struct {
	KeyType  string
	Locale   language.Tag
	Findings []verifier.Finding
}

// Counts returns the number of findings per kind.
func (r Result) Counts() map[verifier.Kind]int {
	counts := make(map[verifier.Kind]int)
	for _, f := range r.Findings {
		counts[f.Kind]++
	}
	return counts
}

// Clean reports whether the result has no findings.
func (r Result) Clean() bool { return len(r.Findings) == 0 }

// TypeError records a key type that could not be verified at all.
type TypeError struct {
	KeyType string
	Err     error
}

// Report is the outcome of one verification run.
type Report struct {
	Results []Result
	Errors  []TypeError
}

// New returns an empty report.
func New() *Report {
	return &Report{}
}

// AddType records the findings of one key type. Every locale in locales gets a
// result even when it has no findings. Findings for other locales get a result
// in order of first appearance.
func (r *Report) AddType(typeName string, locales []language.Tag, findings []verifier.Finding) {
	start := len(r.Results)
	index := make(map[language.Tag]int, len(locales))
	for _, locale := range locales {
		if _, ok := index[locale]; ok {
			continue
		}
		index[locale] = len(r.Results)
		r.Results = append(r.Results, Result{KeyType: typeName, Locale: locale})
	}

	for _, f := range findings {
		i, ok := index[f.Locale]
		if !ok {
			i = len(r.Results)
			index[f.Locale] = i
			r.Results = append(r.Results, Result{KeyType: typeName, Locale: f.Locale})
		}
		r.Results[i].Findings = append(r.Results[i].Findings, f)
	}

	for i := start; i < len(r.Results); i++ {
		if r.Results[i].Findings == nil {
			r.Results[i].Findings = []verifier.Finding{}
		}
	}
}

// AddError records a key type whose verification failed.
func (r *Report) AddError(typeName string, err error) {
	r.Errors = append(r.Errors, TypeError{KeyType: typeName, Err: err})
}

// Findings returns all findings in result order.
func (r *Report) Findings() []verifier.Finding {
	out := make([]verifier.Finding, 0, r.Total())
	for _, res := range r.Results {
		out = append(out, res.Findings...)
	}
	return out
}

// Total returns the number of findings.
func (r *Report) Total() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Findings)
	}
	return n
}

// Counts returns the number of findings per kind across all results.
func (r *Report) Counts() map[verifier.Kind]int {
	counts := make(map[verifier.Kind]int)
	for _, res := range r.Results {
		for kind, n := range res.Counts() {
			counts[kind] += n
		}
	}
	return counts
}

// KeyTypes returns the distinct key type names in the report, sorted.
func (r *Report) KeyTypes() []string {
	set := make(map[string]struct{})
	for _, res := range r.Results {
		set[res.KeyType] = struct{}{}
	}
	for _, e := range r.Errors {
		set[e.KeyType] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}

// HasFindings reports whether any result has findings.
func (r *Report) HasFindings() bool { return r.Total() > 0 }

// HasErrors reports whether any key type failed to verify.
func (r *Report) HasErrors() bool { return len(r.Errors) > 0 }

// Filter returns the findings whose kind is not in ignore.
func Filter(findings []verifier.Finding, ignore ...verifier.Kind) []verifier.Finding {
	out := make([]verifier.Finding, 0, len(findings))
	for _, f := range findings {
		if !slices.Contains(ignore, f.Kind) {
			out = append(out, f)
		}
	}
	return out
}
