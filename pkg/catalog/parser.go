package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Parser decodes the content of a single catalog file into flat entries.
type Parser interface {
	// Parse returns the catalog entries found in content. Empty content is a
	// valid, empty catalog.
	Parse(ctx context.Context, content []byte) (map[string]string, error)

	// Extensions lists the file extensions handled by the parser, without the
	// leading dot, in lookup order.
	Extensions() []string

	// SupportsFileExtension checks if the parser handles ext. The extension
	// may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// DefaultParsers returns the parsers used when a file based loader is created
// without explicit ones.
func DefaultParsers() []Parser {
	return []Parser{NewYAMLParser(), NewJSONParser(), NewPropertiesParser()}
}

// ParserForFile returns a parser based on the file extension, or nil.
func ParserForFile(filename string) Parser {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	for _, p := range DefaultParsers() {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

func supportsExtension(p Parser, ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	for _, e := range p.Extensions() {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// flatten converts decoded documents into dotted keys.
func flatten(prefix string, src map[string]any, dst map[string]string) error {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case nil:
			dst[key] = ""
		case string:
			dst[key] = val
		case bool, int, int64, uint64, float64:
			dst[key] = fmt.Sprint(val)
		case map[string]any:
			if err := flatten(key, val, dst); err != nil {
				return err
			}
		case map[any]any:
			nested := make(map[string]any, len(val))
			for nk, nv := range val {
				nested[fmt.Sprint(nk)] = nv
			}
			if err := flatten(key, nested, dst); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: key %q holds %T", ErrUnsupportedValue, key, v)
		}
	}
	return nil
}
