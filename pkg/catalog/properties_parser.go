package catalog

import (
	"context"
	"errors"

	"github.com/magiconair/properties"
)

// PropertiesParser implements the Parser interface for Java style .properties
// files, the native resource bundle format. Property expansion (${key}) is
// disabled: values are kept verbatim.
type PropertiesParser struct{}

// NewPropertiesParser creates a new PropertiesParser instance
func NewPropertiesParser() *PropertiesParser {
	return &PropertiesParser{}
}

// Parse parses properties content and returns its entries
func (p *PropertiesParser) Parse(ctx context.Context, content []byte) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrPropertiesParsingCancelled, err)
	}

	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadBytes(content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseCatalog, err)
	}

	entries := make(map[string]string, props.Len())
	for _, key := range props.Keys() {
		value, _ := props.Get(key)
		entries[key] = value
	}
	return entries, nil
}

// Extensions implements Parser
func (p *PropertiesParser) Extensions() []string { return []string{"properties"} }

// SupportsFileExtension checks if the parser supports the given file extension
func (p *PropertiesParser) SupportsFileExtension(ext string) bool {
	return supportsExtension(p, ext)
}
