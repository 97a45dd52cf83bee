package catalog

import (
	"bytes"
	"context"
	"errors"

	"gopkg.in/yaml.v3"
)

// YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse parses YAML content and returns the flattened entries
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	entries := make(map[string]string)
	if len(bytes.TrimSpace(content)) == 0 {
		return entries, nil
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseCatalog, err)
	}
	if err := flatten("", data, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Extensions implements Parser
func (p *YAMLParser) Extensions() []string { return []string{"yaml", "yml"} }

// SupportsFileExtension checks if the parser supports the given file extension
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	return supportsExtension(p, ext)
}
