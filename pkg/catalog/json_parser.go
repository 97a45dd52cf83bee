package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
)

// JSONParser implements the Parser interface for JSON files
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses a JSON object and returns the flattened entries
func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrJSONParsingCancelled, err)
	}

	entries := make(map[string]string)
	if len(bytes.TrimSpace(content)) == 0 {
		return entries, nil
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseCatalog, err)
	}
	if err := flatten("", data, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Extensions implements Parser
func (p *JSONParser) Extensions() []string { return []string{"json"} }

// SupportsFileExtension checks if the parser supports the given file extension
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return supportsExtension(p, ext)
}
