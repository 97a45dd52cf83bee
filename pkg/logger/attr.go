package logger

import (
	"log/slog"

	"golang.org/x/text/language"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// KeyType records the key type name under the key "key_type".
func KeyType(name string) slog.Attr {
	return slog.String("key_type", name)
}

// Catalog records the catalog base name under the key "catalog".
func Catalog(name string) slog.Attr {
	return slog.String("catalog", name)
}

// Locale records a locale under the key "locale".
func Locale(tag language.Tag) slog.Attr {
	return slog.String("locale", tag.String())
}

// Kind records a finding kind under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Source records the catalog source (fs, redis, ...) under the key "source".
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// Path records a file path under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Count records a number of items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
