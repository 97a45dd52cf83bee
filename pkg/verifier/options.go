package verifier

import (
	"io"
	"log/slog"
)

// Option configures a Verifier.
type Option func(*Verifier)

// WithMetadata replaces the default InterfaceMetadata.
func WithMetadata(m Metadata) Option {
	return func(v *Verifier) {
		if m != nil {
			v.metadata = m
		}
	}
}

// WithLogger provides a logger for load failures and verification summaries.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Verifier) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithRegistry sets the registry NewFromName resolves names against.
func WithRegistry(r *Registry) Option {
	return func(v *Verifier) {
		if r != nil {
			v.registry = r
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
