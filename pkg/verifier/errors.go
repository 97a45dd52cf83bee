package verifier

import "errors"

var (
	// ErrKeyTypeNotFound is returned when a key type name cannot be resolved.
	ErrKeyTypeNotFound = errors.New("key type not found")

	// ErrNoLocales is returned by VerifyAllLocales when the key type declares no locales.
	ErrNoLocales = errors.New("key type declares no locales")

	ErrInvalidKeyType   = errors.New("invalid key type")
	ErrDuplicateKeyType = errors.New("key type already registered")
	ErrUnknownKind      = errors.New("unknown finding kind")
)
