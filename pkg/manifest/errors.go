package manifest

import "errors"

var (
	ErrInvalidManifest   = errors.New("invalid manifest")
	ErrFailedToRead      = errors.New("failed to read manifest")
	ErrFailedToParse     = errors.New("failed to parse manifest")
	ErrNoManifestMatched = errors.New("no manifest file matches the pattern")
)
