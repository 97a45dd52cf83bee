package catalog

import "errors"

var (
	// ErrNotFound is returned by loaders when no catalog exists for a name and locale.
	ErrNotFound = errors.New("catalog not found")

	ErrInvalidLocale        = errors.New("invalid locale")
	ErrInvalidName          = errors.New("invalid catalog name")
	ErrFailedToReadCatalog  = errors.New("failed to read catalog")
	ErrFailedToParseCatalog = errors.New("failed to parse catalog")
	ErrUnsupportedValue     = errors.New("unsupported catalog value")

	// Parser specific errors
	ErrYAMLParsingCancelled       = errors.New("yaml parsing cancelled")
	ErrJSONParsingCancelled       = errors.New("json parsing cancelled")
	ErrPropertiesParsingCancelled = errors.New("properties parsing cancelled")

	ErrLoadingCancelled = errors.New("loading catalog cancelled")
)

// S3 errors
var (
	ErrInvalidS3Config      = errors.New("invalid s3 configuration")
	ErrFailedToLoadS3Config = errors.New("failed to load AWS config")
)
