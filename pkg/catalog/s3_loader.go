package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"golang.org/x/text/language"
)

// S3Client is the subset of the S3 API used by S3Loader.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config contains the connection settings for an S3 or S3-compatible bucket.
type S3Config struct {
	Bucket         string `env:"BUCKET"`
	Prefix         string `env:"PREFIX"`
	Region         string `env:"REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"ACCESS_KEY_ID"`
	SecretKey      string `env:"SECRET_KEY"`
	Endpoint       string `env:"ENDPOINT"`                              // Optional: for S3-compatible services
	ForcePathStyle bool   `env:"FORCE_PATH_STYLE" envDefault:"false"` // For S3-compatible services like MinIO
}

// NewS3Client builds an S3 client from cfg using the default AWS credential
// chain unless static credentials are provided.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidS3Config
	}

	awsOptions := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		awsOptions = append(awsOptions,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretKey,
				"",
			)),
		)
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadS3Config, err)
	}

	return s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	}), nil
}

// S3Loader reads catalog files stored as objects, named like the files read by
// FSLoader and placed under an optional key prefix.
type S3Loader struct {
	client  S3Client
	bucket  string
	prefix  string
	parsers []Parser
}

// NewS3Loader panics if client is nil or bucket is empty.
// DefaultParsers are used when none are given.
func NewS3Loader(client S3Client, bucket, prefix string, parsers ...Parser) *S3Loader {
	if client == nil {
		panic("catalog: s3 loader requires a client")
	}
	if bucket == "" {
		panic("catalog: s3 loader requires a bucket")
	}
	if len(parsers) == 0 {
		parsers = DefaultParsers()
	}
	return &S3Loader{client: client, bucket: bucket, prefix: prefix, parsers: parsers}
}

// Load implements the Loader interface
func (l *S3Loader) Load(ctx context.Context, name string, locale language.Tag) (*Catalog, error) {
	for _, spelling := range localeSpellings(locale) {
		for _, p := range l.parsers {
			for _, ext := range p.Extensions() {
				key := path.Join(l.prefix, fmt.Sprintf("%s_%s.%s", name, spelling, ext))

				content, err := l.read(ctx, key)
				if errors.Is(err, ErrNotFound) {
					continue
				}
				if err != nil {
					return nil, err
				}

				entries, err := p.Parse(ctx, content)
				if err != nil {
					return nil, errors.Join(fmt.Errorf("%w: s3://%s/%s", ErrFailedToParseCatalog, l.bucket, key), err)
				}
				return New(name, locale, entries), nil
			}
		}
	}
	return nil, ErrNotFound
}

func (l *S3Loader) read(ctx context.Context, key string) ([]byte, error) {
	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return nil, ErrNotFound
		}
		if ctx.Err() != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		return nil, errors.Join(ErrFailedToReadCatalog, err)
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadCatalog, err)
	}
	return content, nil
}

func isS3NotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
