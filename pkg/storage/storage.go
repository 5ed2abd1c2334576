package storage

import (
	"context"
	"io"
	"time"
)

// Storage defines the interface for object storage operations.
type Storage interface {
	// Put uploads content to storage under the given filename. The reader
	// must be seekable: validators peek at the content and the SDK needs
	// to rewind for payload signing. Size is the declared content length;
	// pass zero when unknown.
	Put(ctx context.Context, r io.ReadSeeker, name string, size int64, opts ...Option) (*FileInfo, error)

	// Get retrieves a file from storage.
	// The caller is responsible for closing the returned reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a file from storage.
	Delete(ctx context.Context, key string) error

	// URL generates a URL for accessing the file: public/CDN for public
	// objects, presigned otherwise.
	URL(ctx context.Context, key string, opts ...URLOption) (string, error)
}

// Config holds S3-compatible storage configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	// Bucket is the S3 bucket name (required).
	Bucket string `env:"AWS_STORAGE_BUCKET_NAME"`

	// AccessKey is the AWS access key ID (required).
	AccessKey string `env:"AWS_ACCESS_KEY_ID"`

	// SecretKey is the AWS secret access key (required).
	SecretKey string `env:"AWS_SECRET_ACCESS_KEY"`

	// Region is the AWS region (default: us-east-1).
	Region string `env:"AWS_S3_REGION_NAME" envDefault:"us-east-1"`

	// Endpoint is a custom S3 endpoint URL (optional, for MinIO or other
	// S3-compatible services).
	Endpoint string `env:"AWS_S3_ENDPOINT_URL"`

	// CustomDomain is the CDN or public domain serving the bucket
	// (optional). When set, public URLs use it instead of the S3 URL.
	CustomDomain string `env:"AWS_S3_CUSTOM_DOMAIN"`

	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool `env:"AWS_S3_PATH_STYLE"`

	// SignedURLExpiry is the lifetime of presigned GET URLs
	// (default: 15 minutes).
	SignedURLExpiry time.Duration `env:"AWS_QUERYSTRING_EXPIRE" envDefault:"15m"`
}

// applyDefaults fills in default values for empty config fields.
func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.SignedURLExpiry <= 0 {
		c.SignedURLExpiry = DefaultSignedURLExpiry
	}
}

// validate checks that required configuration fields are set.
func (c *Config) validate() error {
	if c.Bucket == "" || c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}

// FileInfo contains metadata about an uploaded file.
type FileInfo struct {
	// Key is the storage key (path) for the file.
	Key string

	// ContentType is the resolved MIME type.
	ContentType string

	// ACL is the access control setting.
	ACL ACL

	// Size is the file size in bytes.
	Size int64
}

// ACL represents access control levels for stored files.
type ACL string

const (
	// ACLPrivate makes the file accessible only via signed URLs.
	ACLPrivate ACL = "private"

	// ACLPublicRead makes the file publicly readable.
	ACLPublicRead ACL = "public-read"
)

// Default configuration values.
const (
	DefaultRegion          = "us-east-1"
	DefaultSignedURLExpiry = 15 * time.Minute

	// LocationMedia and LocationStatic are the key prefixes for the two
	// storage profiles.
	LocationMedia  = "media"
	LocationStatic = "static"
)

// Cache-control headers per profile. Validated uploads must never be
// cached by intermediaries; static assets are cached for a week.
const (
	cacheControlNoStore = "no-cache, no-store, must-revalidate"
	cacheControlStatic  = "max-age=604800, s-maxage=604800, must-revalidate"
)
