package storage

// Option configures Put operations.
type Option func(*putOptions)

// putOptions holds configuration for Put operations.
type putOptions struct {
	key         string // Explicit key (replaces the name-derived key)
	contentType string // Caller-declared content type
}

// WithKey sets an explicit storage key, replacing the key derived from the
// filename. The location prefix is still applied.
func WithKey(key string) Option {
	return func(o *putOptions) {
		o.key = key
	}
}

// WithContentType declares the content type the caller received with the
// upload. It is the first candidate during type resolution; detection from
// the filename or content takes over when it is empty.
func WithContentType(ct string) Option {
	return func(o *putOptions) {
		o.contentType = ct
	}
}
