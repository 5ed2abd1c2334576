package upload

import (
	"log/slog"
	"strings"

	"github.com/portalempleos/secureupload/pkg/logger"
)

// Config holds the validation policy for uploaded files. It is supplied
// once at chain construction and never mutated.
type Config struct {
	// AllowedMIMETypes is the set of acceptable content types
	// (e.g., "application/pdf", "image/jpeg").
	AllowedMIMETypes []string

	// AllowedExtensions is the set of acceptable file extensions, without
	// the leading dot (e.g., "pdf", "jpg").
	AllowedExtensions []string

	// MaxFileSize is the maximum allowed file size in bytes. Zero disables
	// the size check.
	MaxFileSize int64

	// RequireExtension rejects files whose name has no extension. When
	// false, extensionless files are accepted only if their sniffed
	// content type is allowed.
	RequireExtension bool
}

// allowsMIME reports whether a normalized MIME type is in the allowed set.
func (c Config) allowsMIME(mimeType string) bool {
	mimeType = normalizeMIME(mimeType)
	for _, allowed := range c.AllowedMIMETypes {
		if normalizeMIME(allowed) == mimeType {
			return true
		}
	}
	return false
}

// allowsExtension reports whether an extension (without dot) is in the
// allowed set.
func (c Config) allowsExtension(ext string) bool {
	for _, allowed := range c.AllowedExtensions {
		if strings.EqualFold(strings.TrimPrefix(allowed, "."), ext) {
			return true
		}
	}
	return false
}

// Validator is a single validation check. Implementations must not consume
// the file's stream: any peek restores the read position.
type Validator interface {
	// Validate checks the file and returns an error if it must be rejected.
	Validate(f *File) error
}

// Chain runs validators in a fixed, deterministic order: size, MIME type,
// extension, PDF security. The first rejection short-circuits the rest.
//
// A Chain is safe for concurrent use: the config is read-only and the
// validators keep no per-file state.
type Chain struct {
	validators []Validator
}

// NewChain creates a validation chain for the given policy. A nil logger
// disables audit logging.
func NewChain(cfg Config, log *slog.Logger) *Chain {
	if log == nil {
		log = logger.NewNope()
	}
	return &Chain{
		validators: []Validator{
			&sizeValidator{cfg: cfg},
			&mimeTypeValidator{cfg: cfg, log: log},
			&extensionValidator{cfg: cfg, log: log},
			&pdfSecurityValidator{log: log},
		},
	}
}

// Validate runs all validators against the file and returns the first
// rejection, or nil if the file is accepted. The file's read position is
// unchanged after the run.
func (c *Chain) Validate(f *File) error {
	for _, v := range c.validators {
		if err := v.Validate(f); err != nil {
			return err
		}
	}
	return nil
}
