package upload

import (
	"fmt"
	"log/slog"
)

// mimeTypeValidator resolves the file's content type and rejects it when
// the type is not in the allowed set. Resolution order: caller-declared
// type, guess from the filename extension, magic-byte sniff of the leading
// content.
type mimeTypeValidator struct {
	cfg Config
	log *slog.Logger
}

// Validate implements Validator.
func (v *mimeTypeValidator) Validate(f *File) error {
	contentType := normalizeMIME(f.ContentType)

	if contentType == "" {
		contentType = MIMEByExtension(fileExt(f.Name))
	}

	if contentType == "" {
		sniffed, err := f.sniff()
		if err != nil {
			v.log.Error("error detecting mime type",
				slog.String("file_name", f.Name),
				slog.String("error", err.Error()))
			return &ValidationError{
				Code:    ErrCodeTypeUndetermined,
				Message: "could not determine file type",
			}
		}
		contentType = sniffed
	}

	if contentType == "" {
		return &ValidationError{
			Code:    ErrCodeTypeUndetermined,
			Message: "could not determine file type",
		}
	}

	if !v.cfg.allowsMIME(contentType) {
		v.log.Warn("file mime type not allowed",
			slog.String("mime_type", contentType),
			slog.Any("allowed_mime_types", v.cfg.AllowedMIMETypes))
		return &ValidationError{
			Code:    ErrCodeInvalidMIME,
			Message: fmt.Sprintf("file mime type not allowed: %s", contentType),
			Details: map[string]any{
				"type":    contentType,
				"allowed": v.cfg.AllowedMIMETypes,
			},
		}
	}

	return nil
}
