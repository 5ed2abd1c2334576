package upload

import (
	"fmt"
	"log/slog"
)

// extensionValidator checks the filename extension against the allowed
// set. Extensionless files are rejected when the policy requires an
// extension; otherwise they must prove their type by content sniffing.
// The extension and MIME checks are independent: a file must pass both.
type extensionValidator struct {
	cfg Config
	log *slog.Logger
}

// Validate implements Validator.
func (v *extensionValidator) Validate(f *File) error {
	ext := fileExt(f.Name)

	if ext == "" {
		if v.cfg.RequireExtension {
			return &ValidationError{
				Code:    ErrCodeInvalidExtension,
				Message: "files without extension are not allowed",
			}
		}

		// No extension and none required: the sniffed content type stands
		// in for the missing extension.
		sniffed, err := f.sniff()
		if err != nil {
			v.log.Error("error validating file without extension",
				slog.String("file_name", f.Name),
				slog.String("error", err.Error()))
			return &ValidationError{
				Code:    ErrCodeTypeUndetermined,
				Message: "could not validate file type",
			}
		}
		if sniffed == "" || !v.cfg.allowsMIME(sniffed) {
			return &ValidationError{
				Code:    ErrCodeInvalidMIME,
				Message: "file type not allowed",
			}
		}
		return nil
	}

	if !v.cfg.allowsExtension(ext) {
		return &ValidationError{
			Code:    ErrCodeInvalidExtension,
			Message: fmt.Sprintf("file extension not allowed: %s", ext),
			Details: map[string]any{
				"extension": ext,
				"allowed":   v.cfg.AllowedExtensions,
			},
		}
	}

	return nil
}
