package upload

import "fmt"

// sizeValidator rejects files whose declared size exceeds the configured
// maximum. Files without a known size pass through; the read limits of
// later stages bound how much content is ever inspected.
type sizeValidator struct {
	cfg Config
}

// Validate implements Validator.
func (v *sizeValidator) Validate(f *File) error {
	if f.Size <= 0 || v.cfg.MaxFileSize <= 0 {
		return nil
	}
	if f.Size > v.cfg.MaxFileSize {
		return &ValidationError{
			Code: ErrCodeFileTooLarge,
			Message: fmt.Sprintf("file size exceeds maximum allowed size of %.1fMB",
				float64(v.cfg.MaxFileSize)/(1<<20)),
			Details: map[string]any{
				"limit": v.cfg.MaxFileSize,
				"got":   f.Size,
			},
		}
	}
	return nil
}
