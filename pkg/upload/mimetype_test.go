package upload

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/portalempleos/secureupload/pkg/logger"
)

// pngHeader is a minimal PNG signature, enough for magic-byte detection.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

var testPolicy = Config{
	AllowedMIMETypes:  []string{"application/pdf", "image/jpeg", "image/png"},
	AllowedExtensions: []string{"pdf", "jpg", "jpeg", "png"},
	MaxFileSize:       5 << 20,
	RequireExtension:  true,
}

func TestMimeTypeValidator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     []byte
		fileName    string
		contentType string
		wantCode    string
	}{
		{"declared type allowed", nil, "cv.pdf", "application/pdf", ""},
		{"declared type rejected", nil, "cv.zip", "application/zip", ErrCodeInvalidMIME},
		{"declared type with charset parameter", nil, "cv.pdf", "application/PDF; charset=binary", ""},
		{"guessed from extension allowed", nil, "photo.jpg", "", ""},
		{"guessed from extension rejected", nil, "run.exe", "", ErrCodeInvalidMIME},
		{"sniffed from content allowed", pngHeader, "upload", "", ""},
		{"sniffed from content rejected", []byte("GIF89a000000"), "", "", ErrCodeInvalidMIME},
		{"sniffed pdf allowed", []byte("%PDF-1.4 body"), "", "", ""},
		{"undetermined empty content", nil, "", "", ErrCodeTypeUndetermined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := &mimeTypeValidator{cfg: testPolicy, log: logger.NewNope()}
			err := v.Validate(testFile(tt.content, tt.fileName, tt.contentType, int64(len(tt.content))))

			if tt.wantCode == "" {
				require.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.wantCode, verr.Code)
		})
	}
}

func TestMimeTypeValidatorResolutionOrder(t *testing.T) {
	t.Parallel()

	t.Run("declared type wins over content", func(t *testing.T) {
		t.Parallel()

		// PNG bytes but a disallowed declared type: the declaration is
		// checked, not the content.
		v := &mimeTypeValidator{cfg: testPolicy, log: logger.NewNope()}
		err := v.Validate(testFile(pngHeader, "photo.png", "application/zip", int64(len(pngHeader))))

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, ErrCodeInvalidMIME, verr.Code)
		require.Contains(t, verr.Message, "application/zip")
	})

	t.Run("extension guess wins over content", func(t *testing.T) {
		t.Parallel()

		// PNG bytes named .zip: the extension table resolves first.
		v := &mimeTypeValidator{cfg: testPolicy, log: logger.NewNope()}
		err := v.Validate(testFile(pngHeader, "photo.zip", "", int64(len(pngHeader))))

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, ErrCodeInvalidMIME, verr.Code)
	})

	t.Run("sniffing is the last resort", func(t *testing.T) {
		t.Parallel()

		v := &mimeTypeValidator{cfg: testPolicy, log: logger.NewNope()}
		require.NoError(t, v.Validate(testFile(pngHeader, "noextension", "", int64(len(pngHeader)))))
	})
}
