package upload

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMIMEByExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ext  string
		want string
	}{
		{"pdf", "application/pdf"},
		{"PDF", "application/pdf"},
		{"jpg", "image/jpeg"},
		{"jpeg", "image/jpeg"},
		{"docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, MIMEByExtension(tt.ext), "ext %q", tt.ext)
	}
}

func TestExtensionByMIME(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mime string
		want string
	}{
		{"application/pdf", "pdf"},
		{"image/jpeg", "jpg"},
		{"image/jpeg; charset=binary", "jpg"},
		{"application/x-unknown", ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ExtensionByMIME(tt.mime), "mime %q", tt.mime)
	}
}

func TestDetectContentType(t *testing.T) {
	t.Parallel()

	t.Run("detects and restores position", func(t *testing.T) {
		t.Parallel()

		r := bytes.NewReader(pngHeader)
		ct, err := DetectContentType(r)
		require.NoError(t, err)
		require.Equal(t, "image/png", ct)

		pos, err := r.Seek(0, io.SeekCurrent)
		require.NoError(t, err)
		require.Zero(t, pos)
	})

	t.Run("pdf signature", func(t *testing.T) {
		t.Parallel()

		ct, err := DetectContentType(bytes.NewReader([]byte("%PDF-1.4")))
		require.NoError(t, err)
		require.Equal(t, MIMETypePDF, ct)
	})

	t.Run("unrecognized binary falls back to octet-stream", func(t *testing.T) {
		t.Parallel()

		ct, err := DetectContentType(bytes.NewReader([]byte{0x00, 0x01, 0x02, 0x03}))
		require.NoError(t, err)
		require.Equal(t, MIMEOctetStream, ct)
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()

		ct, err := DetectContentType(bytes.NewReader(nil))
		require.NoError(t, err)
		require.Empty(t, ct)
	})
}

func TestNormalizeMIME(t *testing.T) {
	t.Parallel()

	require.Equal(t, "application/pdf", normalizeMIME("Application/PDF; charset=binary"))
	require.Equal(t, "text/plain", normalizeMIME(" text/plain "))
	require.Empty(t, normalizeMIME(""))
}

func TestFileExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"cv.pdf", "pdf"},
		{"CV.PDF", "pdf"},
		{"archive.tar.gz", "gz"},
		{"noextension", ""},
		{"", ""},
		{".gitignore", "gitignore"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, fileExt(tt.name), "name %q", tt.name)
	}
}
