package upload

import (
	"errors"
	"io"
	"net/http"
)

// sniffBytes is how much leading content is inspected for magic-byte
// detection.
const sniffBytes = 4096

// File is a single upload candidate: a seekable byte stream plus the
// metadata the caller declared for it. Validators only read the stream and
// restore its position after any peek.
type File struct {
	// Reader is the file content. It must support seeking so validators
	// can inspect the content without consuming it.
	Reader io.ReadSeeker

	// Name is the filename as submitted by the client.
	Name string

	// ContentType is the caller-declared MIME type, if any.
	ContentType string

	// Size is the declared size in bytes. Zero or negative means unknown;
	// the size check is skipped in that case.
	Size int64
}

// peek reads up to n leading bytes of the stream and restores the read
// position to where it was before the call.
func (f *File) peek(n int) ([]byte, error) {
	pos, err := f.Reader.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	if _, err := f.Reader.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	buf := make([]byte, n)
	m, err := io.ReadFull(f.Reader, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}

	if _, err := f.Reader.Seek(pos, io.SeekStart); err != nil {
		return nil, err
	}
	return buf[:m], nil
}

// readAll reads the full stream content and restores the read position.
func (f *File) readAll() ([]byte, error) {
	pos, err := f.Reader.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	if _, err := f.Reader.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(f.Reader)
	if err != nil {
		return nil, err
	}

	if _, err := f.Reader.Seek(pos, io.SeekStart); err != nil {
		return nil, err
	}
	return data, nil
}

// sniff detects the MIME type from the leading bytes of the stream.
// Returns an empty string for empty content.
func (f *File) sniff() (string, error) {
	head, err := f.peek(sniffBytes)
	if err != nil {
		return "", err
	}
	if len(head) == 0 {
		return "", nil
	}
	return normalizeMIME(http.DetectContentType(head)), nil
}
