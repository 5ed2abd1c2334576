package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
)

// PutFile uploads a multipart file header to storage. The client-declared
// Content-Type travels with the upload as the first candidate during type
// resolution; detection from the filename or magic bytes takes over when
// the client declared none.
// Returns ErrEmptyFile if the file is nil or has zero size.
func PutFile(ctx context.Context, s Storage, fh *multipart.FileHeader, opts ...Option) (*FileInfo, error) {
	if fh == nil || fh.Size == 0 {
		return nil, ErrEmptyFile
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("storage: failed to open file: %w", err)
	}
	defer f.Close()

	if ct := fh.Header.Get("Content-Type"); ct != "" {
		opts = append(opts, WithContentType(ct))
	}

	return s.Put(ctx, f, fh.Filename, fh.Size, opts...)
}

// PutBytes uploads byte data to storage under the given filename.
func PutBytes(ctx context.Context, s Storage, data []byte, filename string, opts ...Option) (*FileInfo, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	return s.Put(ctx, bytes.NewReader(data), filename, int64(len(data)), opts...)
}
