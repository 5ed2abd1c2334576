package storage

import "time"

// URLOption configures URL generation.
type URLOption func(*urlOptions)

// urlOptions holds configuration for URL generation.
type urlOptions struct {
	downloadName string        // Filename for Content-Disposition: attachment
	expiry       time.Duration // Signed URL expiry duration
	forcePublic  bool          // Force public URL regardless of ACL
}

// WithExpiry sets the expiry duration for signed URLs.
func WithExpiry(d time.Duration) URLOption {
	return func(o *urlOptions) {
		if d > 0 {
			o.expiry = d
		}
	}
}

// WithDownload sets the filename for the Content-Disposition: attachment
// header on a signed URL, forcing the browser to download the file.
func WithDownload(filename string) URLOption {
	return func(o *urlOptions) {
		o.downloadName = filename
	}
}

// WithPublic forces a public URL regardless of the storage profile's ACL.
// The object must actually be publicly readable for the URL to work.
func WithPublic() URLOption {
	return func(o *urlOptions) {
		o.forcePublic = true
	}
}
