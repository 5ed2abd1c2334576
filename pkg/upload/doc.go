// Package upload validates user-submitted files before they are persisted
// to object storage.
//
// A Chain runs a fixed sequence of checks against a single file: declared
// size, MIME type, filename extension, and a PDF active-content scan. The
// first failing check aborts the run and its error is returned to the
// caller, which must refuse to store the file.
//
// # Basic Usage
//
//	chain := upload.NewChain(upload.Config{
//		AllowedMIMETypes:  []string{"application/pdf", "image/jpeg", "image/png"},
//		AllowedExtensions: []string{"pdf", "jpg", "jpeg", "png"},
//		MaxFileSize:       5 << 20, // 5MB
//		RequireExtension:  true,
//	}, log)
//
//	err := chain.Validate(&upload.File{
//		Reader:      f,
//		Name:        fh.Filename,
//		ContentType: fh.Header.Get("Content-Type"),
//		Size:        fh.Size,
//	})
//	if err != nil {
//		var secErr *upload.SecurityError
//		if errors.As(err, &secErr) {
//			// Security rejection: respond with secErr.HTTPStatus / secErr.Code.
//		}
//		// Generic validation failure otherwise.
//	}
//
// # Error Tiers
//
// Generic failures (size, MIME type, extension) are reported as
// *ValidationError with a descriptive message. Security rejections (PDF
// active content, unreadable content during the scan) are reported as
// *SecurityError with a fixed code and a generic user-facing message;
// the detail that triggered the rejection is logged server-side only.
//
// # Stream Handling
//
// Validators only peek at the file content. The stream's read position
// after a full chain run equals its position before the run, so the same
// reader can be handed directly to the storage client.
//
// # PDF Scan Limitations
//
// The PDF check is a byte-pattern heuristic, not a PDF parser. Benign files
// containing a flagged byte sequence outside any active structure are
// rejected, and obfuscated or compressed streams may slip through. This is
// intentional; upgrading to full PDF parsing would change accept/reject
// behavior.
package upload
