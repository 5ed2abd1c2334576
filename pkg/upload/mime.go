package upload

import (
	"io"
	"path/filepath"
	"strings"
)

// MIME type constants.
const (
	// MIMEOctetStream is the fallback type for unrecognized content.
	MIMEOctetStream = "application/octet-stream"

	// MIMETypePDF and MIMETypePDFAdobe are the two accepted PDF content
	// signatures.
	MIMETypePDF      = "application/pdf"
	MIMETypePDFAdobe = "application/x-pdf"
)

// extensionMIMEs maps lowercase file extensions (without the dot) to MIME
// types for extension-based type guessing.
var extensionMIMEs = map[string]string{
	// Images
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
	"tif":  "image/tiff",
	"ico":  "image/x-icon",
	"avif": "image/avif",
	// Documents
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"ppt":  "application/vnd.ms-powerpoint",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"txt":  "text/plain",
	"csv":  "text/csv",
	"rtf":  "application/rtf",
	"html": "text/html",
	"json": "application/json",
	"xml":  "application/xml",
	// Video
	"mp4":  "video/mp4",
	"webm": "video/webm",
	"mov":  "video/quicktime",
	"avi":  "video/x-msvideo",
	// Audio
	"mp3": "audio/mpeg",
	"wav": "audio/wav",
	"ogg": "audio/ogg",
	"aac": "audio/aac",
	"m4a": "audio/mp4",
	// Archives
	"zip": "application/zip",
	"gz":  "application/gzip",
	"tar": "application/x-tar",
	"7z":  "application/x-7z-compressed",
	"rar": "application/x-rar-compressed",
}

// mimeExtensions maps MIME types to a preferred file extension, used for
// naming generated object keys.
var mimeExtensions = map[string]string{
	"image/jpeg":       "jpg",
	"image/png":        "png",
	"image/gif":        "gif",
	"image/webp":       "webp",
	"image/svg+xml":    "svg",
	"image/bmp":        "bmp",
	"image/tiff":       "tiff",
	"image/x-icon":     "ico",
	"image/avif":       "avif",
	"application/pdf":  "pdf",
	"application/zip":  "zip",
	"application/gzip": "gz",
	"application/json": "json",
	"application/xml":  "xml",
	"application/rtf":  "rtf",
	"application/msword": "doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "docx",
	"application/vnd.ms-excel": "xls",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         "xlsx",
	"application/vnd.ms-powerpoint":                                             "ppt",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": "pptx",
	"text/plain":      "txt",
	"text/csv":        "csv",
	"text/html":       "html",
	"video/mp4":       "mp4",
	"video/webm":      "webm",
	"video/quicktime": "mov",
	"audio/mpeg":      "mp3",
	"audio/wav":       "wav",
	"audio/ogg":       "ogg",
	"audio/mp4":       "m4a",
}

// MIMEByExtension returns the MIME type guessed from a file extension
// (without the dot, case-insensitive). Returns empty string when unknown.
func MIMEByExtension(ext string) string {
	return extensionMIMEs[strings.ToLower(ext)]
}

// ExtensionByMIME returns the preferred file extension (without the dot)
// for a MIME type. Returns empty string when unknown.
func ExtensionByMIME(mimeType string) string {
	return mimeExtensions[normalizeMIME(mimeType)]
}

// DetectContentType sniffs the MIME type from the leading bytes of a
// seekable reader and restores the read position afterward.
// Returns "application/octet-stream" when the content is unrecognized and
// an empty string for empty content.
func DetectContentType(r io.ReadSeeker) (string, error) {
	f := &File{Reader: r}
	return f.sniff()
}

// normalizeMIME extracts the base MIME type, dropping parameters like
// charset, and lowercases it.
func normalizeMIME(mimeType string) string {
	mimeType, _, _ = strings.Cut(mimeType, ";")
	return strings.TrimSpace(strings.ToLower(mimeType))
}

// fileExt extracts the lowercase extension from a filename, without the
// leading dot. Returns empty string when the filename has no extension.
func fileExt(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// isPDF reports whether a sniffed MIME type matches either accepted PDF
// signature.
func isPDF(mimeType string) bool {
	return mimeType == MIMETypePDF || mimeType == MIMETypePDFAdobe
}
