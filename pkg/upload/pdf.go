package upload

import (
	"log/slog"
	"regexp"
)

// pdfThreatPatterns are structural PDF markers that indicate active
// content: auto-open actions, embedded JavaScript, external launches,
// interactive forms, rich media, and embedded files. Matching is
// case-insensitive over the raw bytes.
var pdfThreatPatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"openaction", regexp.MustCompile(`(?i)/OpenAction\s*<<`)},
	{"javascript", regexp.MustCompile(`(?i)/JavaScript\s*`)},
	{"js", regexp.MustCompile(`(?i)/JS\s*\(`)},
	{"launch", regexp.MustCompile(`(?i)/Launch\s*<<`)},
	{"action", regexp.MustCompile(`(?i)/AA\s*<<`)},
	{"acroform", regexp.MustCompile(`(?i)/AcroForm\s*<<`)},
	{"richmedia", regexp.MustCompile(`(?i)/RichMedia\s*<<`)},
	{"embedded_files", regexp.MustCompile(`(?i)/EmbeddedFiles\s*<<`)},
}

// pdfSecurityValidator scans PDF content for active-content markers.
// Non-PDF files pass through untouched. This is a byte-pattern heuristic,
// not a PDF parser; see the package documentation for its limitations.
type pdfSecurityValidator struct {
	log *slog.Logger
}

// Validate implements Validator. It never propagates an internal failure:
// anything unexpected during the scan resolves to a well-formed security
// rejection.
func (v *pdfSecurityValidator) Validate(f *File) (err error) {
	defer func() {
		if r := recover(); r != nil {
			v.log.Error("unexpected failure during pdf scan",
				slog.Any("panic", r),
				slog.String("file_name", f.Name))
			err = newSecurityError()
		}
	}()

	sniffed, serr := f.sniff()
	if serr != nil {
		v.log.Error("error reading content for pdf scan",
			slog.String("file_name", f.Name),
			slog.String("error", serr.Error()))
		return newSecurityError()
	}

	// Only content that identifies itself as PDF is scanned.
	if !isPDF(sniffed) {
		return nil
	}

	content, rerr := f.readAll()
	if rerr != nil {
		v.log.Error("error reading pdf content",
			slog.String("file_name", f.Name),
			slog.String("error", rerr.Error()))
		return newSecurityError()
	}

	for _, p := range pdfThreatPatterns {
		if p.re.Match(content) {
			// Log the pattern name only, never the matched content, to
			// keep log entries free of attacker-controlled bytes.
			v.log.Warn("malicious pdf pattern detected",
				slog.String("pattern_found", p.name),
				slog.Int("file_size", len(content)),
				slog.String("file_name", f.Name))
			return newSecurityError()
		}
	}

	return nil
}
