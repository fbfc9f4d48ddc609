// Package scan locates comment spans in HTML, CSS and JS text.
//
// The scanners are single-pass finite-state machines over raw bytes.
// They classify byte ranges only; nothing is parsed to an AST and the
// input is never validated beyond what comment detection requires.
// Comment-like byte sequences inside string literals, regex literals,
// template literals and CDATA sections are never reported.
package scan

import "fmt"

// SpanKind tags the construct that produced a comment span.
type SpanKind string

const (
	SpanLineComment  SpanKind = "line"
	SpanBlockComment SpanKind = "block"
	SpanHTMLComment  SpanKind = "html"
)

// Span is a half-open byte range [Start, End) within the scanned text.
// Spans returned by a scan are strictly ordered by Start and never
// overlap.
type Span struct {
	Start int      `json:"start"`
	End   int      `json:"end"`
	Kind  SpanKind `json:"kind"`
}

// UnterminatedError reports a construct still open at end of input.
// Offset is the byte position where the construct opened.
type UnterminatedError struct {
	Construct string
	Offset    int
}

func (e *UnterminatedError) Error() string {
	return fmt.Sprintf("unterminated %s at byte %d", e.Construct, e.Offset)
}

// Spans runs the grammar-appropriate scanner over src. On success the
// returned spans are ordered and non-overlapping. For an unsupported
// grammar it returns (nil, nil): pass-through is not an error.
func Spans(src []byte, g Grammar) ([]Span, error) {
	switch g {
	case GrammarJS:
		return scanJS(src)
	case GrammarCSS:
		return scanCSS(src)
	case GrammarHTML:
		return scanHTML(src)
	default:
		return nil, nil
	}
}
