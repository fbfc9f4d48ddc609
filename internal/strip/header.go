package strip

import (
	"bytes"

	"github.com/phyten/decomment/internal/scan"
)

// HeaderComment renders a relative path as a comment in the file's own
// grammar, e.g. "/* static/app.js */" or "<!-- index.html -->".
func HeaderComment(g scan.Grammar, relPath string) string {
	switch g {
	case scan.GrammarHTML:
		return "<!-- " + relPath + " -->"
	case scan.GrammarCSS, scan.GrammarJS:
		return "/* " + relPath + " */"
	default:
		return ""
	}
}

// withHeader prepends the header comment. Leading whitespace of the
// body is dropped so the header always sits on line 1; a re-run strips
// the header (it is a comment) and re-adds it, so output is stable
// after the first pass.
func withHeader(body []byte, g scan.Grammar, relPath string) []byte {
	header := HeaderComment(g, relPath)
	if header == "" {
		return body
	}
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	out := make([]byte, 0, len(header)+1+len(trimmed))
	out = append(out, header...)
	out = append(out, '\n')
	return append(out, trimmed...)
}
