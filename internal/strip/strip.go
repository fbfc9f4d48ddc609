// Package strip removes comment spans from a single buffer and
// reconstructs the output text.
//
// Line-preservation policy: a stripped block or HTML comment is
// replaced by one newline per line terminator it contained, keeping
// downstream line numbers stable. A stripped line comment leaves the
// rest of its line untouched, except when the source line held nothing
// but whitespace and the comment; then the whole line, indentation and
// terminator included, is removed.
package strip

import (
	"bytes"
	"errors"

	"github.com/phyten/decomment/internal/model"
	"github.com/phyten/decomment/internal/scan"
)

// Options control per-file behavior.
type Options struct {
	// Header, when non-empty, is a relative path embedded as a comment
	// on the first line of the output, in the file's own grammar.
	Header string
}

// Result is the outcome of stripping one buffer. Output always holds a
// complete, valid text: the reconstruction on success, or the original
// bytes untouched when the file is unsupported or unparseable.
type Result struct {
	Output []byte
	Spans  []scan.Span
	Status model.FileStatus
	Err    error
}

// File scans src with the grammar-appropriate scanner and rebuilds the
// text without its comments. On an unterminated construct the original
// content is returned unchanged; partially-stripped output is never
// produced.
func File(src []byte, g scan.Grammar, opts Options) Result {
	if g == scan.GrammarUnsupported {
		return Result{Output: src, Status: model.StatusUnsupported}
	}
	spans, err := scan.Spans(src, g)
	if err != nil {
		return Result{Output: src, Status: model.StatusUnparseable, Err: err}
	}
	out := rebuild(src, spans)
	if opts.Header != "" {
		out = withHeader(out, g, opts.Header)
	}
	if bytes.Equal(out, src) {
		return Result{Output: src, Spans: spans, Status: model.StatusClean}
	}
	return Result{Output: out, Spans: spans, Status: model.StatusStripped}
}

func rebuild(src []byte, spans []scan.Span) []byte {
	if len(spans) == 0 {
		return src
	}
	var out bytes.Buffer
	out.Grow(len(src))
	prev := 0
	for _, sp := range spans {
		if sp.Kind == scan.SpanLineComment && blankBefore(src, sp.Start) {
			lineStart := lineStartOf(src, sp.Start)
			if lineStart >= prev {
				out.Write(src[prev:lineStart])
				prev = skipTerminator(src, sp.End)
				continue
			}
		}
		out.Write(src[prev:sp.Start])
		for _, b := range src[sp.Start:sp.End] {
			if b == '\n' {
				out.WriteByte('\n')
			}
		}
		prev = sp.End
	}
	out.Write(src[prev:])
	return out.Bytes()
}

// blankBefore reports whether the text between the start of the line
// and pos is whitespace only.
func blankBefore(src []byte, pos int) bool {
	for i := lineStartOf(src, pos); i < pos; i++ {
		if src[i] != ' ' && src[i] != '\t' {
			return false
		}
	}
	return true
}

func lineStartOf(src []byte, pos int) int {
	if i := bytes.LastIndexByte(src[:pos], '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

func skipTerminator(src []byte, pos int) int {
	if pos < len(src) && src[pos] == '\r' {
		pos++
	}
	if pos < len(src) && src[pos] == '\n' {
		pos++
	}
	return pos
}

// IsUnterminated reports whether err marks a file as unparseable.
func IsUnterminated(err error) bool {
	var ue *scan.UnterminatedError
	return errors.As(err, &ue)
}
