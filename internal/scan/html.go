package scan

import (
	"bytes"
	"errors"
	"strings"
)

// scanHTML walks markup and delegates <script>/<style> raw-text
// regions to the JS/CSS scanners. Delegated spans are translated back
// into whole-file offsets before being merged, so the result is a
// single ordered span list.
func scanHTML(src []byte) ([]Span, error) {
	var spans []Span
	i := 0
	for i < len(src) {
		if src[i] != '<' {
			i++
			continue
		}
		switch {
		case hasPrefixAt(src, i, "<!--"):
			end := bytes.Index(src[i+4:], []byte("-->"))
			if end < 0 {
				return nil, &UnterminatedError{Construct: "html comment", Offset: i}
			}
			stop := i + 4 + end + 3
			spans = append(spans, Span{Start: i, End: stop, Kind: SpanHTMLComment})
			i = stop
		case hasPrefixAt(src, i, "<![CDATA["):
			end := bytes.Index(src[i+9:], []byte("]]>"))
			if end < 0 {
				return nil, &UnterminatedError{Construct: "cdata section", Offset: i}
			}
			i = i + 9 + end + 3
		case i+1 < len(src) && isTagChar(src[i+1]):
			name, closing := tagName(src, i)
			after, selfClosing, err := scanTag(src, i)
			if err != nil {
				return nil, err
			}
			i = after
			if closing || selfClosing {
				continue
			}
			switch strings.ToLower(name) {
			case "script":
				i, spans, err = rawText(src, i, "script", spans, scanJS)
			case "style":
				i, spans, err = rawText(src, i, "style", spans, scanCSS)
			}
			if err != nil {
				return nil, err
			}
		default:
			i++
		}
	}
	return spans, nil
}

// rawText buffers text up to the matching close tag (case-insensitive)
// and runs sub over it. A missing close tag hands the rest of the
// input to sub, matching browser raw-text behavior.
func rawText(src []byte, start int, name string, spans []Span, sub func([]byte) ([]Span, error)) (int, []Span, error) {
	closeAt := indexCloseTag(src, start, name)
	end := closeAt
	if end < 0 {
		end = len(src)
	}
	inner, err := sub(src[start:end])
	if err != nil {
		var ue *UnterminatedError
		if errors.As(err, &ue) {
			ue.Offset += start
		}
		return 0, spans, err
	}
	for _, sp := range inner {
		spans = append(spans, Span{Start: sp.Start + start, End: sp.End + start, Kind: sp.Kind})
	}
	if closeAt < 0 {
		return len(src), spans, nil
	}
	after, _, err := scanTag(src, closeAt)
	if err != nil {
		return 0, spans, err
	}
	return after, spans, nil
}

// indexCloseTag finds "</name" (any case) followed by '>', '/' or
// whitespace, starting the search at from.
func indexCloseTag(src []byte, from int, name string) int {
	pat := "</" + name
	for i := from; i+len(pat) <= len(src); i++ {
		if !foldEqualAt(src, i, pat) {
			continue
		}
		j := i + len(pat)
		if j == len(src) {
			return i
		}
		switch src[j] {
		case '>', '/', ' ', '\t', '\n', '\r', '\f':
			return i
		}
	}
	return -1
}

// scanTag consumes from '<' to the matching '>', honoring quoted
// attribute values. HTML attribute values have no backslash escaping;
// the closing quote is always literal.
func scanTag(src []byte, start int) (after int, selfClosing bool, err error) {
	i := start + 1
	for i < len(src) {
		c := src[i]
		switch c {
		case '>':
			return i + 1, i > start+1 && src[i-1] == '/', nil
		case '\'', '"':
			close := bytes.IndexByte(src[i+1:], c)
			if close < 0 {
				return 0, false, &UnterminatedError{Construct: "attribute value", Offset: i}
			}
			i = i + 1 + close + 1
		default:
			i++
		}
	}
	return 0, false, &UnterminatedError{Construct: "tag", Offset: start}
}

func tagName(src []byte, start int) (name string, closing bool) {
	i := start + 1
	if i < len(src) && src[i] == '/' {
		closing = true
		i++
	}
	j := i
	for j < len(src) && isNameChar(src[j]) {
		j++
	}
	return string(src[i:j]), closing
}

func hasPrefixAt(src []byte, i int, prefix string) bool {
	return i+len(prefix) <= len(src) && string(src[i:i+len(prefix)]) == prefix
}

func foldEqualAt(src []byte, i int, pat string) bool {
	for k := 0; k < len(pat); k++ {
		if lowerByte(src[i+k]) != lowerByte(pat[k]) {
			return false
		}
	}
	return true
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func isTagChar(c byte) bool {
	return c == '/' || c == '!' || c == '?' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return c == '-' || c == ':' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
