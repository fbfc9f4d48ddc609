package scan

import "bytes"

// scanCSS is the simplest scanner: CSS has block comments and string
// literals only, no line-comment syntax. Unquoted url(...) content
// needs no special case; '/*' cannot occur there in valid input.
func scanCSS(src []byte) ([]Span, error) {
	var spans []Span
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := bytes.Index(src[i+2:], []byte("*/"))
			if end < 0 {
				return nil, &UnterminatedError{Construct: "block comment", Offset: i}
			}
			stop := i + 2 + end + 2
			spans = append(spans, Span{Start: i, End: stop, Kind: SpanBlockComment})
			i = stop
		case c == '\'' || c == '"':
			next, err := cssString(src, i)
			if err != nil {
				return nil, err
			}
			i = next
		default:
			i++
		}
	}
	return spans, nil
}

// cssString consumes a string literal starting at the quote and
// returns the offset just past the closing quote. A backslash escapes
// the following character (an escaped newline continues the string); a
// raw line break is an error, same rule as JS strings.
func cssString(src []byte, start int) (int, error) {
	quote := src[start]
	i := start + 1
	for i < len(src) {
		c := src[i]
		switch {
		case c == '\\':
			i++
			if i < len(src) {
				if src[i] == '\r' && i+1 < len(src) && src[i+1] == '\n' {
					i++
				}
				i++
			}
		case c == quote:
			return i + 1, nil
		case c == '\n' || c == '\r':
			return 0, &UnterminatedError{Construct: "string literal", Offset: start}
		default:
			i++
		}
	}
	return 0, &UnterminatedError{Construct: "string literal", Offset: start}
}
