package scan

import "bytes"

// tokenClass is the coarse classification of the last significant
// token, kept only to decide whether a '/' starts a regex literal or a
// division. Whitespace and comments never update it.
type tokenClass int

const (
	// tokNone: start of input, regex is permitted.
	tokNone tokenClass = iota
	// tokValue: identifier, number, ')', ']', or a closed
	// string/template/regex literal. A '/' after one is division.
	tokValue
	// tokOperator: any operator or punctuator, '(', '[', '{', ',',
	// ';', ':', '}', and expression-position keywords. A '/' after one
	// starts a regex.
	tokOperator
)

type jsFrameKind int

const (
	frameTemplate jsFrameKind = iota
	frameSubstitution
)

// jsFrame is one entry of the explicit nesting stack. Template-literal
// substitutions re-enter code scanning and may open further template
// literals, so nesting depth is unbounded; the stack keeps it off the
// call stack.
type jsFrame struct {
	kind   jsFrameKind
	start  int // offset of the opening '`' or '${'
	braces int // substitution-local '{' depth
}

// Keywords after which a '/' begins a regex literal. Value-like words
// (this, true, null, super, ...) are deliberately absent: after them a
// '/' is division.
var jsRegexKeywords = map[string]bool{
	"await": true, "break": true, "case": true, "catch": true,
	"class": true, "const": true, "continue": true, "debugger": true,
	"default": true, "delete": true, "do": true, "else": true,
	"enum": true, "export": true, "extends": true, "finally": true,
	"for": true, "function": true, "if": true, "import": true,
	"in": true, "instanceof": true, "let": true, "new": true,
	"of": true, "return": true, "static": true, "switch": true,
	"throw": true, "try": true, "typeof": true, "var": true,
	"void": true, "while": true, "with": true, "yield": true,
}

type jsScanner struct {
	src   []byte
	i     int
	spans []Span
	prev  tokenClass
	stack []jsFrame
}

func scanJS(src []byte) ([]Span, error) {
	s := &jsScanner{src: src, prev: tokNone}
	if err := s.run(); err != nil {
		return nil, err
	}
	return s.spans, nil
}

func (s *jsScanner) run() error {
	for s.i < len(s.src) {
		if s.inTemplate() {
			if err := s.templateStep(); err != nil {
				return err
			}
			continue
		}
		if err := s.codeStep(); err != nil {
			return err
		}
	}
	if len(s.stack) > 0 {
		top := s.stack[len(s.stack)-1]
		construct := "template literal"
		if top.kind == frameSubstitution {
			construct = "template substitution"
		}
		return &UnterminatedError{Construct: construct, Offset: top.start}
	}
	return nil
}

func (s *jsScanner) inTemplate() bool {
	return len(s.stack) > 0 && s.stack[len(s.stack)-1].kind == frameTemplate
}

func (s *jsScanner) inSubstitution() bool {
	return len(s.stack) > 0 && s.stack[len(s.stack)-1].kind == frameSubstitution
}

// codeStep consumes one token (or one skip) of ordinary JS. It applies
// both at the top level and inside template substitutions.
func (s *jsScanner) codeStep() error {
	c := s.src[s.i]
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v':
		s.i++
	case c == '/':
		return s.slash()
	case c == '\'' || c == '"':
		return s.stringLiteral(c)
	case c == '`':
		s.stack = append(s.stack, jsFrame{kind: frameTemplate, start: s.i})
		s.i++
	case c == '{':
		if s.inSubstitution() {
			s.stack[len(s.stack)-1].braces++
		}
		s.i++
		s.prev = tokOperator
	case c == '}':
		if s.inSubstitution() {
			top := &s.stack[len(s.stack)-1]
			if top.braces == 0 {
				// Balances the '{' of '${'; resume the enclosing
				// template literal.
				s.stack = s.stack[:len(s.stack)-1]
				s.i++
				return nil
			}
			top.braces--
		}
		s.i++
		s.prev = tokOperator
	case c == ')' || c == ']':
		s.i++
		s.prev = tokValue
	case isIdentStart(c):
		s.identifier()
	case c >= '0' && c <= '9':
		s.number()
	default:
		s.i++
		s.prev = tokOperator
	}
	return nil
}

func (s *jsScanner) slash() error {
	if s.i+1 < len(s.src) {
		switch s.src[s.i+1] {
		case '/':
			s.lineComment()
			return nil
		case '*':
			return s.blockComment()
		}
	}
	if s.prev != tokValue {
		return s.regexLiteral()
	}
	s.i++
	s.prev = tokOperator
	return nil
}

// lineComment spans from '//' to the next line terminator, exclusive.
func (s *jsScanner) lineComment() {
	start := s.i
	end := len(s.src)
	for j := s.i + 2; j < len(s.src); j++ {
		if s.src[j] == '\n' || s.src[j] == '\r' {
			end = j
			break
		}
	}
	s.spans = append(s.spans, Span{Start: start, End: end, Kind: SpanLineComment})
	s.i = end
}

func (s *jsScanner) blockComment() error {
	start := s.i
	end := bytes.Index(s.src[s.i+2:], []byte("*/"))
	if end < 0 {
		return &UnterminatedError{Construct: "block comment", Offset: start}
	}
	stop := s.i + 2 + end + 2
	s.spans = append(s.spans, Span{Start: start, End: stop, Kind: SpanBlockComment})
	s.i = stop
	return nil
}

func (s *jsScanner) stringLiteral(quote byte) error {
	start := s.i
	s.i++
	for s.i < len(s.src) {
		c := s.src[s.i]
		switch {
		case c == '\\':
			// The escape consumes the next character atomically,
			// whatever it is; \<newline> is a line continuation.
			s.i++
			if s.i < len(s.src) {
				if s.src[s.i] == '\r' && s.i+1 < len(s.src) && s.src[s.i+1] == '\n' {
					s.i++
				}
				s.i++
			}
		case c == quote:
			s.i++
			s.prev = tokValue
			return nil
		case c == '\n' || c == '\r':
			return &UnterminatedError{Construct: "string literal", Offset: start}
		default:
			s.i++
		}
	}
	return &UnterminatedError{Construct: "string literal", Offset: start}
}

func (s *jsScanner) regexLiteral() error {
	start := s.i
	s.i++
	inClass := false
	for s.i < len(s.src) {
		c := s.src[s.i]
		switch {
		case c == '\\':
			s.i += 2
		case c == '\n' || c == '\r':
			return &UnterminatedError{Construct: "regex literal", Offset: start}
		case c == '[':
			inClass = true
			s.i++
		case c == ']':
			inClass = false
			s.i++
		case c == '/' && !inClass:
			s.i++
			for s.i < len(s.src) && isIdentPart(s.src[s.i]) {
				s.i++ // flag letters
			}
			s.prev = tokValue
			return nil
		default:
			s.i++
		}
	}
	return &UnterminatedError{Construct: "regex literal", Offset: start}
}

func (s *jsScanner) identifier() {
	start := s.i
	for s.i < len(s.src) && isIdentPart(s.src[s.i]) {
		s.i++
	}
	if jsRegexKeywords[string(s.src[start:s.i])] {
		s.prev = tokOperator
	} else {
		s.prev = tokValue
	}
}

func (s *jsScanner) number() {
	for s.i < len(s.src) {
		c := s.src[s.i]
		if isIdentPart(c) || c == '.' {
			s.i++
			continue
		}
		// exponent sign: 1e+9, 0x1p-3
		if (c == '+' || c == '-') && s.i > 0 {
			p := s.src[s.i-1]
			if p == 'e' || p == 'E' || p == 'p' || p == 'P' {
				s.i++
				continue
			}
		}
		break
	}
	s.prev = tokValue
}

// templateStep consumes input while the top frame is a template
// literal's raw text.
func (s *jsScanner) templateStep() error {
	c := s.src[s.i]
	switch {
	case c == '\\':
		s.i += 2
	case c == '`':
		s.stack = s.stack[:len(s.stack)-1]
		s.i++
		s.prev = tokValue
	case c == '$' && s.i+1 < len(s.src) && s.src[s.i+1] == '{':
		s.stack = append(s.stack, jsFrame{kind: frameSubstitution, start: s.i})
		s.i += 2
		s.prev = tokOperator
	default:
		s.i++
	}
	return nil
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
