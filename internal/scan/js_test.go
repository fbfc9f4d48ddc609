package scan

import (
	"errors"
	"testing"
)

func TestScanJSBasicComments(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Span
	}{
		{
			name: "line comment after code",
			src:  "const s = \"http://x.com\"; // note\nlet y = 1;",
			want: []Span{{Start: 26, End: 33, Kind: SpanLineComment}},
		},
		{
			name: "line comment at eof without terminator",
			src:  "let x = 1; // tail",
			want: []Span{{Start: 11, End: 18, Kind: SpanLineComment}},
		},
		{
			name: "block comment inline",
			src:  "let a = /* mid */ 1;",
			want: []Span{{Start: 8, End: 17, Kind: SpanBlockComment}},
		},
		{
			name: "block comment spanning lines",
			src:  "a();\n/* one\ntwo\n*/\nb();",
			want: []Span{{Start: 5, End: 18, Kind: SpanBlockComment}},
		},
		{
			name: "comment markers inside double-quoted string",
			src:  `let u = "// not /* a */ comment";`,
			want: nil,
		},
		{
			name: "comment markers inside single-quoted string",
			src:  `let u = '/* nope */';`,
			want: nil,
		},
		{
			name: "escaped quote does not close the string",
			src:  `let s = "a\" // b"; // real`,
			want: []Span{{Start: 20, End: 27, Kind: SpanLineComment}},
		},
		{
			name: "two line comments",
			src:  "// a\n// b\n",
			want: []Span{
				{Start: 0, End: 4, Kind: SpanLineComment},
				{Start: 5, End: 9, Kind: SpanLineComment},
			},
		},
		{
			name: "empty input",
			src:  "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scanJS([]byte(tt.src))
			if err != nil {
				t.Fatalf("scanJS error: %v", err)
			}
			assertSpans(t, got, tt.want)
		})
	}
}

func TestScanJSRegexVsDivision(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int // number of comment spans found
	}{
		{"regex after assignment", `let r = /\/\*x\*\//;`, 0},
		{"regex after open paren", `f(/a\/b/); // t`, 1},
		{"regex after return", "function f() { return /x\\/y/; }", 0},
		{"regex with comment markers in class", `let r = /[/*]/;`, 0},
		{"division after identifier", "let q = total / count; // half", 1},
		{"division after close paren", "let q = (a + b) / 2;", 0},
		{"division after close bracket", "let q = arr[0] / 2;", 0},
		{"division after number", "let q = 10 / 5;", 0},
		{"regex after comma", "f(a, /b\\/c/);", 0},
		{"regex after typeof", "typeof /x/;", 0},
		{"regex at start of input", `/ab\/cd/.test(s);`, 0},
		{"regex after open brace", "{ /x\\/y/.test(s); }", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scanJS([]byte(tt.src))
			if err != nil {
				t.Fatalf("scanJS error: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("span count mismatch: got %d want %d (%v)", len(got), tt.want, got)
			}
		})
	}
}

func TestScanJSTemplateLiterals(t *testing.T) {
	t.Run("comment markers inside template text are not comments", func(t *testing.T) {
		got, err := scanJS([]byte("let t = `a // b /* c */`;"))
		if err != nil {
			t.Fatalf("scanJS error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no spans, got %v", got)
		}
	})

	t.Run("comment inside substitution is live code", func(t *testing.T) {
		src := "`a${/* live */ 1}b`"
		got, err := scanJS([]byte(src))
		if err != nil {
			t.Fatalf("scanJS error: %v", err)
		}
		want := []Span{{Start: 4, End: 14, Kind: SpanBlockComment}}
		assertSpans(t, got, want)
	})

	t.Run("nested template inside substitution", func(t *testing.T) {
		src := "`x${`y${/* deep */ 1}z`}w`"
		got, err := scanJS([]byte(src))
		if err != nil {
			t.Fatalf("scanJS error: %v", err)
		}
		want := []Span{{Start: 8, End: 18, Kind: SpanBlockComment}}
		assertSpans(t, got, want)
	})

	t.Run("braces inside substitution do not close it", func(t *testing.T) {
		src := "`v=${fn({a: 1})} /* text */`"
		got, err := scanJS([]byte(src))
		if err != nil {
			t.Fatalf("scanJS error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no spans, got %v", got)
		}
	})

	t.Run("escaped backtick stays inside the template", func(t *testing.T) {
		got, err := scanJS([]byte("let t = `a\\` // b`;"))
		if err != nil {
			t.Fatalf("scanJS error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no spans, got %v", got)
		}
	})
}

func TestScanJSUnterminated(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		construct string
		offset    int
	}{
		{"block comment", "a();\n/* open", "block comment", 5},
		{"string", `let s = "abc`, "string literal", 8},
		{"string with raw newline", "let s = \"ab\ncd\";", "string literal", 8},
		{"regex", "let r = /ab", "regex literal", 8},
		{"template", "let t = `abc", "template literal", 8},
		{"substitution", "let t = `a${1", "template substitution", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scanJS([]byte(tt.src))
			var ue *UnterminatedError
			if !errors.As(err, &ue) {
				t.Fatalf("expected UnterminatedError, got %v", err)
			}
			if ue.Construct != tt.construct {
				t.Fatalf("construct mismatch: got %q want %q", ue.Construct, tt.construct)
			}
			if ue.Offset != tt.offset {
				t.Fatalf("offset mismatch: got %d want %d", ue.Offset, tt.offset)
			}
		})
	}
}

func TestScanJS行継続を含む文字列(t *testing.T) {
	src := "let s = \"ab\\\ncd\"; // c"
	got, err := scanJS([]byte(src))
	if err != nil {
		t.Fatalf("scanJS error: %v", err)
	}
	want := []Span{{Start: 18, End: 22, Kind: SpanLineComment}}
	assertSpans(t, got, want)
}

// assertSpans fails when the two lists differ, with positional detail.
func assertSpans(t *testing.T, got, want []Span) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("span count mismatch: got %d want %d (%v)", len(got), len(want), got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("span %d mismatch: got %+v want %+v", i, got[i], want[i])
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].Start < got[i-1].End {
			t.Fatalf("spans overlap or unordered: %+v then %+v", got[i-1], got[i])
		}
	}
}
