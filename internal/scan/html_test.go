package scan

import (
	"errors"
	"testing"
)

func TestScanHTMLComments(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Span
	}{
		{
			name: "plain comment",
			src:  "<p>a</p><!-- note --><p>b</p>",
			want: []Span{{Start: 8, End: 21, Kind: SpanHTMLComment}},
		},
		{
			name: "comment-like text in quoted attribute",
			src:  `<a title="<!-- x -->">hi</a>`,
			want: nil,
		},
		{
			name: "gt inside quoted attribute does not end the tag",
			src:  `<a title="a>b">x</a><!-- c -->`,
			want: []Span{{Start: 20, End: 30, Kind: SpanHTMLComment}},
		},
		{
			name: "cdata content is skipped",
			src:  "<![CDATA[ <!-- x --> ]]><!-- y -->",
			want: []Span{{Start: 24, End: 34, Kind: SpanHTMLComment}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scanHTML([]byte(tt.src))
			if err != nil {
				t.Fatalf("scanHTML error: %v", err)
			}
			assertSpans(t, got, tt.want)
		})
	}
}

func TestScanHTMLDelegation(t *testing.T) {
	t.Run("script delegates to js rules", func(t *testing.T) {
		src := "<script>// hi</script><!-- hello -->"
		got, err := scanHTML([]byte(src))
		if err != nil {
			t.Fatalf("scanHTML error: %v", err)
		}
		want := []Span{
			{Start: 8, End: 13, Kind: SpanLineComment},
			{Start: 22, End: 36, Kind: SpanHTMLComment},
		}
		assertSpans(t, got, want)
	})

	t.Run("style delegates to css rules", func(t *testing.T) {
		src := "<style>/* c */</style>"
		got, err := scanHTML([]byte(src))
		if err != nil {
			t.Fatalf("scanHTML error: %v", err)
		}
		assertSpans(t, got, []Span{{Start: 7, End: 14, Kind: SpanBlockComment}})
	})

	t.Run("html comment syntax is inert inside script", func(t *testing.T) {
		src := `<script>let s = "<!-- not html -->";</script>`
		got, err := scanHTML([]byte(src))
		if err != nil {
			t.Fatalf("scanHTML error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no spans, got %v", got)
		}
	})

	t.Run("close tag match is case-insensitive", func(t *testing.T) {
		src := "<SCRIPT>// a</Script>"
		got, err := scanHTML([]byte(src))
		if err != nil {
			t.Fatalf("scanHTML error: %v", err)
		}
		assertSpans(t, got, []Span{{Start: 8, End: 12, Kind: SpanLineComment}})
	})

	t.Run("self-closing script has no raw text", func(t *testing.T) {
		src := `<script src="x.js"/><!-- c -->`
		got, err := scanHTML([]byte(src))
		if err != nil {
			t.Fatalf("scanHTML error: %v", err)
		}
		assertSpans(t, got, []Span{{Start: 20, End: 30, Kind: SpanHTMLComment}})
	})

	t.Run("missing close tag hands the rest to js", func(t *testing.T) {
		src := "<script>// rest"
		got, err := scanHTML([]byte(src))
		if err != nil {
			t.Fatalf("scanHTML error: %v", err)
		}
		assertSpans(t, got, []Span{{Start: 8, End: 15, Kind: SpanLineComment}})
	})
}

func TestScanHTMLUnterminated(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		construct string
		offset    int
	}{
		{"open html comment", "<p><!-- open", "html comment", 3},
		{"open cdata", "<![CDATA[ open", "cdata section", 0},
		{"open tag", "<a href=", "tag", 0},
		{"open attribute value", `<a href="x`, "attribute value", 8},
		{"open block comment inside script", "<script>/* open</script>", "block comment", 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scanHTML([]byte(tt.src))
			var ue *UnterminatedError
			if !errors.As(err, &ue) {
				t.Fatalf("expected UnterminatedError, got %v", err)
			}
			if ue.Construct != tt.construct || ue.Offset != tt.offset {
				t.Fatalf("got %q at %d, want %q at %d", ue.Construct, ue.Offset, tt.construct, tt.offset)
			}
		})
	}
}
