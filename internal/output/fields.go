package output

import (
	"strconv"

	"github.com/phyten/decomment/internal/model"
)

var headers = []string{"FILE", "GRAMMAR", "STATUS", "SPANS", "SAVED", "DETAIL"}

// Headers returns the column names shared by all tabular writers.
func Headers() []string {
	out := make([]string, len(headers))
	copy(out, headers)
	return out
}

// RowValues renders one file result in header order. SAVED is the
// byte-size delta of the rewrite; empty when nothing changed.
func RowValues(r model.FileResult) []string {
	saved := ""
	if d := r.BytesBefore - r.BytesAfter; d != 0 {
		saved = strconv.Itoa(d)
	}
	spans := ""
	if r.Spans > 0 {
		spans = strconv.Itoa(r.Spans)
	}
	return []string{r.File, r.Grammar, string(r.Status), spans, saved, r.Detail}
}
