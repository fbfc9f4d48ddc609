package output

import (
	"encoding/csv"
	"io"

	"github.com/phyten/decomment/internal/model"
)

// WriteCSV renders results as RFC 4180 compliant CSV (including CRLF
// endings).
func WriteCSV(w io.Writer, files []model.FileResult) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(Headers()); err != nil {
		return err
	}
	for _, r := range files {
		if err := writer.Write(RowValues(r)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
