package termcolor

import (
	"fmt"
	"strings"

	"github.com/phyten/decomment/internal/model"
)

type Style struct {
	Bold    bool
	Dim     bool
	FGBasic *int
}

func Apply(s Style, text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	codes := sgrCodes(s)
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}

func sgrCodes(s Style) []string {
	codes := make([]string, 0, 3)
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Dim {
		codes = append(codes, "2")
	}
	if s.FGBasic != nil {
		codes = append(codes, fmt.Sprintf("3%d", *s.FGBasic))
	}
	return codes
}

func basic(n int) *int { return &n }

// StatusStyle colors the per-file status column: green for stripped,
// yellow for unparseable, red for errors, dim for the rest.
func StatusStyle(st model.FileStatus) Style {
	switch st {
	case model.StatusStripped:
		return Style{FGBasic: basic(2)}
	case model.StatusUnparseable:
		return Style{FGBasic: basic(3)}
	case model.StatusError:
		return Style{FGBasic: basic(1), Bold: true}
	default:
		return Style{Dim: true}
	}
}
