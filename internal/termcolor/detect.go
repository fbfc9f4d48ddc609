package termcolor

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

func (m ColorMode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

func ParseMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("unknown color mode: %s", v)
	}
}

// Enabled resolves a mode against the environment: NO_COLOR and
// TERM=dumb force colors off in auto mode, otherwise auto follows
// whether stdout is a terminal.
func Enabled(mode ColorMode, stdout *os.File, getenv func(string) string) bool {
	if getenv == nil {
		getenv = os.Getenv
	}
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	if getenv("NO_COLOR") != "" {
		return false
	}
	if strings.EqualFold(getenv("TERM"), "dumb") {
		return false
	}
	return stdout != nil && term.IsTerminal(int(stdout.Fd()))
}
