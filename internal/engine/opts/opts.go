// Package opts holds the option defaults, normalization and
// validation shared by the CLI flags and the web query surface.
package opts

import (
	"fmt"
	"net/url"
	"runtime"
	"strconv"
	"strings"

	"github.com/phyten/decomment/internal/engine"
)

const maxJobs = 64

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// Defaults returns the shared baseline options for both CLI and Web
// inputs.
func Defaults(root string) engine.Options {
	jobs := runtime.NumCPU()
	if jobs < 1 {
		jobs = 1
	}
	if jobs > maxJobs {
		jobs = maxJobs
	}
	return engine.Options{
		Root:         root,
		Include:      nil,
		Exclude:      nil,
		SkipDirs:     nil,
		Jobs:         jobs,
		DryRun:       false,
		WithHeader:   false,
		MaxFileBytes: 0,
		Progress:     false,
	}
}

// NormalizeAndValidate clamps and checks an option set in place.
func NormalizeAndValidate(o *engine.Options) error {
	if strings.TrimSpace(o.Root) == "" {
		o.Root = "."
	}
	if o.Jobs < 1 {
		o.Jobs = 1
	}
	if o.Jobs > maxJobs {
		o.Jobs = maxJobs
	}
	if o.MaxFileBytes < 0 {
		return fmt.Errorf("max_file_bytes must not be negative: %d", o.MaxFileBytes)
	}
	o.Include = SplitMulti(o.Include)
	o.Exclude = SplitMulti(o.Exclude)
	return nil
}

// ApplyWebQuery copies recognised values from the query string into
// the provided options. The root is never taken from the query; the
// server fixes it at startup.
func ApplyWebQuery(def engine.Options, q url.Values) (engine.Options, error) {
	out := def
	if raw, ok := lastValue(q["include"]); ok {
		out.Include = SplitMulti([]string{raw})
	}
	if raw, ok := lastValue(q["exclude"]); ok {
		out.Exclude = SplitMulti([]string{raw})
	}
	if raw, ok := lastValue(q["header"]); ok {
		v, err := ParseBool(raw, "header")
		if err != nil {
			return out, err
		}
		out.WithHeader = v
	}
	if raw, ok := lastValue(q["max_file_bytes"]); ok {
		n, err := ParseIntValue(raw, "max_file_bytes")
		if err != nil {
			return out, err
		}
		out.MaxFileBytes = n
	}
	if raw, ok := lastValue(q["jobs"]); ok {
		n, err := ParseIntValue(raw, "jobs")
		if err != nil {
			return out, err
		}
		out.Jobs = n
	}
	return out, nil
}

// SplitMulti flattens repeated and comma-separated values into one
// trimmed list.
func SplitMulti(values []string) []string {
	var out []string
	for _, raw := range values {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean for %s: %q", key, raw)
}

func ParseIntValue(raw, key string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q", key, raw)
	}
	return n, nil
}

func lastValue(values []string) (string, bool) {
	for i := len(values) - 1; i >= 0; i-- {
		if v := strings.TrimSpace(values[i]); v != "" {
			return v, true
		}
	}
	return "", false
}
