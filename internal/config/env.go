package config

import (
	"errors"
	"strings"

	engineopts "github.com/phyten/decomment/internal/engine/opts"
)

// FromEnv builds a config layer from DECOMMENT_* environment
// variables. getenv is injectable for tests.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		list := engineopts.SplitMulti([]string{raw})
		*target = &list
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &v
	}
	setInt := func(target **int, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		n, err := engineopts.ParseIntValue(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &n
	}

	setString(&cfg.Engine.Root, "DECOMMENT_ROOT")
	setList(&cfg.Engine.Include, "DECOMMENT_INCLUDE")
	setList(&cfg.Engine.Exclude, "DECOMMENT_EXCLUDE")
	setList(&cfg.Engine.SkipDirs, "DECOMMENT_SKIP_DIRS")
	setInt(&cfg.Engine.Jobs, "DECOMMENT_JOBS")
	setBool(&cfg.Engine.DryRun, "DECOMMENT_DRY_RUN")
	setBool(&cfg.Engine.Header, "DECOMMENT_HEADER")
	setInt(&cfg.Engine.MaxFileBytes, "DECOMMENT_MAX_FILE_BYTES")

	setString(&cfg.UI.Output, "DECOMMENT_OUTPUT")
	setString(&cfg.UI.Color, "DECOMMENT_COLOR")
	setBool(&cfg.UI.Progress, "DECOMMENT_PROGRESS")
	setBool(&cfg.UI.All, "DECOMMENT_ALL")

	return cfg, errors.Join(errs...)
}
