package config

import (
	"github.com/phyten/decomment/internal/engine"
)

// MergeEngine overlays config layers onto base options. Later layers
// win; a nil field leaves the previous value alone. The intended order
// is defaults < file < env < flags.
func MergeEngine(base engine.Options, layers ...EngineConfig) engine.Options {
	out := base
	for _, layer := range layers {
		if layer.Root != nil {
			out.Root = *layer.Root
		}
		if layer.Include != nil {
			out.Include = copyList(*layer.Include)
		}
		if layer.Exclude != nil {
			out.Exclude = copyList(*layer.Exclude)
		}
		if layer.SkipDirs != nil {
			out.SkipDirs = copyList(*layer.SkipDirs)
		}
		if layer.Jobs != nil {
			out.Jobs = *layer.Jobs
		}
		if layer.DryRun != nil {
			out.DryRun = *layer.DryRun
		}
		if layer.Header != nil {
			out.WithHeader = *layer.Header
		}
		if layer.MaxFileBytes != nil {
			out.MaxFileBytes = *layer.MaxFileBytes
		}
	}
	return out
}

// MergeUI overlays UI layers onto base settings, same precedence rule
// as MergeEngine.
func MergeUI(base UISettings, layers ...UIConfig) UISettings {
	out := base
	for _, layer := range layers {
		if layer.Output != nil {
			out.Output = *layer.Output
		}
		if layer.Color != nil {
			out.Color = *layer.Color
		}
		if layer.Progress != nil {
			out.Progress = *layer.Progress
		}
		if layer.All != nil {
			out.All = *layer.All
		}
	}
	return out
}

func copyList(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
