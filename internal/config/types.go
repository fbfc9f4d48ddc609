package config

// EngineConfig mirrors engine options as optional fields; nil means
// "not set in this layer" so layers can be merged by precedence.
type EngineConfig struct {
	Root         *string   `yaml:"root" toml:"root" json:"root"`
	Include      *[]string `yaml:"include" toml:"include" json:"include"`
	Exclude      *[]string `yaml:"exclude" toml:"exclude" json:"exclude"`
	SkipDirs     *[]string `yaml:"skip_dirs" toml:"skip_dirs" json:"skip_dirs"`
	Jobs         *int      `yaml:"jobs" toml:"jobs" json:"jobs"`
	DryRun       *bool     `yaml:"dry_run" toml:"dry_run" json:"dry_run"`
	Header       *bool     `yaml:"header" toml:"header" json:"header"`
	MaxFileBytes *int      `yaml:"max_file_bytes" toml:"max_file_bytes" json:"max_file_bytes"`
}

type UIConfig struct {
	Output   *string `yaml:"output" toml:"output" json:"output"`
	Color    *string `yaml:"color" toml:"color" json:"color"`
	Progress *bool   `yaml:"progress" toml:"progress" json:"progress"`
	All      *bool   `yaml:"all" toml:"all" json:"all"`
}

type Config struct {
	Engine EngineConfig `yaml:"engine" toml:"engine" json:"engine"`
	UI     UIConfig     `yaml:"ui" toml:"ui" json:"ui"`
}

// UISettings are the resolved (non-pointer) UI values.
type UISettings struct {
	Output   string
	Color    string
	Progress bool
	All      bool
}
