package main

import (
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// testFlagSet mirrors the flags scanCmd registers, bound to a
// resolveInputs value so resolveOptions sees the same shape.
func testFlagSet(in *resolveInputs) (*flag.FlagSet, *stringList, *stringList) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var includes, excludes stringList
	fs.Var(&includes, "include", "")
	fs.Var(&excludes, "exclude", "")
	fs.IntVar(&in.jobs, "jobs", 0, "")
	fs.BoolVar(&in.dryRun, "dry-run", false, "")
	fs.BoolVar(&in.header, "header", false, "")
	fs.IntVar(&in.maxBytes, "max-file-bytes", 0, "")
	fs.StringVar(&in.outputFmt, "output", "table", "")
	fs.StringVar(&in.colorMode, "color", "auto", "")
	return fs, &includes, &excludes
}

func clearDecommentEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DECOMMENT_CONFIG", "DECOMMENT_ROOT", "DECOMMENT_INCLUDE",
		"DECOMMENT_EXCLUDE", "DECOMMENT_SKIP_DIRS", "DECOMMENT_JOBS",
		"DECOMMENT_DRY_RUN", "DECOMMENT_HEADER", "DECOMMENT_MAX_FILE_BYTES",
		"DECOMMENT_OUTPUT", "DECOMMENT_COLOR", "DECOMMENT_PROGRESS",
		"DECOMMENT_ALL", "XDG_CONFIG_HOME", "HOME",
	} {
		t.Setenv(k, "")
	}
}

func TestResolveOptionsDefaults(t *testing.T) {
	clearDecommentEnv(t)
	root := t.TempDir()

	var in resolveInputs
	fs, _, _ := testFlagSet(&in)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("parse: %v", err)
	}

	opts, ui, err := resolveOptions(fs, root, in)
	if err != nil {
		t.Fatalf("resolveOptions: %v", err)
	}
	if opts.Root != root || opts.DryRun || opts.WithHeader {
		t.Fatalf("opts: %+v", opts)
	}
	if ui.Output != "table" || ui.Color != "auto" {
		t.Fatalf("ui: %+v", ui)
	}
}

func TestResolveOptionsLayering(t *testing.T) {
	clearDecommentEnv(t)
	root := t.TempDir()
	cfg := filepath.Join(root, ".decomment.yaml")
	err := os.WriteFile(cfg, []byte(
		"engine:\n  jobs: 2\n  include: [\"**/*.js\"]\n  header: true\nui:\n  output: md\n"), 0o644)
	if err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DECOMMENT_JOBS", "4")

	var in resolveInputs
	fs, _, _ := testFlagSet(&in)
	if err := fs.Parse([]string{"-jobs", "6", "-output", "json"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	opts, ui, err := resolveOptions(fs, root, in)
	if err != nil {
		t.Fatalf("resolveOptions: %v", err)
	}
	// flag > env > file
	if opts.Jobs != 6 {
		t.Fatalf("jobs: got %d want 6", opts.Jobs)
	}
	// file values without env/flag overrides survive
	if !reflect.DeepEqual(opts.Include, []string{"**/*.js"}) {
		t.Fatalf("include: %v", opts.Include)
	}
	if !opts.WithHeader {
		t.Fatalf("header from config lost")
	}
	if ui.Output != "json" {
		t.Fatalf("output: got %q want json", ui.Output)
	}
}

func TestResolveOptionsEnvBeatsFile(t *testing.T) {
	clearDecommentEnv(t)
	root := t.TempDir()
	err := os.WriteFile(filepath.Join(root, ".decomment.yaml"),
		[]byte("engine:\n  jobs: 2\n"), 0o644)
	if err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DECOMMENT_JOBS", "4")

	var in resolveInputs
	fs, _, _ := testFlagSet(&in)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("parse: %v", err)
	}

	opts, _, err := resolveOptions(fs, root, in)
	if err != nil {
		t.Fatalf("resolveOptions: %v", err)
	}
	if opts.Jobs != 4 {
		t.Fatalf("jobs: got %d want 4", opts.Jobs)
	}
}

func TestResolveOptionsRootIsPositional(t *testing.T) {
	clearDecommentEnv(t)
	root := t.TempDir()
	t.Setenv("DECOMMENT_ROOT", "/somewhere/else")

	var in resolveInputs
	fs, _, _ := testFlagSet(&in)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("parse: %v", err)
	}

	opts, _, err := resolveOptions(fs, root, in)
	if err != nil {
		t.Fatalf("resolveOptions: %v", err)
	}
	if opts.Root != root {
		t.Fatalf("root: got %q want %q", opts.Root, root)
	}
}

func TestResolveOptionsBadConfig(t *testing.T) {
	clearDecommentEnv(t)
	root := t.TempDir()
	err := os.WriteFile(filepath.Join(root, ".decomment.yaml"),
		[]byte("engine:\n  no_such_key: 1\n"), 0o644)
	if err != nil {
		t.Fatalf("write config: %v", err)
	}

	var in resolveInputs
	fs, _, _ := testFlagSet(&in)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, _, err := resolveOptions(fs, root, in); err == nil {
		t.Fatalf("expected error for unknown config key")
	}
}

func TestStringListFlag(t *testing.T) {
	var in resolveInputs
	fs, includes, _ := testFlagSet(&in)
	if err := fs.Parse([]string{"-include", "**/*.js", "-include", "**/*.css,**/*.html"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := stringList{"**/*.js", "**/*.css,**/*.html"}
	if !reflect.DeepEqual(*includes, want) {
		t.Fatalf("got %v want %v", *includes, want)
	}
}
