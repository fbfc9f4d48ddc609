package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/phyten/decomment/internal/config"
	"github.com/phyten/decomment/internal/engine"
	engineopts "github.com/phyten/decomment/internal/engine/opts"
	"github.com/phyten/decomment/internal/model"
	"github.com/phyten/decomment/internal/output"
	"github.com/phyten/decomment/internal/termcolor"
	"github.com/phyten/decomment/internal/textutil"
	"github.com/phyten/decomment/internal/util"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		serveCmd(os.Args[2:])
		return
	}
	scanCmd(os.Args[1:])
}

// stringList is a repeatable flag; each use may also hold a
// comma-separated list.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func scanCmd(args []string) {
	fs := flag.NewFlagSet("decomment", flag.ExitOnError)

	var includes, excludes, skipDirs stringList
	var (
		configPath = fs.String("config", "", "config file (default: .decomment.{yaml,yml,toml,json} upward from root)")
		jobs       = fs.Int("jobs", 0, "max parallel workers (default: NumCPU)")
		dryRun     = fs.Bool("dry-run", false, "report what would change without writing")
		header     = fs.Bool("header", false, "prepend a relative-path header comment to each processed file")
		maxBytes   = fs.Int("max-file-bytes", 0, "skip files larger than N bytes (0=unlimited)")
		outputFmt  = fs.String("output", "table", "table|json|tsv|csv|md|ndjson")
		colorMode  = fs.String("color", "auto", "auto|always|never")
		noProgress = fs.Bool("no-progress", false, "disable progress/ETA")
		forceProg  = fs.Bool("progress", false, "force progress even when piped")
		showAll    = fs.Bool("all", false, "list clean and unsupported files too")
	)
	fs.Var(&includes, "include", "doublestar glob of files to process (repeatable, comma-separated)")
	fs.Var(&excludes, "exclude", "doublestar glob of files to skip (repeatable, comma-separated)")
	fs.Var(&skipDirs, "skip-dir", "directory name to prune (repeatable; replaces the default list)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: decomment [flags] [root]\n")
		fmt.Fprintf(fs.Output(), "       decomment serve [flags]\n\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	root := "."
	if fs.NArg() > 0 {
		root = fs.Arg(0)
	}

	opts, ui, err := resolveOptions(fs, root, resolveInputs{
		configPath: *configPath,
		includes:   includes,
		excludes:   excludes,
		skipDirs:   skipDirs,
		jobs:       *jobs,
		dryRun:     *dryRun,
		header:     *header,
		maxBytes:   *maxBytes,
		outputFmt:  *outputFmt,
		colorMode:  *colorMode,
	})
	if err != nil {
		log.Fatal(err)
	}
	opts.Progress = util.ShouldShowProgress(*forceProg || ui.Progress, *noProgress) && ui.Output == "table"
	if *showAll {
		ui.All = true
	}

	res, err := engine.Run(opts)
	if err != nil {
		log.Fatal(err)
	}

	if err := render(os.Stdout, res, ui); err != nil {
		log.Fatal(err)
	}

	// The run as a whole fails only when nothing could be processed.
	if res.Total > 0 && res.Summary.Errors == res.Total {
		os.Exit(1)
	}
}

type resolveInputs struct {
	configPath string
	includes   []string
	excludes   []string
	skipDirs   []string
	jobs       int
	dryRun     bool
	header     bool
	maxBytes   int
	outputFmt  string
	colorMode  string
}

// resolveOptions layers defaults < config file < environment < flags.
// Only flags the user actually set participate, so a config value is
// not clobbered by a flag default.
func resolveOptions(fs *flag.FlagSet, root string, in resolveInputs) (engine.Options, config.UISettings, error) {
	defaults := engineopts.Defaults(root)
	uiBase := config.UISettings{Output: "table", Color: "auto"}

	explicit := in.configPath
	if explicit == "" {
		explicit = os.Getenv("DECOMMENT_CONFIG")
	}
	path, _, err := config.Find(root, explicit, os.Getenv("XDG_CONFIG_HOME"), os.Getenv("HOME"))
	if err != nil {
		return engine.Options{}, uiBase, err
	}
	fileCfg, err := config.Load(path)
	if err != nil {
		return engine.Options{}, uiBase, err
	}
	envCfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		return engine.Options{}, uiBase, err
	}

	var flagCfg config.Config
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "include":
			v := append([]string(nil), in.includes...)
			flagCfg.Engine.Include = &v
		case "exclude":
			v := append([]string(nil), in.excludes...)
			flagCfg.Engine.Exclude = &v
		case "skip-dir":
			v := append([]string(nil), in.skipDirs...)
			flagCfg.Engine.SkipDirs = &v
		case "jobs":
			v := in.jobs
			flagCfg.Engine.Jobs = &v
		case "dry-run":
			v := in.dryRun
			flagCfg.Engine.DryRun = &v
		case "header":
			v := in.header
			flagCfg.Engine.Header = &v
		case "max-file-bytes":
			v := in.maxBytes
			flagCfg.Engine.MaxFileBytes = &v
		case "output":
			v := in.outputFmt
			flagCfg.UI.Output = &v
		case "color":
			v := in.colorMode
			flagCfg.UI.Color = &v
		}
	})

	opts := config.MergeEngine(defaults, fileCfg.Engine, envCfg.Engine, flagCfg.Engine)
	opts.Root = root // the positional argument always wins
	ui := config.MergeUI(uiBase, fileCfg.UI, envCfg.UI, flagCfg.UI)
	if err := engineopts.NormalizeAndValidate(&opts); err != nil {
		return engine.Options{}, ui, err
	}
	return opts, ui, nil
}

func render(w *os.File, res *engine.Result, ui config.UISettings) error {
	files := res.Files
	if !ui.All {
		files = notableFiles(files)
	}
	switch strings.ToLower(ui.Output) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "ndjson":
		return output.WriteNDJSON(w, files)
	case "csv":
		return output.WriteCSV(w, files)
	case "md", "markdown":
		if err := output.WriteMarkdownTable(w, files); err != nil {
			return err
		}
		fmt.Fprintln(w)
		printSummary(w, res, false)
		return nil
	case "tsv":
		printTSV(w, files)
		printSummary(w, res, false)
		return nil
	case "table", "":
		mode, err := termcolor.ParseMode(ui.Color)
		if err != nil {
			return err
		}
		colored := termcolor.Enabled(mode, w, os.Getenv)
		printTable(w, files, colored)
		printSummary(w, res, colored)
		return nil
	default:
		return fmt.Errorf("invalid --output: %s", ui.Output)
	}
}

// notableFiles drops clean and unsupported entries from the listing;
// the summary still counts them.
func notableFiles(files []model.FileResult) []model.FileResult {
	out := make([]model.FileResult, 0, len(files))
	for _, r := range files {
		switch r.Status {
		case model.StatusClean, model.StatusUnsupported:
			continue
		}
		out = append(out, r)
	}
	return out
}

func printTSV(w *os.File, files []model.FileResult) {
	tw := tabwriter.NewWriter(w, 0, 8, 0, '\t', 0) // tabs only
	fmt.Fprintln(tw, strings.Join(output.Headers(), "\t"))
	for _, r := range files {
		fmt.Fprintln(tw, strings.Join(output.RowValues(r), "\t"))
	}
	_ = tw.Flush()
}

const maxDetailWidth = 60

func printTable(w *os.File, files []model.FileResult, colored bool) {
	if len(files) == 0 {
		return
	}
	cols := output.Headers()
	rows := make([][]string, 0, len(files))
	widths := make([]int, len(cols))
	for i, h := range cols {
		widths[i] = textutil.VisibleWidth(h)
	}
	for _, r := range files {
		row := output.RowValues(r)
		row[len(row)-1] = textutil.TruncateByWidth(row[len(row)-1], maxDetailWidth, "…")
		for i, cell := range row {
			if cw := textutil.VisibleWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
		rows = append(rows, row)
	}
	for i, h := range cols {
		fmt.Fprint(w, textutil.PadRight(h, widths[i]))
		if i < len(cols)-1 {
			fmt.Fprint(w, "  ")
		}
	}
	fmt.Fprintln(w)
	for idx, row := range rows {
		for i, cell := range row {
			padded := textutil.PadRight(cell, widths[i])
			if i == 2 { // STATUS column
				padded = termcolor.Apply(termcolor.StatusStyle(files[idx].Status), padded, colored)
			}
			fmt.Fprint(w, padded)
			if i < len(row)-1 {
				fmt.Fprint(w, "  ")
			}
		}
		fmt.Fprintln(w)
	}
}

func printSummary(w *os.File, res *engine.Result, colored bool) {
	s := res.Summary
	verb := "stripped"
	if res.DryRun {
		verb = "would strip"
	}
	line := fmt.Sprintf("%d %s, %d clean, %d unsupported, %d unparseable, %d errors (%d files, %d ms)",
		s.Stripped, verb, s.Clean, s.Unsupported, s.Unparseable, s.Errors, res.Total, res.ElapsedMS)
	if s.Errors > 0 {
		line = termcolor.Apply(termcolor.StatusStyle(model.StatusError), line, colored)
	}
	fmt.Fprintln(w, line)
}
