package engine

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"

	"github.com/phyten/decomment/internal/model"
	"github.com/phyten/decomment/internal/scan"
	"github.com/phyten/decomment/internal/strip"
	"github.com/phyten/decomment/internal/util"
)

// Run は指定されたオプションに従ってディレクトリツリーを走査し、
// 各ファイルからコメントを除去して結果を返します。
//
// ファイル単位のエラーはすべてそのファイルの境界で閉じ込められ、
// Result.Errors に集約されます。走査全体が中断することはありません。
func Run(opts Options) (*Result, error) {
	start := time.Now()
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
	}
	skipDirs := opts.SkipDirs
	if skipDirs == nil {
		skipDirs = DefaultSkipDirs
	}

	files, err := listFiles(root, opts.Include, opts.Exclude, skipDirs)
	if err != nil {
		return nil, err
	}
	runID := ulid.Make().String()
	if len(files) == 0 {
		return &Result{RunID: runID, Root: root, DryRun: opts.DryRun, ElapsedMS: msSince(start)}, nil
	}

	out := make([]model.FileResult, len(files))
	prog := util.NewProgress(len(files), opts.Progress)
	var errsMu sync.Mutex
	var errs []ItemError

	// worker pool
	type job struct {
		idx int
		rel string
	}
	jobs := make(chan job)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for j := range jobs {
			res, itemErr := processOne(root, j.rel, opts)
			if itemErr != nil {
				errsMu.Lock()
				errs = append(errs, *itemErr)
				errsMu.Unlock()
			}
			out[j.idx] = res
			prog.Advance()
		}
	}

	nw := opts.Jobs
	if nw > len(files) {
		nw = len(files)
	}
	wg.Add(nw)
	for i := 0; i < nw; i++ {
		go worker()
	}
	for i, rel := range files {
		jobs <- job{idx: i, rel: rel}
	}
	close(jobs)
	wg.Wait()
	prog.Done()

	var sum Summary
	for _, r := range out {
		sum.add(r.Status)
	}

	return &Result{
		RunID:      runID,
		Root:       root,
		DryRun:     opts.DryRun,
		Files:      out,
		Summary:    sum,
		Total:      len(out),
		ElapsedMS:  msSince(start),
		Errors:     errs,
		ErrorCount: len(errs),
	}, nil
}

func processOne(root, rel string, opts Options) (model.FileResult, *ItemError) {
	res := model.FileResult{File: rel}
	path := filepath.Join(root, filepath.FromSlash(rel))

	fi, err := os.Lstat(path)
	if err != nil {
		return errResult(res, "stat", err)
	}
	if !fi.Mode().IsRegular() {
		res.Status = model.StatusUnsupported
		res.Detail = "not a regular file"
		return res, nil
	}
	if opts.MaxFileBytes > 0 && fi.Size() > int64(opts.MaxFileBytes) {
		res.Status = model.StatusUnsupported
		res.Detail = fmt.Sprintf("larger than %d bytes", opts.MaxFileBytes)
		return res, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errResult(res, "read", err)
	}
	if isBinary(data) {
		return errResult(res, "decode", fmt.Errorf("binary or non-UTF-8 content"))
	}

	g := scan.Classify(rel, data)
	res.Grammar = string(g)

	var sopts strip.Options
	if opts.WithHeader {
		sopts.Header = rel
	}
	sr := strip.File(data, g, sopts)
	res.Status = sr.Status
	res.Spans = len(sr.Spans)
	res.BytesBefore = len(data)
	res.BytesAfter = len(sr.Output)
	if sr.Err != nil {
		res.Detail = sr.Err.Error()
		return res, &ItemError{File: rel, Stage: "scan", Message: sr.Err.Error()}
	}

	if sr.Status == model.StatusStripped && !opts.DryRun {
		if err := atomicWrite(path, sr.Output, fi.Mode().Perm()); err != nil {
			return errResult(res, "write", err)
		}
	}
	return res, nil
}

func errResult(res model.FileResult, stage string, err error) (model.FileResult, *ItemError) {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = "unknown error"
	}
	res.Status = model.StatusError
	res.Detail = msg
	return res, &ItemError{File: res.File, Stage: stage, Message: msg}
}

// isBinary implements the EncodingError rule: content with a NUL byte
// or invalid UTF-8 is never scanned as text.
func isBinary(data []byte) bool {
	return bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data)
}

func msSince(t time.Time) int64 {
	return time.Since(t).Milliseconds()
}
