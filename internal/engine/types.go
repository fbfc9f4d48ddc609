package engine

import (
	"github.com/phyten/decomment/internal/model"
)

// Options は実行オプション
type Options struct {
	Root         string   // 走査のルートディレクトリ
	Include      []string // doublestar glob（root 相対）。空なら拡張子で選別
	Exclude      []string // doublestar glob（root 相対）
	SkipDirs     []string // 走査から除外するディレクトリ名。nil ならデフォルト
	Jobs         int      // 並列ワーカー数。0 以下なら NumCPU
	DryRun       bool     // 書き換えを行わず結果のみ返す
	WithHeader   bool     // 相対パスのヘッダコメントを付与する
	MaxFileBytes int      // これを超えるファイルはスキップ（0 で無制限）
	Progress     bool     // stderr に進捗を表示
}

// ItemError は 1 ファイルの処理に失敗した際の情報を表す
type ItemError struct {
	File    string `json:"file"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// Summary は件数の集計。各ファイルの結果から可換な加算のみで合成される
type Summary struct {
	Stripped    int `json:"stripped"`
	Clean       int `json:"clean"`
	Unsupported int `json:"unsupported"`
	Unparseable int `json:"unparseable"`
	Errors      int `json:"errors"`
}

func (s *Summary) add(st model.FileStatus) {
	switch st {
	case model.StatusStripped:
		s.Stripped++
	case model.StatusClean:
		s.Clean++
	case model.StatusUnsupported:
		s.Unsupported++
	case model.StatusUnparseable:
		s.Unparseable++
	case model.StatusError:
		s.Errors++
	}
}

// Result は 1 回の実行全体の結果
type Result struct {
	RunID      string             `json:"run_id"`
	Root       string             `json:"root"`
	DryRun     bool               `json:"dry_run"`
	Files      []model.FileResult `json:"files"`
	Summary    Summary            `json:"summary"`
	Total      int                `json:"total"`
	ElapsedMS  int64              `json:"elapsed_ms"`
	Errors     []ItemError        `json:"errors,omitempty"`
	ErrorCount int                `json:"error_count"`
}

// DefaultSkipDirs mirrors the directories the walker prunes when
// Options.SkipDirs is nil: VCS metadata, dependency and build output
// trees, virtualenvs, and static asset dumps.
var DefaultSkipDirs = []string{
	".git", ".hg", ".svn", ".vscode", ".idea",
	"node_modules", "bower_components", "vendor",
	"__pycache__", "venv", ".venv",
	"dist", "build", "out", "assets",
}
