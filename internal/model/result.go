package model

// FileStatus は 1 ファイルの処理結果の種別を表します。
type FileStatus string

const (
	// StatusStripped はコメントを除去し、ファイルを書き換えた（または dry-run で書き換え対象になった）状態。
	StatusStripped FileStatus = "stripped"
	// StatusClean は対応文法だがコメントが存在しなかった状態。
	StatusClean FileStatus = "clean"
	// StatusUnsupported は対象外の文法でそのまま通過した状態。エラーではない。
	StatusUnsupported FileStatus = "unsupported"
	// StatusUnparseable は未終端の構文要素が残っており、安全のため元のまま残した状態。
	StatusUnparseable FileStatus = "unparseable"
	// StatusError は読み取り・デコード・書き込みに失敗した状態。
	StatusError FileStatus = "error"
)

// FileResult は 1 ファイルの処理結果を表します。
type FileResult struct {
	File        string     `json:"file"`
	Grammar     string     `json:"grammar,omitempty"`
	Status      FileStatus `json:"status"`
	Spans       int        `json:"spans,omitempty"`
	BytesBefore int        `json:"bytes_before,omitempty"`
	BytesAfter  int        `json:"bytes_after,omitempty"`
	Detail      string     `json:"detail,omitempty"`
}

// Changed reports whether the file content was (or would be) rewritten.
func (r FileResult) Changed() bool {
	return r.Status == StatusStripped
}
