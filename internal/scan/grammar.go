package scan

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Grammar identifies which comment grammar governs a file.
type Grammar string

const (
	GrammarHTML        Grammar = "html"
	GrammarCSS         Grammar = "css"
	GrammarJS          Grammar = "js"
	GrammarUnsupported Grammar = ""
)

var extensionGrammars = map[string]Grammar{
	".html": GrammarHTML,
	".htm":  GrammarHTML,
	".css":  GrammarCSS,
	".js":   GrammarJS,
	".mjs":  GrammarJS,
	".cjs":  GrammarJS,
}

// Classify maps a file to its grammar. The extension decides; for
// extensionless files a node/deno shebang line selects JS.
func Classify(path string, data []byte) Grammar {
	ext := strings.ToLower(filepath.Ext(path))
	if g, ok := extensionGrammars[ext]; ok {
		return g
	}
	if ext == "" && hasJSShebang(data) {
		return GrammarJS
	}
	return GrammarUnsupported
}

// Supported reports whether the extension alone selects a grammar.
// Used by the walker to pick candidate files without reading them.
func Supported(path string) bool {
	_, ok := extensionGrammars[strings.ToLower(filepath.Ext(path))]
	return ok
}

func hasJSShebang(data []byte) bool {
	if !bytes.HasPrefix(data, []byte("#!")) {
		return false
	}
	end := bytes.IndexByte(data, '\n')
	if end == -1 {
		end = len(data)
	}
	line := strings.ToLower(string(data[:end]))
	return strings.Contains(line, "node") || strings.Contains(line, "deno")
}
