// Package web serves the embedded dry-run preview UI.
package web

import (
	_ "embed"
	"html/template"
	"net/http"
	"sync"
)

const (
	stylesPath = "/assets/styles.css"
	scriptPath = "/assets/ui.js"
)

var (
	//go:embed templates/index.html
	indexHTML string

	//go:embed assets/styles.css
	stylesCSS []byte

	//go:embed assets/ui.js
	scriptJS []byte
)

// UI renders the preview page for one project root. The page itself is
// static; every scan it triggers goes through the /api/scan endpoint
// the caller wires next to it.
type UI struct {
	root string

	once sync.Once
	tmpl *template.Template
}

func NewUI(root string) *UI {
	return &UI{root: root}
}

// Register attaches the page and its assets to mux.
func (u *UI) Register(mux *http.ServeMux) {
	mux.HandleFunc("/", u.index)
	mux.HandleFunc(stylesPath, asset("text/css; charset=utf-8", stylesCSS))
	mux.HandleFunc(scriptPath, asset("application/javascript; charset=utf-8", scriptJS))
}

func (u *UI) index(w http.ResponseWriter, r *http.Request) {
	u.once.Do(func() {
		u.tmpl = template.Must(template.New("index").Parse(indexHTML))
	})
	h := w.Header()
	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Referrer-Policy", "no-referrer")
	h.Set("X-Frame-Options", "DENY")
	h.Set("Content-Security-Policy", "default-src 'none'; style-src 'self'; script-src 'self'; img-src 'self'; connect-src 'self'; form-action 'self'; base-uri 'none'")
	err := u.tmpl.Execute(w, struct {
		Root       string
		StylesPath string
		ScriptPath string
	}{u.root, stylesPath, scriptPath})
	if err != nil {
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
	}
}

func asset(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=86400")
		_, _ = w.Write(body)
	}
}
