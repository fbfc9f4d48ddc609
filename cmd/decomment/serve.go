package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/pkg/browser"

	"github.com/phyten/decomment/internal/engine"
	engineopts "github.com/phyten/decomment/internal/engine/opts"
	"github.com/phyten/decomment/internal/web"
)

func serveCmd(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	var (
		port = fs.Int("p", 8080, "port")
		root = fs.String("root", ".", "project root to scan")
		open = fs.Bool("open", false, "open the UI in the default browser")
	)
	_ = fs.Parse(args)

	mux := http.NewServeMux()
	web.NewUI(*root).Register(mux)
	mux.HandleFunc("/api/scan", newScanHandler(*root))

	addr := fmt.Sprintf(":%d", *port)
	url := fmt.Sprintf("http://localhost:%d/", *port)
	log.Printf("decomment serve listening on %s (root=%s)", addr, *root)
	if *open {
		go func() {
			if err := browser.OpenURL(url); err != nil {
				log.Printf("open browser: %v", err)
			}
		}()
	}
	log.Fatal(http.ListenAndServe(addr, mux))
}

// newScanHandler builds the /api/scan handler for a fixed root. The
// web surface is always a dry run; it previews, the CLI rewrites.
func newScanHandler(root string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		def := engineopts.Defaults(root)
		opts, err := engineopts.ApplyWebQuery(def, r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		opts.DryRun = true
		if err := engineopts.NormalizeAndValidate(&opts); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res, err := engine.Run(opts)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(res)
	}
}
