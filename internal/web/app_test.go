package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUIRegisterServesPageAndAssets(t *testing.T) {
	mux := http.NewServeMux()
	NewUI("/srv/site").Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	get := func(path string) (*http.Response, string) {
		t.Helper()
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s: status %d", path, resp.StatusCode)
		}
		return resp, string(body)
	}

	resp, body := get("/")
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("index content type: %q", ct)
	}
	if csp := resp.Header.Get("Content-Security-Policy"); !strings.Contains(csp, "default-src 'none'") {
		t.Fatalf("missing CSP header: %q", csp)
	}
	if !strings.Contains(body, "/srv/site") {
		t.Fatalf("page must show the scan root:\n%s", body)
	}
	if !strings.Contains(body, stylesPath) || !strings.Contains(body, scriptPath) {
		t.Fatalf("page must reference its assets:\n%s", body)
	}

	if resp, _ := get(stylesPath); !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/css") {
		t.Fatalf("styles content type: %q", resp.Header.Get("Content-Type"))
	}
	if resp, _ := get(scriptPath); !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/javascript") {
		t.Fatalf("script content type: %q", resp.Header.Get("Content-Type"))
	}
}
