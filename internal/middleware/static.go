package middleware

import (
	"net/http"
	"os"
	"path/filepath"
)

const fallbackPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Credit Ledger Mock</title></head>
<body style="font-family:sans-serif;max-width:40em;margin:4em auto">
<h1>Credit Ledger Mock</h1>
<p>The dashboard assets are not deployed. The API is live; see <a href="/swagger/index.html">the API documentation</a>.</p>
</body>
</html>`

// StaticFileServer serves dashboard assets from dir, falling back to a
// placeholder page when the requested file does not exist.
func StaticFileServer(dir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean(r.URL.Path))

		if info, err := os.Stat(path); err == nil {
			if info.IsDir() {
				path = filepath.Join(path, "index.html")
			}
			if _, err := os.Stat(path); err == nil {
				w.Header().Set("Cache-Control", "public, max-age=3600")
				http.ServeFile(w, r, path)
				return
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(fallbackPage))
	})
}
