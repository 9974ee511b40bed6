package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var static embed.FS

// mountAssets serves the bundled keypad page at the root path.
func (s *Server) mountAssets(mux *http.ServeMux) error {
	staticFS, err := fs.Sub(static, "static")
	if err != nil {
		return err
	}
	mux.Handle("GET /", http.FileServerFS(staticFS))
	return nil
}
