// Package server exposes the converters over a small web UI and JSON API.
package server

import (
	"embed"
	"encoding/json"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"time"
)

// maxUpload caps request bodies at 16 MiB.
const maxUpload = 16 << 20

//go:embed web
var webFS embed.FS

var tplIndex = template.Must(template.ParseFS(webFS, "web/templates/index.html"))

// Server hosts the ASCII studio web app.
type Server struct {
	addr string
	jobs *jobRegistry
}

func New(addr string) *Server {
	return &Server{
		addr: addr,
		jobs: newJobRegistry(),
	}
}

// Run blocks serving HTTP until the listener fails.
func (s *Server) Run() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.indexPage)
	mux.HandleFunc("/api/convert-image", s.convertImage)
	mux.HandleFunc("/api/generate-art", s.generateArt)
	mux.HandleFunc("/api/generate-3d", s.generate3D)
	mux.HandleFunc("/upload", s.uploadVideo)
	mux.HandleFunc("/stream/", s.streamVideo)

	staticFS, _ := fs.Sub(webFS, "web/static")
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	srv := &http.Server{
		Addr:         s.addr,
		Handler:      http.MaxBytesHandler(mux, maxUpload),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
	}

	log.Printf("Server started on %s", s.addr)
	return srv.ListenAndServe()
}

func (s *Server) indexPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	tplIndex.Execute(w, nil)
}

type response struct {
	Success bool   `json:"success"`
	ASCII   string `json:"ascii,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func writeASCII(w http.ResponseWriter, art string) {
	writeJSON(w, http.StatusOK, response{Success: true, ASCII: art})
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, response{Success: false, Error: err.Error()})
}
