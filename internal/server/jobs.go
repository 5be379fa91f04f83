package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"asciistudio/internal/ascii"
	"asciistudio/internal/converter"
)

// jobRegistry tracks in-flight video conversions. Each job owns a buffered
// frame channel; slow clients drop frames rather than stall the decoder.
type jobRegistry struct {
	mu   sync.RWMutex
	jobs map[string]*job
}

type job struct {
	frames chan ascii.Grid
}

func newJobRegistry() *jobRegistry {
	return &jobRegistry{jobs: make(map[string]*job)}
}

func (r *jobRegistry) add(id string, j *job) {
	r.mu.Lock()
	r.jobs[id] = j
	r.mu.Unlock()
}

func (r *jobRegistry) remove(id string) {
	r.mu.Lock()
	delete(r.jobs, id)
	r.mu.Unlock()
}

func (r *jobRegistry) get(id string) (*job, bool) {
	r.mu.RLock()
	j, ok := r.jobs[id]
	r.mu.RUnlock()
	return j, ok
}

func (s *Server) uploadVideo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	file, header, err := r.FormFile("video")
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing video upload: %v", err))
		return
	}
	defer file.Close()

	log.Printf("Processing upload: %s, size: %d bytes", header.Filename, header.Size)

	tmpF, err := os.CreateTemp("", "vid-*.mp4")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	tmpPath := tmpF.Name()
	if _, err := io.Copy(tmpF, file); err != nil {
		tmpF.Close()
		os.Remove(tmpPath)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	tmpF.Close()

	opts := converter.VideoOptions{
		Options: converter.Options{
			Width:    formInt(r, "width", 120),
			Detailed: r.FormValue("detailed") == "true",
			Invert:   r.FormValue("invert") == "true",
		},
		FPS: 10,
	}

	jobID := fmt.Sprintf("%d", time.Now().UnixNano())
	j := &job{frames: make(chan ascii.Grid, 300)}
	s.jobs.add(jobID, j)

	go s.process(tmpPath, jobID, j, opts)

	writeJSON(w, http.StatusOK, response{Success: true, ASCII: jobID})
}

func (s *Server) process(path, jobID string, j *job, opts converter.VideoOptions) {
	defer func() {
		close(j.frames)
		s.jobs.remove(jobID)
		os.Remove(path)
		log.Printf("Job %s completed, temporary file removed", jobID)
	}()

	src, err := converter.OpenVideo(path, opts)
	if err != nil {
		log.Printf("Job %s failed to open video: %v", jobID, err)
		return
	}
	defer src.Close()

	for {
		grid, err := src.Next()
		if err == io.EOF {
			log.Printf("Processed %d frames for job %s", src.Frames(), jobID)
			return
		}
		if err != nil {
			log.Printf("Job %s frame error: %v", jobID, err)
			return
		}

		select {
		case j.frames <- grid:
		default:
			log.Println("Dropped frame due to slow client")
		}
	}
}

func (s *Server) streamVideo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	jobID := r.URL.Path[len("/stream/"):]
	if jobID == "" {
		http.Error(w, "Missing job ID", http.StatusBadRequest)
		return
	}

	j, ok := s.jobs.get(jobID)
	if !ok {
		http.Error(w, "Job not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	frameInterval := time.NewTicker(100 * time.Millisecond)
	defer frameInterval.Stop()

	ctx := r.Context()
	for {
		select {
		case grid, ok := <-j.frames:
			if !ok {
				fmt.Fprintf(w, "event: end\ndata: {\"status\":\"complete\"}\n\n")
				flusher.Flush()
				return
			}

			<-frameInterval.C

			data, _ := json.Marshal(grid.String())
			fmt.Fprintf(w, "data: %s\n\n", data)
			flusher.Flush()

		case <-ctx.Done():
			return
		}
	}
}
