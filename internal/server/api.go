package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strconv"

	"asciistudio/internal/ascii"
	"asciistudio/internal/converter"
	"asciistudio/internal/pattern"
	"asciistudio/internal/render3d"
)

func (s *Server) convertImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing image upload: %v", err))
		return
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %v", converter.ErrDecode, err))
		return
	}

	opts := converter.Options{
		Width:    formInt(r, "width", 100),
		Detailed: r.FormValue("detailed") == "true",
		Invert:   r.FormValue("invert") == "true",
		Filter:   r.FormValue("filter"),
	}
	grid, err := converter.Image(img, opts)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeASCII(w, grid.String())
}

type artRequest struct {
	Type  string  `json:"type"`
	Text  string  `json:"text"`
	Width int     `json:"width"`
	Size  int     `json:"size"`
	Char  string  `json:"char"`
	Phase float64 `json:"phase"`
	Depth bool    `json:"depth"`
}

func (s *Server) generateArt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var req artRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("bad request body: %v", err))
		return
	}
	if req.Width <= 0 {
		req.Width = 60
	}
	if req.Size <= 0 {
		req.Size = 10
	}
	fill := ascii.FirstRune(req.Char, '*')

	var art fmt.Stringer
	switch req.Type {
	case "banner":
		art = pattern.Banner(req.Text, req.Width, fill)
	case "wave":
		art = pattern.Wave(req.Width, req.Size, req.Phase)
	case "circle":
		if req.Depth {
			art = pattern.CircleDepth(req.Size)
		} else {
			art = pattern.Circle(req.Size, fill)
		}
	case "spiral":
		if req.Depth {
			art = pattern.SpiralDepth(req.Size, 0.5, req.Phase)
		} else {
			art = pattern.Spiral(req.Size, 0.5, req.Phase)
		}
	case "heart":
		if req.Depth {
			art = pattern.HeartDepth(req.Size)
		} else {
			art = pattern.Heart(req.Size)
		}
	case "box":
		art = pattern.Box(req.Text, 2, fill)
	default:
		writeError(w, http.StatusBadRequest,
			fmt.Errorf("%w: unknown art type %q", converter.ErrInvalidInput, req.Type))
		return
	}
	writeASCII(w, art.String())
}

type render3DRequest struct {
	Shape  string  `json:"shape"`
	Size   float64 `json:"size"`
	Angle  float64 `json:"angle"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
}

func (s *Server) generate3D(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var req render3DRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("bad request body: %v", err))
		return
	}
	if req.Size <= 0 {
		req.Size = 1.5
	}
	if req.Width <= 0 {
		req.Width = render3d.DefaultWidth
	}
	if req.Height <= 0 {
		req.Height = render3d.DefaultHeight
	}

	grid, err := render3d.Render(req.Shape, req.Size, req.Angle, req.Width, req.Height)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeASCII(w, grid.String())
}

func formInt(r *http.Request, key string, def int) int {
	v := r.FormValue(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, converter.ErrInvalidInput),
		errors.Is(err, converter.ErrDecode),
		errors.Is(err, converter.ErrNotFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
