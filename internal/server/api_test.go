package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postArt(t *testing.T, body string) (*httptest.ResponseRecorder, response) {
	t.Helper()
	s := New(":0")
	req := httptest.NewRequest(http.MethodPost, "/api/generate-art", strings.NewReader(body))
	w := httptest.NewRecorder()
	s.generateArt(w, req)

	var resp response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	return w, resp
}

func TestGenerateArtBanner(t *testing.T) {
	w, resp := postArt(t, `{"type":"banner","text":"HI","width":20,"char":"*"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	if !resp.Success || resp.ASCII == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if got := len(strings.Split(resp.ASCII, "\n")); got != 5 {
		t.Errorf("banner rows = %d, want 5", got)
	}
}

func TestGenerateArtDepthShaded(t *testing.T) {
	w, resp := postArt(t, `{"type":"circle","size":5,"depth":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	rows := strings.Split(resp.ASCII, "\n")
	if got := len(rows); got != 11 {
		t.Fatalf("circle depth rows = %d, want 11", got)
	}
	if !strings.ContainsAny(resp.ASCII, "&@%") {
		t.Errorf("depth render carries no shading glyphs: %q", resp.ASCII)
	}

	// Without the flag the same request draws a plain outline ring.
	_, plain := postArt(t, `{"type":"circle","size":5,"char":"O"}`)
	if strings.ContainsAny(plain.ASCII, "&@%") {
		t.Errorf("outline render unexpectedly shaded: %q", plain.ASCII)
	}
}

func TestGenerateArtUnknownType(t *testing.T) {
	w, resp := postArt(t, `{"type":"fractal"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", w.Code)
	}
	if resp.Success || resp.Error == "" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestGenerateArtBadBody(t *testing.T) {
	w, _ := postArt(t, `{`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", w.Code)
	}
}

func TestGenerate3DCube(t *testing.T) {
	s := New(":0")
	req := httptest.NewRequest(http.MethodPost, "/api/generate-3d",
		strings.NewReader(`{"shape":"cube","angle":0.5}`))
	w := httptest.NewRecorder()
	s.generate3D(w, req)

	var resp response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success {
		t.Fatalf("unexpected response: %+v", resp)
	}
	rows := strings.Split(resp.ASCII, "\n")
	if len(rows) != 40 {
		t.Errorf("rows = %d, want 40", len(rows))
	}
}

func TestGenerate3DUnknownShape(t *testing.T) {
	s := New(":0")
	req := httptest.NewRequest(http.MethodPost, "/api/generate-3d",
		strings.NewReader(`{"shape":"teapot"}`))
	w := httptest.NewRecorder()
	s.generate3D(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", w.Code)
	}
}

func TestConvertImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, color.White)
		}
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "white.png")
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(fw, img); err != nil {
		t.Fatal(err)
	}
	mw.WriteField("width", "2")
	mw.Close()

	s := New(":0")
	req := httptest.NewRequest(http.MethodPost, "/api/convert-image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.convertImage(w, req)

	var resp response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.ASCII != "  " {
		t.Errorf("white 2x2 at width 2 = %q, want two spaces", resp.ASCII)
	}
}

func TestConvertImageMissingUpload(t *testing.T) {
	s := New(":0")
	req := httptest.NewRequest(http.MethodPost, "/api/convert-image", nil)
	w := httptest.NewRecorder()
	s.convertImage(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", w.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	s := New(":0")
	req := httptest.NewRequest(http.MethodGet, "/api/generate-art", nil)
	w := httptest.NewRecorder()
	s.generateArt(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status %d, want 405", w.Code)
	}
}

func TestStreamUnknownJob(t *testing.T) {
	s := New(":0")
	req := httptest.NewRequest(http.MethodGet, "/stream/12345", nil)
	w := httptest.NewRecorder()
	s.streamVideo(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404", w.Code)
	}
}
