package export

import (
	"fmt"
	"io"
	"log"
	"os/exec"
	"path/filepath"
	"strings"

	"asciistudio/internal/ascii"
)

// Video encodes a sequence of ASCII frames to a video file by piping raw
// pixels into ffmpeg. The container codec follows the extension: .avi gets
// mpeg4, everything else (.mp4, .mov) gets H.264.
func (e *Exporter) Video(frames []ascii.Grid, path string, fps float64) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %g", fps)
	}

	w, h := e.FrameSize(frames[0].Width(), frames[0].Height())

	args := []string{
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", w, h),
		"-framerate", fmt.Sprintf("%g", fps),
		"-i", "pipe:0",
	}
	if strings.ToLower(filepath.Ext(path)) == ".avi" {
		args = append(args, "-c:v", "mpeg4")
	} else {
		args = append(args, "-c:v", "libx264", "-pix_fmt", "yuv420p")
	}
	args = append(args, "-y", path)

	cmd := exec.Command("ffmpeg", args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("error creating stdin pipe: %v", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("error creating stderr pipe: %v", err)
	}
	go func() {
		data, _ := io.ReadAll(stderr)
		if len(data) > 0 {
			log.Printf("ffmpeg stderr: %s", data)
		}
	}()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("error starting ffmpeg: %v", err)
	}

	for _, frame := range frames {
		img := e.Rasterize(frame, w, h)
		if _, err := stdin.Write(img.Pix); err != nil {
			stdin.Close()
			cmd.Wait()
			return fmt.Errorf("error writing frame: %v", err)
		}
	}
	stdin.Close()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg failed: %v", err)
	}
	return nil
}
