package converter

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"

	"asciistudio/internal/ascii"
)

// VideoOptions extends Options with frame pacing for video and webcam input.
type VideoOptions struct {
	Options
	FPS       float64
	MaxFrames int
}

func (o VideoOptions) validate() error {
	if err := o.Options.validate(); err != nil {
		return err
	}
	if o.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %g", ErrInvalidInput, o.FPS)
	}
	return nil
}

// VideoSource pulls grayscale frames from an ffmpeg rawvideo pipe, already
// scaled to the target character grid. Each Next call yields one independent
// frame; there is no cross-frame state.
type VideoSource struct {
	cmd    *exec.Cmd
	out    io.ReadCloser
	buf    []byte
	width  int
	height int
	ramp   ascii.Ramp
	opts   VideoOptions
	frames int
	webcam bool
}

// OpenVideo starts decoding a video file.
func OpenVideo(path string, opts VideoOptions) (*VideoSource, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	srcW, srcH, err := probeSize(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	height := TargetHeight(opts.Width, srcW, srcH)
	cmd := exec.Command("ffmpeg",
		"-i", path,
		"-vf", fmt.Sprintf("fps=%g,scale=%d:%d,format=gray", opts.FPS, opts.Width, height),
		"-f", "rawvideo",
		"pipe:1",
	)
	return startSource(cmd, opts, height, false)
}

// OpenWebcam starts capturing from the default camera. The grid height
// assumes the common 4:3 sensor aspect; ffmpeg rescales whatever the device
// actually delivers.
func OpenWebcam(opts VideoOptions) (*VideoSource, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	height := TargetHeight(opts.Width, 4, 3)
	args := append(webcamInputArgs(),
		"-vf", fmt.Sprintf("fps=%g,scale=%d:%d,format=gray", opts.FPS, opts.Width, height),
		"-f", "rawvideo",
		"pipe:1",
	)
	return startSource(exec.Command("ffmpeg", args...), opts, height, true)
}

func startSource(cmd *exec.Cmd, opts VideoOptions, height int, webcam bool) (*VideoSource, error) {
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("error creating stdout pipe: %v", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("error creating stderr pipe: %v", err)
	}
	go func() {
		data, _ := io.ReadAll(stderr)
		if len(data) > 0 {
			log.Printf("ffmpeg stderr: %s", data)
		}
	}()

	if err := cmd.Start(); err != nil {
		if webcam {
			return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
		}
		return nil, fmt.Errorf("error starting ffmpeg: %v", err)
	}

	return &VideoSource{
		cmd:    cmd,
		out:    out,
		buf:    make([]byte, opts.Width*height),
		width:  opts.Width,
		height: height,
		ramp:   ascii.Select(opts.Detailed, opts.Invert),
		opts:   opts,
		webcam: webcam,
	}, nil
}

// Width and Height report the character-grid dimensions of every frame.
func (s *VideoSource) Width() int  { return s.width }
func (s *VideoSource) Height() int { return s.height }

// Next returns the next frame as an ASCII grid. io.EOF marks the end of the
// stream or the MaxFrames cutoff.
func (s *VideoSource) Next() (ascii.Grid, error) {
	if s.opts.MaxFrames > 0 && s.frames >= s.opts.MaxFrames {
		return nil, io.EOF
	}
	if _, err := io.ReadFull(s.out, s.buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			if s.webcam && s.frames == 0 {
				return nil, fmt.Errorf("%w: ffmpeg produced no frames", ErrDeviceUnavailable)
			}
			return nil, io.EOF
		}
		return nil, fmt.Errorf("error reading frame: %v", err)
	}
	s.frames++
	return ascii.FromBytes(s.buf, s.width, s.ramp), nil
}

// Frames reports how many frames have been read so far.
func (s *VideoSource) Frames() int { return s.frames }

// Close stops the decoder and releases the pipe.
func (s *VideoSource) Close() error {
	s.out.Close()
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	return s.cmd.Wait()
}

func probeSize(path string) (int, int, error) {
	cmd := exec.Command("ffprobe",
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height",
		"-of", "csv=p=0",
		path)
	out, err := cmd.Output()
	if err != nil {
		return 0, 0, fmt.Errorf("ffprobe: %v", err)
	}
	var w, h int
	if _, err := fmt.Sscanf(strings.TrimSpace(string(out)), "%d,%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("unexpected ffprobe output %q", out)
	}
	if w == 0 || h == 0 {
		return 0, 0, fmt.Errorf("zero-sized video stream")
	}
	return w, h, nil
}
