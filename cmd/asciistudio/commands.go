package main

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"
	"time"

	"asciistudio/internal/ascii"
	"asciistudio/internal/converter"
	"asciistudio/internal/export"
	"asciistudio/internal/pattern"
	"asciistudio/internal/render3d"
	"asciistudio/internal/server"
	"asciistudio/internal/term"
)

type imageCmd struct {
	Input    string `short:"i" long:"input" required:"true" description:"input image path"`
	Output   string `short:"o" long:"output" description:"write ASCII to this file instead of stdout"`
	Width    int    `short:"w" long:"width" default:"0" description:"output width in characters (0 = terminal width)"`
	Detailed bool   `short:"d" long:"detailed" description:"use the detailed 70-glyph ramp"`
	Invert   bool   `long:"invert" description:"invert brightness"`
	Filter   string `long:"filter" description:"color filter: grayscale, sepia, negative, tint-red, tint-green, tint-blue"`
}

func (c *imageCmd) Execute([]string) error {
	grid, err := converter.ImageFile(c.Input, converter.Options{
		Width:    autoWidth(c.Width),
		Detailed: c.Detailed,
		Invert:   c.Invert,
		Filter:   c.Filter,
	})
	if err != nil {
		return err
	}
	return writeOrPrint(grid.String(), c.Output)
}

type videoCmd struct {
	Input     string  `short:"i" long:"input" required:"true" description:"input video path"`
	Output    string  `short:"o" long:"output" description:"write ASCII frames to this text file"`
	Export    string  `long:"export" description:"encode the ASCII frames to this video file (.mp4, .avi, .mov)"`
	Width     int     `short:"w" long:"width" default:"0" description:"output width in characters (0 = terminal width)"`
	FPS       float64 `short:"f" long:"fps" default:"15" description:"output frame rate"`
	MaxFrames int     `long:"max-frames" description:"stop after this many frames"`
	Detailed  bool    `short:"d" long:"detailed" description:"use the detailed 70-glyph ramp"`
	Invert    bool    `long:"invert" description:"invert brightness"`
}

func (c *videoCmd) Execute([]string) error {
	opts := converter.VideoOptions{
		Options: converter.Options{
			Width:    autoWidth(c.Width),
			Detailed: c.Detailed,
			Invert:   c.Invert,
		},
		FPS:       c.FPS,
		MaxFrames: c.MaxFrames,
	}
	src, err := converter.OpenVideo(c.Input, opts)
	if err != nil {
		return err
	}
	defer src.Close()

	if c.Output == "" && c.Export == "" {
		player := &term.Player{FPS: c.FPS, Title: "Video (q to quit)"}
		return player.Stream(src.Next)
	}

	var frames []ascii.Grid
	for {
		grid, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		frames = append(frames, grid)
	}
	fmt.Printf("Processed %d frames\n", len(frames))

	if c.Output != "" {
		var sb strings.Builder
		bar := strings.Repeat("=", src.Width())
		for i, frame := range frames {
			sb.WriteString(frame.String())
			fmt.Fprintf(&sb, "\n%s Frame %d %s\n\n", bar, i+1, bar)
		}
		if err := os.WriteFile(c.Output, []byte(sb.String()), 0o644); err != nil {
			return err
		}
		fmt.Printf("ASCII video saved to %s\n", c.Output)
	}

	if c.Export != "" {
		exporter, err := export.New(export.Options{})
		if err != nil {
			return err
		}
		if err := exporter.Video(frames, c.Export, c.FPS); err != nil {
			return err
		}
		fmt.Printf("Video exported to %s\n", c.Export)
	}
	return nil
}

type webcamCmd struct {
	Width    int     `short:"w" long:"width" default:"0" description:"output width in characters (0 = terminal width)"`
	FPS      float64 `short:"f" long:"fps" default:"15" description:"capture frame rate"`
	Detailed bool    `short:"d" long:"detailed" description:"use the detailed 70-glyph ramp"`
	Invert   bool    `long:"invert" description:"invert brightness"`
}

func (c *webcamCmd) Execute([]string) error {
	src, err := converter.OpenWebcam(converter.VideoOptions{
		Options: converter.Options{
			Width:    autoWidth(c.Width),
			Detailed: c.Detailed,
			Invert:   c.Invert,
		},
		FPS: c.FPS,
	})
	if err != nil {
		return err
	}
	defer src.Close()

	player := &term.Player{FPS: c.FPS, Title: "Webcam (q to quit)"}
	return player.Stream(src.Next)
}

type artCmd struct {
	Args struct {
		Type string `positional-arg-name:"type" required:"yes" description:"banner, wave, circle, spiral, heart, box, animate-wave or animate-spiral"`
	} `positional-args:"true"`
	Text     string  `short:"t" long:"text" default:"Hello, World!" description:"text for banner and box art"`
	Width    int     `short:"w" long:"width" default:"60" description:"art width"`
	Size     int     `short:"s" long:"size" default:"10" description:"art size"`
	Char     string  `short:"c" long:"char" default:"*" description:"fill character"`
	Depth    bool    `long:"depth" description:"shaded depth rendering for circle, spiral and heart"`
	Duration float64 `short:"d" long:"duration" default:"10" description:"animation duration in seconds"`
	FPS      int     `long:"fps" default:"10" description:"animation frame rate"`
	Letter   int     `long:"letter-spacing" default:"1" description:"spaces between characters"`
	Line     int     `long:"line-spacing" default:"1" description:"blank lines between rows"`
	Scale    int     `long:"font-scale" default:"1" description:"horizontal glyph repeat factor"`
	Output   string  `short:"o" long:"output" description:"write ASCII to this file instead of stdout"`
}

func (c *artCmd) Execute([]string) error {
	fill := ascii.FirstRune(c.Char, '*')
	spacing := pattern.Spacing{Letter: c.Letter, Line: c.Line, FontScale: c.Scale}

	var grid ascii.Grid
	switch c.Args.Type {
	case "banner":
		grid = pattern.Banner(c.Text, c.Width, fill)
	case "wave":
		grid = pattern.Wave(c.Width, c.Size, 0)
	case "circle":
		if c.Depth {
			grid = pattern.CircleDepth(c.Size)
		} else {
			grid = pattern.Circle(c.Size, fill)
		}
	case "spiral":
		if c.Depth {
			grid = pattern.SpiralDepth(c.Size, 0.5, 0)
		} else {
			grid = pattern.Spiral(c.Size, 0.5, 0)
		}
	case "heart":
		if c.Depth {
			grid = pattern.HeartDepth(c.Size)
		} else {
			grid = pattern.Heart(c.Size)
		}
	case "box":
		grid = pattern.Box(c.Text, 2, fill)
	case "animate-wave":
		return c.animate(pattern.WaveFrames(c.Width, c.Size, c.FPS))
	case "animate-spiral":
		return c.animate(pattern.SpiralFrames(c.Size, 0.5, c.FPS))
	default:
		return fmt.Errorf("unknown art type %q", c.Args.Type)
	}
	return writeOrPrint(spacing.Apply(grid).String(), c.Output)
}

func (c *artCmd) animate(frames ascii.FrameFunc) error {
	player := &term.Player{
		FPS:      float64(c.FPS),
		Duration: time.Duration(c.Duration * float64(time.Second)),
	}
	return player.Play(frames)
}

type spinCmd struct {
	Args struct {
		Shape string `positional-arg-name:"shape" required:"yes" description:"cube, sphere, torus, pyramid or mixed"`
	} `positional-args:"true"`
	Duration float64  `short:"d" long:"duration" default:"0" description:"animation duration in seconds (0 = until quit)"`
	FPS      float64  `short:"f" long:"fps" default:"30" description:"frame rate"`
	Speed    float64  `short:"s" long:"speed" default:"1" description:"rotation speed multiplier"`
	Size     float64  `long:"size" default:"1.5" description:"object size"`
	Width    int      `short:"w" long:"width" default:"80" description:"canvas width in characters"`
	Height   int      `long:"height" default:"40" description:"canvas height in characters"`
	Angle    *float64 `long:"angle" description:"render a single frame at this rotation angle and print it"`
}

func (c *spinCmd) Execute([]string) error {
	if c.Angle != nil {
		grid, err := render3d.Render(c.Args.Shape, c.Size, *c.Angle, c.Width, c.Height)
		if err != nil {
			return err
		}
		fmt.Println(grid)
		return nil
	}

	frames, err := render3d.Animate(c.Args.Shape, c.Size, c.Speed, c.Width, c.Height)
	if err != nil {
		return err
	}
	player := &term.Player{
		FPS:      c.FPS,
		Duration: time.Duration(c.Duration * float64(time.Second)),
		Title:    fmt.Sprintf("Rotating %s (q to quit)", c.Args.Shape),
	}
	return player.Play(frames)
}

type exportCmd struct {
	Args struct {
		Input  string `positional-arg-name:"input" required:"yes" description:"ASCII text file to rasterize"`
		Output string `positional-arg-name:"output" required:"yes" description:"output image file (.png, .jpg)"`
	} `positional-args:"true"`
	Font     string  `long:"font" description:"path to a monospace TTF font"`
	FontSize float64 `long:"font-size" default:"10" description:"font size in points"`
	FG       string  `long:"fg" default:"255,255,255" description:"text color as R,G,B"`
	BG       string  `long:"bg" default:"0,0,0" description:"background color as R,G,B"`
}

func (c *exportCmd) Execute([]string) error {
	fg, err := parseRGB(c.FG)
	if err != nil {
		return err
	}
	bg, err := parseRGB(c.BG)
	if err != nil {
		return err
	}

	text, err := os.ReadFile(c.Args.Input)
	if err != nil {
		return err
	}
	grid := ascii.Grid(strings.Split(strings.TrimRight(string(text), "\n"), "\n"))

	exporter, err := export.New(export.Options{
		FontPath: c.Font,
		FontSize: c.FontSize,
		FG:       fg,
		BG:       bg,
	})
	if err != nil {
		return err
	}
	if err := exporter.Image(grid, c.Args.Output); err != nil {
		return err
	}
	fmt.Printf("Successfully exported to %s\n", c.Args.Output)
	return nil
}

type serveCmd struct {
	Addr string `long:"addr" default:":8080" description:"listen address"`
}

func (c *serveCmd) Execute([]string) error {
	return server.New(c.Addr).Run()
}

func parseRGB(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q, want R,G,B", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
