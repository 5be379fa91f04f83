package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"golang.org/x/term"
)

func main() {
	parser := flags.NewNamedParser("asciistudio", flags.Default)
	parser.AddCommand("image", "Convert an image to ASCII art",
		"Convert an image file (PNG, JPEG, GIF, BMP, WebP) to ASCII art.", &imageCmd{})
	parser.AddCommand("video", "Convert a video to ASCII art",
		"Play a video as ASCII in the terminal, or write/export its frames.", &videoCmd{})
	parser.AddCommand("webcam", "Show the webcam as live ASCII art",
		"Capture the default camera and render it as ASCII in the terminal.", &webcamCmd{})
	parser.AddCommand("art", "Generate procedural ASCII patterns",
		"Generate banner, wave, circle, spiral, heart or box art, or their animations.", &artCmd{})
	parser.AddCommand("spin", "Animate a rotating 3D shape",
		"Render a rotating cube, sphere, torus, pyramid or mixed scene.", &spinCmd{})
	parser.AddCommand("export", "Rasterize ASCII art to an image file",
		"Read ASCII text from a file and render it to PNG or JPEG with a monospace font.", &exportCmd{})
	parser.AddCommand("serve", "Run the web UI",
		"Serve the ASCII studio web interface and JSON API.", &serveCmd{})

	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		if _, ok := err.(*flags.Error); !ok {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// autoWidth resolves a requested width, falling back to the terminal width
// (or 100 when not a terminal) if none was given.
func autoWidth(requested int) int {
	if requested != 0 {
		return requested
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 100
}

// writeOrPrint saves art to a file when path is set, otherwise prints it.
func writeOrPrint(art, path string) error {
	if path == "" {
		fmt.Println(art)
		return nil
	}
	if err := os.WriteFile(path, []byte(art+"\n"), 0o644); err != nil {
		return err
	}
	fmt.Printf("ASCII art saved to %s\n", path)
	return nil
}
