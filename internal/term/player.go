// Package term plays ASCII animations and frame streams in the terminal.
package term

import (
	"io"
	"time"

	"github.com/gdamore/tcell/v2"

	"asciistudio/internal/ascii"
)

// Player drives a tcell screen at a fixed frame rate. Frames that overrun
// their slot are simply followed by the next tick; there is no backpressure.
type Player struct {
	FPS      float64
	Duration time.Duration // 0 means play until quit or end of stream
	Title    string
}

// Play runs a frame function until the duration elapses or the user quits
// with q, ESC or Ctrl-C.
func (p *Player) Play(frames ascii.FrameFunc) error {
	return p.run(func(frame int) (ascii.Grid, error) {
		return frames(frame), nil
	})
}

// Stream plays grids pulled from next, stopping at io.EOF.
func (p *Player) Stream(next func() (ascii.Grid, error)) error {
	return p.run(func(int) (ascii.Grid, error) {
		return next()
	})
}

func (p *Player) run(frame func(int) (ascii.Grid, error)) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					close(quit)
					return
				}
			case nil:
				return
			}
		}
	}()

	fps := p.FPS
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Duration(float64(time.Second) / fps))
	defer ticker.Stop()

	var deadline <-chan time.Time
	if p.Duration > 0 {
		timer := time.NewTimer(p.Duration)
		defer timer.Stop()
		deadline = timer.C
	}

	for n := 0; ; n++ {
		grid, err := frame(n)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		p.draw(screen, grid)

		select {
		case <-quit:
			return nil
		case <-deadline:
			return nil
		case <-ticker.C:
		}
	}
}

func (p *Player) draw(screen tcell.Screen, grid ascii.Grid) {
	screen.Clear()
	style := tcell.StyleDefault
	top := 0
	if p.Title != "" {
		for x, r := range p.Title {
			screen.SetContent(x, 0, r, nil, style.Bold(true))
		}
		top = 1
	}
	for y, line := range grid {
		for x, r := range []rune(line) {
			screen.SetContent(x, y+top, r, nil, style)
		}
	}
	screen.Show()
}
