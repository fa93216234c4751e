// Command mazeview shows a generated maze in the terminal.
//
// Keys: n draws a new maze, q or Esc quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	pb "github.com/beka-birhanu/vinom-maze/encoder/pb"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/report"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gdamore/tcell/v2"
)

var (
	wallStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	passageStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	arrowStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	rootStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
)

// canvas is the part of tcell.Screen the viewer draws with.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

type viewer struct {
	svc    i.MazeService
	rows   int
	cols   int
	seed   int64
	layout maze.Layout
}

func (v *viewer) regenerate(ctx context.Context) error {
	l, err := v.svc.Generate(ctx, v.rows, v.cols, v.seed)
	if err != nil {
		return err
	}
	v.layout = l
	return nil
}

// draw writes the glyph grid followed by a status line.
func (v *viewer) draw(c canvas) {
	lines := report.Grid(v.layout)
	for y, line := range lines {
		x := 0
		for _, r := range line {
			c.SetContent(x, y, r, nil, styleFor(r))
			x++
		}
	}

	status := fmt.Sprintf("%dx%d seed %d   n: new maze   q: quit", v.rows, v.cols, v.seed)
	for x, r := range []rune(status) {
		c.SetContent(x, len(lines)+1, r, nil, statusStyle)
	}
}

func styleFor(r rune) tcell.Style {
	switch r {
	case '#':
		return wallStyle
	case '·':
		return passageStyle
	case '*':
		return rootStyle
	case '^', 'v', '<', '>':
		return arrowStyle
	default:
		return tcell.StyleDefault
	}
}

func (v *viewer) run(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	for {
		screen.Clear()
		v.draw(screen)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
			if ev.Key() == tcell.KeyRune && ev.Rune() == 'n' {
				v.seed = time.Now().UnixNano()
				if err := v.regenerate(ctx); err != nil {
					return err
				}
			}
		}
	}
}

func main() {
	rows := flag.Int("rows", 12, "number of rows (at least 2)")
	cols := flag.Int("cols", 20, "number of columns (at least 2)")
	seed := flag.Int64("seed", 0, "random seed; 0 picks one from the clock")
	flag.Parse()

	log, err := logger.New("MAZEVIEW", "", os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	svc, err := service.NewMazeService(&service.MazeOptions{
		Encoder:      pb.Protobuf{},
		Logger:       logger.Discard(),
		MaxDimension: 100,
	})
	if err != nil {
		log.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}

	v := &viewer{svc: svc, rows: *rows, cols: *cols, seed: *seed}
	ctx := context.Background()
	if err := v.regenerate(ctx); err != nil {
		log.Error(fmt.Sprintf("Generating maze: %v", err))
		os.Exit(1)
	}
	if err := v.run(ctx); err != nil {
		log.Error(fmt.Sprintf("Viewer stopped: %v", err))
		os.Exit(1)
	}
}
