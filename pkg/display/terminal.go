package display

import (
	"context"
	"image"

	"github.com/disintegration/imaging"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"exhibit/pkg/paint"
)

// upperHalf lets one cell carry two pixels: foreground on top, background below.
const upperHalf = '▀'

// NewTerminal previews canvases in the terminal with true color half blocks.
// Show returns on any key press.
func NewTerminal(logger *zap.Logger) *Terminal {
	return &Terminal{newScreen: tcell.NewScreen, logger: logger}
}

type Terminal struct {
	newScreen func() (tcell.Screen, error)
	logger    *zap.Logger
}

func (t *Terminal) Show(ctx context.Context, title string, c *paint.Canvas) error {
	s, err := t.newScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = s.PostEvent(tcell.NewEventInterrupt(nil))
		case <-stop:
		}
	}()

	draw(s, c.Image())
	t.logger.With(zap.String("title", title)).Debug("preview")

	for {
		switch s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
			draw(s, c.Image())
		case *tcell.EventKey, *tcell.EventInterrupt, nil:
			return ctx.Err()
		}
	}
}

func draw(s tcell.Screen, img image.Image) {
	w, h := s.Size()
	s.Clear()
	if w == 0 || h == 0 {
		return
	}

	fitted := imaging.Fit(img, w, 2*h, imaging.Box)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			top, bottom, ok := halfBlock(fitted, x, y)
			if !ok {
				continue
			}
			s.SetContent(x, y, upperHalf, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
	s.Show()
}

// halfBlock returns the colors of pixel rows 2y and 2y+1 at column x.
func halfBlock(img *image.NRGBA, x, y int) (tcell.Color, tcell.Color, bool) {
	b := img.Bounds()
	if x >= b.Dx() || 2*y >= b.Dy() {
		return tcell.ColorDefault, tcell.ColorDefault, false
	}

	top := rgb(img, x, 2*y)
	bottom := tcell.ColorBlack
	if 2*y+1 < b.Dy() {
		bottom = rgb(img, x, 2*y+1)
	}
	return top, bottom, true
}

func rgb(img *image.NRGBA, x, y int) tcell.Color {
	c := img.NRGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
