package display

import (
	"bytes"
	"context"
	"encoding/binary"
	"image"
	"image/color"
	"io"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"exhibit/internal/bitmap"
	"exhibit/pkg/paint"
)

const (
	cmdRestart    = 101
	cmdShutdown   = 108
	cmdStartup    = 109
	cmdSetLight   = 110
	cmdSetRotate  = 121
	cmdSetMirror  = 122
	cmdDrawBitmap = 197
)

const (
	panelWidth  = 320
	panelHeight = 480
)

// OpenPanel connects to a 3.5 inch USB serial panel.
func OpenPanel(name string, logger *zap.Logger) (*Panel, error) {
	port, err := OpenSerial(name, &SerialOptions{
		DTR:         true,
		RTS:         true,
		BaudRate:    115200,
		ReadTimeout: time.Millisecond,
	})
	if err != nil {
		return nil, err
	}
	return NewPanel(port, logger), nil
}

func NewPanel(port io.Writer, logger *zap.Logger) *Panel {
	return &Panel{
		port:   port,
		logger: logger,
		width:  panelWidth,
		height: panelHeight,
	}
}

// Panel drives a serial LCD. It is safe for concurrent use, commands are
// serialized on the port.
type Panel struct {
	sync.Mutex
	port      io.Writer
	logger    *zap.Logger
	width     int
	height    int
	landscape bool
	started   bool
}

func (p *Panel) Startup() error {
	p.Lock()
	defer p.Unlock()
	if err := p.sendCMD(cmdStartup); err != nil {
		return err
	}
	p.started = true
	return nil
}

func (p *Panel) Shutdown() error {
	p.Lock()
	defer p.Unlock()
	p.started = false
	return p.sendCMD(cmdShutdown)
}

func (p *Panel) Restart() error {
	p.Lock()
	defer p.Unlock()
	return p.sendCMD(cmdRestart)
}

// SetLight takes a brightness percentage, the panel itself counts darkness.
func (p *Panel) SetLight(percent uint8) error {
	if percent > 100 {
		percent = 100
	}
	p.Lock()
	defer p.Unlock()
	return p.sendCMD(cmdSetLight, int((1-float64(percent)/100)*255))
}

func (p *Panel) SetMirror(mirror bool) error {
	var b byte
	if mirror {
		b = 1
	}
	p.Lock()
	defer p.Unlock()
	return p.sendOpt(cmdSetMirror, 16, []byte{b})
}

func (p *Panel) SetRotate(landscape bool, invert bool) error {
	p.Lock()
	defer p.Unlock()
	return p.setRotate(landscape, invert)
}

func (p *Panel) setRotate(landscape bool, invert bool) error {
	ov := 100
	w, h := panelWidth, panelHeight
	if landscape {
		ov++
		w, h = h, w
	}
	if invert {
		ov++
	}

	var bs bytes.Buffer
	bs.WriteByte(uint8(ov))
	_ = binary.Write(&bs, binary.BigEndian, uint16(w))
	_ = binary.Write(&bs, binary.BigEndian, uint16(h))

	if err := p.sendOpt(cmdSetRotate, 16, bs.Bytes()); err != nil {
		return err
	}
	p.width, p.height, p.landscape = w, h, landscape
	return nil
}

func (p *Panel) DrawBitmap(posX, posY int, img image.Image) error {
	p.Lock()
	defer p.Unlock()
	return p.drawBitmap(posX, posY, img)
}

func (p *Panel) drawBitmap(posX, posY int, img image.Image) error {
	size := img.Bounds().Size()
	if posX < 0 || posY < 0 {
		return errors.Errorf("negative position %d,%d", posX, posY)
	}
	if size.X+posX > p.width {
		return errors.New("width overflow")
	} else if size.Y+posY > p.height {
		return errors.New("height overflow")
	}

	if err := p.sendCMD(cmdDrawBitmap, posX, posY, posX+size.X-1, posY+size.Y-1); err != nil {
		return err
	}
	return p.write(bitmap.Encode(img))
}

// Show turns the panel to match the canvas orientation and draws it
// letterboxed on black.
func (p *Panel) Show(_ context.Context, title string, c *paint.Canvas) error {
	p.Lock()
	defer p.Unlock()

	if !p.started {
		if err := p.sendCMD(cmdStartup); err != nil {
			return err
		}
		p.started = true
	}

	if landscape := c.Width() > c.Height(); landscape != p.landscape {
		if err := p.setRotate(landscape, false); err != nil {
			return err
		}
	}

	fitted := imaging.Fit(c.Image(), p.width, p.height, imaging.Lanczos)
	frame := imaging.PasteCenter(imaging.New(p.width, p.height, color.Black), fitted)

	p.logger.With(zap.String("title", title), zap.Int("w", p.width), zap.Int("h", p.height)).Debug("draw")
	return p.drawBitmap(0, 0, frame)
}
