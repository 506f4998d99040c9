package paint

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

type Mode string

const (
	ModeRGB  Mode = "RGB"
	ModeRGBA Mode = "RGBA"
)

// Canvas is an addressable grid of colors. It exclusively owns its pixels,
// copies are always deep.
type Canvas struct {
	img  *image.NRGBA
	mode Mode
}

// Open builds a canvas from a file path, a decoded image or another canvas.
func Open(src interface{}) (*Canvas, error) {
	switch v := src.(type) {
	case string:
		return Load(afero.NewOsFs(), v)
	case *Canvas:
		if v == nil {
			return nil, ErrInvalidImageArgument
		}
		return v.Copy(), nil
	case image.Image:
		return FromImage(v), nil
	}
	return nil, errors.Wrapf(ErrInvalidImageArgument, "got %T", src)
}

// NewBlank allocates a black canvas. RGBA canvases start fully transparent.
func NewBlank(width, height int, mode Mode) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "%dx%d", width, height)
	}
	var fill color.NRGBA
	if mode != ModeRGBA {
		mode = ModeRGB
		fill.A = MaxComponent
	}
	return &Canvas{img: imaging.New(width, height, fill), mode: mode}, nil
}

// FromImage copies a decoded image into a new canvas. Opaque images get the
// RGB mode.
func FromImage(img image.Image) *Canvas {
	return &Canvas{img: imaging.Clone(img), mode: modeOf(img)}
}

func modeOf(img image.Image) Mode {
	switch img.(type) {
	case *image.YCbCr, *image.Gray, *image.Gray16, *image.CMYK:
		return ModeRGB
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return ModeRGB
	}
	return ModeRGBA
}

func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

func (c *Canvas) Mode() Mode {
	return c.mode
}

// Image exposes the pixel grid for codecs and displays. Callers must not
// keep it past the next mutation of the canvas.
func (c *Canvas) Image() image.Image {
	return c.img
}

func (c *Canvas) Contains(p Point) bool {
	return p.X >= 0 && p.X < c.Width() && p.Y >= 0 && p.Y < c.Height()
}

func (c *Canvas) outOfRange(p Point) error {
	return errors.Wrapf(ErrIndexOutOfRange, "point %s on %dx%d canvas", p, c.Width(), c.Height())
}

func (c *Canvas) Pixel(p Point) (Color, error) {
	if !c.Contains(p) {
		return Color{}, c.outOfRange(p)
	}
	i := c.img.PixOffset(p.X, p.Y)
	px := c.img.Pix[i : i+4 : i+4]
	if c.mode == ModeRGBA {
		return NewAlpha(int(px[0]), int(px[1]), int(px[2]), int(px[3])), nil
	}
	return New(int(px[0]), int(px[1]), int(px[2])), nil
}

// SetPixel stores col at p, saturating its components to 8 bits.
func (c *Canvas) SetPixel(p Point, col Color) error {
	if !c.Contains(p) {
		return c.outOfRange(p)
	}
	n := col.NRGBA()
	if c.mode == ModeRGB {
		n.A = MaxComponent
	}
	i := c.img.PixOffset(p.X, p.Y)
	px := c.img.Pix[i : i+4 : i+4]
	px[0], px[1], px[2], px[3] = n.R, n.G, n.B, n.A
	return nil
}

func (c *Canvas) Fill(col Color) {
	n := col.NRGBA()
	if c.mode == ModeRGB {
		n.A = MaxComponent
	}
	c.img = imaging.New(c.Width(), c.Height(), n)
}

func (c *Canvas) Copy() *Canvas {
	return &Canvas{img: imaging.Clone(c.img), mode: c.mode}
}

// Resize returns a nearest-neighbour scaled copy.
func (c *Canvas) Resize(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "resize to %dx%d", width, height)
	}
	return &Canvas{
		img:  imaging.Resize(c.img, width, height, imaging.NearestNeighbor),
		mode: c.mode,
	}, nil
}

// Paste copies src into the canvas with its top-left corner at topLeft,
// clipped to the canvas bounds.
func (c *Canvas) Paste(src *Canvas, topLeft Point) {
	c.img = imaging.Paste(c.img, src.img, topLeft.image())
}

// Replace makes the canvas adopt the pixels and mode of other, which must
// not be used afterwards.
func (c *Canvas) Replace(other *Canvas) {
	c.img = other.img
	c.mode = other.mode
}

// Region lists the in-bounds points of the box spanning
// [center-width/2, center+width/2) by [center-height/2, center+height/2),
// column by column.
func (c *Canvas) Region(center Point, width, height int) []Point {
	x0, x1 := center.X-width/2, center.X+width/2
	y0, y1 := center.Y-height/2, center.Y+height/2

	var points []Point
	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			if p := Pt(x, y); c.Contains(p) {
				points = append(points, p)
			}
		}
	}
	return points
}
