package paint

import (
	"fmt"
	"image/color"

	"github.com/pkg/errors"
)

const MaxComponent = 255

// Channel indexes a color component.
type Channel int

const (
	R Channel = iota
	G
	B
	A
)

// Channels are the color channels in processing order. Alpha is not one of them.
var Channels = []Channel{R, G, B}

func (c Channel) String() string {
	switch c {
	case R:
		return "red"
	case G:
		return "green"
	case B:
		return "blue"
	case A:
		return "alpha"
	}
	return fmt.Sprintf("channel(%d)", int(c))
}

var (
	Black   = New(0, 0, 0)
	White   = New(255, 255, 255)
	Red     = New(255, 0, 0)
	Green   = New(0, 255, 0)
	Blue    = New(0, 0, 255)
	Magenta = New(255, 0, 255)
	Cyan    = New(0, 255, 255)
	Yellow  = New(255, 255, 0)
)

// Color is an RGB color with an optional alpha component. Components are not
// clamped, arithmetic may leave them outside [0,255].
//
// Color is a value type: copies never share state. The luminance is cached and
// refreshed by every setter.
type Color struct {
	r, g, b, a int
	alpha      bool
	lum        int
}

func New(r, g, b int) Color {
	c := Color{r: r, g: g, b: b}
	c.refresh()
	return c
}

func NewAlpha(r, g, b, a int) Color {
	c := Color{r: r, g: g, b: b, a: a, alpha: true}
	c.refresh()
	return c
}

// FromColor converts any color.Color to 8-bit components. The alpha component
// is kept only when withAlpha is set.
func FromColor(c color.Color, withAlpha bool) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if withAlpha {
		return NewAlpha(int(n.R), int(n.G), int(n.B), int(n.A))
	}
	return New(int(n.R), int(n.G), int(n.B))
}

func (c *Color) refresh() {
	c.lum = (c.r + c.g + c.b) / 3
}

func (c Color) Red() int       { return c.r }
func (c Color) Green() int     { return c.g }
func (c Color) Blue() int      { return c.b }
func (c Color) HasAlpha() bool { return c.alpha }

// Alpha returns the alpha component, or 255 when the color has none.
func (c Color) Alpha() int {
	if !c.alpha {
		return MaxComponent
	}
	return c.a
}

// Luminance is the truncated average of red, green and blue.
func (c Color) Luminance() int {
	return c.lum
}

func (c *Color) SetRed(v int) {
	c.r = v
	c.refresh()
}

func (c *Color) SetGreen(v int) {
	c.g = v
	c.refresh()
}

func (c *Color) SetBlue(v int) {
	c.b = v
	c.refresh()
}

// SetAlpha sets the alpha component, turning an RGB color into an RGBA one.
func (c *Color) SetAlpha(v int) {
	c.a = v
	c.alpha = true
}

func (c Color) Component(ch Channel) (int, error) {
	switch ch {
	case R:
		return c.r, nil
	case G:
		return c.g, nil
	case B:
		return c.b, nil
	case A:
		if c.alpha {
			return c.a, nil
		}
		return 0, errors.Wrap(ErrInvalidComponent, "color has no alpha")
	}
	return 0, errors.Wrapf(ErrInvalidComponent, "index %d", int(ch))
}

func (c *Color) SetComponent(ch Channel, v int) error {
	switch ch {
	case R:
		c.SetRed(v)
	case G:
		c.SetGreen(v)
	case B:
		c.SetBlue(v)
	case A:
		c.SetAlpha(v)
	default:
		return errors.Wrapf(ErrInvalidComponent, "index %d", int(ch))
	}
	return nil
}

// component is Component for the RGB channels, which cannot fail.
func (c Color) component(ch Channel) int {
	switch ch {
	case G:
		return c.g
	case B:
		return c.b
	}
	return c.r
}

func (c Color) apply(fn func(v, i int) int) Color {
	c.r = fn(c.r, 0)
	c.g = fn(c.g, 1)
	c.b = fn(c.b, 2)
	c.refresh()
	return c
}

func (c Color) Add(n int) Color {
	return c.apply(func(v, _ int) int { return v + n })
}

func (c Color) Sub(n int) Color {
	return c.apply(func(v, _ int) int { return v - n })
}

func (c Color) Mul(n int) Color {
	return c.apply(func(v, _ int) int { return v * n })
}

// AddColor adds o component-wise. Alpha is left untouched.
func (c Color) AddColor(o Color) Color {
	return c.apply(func(v, i int) int { return v + o.component(Channel(i)) })
}

func (c Color) SubColor(o Color) Color {
	return c.apply(func(v, i int) int { return v - o.component(Channel(i)) })
}

func (c Color) MulColor(o Color) Color {
	return c.apply(func(v, i int) int { return v * o.component(Channel(i)) })
}

// Equal compares all components. Alpha only takes part when both colors
// carry it.
func (c Color) Equal(o Color) bool {
	if c.r != o.r || c.g != o.g || c.b != o.b {
		return false
	}
	if c.alpha && o.alpha {
		return c.a == o.a
	}
	return true
}

// NRGBA saturates the components to 8 bits.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: clamp(c.r),
		G: clamp(c.g),
		B: clamp(c.b),
		A: clamp(c.Alpha()),
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) String() string {
	if c.alpha {
		return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.r, c.g, c.b, c.a)
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", c.r, c.g, c.b)
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > MaxComponent {
		return MaxComponent
	}
	return uint8(v)
}
