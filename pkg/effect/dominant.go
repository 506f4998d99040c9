package effect

import (
	"fmt"

	"github.com/samber/lo"

	"exhibit/pkg/paint"
)

// DominantColor reduces an image to one replacement color per dominant
// channel, everything else becoming the background.
type DominantColor struct {
	threshold    int
	ratio        float64
	replacements [3]paint.Color
	background   paint.Color
}

// NewDominantColor takes the replacement colors in R, G, B order. A channel
// dominates when it exceeds threshold and each other channel stays below
// channel*ratio.
func NewDominantColor(threshold int, ratio float64, replacements []paint.Color, background paint.Color) (*DominantColor, error) {
	if ratio <= 0 {
		return nil, invalid("difference ratio %v", ratio)
	}
	if len(replacements) != len(paint.Channels) {
		return nil, invalid("need %d replacement colors, got %d", len(paint.Channels), len(replacements))
	}

	e := &DominantColor{
		threshold:  threshold,
		ratio:      ratio,
		background: background,
	}
	copy(e.replacements[:], replacements)
	return e, nil
}

func (e *DominantColor) Name() string {
	return NameDominantColor
}

func (e *DominantColor) String() string {
	return fmt.Sprintf("%s(threshold=%d, ratio=%v)", e.Name(), e.threshold, e.ratio)
}

// Apply runs one pass per channel in R, G, B order, so a later channel wins
// when a recolored pixel turns out dominant again.
func (e *DominantColor) Apply(c *paint.Canvas) error {
	for i, ch := range paint.Channels {
		if err := e.replace(c, ch, e.replacements[i]); err != nil {
			return err
		}
	}
	return e.clearRest(c)
}

func (e *DominantColor) replace(c *paint.Canvas, ch paint.Channel, with paint.Color) error {
	for x := 0; x < c.Width(); x++ {
		for y := 0; y < c.Height(); y++ {
			p := paint.Pt(x, y)
			px, err := c.Pixel(p)
			if err != nil {
				return err
			}
			if !e.dominant(px, ch) {
				continue
			}
			if err := c.SetPixel(p, with); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *DominantColor) dominant(px paint.Color, ch paint.Channel) bool {
	v, _ := px.Component(ch)
	if v <= e.threshold {
		return false
	}
	for _, other := range paint.Channels {
		if other == ch {
			continue
		}
		o, _ := px.Component(other)
		if float64(o) >= float64(v)*e.ratio {
			return false
		}
	}
	return true
}

func (e *DominantColor) isReplacement(px paint.Color) bool {
	return lo.ContainsBy(e.replacements[:], px.Equal)
}

func (e *DominantColor) clearRest(c *paint.Canvas) error {
	for x := 0; x < c.Width(); x++ {
		for y := 0; y < c.Height(); y++ {
			p := paint.Pt(x, y)
			px, err := c.Pixel(p)
			if err != nil {
				return err
			}
			if e.isReplacement(px) {
				continue
			}
			if err := c.SetPixel(p, e.background); err != nil {
				return err
			}
		}
	}
	return nil
}
