package effect

import (
	"exhibit/pkg/paint"
)

// Tile posterizes an image once per base color and lays the tinted copies
// out on a size x size grid.
type Tile struct {
	colors []paint.Color
	levels int
	size   int
}

func NewTile(colors []paint.Color, levels, size int) (*Tile, error) {
	if len(colors) == 0 {
		return nil, invalid("tile needs at least one color")
	}
	if levels <= 0 {
		return nil, invalid("posterization levels %d", levels)
	}
	if size <= 0 {
		return nil, invalid("tile grid size %d", size)
	}

	e := &Tile{levels: levels, size: size}
	e.colors = append(e.colors, colors...)
	return e, nil
}

func (e *Tile) Name() string {
	return NameTile
}

// bucket returns 0 when lum is within the first luminance step, otherwise the
// k with k*step < lum <= (k+1)*step, step being 255/levels. Comparisons are
// done on lum*levels so that no rounding creeps in.
func (e *Tile) bucket(lum int) (int, bool) {
	scaled := lum * e.levels
	if scaled <= paint.MaxComponent {
		return 0, true
	}
	for k := 1; k*paint.MaxComponent < paint.MaxComponent*e.levels; k++ {
		if k*paint.MaxComponent < scaled && scaled <= (k+1)*paint.MaxComponent {
			return k, true
		}
	}
	return 0, false
}

// Posterize returns one full-size copy of c per base color. A pixel in luminance
// bucket k is painted with the copy's base color brightened by k steps.
func (e *Tile) Posterize(c *paint.Canvas) ([]*paint.Canvas, error) {
	copies := make([]*paint.Canvas, len(e.colors))
	for i := range copies {
		copies[i] = c.Copy()
	}

	step := paint.MaxComponent / e.levels
	for x := 0; x < c.Width(); x++ {
		for y := 0; y < c.Height(); y++ {
			p := paint.Pt(x, y)
			px, err := c.Pixel(p)
			if err != nil {
				return nil, err
			}

			k, ok := e.bucket(px.Luminance())
			if !ok {
				continue
			}
			for i, base := range e.colors {
				if err := copies[i].SetPixel(p, base.Add(step*k)); err != nil {
					return nil, err
				}
			}
		}
	}
	return copies, nil
}

// Apply replaces c with the mosaic. The result is size tiles wide and high,
// each tile being c scaled down by size, so it may lose a few pixels to
// rounding.
func (e *Tile) Apply(c *paint.Canvas) error {
	tileW, tileH := c.Width()/e.size, c.Height()/e.size
	if tileW == 0 || tileH == 0 {
		return invalid("%dx%d canvas is too small for a %dx%d grid", c.Width(), c.Height(), e.size, e.size)
	}

	copies, err := e.Posterize(c)
	if err != nil {
		return err
	}

	out, err := paint.NewBlank(tileW*e.size, tileH*e.size, c.Mode())
	if err != nil {
		return err
	}

	index := 0
	for x := 0; x < out.Width(); x += tileW {
		for y := 0; y < out.Height(); y += tileH {
			tile, err := copies[index%len(copies)].Resize(tileW, tileH)
			if err != nil {
				return err
			}
			out.Paste(tile, paint.Pt(x, y))
			index++
		}
	}

	c.Replace(out)
	return nil
}
