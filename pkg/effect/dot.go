package effect

import (
	"exhibit/pkg/paint"
	"exhibit/pkg/shape"
)

// Dot redraws an image as a grid of discs, each taking the color of the
// pixel under its center.
type Dot struct {
	radius     int
	gap        int
	background paint.Color
}

func NewDot(radius, gap int, background paint.Color) (*Dot, error) {
	if radius <= 0 {
		return nil, invalid("dot radius %d", radius)
	}
	if gap < 0 {
		return nil, invalid("dot gap %d", gap)
	}
	return &Dot{radius: radius, gap: gap, background: background}, nil
}

func (e *Dot) Name() string {
	return NameDot
}

// cellSize is the distance between centers, kept even so that the first
// center at cellSize/2 sits exactly in the middle of its cell.
func (e *Dot) cellSize() int {
	size := 2*e.radius + e.gap
	if size%2 != 0 {
		size++
	}
	return size
}

func (e *Dot) Apply(c *paint.Canvas) error {
	cell := e.cellSize()
	out := c.Copy()
	out.Fill(e.background)

	for x := cell / 2; x < c.Width(); x += cell {
		for y := cell / 2; y < c.Height(); y += cell {
			center := paint.Pt(x, y)
			px, err := c.Pixel(center)
			if err != nil {
				return err
			}
			shape.NewCircle(center, e.radius, px).Draw(out)
		}
	}

	c.Replace(out)
	return nil
}
