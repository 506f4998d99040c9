package shape

import (
	"exhibit/pkg/paint"
)

// Circle is a filled disc.
type Circle struct {
	Center paint.Point
	Radius int
	Color  paint.Color
}

func NewCircle(center paint.Point, radius int, color paint.Color) Circle {
	return Circle{Center: center, Radius: radius, Color: color}
}

// Draw fills the disc onto canvas with the midpoint circle algorithm,
// sweeping horizontal spans between mirrored octant points. Pixels falling
// outside the canvas are skipped.
func (c Circle) Draw(canvas *paint.Canvas) {
	cx, cy := c.Center.X, c.Center.Y
	x, y := c.Radius, 0
	decisionOver2 := 1 - x

	for y <= x {
		c.span(canvas, cx-y, cx+y, cy-x)
		c.span(canvas, cx-x, cx+x, cy-y)
		c.span(canvas, cx-x, cx+x, cy+y)
		c.span(canvas, cx-y, cx+y, cy+x)

		y++
		if decisionOver2 <= 0 {
			decisionOver2 += 2*y + 1
		} else {
			x--
			decisionOver2 += 2*(y-x) + 1
		}
	}
}

// span paints [from, to) on row.
func (c Circle) span(canvas *paint.Canvas, from, to, row int) {
	if row < 0 || row >= canvas.Height() {
		return
	}
	if from < 0 {
		from = 0
	}
	if to > canvas.Width() {
		to = canvas.Width()
	}
	for x := from; x < to; x++ {
		_ = canvas.SetPixel(paint.Pt(x, row), c.Color)
	}
}
