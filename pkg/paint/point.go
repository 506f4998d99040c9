package paint

import (
	"fmt"
	"image"
	"math"
)

// Point is a pixel address, (0,0) being the top-left corner.
type Point struct {
	X, Y int
}

func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) Distance(o Point) float64 {
	return math.Hypot(float64(o.X-p.X), float64(o.Y-p.Y))
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) image() image.Point {
	return image.Pt(p.X, p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
