package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exhibit/pkg/paint"
)

func painted(t *testing.T, c *paint.Canvas) map[paint.Point]bool {
	t.Helper()
	set := make(map[paint.Point]bool)
	for x := 0; x < c.Width(); x++ {
		for y := 0; y < c.Height(); y++ {
			px, err := c.Pixel(paint.Pt(x, y))
			require.NoError(t, err)
			if px.Equal(paint.Red) {
				set[paint.Pt(x, y)] = true
			}
		}
	}
	return set
}

func TestCircleStaysInsideRadius(t *testing.T) {
	for r := 1; r <= 12; r++ {
		size := 4*r + 1
		canvas, err := paint.NewBlank(size, size, paint.ModeRGB)
		require.NoError(t, err)
		center := paint.Pt(2*r, 2*r)

		NewCircle(center, r, paint.Red).Draw(canvas)

		set := painted(t, canvas)
		require.NotEmpty(t, set)
		assert.True(t, set[center], "radius %d: center not painted", r)
		for p := range set {
			// the midpoint rule keeps every boundary pixel within half a pixel
			assert.LessOrEqual(t, p.Distance(center), float64(r)+0.5, "radius %d: %s", r, p)
		}
	}
}

func TestCircleSymmetry(t *testing.T) {
	const r = 9
	canvas, err := paint.NewBlank(4*r+1, 4*r+1, paint.ModeRGB)
	require.NoError(t, err)
	cx, cy := 2*r, 2*r

	NewCircle(paint.Pt(cx, cy), r, paint.Red).Draw(canvas)
	set := painted(t, canvas)

	// spans are half-open, so the horizontal mirror axis sits at cx-0.5
	for p := range set {
		dx, dy := p.X-cx, p.Y-cy
		assert.True(t, set[paint.Pt(cx+dx, cy-dy)], "vertical mirror of %s", p)
		assert.True(t, set[paint.Pt(cx-1-dx, cy+dy)], "horizontal mirror of %s", p)
		assert.True(t, set[paint.Pt(cx-1-dx, cy-dy)], "point mirror of %s", p)
	}
}

func TestCircleClipsAtEdges(t *testing.T) {
	canvas, err := paint.NewBlank(5, 5, paint.ModeRGB)
	require.NoError(t, err)

	NewCircle(paint.Pt(0, 0), 4, paint.Red).Draw(canvas)

	set := painted(t, canvas)
	assert.True(t, set[paint.Pt(0, 0)])
	assert.True(t, set[paint.Pt(1, 1)])
	assert.False(t, set[paint.Pt(4, 4)])
}
