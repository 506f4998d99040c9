package effect

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"exhibit/pkg/paint"
)

func filled(t *testing.T, w, h int, col paint.Color) *paint.Canvas {
	t.Helper()
	c, err := paint.NewBlank(w, h, paint.ModeRGB)
	require.NoError(t, err)
	c.Fill(col)
	return c
}

func noisy(t *testing.T, w, h int, seed int64) *paint.Canvas {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	c := filled(t, w, h, paint.Black)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			require.NoError(t, c.SetPixel(paint.Pt(x, y), paint.New(r.Intn(256), r.Intn(256), r.Intn(256))))
		}
	}
	return c
}

func pixel(t *testing.T, c *paint.Canvas, x, y int) paint.Color {
	t.Helper()
	px, err := c.Pixel(paint.Pt(x, y))
	require.NoError(t, err)
	return px
}

func histogram(t *testing.T, c *paint.Canvas) map[paint.Color]int {
	t.Helper()
	h := make(map[paint.Color]int)
	for x := 0; x < c.Width(); x++ {
		for y := 0; y < c.Height(); y++ {
			h[pixel(t, c, x, y)]++
		}
	}
	return h
}
