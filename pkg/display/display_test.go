package display

import (
	"context"
	"image"
	"os/exec"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"exhibit/pkg/paint"
)

func TestLoggerDisplay(t *testing.T) {
	c, err := paint.NewBlank(2, 2, paint.ModeRGB)
	require.NoError(t, err)
	assert.NoError(t, Log(zap.NewNop()).Show(context.Background(), "x", c))
}

func TestViewerWritesPreview(t *testing.T) {
	tmp, err := NewTmpFs(t.TempDir())
	require.NoError(t, err)

	var opened string
	v := NewViewer(tmp, zap.NewNop())
	v.opener = func(path string) *exec.Cmd {
		opened = path
		return exec.Command("true")
	}

	c, err := paint.NewBlank(3, 3, paint.ModeRGB)
	require.NoError(t, err)
	require.NoError(t, v.Show(context.Background(), "x", c))

	require.True(t, strings.HasSuffix(opened, ".png"))
	loaded, err := paint.Open(opened)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Width())
}

func TestHalfBlock(t *testing.T) {
	c, err := paint.NewBlank(1, 3, paint.ModeRGB)
	require.NoError(t, err)
	require.NoError(t, c.SetPixel(paint.Pt(0, 0), paint.Red))
	require.NoError(t, c.SetPixel(paint.Pt(0, 1), paint.Blue))
	require.NoError(t, c.SetPixel(paint.Pt(0, 2), paint.Green))
	img := c.Image().(*image.NRGBA)

	top, bottom, ok := halfBlock(img, 0, 0)
	require.True(t, ok)
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), top)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), bottom)

	top, bottom, ok = halfBlock(img, 0, 1)
	require.True(t, ok)
	assert.Equal(t, tcell.NewRGBColor(0, 255, 0), top)
	assert.Equal(t, tcell.ColorBlack, bottom)

	_, _, ok = halfBlock(img, 0, 2)
	assert.False(t, ok)
	_, _, ok = halfBlock(img, 1, 0)
	assert.False(t, ok)
}
