package display

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"exhibit/pkg/paint"
)

type frames struct {
	writes [][]byte
}

func (f *frames) Write(p []byte) (int, error) {
	f.writes = append(f.writes, append([]byte(nil), p...))
	return len(p), nil
}

func TestCommandPacking(t *testing.T) {
	buf := command(cmdDrawBitmap, nil, [4]int{0, 0, 319, 479})
	assert.Equal(t, []byte{0x00, 0x00, 0x04, 0xFD, 0xDF, cmdDrawBitmap}, buf)

	buf = command(cmdSetLight, nil, [4]int{255})
	assert.Equal(t, []byte{0x3F, 0xC0, 0x00, 0x00, 0x00, cmdSetLight}, buf)
}

func TestPanelCommands(t *testing.T) {
	port := &frames{}
	p := NewPanel(port, zap.NewNop())

	require.NoError(t, p.Startup())
	require.NoError(t, p.SetLight(0))
	require.NoError(t, p.SetRotate(true, false))

	require.Len(t, port.writes, 3)
	assert.Equal(t, byte(cmdStartup), port.writes[0][5])
	assert.Equal(t, byte(cmdSetLight), port.writes[1][5])
	assert.Equal(t, byte(255>>2), port.writes[1][0])

	rotate := port.writes[2]
	require.Len(t, rotate, 16)
	assert.Equal(t, byte(cmdSetRotate), rotate[5])
	assert.Equal(t, []byte{101, 0x01, 0xE0, 0x01, 0x40}, rotate[6:11])
	assert.Equal(t, 480, p.width)
	assert.Equal(t, 320, p.height)
}

func TestPanelDrawBitmapBounds(t *testing.T) {
	p := NewPanel(&frames{}, zap.NewNop())
	c, err := paint.NewBlank(10, 10, paint.ModeRGB)
	require.NoError(t, err)

	assert.Error(t, p.DrawBitmap(315, 0, c.Image()))
	assert.Error(t, p.DrawBitmap(0, 475, c.Image()))
	assert.NoError(t, p.DrawBitmap(310, 470, c.Image()))
}

func TestPanelShowFillsScreen(t *testing.T) {
	port := &frames{}
	p := NewPanel(port, zap.NewNop())

	c, err := paint.NewBlank(40, 20, paint.ModeRGB)
	require.NoError(t, err)
	c.Fill(paint.Red)

	require.NoError(t, p.Show(context.Background(), "wide", c))

	// startup, rotate to landscape, bitmap header, pixels
	require.Len(t, port.writes, 4)
	assert.Equal(t, byte(cmdStartup), port.writes[0][5])
	assert.Equal(t, byte(cmdSetRotate), port.writes[1][5])
	assert.Equal(t, byte(cmdDrawBitmap), port.writes[2][5])
	assert.Len(t, port.writes[3], 2*480*320)
}
