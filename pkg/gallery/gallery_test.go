package gallery

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exhibit/pkg/effect"
	"exhibit/pkg/paint"
)

type failingDisplay struct {
	titles []string
}

func (d *failingDisplay) Show(_ context.Context, title string, _ *paint.Canvas) error {
	d.titles = append(d.titles, title)
	return errors.New("no viewer")
}

func source(t *testing.T, fs afero.Fs, name string, w, h int, col paint.Color) {
	t.Helper()
	c, err := paint.NewBlank(w, h, paint.ModeRGB)
	require.NoError(t, err)
	c.Fill(col)
	require.NoError(t, c.Save(fs, name))
}

func dominant(t *testing.T) effect.Effect {
	t.Helper()
	e, err := effect.NewDominantColor(50, 0.9, []paint.Color{paint.Magenta, paint.Yellow, paint.Cyan}, paint.Black)
	require.NoError(t, err)
	return e
}

func TestEffectCountMismatch(t *testing.T) {
	_, err := New([]string{"a.png", "b.png"}, []effect.Effect{dominant(t)})
	assert.ErrorIs(t, err, ErrEffectCountMismatch)

	_, err = New(nil, []effect.Effect{dominant(t)})
	assert.ErrorIs(t, err, ErrEffectCountMismatch)

	_, err = New([]string{"a.png"}, []effect.Effect{dominant(t)}, WithOutputs("x.png", "y.png"))
	assert.Error(t, err)
}

func TestRunAppliesAndSaves(t *testing.T) {
	in, out := afero.NewMemMapFs(), afero.NewMemMapFs()
	source(t, in, "blue.png", 4, 4, paint.Blue)
	source(t, in, "dark/grey.png", 6, 6, paint.New(10, 10, 10))

	dot, err := effect.NewDot(1, 0, paint.White)
	require.NoError(t, err)

	shown := &failingDisplay{}
	g, err := New(
		[]string{"blue.png", "dark/grey.png"},
		[]effect.Effect{dominant(t), dot},
		WithFs(in, out),
		WithDisplay(shown),
	)
	require.NoError(t, err)

	report, err := g.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Results(), 2)

	// display failures do not stop the run
	assert.Equal(t, []string{"blue.png", "dark/grey.png"}, shown.titles)
	assert.False(t, report.Results()[0].Shown)

	blue, err := paint.Load(out, "blue.png")
	require.NoError(t, err)
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			px, err := blue.Pixel(paint.Pt(x, y))
			require.NoError(t, err)
			assert.True(t, px.Equal(paint.Cyan))
		}
	}

	grey, err := paint.Load(out, "dark/grey.png")
	require.NoError(t, err)
	assert.Equal(t, 6, grey.Width())

	last := report.Last()
	assert.Equal(t, effect.NameDot, last.Effect)
	assert.Positive(t, last.Size)
	assert.Equal(t, report.Results()[0].Size+last.Size, report.Size())
}

func TestRunStopsOnMissingInput(t *testing.T) {
	in, out := afero.NewMemMapFs(), afero.NewMemMapFs()
	source(t, in, "ok.png", 2, 2, paint.Red)

	g, err := New([]string{"ok.png", "missing.png"}, []effect.Effect{dominant(t), dominant(t)}, WithFs(in, out))
	require.NoError(t, err)

	report, err := g.Run(context.Background())
	assert.ErrorIs(t, err, paint.ErrDecode)
	assert.Len(t, report.Results(), 1)

	exists, err := afero.Exists(out, "ok.png")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRunHonoursCancel(t *testing.T) {
	in := afero.NewMemMapFs()
	source(t, in, "a.png", 2, 2, paint.Red)

	g, err := New([]string{"a.png"}, []effect.Effect{dominant(t)}, WithFs(in, afero.NewMemMapFs()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := g.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Results())
}

func TestRunFetchesRemoteInputs(t *testing.T) {
	c, err := paint.NewBlank(3, 3, paint.ModeRGB)
	require.NoError(t, err)
	c.Fill(paint.Red)
	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/images/red.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(buf.Bytes())
	}))
	defer srv.Close()

	out := afero.NewMemMapFs()
	g, err := New([]string{srv.URL + "/images/red.png"}, []effect.Effect{dominant(t)}, WithFs(afero.NewMemMapFs(), out))
	require.NoError(t, err)
	assert.Equal(t, "red.png", g.Entries()[0].Output)

	_, err = g.Run(context.Background())
	require.NoError(t, err)

	red, err := paint.Load(out, "red.png")
	require.NoError(t, err)
	px, err := red.Pixel(paint.Pt(2, 2))
	require.NoError(t, err)
	assert.True(t, px.Equal(paint.Magenta))

	g, err = New([]string{srv.URL + "/nothing.png"}, []effect.Effect{dominant(t)}, WithFs(afero.NewMemMapFs(), out))
	require.NoError(t, err)
	_, err = g.Run(context.Background())
	assert.Error(t, err)
}
