package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exhibit/pkg/effect"
	"exhibit/pkg/paint"
)

func TestParseColors(t *testing.T) {
	colors, err := parseColors([]string{"#ff00ff", "#960096", "#000000"})
	require.NoError(t, err)
	assert.True(t, colors[0].Equal(paint.Magenta))
	assert.True(t, colors[1].Equal(paint.New(150, 0, 150)))
	assert.True(t, colors[2].Equal(paint.Black))

	_, err = parseColors([]string{"#ff00ff", "purple"})
	assert.Error(t, err)
}

func TestDefaultFlagsMatchDefaultParams(t *testing.T) {
	p, err := newParams()
	require.NoError(t, err)

	d := effect.DefaultParams()
	assert.Equal(t, d.Threshold, p.Threshold)
	assert.Equal(t, d.Ratio, p.Ratio)
	assert.Equal(t, d.TileLevels, p.TileLevels)
	assert.Equal(t, d.ShuffleStep, p.ShuffleStep)
	require.Len(t, p.TileColors, len(d.TileColors))
	for i := range d.TileColors {
		assert.True(t, d.TileColors[i].Equal(p.TileColors[i]), "tile color %d", i)
	}
	for i := range d.Replacements {
		assert.True(t, d.Replacements[i].Equal(p.Replacements[i]), "replacement %d", i)
	}
}
