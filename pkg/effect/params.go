package effect

import (
	"github.com/pkg/errors"

	"exhibit/pkg/paint"
)

// Params holds the settings of every effect so they can be built by name.
type Params struct {
	Threshold    int
	Ratio        float64
	Replacements []paint.Color
	Background   paint.Color

	ShuffleStep       int
	ShuffleRandomness int
	ShuffleOptions    []ShuffleOption

	DotRadius     int
	DotGap        int
	DotBackground paint.Color

	TileColors []paint.Color
	TileLevels int
	TileSize   int
}

// DefaultParams are the settings the exhibit ships with.
func DefaultParams() Params {
	return Params{
		Threshold:         50,
		Ratio:             0.9,
		Replacements:      []paint.Color{paint.Magenta, paint.Yellow, paint.Cyan},
		Background:        paint.Black,
		ShuffleStep:       10,
		ShuffleRandomness: 3,
		DotRadius:         10,
		DotGap:            5,
		DotBackground:     paint.Black,
		TileColors: []paint.Color{
			paint.New(150, 0, 150),
			paint.New(150, 150, 0),
			paint.New(0, 150, 0),
			paint.New(0, 150, 150),
		},
		TileLevels: 6,
		TileSize:   2,
	}
}

// Build returns a nil Effect whenever it fails.
func Build(name string, p Params) (Effect, error) {
	var e Effect
	var err error

	switch name {
	case NameDominantColor:
		e, err = NewDominantColor(p.Threshold, p.Ratio, p.Replacements, p.Background)
	case NameShuffle:
		e, err = NewShuffle(p.ShuffleStep, p.ShuffleRandomness, p.ShuffleOptions...)
	case NameDot:
		e, err = NewDot(p.DotRadius, p.DotGap, p.DotBackground)
	case NameTile:
		e, err = NewTile(p.TileColors, p.TileLevels, p.TileSize)
	default:
		return nil, errors.Wrapf(ErrUnknownEffect, "%q", name)
	}

	if err != nil {
		return nil, err
	}
	return e, nil
}

// BuildAll builds one effect per name, in order.
func BuildAll(names []string, p Params) ([]Effect, error) {
	effects := make([]Effect, 0, len(names))
	for _, name := range names {
		e, err := Build(name, p)
		if err != nil {
			return nil, err
		}
		effects = append(effects, e)
	}
	return effects, nil
}
