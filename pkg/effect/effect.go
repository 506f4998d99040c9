package effect

import (
	"github.com/pkg/errors"

	"exhibit/pkg/paint"
)

var (
	ErrInvalidParameter = errors.New("invalid effect parameter")
	ErrUnknownEffect    = errors.New("unknown effect")
)

// Effect transforms a canvas in place. Parameters are fixed when the effect
// is built, so an Effect can be applied to any number of canvases.
type Effect interface {
	Name() string
	Apply(c *paint.Canvas) error
}

const (
	NameDominantColor = "dominant-color"
	NameShuffle       = "shuffle"
	NameDot           = "dot"
	NameTile          = "tile"
)

// Names lists every effect, in the order the exhibit uses them.
func Names() []string {
	return []string{NameTile, NameDot, NameShuffle, NameDominantColor}
}

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}
