package effect

import (
	"math/rand"
	"time"

	"exhibit/pkg/paint"
)

type ShuffleOption func(e *Shuffle)

// WithRand replaces the time-seeded random source.
func WithRand(r *rand.Rand) ShuffleOption {
	return func(e *Shuffle) {
		e.rand = r
	}
}

// Shuffle permutes pixels inside random squares laid on a grid.
type Shuffle struct {
	step       int
	randomness int
	rand       *rand.Rand
}

// NewShuffle walks the canvas every step pixels; each square side is drawn
// from [step, step*randomness).
func NewShuffle(step, randomness int, opts ...ShuffleOption) (*Shuffle, error) {
	if step <= 0 {
		return nil, invalid("shuffle step %d", step)
	}
	if randomness <= 1 {
		return nil, invalid("shuffle randomness %d", randomness)
	}

	e := &Shuffle{
		step:       step,
		randomness: randomness,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rand == nil {
		e.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e, nil
}

func (e *Shuffle) Name() string {
	return NameShuffle
}

func (e *Shuffle) squareSize() int {
	return e.step + e.rand.Intn(e.step*e.randomness-e.step)
}

// Apply reads every color from a snapshot of the original canvas, so
// overlapping squares may carry a color into more than one place.
func (e *Shuffle) Apply(c *paint.Canvas) error {
	orig := c.Copy()

	for x := 0; x < c.Width(); x += e.step {
		for y := 0; y < c.Height(); y += e.step {
			size := e.squareSize()
			square := orig.Region(paint.Pt(x, y), size, size)

			shuffled := make([]paint.Point, len(square))
			copy(shuffled, square)
			e.rand.Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})

			for _, p := range square {
				px, err := orig.Pixel(p)
				if err != nil {
					return err
				}
				last := len(shuffled) - 1
				dst := shuffled[last]
				shuffled = shuffled[:last]
				if err := c.SetPixel(dst, px); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
