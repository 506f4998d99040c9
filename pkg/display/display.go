package display

import (
	"context"

	"github.com/pkg/errors"

	"exhibit/pkg/paint"
)

var ErrUnknownDisplay = errors.New("unknown display")

// Display shows a finished canvas somewhere. Failures only affect what the
// user sees, never the saved output.
type Display interface {
	Show(ctx context.Context, title string, c *paint.Canvas) error
}
