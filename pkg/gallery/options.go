package gallery

import (
	"io"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"exhibit/pkg/display"
)

type Option func(g *Gallery)

func WithLogger(logger *zap.Logger) Option {
	return func(g *Gallery) {
		g.logger = logger
	}
}

// WithDisplay shows every result once it is processed.
func WithDisplay(d display.Display) Option {
	return func(g *Gallery) {
		g.display = d
	}
}

// WithProgress draws progress bars on w.
func WithProgress(w io.Writer) Option {
	return func(g *Gallery) {
		g.progress = w
	}
}

// WithFs sets where inputs are read and outputs written.
func WithFs(in, out afero.Fs) Option {
	return func(g *Gallery) {
		g.in = in
		g.out = out
	}
}

// WithOutputs overrides the output names, one per input.
func WithOutputs(names ...string) Option {
	return func(g *Gallery) {
		g.outputs = names
	}
}
