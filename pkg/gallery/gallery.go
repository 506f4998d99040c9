package gallery

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"time"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"exhibit/pkg/display"
	"exhibit/pkg/effect"
	"exhibit/pkg/paint"
)

var ErrEffectCountMismatch = errors.New("number of input images is not equal to number of effects")

// Entry pairs an input image with the effect applied to it.
type Entry struct {
	Input  string
	Output string
	Effect effect.Effect
}

// New pairs inputs[i] with effects[i]. Both lists must have the same length.
func New(inputs []string, effects []effect.Effect, opts ...Option) (*Gallery, error) {
	if len(inputs) != len(effects) {
		return nil, errors.Wrapf(ErrEffectCountMismatch, "%d images, %d effects", len(inputs), len(effects))
	}

	g := &Gallery{
		in:       afero.NewOsFs(),
		out:      afero.NewOsFs(),
		logger:   zap.NewNop(),
		progress: io.Discard,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.outputs != nil && len(g.outputs) != len(inputs) {
		return nil, errors.Errorf("%d output names for %d images", len(g.outputs), len(inputs))
	}
	if g.fetcher == nil {
		g.fetcher = NewFetcher(g.logger, g.progress)
	}

	for i, input := range inputs {
		out := outputName(input)
		if g.outputs != nil {
			out = g.outputs[i]
		}
		g.entries = append(g.entries, Entry{Input: input, Output: out, Effect: effects[i]})
	}

	return g, nil
}

type Gallery struct {
	entries  []Entry
	outputs  []string
	in       afero.Fs
	out      afero.Fs
	display  display.Display
	fetcher  *Fetcher
	logger   *zap.Logger
	progress io.Writer
}

func outputName(input string) string {
	if isRemote(input) {
		if u, err := url.Parse(input); err == nil && path.Base(u.Path) != "/" && path.Base(u.Path) != "." {
			return path.Base(u.Path)
		}
		return "remote.png"
	}
	return input
}

func (g *Gallery) Entries() []Entry {
	return g.entries
}

// Run processes the entries in order and stops at the first failure.
// Display problems are logged and otherwise ignored.
func (g *Gallery) Run(ctx context.Context) (*Report, error) {
	report := &Report{}
	bar := progressbar.NewOptions(
		len(g.entries),
		progressbar.OptionSetWriter(g.progress),
		progressbar.OptionSetDescription("processing"),
	)

	for _, e := range g.entries {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		bar.Describe(fmt.Sprintf("processing %s", e.Input))
		res, err := g.process(ctx, e)
		if err != nil {
			return report, fmt.Errorf("%s: %w", e.Input, err)
		}

		report.Add(res)
		_ = bar.Add(1)
	}

	_ = bar.Finish()
	return report, nil
}

func (g *Gallery) load(ctx context.Context, input string) (*paint.Canvas, error) {
	if !isRemote(input) {
		return paint.Load(g.in, input)
	}

	bs, err := g.fetcher.Get(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("download image failed: %w", err)
	}
	return paint.Decode(bytes.NewReader(bs), input)
}

func (g *Gallery) process(ctx context.Context, e Entry) (*Result, error) {
	log := g.logger.With(zap.String("input", e.Input), zap.String("effect", e.Effect.Name()))

	c, err := g.load(ctx, e.Input)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := e.Effect.Apply(c); err != nil {
		return nil, fmt.Errorf("apply %s failed: %w", e.Effect.Name(), err)
	}
	res := &Result{
		Input:   e.Input,
		Output:  e.Output,
		Effect:  e.Effect.Name(),
		Width:   c.Width(),
		Height:  c.Height(),
		Elapsed: time.Since(start),
	}
	log.With(zap.Duration("took", res.Elapsed)).Debug("applied")

	if g.display != nil {
		if err := g.display.Show(ctx, e.Output, c); err != nil {
			log.With(zap.Error(err)).Info("show failed")
		} else {
			res.Shown = true
		}
	}

	if err := c.Save(g.out, e.Output); err != nil {
		return nil, fmt.Errorf("save failed: %w", err)
	}

	if fi, err := g.out.Stat(e.Output); err == nil {
		res.Size = fi.Size()
	}

	log.With(zap.String("output", e.Output)).Debug("saved")
	return res, nil
}
