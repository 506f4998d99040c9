package gallery

import (
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Result describes one processed entry.
type Result struct {
	Input   string
	Output  string
	Effect  string
	Width   int
	Height  int
	Size    int64
	Elapsed time.Duration
	Shown   bool
}

type Report struct {
	items []*Result
}

func (r *Report) Add(res *Result) {
	r.items = append(r.items, res)
}

func (r *Report) Results() []*Result {
	return r.items
}

func (r *Report) Last() *Result {
	res, _ := lo.Last(r.items)
	return res
}

func (r *Report) Elapsed() time.Duration {
	return lo.Reduce(r.items, func(total time.Duration, res *Result, _ int) time.Duration {
		return total + res.Elapsed
	}, 0)
}

func (r *Report) Size() int64 {
	return lo.Reduce(r.items, func(total int64, res *Result, _ int) int64 {
		return total + res.Size
	}, 0)
}

func (r *Report) Log(logger *zap.Logger) {
	for _, res := range r.items {
		logger.With(
			zap.String("input", res.Input),
			zap.String("effect", res.Effect),
			zap.String("output", res.Output),
			zap.String("size", bytesize.New(float64(res.Size)).String()),
			zap.Duration("took", res.Elapsed),
		).Info("processed")
	}

	logger.With(
		zap.Int("images", len(r.items)),
		zap.String("size", bytesize.New(float64(r.Size())).String()),
		zap.Duration("took", r.Elapsed()),
	).Info("gallery done")
}
