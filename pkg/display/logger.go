package display

import (
	"context"

	"go.uber.org/zap"

	"exhibit/pkg/paint"
)

// Log returns a display that only records what it was asked to show.
func Log(logger *zap.Logger) *Logger {
	return &Logger{l: logger}
}

type Logger struct {
	l *zap.Logger
}

func (m *Logger) Show(_ context.Context, title string, c *paint.Canvas) error {
	m.l.With(
		zap.String("title", title),
		zap.Int("w", c.Width()),
		zap.Int("h", c.Height()),
		zap.String("mode", string(c.Mode())),
	).Info("show")
	return nil
}
