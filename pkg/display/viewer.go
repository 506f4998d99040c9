package display

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"go.uber.org/zap"

	"exhibit/pkg/paint"
)

// NewViewer opens canvases in the desktop's default image viewer, going
// through a temporary PNG file.
func NewViewer(tmp *TmpFs, logger *zap.Logger) *Viewer {
	return &Viewer{tmp: tmp, logger: logger, opener: opener}
}

type Viewer struct {
	tmp    *TmpFs
	logger *zap.Logger
	opener func(path string) *exec.Cmd
}

func opener(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	}
	return exec.Command("xdg-open", path)
}

func (v *Viewer) Show(_ context.Context, title string, c *paint.Canvas) error {
	name, real := v.tmp.NewFile(".png")
	if err := c.Save(v.tmp.Fs(), name); err != nil {
		return fmt.Errorf("write preview failed: %w", err)
	}

	cmd := v.opener(real)
	if err := cmd.Start(); err != nil {
		v.logger.With(zap.String("exec", cmd.String()), zap.Error(err)).Info("failed")
		return fmt.Errorf("open viewer failed: %w", err)
	}

	v.logger.With(zap.String("title", title), zap.String("file", real)).Debug("opened")

	// the viewer outlives us, only reap the process
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
