package display

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"exhibit/pkg/paint"
)

// NewTelegram posts every shown canvas as a photo to one chat.
func NewTelegram(token string, chatID int64, logger *zap.Logger) (*Telegram, error) {
	b, err := tele.NewBot(tele.Settings{
		Token: token,
		Poller: &tele.LongPoller{
			Timeout: 30 * time.Second,
		},
	})
	if err != nil {
		return nil, err
	}

	return &Telegram{
		b:      b,
		chat:   &tele.Chat{ID: chatID},
		logger: logger,
	}, nil
}

type Telegram struct {
	b      *tele.Bot
	chat   *tele.Chat
	logger *zap.Logger
}

func (t *Telegram) Show(_ context.Context, title string, c *paint.Canvas) error {
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return err
	}

	photo := &tele.Photo{
		File:    tele.FromReader(&buf),
		Caption: fmt.Sprintf("%s (%dx%d)", title, c.Width(), c.Height()),
	}
	msg, err := t.b.Send(t.chat, photo)
	if err != nil {
		return fmt.Errorf("send photo failed: %w", err)
	}

	t.logger.With(zap.String("title", title), zap.Int("message", msg.ID)).Debug("sent")
	return nil
}
