package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/calendar"
	pkgLog "calendar-assistant/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Messenger sends replies and fetches voice notes.
type Messenger interface {
	SendMessage(chatID int64, text string) error
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
}

// RateLimiter throttles updates per chat.
type RateLimiter interface {
	CheckRateLimit(source string) error
}

// Config tunes replies.
type Config struct {
	// BotName is the answer to /whatisname.
	BotName string
	// EventsLimit caps the /events listing.
	EventsLimit int64
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc calendar.UseCase, bot Messenger, limiter RateLimiter, cfg Config) Handler {
	if cfg.EventsLimit <= 0 {
		cfg.EventsLimit = defaultEventsLimit
	}
	if cfg.BotName == "" {
		cfg.BotName = defaultBotName
	}
	return &handler{
		l:       l,
		uc:      uc,
		bot:     bot,
		limiter: limiter,
		cfg:     cfg,
	}
}
