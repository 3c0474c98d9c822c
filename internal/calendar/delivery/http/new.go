package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/pkg/log"
)

// Handler is the public interface for the calendar HTTP delivery layer.
type Handler interface {
	Feed(c *gin.Context)
	List(c *gin.Context)
}

// Config tunes the feed.
type Config struct {
	// Token, when set, must be sent as the "token" query parameter.
	Token string
	// Name is the calendar name shown by subscribing clients.
	Name string
	// Limit caps the number of events served.
	Limit int64
}

type handler struct {
	l   log.Logger
	uc  calendar.UseCase
	cfg Config
	now func() time.Time
}

// New creates a new HTTP handler for the calendar domain.
func New(l log.Logger, uc calendar.UseCase, cfg Config) *handler {
	if cfg.Limit <= 0 {
		cfg.Limit = defaultFeedLimit
	}
	if cfg.Name == "" {
		cfg.Name = defaultFeedName
	}
	return &handler{
		l:   l,
		uc:  uc,
		cfg: cfg,
		now: time.Now,
	}
}
