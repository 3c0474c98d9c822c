package agenda

import (
	"errors"
	"time"

	"github.com/robfig/cron/v3"

	"calendar-assistant/pkg/log"
)

var ErrNoChat = errors.New("agenda chat id is not configured")

// Scheduler posts a digest of upcoming events on a cron schedule.
type Scheduler struct {
	l      log.Logger
	cron   *cron.Cron
	lister EventLister
	sender MessageSender
	cfg    Config
	now    func() time.Time
}

func New(l log.Logger, lister EventLister, sender MessageSender, cfg Config) (*Scheduler, error) {
	if cfg.ChatID == 0 {
		return nil, ErrNoChat
	}
	if cfg.Schedule == "" {
		cfg.Schedule = DefaultSchedule
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.MaxEvents <= 0 {
		cfg.MaxEvents = DefaultMaxEvents
	}

	return &Scheduler{
		l:      l,
		cron:   cron.New(cron.WithLocation(cfg.Location)),
		lister: lister,
		sender: sender,
		cfg:    cfg,
		now:    time.Now,
	}, nil
}
