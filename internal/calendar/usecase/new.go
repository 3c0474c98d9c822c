package usecase

import (
	"time"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/gcalendar"
	pkgLog "calendar-assistant/pkg/log"
)

const (
	DefaultMinScore        = 0.45
	DefaultSearchLimit     = 20
	DefaultEventDuration   = time.Hour
	defaultUpcomingResults = 10
)

// Config holds the tunables of the dispatcher.
type Config struct {
	CalendarID      string
	MinScore        float64
	SearchLimit     int64
	DefaultDuration time.Duration
}

func (c Config) withDefaults() Config {
	if c.CalendarID == "" {
		c.CalendarID = gcalendar.DefaultCalendarID
	}
	if c.MinScore <= 0 {
		c.MinScore = DefaultMinScore
	}
	if c.SearchLimit <= 0 {
		c.SearchLimit = DefaultSearchLimit
	}
	if c.DefaultDuration <= 0 {
		c.DefaultDuration = DefaultEventDuration
	}
	return c
}

type implUseCase struct {
	l           pkgLog.Logger
	backend     calendar.Backend
	classifier  calendar.Classifier
	transcriber calendar.Transcriber
	dateMath    *datemath.Normalizer
	cfg         Config
	now         func() time.Time
}

var _ calendar.UseCase = (*implUseCase)(nil)

// New creates a new calendar UseCase instance.
func New(
	l pkgLog.Logger,
	backend calendar.Backend,
	classifier calendar.Classifier,
	transcriber calendar.Transcriber,
	dateMath *datemath.Normalizer,
	cfg Config,
) *implUseCase {
	return &implUseCase{
		l:           l,
		backend:     backend,
		classifier:  classifier,
		transcriber: transcriber,
		dateMath:    dateMath,
		cfg:         cfg.withDefaults(),
		now:         time.Now,
	}
}
