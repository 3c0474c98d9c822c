package agenda

import (
	"context"
	"time"

	"calendar-assistant/pkg/gcalendar"
)

const (
	DefaultSchedule  = "0 8 * * *"
	DefaultWindow    = 24 * time.Hour
	DefaultMaxEvents = 20

	msgNothingScheduled = "Nothing scheduled for the next %s."
	headerAgenda        = "Agenda for the next %s:"
)

// Config controls the daily digest.
type Config struct {
	// Schedule is a standard five-field cron spec evaluated in Location.
	Schedule string
	ChatID   int64
	Location *time.Location
	// Window limits the digest to events starting before now+Window.
	Window    time.Duration
	MaxEvents int64
}

// EventLister returns upcoming events, soonest first.
type EventLister interface {
	ListUpcoming(ctx context.Context, maxResults int64) ([]gcalendar.Event, error)
}

// MessageSender delivers the digest to a chat.
type MessageSender interface {
	SendMessage(chatID int64, text string) error
}
