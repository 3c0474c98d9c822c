package agenda

import (
	"context"
	"fmt"
	"time"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/pkg/gcalendar"
	"calendar-assistant/pkg/log"
)

// Start registers the digest job and starts the cron runner. It does not block.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.cfg.Schedule, s.run); err != nil {
		return fmt.Errorf("add agenda job %q: %w", s.cfg.Schedule, err)
	}

	s.cron.Start()
	s.l.Infof(ctx, "Agenda scheduler started (spec: %s, tz: %s, chat: %d)", s.cfg.Schedule, s.cfg.Location, s.cfg.ChatID)
	return nil
}

// Stop halts the runner and waits for a running digest to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) run() {
	ctx := log.WithTraceID(context.Background(), "")
	if err := s.SendDigest(ctx); err != nil {
		s.l.Errorf(ctx, "agenda: %v", err)
	}
}

// SendDigest posts the events starting within the window to the configured chat.
func (s *Scheduler) SendDigest(ctx context.Context) error {
	events, err := s.lister.ListUpcoming(ctx, s.cfg.MaxEvents)
	if err != nil {
		return fmt.Errorf("list upcoming: %w", err)
	}

	text := s.digest(events)
	if err := s.sender.SendMessage(s.cfg.ChatID, text); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	return nil
}

func (s *Scheduler) digest(events []gcalendar.Event) string {
	until := s.now().Add(s.cfg.Window)

	due := make([]gcalendar.Event, 0, len(events))
	for _, e := range events {
		if !e.StartTime.Before(until) {
			continue
		}
		if !e.AllDay {
			e.StartTime = e.StartTime.In(s.cfg.Location)
			e.EndTime = e.EndTime.In(s.cfg.Location)
		}
		due = append(due, e)
	}

	window := windowLabel(s.cfg.Window)
	if len(due) == 0 {
		return fmt.Sprintf(msgNothingScheduled, window)
	}
	return calendar.FormatAgenda(fmt.Sprintf(headerAgenda, window), due)
}

func windowLabel(d time.Duration) string {
	if d%time.Hour == 0 {
		return fmt.Sprintf("%d hours", int(d.Hours()))
	}
	return d.String()
}
