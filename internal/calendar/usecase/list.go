package usecase

import (
	"context"
	"fmt"

	"calendar-assistant/pkg/gcalendar"
)

// ListUpcoming returns up to maxResults upcoming events of the configured calendar.
func (uc *implUseCase) ListUpcoming(ctx context.Context, maxResults int64) ([]gcalendar.Event, error) {
	if maxResults <= 0 {
		maxResults = defaultUpcomingResults
	}
	events, err := uc.backend.ListUpcoming(ctx, uc.cfg.CalendarID, maxResults)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	return events, nil
}
