package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/pkg/similarity"
)

// Search returns upcoming events whose text matches query, ordered by
// descending title similarity. Ties keep the backend's start-time order.
func (uc *implUseCase) Search(ctx context.Context, calendarID, query string, limit int64) ([]calendar.MatchCandidate, error) {
	if calendarID == "" {
		calendarID = uc.cfg.CalendarID
	}
	if limit <= 0 {
		limit = uc.cfg.SearchLimit
	}

	events, err := uc.backend.SearchByText(ctx, calendarID, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}

	candidates := make([]calendar.MatchCandidate, 0, len(events))
	for _, e := range events {
		candidates = append(candidates, calendar.MatchCandidate{
			Event: e,
			Score: similarity.Ratio(query, e.Summary),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates, nil
}

// BestMatch returns the id of the top Search result when its score reaches minScore.
func (uc *implUseCase) BestMatch(ctx context.Context, calendarID, query string, minScore float64) (string, bool, error) {
	best, err := uc.resolve(ctx, calendarID, query, minScore, nil)
	if errors.Is(err, calendar.ErrNoMatch) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return best.Event.ID, true, nil
}

// resolve is the single path by which an event is picked by name. When onDay
// is set only events starting on that calendar day are considered.
func (uc *implUseCase) resolve(ctx context.Context, calendarID, query string, minScore float64, onDay *time.Time) (calendar.MatchCandidate, error) {
	candidates, err := uc.Search(ctx, calendarID, query, uc.cfg.SearchLimit)
	if err != nil {
		return calendar.MatchCandidate{}, err
	}
	if onDay != nil {
		candidates = onSameDay(candidates, *onDay)
	}

	if len(candidates) == 0 {
		return calendar.MatchCandidate{}, fmt.Errorf("%w: %q", calendar.ErrNoMatch, query)
	}
	best := candidates[0]
	if best.Score < minScore {
		uc.l.Infof(ctx, "resolve: best candidate %q scored %.2f below %.2f for %q", best.Event.Summary, best.Score, minScore, query)
		return calendar.MatchCandidate{}, fmt.Errorf("%w: %q", calendar.ErrNoMatch, query)
	}
	return best, nil
}

func onSameDay(candidates []calendar.MatchCandidate, day time.Time) []calendar.MatchCandidate {
	y, m, d := day.Date()
	out := candidates[:0:0]
	for _, c := range candidates {
		cy, cm, cd := c.Event.StartTime.In(day.Location()).Date()
		if cy == y && cm == m && cd == d {
			out = append(out, c)
		}
	}
	return out
}
