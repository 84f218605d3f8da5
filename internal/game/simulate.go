package game

import (
	"context"
	"fmt"
)

// Simulate plays days events unattended, picking each choice with picker.
// It stops early when ctx is cancelled and returns the days resolved.
func (s *Session) Simulate(ctx context.Context, days int, picker RandomSource) (int, error) {
	if picker == nil {
		picker = s.rng
	}
	played := 0
	for played < days {
		if err := ctx.Err(); err != nil {
			return played, err
		}
		if err := s.RequestAdvance(); err != nil {
			return played, fmt.Errorf("day %d: %w", played+1, err)
		}
		event, ok := s.PendingEvent()
		if !ok {
			return played, fmt.Errorf("day %d: %w", played+1, ErrNoPendingEvent)
		}
		if err := s.SelectChoice(picker.IntN(len(event.Choices))); err != nil {
			return played, fmt.Errorf("day %d: %w", played+1, err)
		}
		played++
	}
	return played, nil
}
