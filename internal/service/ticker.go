package service

import (
	"context"
	"time"

	"safe_dashboard/internal/repository"
)

// TickerService drives the emergency elapsed counter.
type TickerService struct {
	state repository.StateStore
}

func NewTickerService(state repository.StateStore) *TickerService {
	return &TickerService{state: state}
}

// Run ticks at the given interval until ctx is canceled. Each tick advances
// the counter through the state container, which ignores ticks outside
// emergency mode, so the loop never needs to know the current mode.
func (s *TickerService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			_, _ = s.state.Tick(ctx)
		}
	}
}
