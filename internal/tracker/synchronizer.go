package tracker

import (
	"context"
	"log"
	"time"
)

// Synchronizer периодически опрашивает сервер и обновляет Tracker.
// Неудачный опрос логируется, локальное состояние остается прежним.
type Synchronizer struct {
	tracker  *Tracker
	interval time.Duration
	withTeam bool
}

func NewSynchronizer(t *Tracker, interval time.Duration, withTeam bool) *Synchronizer {
	return &Synchronizer{
		tracker:  t,
		interval: interval,
		withTeam: withTeam,
	}
}

// Run блокируется до отмены контекста. Первый опрос выполняется сразу,
// дальше по тикеру.
func (s *Synchronizer) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.poll(ctx)
		}
	}
}

func (s *Synchronizer) poll(ctx context.Context) {
	if err := s.tracker.Refresh(ctx); err != nil {
		log.Printf("status poll failed: %v", err)
	}

	if s.withTeam {
		if err := s.tracker.RefreshTeam(ctx); err != nil {
			log.Printf("team poll failed: %v", err)
		}
	}
}
