package syncer

import (
	"context"
	"time"
)

// Run syncs every active case once per interval until ctx is done. A
// non-positive interval returns immediately.
func (s *Syncer) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("Scheduled sync started", "interval", interval.String())
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduled sync stopped")
			return
		case <-ticker.C:
			summary, err := s.SyncAll(ctx)
			if err != nil {
				s.logger.Error("Scheduled sync failed", "error", err)
				continue
			}
			s.logger.Info("Scheduled sync finished",
				"total", summary.Total,
				"synced", summary.Synced,
				"unchanged", summary.Unchanged,
				"failed", summary.Failed,
			)
		}
	}
}
