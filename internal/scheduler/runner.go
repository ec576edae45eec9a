package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/sharewatch/internal/domain"
)

// CycleRunner runs one full monitoring cycle. Implemented by the
// orchestrator.
type CycleRunner interface {
	RunCycle(ctx context.Context) domain.Snapshot
}

// Publisher receives each completed snapshot. Implemented by the snapshot
// store.
type Publisher interface {
	Publish(domain.Snapshot)
}

// Runner triggers monitoring cycles on a fixed interval. Cycles are
// serialized: a tick only fires the next cycle after the previous one has
// completed and published, so two cycles never race to publish.
type Runner struct {
	Logger   *zap.Logger
	Cycles   CycleRunner
	Store    Publisher
	Interval time.Duration
}

func NewRunner(logger *zap.Logger, cycles CycleRunner, store Publisher, interval time.Duration) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{Logger: logger, Cycles: cycles, Store: store, Interval: interval}
}

// Run starts the loop. It does an immediate cycle, then runs one per tick.
// Stops when ctx is cancelled.
func (r *Runner) Run(ctx context.Context) {
	if r.Interval == 0 {
		// disabled; cycles only happen on demand via the API
		r.Logger.Info("scheduler_disabled")
		return
	}
	t := time.NewTicker(r.Interval)
	defer t.Stop()

	r.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			r.Logger.Info("scheduler_stopped")
			return
		case <-t.C:
			r.runOnce(ctx)
		}
	}
}

func (r *Runner) runOnce(ctx context.Context) {
	snap := r.Cycles.RunCycle(ctx)
	r.Store.Publish(snap)
	r.Logger.Debug("cycle_published",
		zap.Time("last_update", snap.LastUpdate),
		zap.Int("websites", len(snap.WebsiteResults)),
		zap.Int("file_shares", len(snap.StoreResults)),
	)
}
