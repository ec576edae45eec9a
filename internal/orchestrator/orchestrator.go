package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/hamed0406/sharewatch/internal/domain"
	"github.com/hamed0406/sharewatch/internal/probe"
)

// DefaultMaxConcurrent bounds the probe fan-out of one cycle.
const DefaultMaxConcurrent = 16

// Orchestrator runs monitoring cycles over the active target set. The set
// is an immutable value behind an atomic pointer: configuration changes
// build a new set and swap it in, and an in-flight cycle keeps the set it
// started with.
type Orchestrator struct {
	logger   *zap.Logger
	websites probe.WebsiteProber
	shares   probe.ShareProber
	max      int64

	targets atomic.Pointer[domain.TargetSet]
}

func New(logger *zap.Logger, websites probe.WebsiteProber, shares probe.ShareProber, maxConcurrent int) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxConcurrent < 1 {
		maxConcurrent = DefaultMaxConcurrent
	}
	o := &Orchestrator{
		logger:   logger,
		websites: websites,
		shares:   shares,
		max:      int64(maxConcurrent),
	}
	o.targets.Store(&domain.TargetSet{})
	return o
}

// SetTargets replaces the active target set wholesale.
func (o *Orchestrator) SetTargets(ts domain.TargetSet) {
	o.targets.Store(&ts)
	o.logger.Info("targets_replaced",
		zap.Int("websites", len(ts.Websites)),
		zap.Int("file_shares", len(ts.Stores)),
	)
}

// Targets returns the currently active target set.
func (o *Orchestrator) Targets() domain.TargetSet {
	return *o.targets.Load()
}

// RunCycle probes every configured target concurrently and returns the
// assembled snapshot. One goroutine per target, gated by a weighted
// semaphore; every probe is isolated so that a failure, however unexpected,
// becomes that target's error result and nothing more. RunCycle always
// returns a snapshot with exactly one entry per target.
func (o *Orchestrator) RunCycle(ctx context.Context) domain.Snapshot {
	ts := o.Targets()
	start := time.Now()

	snap := domain.Snapshot{
		WebsiteResults: make(map[string]domain.WebsiteResult, len(ts.Websites)),
		StoreResults:   make(map[string]domain.ShareResult, len(ts.Stores)),
	}

	sem := semaphore.NewWeighted(o.max)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, tgt := range ts.Websites {
		tgt := tgt
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := o.checkWebsite(ctx, sem, tgt)
			mu.Lock()
			snap.WebsiteResults[tgt.Key()] = res
			mu.Unlock()
		}()
	}

	for _, tgt := range ts.Stores {
		tgt := tgt
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := o.checkShare(ctx, sem, tgt)
			mu.Lock()
			snap.StoreResults[tgt.Key()] = res
			mu.Unlock()
		}()
	}

	wg.Wait()
	snap.LastUpdate = time.Now().UTC()

	o.logger.Info("cycle_done",
		zap.Int("websites", len(snap.WebsiteResults)),
		zap.Int("file_shares", len(snap.StoreResults)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return snap
}

func (o *Orchestrator) checkWebsite(ctx context.Context, sem *semaphore.Weighted, tgt domain.WebsiteTarget) (res domain.WebsiteResult) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("probe_panic",
				zap.String("target", tgt.Key()),
				zap.Any("panic", r),
			)
			res = domain.WebsiteResult{
				Name:      tgt.DisplayName(),
				Status:    domain.StatusDown,
				Message:   fmt.Sprintf("unexpected failure: %v", r),
				Timestamp: time.Now().UTC(),
			}
		}
	}()

	if err := sem.Acquire(ctx, 1); err != nil {
		return domain.WebsiteResult{
			Name:      tgt.DisplayName(),
			Status:    domain.StatusDown,
			Message:   fmt.Sprintf("cycle aborted: %v", err),
			Timestamp: time.Now().UTC(),
		}
	}
	defer sem.Release(1)

	return o.websites.Check(ctx, tgt)
}

func (o *Orchestrator) checkShare(ctx context.Context, sem *semaphore.Weighted, tgt domain.FileStoreTarget) (res domain.ShareResult) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("probe_panic",
				zap.String("target", tgt.Key()),
				zap.Any("panic", r),
			)
			res = domain.ShareResult{
				Name:      tgt.DisplayName(),
				Status:    domain.StatusError,
				Message:   fmt.Sprintf("unexpected failure: %v", r),
				Timestamp: time.Now().UTC(),
			}
		}
	}()

	if err := sem.Acquire(ctx, 1); err != nil {
		return domain.ShareResult{
			Name:      tgt.DisplayName(),
			Status:    domain.StatusError,
			Message:   fmt.Sprintf("cycle aborted: %v", err),
			Timestamp: time.Now().UTC(),
		}
	}
	defer sem.Release(1)

	return o.shares.Check(ctx, tgt)
}
