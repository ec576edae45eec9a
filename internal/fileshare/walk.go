package fileshare

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/sharewatch/internal/domain"
)

// DefaultOpTimeout bounds each individual share operation (existence check,
// directory listing, per-file properties). A hung call fails that call with
// a classified timeout instead of stalling the whole cycle.
const DefaultOpTimeout = 30 * time.Second

// walker runs the depth-first traversal of one share.
type walker struct {
	share     Share
	opTimeout time.Duration
	logger    *zap.Logger
}

// walk aggregates the subtree rooted at dir. A listing failure anywhere in
// the subtree aborts and propagates; a per-file ModTime failure is logged
// and the file still counts, with no timestamp contribution.
func (w *walker) walk(ctx context.Context, dir string) (domain.DirectoryAggregate, error) {
	var agg domain.DirectoryAggregate

	entries, err := w.list(ctx, dir)
	if err != nil {
		return domain.DirectoryAggregate{}, err
	}

	for _, e := range entries {
		if e.IsDir {
			child, err := w.walk(ctx, e.Path)
			if err != nil {
				return domain.DirectoryAggregate{}, err
			}
			agg = agg.Merge(child)
			continue
		}

		mod, err := w.modTime(ctx, e.Path)
		if err != nil {
			w.logger.Warn("file_modtime_failed",
				zap.String("path", e.Path),
				zap.Error(err),
			)
			agg = agg.ObserveFile(nil)
			continue
		}
		agg = agg.ObserveFile(&mod)
	}

	return agg, nil
}

func (w *walker) list(ctx context.Context, dir string) ([]Entry, error) {
	opCtx, cancel := context.WithTimeout(ctx, w.opTimeout)
	defer cancel()

	entries, err := w.share.List(opCtx, dir)
	if err != nil {
		return nil, w.classify(fmt.Sprintf("listing %q", displayDir(dir)), err)
	}
	return entries, nil
}

func (w *walker) modTime(ctx context.Context, path string) (time.Time, error) {
	opCtx, cancel := context.WithTimeout(ctx, w.opTimeout)
	defer cancel()

	mod, err := w.share.ModTime(opCtx, path)
	if err != nil {
		return time.Time{}, w.classify(fmt.Sprintf("properties of %q", path), err)
	}
	return mod, nil
}

func (w *walker) exists(ctx context.Context) (bool, error) {
	opCtx, cancel := context.WithTimeout(ctx, w.opTimeout)
	defer cancel()

	ok, err := w.share.Exists(opCtx)
	if err != nil {
		return false, w.classify("existence check", err)
	}
	return ok, nil
}

func (w *walker) classify(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s timed out after %s", op, w.opTimeout)
	}
	return fmt.Errorf("%s failed: %w", op, err)
}

func displayDir(dir string) string {
	if dir == "" {
		return "/"
	}
	return dir
}
