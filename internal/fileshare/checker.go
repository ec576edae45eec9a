package fileshare

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/sharewatch/internal/domain"
)

// ShareChecker probes file store targets. Following the same contract as
// the website checker, Check never returns an error: misconfiguration,
// missing shares and traversal failures all degrade to an error result.
type ShareChecker struct {
	opener    Opener
	opTimeout time.Duration
	logger    *zap.Logger
}

func NewShareChecker(opener Opener, opTimeout time.Duration, logger *zap.Logger) *ShareChecker {
	if opTimeout <= 0 {
		opTimeout = DefaultOpTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShareChecker{opener: opener, opTimeout: opTimeout, logger: logger}
}

func (c *ShareChecker) Check(ctx context.Context, target domain.FileStoreTarget) domain.ShareResult {
	switch {
	case target.SASURL == "" && target.Credential == nil:
		return c.errorResult(target, "no access mode configured: set sasUrl or credential")
	case target.SASURL != "" && target.Credential != nil:
		return c.errorResult(target, "ambiguous access mode: sasUrl and credential are mutually exclusive")
	}

	share, err := c.opener.Open(target)
	if err != nil {
		return c.errorResult(target, fmt.Sprintf("cannot open share: %v", err))
	}

	w := &walker{share: share, opTimeout: c.opTimeout, logger: c.logger}

	exists, err := w.exists(ctx)
	if err != nil {
		return c.errorResult(target, err.Error())
	}
	if !exists {
		return c.errorResult(target, fmt.Sprintf("share %q not found", target.ShareName))
	}

	if len(target.Directories) > 0 {
		return c.checkDirectories(ctx, w, target)
	}

	agg, err := w.walk(ctx, "")
	if err != nil {
		return c.errorResult(target, err.Error())
	}
	return domain.ShareResult{
		Name:      target.DisplayName(),
		Status:    domain.StatusOK,
		FileCount: agg.Count,
		Message:   fmt.Sprintf("%d files found", agg.Count),
		Timestamp: time.Now().UTC(),
	}
}

// checkDirectories traverses each requested directory independently. A
// failing directory is recorded in the breakdown and excluded from the
// total without affecting its siblings.
func (c *ShareChecker) checkDirectories(ctx context.Context, w *walker, target domain.FileStoreTarget) domain.ShareResult {
	breakdown := make(map[string]domain.BreakdownEntry, len(target.Directories))
	total := 0

	for _, dir := range target.Directories {
		agg, err := w.walk(ctx, dir)
		if err != nil {
			c.logger.Warn("directory_walk_failed",
				zap.String("share", target.Key()),
				zap.String("directory", dir),
				zap.Error(err),
			)
			breakdown[dir] = domain.ErrorEntry(err.Error())
			continue
		}
		breakdown[dir] = domain.AggregateEntry(agg)
		total += agg.Count
	}

	return domain.ShareResult{
		Name:               target.DisplayName(),
		Status:             domain.StatusOK,
		FileCount:          total,
		DirectoryBreakdown: breakdown,
		Message:            fmt.Sprintf("%d files found across %d directories", total, len(target.Directories)),
		Timestamp:          time.Now().UTC(),
	}
}

func (c *ShareChecker) errorResult(target domain.FileStoreTarget, msg string) domain.ShareResult {
	return domain.ShareResult{
		Name:      target.DisplayName(),
		Status:    domain.StatusError,
		Message:   msg,
		Timestamp: time.Now().UTC(),
	}
}
