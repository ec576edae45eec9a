package probe

import (
	"context"

	"github.com/hamed0406/sharewatch/internal/domain"
)

// WebsiteProber checks one website target. Implementations never return an
// error or panic; every failure is folded into the result.
type WebsiteProber interface {
	Check(ctx context.Context, target domain.WebsiteTarget) domain.WebsiteResult
}

// ShareProber checks one file store target under the same no-error contract.
type ShareProber interface {
	Check(ctx context.Context, target domain.FileStoreTarget) domain.ShareResult
}
