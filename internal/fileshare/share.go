package fileshare

import (
	"context"
	"time"

	"github.com/hamed0406/sharewatch/internal/domain"
)

// Entry is one immediate child of a directory listing.
type Entry struct {
	// Path is the entry's path relative to the share root, without a
	// trailing separator.
	Path  string
	IsDir bool
}

// Share is an authenticated handle to one hierarchical file share. The
// traversal code only ever needs these three calls; tests substitute an
// in-memory tree and the production implementation is S3-backed.
type Share interface {
	// Exists reports whether the share itself is reachable and present.
	Exists(ctx context.Context) (bool, error)

	// List returns the immediate children of dir. The share root is "".
	List(ctx context.Context, dir string) ([]Entry, error)

	// ModTime fetches one file's last-modified timestamp.
	ModTime(ctx context.Context, path string) (time.Time, error)
}

// Opener resolves a target's access configuration into a usable Share.
// It must not touch the network; connectivity problems surface from the
// Share's own calls.
type Opener interface {
	Open(target domain.FileStoreTarget) (Share, error)
}
