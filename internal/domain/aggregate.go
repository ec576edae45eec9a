package domain

import "time"

// DirectoryAggregate summarizes one directory subtree: how many files it
// holds and the oldest/newest modification timestamps seen. Nil timestamps
// mean no file in the subtree had a readable timestamp.
type DirectoryAggregate struct {
	Count      int
	OldestFile *time.Time
	NewestFile *time.Time
}

// Merge combines two aggregates element-wise: counts add, oldest takes the
// minimum, newest the maximum. The zero aggregate is the identity, and the
// operation is associative and commutative, so subtree results can be folded
// in any order.
func (a DirectoryAggregate) Merge(b DirectoryAggregate) DirectoryAggregate {
	out := DirectoryAggregate{
		Count:      a.Count + b.Count,
		OldestFile: a.OldestFile,
		NewestFile: a.NewestFile,
	}
	if b.OldestFile != nil && (out.OldestFile == nil || b.OldestFile.Before(*out.OldestFile)) {
		out.OldestFile = b.OldestFile
	}
	if b.NewestFile != nil && (out.NewestFile == nil || b.NewestFile.After(*out.NewestFile)) {
		out.NewestFile = b.NewestFile
	}
	return out
}

// ObserveFile folds one file's modification time into the aggregate.
// A nil timestamp counts the file without moving the bounds.
func (a DirectoryAggregate) ObserveFile(mod *time.Time) DirectoryAggregate {
	return a.Merge(DirectoryAggregate{Count: 1, OldestFile: mod, NewestFile: mod})
}
