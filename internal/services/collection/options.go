package collection

import (
	"time"

	"github.com/AlekSi/pointer"
)

// WriteOptions controls single-operation writes. A nil field is unset.
type WriteOptions struct {
	Ordered *bool
	Upsert  *bool
	Multi   *bool
	Limit   *int
}

// BulkOptions controls batch-level execution. A nil field is unset.
type BulkOptions struct {
	Ordered *bool
}

// DefaultWriteOptions returns the built-in write defaults: unordered, no upsert, limit 1.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		Ordered: pointer.To(false),
		Upsert:  pointer.To(false),
		Limit:   pointer.To(1),
	}
}

// DefaultBulkOptions returns the built-in bulk defaults: unordered.
func DefaultBulkOptions() BulkOptions {
	return BulkOptions{
		Ordered: pointer.To(false),
	}
}

// MergeWriteOptions layers defaults, then caller values, then forced values.
// Later layers only replace fields they set.
func MergeWriteOptions(defaults WriteOptions, caller *WriteOptions, forced WriteOptions) WriteOptions {
	merged := defaults
	for _, layer := range []*WriteOptions{caller, &forced} {
		if layer == nil {
			continue
		}
		if layer.Ordered != nil {
			merged.Ordered = layer.Ordered
		}
		if layer.Upsert != nil {
			merged.Upsert = layer.Upsert
		}
		if layer.Multi != nil {
			merged.Multi = layer.Multi
		}
		if layer.Limit != nil {
			merged.Limit = layer.Limit
		}
	}
	return merged
}

// MergeBulkOptions layers caller values over defaults.
func MergeBulkOptions(defaults BulkOptions, caller *BulkOptions) BulkOptions {
	merged := defaults
	if caller != nil && caller.Ordered != nil {
		merged.Ordered = caller.Ordered
	}
	return merged
}

// CursorType selects the tailing behaviour of a find cursor.
type CursorType int

const (
	NonTailable CursorType = iota
	Tailable
	TailableAwait
)

// FindOptions represents options for Find and FindOne.
type FindOptions struct {
	Projection interface{}
	Sort       interface{}
	Skip       int64
	// Limit of 0 means no limit. A negative limit returns a single batch of at most -Limit documents.
	Limit               int64
	BatchSize           int32
	Comment             string
	MaxTime             time.Duration
	CursorType          CursorType
	NoCursorTimeout     bool
	AllowPartialResults bool
	OplogReplay         bool
}

// CountOptions represents options for Count.
type CountOptions struct {
	Hint    interface{}
	Limit   int64
	Skip    int64
	MaxTime time.Duration
}

// DistinctOptions represents options for Distinct.
type DistinctOptions struct {
	MaxTime time.Duration
}

// AggregateOptions represents options for Aggregate.
type AggregateOptions struct {
	AllowDiskUse bool
	BatchSize    int32
	MaxTime      time.Duration
}

// ReturnDocument selects which version of a modified document findAndModify returns.
type ReturnDocument int

const (
	// Before returns the document as it was before the modification.
	Before ReturnDocument = iota
	// After returns the modified document.
	After
)

// FindOneAndDeleteOptions represents options for FindOneAndDelete.
type FindOneAndDeleteOptions struct {
	Projection interface{}
	Sort       interface{}
	MaxTime    time.Duration
}

// FindOneAndReplaceOptions represents options for FindOneAndReplace.
type FindOneAndReplaceOptions struct {
	Projection     interface{}
	Sort           interface{}
	MaxTime        time.Duration
	ReturnDocument ReturnDocument
	Upsert         bool
}

// FindOneAndUpdateOptions represents options for FindOneAndUpdate.
type FindOneAndUpdateOptions struct {
	Projection     interface{}
	Sort           interface{}
	MaxTime        time.Duration
	ReturnDocument ReturnDocument
	Upsert         bool
}

// IndexOptions represents options of a single index.
type IndexOptions struct {
	// Name is generated from the keys when empty.
	Name          string
	Unique        bool
	Sparse        bool
	Background    bool
	ExpireAfter   *time.Duration
	PartialFilter interface{}
}
