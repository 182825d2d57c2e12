package docdb

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrServerSelection is wrapped by errors returned when no server matches a read preference.
var ErrServerSelection = errors.New("server selection failed")

// UpsertedID maps an upserted identifier to the index of the operation that produced it.
type UpsertedID struct {
	Index int
	ID    interface{}
}

// WriteOutcome is the raw outcome of a batch execution.
type WriteOutcome struct {
	InsertedCount int64
	MatchedCount  int64
	// ModifiedCount is nil when the server did not report it.
	ModifiedCount *int64
	DeletedCount  int64
	UpsertedCount int64
	Upserted      []UpsertedID
}

// WriteError is a failure of a single operation in a batch.
type WriteError struct {
	Index   int
	Code    int
	Message string
}

// Error implements the error interface.
func (we WriteError) Error() string {
	return fmt.Sprintf("write error at index %d: (%d) %s", we.Index, we.Code, we.Message)
}

// WriteConcernError is a failure to satisfy the requested write concern.
type WriteConcernError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (wce WriteConcernError) Error() string {
	return fmt.Sprintf("write concern error: (%d) %s", wce.Code, wce.Message)
}

// BulkWriteError reports server-side failures of a batch.
// Outcome holds whatever the server applied before or around the failures and may be nil.
type BulkWriteError struct {
	WriteErrors       []WriteError
	WriteConcernError *WriteConcernError
	Outcome           *WriteOutcome
}

// Error implements the error interface.
func (bwe *BulkWriteError) Error() string {
	var buf bytes.Buffer
	fmt.Fprint(&buf, "bulk write error: [")
	for i, we := range bwe.WriteErrors {
		if i != 0 {
			fmt.Fprint(&buf, ", ")
		}
		fmt.Fprintf(&buf, "{%s}", we)
	}
	fmt.Fprint(&buf, "]")
	if bwe.WriteConcernError != nil {
		fmt.Fprintf(&buf, ", {%s}", bwe.WriteConcernError)
	}
	return buf.String()
}

// Indexes returns the batch indexes of the failed operations.
func (bwe *BulkWriteError) Indexes() []int {
	indexes := make([]int, 0, len(bwe.WriteErrors))
	for _, we := range bwe.WriteErrors {
		indexes = append(indexes, we.Index)
	}
	return indexes
}
