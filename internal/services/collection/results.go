package collection

import (
	"fmt"

	"github.com/unifiedui/collection-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/collection-service/internal/domain/errors"
)

// InsertOneResult is the result of an InsertOne operation.
type InsertOneResult struct {
	insertedID interface{}
	outcome    docdb.WriteOutcome
}

func newInsertOneResult(outcome *docdb.WriteOutcome, id interface{}) (*InsertOneResult, error) {
	if err := checkOutcome(outcome); err != nil {
		return nil, err
	}
	return &InsertOneResult{insertedID: id, outcome: *outcome}, nil
}

// InsertedID returns the identifier of the inserted document.
func (r *InsertOneResult) InsertedID() interface{} {
	return r.insertedID
}

// InsertedCount returns the number of inserted documents.
func (r *InsertOneResult) InsertedCount() int64 {
	return r.outcome.InsertedCount
}

// InsertManyResult is the result of an InsertMany operation.
type InsertManyResult struct {
	insertedIDs map[int]interface{}
	outcome     docdb.WriteOutcome
}

func newInsertManyResult(outcome *docdb.WriteOutcome, ids map[int]interface{}) (*InsertManyResult, error) {
	if err := checkOutcome(outcome); err != nil {
		return nil, err
	}
	return &InsertManyResult{insertedIDs: ids, outcome: *outcome}, nil
}

// InsertedIDs returns the identifiers of the inserted documents keyed by their input index.
func (r *InsertManyResult) InsertedIDs() map[int]interface{} {
	return copyIDs(r.insertedIDs)
}

// InsertedCount returns the number of inserted documents.
func (r *InsertManyResult) InsertedCount() int64 {
	return r.outcome.InsertedCount
}

// UpdateResult is the result of an update or replace operation.
type UpdateResult struct {
	outcome    docdb.WriteOutcome
	upsertedID interface{}
}

func newUpdateResult(outcome *docdb.WriteOutcome) (*UpdateResult, error) {
	if err := checkOutcome(outcome); err != nil {
		return nil, err
	}
	r := &UpdateResult{outcome: *outcome}
	if len(outcome.Upserted) > 0 {
		r.upsertedID = outcome.Upserted[0].ID
	}
	return r, nil
}

// MatchedCount returns the number of documents matched by the filter.
func (r *UpdateResult) MatchedCount() int64 {
	return r.outcome.MatchedCount
}

// ModifiedCount returns the number of modified documents.
// The second value is false when the server did not report the count.
func (r *UpdateResult) ModifiedCount() (int64, bool) {
	if r.outcome.ModifiedCount == nil {
		return 0, false
	}
	return *r.outcome.ModifiedCount, true
}

// UpsertedCount returns the number of upserted documents.
func (r *UpdateResult) UpsertedCount() int64 {
	return r.outcome.UpsertedCount
}

// UpsertedID returns the identifier of the upserted document, or nil.
func (r *UpdateResult) UpsertedID() interface{} {
	return r.upsertedID
}

// DeleteResult is the result of a delete operation.
type DeleteResult struct {
	outcome docdb.WriteOutcome
}

func newDeleteResult(outcome *docdb.WriteOutcome) (*DeleteResult, error) {
	if err := checkOutcome(outcome); err != nil {
		return nil, err
	}
	return &DeleteResult{outcome: *outcome}, nil
}

// DeletedCount returns the number of deleted documents.
func (r *DeleteResult) DeletedCount() int64 {
	return r.outcome.DeletedCount
}

// BulkWriteResult is the result of a BulkWrite operation.
type BulkWriteResult struct {
	outcome     docdb.WriteOutcome
	insertedIDs map[int]interface{}
	upsertedIDs map[int]interface{}
}

func newBulkWriteResult(outcome *docdb.WriteOutcome, ids map[int]interface{}) (*BulkWriteResult, error) {
	if err := checkOutcome(outcome); err != nil {
		return nil, err
	}
	upserted := make(map[int]interface{}, len(outcome.Upserted))
	for _, u := range outcome.Upserted {
		upserted[u.Index] = u.ID
	}
	return &BulkWriteResult{outcome: *outcome, insertedIDs: ids, upsertedIDs: upserted}, nil
}

// InsertedCount returns the number of inserted documents.
func (r *BulkWriteResult) InsertedCount() int64 {
	return r.outcome.InsertedCount
}

// MatchedCount returns the number of documents matched by update filters.
func (r *BulkWriteResult) MatchedCount() int64 {
	return r.outcome.MatchedCount
}

// ModifiedCount returns the number of modified documents.
// The second value is false when the server did not report the count.
func (r *BulkWriteResult) ModifiedCount() (int64, bool) {
	if r.outcome.ModifiedCount == nil {
		return 0, false
	}
	return *r.outcome.ModifiedCount, true
}

// DeletedCount returns the number of deleted documents.
func (r *BulkWriteResult) DeletedCount() int64 {
	return r.outcome.DeletedCount
}

// UpsertedCount returns the number of upserted documents.
func (r *BulkWriteResult) UpsertedCount() int64 {
	return r.outcome.UpsertedCount
}

// InsertedIDs returns the identifiers of inserted documents keyed by operation index.
func (r *BulkWriteResult) InsertedIDs() map[int]interface{} {
	return copyIDs(r.insertedIDs)
}

// UpsertedIDs returns the identifiers of upserted documents keyed by operation index.
func (r *BulkWriteResult) UpsertedIDs() map[int]interface{} {
	return copyIDs(r.upsertedIDs)
}

// checkOutcome rejects raw outcomes the typed results cannot be built from.
func checkOutcome(outcome *docdb.WriteOutcome) error {
	if outcome == nil {
		return domainerrors.NewUnexpectedTypeError("driver returned no write outcome", nil)
	}
	if int64(len(outcome.Upserted)) != outcome.UpsertedCount {
		return domainerrors.NewUnexpectedTypeError("malformed write outcome", fmt.Errorf(
			"upserted count %d does not match %d upserted ids", outcome.UpsertedCount, len(outcome.Upserted),
		))
	}
	return nil
}

func copyIDs(ids map[int]interface{}) map[int]interface{} {
	out := make(map[int]interface{}, len(ids))
	for k, v := range ids {
		out[k] = v
	}
	return out
}
