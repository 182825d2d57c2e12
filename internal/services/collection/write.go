package collection

import (
	"context"
	"errors"

	"github.com/AlekSi/pointer"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/unifiedui/collection-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/collection-service/internal/domain/errors"
)

// InsertOne inserts a single document. An _id is generated when the document has none.
func (c *Collection) InsertOne(ctx context.Context, document interface{}) (*InsertOneResult, error) {
	if document == nil {
		return nil, argumentError(OpInsertOne, -1, "missing document")
	}

	batch := docdb.NewBatch(pointer.Get(c.cfg.WriteDefaults.Ordered))
	id, err := insertDocument(batch, 0, document)
	if err != nil {
		return nil, argumentError(OpInsertOne, -1, err.Error())
	}

	outcome, execErr := c.executeBatch(ctx, batch)
	if outcome == nil && execErr != nil {
		return nil, execErr
	}

	res, err := newInsertOneResult(outcome, id)
	if err != nil {
		return nil, err
	}
	return res, execErr
}

// InsertMany inserts the documents in one batch.
// The returned ids are keyed by the position of each document in documents.
func (c *Collection) InsertMany(ctx context.Context, documents []interface{}, opts *BulkOptions) (*InsertManyResult, error) {
	if len(documents) == 0 {
		return nil, domainerrors.NewInvalidArgumentError("insertMany requires at least one document", "")
	}

	merged := MergeBulkOptions(c.cfg.BulkDefaults, opts)
	batch := docdb.NewBatch(pointer.Get(merged.Ordered))
	ids := make(map[int]interface{}, len(documents))

	for i, document := range documents {
		if document == nil {
			return nil, argumentError("insertMany", i, "missing document")
		}
		id, err := insertDocument(batch, i, document)
		if err != nil {
			return nil, argumentError("insertMany", i, err.Error())
		}
		ids[i] = id
	}

	outcome, execErr := c.executeBatch(ctx, batch)
	if outcome == nil && execErr != nil {
		return nil, execErr
	}

	res, err := newInsertManyResult(outcome, ids)
	if err != nil {
		return nil, err
	}
	return res, execErr
}

// UpdateOne applies an operator update to the first document matching filter.
func (c *Collection) UpdateOne(ctx context.Context, filter, update interface{}, opts *WriteOptions) (*UpdateResult, error) {
	f, u, err := prepareUpdate(OpUpdateOne, -1, filter, update, false)
	if err != nil {
		return nil, err
	}
	return c.update(ctx, f, u, opts, false)
}

// UpdateMany applies an operator update to every document matching filter.
func (c *Collection) UpdateMany(ctx context.Context, filter, update interface{}, opts *WriteOptions) (*UpdateResult, error) {
	f, u, err := prepareUpdate(OpUpdateMany, -1, filter, update, false)
	if err != nil {
		return nil, err
	}
	return c.update(ctx, f, u, opts, true)
}

// ReplaceOne replaces the first document matching filter.
func (c *Collection) ReplaceOne(ctx context.Context, filter, replacement interface{}, opts *WriteOptions) (*UpdateResult, error) {
	f, r, err := prepareUpdate(OpReplaceOne, -1, filter, replacement, true)
	if err != nil {
		return nil, err
	}
	return c.update(ctx, f, r, opts, false)
}

// DeleteOne deletes the first document matching filter.
func (c *Collection) DeleteOne(ctx context.Context, filter interface{}, opts *WriteOptions) (*DeleteResult, error) {
	return c.delete(ctx, OpDeleteOne, filter, opts, 1)
}

// DeleteMany deletes every document matching filter.
func (c *Collection) DeleteMany(ctx context.Context, filter interface{}, opts *WriteOptions) (*DeleteResult, error) {
	return c.delete(ctx, OpDeleteMany, filter, opts, 0)
}

// update executes a single update. Options are layered as defaults, caller, then forced multi.
func (c *Collection) update(ctx context.Context, filter, update bson.D, caller *WriteOptions, multi bool) (*UpdateResult, error) {
	opts := MergeWriteOptions(c.cfg.WriteDefaults, caller, WriteOptions{Multi: pointer.To(multi)})

	batch := docdb.NewBatch(pointer.Get(opts.Ordered))
	batch.Update(0, filter, update, pointer.Get(opts.Multi), pointer.Get(opts.Upsert))

	outcome, execErr := c.executeBatch(ctx, batch)
	if outcome == nil && execErr != nil {
		return nil, execErr
	}

	res, err := newUpdateResult(outcome)
	if err != nil {
		return nil, err
	}
	return res, execErr
}

// delete executes a single delete with a forced limit; 0 removes every match.
func (c *Collection) delete(ctx context.Context, op string, filter interface{}, caller *WriteOptions, limit int) (*DeleteResult, error) {
	if filter == nil {
		return nil, argumentError(op, -1, "missing filter")
	}
	f, err := toFilter(filter)
	if err != nil {
		return nil, argumentError(op, -1, err.Error())
	}

	opts := MergeWriteOptions(c.cfg.WriteDefaults, caller, WriteOptions{Limit: pointer.To(limit)})

	batch := docdb.NewBatch(pointer.Get(opts.Ordered))
	batch.Delete(0, f, pointer.Get(opts.Limit))

	outcome, execErr := c.executeBatch(ctx, batch)
	if outcome == nil && execErr != nil {
		return nil, execErr
	}

	res, err := newDeleteResult(outcome)
	if err != nil {
		return nil, err
	}
	return res, execErr
}

func asBulkWriteError(err error) (*docdb.BulkWriteError, bool) {
	var bwe *docdb.BulkWriteError
	if errors.As(err, &bwe) {
		return bwe, true
	}
	return nil, false
}
