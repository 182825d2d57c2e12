package mongodb

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AlekSi/pointer"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/unifiedui/collection-service/internal/core/docdb"
)

// toWriteModels converts the batch operations into driver write models, keeping their order.
func toWriteModels(batch *docdb.Batch) ([]mongo.WriteModel, error) {
	if batch == nil || batch.Len() == 0 {
		return nil, fmt.Errorf("batch is empty")
	}

	models := make([]mongo.WriteModel, 0, batch.Len())
	for _, op := range batch.Ops() {
		model, err := toWriteModel(op)
		if err != nil {
			return nil, err
		}
		models = append(models, model)
	}
	return models, nil
}

func toWriteModel(op docdb.WriteOp) (mongo.WriteModel, error) {
	switch op.Kind {
	case docdb.OpInsert:
		return mongo.NewInsertOneModel().SetDocument(op.Document), nil

	case docdb.OpUpdate:
		if len(op.Update) == 0 || !strings.HasPrefix(op.Update[0].Key, "$") {
			if op.Multi {
				return nil, fmt.Errorf("op %d: replacement cannot apply to multiple documents", op.Index)
			}
			return mongo.NewReplaceOneModel().
				SetFilter(op.Filter).
				SetReplacement(op.Update).
				SetUpsert(op.Upsert), nil
		}
		if op.Multi {
			return mongo.NewUpdateManyModel().
				SetFilter(op.Filter).
				SetUpdate(op.Update).
				SetUpsert(op.Upsert), nil
		}
		return mongo.NewUpdateOneModel().
			SetFilter(op.Filter).
			SetUpdate(op.Update).
			SetUpsert(op.Upsert), nil

	case docdb.OpDelete:
		switch op.Limit {
		case 1:
			return mongo.NewDeleteOneModel().SetFilter(op.Filter), nil
		case 0:
			return mongo.NewDeleteManyModel().SetFilter(op.Filter), nil
		default:
			return nil, fmt.Errorf("op %d: unsupported delete limit %d", op.Index, op.Limit)
		}
	}

	return nil, fmt.Errorf("op %d: unsupported operation kind %s", op.Index, op.Kind)
}

// outcomeFromResult converts a driver result, mapping model positions back to batch indexes.
func outcomeFromResult(res *mongo.BulkWriteResult, batch *docdb.Batch) *docdb.WriteOutcome {
	if res == nil {
		return nil
	}

	outcome := &docdb.WriteOutcome{
		InsertedCount: res.InsertedCount,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: pointer.To(res.ModifiedCount),
		DeletedCount:  res.DeletedCount,
		UpsertedCount: res.UpsertedCount,
	}

	ops := batch.Ops()
	for pos, id := range res.UpsertedIDs {
		outcome.Upserted = append(outcome.Upserted, docdb.UpsertedID{Index: batchIndex(ops, int(pos)), ID: id})
	}
	sort.Slice(outcome.Upserted, func(i, j int) bool {
		return outcome.Upserted[i].Index < outcome.Upserted[j].Index
	})

	// UpsertedIDs is authoritative for the number of upserts.
	outcome.UpsertedCount = int64(len(outcome.Upserted))

	return outcome
}

// bulkWriteError converts a driver bulk write exception into a docdb error.
func bulkWriteError(bwe mongo.BulkWriteException, res *mongo.BulkWriteResult, batch *docdb.Batch) *docdb.BulkWriteError {
	ops := batch.Ops()

	out := &docdb.BulkWriteError{
		WriteErrors: make([]docdb.WriteError, 0, len(bwe.WriteErrors)),
		Outcome:     outcomeFromResult(res, batch),
	}
	for _, we := range bwe.WriteErrors {
		out.WriteErrors = append(out.WriteErrors, docdb.WriteError{
			Index:   batchIndex(ops, we.Index),
			Code:    we.Code,
			Message: we.Message,
		})
	}
	if wce := bwe.WriteConcernError; wce != nil {
		out.WriteConcernError = &docdb.WriteConcernError{Code: wce.Code, Message: wce.Message}
	}
	return out
}

func batchIndex(ops []docdb.WriteOp, pos int) int {
	if pos < 0 || pos >= len(ops) {
		return pos
	}
	return ops[pos].Index
}
