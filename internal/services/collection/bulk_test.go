package collection_test

import (
	"context"
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/unifiedui/collection-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/collection-service/internal/domain/errors"
	"github.com/unifiedui/collection-service/internal/services/collection"
	"github.com/unifiedui/collection-service/internal/testutils"
)

func TestBulkWrite_TranslatesModels(t *testing.T) {
	coll, driver := newTestCollection(t)
	upsertedID := primitive.NewObjectID()
	batch := expectBatch(driver, testutils.Acknowledged(docdb.WriteOutcome{
		InsertedCount: 1,
		MatchedCount:  2,
		DeletedCount:  3,
		UpsertedCount: 1,
		Upserted:      []docdb.UpsertedID{{Index: 2, ID: upsertedID}},
	}), nil)

	set := bson.D{{Key: "$set", Value: bson.D{{Key: "qty", Value: 0}}}}
	models := []collection.WriteModel{
		&collection.InsertOneModel{Document: testutils.NewTestDocument("a", 1)},
		&collection.UpdateOneModel{Filter: bson.D{{Key: "name", Value: "a"}}, Update: set},
		&collection.UpdateManyModel{Filter: bson.D{}, Update: set, Options: &collection.WriteOptions{Upsert: pointer.ToBool(true)}},
		&collection.ReplaceOneModel{Filter: bson.D{}, Replacement: testutils.NewTestDocument("b", 2)},
		&collection.DeleteOneModel{Filter: bson.D{}},
		&collection.DeleteManyModel{Filter: bson.D{{Key: "qty", Value: 0}}},
	}

	res, err := coll.BulkWrite(context.Background(), models, nil)

	require.NoError(t, err)
	ops := (*batch).Ops()
	require.Len(t, ops, len(models))
	assert.False(t, (*batch).Ordered, "bulk writes are unordered by default")

	for i, op := range ops {
		assert.Equal(t, i, op.Index)
	}
	assert.Equal(t, docdb.OpInsert, ops[0].Kind)
	assert.Equal(t, docdb.OpUpdate, ops[1].Kind)
	assert.False(t, ops[1].Multi)
	assert.True(t, ops[2].Multi)
	assert.True(t, ops[2].Upsert)
	assert.False(t, ops[3].Multi)
	assert.Equal(t, "name", ops[3].Update[0].Key)
	assert.Equal(t, 1, ops[4].Limit)
	assert.Equal(t, 0, ops[5].Limit)

	assert.Equal(t, int64(1), res.InsertedCount())
	assert.Equal(t, int64(2), res.MatchedCount())
	assert.Equal(t, int64(3), res.DeletedCount())
	assert.Equal(t, int64(1), res.UpsertedCount())
	assert.Equal(t, map[int]interface{}{2: upsertedID}, res.UpsertedIDs())

	inserted := res.InsertedIDs()
	require.Len(t, inserted, 1)
	sent, _ := docdb.Lookup(ops[0].Document, docdb.IDField)
	assert.Equal(t, sent, inserted[0])
}

func TestBulkWrite_ValidatesBeforeExecuting(t *testing.T) {
	set := bson.D{{Key: "$set", Value: bson.D{}}}

	tests := []struct {
		name    string
		models  []collection.WriteModel
		message string
	}{
		{
			name:    "empty",
			models:  nil,
			message: "at least one operation",
		},
		{
			name: "update without operator",
			models: []collection.WriteModel{
				&collection.InsertOneModel{Document: bson.D{}},
				&collection.UpdateOneModel{Filter: bson.D{}, Update: bson.D{{Key: "qty", Value: 1}}},
			},
			message: "updateOne at index 1",
		},
		{
			name: "replacement with operator",
			models: []collection.WriteModel{
				&collection.ReplaceOneModel{Filter: bson.D{}, Replacement: set},
			},
			message: "replaceOne at index 0",
		},
		{
			name: "delete without filter",
			models: []collection.WriteModel{
				&collection.DeleteOneModel{Filter: bson.D{}},
				&collection.DeleteManyModel{},
			},
			message: "deleteMany at index 1: missing filter",
		},
		{
			name: "insert without document",
			models: []collection.WriteModel{
				&collection.InsertOneModel{},
			},
			message: "insertOne at index 0: missing document",
		},
		{
			name: "nil model",
			models: []collection.WriteModel{
				&collection.DeleteOneModel{Filter: bson.D{}},
				&collection.DeleteOneModel{Filter: bson.D{}},
				nil,
			},
			message: "index 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coll, driver := newTestCollection(t)

			res, err := coll.BulkWrite(context.Background(), tt.models, nil)

			assert.Nil(t, res)
			require.Error(t, err)
			assert.True(t, domainerrors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tt.message)
			assertNoBatch(t, driver)
		})
	}
}

func TestBulkWrite_PartialResult(t *testing.T) {
	coll, driver := newTestCollection(t)
	bwe := &docdb.BulkWriteError{
		WriteErrors: []docdb.WriteError{{Index: 1, Code: 11000, Message: "duplicate key"}},
		Outcome:     testutils.Acknowledged(docdb.WriteOutcome{InsertedCount: 2}),
	}
	expectBatch(driver, nil, bwe)

	res, err := coll.BulkWrite(context.Background(), []collection.WriteModel{
		&collection.InsertOneModel{Document: bson.D{{Key: "_id", Value: 1}}},
		&collection.InsertOneModel{Document: bson.D{{Key: "_id", Value: 1}}},
		&collection.InsertOneModel{Document: bson.D{{Key: "_id", Value: 2}}},
	}, nil)

	require.ErrorIs(t, err, bwe)
	require.NotNil(t, res, "the partial result accompanies the error")
	assert.Equal(t, int64(2), res.InsertedCount())
}

func TestBulkWrite_ErrorWithoutOutcome(t *testing.T) {
	coll, driver := newTestCollection(t)
	bwe := &docdb.BulkWriteError{WriteConcernError: &docdb.WriteConcernError{Code: 64, Message: "timeout"}}
	expectBatch(driver, nil, bwe)

	res, err := coll.BulkWrite(context.Background(), []collection.WriteModel{
		&collection.DeleteManyModel{Filter: bson.D{}},
	}, &collection.BulkOptions{Ordered: pointer.ToBool(true)})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, bwe)
}

func TestParseWriteModels(t *testing.T) {
	ops := []bson.D{
		{{Key: "insertOne", Value: bson.A{bson.D{{Key: "a", Value: 1}}}}},
		{{Key: "updateOne", Value: bson.A{
			bson.D{{Key: "a", Value: 1}},
			bson.D{{Key: "$set", Value: bson.D{{Key: "b", Value: 2}}}},
			bson.D{{Key: "upsert", Value: true}},
		}}},
		{{Key: "updateMany", Value: bson.A{bson.D{}, bson.D{{Key: "$inc", Value: bson.D{{Key: "n", Value: 1}}}}}}},
		{{Key: "replaceOne", Value: bson.A{bson.D{}, bson.D{{Key: "b", Value: 3}}}}},
		{{Key: "deleteOne", Value: bson.A{bson.D{{Key: "a", Value: 1}}}}},
		{{Key: "deleteMany", Value: []interface{}{bson.D{}}}},
	}

	models, err := collection.ParseWriteModels(ops)

	require.NoError(t, err)
	require.Len(t, models, 6)
	assert.IsType(t, &collection.InsertOneModel{}, models[0])
	assert.IsType(t, &collection.UpdateManyModel{}, models[2])
	assert.IsType(t, &collection.ReplaceOneModel{}, models[3])
	assert.IsType(t, &collection.DeleteOneModel{}, models[4])
	assert.IsType(t, &collection.DeleteManyModel{}, models[5])

	update, ok := models[1].(*collection.UpdateOneModel)
	require.True(t, ok)
	require.NotNil(t, update.Options)
	assert.True(t, pointer.Get(update.Options.Upsert))
	assert.Nil(t, update.Options.Multi)
}

func TestParseWriteModels_Errors(t *testing.T) {
	insert := bson.D{{Key: "insertOne", Value: bson.A{bson.D{}}}}

	tests := []struct {
		name    string
		ops     []bson.D
		message string
	}{
		{
			name:    "unknown operation",
			ops:     []bson.D{insert, insert, {{Key: "upsertOne", Value: bson.A{bson.D{}}}}},
			message: `unknown operation "upsertOne" at index 2`,
		},
		{
			name:    "two keys",
			ops:     []bson.D{{{Key: "insertOne", Value: bson.A{}}, {Key: "deleteOne", Value: bson.A{}}}},
			message: "index 0 must have exactly one key",
		},
		{
			name:    "arguments not an array",
			ops:     []bson.D{{{Key: "deleteOne", Value: bson.D{}}}},
			message: "arguments must be an array",
		},
		{
			name:    "missing update",
			ops:     []bson.D{insert, {{Key: "updateOne", Value: bson.A{bson.D{}}}}},
			message: "updateOne at index 1: missing second argument",
		},
		{
			name:    "missing delete filter",
			ops:     []bson.D{{{Key: "deleteMany", Value: bson.A{}}}},
			message: "deleteMany at index 0: missing filter",
		},
		{
			name: "bad option type",
			ops: []bson.D{{{Key: "updateMany", Value: bson.A{
				bson.D{}, bson.D{{Key: "$set", Value: bson.D{}}}, bson.D{{Key: "upsert", Value: "yes"}},
			}}}},
			message: `option "upsert" must be a boolean`,
		},
		{
			name: "unknown option",
			ops: []bson.D{{{Key: "replaceOne", Value: bson.A{
				bson.D{}, bson.D{}, bson.D{{Key: "collation", Value: bson.D{}}},
			}}}},
			message: `unknown option "collation"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			models, err := collection.ParseWriteModels(tt.ops)

			assert.Nil(t, models)
			assert.True(t, domainerrors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseWriteModels_UnknownOperationNeverExecutes(t *testing.T) {
	coll, driver := newTestCollection(t)
	ops := []bson.D{
		{{Key: "insertOne", Value: bson.A{bson.D{}}}},
		{{Key: "deleteOne", Value: bson.A{bson.D{}}}},
		{{Key: "removeAll", Value: bson.A{}}},
	}

	models, err := collection.ParseWriteModels(ops)
	if err == nil {
		_, err = coll.BulkWrite(context.Background(), models, nil)
	}

	assert.True(t, domainerrors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "index 2")
	assertNoBatch(t, driver)
}

func TestParseWriteModels_LimitOption(t *testing.T) {
	models, err := collection.ParseWriteModels([]bson.D{{{Key: "updateOne", Value: bson.A{
		bson.D{}, bson.D{{Key: "$set", Value: bson.D{}}}, bson.D{{Key: "limit", Value: int32(3)}, {Key: "ordered", Value: true}},
	}}}})

	require.NoError(t, err)
	opts := models[0].(*collection.UpdateOneModel).Options
	assert.Equal(t, 3, pointer.Get(opts.Limit))
	assert.True(t, pointer.Get(opts.Ordered))
}
