package collection_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/unifiedui/collection-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/collection-service/internal/domain/errors"
	"github.com/unifiedui/collection-service/internal/mocks"
	"github.com/unifiedui/collection-service/internal/services/collection"
	"github.com/unifiedui/collection-service/internal/testutils"
)

var primaryPreference = mock.MatchedBy(func(rp *docdb.ReadPreference) bool {
	return rp != nil && rp.Mode == docdb.ReadPrimary
})

// expectCommand makes the driver select the primary, capture the executed command
// and answer with result and err.
func expectCommand(driver *mocks.MockDriver, result *docdb.CommandResult, err error) **docdb.Command {
	var captured *docdb.Command
	server := mocks.NewPrimaryServer()

	driver.On("SelectServer", mock.Anything, primaryPreference).Return(server, nil).Once()
	driver.On("ExecuteCommand", mock.Anything, server, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(*docdb.Command)
		}).
		Return(result, err).
		Once()
	return &captured
}

func documentResult(fields ...bson.E) *docdb.CommandResult {
	return &docdb.CommandResult{Document: testutils.OKReply(fields...)}
}

func cursorResult(docs ...interface{}) (*docdb.CommandResult, *mocks.DocumentCursor) {
	cur := mocks.NewDocumentCursor(docs...)
	return &docdb.CommandResult{Cursor: cur}, cur
}

func TestFind_BuildsCommand(t *testing.T) {
	coll, driver := newTestCollection(t, collection.WithReadPreference(&docdb.ReadPreference{Mode: docdb.ReadSecondary}))
	result, _ := cursorResult(testutils.NewTestDocument("a", 1))
	cmd := expectCommand(driver, result, nil)

	cur, err := coll.Find(context.Background(), bson.D{{Key: "qty", Value: bson.D{{Key: "$gt", Value: 0}}}}, &collection.FindOptions{
		Projection: bson.D{{Key: "name", Value: 1}},
		Sort:       bson.D{{Key: "qty", Value: -1}},
		Skip:       5,
		Limit:      10,
		BatchSize:  2,
		Comment:    "list",
		MaxTime:    1500 * time.Millisecond,
		CursorType: collection.TailableAwait,
	})

	require.NoError(t, err)
	require.NotNil(t, cur)
	driver.AssertExpectations(t)

	sent := *cmd
	assert.Equal(t, testutils.TestDatabase, sent.Database)
	assert.True(t, sent.ReturnsCursor)
	assert.Equal(t, "find", sent.Name())
	assert.Equal(t, testutils.TestCollection, sent.Body[0].Value)

	keys := make([]string, 0, len(sent.Body))
	for _, e := range sent.Body {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{
		"find", "filter", "projection", "sort", "skip", "limit", "batchSize", "comment", "maxTimeMS", "tailable", "awaitData",
	}, keys)

	maxTime, _ := docdb.Lookup(sent.Body, "maxTimeMS")
	assert.Equal(t, int64(1500), maxTime)
}

func TestFind_NilFilterMatchesEverything(t *testing.T) {
	coll, driver := newTestCollection(t)
	result, _ := cursorResult()
	cmd := expectCommand(driver, result, nil)

	_, err := coll.Find(context.Background(), nil, nil)

	require.NoError(t, err)
	filter, ok := docdb.Lookup((*cmd).Body, "filter")
	require.True(t, ok)
	assert.Equal(t, bson.D{}, filter)
	assert.Len(t, (*cmd).Body, 2)
}

func TestFind_InvalidFilter(t *testing.T) {
	coll, driver := newTestCollection(t)

	_, err := coll.Find(context.Background(), 42, nil)

	assert.True(t, domainerrors.IsInvalidArgument(err))
	driver.AssertNotCalled(t, "SelectServer", mock.Anything, mock.Anything)
}

func TestFind_ReplyWithoutCursor(t *testing.T) {
	coll, driver := newTestCollection(t)
	expectCommand(driver, documentResult(), nil)

	_, err := coll.Find(context.Background(), nil, nil)

	assert.True(t, domainerrors.IsUnexpectedType(err))
}

func TestFind_ServerSelectionFailure(t *testing.T) {
	coll, driver := newTestCollection(t)
	selectErr := fmt.Errorf("%w: primary: no reachable servers", docdb.ErrServerSelection)
	driver.On("SelectServer", mock.Anything, primaryPreference).Return(nil, selectErr).Once()

	_, err := coll.Find(context.Background(), nil, nil)

	assert.ErrorIs(t, err, docdb.ErrServerSelection)
	driver.AssertNotCalled(t, "ExecuteCommand", mock.Anything, mock.Anything, mock.Anything)
}

func TestFindOne(t *testing.T) {
	coll, driver := newTestCollection(t)
	result, cur := cursorResult(testutils.NewTestDocument("a", 1), testutils.NewTestDocument("b", 2))
	cmd := expectCommand(driver, result, nil)

	doc, err := coll.FindOne(context.Background(), bson.D{}, &collection.FindOptions{Limit: 20, Skip: 1})

	require.NoError(t, err)
	assert.Equal(t, "a", doc.Lookup("name").StringValue())
	assert.True(t, cur.Closed)

	limit, _ := docdb.Lookup((*cmd).Body, "limit")
	single, _ := docdb.Lookup((*cmd).Body, "singleBatch")
	skip, _ := docdb.Lookup((*cmd).Body, "skip")
	assert.Equal(t, int64(1), limit)
	assert.Equal(t, true, single)
	assert.Equal(t, int64(1), skip)
}

func TestFindOne_NoMatch(t *testing.T) {
	coll, driver := newTestCollection(t)
	result, _ := cursorResult()
	expectCommand(driver, result, nil)

	doc, err := coll.FindOne(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestFindOne_CursorError(t *testing.T) {
	coll, driver := newTestCollection(t)
	cur := mocks.NewDocumentCursor().WithErr(assert.AnError)
	expectCommand(driver, &docdb.CommandResult{Cursor: cur}, nil)

	doc, err := coll.FindOne(context.Background(), nil, nil)

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestCount(t *testing.T) {
	coll, driver := newTestCollection(t)
	cmd := expectCommand(driver, documentResult(bson.E{Key: "n", Value: int32(7)}), nil)

	n, err := coll.Count(context.Background(), bson.D{{Key: "qty", Value: 1}}, &collection.CountOptions{
		Hint:  "qty_1",
		Limit: 100,
		Skip:  2,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.False(t, (*cmd).ReturnsCursor)
	assert.Equal(t, bson.D{
		{Key: "count", Value: testutils.TestCollection},
		{Key: "query", Value: bson.D{{Key: "qty", Value: 1}}},
		{Key: "hint", Value: "qty_1"},
		{Key: "limit", Value: int64(100)},
		{Key: "skip", Value: int64(2)},
	}, (*cmd).Body)
}

func TestCount_NumericTypes(t *testing.T) {
	for _, n := range []interface{}{int32(3), int64(3), 3.0} {
		t.Run(fmt.Sprintf("%T", n), func(t *testing.T) {
			coll, driver := newTestCollection(t)
			expectCommand(driver, documentResult(bson.E{Key: "n", Value: n}), nil)

			count, err := coll.Count(context.Background(), nil, nil)

			require.NoError(t, err)
			assert.Equal(t, int64(3), count)
		})
	}
}

func TestCount_UnexpectedReply(t *testing.T) {
	tests := []struct {
		name  string
		reply *docdb.CommandResult
	}{
		{"missing n", documentResult()},
		{"string n", documentResult(bson.E{Key: "n", Value: "7"})},
		{"cursor reply", &docdb.CommandResult{Cursor: mocks.NewDocumentCursor()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coll, driver := newTestCollection(t)
			expectCommand(driver, tt.reply, nil)

			_, err := coll.Count(context.Background(), nil, nil)

			assert.True(t, domainerrors.IsUnexpectedType(err))
		})
	}
}

func TestCount_NilReply(t *testing.T) {
	coll, driver := newTestCollection(t)
	expectCommand(driver, nil, nil)

	_, err := coll.Count(context.Background(), nil, nil)

	assert.True(t, domainerrors.IsUnexpectedType(err))
}

func TestDistinct(t *testing.T) {
	coll, driver := newTestCollection(t)
	cmd := expectCommand(driver, documentResult(bson.E{Key: "values", Value: bson.A{"a", "b", int32(3)}}), nil)

	values, err := coll.Distinct(context.Background(), "name", nil, &collection.DistinctOptions{MaxTime: time.Second})

	require.NoError(t, err)
	assert.Equal(t, []interface{}{"a", "b", int32(3)}, values)
	key, _ := docdb.Lookup((*cmd).Body, "key")
	assert.Equal(t, "name", key)
	maxTime, _ := docdb.Lookup((*cmd).Body, "maxTimeMS")
	assert.Equal(t, int64(1000), maxTime)
}

func TestDistinct_Errors(t *testing.T) {
	coll, driver := newTestCollection(t)

	_, err := coll.Distinct(context.Background(), "", nil, nil)
	assert.True(t, domainerrors.IsInvalidArgument(err))

	expectCommand(driver, documentResult(bson.E{Key: "values", Value: "a"}), nil)
	_, err = coll.Distinct(context.Background(), "name", nil, nil)
	assert.True(t, domainerrors.IsUnexpectedType(err))
}

func TestAggregate(t *testing.T) {
	coll, driver := newTestCollection(t)
	result, _ := cursorResult(bson.D{{Key: "_id", Value: "a"}, {Key: "total", Value: int32(3)}})
	cmd := expectCommand(driver, result, nil)

	pipeline := []bson.D{
		{{Key: "$match", Value: bson.D{{Key: "qty", Value: bson.D{{Key: "$gt", Value: 0}}}}}},
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$name"}, {Key: "total", Value: bson.D{{Key: "$sum", Value: "$qty"}}}}}},
	}

	cur, err := coll.Aggregate(context.Background(), pipeline, &collection.AggregateOptions{AllowDiskUse: true, BatchSize: 50})

	require.NoError(t, err)
	var docs []bson.D
	require.NoError(t, cur.All(context.Background(), &docs))
	assert.Len(t, docs, 1)

	sent := *cmd
	assert.True(t, sent.ReturnsCursor)
	stages, _ := docdb.Lookup(sent.Body, "pipeline")
	assert.Len(t, stages, 2)
	cursorOpts, _ := docdb.Lookup(sent.Body, "cursor")
	assert.Equal(t, bson.D{{Key: "batchSize", Value: int32(50)}}, cursorOpts)
	diskUse, _ := docdb.Lookup(sent.Body, "allowDiskUse")
	assert.Equal(t, true, diskUse)
}

func TestAggregate_EmptyPipelineStillUsesCursor(t *testing.T) {
	coll, driver := newTestCollection(t)
	result, _ := cursorResult()
	cmd := expectCommand(driver, result, nil)

	_, err := coll.Aggregate(context.Background(), nil, nil)

	require.NoError(t, err)
	cursorOpts, ok := docdb.Lookup((*cmd).Body, "cursor")
	require.True(t, ok)
	assert.Equal(t, bson.D{}, cursorOpts)
}

func TestAggregate_InvalidPipeline(t *testing.T) {
	coll, driver := newTestCollection(t)

	_, err := coll.Aggregate(context.Background(), "match everything", nil)
	assert.True(t, domainerrors.IsInvalidArgument(err))

	_, err = coll.Aggregate(context.Background(), bson.A{bson.D{}, nil}, nil)
	assert.True(t, domainerrors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "stage 1")

	driver.AssertNotCalled(t, "SelectServer", mock.Anything, mock.Anything)
}

func TestAggregate_PipelineTypes(t *testing.T) {
	match := bson.D{{Key: "$match", Value: bson.D{{Key: "qty", Value: 1}}}}

	tests := []struct {
		name     string
		pipeline interface{}
		want     bson.A
	}{
		{"mongo.Pipeline", mongo.Pipeline{match}, bson.A{match}},
		{"bson.M stages", []bson.M{{"$limit": 5}}, bson.A{bson.D{{Key: "$limit", Value: int32(5)}}}},
		{"array", [1]bson.D{match}, bson.A{match}},
		{"pointer stages", []*bson.D{&match}, bson.A{match}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coll, driver := newTestCollection(t)
			result, _ := cursorResult()
			cmd := expectCommand(driver, result, nil)

			_, err := coll.Aggregate(context.Background(), tt.pipeline, nil)

			require.NoError(t, err)
			stages, _ := docdb.Lookup((*cmd).Body, "pipeline")
			assert.Equal(t, tt.want, stages)
		})
	}
}

func TestAggregate_RejectsRawBytes(t *testing.T) {
	coll, driver := newTestCollection(t)

	raw, err := bson.Marshal(bson.D{{Key: "$match", Value: bson.D{}}})
	require.NoError(t, err)

	_, err = coll.Aggregate(context.Background(), bson.Raw(raw), nil)
	assert.True(t, domainerrors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "array of stages")

	driver.AssertNotCalled(t, "SelectServer", mock.Anything, mock.Anything)
}

func TestFindOneAndUpdate(t *testing.T) {
	coll, driver := newTestCollection(t)
	cmd := expectCommand(driver, documentResult(bson.E{Key: "value", Value: testutils.NewTestDocument("a", 2)}), nil)

	doc, err := coll.FindOneAndUpdate(context.Background(),
		bson.D{{Key: "name", Value: "a"}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "qty", Value: 1}}}},
		&collection.FindOneAndUpdateOptions{ReturnDocument: collection.After, Upsert: true, Sort: bson.D{{Key: "qty", Value: 1}}},
	)

	require.NoError(t, err)
	assert.Equal(t, int32(2), doc.Lookup("qty").Int32())

	sent := *cmd
	assert.Equal(t, "findAndModify", sent.Name())
	newDoc, _ := docdb.Lookup(sent.Body, "new")
	upsert, _ := docdb.Lookup(sent.Body, "upsert")
	_, hasSort := docdb.Lookup(sent.Body, "sort")
	assert.Equal(t, true, newDoc)
	assert.Equal(t, true, upsert)
	assert.True(t, hasSort)
}

func TestFindOneAndReplace_NoMatch(t *testing.T) {
	coll, driver := newTestCollection(t)
	cmd := expectCommand(driver, documentResult(bson.E{Key: "value", Value: nil}), nil)

	doc, err := coll.FindOneAndReplace(context.Background(), nil, testutils.NewTestDocument("b", 1), nil)

	require.NoError(t, err)
	assert.Nil(t, doc)
	newDoc, _ := docdb.Lookup((*cmd).Body, "new")
	assert.Equal(t, false, newDoc)
}

func TestFindOneAndDelete(t *testing.T) {
	coll, driver := newTestCollection(t)
	cmd := expectCommand(driver, documentResult(bson.E{Key: "value", Value: testutils.NewTestDocument("a", 1)}), nil)

	doc, err := coll.FindOneAndDelete(context.Background(), bson.D{{Key: "name", Value: "a"}},
		&collection.FindOneAndDeleteOptions{Projection: bson.D{{Key: "qty", Value: 0}}})

	require.NoError(t, err)
	assert.Equal(t, "a", doc.Lookup("name").StringValue())
	remove, _ := docdb.Lookup((*cmd).Body, "remove")
	fields, _ := docdb.Lookup((*cmd).Body, "fields")
	assert.Equal(t, true, remove)
	assert.Equal(t, bson.D{{Key: "qty", Value: 0}}, fields)
}

func TestFindAndModify_InvalidArguments(t *testing.T) {
	coll, driver := newTestCollection(t)

	_, err := coll.FindOneAndUpdate(context.Background(), nil, bson.D{{Key: "qty", Value: 1}}, nil)
	assert.True(t, domainerrors.IsInvalidArgument(err))

	_, err = coll.FindOneAndUpdate(context.Background(), nil, nil, nil)
	assert.True(t, domainerrors.IsInvalidArgument(err))

	_, err = coll.FindOneAndReplace(context.Background(), nil, bson.D{{Key: "$set", Value: bson.D{}}}, nil)
	assert.True(t, domainerrors.IsInvalidArgument(err))

	driver.AssertNotCalled(t, "SelectServer", mock.Anything, mock.Anything)
}

func TestFindAndModify_UnexpectedValue(t *testing.T) {
	coll, driver := newTestCollection(t)
	expectCommand(driver, documentResult(bson.E{Key: "value", Value: int32(1)}), nil)

	_, err := coll.FindOneAndDelete(context.Background(), nil, nil)

	assert.True(t, domainerrors.IsUnexpectedType(err))
}

func TestDrop(t *testing.T) {
	coll, driver := newTestCollection(t)
	cmd := expectCommand(driver, documentResult(bson.E{Key: "nIndexesWas", Value: int32(1)}), nil)

	reply, err := coll.Drop(context.Background())

	require.NoError(t, err)
	assert.Equal(t, bson.D{{Key: "drop", Value: testutils.TestCollection}}, (*cmd).Body)
	assert.Equal(t, int32(1), reply.Lookup("nIndexesWas").Int32())
}
