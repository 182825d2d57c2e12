package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/unifiedui/collection-service/internal/api/dto"
	"github.com/unifiedui/collection-service/internal/api/handlers"
	"github.com/unifiedui/collection-service/internal/api/middleware"
	"github.com/unifiedui/collection-service/internal/api/routes"
	"github.com/unifiedui/collection-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/collection-service/internal/domain/errors"
	"github.com/unifiedui/collection-service/internal/mocks"
	"github.com/unifiedui/collection-service/internal/testutils"
)

const basePath = "/api/v1/collection-service/namespaces/" + testutils.TestNamespace

func setupCollectionsRouter(driver docdb.Driver) *gin.Engine {
	router := testutils.SetupTestRouter()
	routes.Setup(router, &routes.Config{
		HealthHandler:      handlers.NewHealthHandler(driver),
		CollectionsHandler: handlers.NewCollectionsHandler(driver),
	})
	return router
}

func expectPrimaryCommand(driver *mocks.MockDriver, result *docdb.CommandResult, err error) {
	server := mocks.NewPrimaryServer()
	driver.On("SelectServer", mock.Anything, docdb.Primary()).Return(server, nil).Once()
	driver.On("ExecuteCommand", mock.Anything, server, mock.Anything).Return(result, err).Once()
}

func assertNoDriverCalls(t *testing.T, driver *mocks.MockDriver) {
	t.Helper()
	driver.AssertNotCalled(t, "ExecuteBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	driver.AssertNotCalled(t, "SelectServer", mock.Anything, mock.Anything)
}

func TestCollectionsHandler_InsertOne(t *testing.T) {
	// Setup
	mockDriver := mocks.NewMockDriver()
	var sent *docdb.Batch
	mockDriver.On("ExecuteBatch", mock.Anything, testutils.TestNamespaceValue(), mock.Anything, (*docdb.WriteConcern)(nil)).
		Run(func(args mock.Arguments) { sent = args.Get(2).(*docdb.Batch) }).
		Return(testutils.Acknowledged(docdb.WriteOutcome{InsertedCount: 1}), nil)

	router := setupCollectionsRouter(mockDriver)

	// Execute
	w := testutils.PerformRequest(router, "POST", basePath+"/insert-one",
		`{"document": {"name": "pen", "qty": 3}}`, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusCreated, w)

	var response dto.InsertOneResponse
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, int64(1), response.InsertedCount)

	require.NotNil(t, sent)
	doc := sent.Ops()[0].Document
	assert.Equal(t, docdb.IDField, doc[0].Key)
	assert.Equal(t, bson.E{Key: "qty", Value: int32(3)}, doc[2])

	oid, ok := doc[0].Value.(primitive.ObjectID)
	require.True(t, ok)
	assert.JSONEq(t, fmt.Sprintf(`{"$oid": %q}`, oid.Hex()), string(response.InsertedID))
}

func TestCollectionsHandler_InsertOne_NullDocument(t *testing.T) {
	// Setup
	mockDriver := mocks.NewMockDriver()
	router := setupCollectionsRouter(mockDriver)

	// Execute
	w := testutils.PerformRequest(router, "POST", basePath+"/insert-one", `{"document": null}`, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusBadRequest, w)

	var response middleware.ErrorResponse
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, domainerrors.ErrCodeInvalidArgument, response.Code)
	assertNoDriverCalls(t, mockDriver)
}

func TestCollectionsHandler_InvalidNamespace(t *testing.T) {
	// Setup
	mockDriver := mocks.NewMockDriver()
	router := setupCollectionsRouter(mockDriver)

	// Execute
	w := testutils.PerformRequest(router, "POST", "/api/v1/collection-service/namespaces/nodot/find", `{}`, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusBadRequest, w)
	assertNoDriverCalls(t, mockDriver)
}

func TestCollectionsHandler_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		code string
	}{
		{"not json", "/find", `{"filter": `, domainerrors.ErrCodeValidation},
		{"missing operations", "/bulk-write", `{}`, domainerrors.ErrCodeValidation},
		{"bad extended json", "/find", `{"filter": {"_id": {"$oid": "xyz"}}}`, domainerrors.ErrCodeInvalidArgument},
		{"operation not an object", "/bulk-write", `{"operations": [1]}`, domainerrors.ErrCodeInvalidArgument},
		{"bad return document", "/find-one-and-update", `{"update": {"$set": {"a": 1}}, "returnDocument": "later"}`, domainerrors.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockDriver := mocks.NewMockDriver()
			router := setupCollectionsRouter(mockDriver)

			// Execute
			w := testutils.PerformRequest(router, "POST", basePath+tt.path, tt.body, nil)

			// Assert
			testutils.AssertStatusCode(t, http.StatusBadRequest, w)

			var response middleware.ErrorResponse
			testutils.ParseJSONResponse(t, w, &response)
			assert.Equal(t, tt.code, response.Code)
			assertNoDriverCalls(t, mockDriver)
		})
	}
}

func TestCollectionsHandler_UpdateOne_RequiresOperator(t *testing.T) {
	// Setup
	mockDriver := mocks.NewMockDriver()
	router := setupCollectionsRouter(mockDriver)

	// Execute
	w := testutils.PerformRequest(router, "POST", basePath+"/update-one",
		`{"filter": {"name": "pen"}, "update": {"qty": 4}}`, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusBadRequest, w)

	var response middleware.ErrorResponse
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, domainerrors.ErrCodeInvalidArgument, response.Code)
	assert.Contains(t, response.Message, "updateOne")
	assertNoDriverCalls(t, mockDriver)
}

func TestCollectionsHandler_UpdateMany(t *testing.T) {
	// Setup
	mockDriver := mocks.NewMockDriver()
	var sent *docdb.Batch
	mockDriver.On("ExecuteBatch", mock.Anything, testutils.TestNamespaceValue(), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(2).(*docdb.Batch) }).
		Return(&docdb.WriteOutcome{MatchedCount: 2}, nil)

	router := setupCollectionsRouter(mockDriver)

	// Execute
	w := testutils.PerformRequest(router, "POST", basePath+"/update-many",
		`{"filter": {}, "update": {"$inc": {"qty": 1}}, "upsert": true}`, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusOK, w)

	var response map[string]interface{}
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, float64(2), response["matchedCount"])
	assert.NotContains(t, response, "modifiedCount", "an unreported count is omitted")

	op := sent.Ops()[0]
	assert.True(t, op.Multi)
	assert.True(t, op.Upsert)
}

func TestCollectionsHandler_DeleteOne(t *testing.T) {
	// Setup
	mockDriver := mocks.NewMockDriver()
	var sent *docdb.Batch
	mockDriver.On("ExecuteBatch", mock.Anything, testutils.TestNamespaceValue(), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(2).(*docdb.Batch) }).
		Return(testutils.Acknowledged(docdb.WriteOutcome{DeletedCount: 1}), nil)

	router := setupCollectionsRouter(mockDriver)

	// Execute
	w := testutils.PerformRequest(router, "POST", basePath+"/delete-one", `{"filter": {"name": "pen"}}`, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusOK, w)

	var response dto.DeleteResponse
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, int64(1), response.DeletedCount)
	assert.Equal(t, 1, sent.Ops()[0].Limit)
}

func TestCollectionsHandler_BulkWrite_UnknownOperation(t *testing.T) {
	// Setup
	mockDriver := mocks.NewMockDriver()
	router := setupCollectionsRouter(mockDriver)

	body := `{"operations": [
		{"insertOne": [{"a": 1}]},
		{"deleteOne": [{"a": 1}]},
		{"upsertOne": [{"a": 1}]}
	]}`

	// Execute
	w := testutils.PerformRequest(router, "POST", basePath+"/bulk-write", body, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusBadRequest, w)

	var response middleware.ErrorResponse
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, domainerrors.ErrCodeInvalidArgument, response.Code)
	assert.Contains(t, response.Message, "index 2")
	assertNoDriverCalls(t, mockDriver)
}

func TestCollectionsHandler_BulkWrite_WriteErrors(t *testing.T) {
	// Setup
	mockDriver := mocks.NewMockDriver()
	bwe := &docdb.BulkWriteError{
		WriteErrors: []docdb.WriteError{{Index: 1, Code: 11000, Message: "duplicate key"}},
		Outcome:     testutils.Acknowledged(docdb.WriteOutcome{InsertedCount: 1}),
	}
	mockDriver.On("ExecuteBatch", mock.Anything, testutils.TestNamespaceValue(), mock.Anything, mock.Anything).
		Return(nil, bwe)

	router := setupCollectionsRouter(mockDriver)

	body := `{"ordered": true, "operations": [
		{"insertOne": [{"_id": 1}]},
		{"insertOne": [{"_id": 1}]}
	]}`

	// Execute
	w := testutils.PerformRequest(router, "POST", basePath+"/bulk-write", body, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusConflict, w)

	var response struct {
		middleware.BulkWriteErrorResponse
		Result dto.BulkWriteResponse `json:"result"`
	}
	testutils.ParseJSONResponse(t, w, &response)

	assert.Equal(t, domainerrors.ErrCodeConflict, response.Code)
	require.Len(t, response.WriteErrors, 1)
	assert.Equal(t, middleware.WriteErrorDetail{Index: 1, Code: 11000, Message: "duplicate key"}, response.WriteErrors[0])
	assert.Equal(t, int64(1), response.Result.InsertedCount)
	require.Len(t, response.Result.InsertedIDs, 2)
	assert.JSONEq(t, `1`, string(response.Result.InsertedIDs[0].ID))
}

func TestCollectionsHandler_Find(t *testing.T) {
	// Setup
	mockDriver := mocks.NewMockDriver()
	cur := mocks.NewDocumentCursor(
		bson.D{{Key: "_id", Value: int32(1)}, {Key: "name", Value: "pen"}},
		bson.D{{Key: "_id", Value: int32(2)}, {Key: "name", Value: "ink"}},
	)
	expectPrimaryCommand(mockDriver, &docdb.CommandResult{Cursor: cur}, nil)

	router := setupCollectionsRouter(mockDriver)

	// Execute
	w := testutils.PerformRequest(router, "POST", basePath+"/find", `{"filter": {}, "limit": 2}`, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusOK, w)

	var response dto.DocumentsResponse
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, 2, response.Count)
	require.Len(t, response.Documents, 2)
	assert.JSONEq(t, `{"_id": 1, "name": "pen"}`, string(response.Documents[0]))
	assert.True(t, cur.Closed)
	mockDriver.AssertExpectations(t)
}

func TestCollectionsHandler_Find_NoServer(t *testing.T) {
	// Setup
	mockDriver := mocks.NewMockDriver()
	mockDriver.On("SelectServer", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: primary: timed out", docdb.ErrServerSelection))

	router := setupCollectionsRouter(mockDriver)

	// Execute
	w := testutils.PerformRequest(router, "POST", basePath+"/find", `{}`, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusServiceUnavailable, w)

	var response middleware.ErrorResponse
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, domainerrors.ErrCodeServiceUnavailable, response.Code)
}

func TestCollectionsHandler_FindOne_NoMatch(t *testing.T) {
	// Setup
	mockDriver := mocks.NewMockDriver()
	expectPrimaryCommand(mockDriver, &docdb.CommandResult{Cursor: mocks.NewDocumentCursor()}, nil)

	router := setupCollectionsRouter(mockDriver)

	// Execute
	w := testutils.PerformRequest(router, "POST", basePath+"/find-one", `{"filter": {"name": "none"}}`, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusOK, w)
	assert.JSONEq(t, `{"document": null}`, w.Body.String())
}

func TestCollectionsHandler_Count(t *testing.T) {
	// Setup
	mockDriver := mocks.NewMockDriver()
	expectPrimaryCommand(mockDriver, &docdb.CommandResult{Document: testutils.OKReply(bson.E{Key: "n", Value: int32(12)})}, nil)

	router := setupCollectionsRouter(mockDriver)

	// Execute
	w := testutils.PerformRequest(router, "POST", basePath+"/count", `{"filter": {"qty": {"$gt": 1}}, "hint": "qty_1"}`, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusOK, w)

	var response dto.CountResponse
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, int64(12), response.Count)
}

func TestCollectionsHandler_Count_UnexpectedReply(t *testing.T) {
	// Setup
	mockDriver := mocks.NewMockDriver()
	expectPrimaryCommand(mockDriver, &docdb.CommandResult{Document: testutils.OKReply()}, nil)

	router := setupCollectionsRouter(mockDriver)

	// Execute
	w := testutils.PerformRequest(router, "POST", basePath+"/count", `{}`, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusBadGateway, w)
}

func TestCollectionsHandler_Distinct(t *testing.T) {
	// Setup
	mockDriver := mocks.NewMockDriver()
	reply := testutils.OKReply(bson.E{Key: "values", Value: bson.A{"ink", "pen"}})
	expectPrimaryCommand(mockDriver, &docdb.CommandResult{Document: reply}, nil)

	router := setupCollectionsRouter(mockDriver)

	// Execute
	w := testutils.PerformRequest(router, "POST", basePath+"/distinct", `{"field": "name"}`, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusOK, w)
	assert.JSONEq(t, `{"values": ["ink", "pen"]}`, w.Body.String())
}

func TestCollectionsHandler_CreateIndexes(t *testing.T) {
	// Setup
	mockDriver := mocks.NewMockDriver()
	var sent *docdb.Command
	server := mocks.NewPrimaryServer()
	mockDriver.On("SelectServer", mock.Anything, mock.Anything).Return(server, nil)
	mockDriver.On("ExecuteCommand", mock.Anything, server, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(2).(*docdb.Command) }).
		Return(&docdb.CommandResult{Document: testutils.OKReply()}, nil)

	router := setupCollectionsRouter(mockDriver)

	body := `{"indexes": [
		{"keys": {"a": 1, "b": -1}},
		{"keys": {"createdAt": 1}, "name": "ttl", "expireAfterSeconds": 3600}
	]}`

	// Execute
	w := testutils.PerformRequest(router, "POST", basePath+"/indexes", body, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusCreated, w)

	var response dto.CreateIndexesResponse
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, []string{"a_1_b_-1", "ttl"}, response.Names)

	require.NotNil(t, sent)
	assert.Equal(t, "createIndexes", sent.Name())
	specs, _ := docdb.Lookup(sent.Body, "indexes")
	ttl, _ := docdb.Lookup(specs.(bson.A)[1].(bson.D), "expireAfterSeconds")
	assert.Equal(t, int32(3600), ttl)
}

func TestCollectionsHandler_DropIndex_Wildcard(t *testing.T) {
	// Setup
	mockDriver := mocks.NewMockDriver()
	router := setupCollectionsRouter(mockDriver)

	// Execute
	w := testutils.PerformRequest(router, "DELETE", basePath+"/indexes/*", nil, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusBadRequest, w)
	assertNoDriverCalls(t, mockDriver)
}

func TestCollectionsHandler_ListIndexes(t *testing.T) {
	// Setup
	mockDriver := mocks.NewMockDriver()
	cur := mocks.NewDocumentCursor(bson.D{
		{Key: "v", Value: int32(2)},
		{Key: "key", Value: bson.D{{Key: "_id", Value: int32(1)}}},
		{Key: "name", Value: "_id_"},
	})
	expectPrimaryCommand(mockDriver, &docdb.CommandResult{Cursor: cur}, nil)

	router := setupCollectionsRouter(mockDriver)

	// Execute
	w := testutils.PerformRequest(router, "GET", basePath+"/indexes", nil, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusOK, w)

	var response dto.DocumentsResponse
	testutils.ParseJSONResponse(t, w, &response)
	require.Equal(t, 1, response.Count)

	var index map[string]interface{}
	require.NoError(t, json.Unmarshal(response.Documents[0], &index))
	assert.Equal(t, "_id_", index["name"])
}

func TestCollectionsHandler_UnknownRoute(t *testing.T) {
	// Setup
	router := setupCollectionsRouter(mocks.NewMockDriver())

	// Execute
	w := testutils.PerformRequest(router, "POST", basePath+"/explode", `{}`, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusNotFound, w)
}
