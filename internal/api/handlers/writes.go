// Package handlers provides HTTP handlers for the API.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifiedui/collection-service/internal/api/dto"
	"github.com/unifiedui/collection-service/internal/api/middleware"
	"github.com/unifiedui/collection-service/internal/domain/errors"
	"github.com/unifiedui/collection-service/internal/services/collection"
)

// BulkWrite handles POST /namespaces/{namespace}/bulk-write
// @Summary Execute a bulk write
// @Description Executes insertOne, updateOne, updateMany, replaceOne, deleteOne and deleteMany operations as one batch
// @Tags Writes
// @Accept json
// @Produce json
// @Param namespace path string true "Namespace (database.collection)"
// @Param request body dto.BulkWriteRequest true "Bulk write request"
// @Success 200 {object} dto.BulkWriteResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid argument"
// @Failure 409 {object} middleware.BulkWriteErrorResponse "Write errors"
// @Router /api/v1/collection-service/namespaces/{namespace}/bulk-write [post]
func (h *CollectionsHandler) BulkWrite(c *gin.Context) {
	coll, ok := h.collection(c)
	if !ok {
		return
	}

	var req dto.BulkWriteRequest
	if !bind(c, &req) {
		return
	}

	ops, err := dto.DecodeDocuments(req.Operations)
	if err != nil {
		middleware.HandleError(c, errors.NewInvalidArgumentError("invalid operations", err.Error()))
		return
	}
	models, err := collection.ParseWriteModels(ops)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	res, err := coll.BulkWrite(c.Request.Context(), models, &collection.BulkOptions{Ordered: req.Ordered})
	if res == nil {
		middleware.HandleError(c, err)
		return
	}

	resp, encErr := newBulkWriteResponse(res)
	if encErr != nil {
		middleware.HandleError(c, errors.NewInternalError("failed to encode result", encErr))
		return
	}
	if err != nil {
		middleware.HandleErrorWithResult(c, err, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// InsertOne handles POST /namespaces/{namespace}/insert-one
// @Summary Insert a document
// @Tags Writes
// @Accept json
// @Produce json
// @Param namespace path string true "Namespace (database.collection)"
// @Param request body dto.InsertOneRequest true "Document"
// @Success 201 {object} dto.InsertOneResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid argument"
// @Failure 409 {object} middleware.BulkWriteErrorResponse "Write error"
// @Router /api/v1/collection-service/namespaces/{namespace}/insert-one [post]
func (h *CollectionsHandler) InsertOne(c *gin.Context) {
	coll, ok := h.collection(c)
	if !ok {
		return
	}

	var req dto.InsertOneRequest
	if !bind(c, &req) {
		return
	}
	var doc interface{}
	if !decodeFields(c, field{"document", req.Document, &doc}) {
		return
	}

	res, err := coll.InsertOne(c.Request.Context(), doc)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	id, err := dto.EncodeValue(res.InsertedID())
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("failed to encode result", err))
		return
	}
	c.JSON(http.StatusCreated, dto.InsertOneResponse{InsertedID: id, InsertedCount: res.InsertedCount()})
}

// InsertMany handles POST /namespaces/{namespace}/insert-many
// @Summary Insert documents
// @Tags Writes
// @Accept json
// @Produce json
// @Param namespace path string true "Namespace (database.collection)"
// @Param request body dto.InsertManyRequest true "Documents"
// @Success 201 {object} dto.InsertManyResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid argument"
// @Failure 409 {object} middleware.BulkWriteErrorResponse "Write errors"
// @Router /api/v1/collection-service/namespaces/{namespace}/insert-many [post]
func (h *CollectionsHandler) InsertMany(c *gin.Context) {
	coll, ok := h.collection(c)
	if !ok {
		return
	}

	var req dto.InsertManyRequest
	if !bind(c, &req) {
		return
	}
	docs, err := dto.DecodeDocuments(req.Documents)
	if err != nil {
		middleware.HandleError(c, errors.NewInvalidArgumentError("invalid documents", err.Error()))
		return
	}
	documents := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		documents = append(documents, doc)
	}

	res, err := coll.InsertMany(c.Request.Context(), documents, &collection.BulkOptions{Ordered: req.Ordered})
	if res == nil {
		middleware.HandleError(c, err)
		return
	}

	ids, encErr := dto.NewIndexedIDs(res.InsertedIDs())
	if encErr != nil {
		middleware.HandleError(c, errors.NewInternalError("failed to encode result", encErr))
		return
	}
	resp := dto.InsertManyResponse{InsertedIDs: ids, InsertedCount: res.InsertedCount()}
	if err != nil {
		middleware.HandleErrorWithResult(c, err, resp)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateOne handles POST /namespaces/{namespace}/update-one
// @Summary Update the first matching document
// @Tags Writes
// @Accept json
// @Produce json
// @Param namespace path string true "Namespace (database.collection)"
// @Param request body dto.UpdateRequest true "Filter and update"
// @Success 200 {object} dto.UpdateResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid argument"
// @Failure 409 {object} middleware.BulkWriteErrorResponse "Write error"
// @Failure 503 {object} middleware.ErrorResponse "No server available"
// @Router /api/v1/collection-service/namespaces/{namespace}/update-one [post]
func (h *CollectionsHandler) UpdateOne(c *gin.Context) {
	h.update(c, (*collection.Collection).UpdateOne)
}

// UpdateMany handles POST /namespaces/{namespace}/update-many
// @Summary Update every matching document
// @Tags Writes
// @Accept json
// @Produce json
// @Param namespace path string true "Namespace (database.collection)"
// @Param request body dto.UpdateRequest true "Filter and update"
// @Success 200 {object} dto.UpdateResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid argument"
// @Failure 409 {object} middleware.BulkWriteErrorResponse "Write error"
// @Failure 503 {object} middleware.ErrorResponse "No server available"
// @Router /api/v1/collection-service/namespaces/{namespace}/update-many [post]
func (h *CollectionsHandler) UpdateMany(c *gin.Context) {
	h.update(c, (*collection.Collection).UpdateMany)
}

type updateFunc func(
	coll *collection.Collection,
	ctx context.Context,
	filter, update interface{},
	opts *collection.WriteOptions,
) (*collection.UpdateResult, error)

func (h *CollectionsHandler) update(c *gin.Context, fn updateFunc) {
	coll, ok := h.collection(c)
	if !ok {
		return
	}

	var req dto.UpdateRequest
	if !bind(c, &req) {
		return
	}
	var filter, update interface{}
	if !decodeFields(c, field{"filter", req.Filter, &filter}, field{"update", req.Update, &update}) {
		return
	}

	opts := &collection.WriteOptions{Upsert: req.Upsert, Ordered: req.Ordered}
	res, err := fn(coll, c.Request.Context(), filter, update, opts)
	respondUpdate(c, res, err)
}

// ReplaceOne handles POST /namespaces/{namespace}/replace-one
// @Summary Replace the first matching document
// @Tags Writes
// @Accept json
// @Produce json
// @Param namespace path string true "Namespace (database.collection)"
// @Param request body dto.ReplaceRequest true "Filter and replacement"
// @Success 200 {object} dto.UpdateResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid argument"
// @Router /api/v1/collection-service/namespaces/{namespace}/replace-one [post]
func (h *CollectionsHandler) ReplaceOne(c *gin.Context) {
	coll, ok := h.collection(c)
	if !ok {
		return
	}

	var req dto.ReplaceRequest
	if !bind(c, &req) {
		return
	}
	var filter, replacement interface{}
	if !decodeFields(c, field{"filter", req.Filter, &filter}, field{"replacement", req.Replacement, &replacement}) {
		return
	}

	opts := &collection.WriteOptions{Upsert: req.Upsert, Ordered: req.Ordered}
	res, err := coll.ReplaceOne(c.Request.Context(), filter, replacement, opts)
	respondUpdate(c, res, err)
}

func respondUpdate(c *gin.Context, res *collection.UpdateResult, err error) {
	if res == nil {
		middleware.HandleError(c, err)
		return
	}

	resp := dto.UpdateResponse{
		MatchedCount:  res.MatchedCount(),
		UpsertedCount: res.UpsertedCount(),
	}
	if n, ok := res.ModifiedCount(); ok {
		resp.ModifiedCount = &n
	}
	if id := res.UpsertedID(); id != nil {
		raw, encErr := dto.EncodeValue(id)
		if encErr != nil {
			middleware.HandleError(c, errors.NewInternalError("failed to encode result", encErr))
			return
		}
		resp.UpsertedID = raw
	}

	if err != nil {
		middleware.HandleErrorWithResult(c, err, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteOne handles POST /namespaces/{namespace}/delete-one
// @Summary Delete the first matching document
// @Tags Writes
// @Accept json
// @Produce json
// @Param namespace path string true "Namespace (database.collection)"
// @Param request body dto.DeleteRequest true "Filter"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid argument"
// @Failure 409 {object} middleware.BulkWriteErrorResponse "Write error"
// @Failure 503 {object} middleware.ErrorResponse "No server available"
// @Router /api/v1/collection-service/namespaces/{namespace}/delete-one [post]
func (h *CollectionsHandler) DeleteOne(c *gin.Context) {
	h.delete(c, (*collection.Collection).DeleteOne)
}

// DeleteMany handles POST /namespaces/{namespace}/delete-many
// @Summary Delete every matching document
// @Tags Writes
// @Accept json
// @Produce json
// @Param namespace path string true "Namespace (database.collection)"
// @Param request body dto.DeleteRequest true "Filter"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid argument"
// @Failure 409 {object} middleware.BulkWriteErrorResponse "Write error"
// @Failure 503 {object} middleware.ErrorResponse "No server available"
// @Router /api/v1/collection-service/namespaces/{namespace}/delete-many [post]
func (h *CollectionsHandler) DeleteMany(c *gin.Context) {
	h.delete(c, (*collection.Collection).DeleteMany)
}

type deleteFunc func(
	coll *collection.Collection,
	ctx context.Context,
	filter interface{},
	opts *collection.WriteOptions,
) (*collection.DeleteResult, error)

func (h *CollectionsHandler) delete(c *gin.Context, fn deleteFunc) {
	coll, ok := h.collection(c)
	if !ok {
		return
	}

	var req dto.DeleteRequest
	if !bind(c, &req) {
		return
	}
	var filter interface{}
	if !decodeFields(c, field{"filter", req.Filter, &filter}) {
		return
	}

	res, err := fn(coll, c.Request.Context(), filter, &collection.WriteOptions{Ordered: req.Ordered})
	if res == nil {
		middleware.HandleError(c, err)
		return
	}

	resp := dto.DeleteResponse{DeletedCount: res.DeletedCount()}
	if err != nil {
		middleware.HandleErrorWithResult(c, err, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func newBulkWriteResponse(res *collection.BulkWriteResult) (dto.BulkWriteResponse, error) {
	inserted, err := dto.NewIndexedIDs(res.InsertedIDs())
	if err != nil {
		return dto.BulkWriteResponse{}, err
	}
	upserted, err := dto.NewIndexedIDs(res.UpsertedIDs())
	if err != nil {
		return dto.BulkWriteResponse{}, err
	}

	resp := dto.BulkWriteResponse{
		InsertedCount: res.InsertedCount(),
		MatchedCount:  res.MatchedCount(),
		DeletedCount:  res.DeletedCount(),
		UpsertedCount: res.UpsertedCount(),
		InsertedIDs:   inserted,
		UpsertedIDs:   upserted,
	}
	if n, ok := res.ModifiedCount(); ok {
		resp.ModifiedCount = &n
	}
	return resp, nil
}
