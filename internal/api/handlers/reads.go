// Package handlers provides HTTP handlers for the API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/unifiedui/collection-service/internal/api/dto"
	"github.com/unifiedui/collection-service/internal/api/middleware"
	"github.com/unifiedui/collection-service/internal/domain/errors"
	"github.com/unifiedui/collection-service/internal/services/collection"
)

// Find handles POST /namespaces/{namespace}/find
// @Summary Find documents
// @Description Runs a find command on the primary and returns every matching document
// @Tags Reads
// @Accept json
// @Produce json
// @Param namespace path string true "Namespace (database.collection)"
// @Param request body dto.FindRequest true "Query"
// @Success 200 {object} dto.DocumentsResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid argument"
// @Failure 503 {object} middleware.ErrorResponse "No server available"
// @Router /api/v1/collection-service/namespaces/{namespace}/find [post]
func (h *CollectionsHandler) Find(c *gin.Context) {
	coll, ok := h.collection(c)
	if !ok {
		return
	}

	filter, opts, ok := findArgs(c)
	if !ok {
		return
	}

	cur, err := coll.Find(c.Request.Context(), filter, opts)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	respondCursor(c, cur)
}

// FindOne handles POST /namespaces/{namespace}/find-one
// @Summary Find the first matching document
// @Tags Reads
// @Accept json
// @Produce json
// @Param namespace path string true "Namespace (database.collection)"
// @Param request body dto.FindRequest true "Query"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid argument"
// @Failure 503 {object} middleware.ErrorResponse "No server available"
// @Router /api/v1/collection-service/namespaces/{namespace}/find-one [post]
func (h *CollectionsHandler) FindOne(c *gin.Context) {
	coll, ok := h.collection(c)
	if !ok {
		return
	}

	filter, opts, ok := findArgs(c)
	if !ok {
		return
	}

	doc, err := coll.FindOne(c.Request.Context(), filter, opts)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	respondDocument(c, doc)
}

func findArgs(c *gin.Context) (interface{}, *collection.FindOptions, bool) {
	var req dto.FindRequest
	if !bind(c, &req) {
		return nil, nil, false
	}

	var filter, projection, sort interface{}
	if !decodeFields(c,
		field{"filter", req.Filter, &filter},
		field{"projection", req.Projection, &projection},
		field{"sort", req.Sort, &sort},
	) {
		return nil, nil, false
	}

	return filter, &collection.FindOptions{
		Projection:          projection,
		Sort:                sort,
		Skip:                req.Skip,
		Limit:               req.Limit,
		BatchSize:           req.BatchSize,
		Comment:             req.Comment,
		MaxTime:             millis(req.MaxTimeMS),
		NoCursorTimeout:     req.NoCursorTimeout,
		AllowPartialResults: req.AllowPartialResults,
	}, true
}

// Count handles POST /namespaces/{namespace}/count
// @Summary Count matching documents
// @Tags Reads
// @Accept json
// @Produce json
// @Param namespace path string true "Namespace (database.collection)"
// @Param request body dto.CountRequest true "Query"
// @Success 200 {object} dto.CountResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid argument"
// @Failure 503 {object} middleware.ErrorResponse "No server available"
// @Router /api/v1/collection-service/namespaces/{namespace}/count [post]
func (h *CollectionsHandler) Count(c *gin.Context) {
	coll, ok := h.collection(c)
	if !ok {
		return
	}

	var req dto.CountRequest
	if !bind(c, &req) {
		return
	}
	var filter interface{}
	if !decodeFields(c, field{"filter", req.Filter, &filter}) {
		return
	}
	hint, err := dto.DecodeValue(req.Hint)
	if err != nil {
		middleware.HandleError(c, errors.NewInvalidArgumentError("invalid hint", err.Error()))
		return
	}

	n, err := coll.Count(c.Request.Context(), filter, &collection.CountOptions{
		Hint:    hint,
		Limit:   req.Limit,
		Skip:    req.Skip,
		MaxTime: millis(req.MaxTimeMS),
	})
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Count: n})
}

// Distinct handles POST /namespaces/{namespace}/distinct
// @Summary List distinct values of a field
// @Tags Reads
// @Accept json
// @Produce json
// @Param namespace path string true "Namespace (database.collection)"
// @Param request body dto.DistinctRequest true "Field and query"
// @Success 200 {object} dto.DistinctResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid argument"
// @Failure 503 {object} middleware.ErrorResponse "No server available"
// @Router /api/v1/collection-service/namespaces/{namespace}/distinct [post]
func (h *CollectionsHandler) Distinct(c *gin.Context) {
	coll, ok := h.collection(c)
	if !ok {
		return
	}

	var req dto.DistinctRequest
	if !bind(c, &req) {
		return
	}
	var filter interface{}
	if !decodeFields(c, field{"filter", req.Filter, &filter}) {
		return
	}

	values, err := coll.Distinct(c.Request.Context(), req.Field, filter, &collection.DistinctOptions{
		MaxTime: millis(req.MaxTimeMS),
	})
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	raw, err := dto.EncodeValue(bson.A(values))
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("failed to encode values", err))
		return
	}
	c.JSON(http.StatusOK, dto.DistinctResponse{Values: raw})
}

// Aggregate handles POST /namespaces/{namespace}/aggregate
// @Summary Run an aggregation pipeline
// @Tags Reads
// @Accept json
// @Produce json
// @Param namespace path string true "Namespace (database.collection)"
// @Param request body dto.AggregateRequest true "Pipeline"
// @Success 200 {object} dto.DocumentsResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid argument"
// @Failure 503 {object} middleware.ErrorResponse "No server available"
// @Router /api/v1/collection-service/namespaces/{namespace}/aggregate [post]
func (h *CollectionsHandler) Aggregate(c *gin.Context) {
	coll, ok := h.collection(c)
	if !ok {
		return
	}

	var req dto.AggregateRequest
	if !bind(c, &req) {
		return
	}
	pipeline, err := dto.DecodeArray(req.Pipeline)
	if err != nil {
		middleware.HandleError(c, errors.NewInvalidArgumentError("invalid pipeline", err.Error()))
		return
	}

	var stages interface{}
	if pipeline != nil {
		stages = pipeline
	}
	cur, err := coll.Aggregate(c.Request.Context(), stages, &collection.AggregateOptions{
		AllowDiskUse: req.AllowDiskUse,
		BatchSize:    req.BatchSize,
		MaxTime:      millis(req.MaxTimeMS),
	})
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	respondCursor(c, cur)
}

// FindOneAndDelete handles POST /namespaces/{namespace}/find-one-and-delete
// @Summary Delete the first matching document and return it
// @Tags Reads
// @Accept json
// @Produce json
// @Param namespace path string true "Namespace (database.collection)"
// @Param request body dto.FindAndModifyRequest true "Filter"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid argument"
// @Failure 503 {object} middleware.ErrorResponse "No server available"
// @Router /api/v1/collection-service/namespaces/{namespace}/find-one-and-delete [post]
func (h *CollectionsHandler) FindOneAndDelete(c *gin.Context) {
	coll, ok := h.collection(c)
	if !ok {
		return
	}

	var req dto.FindAndModifyRequest
	if !bind(c, &req) {
		return
	}
	var filter, projection, sort interface{}
	if !decodeFields(c,
		field{"filter", req.Filter, &filter},
		field{"projection", req.Projection, &projection},
		field{"sort", req.Sort, &sort},
	) {
		return
	}

	doc, err := coll.FindOneAndDelete(c.Request.Context(), filter, &collection.FindOneAndDeleteOptions{
		Projection: projection,
		Sort:       sort,
		MaxTime:    millis(req.MaxTimeMS),
	})
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	respondDocument(c, doc)
}

// FindOneAndReplace handles POST /namespaces/{namespace}/find-one-and-replace
// @Summary Replace the first matching document and return it
// @Tags Reads
// @Accept json
// @Produce json
// @Param namespace path string true "Namespace (database.collection)"
// @Param request body dto.FindAndModifyRequest true "Filter and replacement"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid argument"
// @Failure 503 {object} middleware.ErrorResponse "No server available"
// @Router /api/v1/collection-service/namespaces/{namespace}/find-one-and-replace [post]
func (h *CollectionsHandler) FindOneAndReplace(c *gin.Context) {
	coll, ok := h.collection(c)
	if !ok {
		return
	}

	var req dto.FindAndModifyRequest
	if !bind(c, &req) {
		return
	}
	var filter, replacement, projection, sort interface{}
	if !decodeFields(c,
		field{"filter", req.Filter, &filter},
		field{"replacement", req.Replacement, &replacement},
		field{"projection", req.Projection, &projection},
		field{"sort", req.Sort, &sort},
	) {
		return
	}

	doc, err := coll.FindOneAndReplace(c.Request.Context(), filter, replacement, &collection.FindOneAndReplaceOptions{
		Projection:     projection,
		Sort:           sort,
		MaxTime:        millis(req.MaxTimeMS),
		ReturnDocument: returnDocument(req.ReturnDocument),
		Upsert:         req.Upsert,
	})
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	respondDocument(c, doc)
}

// FindOneAndUpdate handles POST /namespaces/{namespace}/find-one-and-update
// @Summary Update the first matching document and return it
// @Tags Reads
// @Accept json
// @Produce json
// @Param namespace path string true "Namespace (database.collection)"
// @Param request body dto.FindAndModifyRequest true "Filter and update"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid argument"
// @Failure 503 {object} middleware.ErrorResponse "No server available"
// @Router /api/v1/collection-service/namespaces/{namespace}/find-one-and-update [post]
func (h *CollectionsHandler) FindOneAndUpdate(c *gin.Context) {
	coll, ok := h.collection(c)
	if !ok {
		return
	}

	var req dto.FindAndModifyRequest
	if !bind(c, &req) {
		return
	}
	var filter, update, projection, sort interface{}
	if !decodeFields(c,
		field{"filter", req.Filter, &filter},
		field{"update", req.Update, &update},
		field{"projection", req.Projection, &projection},
		field{"sort", req.Sort, &sort},
	) {
		return
	}

	doc, err := coll.FindOneAndUpdate(c.Request.Context(), filter, update, &collection.FindOneAndUpdateOptions{
		Projection:     projection,
		Sort:           sort,
		MaxTime:        millis(req.MaxTimeMS),
		ReturnDocument: returnDocument(req.ReturnDocument),
		Upsert:         req.Upsert,
	})
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	respondDocument(c, doc)
}

func returnDocument(s string) collection.ReturnDocument {
	if s == "after" {
		return collection.After
	}
	return collection.Before
}
