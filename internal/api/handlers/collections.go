// Package handlers provides HTTP handlers for the API.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/unifiedui/collection-service/internal/api/dto"
	"github.com/unifiedui/collection-service/internal/api/middleware"
	"github.com/unifiedui/collection-service/internal/core/docdb"
	"github.com/unifiedui/collection-service/internal/domain/errors"
	"github.com/unifiedui/collection-service/internal/services/collection"
)

// CollectionsHandler exposes collection operations on a namespace given in the path.
type CollectionsHandler struct {
	driver docdb.Driver
	opts   []collection.Option
}

// NewCollectionsHandler creates a new CollectionsHandler.
// opts are applied to every collection the handler opens.
func NewCollectionsHandler(driver docdb.Driver, opts ...collection.Option) *CollectionsHandler {
	return &CollectionsHandler{
		driver: driver,
		opts:   opts,
	}
}

// collection opens the collection named by the :namespace path parameter.
// It writes the error response and returns false on failure.
func (h *CollectionsHandler) collection(c *gin.Context) (*collection.Collection, bool) {
	coll, err := collection.New(h.driver, c.Param("namespace"), h.opts...)
	if err != nil {
		middleware.HandleError(c, err)
		return nil, false
	}
	return coll, true
}

// bind decodes the JSON body into req and writes a validation error on failure.
func bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return false
	}
	return true
}

// decodeFields decodes Extended JSON fields in order and stops at the first failure.
func decodeFields(c *gin.Context, fields ...field) bool {
	for _, f := range fields {
		v, err := dto.DecodeDocument(f.raw)
		if err != nil {
			middleware.HandleError(c, errors.NewInvalidArgumentError("invalid "+f.name, err.Error()))
			return false
		}
		*f.dst = v
	}
	return true
}

type field struct {
	name string
	raw  json.RawMessage
	dst  *interface{}
}

// drainCursor reads every remaining document of cur as Extended JSON and closes it.
func drainCursor(ctx context.Context, cur docdb.Cursor) ([]json.RawMessage, error) {
	defer cur.Close(ctx)

	docs := make([]json.RawMessage, 0)
	for cur.Next(ctx) {
		var doc bson.Raw
		if err := cur.Decode(&doc); err != nil {
			return nil, errors.NewUnexpectedTypeError("cursor returned an undecodable document", err)
		}
		raw, err := dto.EncodeDocument(doc)
		if err != nil {
			return nil, errors.NewInternalError("failed to encode document", err)
		}
		docs = append(docs, raw)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

func respondCursor(c *gin.Context, cur docdb.Cursor) {
	docs, err := drainCursor(c.Request.Context(), cur)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DocumentsResponse{Documents: docs, Count: len(docs)})
}

func respondDocument(c *gin.Context, doc bson.Raw) {
	var v interface{}
	if doc != nil {
		v = doc
	}
	raw, err := dto.EncodeDocument(v)
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("failed to encode document", err))
		return
	}
	c.JSON(http.StatusOK, dto.DocumentResponse{Document: raw})
}

func respondReply(c *gin.Context, reply bson.Raw) {
	raw, err := dto.EncodeDocument(reply)
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("failed to encode reply", err))
		return
	}
	c.JSON(http.StatusOK, dto.CommandResponse{Reply: raw})
}

func millis(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
