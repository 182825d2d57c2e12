// Package handlers provides HTTP handlers for the API.
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/gin-gonic/gin"

	"github.com/unifiedui/collection-service/internal/api/dto"
	"github.com/unifiedui/collection-service/internal/api/middleware"
	"github.com/unifiedui/collection-service/internal/services/collection"
)

// ListIndexes handles GET /namespaces/{namespace}/indexes
// @Summary List indexes
// @Tags Indexes
// @Produce json
// @Param namespace path string true "Namespace (database.collection)"
// @Success 200 {object} dto.DocumentsResponse
// @Router /api/v1/collection-service/namespaces/{namespace}/indexes [get]
func (h *CollectionsHandler) ListIndexes(c *gin.Context) {
	coll, ok := h.collection(c)
	if !ok {
		return
	}

	cur, err := coll.ListIndexes(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	respondCursor(c, cur)
}

// CreateIndexes handles POST /namespaces/{namespace}/indexes
// @Summary Create indexes
// @Description Creates the indexes in one command; names are generated from the keys when omitted
// @Tags Indexes
// @Accept json
// @Produce json
// @Param namespace path string true "Namespace (database.collection)"
// @Param request body dto.CreateIndexesRequest true "Indexes"
// @Success 201 {object} dto.CreateIndexesResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid argument"
// @Router /api/v1/collection-service/namespaces/{namespace}/indexes [post]
func (h *CollectionsHandler) CreateIndexes(c *gin.Context) {
	coll, ok := h.collection(c)
	if !ok {
		return
	}

	var req dto.CreateIndexesRequest
	if !bind(c, &req) {
		return
	}

	models := make([]collection.IndexModel, 0, len(req.Indexes))
	for i, index := range req.Indexes {
		var keys, partial interface{}
		if !decodeFields(c,
			field{fmt.Sprintf("keys of index %d", i), index.Keys, &keys},
			field{fmt.Sprintf("partialFilterExpression of index %d", i), index.PartialFilterExpression, &partial},
		) {
			return
		}

		opts := &collection.IndexOptions{
			Name:          index.Name,
			Unique:        index.Unique,
			Sparse:        index.Sparse,
			Background:    index.Background,
			PartialFilter: partial,
		}
		if index.ExpireAfterSeconds != nil {
			opts.ExpireAfter = pointer.To(time.Duration(*index.ExpireAfterSeconds) * time.Second)
		}
		models = append(models, collection.IndexModel{Keys: keys, Options: opts})
	}

	names, err := coll.CreateIndexes(c.Request.Context(), models)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateIndexesResponse{Names: names})
}

// DropIndex handles DELETE /namespaces/{namespace}/indexes/{name}
// @Summary Drop an index
// @Tags Indexes
// @Produce json
// @Param namespace path string true "Namespace (database.collection)"
// @Param name path string true "Index name"
// @Success 200 {object} dto.CommandResponse
// @Router /api/v1/collection-service/namespaces/{namespace}/indexes/{name} [delete]
func (h *CollectionsHandler) DropIndex(c *gin.Context) {
	coll, ok := h.collection(c)
	if !ok {
		return
	}

	reply, err := coll.DropIndex(c.Request.Context(), c.Param("name"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	respondReply(c, reply)
}

// DropIndexes handles DELETE /namespaces/{namespace}/indexes
// @Summary Drop all indexes except _id
// @Tags Indexes
// @Produce json
// @Param namespace path string true "Namespace (database.collection)"
// @Success 200 {object} dto.CommandResponse
// @Router /api/v1/collection-service/namespaces/{namespace}/indexes [delete]
func (h *CollectionsHandler) DropIndexes(c *gin.Context) {
	coll, ok := h.collection(c)
	if !ok {
		return
	}

	reply, err := coll.DropIndexes(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	respondReply(c, reply)
}

// Drop handles DELETE /namespaces/{namespace}
// @Summary Drop the collection
// @Tags Collections
// @Produce json
// @Param namespace path string true "Namespace (database.collection)"
// @Success 200 {object} dto.CommandResponse
// @Router /api/v1/collection-service/namespaces/{namespace} [delete]
func (h *CollectionsHandler) Drop(c *gin.Context) {
	coll, ok := h.collection(c)
	if !ok {
		return
	}

	reply, err := coll.Drop(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	respondReply(c, reply)
}
