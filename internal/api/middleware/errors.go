// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifiedui/collection-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/collection-service/internal/domain/errors"
)

// ErrorMiddleware handles error recovery and formatting.
type ErrorMiddleware struct{}

// NewErrorMiddleware creates a new ErrorMiddleware.
func NewErrorMiddleware() *ErrorMiddleware {
	return &ErrorMiddleware{}
}

// Recovery returns a gin middleware that recovers from panics.
func (m *ErrorMiddleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetRequestLogger(c)
				logger.Error().
					Interface("error", err).
					Str("path", c.Request.URL.Path).
					Str("method", c.Request.Method).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"code":    domainerrors.ErrCodeInternal,
					"message": "internal server error",
				})
			}
		}()
		c.Next()
	}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// WriteErrorDetail describes a failed operation of a batch.
type WriteErrorDetail struct {
	Index   int    `json:"index"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// BulkWriteErrorResponse is returned when the server rejected part of a batch.
// Result holds the partial outcome when one is known.
type BulkWriteErrorResponse struct {
	Code              string             `json:"code"`
	Message           string             `json:"message"`
	WriteErrors       []WriteErrorDetail `json:"writeErrors"`
	WriteConcernError *WriteErrorDetail  `json:"writeConcernError,omitempty"`
	Result            interface{}        `json:"result,omitempty"`
}

// HandleError handles errors and sends appropriate HTTP responses.
func HandleError(c *gin.Context, err error) {
	HandleErrorWithResult(c, err, nil)
}

// HandleErrorWithResult is HandleError for writes that may carry a partial result.
func HandleErrorWithResult(c *gin.Context, err error, result interface{}) {
	if err == nil {
		return
	}

	logger := GetRequestLogger(c)

	var bwe *docdb.BulkWriteError
	if errors.As(err, &bwe) {
		conflict := domainerrors.NewConflictError(bwe.Error(), "")
		c.AbortWithStatusJSON(conflict.HTTPStatus, newBulkWriteErrorResponse(conflict, bwe, result))
		return
	}

	if errors.Is(err, docdb.ErrServerSelection) {
		logger.Warn().Err(err).Msg("no server available")
		err = domainerrors.NewServiceUnavailableError("docdb", err)
	}

	// Check for domain errors
	if domainErr, ok := domainerrors.GetDomainError(err); ok {
		switch {
		case domainerrors.IsInvalidArgument(domainErr):
			logger.Debug().Err(err).Msg("invalid argument")
		case domainerrors.IsUnexpectedType(domainErr):
			logger.Error().Err(err).Msg("unexpected reply from docdb")
		case domainErr.HTTPStatus >= http.StatusInternalServerError && domainErr.Code != domainerrors.ErrCodeServiceUnavailable:
			logger.Error().Err(err).Msg("request failed")
		}
		c.AbortWithStatusJSON(domainErr.HTTPStatus, ErrorResponse{
			Code:    domainErr.Code,
			Message: domainErr.Message,
			Details: domainErr.Details,
		})
		return
	}

	// Default to internal server error
	logger.Error().Err(err).Msg("unhandled error")
	internal := domainerrors.NewInternalError("internal server error", nil)
	c.AbortWithStatusJSON(internal.HTTPStatus, ErrorResponse{
		Code:    internal.Code,
		Message: internal.Message,
	})
}

func newBulkWriteErrorResponse(conflict *domainerrors.DomainError, bwe *docdb.BulkWriteError, result interface{}) BulkWriteErrorResponse {
	resp := BulkWriteErrorResponse{
		Code:        conflict.Code,
		Message:     conflict.Message,
		WriteErrors: make([]WriteErrorDetail, 0, len(bwe.WriteErrors)),
		Result:      result,
	}
	for _, we := range bwe.WriteErrors {
		resp.WriteErrors = append(resp.WriteErrors, WriteErrorDetail{
			Index:   we.Index,
			Code:    we.Code,
			Message: we.Message,
		})
	}
	if wce := bwe.WriteConcernError; wce != nil {
		resp.WriteConcernError = &WriteErrorDetail{Index: -1, Code: wce.Code, Message: wce.Message}
	}
	return resp
}

// NotFound returns a 404 handler.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		notFound := domainerrors.NewNotFoundError("route", c.Request.URL.Path)
		c.JSON(notFound.HTTPStatus, ErrorResponse{
			Code:    notFound.Code,
			Message: notFound.Message,
			Details: notFound.Details,
		})
	}
}

// MethodNotAllowed returns a 405 handler.
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{
			Code:    "METHOD_NOT_ALLOWED",
			Message: "method not allowed",
			Details: c.Request.Method,
		})
	}
}
