// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "encoding/json"

// Document fields are raw relaxed Extended JSON and are decoded by the handlers.

// BulkWriteRequest represents the request body for a bulk write.
type BulkWriteRequest struct {
	// Operations is an array of single-key objects such as {"insertOne": [doc]}.
	Operations json.RawMessage `json:"operations" binding:"required"`
	Ordered    *bool           `json:"ordered"`
}

// InsertOneRequest represents the request body for inserting a document.
type InsertOneRequest struct {
	Document json.RawMessage `json:"document" binding:"required"`
}

// InsertManyRequest represents the request body for inserting documents.
type InsertManyRequest struct {
	Documents json.RawMessage `json:"documents" binding:"required"`
	Ordered   *bool           `json:"ordered"`
}

// UpdateRequest represents the request body for updateOne and updateMany.
type UpdateRequest struct {
	Filter  json.RawMessage `json:"filter"`
	Update  json.RawMessage `json:"update"`
	Upsert  *bool           `json:"upsert"`
	Ordered *bool           `json:"ordered"`
}

// ReplaceRequest represents the request body for replaceOne.
type ReplaceRequest struct {
	Filter      json.RawMessage `json:"filter"`
	Replacement json.RawMessage `json:"replacement"`
	Upsert      *bool           `json:"upsert"`
	Ordered     *bool           `json:"ordered"`
}

// DeleteRequest represents the request body for deleteOne and deleteMany.
type DeleteRequest struct {
	Filter  json.RawMessage `json:"filter"`
	Ordered *bool           `json:"ordered"`
}

// FindRequest represents the request body for find and findOne.
type FindRequest struct {
	Filter              json.RawMessage `json:"filter"`
	Projection          json.RawMessage `json:"projection"`
	Sort                json.RawMessage `json:"sort"`
	Skip                int64           `json:"skip" binding:"min=0"`
	Limit               int64           `json:"limit"`
	BatchSize           int32           `json:"batchSize" binding:"min=0"`
	Comment             string          `json:"comment"`
	MaxTimeMS           int64           `json:"maxTimeMS" binding:"min=0"`
	NoCursorTimeout     bool            `json:"noCursorTimeout"`
	AllowPartialResults bool            `json:"allowPartialResults"`
}

// CountRequest represents the request body for count.
type CountRequest struct {
	Filter    json.RawMessage `json:"filter"`
	Hint      json.RawMessage `json:"hint"`
	Limit     int64           `json:"limit" binding:"min=0"`
	Skip      int64           `json:"skip" binding:"min=0"`
	MaxTimeMS int64           `json:"maxTimeMS" binding:"min=0"`
}

// DistinctRequest represents the request body for distinct.
type DistinctRequest struct {
	Field     string          `json:"field"`
	Filter    json.RawMessage `json:"filter"`
	MaxTimeMS int64           `json:"maxTimeMS" binding:"min=0"`
}

// AggregateRequest represents the request body for aggregate.
type AggregateRequest struct {
	Pipeline     json.RawMessage `json:"pipeline"`
	AllowDiskUse bool            `json:"allowDiskUse"`
	BatchSize    int32           `json:"batchSize" binding:"min=0"`
	MaxTimeMS    int64           `json:"maxTimeMS" binding:"min=0"`
}

// FindAndModifyRequest represents the request body for the findOneAnd* operations.
// Replacement is used by find-one-and-replace, Update by find-one-and-update.
type FindAndModifyRequest struct {
	Filter      json.RawMessage `json:"filter"`
	Update      json.RawMessage `json:"update"`
	Replacement json.RawMessage `json:"replacement"`
	Projection  json.RawMessage `json:"projection"`
	Sort        json.RawMessage `json:"sort"`
	MaxTimeMS   int64           `json:"maxTimeMS" binding:"min=0"`
	// ReturnDocument is "before" (default) or "after".
	ReturnDocument string `json:"returnDocument" binding:"omitempty,oneof=before after"`
	Upsert         bool   `json:"upsert"`
}

// CreateIndexesRequest represents the request body for creating indexes.
type CreateIndexesRequest struct {
	Indexes []IndexRequest `json:"indexes" binding:"required,min=1,dive"`
}

// IndexRequest describes one index to create.
type IndexRequest struct {
	Keys                    json.RawMessage `json:"keys" binding:"required"`
	Name                    string          `json:"name"`
	Unique                  bool            `json:"unique"`
	Sparse                  bool            `json:"sparse"`
	Background              bool            `json:"background"`
	ExpireAfterSeconds      *int64          `json:"expireAfterSeconds" binding:"omitempty,min=0"`
	PartialFilterExpression json.RawMessage `json:"partialFilterExpression"`
}
