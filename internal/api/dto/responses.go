// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"encoding/json"
	"sort"
)

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

// IndexedID is an identifier tagged with the index of the input that produced it.
type IndexedID struct {
	Index int             `json:"index"`
	ID    json.RawMessage `json:"id"`
}

// InsertOneResponse represents the response for inserting a document.
type InsertOneResponse struct {
	InsertedID    json.RawMessage `json:"insertedId"`
	InsertedCount int64           `json:"insertedCount"`
}

// InsertManyResponse represents the response for inserting documents.
type InsertManyResponse struct {
	InsertedIDs   []IndexedID `json:"insertedIds"`
	InsertedCount int64       `json:"insertedCount"`
}

// UpdateResponse represents the response for update and replace operations.
// ModifiedCount is omitted when the server did not report it.
type UpdateResponse struct {
	MatchedCount  int64           `json:"matchedCount"`
	ModifiedCount *int64          `json:"modifiedCount,omitempty"`
	UpsertedCount int64           `json:"upsertedCount"`
	UpsertedID    json.RawMessage `json:"upsertedId,omitempty"`
}

// DeleteResponse represents the response for delete operations.
type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// BulkWriteResponse represents the response for a bulk write.
type BulkWriteResponse struct {
	InsertedCount int64       `json:"insertedCount"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount *int64      `json:"modifiedCount,omitempty"`
	DeletedCount  int64       `json:"deletedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	InsertedIDs   []IndexedID `json:"insertedIds"`
	UpsertedIDs   []IndexedID `json:"upsertedIds"`
}

// DocumentsResponse represents a drained cursor.
type DocumentsResponse struct {
	Documents []json.RawMessage `json:"documents"`
	Count     int               `json:"count"`
}

// DocumentResponse represents a single document result; Document is null when nothing matched.
type DocumentResponse struct {
	Document json.RawMessage `json:"document"`
}

// CountResponse represents the response for count.
type CountResponse struct {
	Count int64 `json:"count"`
}

// DistinctResponse represents the response for distinct.
type DistinctResponse struct {
	Values json.RawMessage `json:"values"`
}

// CreateIndexesResponse represents the response for creating indexes.
type CreateIndexesResponse struct {
	Names []string `json:"names"`
}

// CommandResponse wraps the raw server reply of an administrative command.
type CommandResponse struct {
	Reply json.RawMessage `json:"reply"`
}

// NewIndexedIDs encodes an index to identifier map as a list sorted by index.
func NewIndexedIDs(ids map[int]interface{}) ([]IndexedID, error) {
	out := make([]IndexedID, 0, len(ids))
	for index, id := range ids {
		raw, err := EncodeValue(id)
		if err != nil {
			return nil, err
		}
		out = append(out, IndexedID{Index: index, ID: raw})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}
