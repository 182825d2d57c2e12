// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// isAbsent reports whether a raw JSON field was omitted or explicitly null.
func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// DecodeDocument decodes an Extended JSON object.
// It returns an untyped nil when the field is absent so callers can tell "missing" from "{}".
func DecodeDocument(raw json.RawMessage) (interface{}, error) {
	if isAbsent(raw) {
		return nil, nil
	}

	var doc bson.D
	if err := bson.UnmarshalExtJSON(raw, false, &doc); err != nil {
		return nil, fmt.Errorf("invalid extended JSON document: %w", err)
	}
	return doc, nil
}

// DecodeValue decodes any Extended JSON value, such as an array or a scalar.
// Nested documents decode as bson.D and arrays as bson.A.
func DecodeValue(raw json.RawMessage) (interface{}, error) {
	if isAbsent(raw) {
		return nil, nil
	}

	// Extended JSON only decodes documents at the top level.
	wrapped := make([]byte, 0, len(raw)+6)
	wrapped = append(wrapped, `{"v":`...)
	wrapped = append(wrapped, raw...)
	wrapped = append(wrapped, '}')

	var doc bson.D
	if err := bson.UnmarshalExtJSON(wrapped, false, &doc); err != nil {
		return nil, fmt.Errorf("invalid extended JSON value: %w", err)
	}
	return doc[0].Value, nil
}

// DecodeArray decodes an Extended JSON array. An absent field yields nil.
func DecodeArray(raw json.RawMessage) (bson.A, error) {
	v, err := DecodeValue(raw)
	if err != nil || v == nil {
		return nil, err
	}
	a, ok := v.(bson.A)
	if !ok {
		return nil, fmt.Errorf("expected an array, got %T", v)
	}
	return a, nil
}

// DecodeDocuments decodes an Extended JSON array whose elements must all be objects.
func DecodeDocuments(raw json.RawMessage) ([]bson.D, error) {
	a, err := DecodeArray(raw)
	if err != nil {
		return nil, err
	}
	docs := make([]bson.D, 0, len(a))
	for i, v := range a {
		doc, ok := v.(bson.D)
		if !ok {
			return nil, fmt.Errorf("element %d must be an object, got %T", i, v)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// EncodeDocument renders a document as relaxed Extended JSON.
func EncodeDocument(doc interface{}) (json.RawMessage, error) {
	if doc == nil {
		return json.RawMessage("null"), nil
	}
	out, err := bson.MarshalExtJSON(doc, false, false)
	if err != nil {
		return nil, fmt.Errorf("failed to encode extended JSON: %w", err)
	}
	return out, nil
}

// EncodeValue renders any BSON value as relaxed Extended JSON.
func EncodeValue(v interface{}) (json.RawMessage, error) {
	if v == nil {
		return json.RawMessage("null"), nil
	}
	out, err := bson.MarshalExtJSON(bson.D{{Key: "v", Value: v}}, false, false)
	if err != nil {
		return nil, fmt.Errorf("failed to encode extended JSON: %w", err)
	}

	// Unwrap {"v":<value>}
	var wrapper struct {
		V json.RawMessage `json:"v"`
	}
	if err := json.Unmarshal(out, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unwrap extended JSON: %w", err)
	}
	return wrapper.V, nil
}
