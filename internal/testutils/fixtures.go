// Package testutils provides test utilities and helpers.
package testutils

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/unifiedui/collection-service/internal/core/docdb"
)

// Test constants
const (
	TestDatabase   = "testdb"
	TestCollection = "items"
	TestNamespace  = TestDatabase + "." + TestCollection
)

// TestNamespaceValue returns TestNamespace as a docdb.Namespace.
func TestNamespaceValue() docdb.Namespace {
	return docdb.Namespace{Database: TestDatabase, Collection: TestCollection}
}

// NewTestDocument creates a document without an _id.
func NewTestDocument(name string, qty int32) bson.D {
	return bson.D{{Key: "name", Value: name}, {Key: "qty", Value: qty}}
}

// NewTestDocumentWithID creates a document with a fixed ObjectID.
func NewTestDocumentWithID(id primitive.ObjectID, name string) bson.D {
	return bson.D{{Key: "_id", Value: id}, {Key: "name", Value: name}}
}

// OKReply builds a successful command reply with the given extra fields.
func OKReply(fields ...bson.E) bson.Raw {
	doc := append(bson.D{}, fields...)
	doc = append(doc, bson.E{Key: "ok", Value: 1.0})
	raw, err := bson.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return raw
}

// Acknowledged returns a write outcome with a reported modified count.
func Acknowledged(outcome docdb.WriteOutcome) *docdb.WriteOutcome {
	if outcome.ModifiedCount == nil {
		var zero int64
		outcome.ModifiedCount = &zero
	}
	return &outcome
}
