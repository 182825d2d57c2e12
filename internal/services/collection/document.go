package collection

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/unifiedui/collection-service/internal/core/docdb"
)

// toDocument resolves a caller-supplied document into an ordered bson.D.
// Mappings, raw BSON and tagged structs are all accepted; nil is not.
func toDocument(v interface{}) (bson.D, error) {
	switch d := v.(type) {
	case nil:
		return nil, fmt.Errorf("document is nil")
	case bson.D:
		return d, nil
	case *bson.D:
		if d == nil {
			return nil, fmt.Errorf("document is nil")
		}
		return *d, nil
	case bson.Raw:
		return unmarshalDocument(d)
	case []byte:
		return unmarshalDocument(d)
	}

	data, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cannot encode %T as a document: %w", v, err)
	}
	return unmarshalDocument(data)
}

func unmarshalDocument(data []byte) (bson.D, error) {
	var doc bson.D
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot decode document: %w", err)
	}
	return doc, nil
}

// toFilter is toDocument that treats nil as the empty filter.
func toFilter(v interface{}) (bson.D, error) {
	if v == nil {
		return bson.D{}, nil
	}
	return toDocument(v)
}

// firstKey returns the key of the first element.
func firstKey(doc bson.D) (string, bool) {
	if len(doc) == 0 {
		return "", false
	}
	return doc[0].Key, true
}

// isOperatorKey reports whether key is an update operator such as $set.
func isOperatorKey(key string) bool {
	return strings.HasPrefix(key, "$")
}

// checkUpdateDocument requires the first key of an update document to be an operator.
func checkUpdateDocument(update bson.D) error {
	key, ok := firstKey(update)
	if !ok || !isOperatorKey(key) {
		return fmt.Errorf("update document must contain key beginning with '$'")
	}
	return nil
}

// checkReplacementDocument rejects replacement documents whose first key is an operator.
func checkReplacementDocument(replacement bson.D) error {
	if key, ok := firstKey(replacement); ok && isOperatorKey(key) {
		return fmt.Errorf("replacement document must not contain key beginning with '$'")
	}
	return nil
}

// documentID reads the identity field back from a document.
func documentID(doc bson.D) interface{} {
	id, _ := docdb.Lookup(doc, docdb.IDField)
	return id
}
