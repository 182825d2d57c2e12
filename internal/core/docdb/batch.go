package docdb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDField is the document identity field.
const IDField = "_id"

// OpKind is the kind of a primitive write operation.
type OpKind int

const (
	OpInsert OpKind = iota + 1
	OpUpdate
	OpDelete
)

// String returns the operation name.
func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// WriteOp is a primitive write operation tagged with its index in the caller's batch.
type WriteOp struct {
	Kind  OpKind
	Index int

	// Document is set for inserts.
	Document bson.D

	// Filter is set for updates and deletes.
	Filter bson.D

	// Update is the update or replacement document for updates.
	Update bson.D
	Multi  bool
	Upsert bool

	// Limit is 1 to delete a single document and 0 to delete all matches.
	Limit int
}

// Batch is an ordered sequence of primitive write operations sent as one request.
// An ordered batch stops at the first failure, an unordered one reports all of them.
type Batch struct {
	Ordered bool
	ops     []WriteOp
}

// NewBatch creates an empty batch.
func NewBatch(ordered bool) *Batch {
	return &Batch{Ordered: ordered}
}

// Insert adds an insert operation.
// If the document has no _id, a new ObjectID is prepended and returned;
// otherwise the returned id is nil and the document is stored unchanged.
func (b *Batch) Insert(index int, doc bson.D) interface{} {
	var generated interface{}
	if _, ok := Lookup(doc, IDField); !ok {
		oid := primitive.NewObjectID()
		withID := make(bson.D, 0, len(doc)+1)
		withID = append(withID, bson.E{Key: IDField, Value: oid})
		doc = append(withID, doc...)
		generated = oid
	}

	b.ops = append(b.ops, WriteOp{Kind: OpInsert, Index: index, Document: doc})
	return generated
}

// Update adds an update or replacement operation.
func (b *Batch) Update(index int, filter, update bson.D, multi, upsert bool) {
	b.ops = append(b.ops, WriteOp{
		Kind:   OpUpdate,
		Index:  index,
		Filter: filter,
		Update: update,
		Multi:  multi,
		Upsert: upsert,
	})
}

// Delete adds a delete operation. A limit of 0 removes every matching document.
func (b *Batch) Delete(index int, filter bson.D, limit int) {
	b.ops = append(b.ops, WriteOp{Kind: OpDelete, Index: index, Filter: filter, Limit: limit})
}

// Ops returns the operations in submission order.
func (b *Batch) Ops() []WriteOp {
	return b.ops
}

// Len returns the number of operations.
func (b *Batch) Len() int {
	return len(b.ops)
}

// Lookup returns the value of the first element with the given key.
func Lookup(doc bson.D, key string) (interface{}, bool) {
	for _, e := range doc {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}
