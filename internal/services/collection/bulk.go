package collection

import (
	"context"
	"fmt"

	"github.com/AlekSi/pointer"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/unifiedui/collection-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/collection-service/internal/domain/errors"
)

// Operation names accepted by ParseWriteModels.
const (
	OpInsertOne  = "insertOne"
	OpUpdateOne  = "updateOne"
	OpUpdateMany = "updateMany"
	OpReplaceOne = "replaceOne"
	OpDeleteOne  = "deleteOne"
	OpDeleteMany = "deleteMany"
)

// WriteModel is one operation of a bulk write. The set of implementations is closed.
type WriteModel interface {
	operation() string
}

// InsertOneModel inserts a single document.
type InsertOneModel struct {
	Document interface{}
}

// UpdateOneModel applies an operator update to the first matching document.
type UpdateOneModel struct {
	Filter  interface{}
	Update  interface{}
	Options *WriteOptions
}

// UpdateManyModel applies an operator update to every matching document.
type UpdateManyModel struct {
	Filter  interface{}
	Update  interface{}
	Options *WriteOptions
}

// ReplaceOneModel replaces the first matching document.
type ReplaceOneModel struct {
	Filter      interface{}
	Replacement interface{}
	Options     *WriteOptions
}

// DeleteOneModel deletes the first matching document.
type DeleteOneModel struct {
	Filter interface{}
}

// DeleteManyModel deletes every matching document.
type DeleteManyModel struct {
	Filter interface{}
}

func (*InsertOneModel) operation() string  { return OpInsertOne }
func (*UpdateOneModel) operation() string  { return OpUpdateOne }
func (*UpdateManyModel) operation() string { return OpUpdateMany }
func (*ReplaceOneModel) operation() string { return OpReplaceOne }
func (*DeleteOneModel) operation() string  { return OpDeleteOne }
func (*DeleteManyModel) operation() string { return OpDeleteMany }

// BulkWrite translates models into one write batch and executes it with the
// collection's write concern. Every model is validated before anything is sent.
//
// If the driver reports per-operation failures together with a partial outcome,
// both the result and the error are returned.
func (c *Collection) BulkWrite(ctx context.Context, models []WriteModel, opts *BulkOptions) (*BulkWriteResult, error) {
	if len(models) == 0 {
		return nil, domainerrors.NewInvalidArgumentError("bulk write requires at least one operation", "")
	}

	merged := MergeBulkOptions(c.cfg.BulkDefaults, opts)
	batch := docdb.NewBatch(pointer.Get(merged.Ordered))
	ids := make(map[int]interface{})

	for i, model := range models {
		if err := c.addModel(batch, ids, i, model); err != nil {
			return nil, err
		}
	}

	outcome, execErr := c.executeBatch(ctx, batch)
	if outcome == nil && execErr != nil {
		return nil, execErr
	}

	res, err := newBulkWriteResult(outcome, ids)
	if err != nil {
		return nil, err
	}
	return res, execErr
}

// addModel appends the primitive operation for one model to the batch.
func (c *Collection) addModel(batch *docdb.Batch, ids map[int]interface{}, index int, model WriteModel) error {
	switch m := model.(type) {
	case *InsertOneModel:
		if m == nil || m.Document == nil {
			return argumentError(OpInsertOne, index, "missing document")
		}
		id, err := insertDocument(batch, index, m.Document)
		if err != nil {
			return argumentError(OpInsertOne, index, err.Error())
		}
		ids[index] = id

	case *UpdateOneModel:
		if m == nil {
			return argumentError(OpUpdateOne, index, "missing filter")
		}
		return c.addUpdate(batch, OpUpdateOne, index, m.Filter, m.Update, m.Options, false, false)

	case *UpdateManyModel:
		if m == nil {
			return argumentError(OpUpdateMany, index, "missing filter")
		}
		return c.addUpdate(batch, OpUpdateMany, index, m.Filter, m.Update, m.Options, true, false)

	case *ReplaceOneModel:
		if m == nil {
			return argumentError(OpReplaceOne, index, "missing filter")
		}
		return c.addUpdate(batch, OpReplaceOne, index, m.Filter, m.Replacement, m.Options, false, true)

	case *DeleteOneModel:
		if m == nil || m.Filter == nil {
			return argumentError(OpDeleteOne, index, "missing filter")
		}
		return addDelete(batch, OpDeleteOne, index, m.Filter, 1)

	case *DeleteManyModel:
		if m == nil || m.Filter == nil {
			return argumentError(OpDeleteMany, index, "missing filter")
		}
		return addDelete(batch, OpDeleteMany, index, m.Filter, 0)

	default:
		return domainerrors.NewInvalidArgumentErrorf("unsupported operation %T at index %d", model, index)
	}

	return nil
}

// addUpdate validates and appends an update or replacement.
// Options are layered as collection defaults, then the caller's, then the forced multi flag.
func (c *Collection) addUpdate(
	batch *docdb.Batch,
	op string,
	index int,
	filterArg, updateArg interface{},
	caller *WriteOptions,
	multi, replace bool,
) error {
	filter, update, err := prepareUpdate(op, index, filterArg, updateArg, replace)
	if err != nil {
		return err
	}

	opts := MergeWriteOptions(c.cfg.WriteDefaults, caller, WriteOptions{Multi: pointer.To(multi)})
	batch.Update(index, filter, update, pointer.Get(opts.Multi), pointer.Get(opts.Upsert))
	return nil
}

// prepareUpdate resolves the filter and update documents and checks the operator prefix:
// updates must start with an operator, replacements must not.
func prepareUpdate(op string, index int, filterArg, updateArg interface{}, replace bool) (bson.D, bson.D, error) {
	if filterArg == nil {
		return nil, nil, argumentError(op, index, "missing filter")
	}
	filter, err := toFilter(filterArg)
	if err != nil {
		return nil, nil, argumentError(op, index, err.Error())
	}

	if updateArg == nil {
		if replace {
			return nil, nil, argumentError(op, index, "missing replacement document")
		}
		return nil, nil, argumentError(op, index, "missing update document")
	}
	update, err := toDocument(updateArg)
	if err != nil {
		return nil, nil, argumentError(op, index, err.Error())
	}

	if replace {
		err = checkReplacementDocument(update)
	} else {
		err = checkUpdateDocument(update)
	}
	if err != nil {
		return nil, nil, argumentError(op, index, err.Error())
	}

	return filter, update, nil
}

func addDelete(batch *docdb.Batch, op string, index int, filterArg interface{}, limit int) error {
	filter, err := toFilter(filterArg)
	if err != nil {
		return argumentError(op, index, err.Error())
	}
	batch.Delete(index, filter, limit)
	return nil
}

// insertDocument appends an insert and returns the document's identifier,
// either generated by the batch or read back from the document.
func insertDocument(batch *docdb.Batch, index int, document interface{}) (interface{}, error) {
	doc, err := toDocument(document)
	if err != nil {
		return nil, err
	}
	if id := batch.Insert(index, doc); id != nil {
		return id, nil
	}
	return documentID(doc), nil
}

// executeBatch runs the batch, surfacing the partial outcome of a bulk write error.
func (c *Collection) executeBatch(ctx context.Context, batch *docdb.Batch) (*docdb.WriteOutcome, error) {
	outcome, err := c.driver.ExecuteBatch(ctx, c.ns, batch, c.cfg.WriteConcern)
	if err != nil {
		if bwe, ok := asBulkWriteError(err); ok && bwe.Outcome != nil {
			return bwe.Outcome, err
		}
		return nil, err
	}
	return outcome, nil
}

// argumentError builds an InvalidArgument error naming the operation and, for batches, its index.
// A negative index means the error belongs to a single-operation call.
func argumentError(op string, index int, reason string) error {
	if index < 0 {
		return domainerrors.NewInvalidArgumentErrorf("%s: %s", op, reason)
	}
	return domainerrors.NewInvalidArgumentErrorf("%s at index %d: %s", op, index, reason)
}

// ParseWriteModels decodes the untyped bulk form, where each element is a single-key
// document mapping an operation name to its argument array:
//
//	{"insertOne": [document]}
//	{"updateOne": [filter, update, options?]}
//	{"replaceOne": [filter, replacement, options?]}
//	{"deleteMany": [filter]}
func ParseWriteModels(ops []bson.D) ([]WriteModel, error) {
	models := make([]WriteModel, 0, len(ops))
	for i, op := range ops {
		model, err := parseWriteModel(i, op)
		if err != nil {
			return nil, err
		}
		models = append(models, model)
	}
	return models, nil
}

func parseWriteModel(index int, op bson.D) (WriteModel, error) {
	if len(op) != 1 {
		return nil, domainerrors.NewInvalidArgumentErrorf(
			"operation at index %d must have exactly one key, got %d", index, len(op),
		)
	}

	name := op[0].Key
	args, ok := toArgs(op[0].Value)
	if !ok {
		return nil, argumentError(name, index, "arguments must be an array")
	}

	arg := func(i int) interface{} {
		if i < len(args) {
			return args[i]
		}
		return nil
	}

	switch name {
	case OpInsertOne:
		if arg(0) == nil {
			return nil, argumentError(name, index, "missing document")
		}
		return &InsertOneModel{Document: arg(0)}, nil

	case OpUpdateOne, OpUpdateMany, OpReplaceOne:
		if arg(0) == nil {
			return nil, argumentError(name, index, "missing filter")
		}
		if arg(1) == nil {
			return nil, argumentError(name, index, "missing second argument")
		}
		opts, err := parseWriteOptions(arg(2))
		if err != nil {
			return nil, argumentError(name, index, err.Error())
		}
		switch name {
		case OpUpdateOne:
			return &UpdateOneModel{Filter: arg(0), Update: arg(1), Options: opts}, nil
		case OpUpdateMany:
			return &UpdateManyModel{Filter: arg(0), Update: arg(1), Options: opts}, nil
		default:
			return &ReplaceOneModel{Filter: arg(0), Replacement: arg(1), Options: opts}, nil
		}

	case OpDeleteOne:
		if arg(0) == nil {
			return nil, argumentError(name, index, "missing filter")
		}
		return &DeleteOneModel{Filter: arg(0)}, nil

	case OpDeleteMany:
		if arg(0) == nil {
			return nil, argumentError(name, index, "missing filter")
		}
		return &DeleteManyModel{Filter: arg(0)}, nil

	default:
		return nil, domainerrors.NewInvalidArgumentErrorf("unknown operation %q at index %d", name, index)
	}
}

func toArgs(v interface{}) ([]interface{}, bool) {
	switch a := v.(type) {
	case bson.A:
		return a, true
	case []interface{}:
		return a, true
	default:
		return nil, false
	}
}

// parseWriteOptions reads upsert, multi, limit and ordered from an options document.
func parseWriteOptions(v interface{}) (*WriteOptions, error) {
	if v == nil {
		return nil, nil
	}
	doc, err := toDocument(v)
	if err != nil {
		return nil, err
	}

	opts := new(WriteOptions)
	for _, e := range doc {
		switch e.Key {
		case "upsert", "multi", "ordered":
			b, ok := e.Value.(bool)
			if !ok {
				return nil, fmt.Errorf("option %q must be a boolean", e.Key)
			}
			switch e.Key {
			case "upsert":
				opts.Upsert = pointer.To(b)
			case "multi":
				opts.Multi = pointer.To(b)
			default:
				opts.Ordered = pointer.To(b)
			}
		case "limit":
			n, ok := toInt64(e.Value)
			if !ok {
				return nil, fmt.Errorf("option %q must be a number", e.Key)
			}
			opts.Limit = pointer.To(int(n))
		default:
			return nil, fmt.Errorf("unknown option %q", e.Key)
		}
	}
	return opts, nil
}
