package collection

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/unifiedui/collection-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/collection-service/internal/domain/errors"
)

// Find returns a cursor over the documents matching filter. A nil filter matches everything.
func (c *Collection) Find(ctx context.Context, filter interface{}, opts *FindOptions) (docdb.Cursor, error) {
	cmd, err := c.findCommand("find", filter, opts)
	if err != nil {
		return nil, err
	}
	return c.cursorCommand(ctx, cmd)
}

// FindOne returns the first document matching filter, or nil if there is none.
func (c *Collection) FindOne(ctx context.Context, filter interface{}, opts *FindOptions) (bson.Raw, error) {
	one := FindOptions{}
	if opts != nil {
		one = *opts
	}
	one.Limit = -1

	cmd, err := c.findCommand("findOne", filter, &one)
	if err != nil {
		return nil, err
	}

	cur, err := c.cursorCommand(ctx, cmd)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		return nil, cur.Err()
	}

	var doc bson.Raw
	if err := cur.Decode(&doc); err != nil {
		return nil, domainerrors.NewUnexpectedTypeError("findOne returned an undecodable document", err)
	}
	return doc, nil
}

// Count returns the number of documents matching filter.
func (c *Collection) Count(ctx context.Context, filter interface{}, opts *CountOptions) (int64, error) {
	f, err := toFilter(filter)
	if err != nil {
		return 0, argumentError("count", -1, err.Error())
	}

	cmd := bson.D{{Key: "count", Value: c.ns.Collection}, {Key: "query", Value: f}}
	if opts != nil {
		if opts.Hint != nil {
			cmd = append(cmd, bson.E{Key: "hint", Value: opts.Hint})
		}
		if opts.Limit > 0 {
			cmd = append(cmd, bson.E{Key: "limit", Value: opts.Limit})
		}
		if opts.Skip > 0 {
			cmd = append(cmd, bson.E{Key: "skip", Value: opts.Skip})
		}
		cmd = appendMaxTime(cmd, opts.MaxTime)
	}

	reply, err := c.documentCommand(ctx, cmd)
	if err != nil {
		return 0, err
	}

	val, err := reply.LookupErr("n")
	if err != nil {
		return 0, domainerrors.NewUnexpectedTypeError("count reply has no 'n' field", err)
	}
	n, ok := rawInt64(val)
	if !ok {
		return 0, domainerrors.NewUnexpectedTypeError(fmt.Sprintf("count reply 'n' has type %s", val.Type), nil)
	}
	return n, nil
}

// Distinct returns the distinct values of field among documents matching filter.
func (c *Collection) Distinct(ctx context.Context, field string, filter interface{}, opts *DistinctOptions) ([]interface{}, error) {
	if field == "" {
		return nil, argumentError("distinct", -1, "missing field name")
	}
	f, err := toFilter(filter)
	if err != nil {
		return nil, argumentError("distinct", -1, err.Error())
	}

	cmd := bson.D{
		{Key: "distinct", Value: c.ns.Collection},
		{Key: "key", Value: field},
		{Key: "query", Value: f},
	}
	if opts != nil {
		cmd = appendMaxTime(cmd, opts.MaxTime)
	}

	reply, err := c.documentCommand(ctx, cmd)
	if err != nil {
		return nil, err
	}

	val, err := reply.LookupErr("values")
	if err != nil {
		return nil, domainerrors.NewUnexpectedTypeError("distinct reply has no 'values' field", err)
	}
	if val.Type != bson.TypeArray {
		return nil, domainerrors.NewUnexpectedTypeError(fmt.Sprintf("distinct reply 'values' has type %s", val.Type), nil)
	}

	var values []interface{}
	if err := val.Unmarshal(&values); err != nil {
		return nil, domainerrors.NewUnexpectedTypeError("distinct reply 'values' is undecodable", err)
	}
	return values, nil
}

// Aggregate runs an aggregation pipeline and returns a cursor over its output.
func (c *Collection) Aggregate(ctx context.Context, pipeline interface{}, opts *AggregateOptions) (docdb.Cursor, error) {
	stages, err := toPipeline(pipeline)
	if err != nil {
		return nil, argumentError("aggregate", -1, err.Error())
	}

	cursorOpts := bson.D{}
	if opts != nil && opts.BatchSize > 0 {
		cursorOpts = append(cursorOpts, bson.E{Key: "batchSize", Value: opts.BatchSize})
	}

	cmd := bson.D{
		{Key: "aggregate", Value: c.ns.Collection},
		{Key: "pipeline", Value: stages},
		{Key: "cursor", Value: cursorOpts},
	}
	if opts != nil {
		if opts.AllowDiskUse {
			cmd = append(cmd, bson.E{Key: "allowDiskUse", Value: true})
		}
		cmd = appendMaxTime(cmd, opts.MaxTime)
	}

	return c.cursorCommand(ctx, cmd)
}

// FindOneAndDelete deletes the first document matching filter and returns it, or nil.
func (c *Collection) FindOneAndDelete(ctx context.Context, filter interface{}, opts *FindOneAndDeleteOptions) (bson.Raw, error) {
	if opts == nil {
		opts = &FindOneAndDeleteOptions{}
	}
	cmd, err := c.findAndModifyCommand("findOneAndDelete", filter, opts.Projection, opts.Sort, opts.MaxTime)
	if err != nil {
		return nil, err
	}
	cmd = append(cmd, bson.E{Key: "remove", Value: true})

	return c.findAndModify(ctx, cmd)
}

// FindOneAndReplace replaces the first document matching filter and returns either
// the original or the replaced document, or nil.
func (c *Collection) FindOneAndReplace(
	ctx context.Context,
	filter, replacement interface{},
	opts *FindOneAndReplaceOptions,
) (bson.Raw, error) {
	if replacement == nil {
		return nil, argumentError("findOneAndReplace", -1, "missing replacement document")
	}
	r, err := toDocument(replacement)
	if err != nil {
		return nil, argumentError("findOneAndReplace", -1, err.Error())
	}
	if err := checkReplacementDocument(r); err != nil {
		return nil, argumentError("findOneAndReplace", -1, err.Error())
	}

	if opts == nil {
		opts = &FindOneAndReplaceOptions{}
	}
	cmd, err := c.findAndModifyCommand("findOneAndReplace", filter, opts.Projection, opts.Sort, opts.MaxTime)
	if err != nil {
		return nil, err
	}
	cmd = append(cmd,
		bson.E{Key: "update", Value: r},
		bson.E{Key: "new", Value: opts.ReturnDocument == After},
		bson.E{Key: "upsert", Value: opts.Upsert},
	)

	return c.findAndModify(ctx, cmd)
}

// FindOneAndUpdate applies an operator update to the first document matching filter and
// returns either the original or the updated document, or nil.
func (c *Collection) FindOneAndUpdate(
	ctx context.Context,
	filter, update interface{},
	opts *FindOneAndUpdateOptions,
) (bson.Raw, error) {
	if update == nil {
		return nil, argumentError("findOneAndUpdate", -1, "missing update document")
	}
	u, err := toDocument(update)
	if err != nil {
		return nil, argumentError("findOneAndUpdate", -1, err.Error())
	}
	if err := checkUpdateDocument(u); err != nil {
		return nil, argumentError("findOneAndUpdate", -1, err.Error())
	}

	if opts == nil {
		opts = &FindOneAndUpdateOptions{}
	}
	cmd, err := c.findAndModifyCommand("findOneAndUpdate", filter, opts.Projection, opts.Sort, opts.MaxTime)
	if err != nil {
		return nil, err
	}
	cmd = append(cmd,
		bson.E{Key: "update", Value: u},
		bson.E{Key: "new", Value: opts.ReturnDocument == After},
		bson.E{Key: "upsert", Value: opts.Upsert},
	)

	return c.findAndModify(ctx, cmd)
}

// Drop drops the collection.
func (c *Collection) Drop(ctx context.Context) (bson.Raw, error) {
	return c.documentCommand(ctx, bson.D{{Key: "drop", Value: c.ns.Collection}})
}

func (c *Collection) findCommand(op string, filter interface{}, opts *FindOptions) (bson.D, error) {
	f, err := toFilter(filter)
	if err != nil {
		return nil, argumentError(op, -1, err.Error())
	}

	cmd := bson.D{{Key: "find", Value: c.ns.Collection}, {Key: "filter", Value: f}}
	if opts == nil {
		return cmd, nil
	}

	if cmd, err = appendDocument(cmd, "projection", opts.Projection); err != nil {
		return nil, argumentError(op, -1, err.Error())
	}
	if cmd, err = appendDocument(cmd, "sort", opts.Sort); err != nil {
		return nil, argumentError(op, -1, err.Error())
	}
	if opts.Skip > 0 {
		cmd = append(cmd, bson.E{Key: "skip", Value: opts.Skip})
	}
	switch {
	case opts.Limit < 0:
		cmd = append(cmd, bson.E{Key: "limit", Value: -opts.Limit}, bson.E{Key: "singleBatch", Value: true})
	case opts.Limit > 0:
		cmd = append(cmd, bson.E{Key: "limit", Value: opts.Limit})
	}
	if opts.BatchSize > 0 {
		cmd = append(cmd, bson.E{Key: "batchSize", Value: opts.BatchSize})
	}
	if opts.Comment != "" {
		cmd = append(cmd, bson.E{Key: "comment", Value: opts.Comment})
	}
	cmd = appendMaxTime(cmd, opts.MaxTime)
	switch opts.CursorType {
	case Tailable:
		cmd = append(cmd, bson.E{Key: "tailable", Value: true})
	case TailableAwait:
		cmd = append(cmd, bson.E{Key: "tailable", Value: true}, bson.E{Key: "awaitData", Value: true})
	}
	if opts.NoCursorTimeout {
		cmd = append(cmd, bson.E{Key: "noCursorTimeout", Value: true})
	}
	if opts.AllowPartialResults {
		cmd = append(cmd, bson.E{Key: "allowPartialResults", Value: true})
	}
	if opts.OplogReplay {
		cmd = append(cmd, bson.E{Key: "oplogReplay", Value: true})
	}

	return cmd, nil
}

func (c *Collection) findAndModifyCommand(
	op string,
	filter, projection, sort interface{},
	maxTime time.Duration,
) (bson.D, error) {
	f, err := toFilter(filter)
	if err != nil {
		return nil, argumentError(op, -1, err.Error())
	}

	cmd := bson.D{{Key: "findAndModify", Value: c.ns.Collection}, {Key: "query", Value: f}}
	if cmd, err = appendDocument(cmd, "sort", sort); err != nil {
		return nil, argumentError(op, -1, err.Error())
	}
	if cmd, err = appendDocument(cmd, "fields", projection); err != nil {
		return nil, argumentError(op, -1, err.Error())
	}
	return appendMaxTime(cmd, maxTime), nil
}

// findAndModify executes the command and extracts the 'value' field; null means no match.
func (c *Collection) findAndModify(ctx context.Context, cmd bson.D) (bson.Raw, error) {
	reply, err := c.documentCommand(ctx, cmd)
	if err != nil {
		return nil, err
	}

	val, err := reply.LookupErr("value")
	if err != nil {
		return nil, domainerrors.NewUnexpectedTypeError("findAndModify reply has no 'value' field", err)
	}
	switch val.Type {
	case bson.TypeNull:
		return nil, nil
	case bson.TypeEmbeddedDocument:
		return val.Document(), nil
	default:
		return nil, domainerrors.NewUnexpectedTypeError(fmt.Sprintf("findAndModify reply 'value' has type %s", val.Type), nil)
	}
}

// command selects a server and executes cmd on it.
// Reads always target the primary regardless of the collection's read preference.
func (c *Collection) command(ctx context.Context, body bson.D, returnsCursor bool) (*docdb.CommandResult, error) {
	server, err := c.driver.SelectServer(ctx, docdb.Primary())
	if err != nil {
		return nil, err
	}

	cmd := &docdb.Command{Database: c.ns.Database, Body: body, ReturnsCursor: returnsCursor}
	res, err := c.driver.ExecuteCommand(ctx, server, cmd)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domainerrors.NewUnexpectedTypeError(fmt.Sprintf("driver returned no reply to %s", cmd.Name()), nil)
	}
	return res, nil
}

func (c *Collection) cursorCommand(ctx context.Context, body bson.D) (docdb.Cursor, error) {
	res, err := c.command(ctx, body, true)
	if err != nil {
		return nil, err
	}
	if res.Cursor == nil {
		return nil, domainerrors.NewUnexpectedTypeError(fmt.Sprintf("%s reply is not a cursor", body[0].Key), nil)
	}
	return res.Cursor, nil
}

func (c *Collection) documentCommand(ctx context.Context, body bson.D) (bson.Raw, error) {
	res, err := c.command(ctx, body, false)
	if err != nil {
		return nil, err
	}
	if res.Document == nil {
		return nil, domainerrors.NewUnexpectedTypeError(fmt.Sprintf("%s reply is not a document", body[0].Key), nil)
	}
	return res.Document, nil
}

// appendDocument appends key: v when v is set, resolving v into a document.
func appendDocument(cmd bson.D, key string, v interface{}) (bson.D, error) {
	if v == nil {
		return cmd, nil
	}
	doc, err := toDocument(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return append(cmd, bson.E{Key: key, Value: doc}), nil
}

func appendMaxTime(cmd bson.D, maxTime time.Duration) bson.D {
	if maxTime <= 0 {
		return cmd
	}
	return append(cmd, bson.E{Key: "maxTimeMS", Value: maxTime.Milliseconds()})
}

// toPipeline resolves every stage of an aggregation pipeline into a document.
// Any slice or array of documents is accepted, such as mongo.Pipeline or []bson.M.
func toPipeline(v interface{}) (bson.A, error) {
	if v == nil {
		return bson.A{}, nil
	}

	rv := reflect.ValueOf(v)
	if (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, fmt.Errorf("pipeline must be an array of stages, got %T", v)
	}

	out := make(bson.A, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		s := rv.Index(i).Interface()
		if s == nil {
			return nil, fmt.Errorf("pipeline stage %d is nil", i)
		}
		doc, err := toDocument(s)
		if err != nil {
			return nil, fmt.Errorf("pipeline stage %d: %w", i, err)
		}
		out = append(out, doc)
	}
	return out, nil
}

// rawInt64 converts any numeric BSON value to int64.
func rawInt64(v bson.RawValue) (int64, bool) {
	switch v.Type {
	case bson.TypeInt32:
		return int64(v.Int32()), true
	case bson.TypeInt64:
		return v.Int64(), true
	case bson.TypeDouble:
		return int64(v.Double()), true
	default:
		return 0, false
	}
}

// toInt64 converts a decoded numeric value to int64.
func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
