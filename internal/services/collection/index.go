package collection

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/unifiedui/collection-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/collection-service/internal/domain/errors"
)

// IndexModel describes an index to create.
type IndexModel struct {
	// Keys maps fields to an order (1, -1) or an index type ("text", "2dsphere", ...).
	Keys    interface{}
	Options *IndexOptions
}

// CreateIndex creates a single index and returns its name.
func (c *Collection) CreateIndex(ctx context.Context, keys interface{}, opts *IndexOptions) (string, error) {
	names, err := c.CreateIndexes(ctx, []IndexModel{{Keys: keys, Options: opts}})
	if err != nil {
		return "", err
	}
	return names[0], nil
}

// CreateIndexes creates the indexes in one command and returns one name per model.
// Models without a name get one generated from their keys.
func (c *Collection) CreateIndexes(ctx context.Context, models []IndexModel) ([]string, error) {
	if len(models) == 0 {
		return nil, domainerrors.NewInvalidArgumentError("createIndexes requires at least one index", "")
	}

	names := make([]string, 0, len(models))
	indexes := make(bson.A, 0, len(models))

	for i, model := range models {
		if model.Keys == nil {
			return nil, argumentError("createIndexes", i, "missing keys")
		}
		keys, err := toDocument(model.Keys)
		if err != nil {
			return nil, argumentError("createIndexes", i, err.Error())
		}
		if len(keys) == 0 {
			return nil, argumentError("createIndexes", i, "keys must not be empty")
		}

		opts := IndexOptions{}
		if model.Options != nil {
			opts = *model.Options
		}

		name := opts.Name
		if name == "" {
			if name, err = GenerateIndexName(keys); err != nil {
				return nil, argumentError("createIndexes", i, err.Error())
			}
		}

		index, err := indexSpec(keys, name, opts)
		if err != nil {
			return nil, argumentError("createIndexes", i, err.Error())
		}

		names = append(names, name)
		indexes = append(indexes, index)
	}

	cmd := bson.D{
		{Key: "createIndexes", Value: c.ns.Collection},
		{Key: "indexes", Value: indexes},
	}
	if _, err := c.documentCommand(ctx, cmd); err != nil {
		return nil, err
	}

	return names, nil
}

// DropIndex drops the named index. Use DropIndexes to drop all indexes.
func (c *Collection) DropIndex(ctx context.Context, name string) (bson.Raw, error) {
	switch name {
	case "":
		return nil, argumentError("dropIndex", -1, "missing index name")
	case "*":
		return nil, argumentError("dropIndex", -1, "dropping all indexes requires dropIndexes")
	}
	return c.dropIndexes(ctx, name)
}

// DropIndexes drops all indexes of the collection except the one on _id.
func (c *Collection) DropIndexes(ctx context.Context) (bson.Raw, error) {
	return c.dropIndexes(ctx, "*")
}

func (c *Collection) dropIndexes(ctx context.Context, index string) (bson.Raw, error) {
	return c.documentCommand(ctx, bson.D{
		{Key: "dropIndexes", Value: c.ns.Collection},
		{Key: "index", Value: index},
	})
}

// ListIndexes returns a cursor over the index descriptions of the collection.
func (c *Collection) ListIndexes(ctx context.Context) (docdb.Cursor, error) {
	return c.cursorCommand(ctx, bson.D{{Key: "listIndexes", Value: c.ns.Collection}})
}

// GenerateIndexName derives an index name by joining field_value pairs with "_",
// so {a: 1, b: -1} becomes "a_1_b_-1".
func GenerateIndexName(keys bson.D) (string, error) {
	parts := make([]string, 0, len(keys)*2)
	for _, e := range keys {
		var value string
		switch v := e.Value.(type) {
		case int32:
			value = strconv.FormatInt(int64(v), 10)
		case int64:
			value = strconv.FormatInt(v, 10)
		case int:
			value = strconv.Itoa(v)
		case float64:
			value = strconv.FormatFloat(v, 'f', -1, 64)
		case string:
			value = v
		default:
			return "", fmt.Errorf("invalid index value %v of type %T for field %q", e.Value, e.Value, e.Key)
		}
		parts = append(parts, e.Key, value)
	}
	return strings.Join(parts, "_"), nil
}

func indexSpec(keys bson.D, name string, opts IndexOptions) (bson.D, error) {
	index := bson.D{{Key: "key", Value: keys}, {Key: "name", Value: name}}
	if opts.Unique {
		index = append(index, bson.E{Key: "unique", Value: true})
	}
	if opts.Sparse {
		index = append(index, bson.E{Key: "sparse", Value: true})
	}
	if opts.Background {
		index = append(index, bson.E{Key: "background", Value: true})
	}
	if opts.ExpireAfter != nil {
		index = append(index, bson.E{Key: "expireAfterSeconds", Value: int32(opts.ExpireAfter.Seconds())})
	}
	return appendDocument(index, "partialFilterExpression", opts.PartialFilter)
}
