package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/unifiedui/collection-service/internal/core/docdb"
)

// server is the handle returned by SelectServer.
type server struct {
	rp       *docdb.ReadPreference
	readPref *readpref.ReadPref
}

// Address describes the selected server by the read preference it satisfies.
func (s *server) Address() string {
	return "mongodb/" + s.rp.String()
}

// ReadPreference returns the read preference the server was selected with.
func (s *server) ReadPreference() *docdb.ReadPreference {
	return s.rp
}

func toReadPref(rp *docdb.ReadPreference) (*readpref.ReadPref, error) {
	var mode readpref.Mode
	switch rp.Mode {
	case docdb.ReadPrimary, "":
		mode = readpref.PrimaryMode
	case docdb.ReadPrimaryPreferred:
		mode = readpref.PrimaryPreferredMode
	case docdb.ReadSecondary:
		mode = readpref.SecondaryMode
	case docdb.ReadSecondaryPreferred:
		mode = readpref.SecondaryPreferredMode
	case docdb.ReadNearest:
		mode = readpref.NearestMode
	default:
		return nil, fmt.Errorf("unsupported read preference mode %q", rp.Mode)
	}

	var opts []readpref.Option
	if rp.MaxStaleness > 0 {
		opts = append(opts, readpref.WithMaxStaleness(rp.MaxStaleness))
	}

	mrp, err := readpref.New(mode, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid read preference: %w", err)
	}
	return mrp, nil
}

func toWriteConcern(wc *docdb.WriteConcern) *writeconcern.WriteConcern {
	return &writeconcern.WriteConcern{
		W:        wc.W,
		Journal:  wc.Journal,
		WTimeout: wc.WTimeout,
	}
}

// Cursor wraps a MongoDB cursor.
type Cursor struct {
	cursor *mongo.Cursor
}

// Next advances the cursor.
func (c *Cursor) Next(ctx context.Context) bool {
	return c.cursor.Next(ctx)
}

// Decode decodes the current document.
func (c *Cursor) Decode(v interface{}) error {
	return c.cursor.Decode(v)
}

// All decodes all remaining documents.
func (c *Cursor) All(ctx context.Context, results interface{}) error {
	return c.cursor.All(ctx, results)
}

// Err returns any cursor error.
func (c *Cursor) Err() error {
	return c.cursor.Err()
}

// Close closes the cursor.
func (c *Cursor) Close(ctx context.Context) error {
	return c.cursor.Close(ctx)
}
