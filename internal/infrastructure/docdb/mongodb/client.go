// Package mongodb provides the MongoDB implementation of the docdb driver contract.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unifiedui/collection-service/internal/core/docdb"
)

// Client implements docdb.Driver on top of the official MongoDB driver.
type Client struct {
	client *mongo.Client
}

// ClientConfig holds MongoDB connection configuration.
type ClientConfig struct {
	URI            string
	ConnectTimeout time.Duration
	Monitor        *event.CommandMonitor
}

// NewClient connects to MongoDB and verifies the connection.
func NewClient(ctx context.Context, config *ClientConfig) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if config.URI == "" {
		return nil, fmt.Errorf("mongodb URI is required")
	}

	clientOpts := options.Client().ApplyURI(config.URI)
	if config.ConnectTimeout > 0 {
		clientOpts.SetConnectTimeout(config.ConnectTimeout)
		clientOpts.SetServerSelectionTimeout(config.ConnectTimeout)
	}
	if config.Monitor != nil {
		clientOpts.SetMonitor(config.Monitor)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Verify connection
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Client{client: client}, nil
}

// SelectServer selects a server matching the read preference.
// Selection is performed by the driver while pinging with that read preference.
func (c *Client) SelectServer(ctx context.Context, rp *docdb.ReadPreference) (docdb.Server, error) {
	if rp == nil {
		rp = docdb.Primary()
	}
	mrp, err := toReadPref(rp)
	if err != nil {
		return nil, err
	}

	if err := c.client.Ping(ctx, mrp); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", docdb.ErrServerSelection, rp, err)
	}

	return &server{rp: rp, readPref: mrp}, nil
}

// ExecuteBatch executes the batch as a single bulk write.
func (c *Client) ExecuteBatch(ctx context.Context, ns docdb.Namespace, batch *docdb.Batch, wc *docdb.WriteConcern) (*docdb.WriteOutcome, error) {
	models, err := toWriteModels(batch)
	if err != nil {
		return nil, err
	}

	collOpts := options.Collection()
	if wc != nil {
		collOpts.SetWriteConcern(toWriteConcern(wc))
	}
	coll := c.client.Database(ns.Database).Collection(ns.Collection, collOpts)

	res, err := coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(batch.Ordered))
	switch {
	case err == nil:
		return outcomeFromResult(res, batch), nil
	case errors.Is(err, mongo.ErrUnacknowledgedWrite):
		// Nothing is known about an unacknowledged write beyond its submission.
		return &docdb.WriteOutcome{}, nil
	}

	var bwe mongo.BulkWriteException
	if errors.As(err, &bwe) {
		return nil, bulkWriteError(bwe, res, batch)
	}
	return nil, fmt.Errorf("failed to execute batch on %s: %w", ns, err)
}

// ExecuteCommand runs the command on the selected server.
func (c *Client) ExecuteCommand(ctx context.Context, srv docdb.Server, cmd *docdb.Command) (*docdb.CommandResult, error) {
	s, ok := srv.(*server)
	if !ok {
		return nil, fmt.Errorf("server %T was not selected by this client", srv)
	}
	if cmd == nil || len(cmd.Body) == 0 {
		return nil, fmt.Errorf("command is empty")
	}

	db := c.client.Database(cmd.Database)
	runOpts := options.RunCmd().SetReadPreference(s.readPref)

	if cmd.ReturnsCursor {
		cur, err := db.RunCommandCursor(ctx, cmd.Body, runOpts)
		if err != nil {
			return nil, fmt.Errorf("failed to run %s on %s: %w", cmd.Name(), s.Address(), err)
		}
		return &docdb.CommandResult{Cursor: &Cursor{cursor: cur}}, nil
	}

	reply, err := db.RunCommand(ctx, cmd.Body, runOpts).DecodeBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to run %s on %s: %w", cmd.Name(), s.Address(), err)
	}
	return &docdb.CommandResult{Document: reply}, nil
}

// Ping verifies the connection to MongoDB.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongodb ping failed: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (c *Client) Close(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}
	return nil
}

// check interfaces
var (
	_ docdb.Driver = (*Client)(nil)
	_ docdb.Server = (*server)(nil)
	_ docdb.Cursor = (*Cursor)(nil)
)
