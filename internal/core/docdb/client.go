// Package docdb defines the document database driver contract.
package docdb

import (
	"context"
)

// Server is a handle to a server chosen by SelectServer.
type Server interface {
	// Address returns a human readable description of the selected server.
	Address() string

	// ReadPreference returns the read preference the server was selected with.
	ReadPreference() *ReadPreference
}

// Driver defines the lower-level driver the collection facade delegates to.
// Implementations own connection management, server selection and wire encoding.
type Driver interface {
	// SelectServer returns a server matching the read preference.
	// Fails with an error wrapping ErrServerSelection when none is available.
	SelectServer(ctx context.Context, rp *ReadPreference) (Server, error)

	// ExecuteBatch executes a write batch against a namespace as a single request.
	// Server-reported write failures are returned as *BulkWriteError.
	ExecuteBatch(ctx context.Context, ns Namespace, batch *Batch, wc *WriteConcern) (*WriteOutcome, error)

	// ExecuteCommand executes a command against a previously selected server.
	ExecuteCommand(ctx context.Context, server Server, cmd *Command) (*CommandResult, error)

	// Ping verifies the database connection.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close(ctx context.Context) error
}
