// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/unifiedui/collection-service/internal/core/docdb"
)

// MockDriver is a mock implementation of docdb.Driver.
type MockDriver struct {
	mock.Mock
}

// NewMockDriver creates a new MockDriver.
func NewMockDriver() *MockDriver {
	return &MockDriver{}
}

// SelectServer selects a server.
func (m *MockDriver) SelectServer(ctx context.Context, rp *docdb.ReadPreference) (docdb.Server, error) {
	args := m.Called(ctx, rp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(docdb.Server), args.Error(1)
}

// ExecuteBatch executes a write batch.
func (m *MockDriver) ExecuteBatch(ctx context.Context, ns docdb.Namespace, batch *docdb.Batch, wc *docdb.WriteConcern) (*docdb.WriteOutcome, error) {
	args := m.Called(ctx, ns, batch, wc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdb.WriteOutcome), args.Error(1)
}

// ExecuteCommand executes a command.
func (m *MockDriver) ExecuteCommand(ctx context.Context, server docdb.Server, cmd *docdb.Command) (*docdb.CommandResult, error) {
	args := m.Called(ctx, server, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdb.CommandResult), args.Error(1)
}

// Ping pings the database.
func (m *MockDriver) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close closes the driver.
func (m *MockDriver) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Server is a docdb.Server stub.
type Server struct {
	Addr string
	RP   *docdb.ReadPreference
}

// NewPrimaryServer returns a server selected with the primary read preference.
func NewPrimaryServer() *Server {
	return &Server{Addr: "localhost:27017", RP: docdb.Primary()}
}

// Address returns the server address.
func (s *Server) Address() string {
	return s.Addr
}

// ReadPreference returns the read preference the server was selected with.
func (s *Server) ReadPreference() *docdb.ReadPreference {
	return s.RP
}

// DocumentCursor is an in-memory docdb.Cursor over a fixed list of documents.
type DocumentCursor struct {
	docs    []bson.Raw
	pos     int
	err     error
	Closed  bool
	current bson.Raw
}

// NewDocumentCursor creates a cursor over docs. It panics if a document cannot be marshaled.
func NewDocumentCursor(docs ...interface{}) *DocumentCursor {
	c := &DocumentCursor{}
	for _, doc := range docs {
		data, err := bson.Marshal(doc)
		if err != nil {
			panic(fmt.Sprintf("mocks: cannot marshal cursor document: %v", err))
		}
		c.docs = append(c.docs, data)
	}
	return c
}

// WithErr makes the cursor report err once its documents are exhausted.
func (c *DocumentCursor) WithErr(err error) *DocumentCursor {
	c.err = err
	return c
}

// Next advances the cursor.
func (c *DocumentCursor) Next(_ context.Context) bool {
	if c.Closed || c.pos >= len(c.docs) {
		c.current = nil
		return false
	}
	c.current = c.docs[c.pos]
	c.pos++
	return true
}

// Decode decodes the current document.
func (c *DocumentCursor) Decode(v interface{}) error {
	if c.current == nil {
		return fmt.Errorf("no current document")
	}
	if raw, ok := v.(*bson.Raw); ok {
		*raw = c.current
		return nil
	}
	return bson.Unmarshal(c.current, v)
}

// All decodes all remaining documents into a *[]bson.Raw or *[]bson.D and closes the cursor.
func (c *DocumentCursor) All(ctx context.Context, results interface{}) error {
	defer c.Close(ctx)

	switch out := results.(type) {
	case *[]bson.Raw:
		for c.Next(ctx) {
			*out = append(*out, c.current)
		}
	case *[]bson.D:
		for c.Next(ctx) {
			var doc bson.D
			if err := bson.Unmarshal(c.current, &doc); err != nil {
				return err
			}
			*out = append(*out, doc)
		}
	default:
		return fmt.Errorf("unsupported results type %T", results)
	}
	return c.err
}

// Err returns the configured error once the cursor is exhausted.
func (c *DocumentCursor) Err() error {
	if c.pos < len(c.docs) {
		return nil
	}
	return c.err
}

// Close closes the cursor.
func (c *DocumentCursor) Close(_ context.Context) error {
	c.Closed = true
	return nil
}

// check interfaces
var (
	_ docdb.Driver = (*MockDriver)(nil)
	_ docdb.Server = (*Server)(nil)
	_ docdb.Cursor = (*DocumentCursor)(nil)
)
