// Package docdb defines the document database types shared with driver implementations.
package docdb

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Type represents the type of document database.
type Type string

const (
	// TypeMongoDB represents a MongoDB database.
	TypeMongoDB Type = "mongodb"
	// TypeCosmosDB represents an Azure Cosmos DB database speaking the MongoDB protocol.
	TypeCosmosDB Type = "cosmosdb"
)

// Cursor represents a cursor for iterating over query results.
// Cursors are single forward pass and are not restartable.
type Cursor interface {
	// Next advances the cursor to the next document.
	Next(ctx context.Context) bool
	// Decode decodes the current document.
	Decode(v interface{}) error
	// All decodes all remaining documents.
	All(ctx context.Context, results interface{}) error
	// Err returns any cursor error.
	Err() error
	// Close closes the cursor.
	Close(ctx context.Context) error
}

// WriteConcern represents the acknowledgment level requested for writes.
type WriteConcern struct {
	// W is either an int (number of nodes) or a tag string such as "majority".
	W        interface{}
	Journal  *bool
	WTimeout time.Duration
}

// ReadMode is the server role a read preference targets.
type ReadMode string

const (
	ReadPrimary            ReadMode = "primary"
	ReadPrimaryPreferred   ReadMode = "primaryPreferred"
	ReadSecondary          ReadMode = "secondary"
	ReadSecondaryPreferred ReadMode = "secondaryPreferred"
	ReadNearest            ReadMode = "nearest"
)

// ParseReadMode converts a configuration value into a ReadMode.
// Matching is case-insensitive.
func ParseReadMode(s string) (ReadMode, error) {
	for _, mode := range []ReadMode{
		ReadPrimary, ReadPrimaryPreferred, ReadSecondary, ReadSecondaryPreferred, ReadNearest,
	} {
		if strings.EqualFold(s, string(mode)) {
			return mode, nil
		}
	}
	return "", fmt.Errorf("unknown read preference mode %q", s)
}

// ReadPreference represents the policy for which server serves a read.
type ReadPreference struct {
	Mode         ReadMode
	MaxStaleness time.Duration
}

// Primary returns a read preference targeting the primary.
func Primary() *ReadPreference {
	return &ReadPreference{Mode: ReadPrimary}
}

// String returns the read preference mode.
func (rp *ReadPreference) String() string {
	if rp == nil {
		return string(ReadPrimary)
	}
	return string(rp.Mode)
}
