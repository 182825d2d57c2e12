package docdb

import (
	"go.mongodb.org/mongo-driver/bson"
)

// Command is a database command addressed to a selected server.
type Command struct {
	Database string
	Body     bson.D

	// ReturnsCursor is set for commands whose reply is a cursor (find, aggregate, listIndexes).
	ReturnsCursor bool
}

// Name returns the command name, which is the first key of the body.
func (c *Command) Name() string {
	if c == nil || len(c.Body) == 0 {
		return ""
	}
	return c.Body[0].Key
}

// CommandResult holds either a cursor or a single reply document.
type CommandResult struct {
	Cursor   Cursor
	Document bson.Raw
}
