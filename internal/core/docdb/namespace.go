package docdb

import (
	"errors"
	"strings"
)

// Namespace is a fully-qualified database.collection identifier.
type Namespace struct {
	Database   string
	Collection string
}

// ParseNamespace parses a namespace string into a Namespace.
//
// The string is split once on the first ".", so collection names may contain dots.
// Neither part may be empty.
func ParseNamespace(fullName string) (Namespace, error) {
	i := strings.Index(fullName, ".")
	if i == -1 {
		return Namespace{}, errors.New("namespace must contain a '.'")
	}
	return NewNamespace(fullName[:i], fullName[i+1:])
}

// NewNamespace creates a Namespace from the given database and collection names.
func NewNamespace(database, collection string) (Namespace, error) {
	if database == "" {
		return Namespace{}, errors.New("database name can not be empty")
	}
	if collection == "" {
		return Namespace{}, errors.New("collection name can not be empty")
	}
	return Namespace{Database: database, Collection: collection}, nil
}

// String returns the database and collection names joined with ".".
func (ns Namespace) String() string {
	return ns.Database + "." + ns.Collection
}
