// Package collection provides the collection facade over a document database driver.
//
// A Collection translates CRUD, bulk-write, index and aggregation calls into
// primitive write batches and commands executed by a docdb.Driver, and wraps the
// raw replies in typed results. It holds no mutable state and is safe for
// concurrent use when the driver is.
package collection

import (
	"github.com/unifiedui/collection-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/collection-service/internal/domain/errors"
)

// Config holds the defaults a Collection applies to every call.
type Config struct {
	WriteConcern   *docdb.WriteConcern
	ReadPreference *docdb.ReadPreference
	WriteDefaults  WriteOptions
	BulkDefaults   BulkOptions
}

// Option defines a function to configure a Collection.
type Option func(*Config)

// WithWriteConcern sets the default write concern for writes.
func WithWriteConcern(wc *docdb.WriteConcern) Option {
	return func(c *Config) {
		c.WriteConcern = wc
	}
}

// WithReadPreference sets the default read preference.
func WithReadPreference(rp *docdb.ReadPreference) Option {
	return func(c *Config) {
		c.ReadPreference = rp
	}
}

// WithWriteDefaults overrides individual write defaults. Unset fields keep the built-in value.
func WithWriteDefaults(opts WriteOptions) Option {
	return func(c *Config) {
		c.WriteDefaults = MergeWriteOptions(c.WriteDefaults, &opts, WriteOptions{})
	}
}

// WithBulkDefaults overrides individual bulk defaults. Unset fields keep the built-in value.
func WithBulkDefaults(opts BulkOptions) Option {
	return func(c *Config) {
		c.BulkDefaults = MergeBulkOptions(c.BulkDefaults, &opts)
	}
}

// Collection performs operations on a given namespace.
type Collection struct {
	driver docdb.Driver
	ns     docdb.Namespace
	cfg    Config
}

// New creates a Collection for a "database.collection" namespace.
// The driver is borrowed and must outlive the Collection.
func New(driver docdb.Driver, namespace string, opts ...Option) (*Collection, error) {
	if driver == nil {
		return nil, domainerrors.NewInvalidArgumentError("driver is required", "")
	}

	ns, err := docdb.ParseNamespace(namespace)
	if err != nil {
		return nil, domainerrors.NewInvalidArgumentError("invalid namespace", err.Error())
	}

	cfg := Config{
		WriteDefaults: DefaultWriteOptions(),
		BulkDefaults:  DefaultBulkOptions(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Collection{
		driver: driver,
		ns:     ns,
		cfg:    cfg,
	}, nil
}

// Namespace returns the fully-qualified namespace.
func (c *Collection) Namespace() docdb.Namespace {
	return c.ns
}

// DatabaseName returns the database part of the namespace.
func (c *Collection) DatabaseName() string {
	return c.ns.Database
}

// CollectionName returns the collection part of the namespace.
func (c *Collection) CollectionName() string {
	return c.ns.Collection
}

// WriteConcern returns the default write concern, nil meaning the server default.
func (c *Collection) WriteConcern() *docdb.WriteConcern {
	return c.cfg.WriteConcern
}

// ReadPreference returns the configured read preference.
//
// Read and command operations currently always select the primary and do not
// consult this value.
func (c *Collection) ReadPreference() *docdb.ReadPreference {
	return c.cfg.ReadPreference
}

// WriteOptions returns the write defaults applied to update and delete calls.
func (c *Collection) WriteOptions() WriteOptions {
	return c.cfg.WriteDefaults
}

// BulkOptions returns the defaults applied to BulkWrite and InsertMany.
func (c *Collection) BulkOptions() BulkOptions {
	return c.cfg.BulkDefaults
}
