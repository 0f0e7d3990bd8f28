// Package schemadoc derives human-readable documentation of the garden
// database directly from the backing store's catalog, instead of
// hand-maintained descriptions that drift out of date.
//
// The generated document is the instruction sheet handed to tool callers:
// a static behavioral preamble (coordinate system, write patterns, user
// isolation) followed by one section per domain table listing columns,
// types, nullability, defaults, foreign keys, and allowed enum values
// decoded from check constraints.
//
// Introspection runs at most meaningfully once per process: the first
// successful build is cached for the process lifetime. Schema changes
// are picked up by the next process — there is no invalidation or TTL.
package schemadoc

import (
	"context"
	"log"
	"sync/atomic"
)

// DomainTables is the fixed set of documented tables, in render order.
var DomainTables = []string{"gardens", "plantings", "seedlings", "harvests", "notes"}

// --- Catalog row types ---
//
// The three introspection queries return strongly typed rows rather
// than loosely shaped maps; the store is responsible for mapping its
// catalog metadata into these.

// Column describes one table column.
type Column struct {
	Table    string
	Name     string
	DataType string
	Nullable bool
	Default  string
}

// ForeignKey describes a foreign-key constraint on a single column.
type ForeignKey struct {
	Table     string
	Column    string
	RefTable  string
	RefColumn string
}

// Check describes a check constraint tied to a single column. The
// Definition is the constraint's textual expression as stored by the
// catalog, possibly wrapped in "CHECK (...)".
type Check struct {
	Table      string
	Column     string
	Definition string
}

// Catalog is the read side of the backing store's structural metadata.
type Catalog interface {
	Columns(ctx context.Context, tables []string) ([]Column, error)
	ForeignKeys(ctx context.Context, tables []string) ([]ForeignKey, error)
	Checks(ctx context.Context, tables []string) ([]Check, error)
}

// --- Cache ---

// Cache holds the process-lifetime documentation string. Concurrent
// first calls may race to build it; the first successful build wins via
// compare-and-swap and every later call observes the cached value.
// Duplicate computation is benign.
type Cache struct {
	catalog Catalog
	doc     atomic.Pointer[string]
}

// NewCache creates an empty cache over the given catalog.
func NewCache(catalog Catalog) *Cache {
	return &Cache{catalog: catalog}
}

// Get returns the documentation string. On the first call it introspects
// the catalog and renders the full document; if any catalog query fails,
// it returns the static preamble alone for this call, caches nothing,
// and retries introspection next time. Get never returns an error.
func (c *Cache) Get(ctx context.Context) string {
	if doc := c.doc.Load(); doc != nil {
		return *doc
	}

	doc, err := c.build(ctx)
	if err != nil {
		log.Printf("WARNING: schema introspection unavailable, serving static guide: %v", err)
		return Preamble
	}

	c.doc.CompareAndSwap(nil, &doc)
	return *c.doc.Load()
}

// build runs the three catalog queries and renders the document.
// A partial result is never rendered: any failure aborts the build.
func (c *Cache) build(ctx context.Context) (string, error) {
	columns, err := c.catalog.Columns(ctx, DomainTables)
	if err != nil {
		return "", err
	}
	fks, err := c.catalog.ForeignKeys(ctx, DomainTables)
	if err != nil {
		return "", err
	}
	checks, err := c.catalog.Checks(ctx, DomainTables)
	if err != nil {
		return "", err
	}
	return render(columns, fks, checks), nil
}
