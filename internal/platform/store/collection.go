// Package store holds the in-memory ordered collections backing each entity kind.
package store

import (
	"sync"

	"github.com/odyssey-erp/billdesk/internal/shared"
)

// Schema describes how a Collection reads and writes the identity of T and how
// it produces independent copies.
type Schema[T any] struct {
	Kind   string
	ID     func(T) int64
	WithID func(T, int64) T
	Clone  func(T) T
}

// Collection is the authoritative ordered sequence of records for one entity
// kind. All reads return clones; all writes store clones.
type Collection[T any] struct {
	mu     sync.RWMutex
	schema Schema[T]
	rows   []T
	lastID int64
}

// New seeds a Collection. The id counter starts above the highest seeded id and
// only moves forward, so ids freed by Remove are never handed out again.
func New[T any](schema Schema[T], seed []T) *Collection[T] {
	if schema.Clone == nil {
		schema.Clone = func(v T) T { return v }
	}
	c := &Collection[T]{schema: schema, rows: make([]T, 0, len(seed))}
	for _, row := range seed {
		if id := schema.ID(row); id > c.lastID {
			c.lastID = id
		}
		c.rows = append(c.rows, schema.Clone(row))
	}
	return c
}

// Kind returns the entity kind label used in errors and metrics.
func (c *Collection[T]) Kind() string {
	return c.schema.Kind
}

// Len reports the number of live records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rows)
}

// All returns copies of every record in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.rows))
	for i, row := range c.rows {
		out[i] = c.schema.Clone(row)
	}
	return out
}

// Find returns a copy of the record with the given id.
func (c *Collection[T]) Find(id int64) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	idx := c.indexOf(id)
	if idx < 0 {
		var zero T
		return zero, shared.NotFound(c.schema.Kind, id)
	}
	return c.schema.Clone(c.rows[idx]), nil
}

// Insert assigns the next id to row, appends it and returns the stored copy.
func (c *Collection[T]) Insert(row T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastID++
	stored := c.schema.Clone(c.schema.WithID(row, c.lastID))
	c.rows = append(c.rows, stored)
	return c.schema.Clone(stored)
}

// Replace applies fn to a copy of the record and stores the result in place.
// The original id is re-stamped after fn runs, so fn cannot change identity.
func (c *Collection[T]) Replace(id int64, fn func(T) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(id)
	if idx < 0 {
		var zero T
		return zero, shared.NotFound(c.schema.Kind, id)
	}
	next := c.schema.WithID(fn(c.schema.Clone(c.rows[idx])), id)
	c.rows[idx] = c.schema.Clone(next)
	return c.schema.Clone(next), nil
}

// Remove deletes the record with the given id, preserving the order of the rest.
func (c *Collection[T]) Remove(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return shared.NotFound(c.schema.Kind, id)
	}
	c.rows = append(c.rows[:idx], c.rows[idx+1:]...)
	return nil
}

// indexOf is a linear scan; collections are small. Callers hold the lock.
func (c *Collection[T]) indexOf(id int64) int {
	for i, row := range c.rows {
		if c.schema.ID(row) == id {
			return i
		}
	}
	return -1
}
