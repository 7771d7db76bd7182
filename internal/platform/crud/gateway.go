// Package crud implements the uniform list/get/create/update/delete contract
// shared by every entity kind on top of a store.Collection.
package crud

import (
	"context"
	"time"

	"github.com/odyssey-erp/billdesk/internal/platform/store"
)

// Op names a gateway operation.
type Op string

const (
	OpList   Op = "list"
	OpGet    Op = "get"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Observer receives the outcome of every gateway call.
type Observer interface {
	ObserveOperation(entity string, op string, err error, elapsed time.Duration)
}

// MutationHook runs after a successful create, update or delete.
type MutationHook func(ctx context.Context, entity string, op Op)

// Options configures cross-cutting gateway behaviour.
type Options struct {
	Latency  store.Latency
	Clock    func() time.Time
	Observer Observer
	Hooks    []MutationHook
}

// Stamps applies entity specific timestamps. Either func may be nil.
type Stamps[T any] struct {
	OnCreate func(T, time.Time) T
	OnUpdate func(T, time.Time) T
}

// Gateway exposes the CRUD contract for a single entity kind.
type Gateway[T any] struct {
	coll   *store.Collection[T]
	stamps Stamps[T]
	opts   Options
}

// New wires a Gateway over coll.
func New[T any](coll *store.Collection[T], stamps Stamps[T], opts Options) *Gateway[T] {
	if opts.Clock == nil {
		opts.Clock = func() time.Time { return time.Now().UTC() }
	}
	return &Gateway[T]{coll: coll, stamps: stamps, opts: opts}
}

// Kind returns the entity kind served by this gateway.
func (g *Gateway[T]) Kind() string {
	return g.coll.Kind()
}

// List returns every record in insertion order.
func (g *Gateway[T]) List(ctx context.Context) (rows []T, err error) {
	defer g.observe(OpList, time.Now(), &err)
	if err = store.Wait(ctx, g.opts.Latency.List); err != nil {
		return nil, err
	}
	return g.coll.All(), nil
}

// Get returns the record with the given id.
func (g *Gateway[T]) Get(ctx context.Context, id int64) (row T, err error) {
	defer g.observe(OpGet, time.Now(), &err)
	if err = store.Wait(ctx, g.opts.Latency.Get); err != nil {
		return row, err
	}
	return g.coll.Find(id)
}

// Create assigns an id, stamps creation time and appends row.
func (g *Gateway[T]) Create(ctx context.Context, row T) (created T, err error) {
	defer g.observe(OpCreate, time.Now(), &err)
	if err = store.Wait(ctx, g.opts.Latency.Create); err != nil {
		return created, err
	}
	if g.stamps.OnCreate != nil {
		row = g.stamps.OnCreate(row, g.opts.Clock())
	}
	created = g.coll.Insert(row)
	g.notify(ctx, OpCreate)
	return created, nil
}

// Update merges changes over the stored record through apply. The record id is
// preserved regardless of what apply returns.
func (g *Gateway[T]) Update(ctx context.Context, id int64, apply func(T) T) (updated T, err error) {
	defer g.observe(OpUpdate, time.Now(), &err)
	if err = store.Wait(ctx, g.opts.Latency.Update); err != nil {
		return updated, err
	}
	now := g.opts.Clock()
	updated, err = g.coll.Replace(id, func(current T) T {
		next := apply(current)
		if g.stamps.OnUpdate != nil {
			next = g.stamps.OnUpdate(next, now)
		}
		return next
	})
	if err != nil {
		return updated, err
	}
	g.notify(ctx, OpUpdate)
	return updated, nil
}

// Delete removes the record. Dependent records in other collections are left
// untouched.
func (g *Gateway[T]) Delete(ctx context.Context, id int64) (err error) {
	defer g.observe(OpDelete, time.Now(), &err)
	if err = store.Wait(ctx, g.opts.Latency.Delete); err != nil {
		return err
	}
	if err = g.coll.Remove(id); err != nil {
		return err
	}
	g.notify(ctx, OpDelete)
	return nil
}

func (g *Gateway[T]) notify(ctx context.Context, op Op) {
	for _, hook := range g.opts.Hooks {
		if hook != nil {
			hook(ctx, g.coll.Kind(), op)
		}
	}
}

func (g *Gateway[T]) observe(op Op, start time.Time, err *error) {
	if g.opts.Observer == nil {
		return
	}
	g.opts.Observer.ObserveOperation(g.coll.Kind(), string(op), *err, time.Since(start))
}
