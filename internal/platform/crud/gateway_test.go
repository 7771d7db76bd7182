package crud

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/billdesk/internal/platform/store"
	"github.com/odyssey-erp/billdesk/internal/shared"
)

type widget struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type recordingObserver struct {
	calls []string
	errs  []error
}

func (r *recordingObserver) ObserveOperation(entity, op string, err error, _ time.Duration) {
	r.calls = append(r.calls, entity+":"+op)
	r.errs = append(r.errs, err)
}

func newWidgetGateway(t *testing.T, opts Options, seed ...widget) *Gateway[widget] {
	t.Helper()
	coll := store.New(store.Schema[widget]{
		Kind:   "widget",
		ID:     func(w widget) int64 { return w.ID },
		WithID: func(w widget, id int64) widget { w.ID = id; return w },
	}, seed)
	return New(coll, Stamps[widget]{
		OnCreate: func(w widget, now time.Time) widget { w.CreatedAt = now; w.UpdatedAt = now; return w },
		OnUpdate: func(w widget, now time.Time) widget { w.UpdatedAt = now; return w },
	}, opts)
}

func TestGatewayLifecycle(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := created
	var mutations []Op
	obs := &recordingObserver{}
	gw := newWidgetGateway(t, Options{
		Clock:    func() time.Time { return clock },
		Observer: obs,
		Hooks: []MutationHook{func(_ context.Context, entity string, op Op) {
			assert.Equal(t, "widget", entity)
			mutations = append(mutations, op)
		}},
	}, widget{ID: 1, Name: "seed"})
	ctx := context.Background()

	w, err := gw.Create(ctx, widget{Name: "gear"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), w.ID)
	assert.Equal(t, created, w.CreatedAt)

	got, err := gw.Get(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, w, got)

	clock = created.Add(time.Hour)
	updated, err := gw.Update(ctx, w.ID, func(cur widget) widget {
		cur.Name = "cog"
		cur.ID = 77
		return cur
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.ID)
	assert.Equal(t, "cog", updated.Name)
	assert.Equal(t, created, updated.CreatedAt)
	assert.Equal(t, clock, updated.UpdatedAt)

	require.NoError(t, gw.Delete(ctx, w.ID))
	_, err = gw.Get(ctx, w.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.Equal(t, []Op{OpCreate, OpUpdate, OpDelete}, mutations)
	assert.Equal(t, []string{"widget:create", "widget:get", "widget:update", "widget:delete", "widget:get"}, obs.calls)
	assert.ErrorIs(t, obs.errs[4], shared.ErrNotFound)
}

func TestGatewayFailedMutationsDoNotNotify(t *testing.T) {
	called := false
	gw := newWidgetGateway(t, Options{Hooks: []MutationHook{func(context.Context, string, Op) { called = true }}})
	ctx := context.Background()

	_, err := gw.Update(ctx, 9, func(w widget) widget { return w })
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.ErrorIs(t, gw.Delete(ctx, 9), shared.ErrNotFound)
	assert.False(t, called)
}

func TestGatewayCancelledBeforeMutation(t *testing.T) {
	gw := newWidgetGateway(t, Options{Latency: store.Latency{Create: time.Hour}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gw.Create(ctx, widget{Name: "late"})
	assert.True(t, errors.Is(err, context.Canceled))

	rows, err := gw.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestGatewayListIsIdempotent(t *testing.T) {
	gw := newWidgetGateway(t, Options{}, widget{ID: 1, Name: "a"}, widget{ID: 2, Name: "b"})
	ctx := context.Background()

	first, err := gw.List(ctx)
	require.NoError(t, err)
	second, err := gw.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
