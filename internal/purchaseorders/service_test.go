package purchaseorders

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/billdesk/internal/platform/crud"
	"github.com/odyssey-erp/billdesk/internal/shared"
)

type steppingClock struct{ now time.Time }

func (c *steppingClock) Now() time.Time {
	c.now = c.now.Add(time.Minute)
	return c.now
}

func newTestService(seed ...PurchaseOrder) (*Service, *steppingClock) {
	clock := &steppingClock{now: time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)}
	return NewService(NewStore(seed), crud.Options{Clock: clock.Now}), clock
}

func sampleRequest() CreatePurchaseOrderRequest {
	return CreatePurchaseOrderRequest{
		Supplier:      "Tata Steel",
		SupplierEmail: "sales@tatasteel.example",
		OrderDate:     civil.Date{Year: 2024, Month: time.March, Day: 10},
		ExpectedDate:  civil.Date{Year: 2024, Month: time.March, Day: 20},
		LineItems: []LineItemRequest{
			{ItemID: 1, ItemName: "Steel Rod", Quantity: 10, UnitPrice: 250},
		},
	}
}

func TestCreateStampsBothTimestamps(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "PO-20240310-001", created.PONumber)
	assert.Equal(t, StatusDraft, created.Status)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.Equal(t, 2500.0, created.LineItems[0].Total)
	assert.Equal(t, 2500.0, created.Subtotal)
	assert.Equal(t, 450.0, created.Tax)
	assert.Equal(t, 2950.0, created.Total)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestSuppliedNumberDoesNotWaitForNumbering(t *testing.T) {
	svc, _ := newTestService()
	req := sampleRequest()
	req.PONumber = "PO-MANUAL-3"

	svc.numbering.Lock()
	defer svc.numbering.Unlock()

	done := make(chan error, 1)
	go func() {
		po, err := svc.Create(context.Background(), req)
		if err == nil && po.PONumber != "PO-MANUAL-3" {
			err = errors.New("supplied number replaced: " + po.PONumber)
		}
		done <- err
	}()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("create with a supplied number blocked on number generation")
	}
}

func TestUpdateRefreshesUpdatedAtOnly(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	created, err := svc.Create(ctx, sampleRequest())
	require.NoError(t, err)

	approved := StatusApproved
	updated, err := svc.Update(ctx, created.ID, UpdatePurchaseOrderRequest{Status: &approved})
	require.NoError(t, err)

	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	want := created
	want.Status = StatusApproved
	want.UpdatedAt = updated.UpdatedAt
	assert.Equal(t, want, updated)
}

func TestUpdateMissing(t *testing.T) {
	svc, _ := newTestService()
	notes := "x"
	_, err := svc.Update(context.Background(), 42, UpdatePurchaseOrderRequest{Notes: &notes})
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestByStatusAndSupplier(t *testing.T) {
	svc, _ := newTestService(
		PurchaseOrder{ID: 1, PONumber: "PO-1", Supplier: "Tata Steel", Status: StatusPending},
		PurchaseOrder{ID: 2, PONumber: "PO-2", Supplier: "Jindal Steel", Status: StatusApproved},
		PurchaseOrder{ID: 3, PONumber: "PO-3", Supplier: "Asian Paints", Status: StatusPending},
	)
	ctx := context.Background()

	pending, err := svc.ByStatus(ctx, StatusPending)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids(pending))

	steel, err := svc.BySupplier(ctx, "STEEL")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids(steel))
}

func TestApplySortsAndSearches(t *testing.T) {
	rows := []PurchaseOrder{
		{ID: 1, PONumber: "PO-B", Supplier: "tata", Description: "rods", Total: 300, OrderDate: civil.Date{Year: 2024, Month: 3, Day: 2}},
		{ID: 2, PONumber: "PO-A", Supplier: "Asian", Description: "paint", Total: 100, OrderDate: civil.Date{Year: 2024, Month: 1, Day: 5}},
		{ID: 3, PONumber: "PO-C", Supplier: "Bosch", Description: "drills", Total: 200, OrderDate: civil.Date{Year: 2024, Month: 2, Day: 9}},
	}

	assert.Equal(t, []int64{2, 3, 1}, ids(Apply(rows, Query{Sort: "total"})))
	assert.Equal(t, []int64{1, 3, 2}, ids(Apply(rows, Query{Sort: "total", Desc: true})))
	assert.Equal(t, []int64{2, 3, 1}, ids(Apply(rows, Query{Sort: "supplier"})))
	assert.Equal(t, []int64{2, 3, 1}, ids(Apply(rows, Query{Sort: "order_date"})))
	assert.Equal(t, []int64{1, 2, 3}, ids(Apply(rows, Query{Sort: "bogus"})))
	assert.Equal(t, []int64{3}, ids(Apply(rows, Query{Search: "DRILL"})))
	assert.Equal(t, []int64{2}, ids(Apply(rows, Query{Search: "po-a"})))
}

func TestCalculateTotalsLaw(t *testing.T) {
	totals := CalculateTotals([]LineItem{{Quantity: 3, UnitPrice: 19.99}, {Quantity: 0.25, UnitPrice: 87.4}})
	assert.InDelta(t, totals.Subtotal+totals.Tax, totals.Total, 1e-9)
	assert.InDelta(t, totals.Subtotal*0.18, totals.Tax, 1e-9)
}

func ids(rows []PurchaseOrder) []int64 {
	out := make([]int64, len(rows))
	for i, po := range rows {
		out[i] = po.ID
	}
	return out
}
