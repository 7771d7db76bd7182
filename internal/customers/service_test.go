package customers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/billdesk/internal/platform/crud"
	"github.com/odyssey-erp/billdesk/internal/shared"
)

var fixedNow = time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

func newTestService(seed ...Customer) *Service {
	return NewService(NewStore(seed), crud.Options{Clock: func() time.Time { return fixedNow }})
}

func sampleRequest() CreateCustomerRequest {
	return CreateCustomerRequest{
		Name:        "Asha Traders",
		Email:       "accounts@asha.example",
		Phone:       "9876543210",
		GSTIN:       "27AAPFU0939F1ZV",
		Address:     Address{Street: "12 MG Road", City: "Pune", State: "Maharashtra", Pincode: "411001", Country: "India"},
		CreditLimit: 50000,
	}
}

func TestCreateThenGet(t *testing.T) {
	svc := newTestService(Customer{ID: 4, Name: "Seed"})
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, fixedNow, created.CreatedAt)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	req := sampleRequest()
	assert.Equal(t, Customer{
		ID:          5,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		GSTIN:       req.GSTIN,
		Address:     req.Address,
		CreditLimit: req.CreditLimit,
		CreatedAt:   fixedNow,
	}, got)
}

func TestUpdateChangesOnlyNamedField(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	created, err := svc.Create(ctx, sampleRequest())
	require.NoError(t, err)

	limit := 75000.0
	updated, err := svc.Update(ctx, created.ID, UpdateCustomerRequest{CreditLimit: &limit})
	require.NoError(t, err)

	want := created
	want.CreditLimit = limit
	assert.Equal(t, want, updated)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUpdateReplacesAddressWholesale(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	created, err := svc.Create(ctx, sampleRequest())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpdateCustomerRequest{Address: &Address{City: "Mumbai"}})
	require.NoError(t, err)
	assert.Equal(t, Address{City: "Mumbai"}, updated.Address)
}

func TestDeleteThenGetFails(t *testing.T) {
	svc := newTestService(Customer{ID: 1, Name: "A"}, Customer{ID: 2, Name: "B"})
	ctx := context.Background()

	before, err := svc.List(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, 1))

	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	after, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)-1)
}

func TestMissingCustomer(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Get(ctx, 10)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	_, err = svc.Update(ctx, 10, UpdateCustomerRequest{})
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 10), shared.ErrNotFound)
}

func TestSearch(t *testing.T) {
	rows := []Customer{
		{ID: 1, Name: "Asha Traders", Email: "a@asha.example", Phone: "9876543210"},
		{ID: 2, Name: "Bharat Steel", Email: "sales@bharat.example", Phone: "9123456780"},
	}

	assert.Len(t, Search(rows, ""), 2)
	assert.Equal(t, int64(1), Search(rows, "ASHA")[0].ID)
	assert.Equal(t, int64(2), Search(rows, "91234")[0].ID)
	assert.Empty(t, Search(rows, "nobody"))
}

func TestNameOfFallsBackForDanglingReference(t *testing.T) {
	rows := []Customer{{ID: 1, Name: "Asha Traders"}}
	assert.Equal(t, "Asha Traders", NameOf(rows, 1))
	assert.Equal(t, UnknownName, NameOf(rows, 99))
}
