package payments

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

var fixedNow = time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

func newTestService(seed ...Payment) *Service {
	return NewService(NewStore(seed), crud.Options{Clock: func() time.Time { return fixedNow }})
}

func TestPaymentLifecycle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreatePaymentRequest{
		InvoiceID:   3,
		Amount:      4130,
		PaymentDate: civil.Date{Year: 2024, Month: time.June, Day: 14},
		Mode:        "bank_transfer",
		Reference:   "UTR123",
	})
	require.NoError(t, err)
	assert.Equal(t, Payment{
		ID:          1,
		InvoiceID:   3,
		Amount:      4130,
		PaymentDate: civil.Date{Year: 2024, Month: time.June, Day: 14},
		Mode:        "bank_transfer",
		Reference:   "UTR123",
		Status:      StatusCompleted,
		CreatedAt:   fixedNow,
	}, created)

	failed := StatusFailed
	updated, err := svc.Update(ctx, created.ID, UpdatePaymentRequest{Status: &failed})
	require.NoError(t, err)
	want := created
	want.Status = StatusFailed
	assert.Equal(t, want, updated)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestSearchResolvesInvoiceNumbers(t *testing.T) {
	rows := []Payment{
		{ID: 1, InvoiceID: 1, Reference: "UTR-778"},
		{ID: 2, InvoiceID: 2, Reference: "CHQ-0045"},
		{ID: 3, InvoiceID: 42, Reference: ""},
	}
	numbers := map[int64]string{1: "INV-20241201-001", 2: "INV-20241202-001"}

	assert.Len(t, Search(rows, numbers, ""), 3)
	assert.Equal(t, []Payment{rows[1]}, Search(rows, numbers, "20241202"))
	assert.Equal(t, []Payment{rows[1]}, Search(rows, numbers, "chq"))
	assert.Equal(t, []Payment{rows[2]}, Search(rows, numbers, "unknown"))
	assert.Equal(t, UnknownInvoice, InvoiceNumber(numbers, 42))
}

func TestTotalReceivedCountsCompletedOnly(t *testing.T) {
	rows := []Payment{
		{Amount: 100, Status: StatusCompleted},
		{Amount: 40, Status: StatusPending},
		{Amount: 60, Status: StatusFailed},
		{Amount: 25, Status: StatusCompleted},
	}
	assert.Equal(t, 125.0, TotalReceived(rows))
}
