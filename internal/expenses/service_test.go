package expenses

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/billdesk/internal/platform/crud"
	"github.com/odyssey-erp/billdesk/internal/shared"
)

type tickingClock struct{ now time.Time }

func (c *tickingClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func newTestService(seed ...Expense) *Service {
	clock := &tickingClock{now: wednesday}
	return NewService(NewStore(seed), crud.Options{Clock: clock.Now})
}

func sampleRequest() CreateExpenseRequest {
	return CreateExpenseRequest{
		Description:   "Flight to Delhi",
		Amount:        5400,
		Date:          day(2024, time.June, 10),
		Category:      "travel",
		Subcategory:   "Transportation",
		Vendor:        "MakeMyTrip",
		PaymentMethod: "credit_card",
	}
}

func TestCreateUpdateDelete(t *testing.T) {
	svc := newTestService(Expense{ID: 7, Description: "Seed", Amount: 1})
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(8), created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	rows, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	amount := 6100.0
	updated, err := svc.Update(ctx, created.ID, UpdateExpenseRequest{Amount: &amount})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	want := created
	want.Amount = amount
	want.UpdatedAt = updated.UpdatedAt
	assert.Equal(t, want, updated)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.True(t, errors.Is(err, shared.ErrNotFound))

	rows, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSuggestCategory(t *testing.T) {
	svc := newTestService()
	category, ok := svc.SuggestCategory("Flight to Delhi", "MakeMyTrip")
	assert.True(t, ok)
	assert.Equal(t, "travel", category)
}

func TestAggregatesThroughService(t *testing.T) {
	svc := newTestService(
		Expense{ID: 1, Category: "travel", Amount: 100, Date: day(2024, time.June, 1), IsReimbursable: true},
		Expense{ID: 2, Category: "travel", Amount: 50, Date: day(2024, time.June, 20)},
		Expense{ID: 3, Category: "meals", Amount: 20, Date: day(2024, time.July, 2)},
	)
	ctx := context.Background()

	totals, err := svc.ByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, CategoryTotal{Total: 150, Count: 2}, totals["travel"])

	june, err := svc.ByDateRange(ctx, day(2024, time.June, 1), day(2024, time.June, 30))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids(june))

	reimbursable, err := svc.Reimbursable(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(reimbursable))
}

func TestValidation(t *testing.T) {
	v := shared.NewValidator()
	assert.NoError(t, v.Struct(sampleRequest()))

	err := v.Struct(CreateExpenseRequest{Category: "groceries", Amount: -1})
	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	for _, field := range []string{"description", "amount", "date", "category", "vendor"} {
		assert.Contains(t, verr.Fields, field)
	}
}
