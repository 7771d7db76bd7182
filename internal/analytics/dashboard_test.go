package analytics

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"

	"github.com/odyssey-erp/billdesk/internal/customers"
	"github.com/odyssey-erp/billdesk/internal/expenses"
	"github.com/odyssey-erp/billdesk/internal/invoices"
	"github.com/odyssey-erp/billdesk/internal/items"
)

func TestRevenueAndPending(t *testing.T) {
	rows := []invoices.Invoice{
		{Total: 100, Status: invoices.StatusPaid},
		{Total: 50, Status: invoices.StatusPending},
		{Total: 25, Status: invoices.StatusPaid},
	}
	assert.Equal(t, 125.0, RevenueTotal(rows))
	assert.Equal(t, 50.0, PendingTotal(rows))
	assert.Equal(t, 0.0, SumByStatus(rows, invoices.StatusDraft))
	assert.Equal(t, 0.0, RevenueTotal(nil))
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 30, 0, 0, time.UTC)
	today := civil.DateOf(now)
	pending := func(due civil.Date) invoices.Invoice {
		return invoices.Invoice{Status: invoices.StatusPending, DueDate: due}
	}

	assert.True(t, IsOverdue(pending(today.AddDays(-1)), now))
	assert.False(t, IsOverdue(pending(today), now))
	assert.False(t, IsOverdue(pending(today.AddDays(1)), now))

	paid := pending(today.AddDays(-30))
	paid.Status = invoices.StatusPaid
	assert.False(t, IsOverdue(paid, now))

	stored := pending(today.AddDays(-30))
	stored.Status = invoices.StatusOverdue
	assert.False(t, IsOverdue(stored, now))

	assert.False(t, IsOverdue(invoices.Invoice{Status: invoices.StatusPending}, now))
}

func TestIsOverdueUsesClockLocation(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)
	// 20:00 UTC on the 14th is already the 15th in IST.
	now := time.Date(2024, time.June, 14, 20, 0, 0, 0, time.UTC).In(kolkata)
	inv := invoices.Invoice{Status: invoices.StatusPending, DueDate: civil.Date{Year: 2024, Month: time.June, Day: 14}}
	assert.True(t, IsOverdue(inv, now))
	assert.False(t, IsOverdue(inv, now.UTC()))
}

func TestBuildDashboard(t *testing.T) {
	now := time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)
	invs := []invoices.Invoice{
		{ID: 1, Total: 100, Status: invoices.StatusPaid},
		{ID: 2, Total: 50, Status: invoices.StatusPending, DueDate: civil.Date{Year: 2024, Month: time.June, Day: 1}},
		{ID: 3, Total: 25, Status: invoices.StatusPaid},
		{ID: 4, Total: 70, Status: invoices.StatusPending, DueDate: civil.Date{Year: 2024, Month: time.July, Day: 1}},
	}
	stats := BuildDashboard(invs, make([]customers.Customer, 3), make([]items.Item, 7), now)
	assert.Equal(t, DashboardStats{
		TotalRevenue:    125,
		PendingAmount:   120,
		TotalInvoices:   4,
		TotalCustomers:  3,
		TotalItems:      7,
		OverdueInvoices: 1,
	}, stats)
	assert.Equal(t, "pending", string(invs[1].Status))
}

func TestSummarizeExpenses(t *testing.T) {
	summary := SummarizeExpenses([]expenses.Expense{
		{Amount: 100, Category: "travel", IsReimbursable: true},
		{Amount: 30, Category: "meals"},
		{Amount: 20},
	})
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 150.0, summary.Total)
	assert.Equal(t, 100.0, summary.ReimbursableTotal)
	assert.Equal(t, "travel", summary.ByCategory[0].Category)
	assert.Equal(t, expenses.Uncategorized, summary.ByCategory[2].Category)
}
