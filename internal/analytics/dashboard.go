package analytics

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/odyssey-erp/billdesk/internal/customers"
	"github.com/odyssey-erp/billdesk/internal/invoices"
	"github.com/odyssey-erp/billdesk/internal/items"
)

// DashboardStats holds the headline figures of the billing dashboard.
type DashboardStats struct {
	TotalRevenue    float64 `json:"total_revenue"`
	PendingAmount   float64 `json:"pending_amount"`
	TotalInvoices   int     `json:"total_invoices"`
	TotalCustomers  int     `json:"total_customers"`
	TotalItems      int     `json:"total_items"`
	OverdueInvoices int     `json:"overdue_invoices"`
}

// SumByStatus totals invoices whose stored status equals status.
func SumByStatus(rows []invoices.Invoice, status invoices.Status) float64 {
	var total float64
	for _, inv := range rows {
		if inv.Status == status {
			total += inv.Total
		}
	}
	return total
}

func RevenueTotal(rows []invoices.Invoice) float64 {
	return SumByStatus(rows, invoices.StatusPaid)
}

func PendingTotal(rows []invoices.Invoice) float64 {
	return SumByStatus(rows, invoices.StatusPending)
}

// IsOverdue reports whether a pending invoice is due before now's calendar
// date in now's location. An invoice due today is not overdue. The stored
// status is never changed.
func IsOverdue(inv invoices.Invoice, now time.Time) bool {
	if inv.Status != invoices.StatusPending || !inv.DueDate.IsValid() {
		return false
	}
	return inv.DueDate.Before(civil.DateOf(now))
}

func CountOverdue(rows []invoices.Invoice, now time.Time) int {
	n := 0
	for _, inv := range rows {
		if IsOverdue(inv, now) {
			n++
		}
	}
	return n
}

// OverdueInvoices returns the invoices for which IsOverdue holds.
func OverdueInvoices(rows []invoices.Invoice, now time.Time) []invoices.Invoice {
	out := make([]invoices.Invoice, 0)
	for _, inv := range rows {
		if IsOverdue(inv, now) {
			out = append(out, inv)
		}
	}
	return out
}

func BuildDashboard(invs []invoices.Invoice, custs []customers.Customer, its []items.Item, now time.Time) DashboardStats {
	return DashboardStats{
		TotalRevenue:    RevenueTotal(invs),
		PendingAmount:   PendingTotal(invs),
		TotalInvoices:   len(invs),
		TotalCustomers:  len(custs),
		TotalItems:      len(its),
		OverdueInvoices: CountOverdue(invs, now),
	}
}
