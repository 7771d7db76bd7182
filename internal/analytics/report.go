package analytics

import (
	"fmt"
	"time"

	"github.com/odyssey-erp/billdesk/internal/customers"
	"github.com/odyssey-erp/billdesk/internal/invoices"
	"github.com/odyssey-erp/billdesk/internal/shared"
)

type Period string

const (
	PeriodCurrentMonth Period = "current-month"
	PeriodLastMonth    Period = "last-month"
	PeriodCurrentYear  Period = "current-year"
	PeriodAllTime      Period = "all-time"
)

const (
	topCustomerLimit   = 5
	recentInvoiceLimit = 5
)

// ParsePeriod validates a report period. An empty value selects the current
// month.
func ParsePeriod(raw string) (Period, error) {
	switch p := Period(raw); p {
	case "":
		return PeriodCurrentMonth, nil
	case PeriodCurrentMonth, PeriodLastMonth, PeriodCurrentYear, PeriodAllTime:
		return p, nil
	default:
		return "", &shared.ValidationError{Fields: map[string]string{
			"period": fmt.Sprintf("must be one of: %s %s %s %s", PeriodCurrentMonth, PeriodLastMonth, PeriodCurrentYear, PeriodAllTime),
		}}
	}
}

// InPeriod reports whether created falls inside p, evaluated in now's location.
func InPeriod(created time.Time, p Period, now time.Time) bool {
	created = created.In(now.Location())
	switch p {
	case PeriodCurrentMonth:
		return created.Year() == now.Year() && created.Month() == now.Month()
	case PeriodLastMonth:
		last := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
		return created.Year() == last.Year() && created.Month() == last.Month()
	case PeriodCurrentYear:
		return created.Year() == now.Year()
	default:
		return true
	}
}

type ReportCustomer struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Sales float64 `json:"sales"`
}

type ReportInvoice struct {
	ID            int64           `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerName  string          `json:"customer_name"`
	Total         float64         `json:"total"`
	Status        invoices.Status `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Report is the GST sales summary for one period. Paid, pending and overdue
// figures use the stored invoice status.
type Report struct {
	Period         Period           `json:"period"`
	TotalSales     float64          `json:"total_sales"`
	TotalTax       float64          `json:"total_tax"`
	TaxableAmount  float64          `json:"taxable_amount"`
	TotalInvoices  int              `json:"total_invoices"`
	PaidAmount     float64          `json:"paid_amount"`
	PendingAmount  float64          `json:"pending_amount"`
	OverdueAmount  float64          `json:"overdue_amount"`
	PaidCount      int              `json:"paid_count"`
	PendingCount   int              `json:"pending_count"`
	OverdueCount   int              `json:"overdue_count"`
	TopCustomers   []ReportCustomer `json:"top_customers"`
	RecentInvoices []ReportInvoice  `json:"recent_invoices"`
}

// CustomerName resolves id against custs, falling back to
// customers.UnknownName.
func CustomerName(custs []customers.Customer, id int64) string {
	return customers.NameOf(custs, id)
}

// BuildReport filters invoices by creation date into p and summarises them.
// TopCustomers lists the first customers in store order with their sales in
// the period; RecentInvoices lists the last invoices of the period, newest
// first.
func BuildReport(invs []invoices.Invoice, custs []customers.Customer, p Period, now time.Time) Report {
	report := Report{Period: p}
	sales := make(map[int64]float64)
	filtered := make([]invoices.Invoice, 0, len(invs))
	for _, inv := range invs {
		if !InPeriod(inv.CreatedAt, p, now) {
			continue
		}
		filtered = append(filtered, inv)
		sales[inv.CustomerID] += inv.Total
		report.TotalSales += inv.Total
		report.TotalTax += inv.TaxAmount
		switch inv.Status {
		case invoices.StatusPaid:
			report.PaidAmount += inv.Total
			report.PaidCount++
		case invoices.StatusPending:
			report.PendingAmount += inv.Total
			report.PendingCount++
		case invoices.StatusOverdue:
			report.OverdueAmount += inv.Total
			report.OverdueCount++
		}
	}
	report.TotalInvoices = len(filtered)
	report.TaxableAmount = report.TotalSales - report.TotalTax

	report.TopCustomers = make([]ReportCustomer, 0, topCustomerLimit)
	for _, c := range custs {
		if len(report.TopCustomers) == topCustomerLimit {
			break
		}
		report.TopCustomers = append(report.TopCustomers, ReportCustomer{ID: c.ID, Name: c.Name, Email: c.Email, Sales: sales[c.ID]})
	}

	report.RecentInvoices = make([]ReportInvoice, 0, recentInvoiceLimit)
	for i := len(filtered) - 1; i >= 0 && len(report.RecentInvoices) < recentInvoiceLimit; i-- {
		inv := filtered[i]
		report.RecentInvoices = append(report.RecentInvoices, ReportInvoice{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			CustomerName:  CustomerName(custs, inv.CustomerID),
			Total:         inv.Total,
			Status:        inv.Status,
			CreatedAt:     inv.CreatedAt,
		})
	}
	return report
}
