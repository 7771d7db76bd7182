package export

import (
	"encoding/csv"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/odyssey-erp/billdesk/internal/analytics"
)

var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount with Indian digit grouping and two decimals.
func FormatINR(amount float64) string {
	return inr.Sprintf("%.2f", amount)
}

// WriteReportCSV serialises the GST sales summary followed by its recent
// invoices.
func WriteReportCSV(w io.Writer, report analytics.Report) error {
	writer := csv.NewWriter(w)

	records := [][]string{
		{"Metric", "Value"},
		{"Period", string(report.Period)},
		{"Total Sales", FormatINR(report.TotalSales)},
		{"Taxable Amount", FormatINR(report.TaxableAmount)},
		{"GST Collected", FormatINR(report.TotalTax)},
		{"Invoices", inr.Sprint(report.TotalInvoices)},
		{"Paid", FormatINR(report.PaidAmount)},
		{"Pending", FormatINR(report.PendingAmount)},
		{"Overdue", FormatINR(report.OverdueAmount)},
		{},
		{"Invoice", "Customer", "Status", "Total"},
	}
	for _, inv := range report.RecentInvoices {
		records = append(records, []string{inv.InvoiceNumber, inv.CustomerName, string(inv.Status), FormatINR(inv.Total)})
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
