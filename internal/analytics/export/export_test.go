package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/odyssey-erp/billdesk/internal/analytics"
)

func TestWriteReportCSV(t *testing.T) {
	report := analytics.Report{
		Period:        analytics.PeriodCurrentMonth,
		TotalSales:    4130,
		TotalTax:      630,
		TaxableAmount: 3500,
		TotalInvoices: 1,
		PaidAmount:    4130,
		RecentInvoices: []analytics.ReportInvoice{
			{InvoiceNumber: "INV-20240601-001", CustomerName: "Asha Traders", Status: "paid", Total: 4130},
		},
	}
	buf := &bytes.Buffer{}
	if err := WriteReportCSV(buf, report); err != nil {
		t.Fatalf("report csv error: %v", err)
	}
	reader := csv.NewReader(bytes.NewReader(buf.Bytes()))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("csv read error: %v", err)
	}
	if len(records) != 11 {
		t.Fatalf("expected 11 rows, got %d", len(records))
	}
	if records[2][1] != "4,130.00" {
		t.Fatalf("unexpected total sales cell %q", records[2][1])
	}
	last := records[len(records)-1]
	if last[0] != "INV-20240601-001" || last[1] != "Asha Traders" {
		t.Fatalf("unexpected invoice row %v", last)
	}
}
