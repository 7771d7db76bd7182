package invoices

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/odyssey-erp/billdesk/internal/shared"
)

// TaxRate is the flat GST rate applied to every invoice subtotal. It does not
// consult Item.GSTRate.
var TaxRate = decimal.NewFromFloat(0.18)

type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`
}

// PriceLines recomputes Amount on every line.
func PriceLines(lines []Line) []Line {
	out := make([]Line, len(lines))
	for i, l := range lines {
		l.Amount = decimal.NewFromFloat(l.Quantity).Mul(decimal.NewFromFloat(l.Rate)).InexactFloat64()
		out[i] = l
	}
	return out
}

// CalculateTotals sums the priced lines and applies TaxRate.
func CalculateTotals(lines []Line) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(decimal.NewFromFloat(l.Quantity).Mul(decimal.NewFromFloat(l.Rate)))
	}
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal:  subtotal.InexactFloat64(),
		TaxAmount: tax.InexactFloat64(),
		Total:     subtotal.Add(tax).InexactFloat64(),
	}
}

// NextNumber returns the next INV-YYYYMMDD-NNN invoice number for day.
func NextNumber(existing []string, day time.Time) string {
	return shared.NextDocumentNumber("INV", existing, day)
}
