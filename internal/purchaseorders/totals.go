package purchaseorders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/odyssey-erp/billdesk/internal/invoices"
	"github.com/odyssey-erp/billdesk/internal/shared"
)

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// PriceLineItems recomputes Total on every line.
func PriceLineItems(lines []LineItem) []LineItem {
	out := make([]LineItem, len(lines))
	for i, l := range lines {
		l.Total = decimal.NewFromFloat(l.Quantity).Mul(decimal.NewFromFloat(l.UnitPrice)).InexactFloat64()
		out[i] = l
	}
	return out
}

// CalculateTotals applies the invoice tax rate to the order subtotal.
func CalculateTotals(lines []LineItem) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(decimal.NewFromFloat(l.Quantity).Mul(decimal.NewFromFloat(l.UnitPrice)))
	}
	tax := subtotal.Mul(invoices.TaxRate)
	return Totals{
		Subtotal: subtotal.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Total:    subtotal.Add(tax).InexactFloat64(),
	}
}

// NextNumber returns the next PO-YYYYMMDD-NNN number for day.
func NextNumber(existing []string, day time.Time) string {
	return shared.NextDocumentNumber("PO", existing, day)
}
