package invoices

import (
	"time"

	"cloud.google.com/go/civil"
)

// Kind labels invoice records in errors and metrics.
const Kind = "invoice"

type Status string

const (
	StatusDraft   Status = "draft"
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// Line is one billed item. Amount is always Quantity * Rate.
type Line struct {
	ItemID   int64   `json:"item_id"`
	Quantity float64 `json:"quantity"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
}

// Invoice is a bill issued to a customer. CustomerID and Line.ItemID are not
// checked against their collections and may dangle after deletes.
type Invoice struct {
	ID            int64      `json:"id"`
	InvoiceNumber string     `json:"invoice_number"`
	CustomerID    int64      `json:"customer_id"`
	Items         []Line     `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	TaxAmount     float64    `json:"tax_amount"`
	Total         float64    `json:"total"`
	Status        Status     `json:"status"`
	DueDate       civil.Date `json:"due_date"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
}

func cloneInvoice(inv Invoice) Invoice {
	if inv.Items != nil {
		inv.Items = append([]Line(nil), inv.Items...)
	}
	return inv
}
