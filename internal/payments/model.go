package payments

import (
	"time"

	"cloud.google.com/go/civil"
)

// Kind labels payment records in errors and metrics.
const Kind = "payment"

// UnknownInvoice is shown for payments whose invoice no longer exists.
const UnknownInvoice = "Unknown Invoice"

type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusFailed    Status = "failed"
)

// Payment records money received against an invoice. InvoiceID is not checked
// and may dangle.
type Payment struct {
	ID          int64      `json:"id"`
	InvoiceID   int64      `json:"invoice_id"`
	Amount      float64    `json:"amount"`
	PaymentDate civil.Date `json:"payment_date"`
	Mode        string     `json:"mode"`
	Reference   string     `json:"reference"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}
