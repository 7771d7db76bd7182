package invoices

import "cloud.google.com/go/civil"

type LineRequest struct {
	ItemID   int64   `json:"item_id" validate:"gt=0"`
	Quantity float64 `json:"quantity" validate:"gt=0"`
	Rate     float64 `json:"rate" validate:"gte=0"`
}

// CreateInvoiceRequest leaves InvoiceNumber optional; an empty number is
// generated from the creation date.
type CreateInvoiceRequest struct {
	InvoiceNumber string        `json:"invoice_number" validate:"max=40"`
	CustomerID    int64         `json:"customer_id" validate:"gt=0"`
	Items         []LineRequest `json:"items" validate:"min=1,dive"`
	Status        Status        `json:"status" validate:"omitempty,oneof=draft pending paid overdue"`
	DueDate       civil.Date    `json:"due_date" validate:"required"`
	Notes         string        `json:"notes" validate:"max=2000"`
}

// UpdateInvoiceRequest merges non-nil fields. A non-nil Items slice replaces
// every line and recomputes the totals.
type UpdateInvoiceRequest struct {
	InvoiceNumber *string       `json:"invoice_number,omitempty" validate:"omitnil,notblank,max=40"`
	CustomerID    *int64        `json:"customer_id,omitempty" validate:"omitnil,gt=0"`
	Items         []LineRequest `json:"items,omitempty" validate:"omitnil,min=1,dive"`
	Status        *Status       `json:"status,omitempty" validate:"omitnil,oneof=draft pending paid overdue"`
	DueDate       *civil.Date   `json:"due_date,omitempty"`
	Notes         *string       `json:"notes,omitempty" validate:"omitnil,max=2000"`
}

type PreviewTotalsRequest struct {
	Items []LineRequest `json:"items" validate:"dive"`
}

func toLines(reqs []LineRequest) []Line {
	lines := make([]Line, len(reqs))
	for i, r := range reqs {
		lines[i] = Line{ItemID: r.ItemID, Quantity: r.Quantity, Rate: r.Rate}
	}
	return PriceLines(lines)
}
