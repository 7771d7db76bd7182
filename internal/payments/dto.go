package payments

import "cloud.google.com/go/civil"

type CreatePaymentRequest struct {
	InvoiceID   int64      `json:"invoice_id" validate:"gt=0"`
	Amount      float64    `json:"amount" validate:"gt=0"`
	PaymentDate civil.Date `json:"payment_date" validate:"required"`
	Mode        string     `json:"mode" validate:"notblank,max=40"`
	Reference   string     `json:"reference" validate:"max=100"`
	Status      Status     `json:"status" validate:"omitempty,oneof=completed pending failed"`
}

type UpdatePaymentRequest struct {
	InvoiceID   *int64      `json:"invoice_id,omitempty" validate:"omitnil,gt=0"`
	Amount      *float64    `json:"amount,omitempty" validate:"omitnil,gt=0"`
	PaymentDate *civil.Date `json:"payment_date,omitempty"`
	Mode        *string     `json:"mode,omitempty" validate:"omitnil,notblank,max=40"`
	Reference   *string     `json:"reference,omitempty" validate:"omitnil,max=100"`
	Status      *Status     `json:"status,omitempty" validate:"omitnil,oneof=completed pending failed"`
}
