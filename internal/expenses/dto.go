package expenses

import "cloud.google.com/go/civil"

type CreateExpenseRequest struct {
	Description    string     `json:"description" validate:"notblank,max=500"`
	Amount         float64    `json:"amount" validate:"gt=0"`
	Date           civil.Date `json:"date" validate:"required"`
	Category       string     `json:"category" validate:"required,oneof=office_supplies travel utilities marketing meals professional maintenance miscellaneous"`
	Subcategory    string     `json:"subcategory" validate:"max=100"`
	Vendor         string     `json:"vendor" validate:"notblank,max=200"`
	PaymentMethod  string     `json:"payment_method" validate:"omitempty,oneof=cash credit_card debit_card bank_transfer cheque digital_wallet"`
	IsReimbursable bool       `json:"is_reimbursable"`
	ReceiptURL     string     `json:"receipt_url" validate:"omitempty,url"`
	Notes          string     `json:"notes" validate:"max=2000"`
}

type UpdateExpenseRequest struct {
	Description    *string     `json:"description,omitempty" validate:"omitnil,notblank,max=500"`
	Amount         *float64    `json:"amount,omitempty" validate:"omitnil,gt=0"`
	Date           *civil.Date `json:"date,omitempty"`
	Category       *string     `json:"category,omitempty" validate:"omitnil,oneof=office_supplies travel utilities marketing meals professional maintenance miscellaneous"`
	Subcategory    *string     `json:"subcategory,omitempty" validate:"omitnil,max=100"`
	Vendor         *string     `json:"vendor,omitempty" validate:"omitnil,notblank,max=200"`
	PaymentMethod  *string     `json:"payment_method,omitempty" validate:"omitnil,oneof=cash credit_card debit_card bank_transfer cheque digital_wallet"`
	IsReimbursable *bool       `json:"is_reimbursable,omitempty"`
	ReceiptURL     *string     `json:"receipt_url,omitempty" validate:"omitnil,omitempty,url"`
	Notes          *string     `json:"notes,omitempty" validate:"omitnil,max=2000"`
}

type SuggestCategoryRequest struct {
	Description string `json:"description"`
	Vendor      string `json:"vendor"`
}

type SuggestCategoryResponse struct {
	Category      string   `json:"category"`
	Matched       bool     `json:"matched"`
	Subcategories []string `json:"subcategories"`
}

// Catalog describes the accepted category, subcategory and payment method
// values.
type Catalog struct {
	Categories     []string            `json:"categories"`
	Subcategories  map[string][]string `json:"subcategories"`
	PaymentMethods []string            `json:"payment_methods"`
}
