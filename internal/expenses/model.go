package expenses

import (
	"time"

	"cloud.google.com/go/civil"
)

// Kind labels expense records in errors and metrics.
const Kind = "expense"

// Uncategorized groups expenses with an empty category in totals.
const Uncategorized = "uncategorized"

type Expense struct {
	ID             int64      `json:"id"`
	Description    string     `json:"description"`
	Amount         float64    `json:"amount"`
	Date           civil.Date `json:"date"`
	Category       string     `json:"category"`
	Subcategory    string     `json:"subcategory"`
	Vendor         string     `json:"vendor"`
	PaymentMethod  string     `json:"payment_method"`
	IsReimbursable bool       `json:"is_reimbursable"`
	ReceiptURL     string     `json:"receipt_url"`
	Notes          string     `json:"notes"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// CategoryTotal accumulates the amount and number of expenses in a category.
type CategoryTotal struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type CategorySummary struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// Range selects expenses dated on or after a calendar boundary relative to
// today.
type Range string

const (
	RangeAll     Range = "all"
	RangeToday   Range = "today"
	RangeWeek    Range = "week"
	RangeMonth   Range = "month"
	RangeQuarter Range = "quarter"
	RangeYear    Range = "year"
)
