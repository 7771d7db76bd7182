package customers

import "time"

// Kind labels customer records in errors and metrics.
const Kind = "customer"

// UnknownName is shown in place of a customer that no longer exists.
const UnknownName = "Unknown Customer"

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
}

type Customer struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	GSTIN       string    `json:"gstin,omitempty"`
	Address     Address   `json:"address"`
	CreditLimit float64   `json:"credit_limit"`
	CreatedAt   time.Time `json:"created_at"`
}
