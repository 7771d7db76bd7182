package items

import "time"

// Kind labels item records in errors and metrics.
const Kind = "item"

// Item is a sellable product or service. GSTRate is the item's own configured
// rate and is independent from the flat rate applied on invoices.
type Item struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	HSNCode       string    `json:"hsn_code"`
	Price         float64   `json:"price"`
	GSTRate       float64   `json:"gst_rate"`
	Unit          string    `json:"unit"`
	StockQuantity float64   `json:"stock_quantity"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}
