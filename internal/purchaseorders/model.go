package purchaseorders

import (
	"time"

	"cloud.google.com/go/civil"
)

// Kind labels purchase order records in errors and metrics.
const Kind = "purchase_order"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusReceived  Status = "received"
	StatusCancelled Status = "cancelled"
)

// LineItem is one ordered item. Total is always Quantity * UnitPrice.
type LineItem struct {
	ItemID    int64   `json:"item_id"`
	ItemName  string  `json:"item_name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

type PurchaseOrder struct {
	ID            int64      `json:"id"`
	PONumber      string     `json:"po_number"`
	Supplier      string     `json:"supplier"`
	SupplierEmail string     `json:"supplier_email"`
	SupplierPhone string     `json:"supplier_phone"`
	OrderDate     civil.Date `json:"order_date"`
	ExpectedDate  civil.Date `json:"expected_date"`
	Status        Status     `json:"status"`
	Description   string     `json:"description"`
	LineItems     []LineItem `json:"line_items"`
	Subtotal      float64    `json:"subtotal"`
	Tax           float64    `json:"tax"`
	Total         float64    `json:"total"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func clonePurchaseOrder(po PurchaseOrder) PurchaseOrder {
	if po.LineItems != nil {
		po.LineItems = append([]LineItem(nil), po.LineItems...)
	}
	return po
}
