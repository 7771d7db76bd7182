package purchaseorders

import "cloud.google.com/go/civil"

type LineItemRequest struct {
	ItemID    int64   `json:"item_id" validate:"gt=0"`
	ItemName  string  `json:"item_name" validate:"max=200"`
	Quantity  float64 `json:"quantity" validate:"gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

type CreatePurchaseOrderRequest struct {
	PONumber      string            `json:"po_number" validate:"max=40"`
	Supplier      string            `json:"supplier" validate:"notblank,max=200"`
	SupplierEmail string            `json:"supplier_email" validate:"omitempty,email"`
	SupplierPhone string            `json:"supplier_phone" validate:"max=30"`
	OrderDate     civil.Date        `json:"order_date" validate:"required"`
	ExpectedDate  civil.Date        `json:"expected_date" validate:"required"`
	Status        Status            `json:"status" validate:"omitempty,oneof=draft pending approved received cancelled"`
	Description   string            `json:"description" validate:"max=2000"`
	LineItems     []LineItemRequest `json:"line_items" validate:"min=1,dive"`
	Notes         string            `json:"notes" validate:"max=2000"`
}

type UpdatePurchaseOrderRequest struct {
	PONumber      *string           `json:"po_number,omitempty" validate:"omitnil,notblank,max=40"`
	Supplier      *string           `json:"supplier,omitempty" validate:"omitnil,notblank,max=200"`
	SupplierEmail *string           `json:"supplier_email,omitempty" validate:"omitnil,omitempty,email"`
	SupplierPhone *string           `json:"supplier_phone,omitempty" validate:"omitnil,max=30"`
	OrderDate     *civil.Date       `json:"order_date,omitempty"`
	ExpectedDate  *civil.Date       `json:"expected_date,omitempty"`
	Status        *Status           `json:"status,omitempty" validate:"omitnil,oneof=draft pending approved received cancelled"`
	Description   *string           `json:"description,omitempty" validate:"omitnil,max=2000"`
	LineItems     []LineItemRequest `json:"line_items,omitempty" validate:"omitnil,min=1,dive"`
	Notes         *string           `json:"notes,omitempty" validate:"omitnil,max=2000"`
}

// Query carries the list view filters and ordering.
type Query struct {
	Search   string
	Status   Status
	Supplier string
	Sort     string
	Desc     bool
}

func toLineItems(reqs []LineItemRequest) []LineItem {
	lines := make([]LineItem, len(reqs))
	for i, r := range reqs {
		lines[i] = LineItem{ItemID: r.ItemID, ItemName: r.ItemName, Quantity: r.Quantity, UnitPrice: r.UnitPrice}
	}
	return PriceLineItems(lines)
}
