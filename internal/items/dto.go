package items

type CreateItemRequest struct {
	Name          string  `json:"name" validate:"notblank,max=200"`
	HSNCode       string  `json:"hsn_code" validate:"notblank,max=20"`
	Price         float64 `json:"price" validate:"gt=0"`
	GSTRate       float64 `json:"gst_rate" validate:"gte=0,lte=100"`
	Unit          string  `json:"unit" validate:"max=20"`
	StockQuantity float64 `json:"stock_quantity" validate:"gte=0"`
	Description   string  `json:"description"`
}

type UpdateItemRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitnil,notblank,max=200"`
	HSNCode       *string  `json:"hsn_code,omitempty" validate:"omitnil,notblank,max=20"`
	Price         *float64 `json:"price,omitempty" validate:"omitnil,gt=0"`
	GSTRate       *float64 `json:"gst_rate,omitempty" validate:"omitnil,gte=0,lte=100"`
	Unit          *string  `json:"unit,omitempty" validate:"omitnil,max=20"`
	StockQuantity *float64 `json:"stock_quantity,omitempty" validate:"omitnil,gte=0"`
	Description   *string  `json:"description,omitempty"`
}
