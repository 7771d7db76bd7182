package customers

type CreateCustomerRequest struct {
	Name        string  `json:"name" validate:"notblank,max=200"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       string  `json:"phone" validate:"required,phone10"`
	GSTIN       string  `json:"gstin,omitempty" validate:"gstin"`
	Address     Address `json:"address"`
	CreditLimit float64 `json:"credit_limit" validate:"gte=0"`
}

type UpdateCustomerRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitnil,notblank,max=200"`
	Email       *string  `json:"email,omitempty" validate:"omitnil,email"`
	Phone       *string  `json:"phone,omitempty" validate:"omitnil,phone10"`
	GSTIN       *string  `json:"gstin,omitempty" validate:"omitnil,gstin"`
	Address     *Address `json:"address,omitempty"`
	CreditLimit *float64 `json:"credit_limit,omitempty" validate:"omitnil,gte=0"`
}
