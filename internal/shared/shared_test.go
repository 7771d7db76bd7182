package shared

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextDocumentNumber(t *testing.T) {
	day := time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, "INV-20240310-001", NextDocumentNumber("INV", nil, day))
	assert.Equal(t, "INV-20240310-003", NextDocumentNumber("INV", []string{
		"INV-20240310-002", "INV-20240309-007", "legacy-17", "INV-20240310-abc",
	}, day))
	assert.Equal(t, "PO-20240310-001", NextDocumentNumber("PO", []string{"INV-20240310-004"}, day))
	assert.Equal(t, "INV-20240310-1000", NextDocumentNumber("INV", []string{"INV-20240310-001", "INV-20240310-999"}, day))
	assert.Equal(t, "INV-20240310-1001", NextDocumentNumber("INV", []string{"INV-20240310-1000"}, day))
}

func TestPaginate(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5}

	all, p := Paginate(rows, 1, 0)
	assert.Equal(t, rows, all)
	assert.Equal(t, Pagination{Page: 1, PerPage: 5, Total: 5, TotalPages: 1}, p)

	page, p := Paginate(rows, 2, 2)
	assert.Equal(t, []int{3, 4}, page)
	assert.Equal(t, 3, p.TotalPages)

	past, _ := Paginate(rows, 9, 2)
	assert.Empty(t, past)

	huge, p := Paginate(rows, math.MaxInt, 2)
	assert.Empty(t, huge)
	assert.Equal(t, math.MaxInt, p.Page)

	wide, _ := Paginate(rows, 1, math.MaxInt)
	assert.Equal(t, rows, wide)

	_, p = Paginate([]int{}, 1, 0)
	assert.Zero(t, p.TotalPages)
}

type contact struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"phone10"`
	GSTIN string `json:"gstin" validate:"gstin"`
	Lines []line `json:"lines" validate:"min=1,dive"`
}

type line struct {
	Quantity float64 `json:"quantity" validate:"gt=0"`
}

func TestValidatorReportsJSONFieldPaths(t *testing.T) {
	v := NewValidator()

	err := v.Struct(contact{
		Name:  "  ",
		Email: "nope",
		Phone: "12345",
		GSTIN: "27AAPFU0939F1Z",
		Lines: []line{{Quantity: 1}, {Quantity: 0}},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, map[string]string{
		"name":              "is required",
		"email":             "must be a valid email",
		"phone":             "must be a valid 10-digit phone number",
		"gstin":             "must be a valid GSTIN",
		"lines[1].quantity": "must be greater than 0",
	}, verr.Fields)
	assert.Contains(t, err.Error(), "lines[1].quantity")
}

func TestValidatorAcceptsValidInput(t *testing.T) {
	v := NewValidator()
	err := v.Struct(contact{
		Name:  "Asha Traders",
		Email: "accounts@ashatraders.in",
		Phone: "98765 43210",
		Lines: []line{{Quantity: 2}},
	})
	assert.NoError(t, err)
}

func TestNotFoundAndSafeMessages(t *testing.T) {
	err := NotFound("invoice", 9)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "invoice 9: not found", err.Error())
	assert.Equal(t, "invoice 9: not found", UserSafeMessage(err))
	assert.Equal(t, "internal error", UserSafeMessage(errors.New("dial tcp: refused")))
	assert.Empty(t, UserSafeMessage(nil))
}
