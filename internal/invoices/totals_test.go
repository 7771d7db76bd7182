package invoices

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalsLaw(t *testing.T) {
	cases := [][]Line{
		nil,
		{{ItemID: 1, Quantity: 2, Rate: 1500}},
		{{ItemID: 1, Quantity: 3, Rate: 19.99}, {ItemID: 2, Quantity: 0.5, Rate: 120.35}},
		{{ItemID: 3, Quantity: 7, Rate: 0.01}, {ItemID: 4, Quantity: 11, Rate: 333.33}, {ItemID: 5, Quantity: 1, Rate: 0}},
	}
	for _, lines := range cases {
		totals := CalculateTotals(lines)
		assert.InDelta(t, totals.Subtotal+totals.TaxAmount, totals.Total, 1e-9)
		assert.InDelta(t, totals.Subtotal*0.18, totals.TaxAmount, 1e-9)

		var sum float64
		for _, l := range PriceLines(lines) {
			assert.InDelta(t, l.Quantity*l.Rate, l.Amount, 1e-9)
			sum += l.Amount
		}
		assert.InDelta(t, sum, totals.Subtotal, 1e-9)
	}
}

func TestCalculateTotalsExact(t *testing.T) {
	totals := CalculateTotals([]Line{{Quantity: 2, Rate: 1500}, {Quantity: 1, Rate: 500}})
	assert.Equal(t, Totals{Subtotal: 3500, TaxAmount: 630, Total: 4130}, totals)
}

func TestNextNumber(t *testing.T) {
	day := time.Date(2024, 12, 1, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, "INV-20241201-001", NextNumber(nil, day))
	assert.Equal(t, "INV-20241201-004", NextNumber([]string{
		"INV-20241201-003",
		"INV-20241130-010",
		"INV-20241201-001",
		"custom",
	}, day))
	assert.Equal(t, "INV-20241201-1000", NextNumber([]string{"INV-20241201-999"}, day))
}
