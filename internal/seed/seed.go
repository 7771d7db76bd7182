// Package seed provides the fixture records every collection starts from.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/odyssey-erp/billdesk/internal/customers"
	"github.com/odyssey-erp/billdesk/internal/expenses"
	"github.com/odyssey-erp/billdesk/internal/invoices"
	"github.com/odyssey-erp/billdesk/internal/items"
	"github.com/odyssey-erp/billdesk/internal/payments"
	"github.com/odyssey-erp/billdesk/internal/purchaseorders"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// Fixtures holds the initial contents of every collection.
type Fixtures struct {
	Customers      []customers.Customer
	Items          []items.Item
	Invoices       []invoices.Invoice
	PurchaseOrders []purchaseorders.PurchaseOrder
	Expenses       []expenses.Expense
	Payments       []payments.Payment
}

// Load decodes the embedded fixtures.
func Load() (Fixtures, error) {
	var f Fixtures
	files := []struct {
		name string
		dest any
	}{
		{"customers.json", &f.Customers},
		{"items.json", &f.Items},
		{"invoices.json", &f.Invoices},
		{"purchase_orders.json", &f.PurchaseOrders},
		{"expenses.json", &f.Expenses},
		{"payments.json", &f.Payments},
	}
	for _, file := range files {
		raw, err := fixtures.ReadFile("fixtures/" + file.name)
		if err != nil {
			return Fixtures{}, fmt.Errorf("read fixture %s: %w", file.name, err)
		}
		if err := json.Unmarshal(raw, file.dest); err != nil {
			return Fixtures{}, fmt.Errorf("decode fixture %s: %w", file.name, err)
		}
	}
	return f, nil
}

// Empty returns fixtures with no records.
func Empty() Fixtures {
	return Fixtures{}
}
