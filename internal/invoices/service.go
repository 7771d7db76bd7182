package invoices

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/odyssey-erp/billdesk/internal/customers"
	"github.com/odyssey-erp/billdesk/internal/platform/crud"
	"github.com/odyssey-erp/billdesk/internal/platform/store"
)

// NewStore seeds the invoice collection.
func NewStore(seed []Invoice) *store.Collection[Invoice] {
	return store.New(store.Schema[Invoice]{
		Kind:   Kind,
		ID:     func(i Invoice) int64 { return i.ID },
		WithID: func(i Invoice, id int64) Invoice { i.ID = id; return i },
		Clone:  cloneInvoice,
	}, seed)
}

type Service struct {
	gw    *crud.Gateway[Invoice]
	clock func() time.Time
	// numbering serialises number generation with the insert that uses it.
	numbering sync.Mutex
}

func NewService(coll *store.Collection[Invoice], opts crud.Options) *Service {
	clock := opts.Clock
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	opts.Clock = clock
	return &Service{
		clock: clock,
		gw: crud.New(coll, crud.Stamps[Invoice]{
			OnCreate: func(i Invoice, now time.Time) Invoice {
				i.CreatedAt = now
				return i
			},
		}, opts),
	}
}

func (s *Service) List(ctx context.Context) ([]Invoice, error) {
	return s.gw.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Invoice, error) {
	return s.gw.Get(ctx, id)
}

// Create prices the lines, computes totals and assigns an invoice number when
// none was supplied. Status defaults to pending.
func (s *Service) Create(ctx context.Context, req CreateInvoiceRequest) (Invoice, error) {
	number := strings.TrimSpace(req.InvoiceNumber)
	if number == "" {
		// Held through the insert so no other create can take the same number.
		s.numbering.Lock()
		defer s.numbering.Unlock()
		existing, err := s.gw.List(ctx)
		if err != nil {
			return Invoice{}, fmt.Errorf("create invoice: %w", err)
		}
		numbers := make([]string, len(existing))
		for i, inv := range existing {
			numbers[i] = inv.InvoiceNumber
		}
		number = NextNumber(numbers, s.clock())
	}
	status := req.Status
	if status == "" {
		status = StatusPending
	}
	lines := toLines(req.Items)
	totals := CalculateTotals(lines)
	inv, err := s.gw.Create(ctx, Invoice{
		InvoiceNumber: number,
		CustomerID:    req.CustomerID,
		Items:         lines,
		Subtotal:      totals.Subtotal,
		TaxAmount:     totals.TaxAmount,
		Total:         totals.Total,
		Status:        status,
		DueDate:       req.DueDate,
		Notes:         req.Notes,
	})
	if err != nil {
		return Invoice{}, fmt.Errorf("create invoice: %w", err)
	}
	return inv, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateInvoiceRequest) (Invoice, error) {
	inv, err := s.gw.Update(ctx, id, func(i Invoice) Invoice {
		if req.InvoiceNumber != nil {
			i.InvoiceNumber = *req.InvoiceNumber
		}
		if req.CustomerID != nil {
			i.CustomerID = *req.CustomerID
		}
		if req.Items != nil {
			i.Items = toLines(req.Items)
			totals := CalculateTotals(i.Items)
			i.Subtotal, i.TaxAmount, i.Total = totals.Subtotal, totals.TaxAmount, totals.Total
		}
		if req.Status != nil {
			i.Status = *req.Status
		}
		if req.DueDate != nil {
			i.DueDate = *req.DueDate
		}
		if req.Notes != nil {
			i.Notes = *req.Notes
		}
		return i
	})
	if err != nil {
		return Invoice{}, fmt.Errorf("update invoice: %w", err)
	}
	return inv, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.gw.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// Numbers maps invoice ids to their invoice numbers.
func (s *Service) Numbers(ctx context.Context) (map[int64]string, error) {
	rows, err := s.gw.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]string, len(rows))
	for _, inv := range rows {
		out[inv.ID] = inv.InvoiceNumber
	}
	return out, nil
}

// CustomerName resolves a customer id against names, falling back to
// customers.UnknownName for dangling references.
func CustomerName(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok {
		return name
	}
	return customers.UnknownName
}

// Filter keeps invoices whose number or customer name contains term
// (case-insensitive) and whose stored status equals status. Empty arguments
// match everything.
func Filter(rows []Invoice, names map[int64]string, term string, status Status) []Invoice {
	needle := strings.ToLower(strings.TrimSpace(term))
	out := make([]Invoice, 0, len(rows))
	for _, inv := range rows {
		if status != "" && inv.Status != status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(inv.InvoiceNumber), needle) &&
			!strings.Contains(strings.ToLower(CustomerName(names, inv.CustomerID)), needle) {
			continue
		}
		out = append(out, inv)
	}
	return out
}
