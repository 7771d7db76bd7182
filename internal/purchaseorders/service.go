package purchaseorders

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/odyssey-erp/billdesk/internal/platform/crud"
	"github.com/odyssey-erp/billdesk/internal/platform/store"
)

// NewStore seeds the purchase order collection.
func NewStore(seed []PurchaseOrder) *store.Collection[PurchaseOrder] {
	return store.New(store.Schema[PurchaseOrder]{
		Kind:   Kind,
		ID:     func(po PurchaseOrder) int64 { return po.ID },
		WithID: func(po PurchaseOrder, id int64) PurchaseOrder { po.ID = id; return po },
		Clone:  clonePurchaseOrder,
	}, seed)
}

type Service struct {
	gw        *crud.Gateway[PurchaseOrder]
	clock     func() time.Time
	numbering sync.Mutex
}

func NewService(coll *store.Collection[PurchaseOrder], opts crud.Options) *Service {
	if opts.Clock == nil {
		opts.Clock = func() time.Time { return time.Now().UTC() }
	}
	return &Service{
		clock: opts.Clock,
		gw: crud.New(coll, crud.Stamps[PurchaseOrder]{
			OnCreate: func(po PurchaseOrder, now time.Time) PurchaseOrder {
				po.CreatedAt = now
				po.UpdatedAt = now
				return po
			},
			OnUpdate: func(po PurchaseOrder, now time.Time) PurchaseOrder {
				po.UpdatedAt = now
				return po
			},
		}, opts),
	}
}

func (s *Service) List(ctx context.Context) ([]PurchaseOrder, error) {
	return s.gw.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (PurchaseOrder, error) {
	return s.gw.Get(ctx, id)
}

// Create prices the line items and assigns a PO number when none was supplied.
// Status defaults to draft.
func (s *Service) Create(ctx context.Context, req CreatePurchaseOrderRequest) (PurchaseOrder, error) {
	number := strings.TrimSpace(req.PONumber)
	if number == "" {
		// Held through the insert so no other create can take the same number.
		s.numbering.Lock()
		defer s.numbering.Unlock()
		existing, err := s.gw.List(ctx)
		if err != nil {
			return PurchaseOrder{}, fmt.Errorf("create purchase order: %w", err)
		}
		numbers := make([]string, len(existing))
		for i, po := range existing {
			numbers[i] = po.PONumber
		}
		number = NextNumber(numbers, s.clock())
	}
	status := req.Status
	if status == "" {
		status = StatusDraft
	}
	lines := toLineItems(req.LineItems)
	totals := CalculateTotals(lines)
	po, err := s.gw.Create(ctx, PurchaseOrder{
		PONumber:      number,
		Supplier:      req.Supplier,
		SupplierEmail: req.SupplierEmail,
		SupplierPhone: req.SupplierPhone,
		OrderDate:     req.OrderDate,
		ExpectedDate:  req.ExpectedDate,
		Status:        status,
		Description:   req.Description,
		LineItems:     lines,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Total:         totals.Total,
		Notes:         req.Notes,
	})
	if err != nil {
		return PurchaseOrder{}, fmt.Errorf("create purchase order: %w", err)
	}
	return po, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdatePurchaseOrderRequest) (PurchaseOrder, error) {
	po, err := s.gw.Update(ctx, id, func(po PurchaseOrder) PurchaseOrder {
		if req.PONumber != nil {
			po.PONumber = *req.PONumber
		}
		if req.Supplier != nil {
			po.Supplier = *req.Supplier
		}
		if req.SupplierEmail != nil {
			po.SupplierEmail = *req.SupplierEmail
		}
		if req.SupplierPhone != nil {
			po.SupplierPhone = *req.SupplierPhone
		}
		if req.OrderDate != nil {
			po.OrderDate = *req.OrderDate
		}
		if req.ExpectedDate != nil {
			po.ExpectedDate = *req.ExpectedDate
		}
		if req.Status != nil {
			po.Status = *req.Status
		}
		if req.Description != nil {
			po.Description = *req.Description
		}
		if req.LineItems != nil {
			po.LineItems = toLineItems(req.LineItems)
			totals := CalculateTotals(po.LineItems)
			po.Subtotal, po.Tax, po.Total = totals.Subtotal, totals.Tax, totals.Total
		}
		if req.Notes != nil {
			po.Notes = *req.Notes
		}
		return po
	})
	if err != nil {
		return PurchaseOrder{}, fmt.Errorf("update purchase order: %w", err)
	}
	return po, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.gw.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete purchase order: %w", err)
	}
	return nil
}

// ByStatus returns the orders whose status equals status exactly.
func (s *Service) ByStatus(ctx context.Context, status Status) ([]PurchaseOrder, error) {
	rows, err := s.gw.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders by status: %w", err)
	}
	return Apply(rows, Query{Status: status}), nil
}

// BySupplier returns the orders whose supplier contains supplier,
// case-insensitively.
func (s *Service) BySupplier(ctx context.Context, supplier string) ([]PurchaseOrder, error) {
	rows, err := s.gw.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders by supplier: %w", err)
	}
	return Apply(rows, Query{Supplier: supplier}), nil
}

// Apply filters rows by q and sorts the result. Sorting is stable; an unknown
// or empty sort key keeps insertion order.
func Apply(rows []PurchaseOrder, q Query) []PurchaseOrder {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	supplier := strings.ToLower(strings.TrimSpace(q.Supplier))
	out := make([]PurchaseOrder, 0, len(rows))
	for _, po := range rows {
		if q.Status != "" && po.Status != q.Status {
			continue
		}
		if supplier != "" && !strings.Contains(strings.ToLower(po.Supplier), supplier) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(po.PONumber), search) &&
			!strings.Contains(strings.ToLower(po.Supplier), search) &&
			!strings.Contains(strings.ToLower(po.Description), search) {
			continue
		}
		out = append(out, po)
	}

	less := sortKeys[q.Sort]
	if less == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if q.Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

var sortKeys = map[string]func(a, b PurchaseOrder) bool{
	"po_number":     func(a, b PurchaseOrder) bool { return a.PONumber < b.PONumber },
	"supplier":      func(a, b PurchaseOrder) bool { return strings.ToLower(a.Supplier) < strings.ToLower(b.Supplier) },
	"order_date":    func(a, b PurchaseOrder) bool { return a.OrderDate.Before(b.OrderDate) },
	"expected_date": func(a, b PurchaseOrder) bool { return a.ExpectedDate.Before(b.ExpectedDate) },
	"total":         func(a, b PurchaseOrder) bool { return a.Total < b.Total },
}
