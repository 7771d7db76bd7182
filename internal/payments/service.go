package payments

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/odyssey-erp/billdesk/internal/platform/crud"
	"github.com/odyssey-erp/billdesk/internal/platform/store"
)

// NewStore seeds the payment collection.
func NewStore(seed []Payment) *store.Collection[Payment] {
	return store.New(store.Schema[Payment]{
		Kind:   Kind,
		ID:     func(p Payment) int64 { return p.ID },
		WithID: func(p Payment, id int64) Payment { p.ID = id; return p },
	}, seed)
}

type Service struct {
	gw *crud.Gateway[Payment]
}

func NewService(coll *store.Collection[Payment], opts crud.Options) *Service {
	return &Service{gw: crud.New(coll, crud.Stamps[Payment]{
		OnCreate: func(p Payment, now time.Time) Payment {
			p.CreatedAt = now
			return p
		},
	}, opts)}
}

func (s *Service) List(ctx context.Context) ([]Payment, error) {
	return s.gw.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Payment, error) {
	return s.gw.Get(ctx, id)
}

// Create records a payment. Status defaults to completed.
func (s *Service) Create(ctx context.Context, req CreatePaymentRequest) (Payment, error) {
	status := req.Status
	if status == "" {
		status = StatusCompleted
	}
	payment, err := s.gw.Create(ctx, Payment{
		InvoiceID:   req.InvoiceID,
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
		Mode:        req.Mode,
		Reference:   req.Reference,
		Status:      status,
	})
	if err != nil {
		return Payment{}, fmt.Errorf("create payment: %w", err)
	}
	return payment, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdatePaymentRequest) (Payment, error) {
	payment, err := s.gw.Update(ctx, id, func(p Payment) Payment {
		if req.InvoiceID != nil {
			p.InvoiceID = *req.InvoiceID
		}
		if req.Amount != nil {
			p.Amount = *req.Amount
		}
		if req.PaymentDate != nil {
			p.PaymentDate = *req.PaymentDate
		}
		if req.Mode != nil {
			p.Mode = *req.Mode
		}
		if req.Reference != nil {
			p.Reference = *req.Reference
		}
		if req.Status != nil {
			p.Status = *req.Status
		}
		return p
	})
	if err != nil {
		return Payment{}, fmt.Errorf("update payment: %w", err)
	}
	return payment, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.gw.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}

// InvoiceNumber resolves an invoice id against numbers, falling back to
// UnknownInvoice for dangling references.
func InvoiceNumber(numbers map[int64]string, id int64) string {
	if n, ok := numbers[id]; ok {
		return n
	}
	return UnknownInvoice
}

// Search keeps payments whose invoice number or reference contains term,
// case-insensitively.
func Search(rows []Payment, numbers map[int64]string, term string) []Payment {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return rows
	}
	out := make([]Payment, 0, len(rows))
	for _, p := range rows {
		if strings.Contains(strings.ToLower(InvoiceNumber(numbers, p.InvoiceID)), needle) ||
			strings.Contains(strings.ToLower(p.Reference), needle) {
			out = append(out, p)
		}
	}
	return out
}

// TotalReceived sums completed payments.
func TotalReceived(rows []Payment) float64 {
	var total float64
	for _, p := range rows {
		if p.Status == StatusCompleted {
			total += p.Amount
		}
	}
	return total
}
