package expenses

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"github.com/odyssey-erp/billdesk/internal/categorize"
	"github.com/odyssey-erp/billdesk/internal/platform/crud"
	"github.com/odyssey-erp/billdesk/internal/platform/store"
)

// NewStore seeds the expense collection.
func NewStore(seed []Expense) *store.Collection[Expense] {
	return store.New(store.Schema[Expense]{
		Kind:   Kind,
		ID:     func(e Expense) int64 { return e.ID },
		WithID: func(e Expense, id int64) Expense { e.ID = id; return e },
	}, seed)
}

type Service struct {
	gw    *crud.Gateway[Expense]
	clock func() time.Time
}

func NewService(coll *store.Collection[Expense], opts crud.Options) *Service {
	if opts.Clock == nil {
		opts.Clock = func() time.Time { return time.Now().UTC() }
	}
	return &Service{
		clock: opts.Clock,
		gw: crud.New(coll, crud.Stamps[Expense]{
			OnCreate: func(e Expense, now time.Time) Expense {
				e.CreatedAt = now
				e.UpdatedAt = now
				return e
			},
			OnUpdate: func(e Expense, now time.Time) Expense {
				e.UpdatedAt = now
				return e
			},
		}, opts),
	}
}

// Now returns the service clock reading used for relative date ranges.
func (s *Service) Now() time.Time {
	return s.clock()
}

func (s *Service) List(ctx context.Context) ([]Expense, error) {
	return s.gw.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Expense, error) {
	return s.gw.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateExpenseRequest) (Expense, error) {
	expense, err := s.gw.Create(ctx, Expense{
		Description:    req.Description,
		Amount:         req.Amount,
		Date:           req.Date,
		Category:       req.Category,
		Subcategory:    req.Subcategory,
		Vendor:         req.Vendor,
		PaymentMethod:  req.PaymentMethod,
		IsReimbursable: req.IsReimbursable,
		ReceiptURL:     req.ReceiptURL,
		Notes:          req.Notes,
	})
	if err != nil {
		return Expense{}, fmt.Errorf("create expense: %w", err)
	}
	return expense, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateExpenseRequest) (Expense, error) {
	expense, err := s.gw.Update(ctx, id, func(e Expense) Expense {
		if req.Description != nil {
			e.Description = *req.Description
		}
		if req.Amount != nil {
			e.Amount = *req.Amount
		}
		if req.Date != nil {
			e.Date = *req.Date
		}
		if req.Category != nil {
			e.Category = *req.Category
		}
		if req.Subcategory != nil {
			e.Subcategory = *req.Subcategory
		}
		if req.Vendor != nil {
			e.Vendor = *req.Vendor
		}
		if req.PaymentMethod != nil {
			e.PaymentMethod = *req.PaymentMethod
		}
		if req.IsReimbursable != nil {
			e.IsReimbursable = *req.IsReimbursable
		}
		if req.ReceiptURL != nil {
			e.ReceiptURL = *req.ReceiptURL
		}
		if req.Notes != nil {
			e.Notes = *req.Notes
		}
		return e
	})
	if err != nil {
		return Expense{}, fmt.Errorf("update expense: %w", err)
	}
	return expense, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.gw.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// SuggestCategory runs the categorization tables over description and vendor.
func (s *Service) SuggestCategory(description, vendor string) (string, bool) {
	return categorize.Suggest(description, vendor)
}

func (s *Service) ByCategory(ctx context.Context) (map[string]CategoryTotal, error) {
	rows, err := s.gw.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("expenses by category: %w", err)
	}
	return TotalsByCategory(rows), nil
}

func (s *Service) ByDateRange(ctx context.Context, start, end civil.Date) ([]Expense, error) {
	rows, err := s.gw.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("expenses by date range: %w", err)
	}
	return Between(rows, start, end), nil
}

func (s *Service) Reimbursable(ctx context.Context) ([]Expense, error) {
	rows, err := s.gw.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reimbursable expenses: %w", err)
	}
	return ReimbursableOnly(rows), nil
}
