package customers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/odyssey-erp/billdesk/internal/platform/crud"
	"github.com/odyssey-erp/billdesk/internal/platform/store"
)

// NewStore seeds the customer collection.
func NewStore(seed []Customer) *store.Collection[Customer] {
	return store.New(store.Schema[Customer]{
		Kind:   Kind,
		ID:     func(c Customer) int64 { return c.ID },
		WithID: func(c Customer, id int64) Customer { c.ID = id; return c },
	}, seed)
}

type Service struct {
	gw *crud.Gateway[Customer]
}

func NewService(coll *store.Collection[Customer], opts crud.Options) *Service {
	return &Service{gw: crud.New(coll, crud.Stamps[Customer]{
		OnCreate: func(c Customer, now time.Time) Customer {
			c.CreatedAt = now
			return c
		},
	}, opts)}
}

func (s *Service) List(ctx context.Context) ([]Customer, error) {
	return s.gw.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Customer, error) {
	return s.gw.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (Customer, error) {
	customer, err := s.gw.Create(ctx, Customer{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		GSTIN:       req.GSTIN,
		Address:     req.Address,
		CreditLimit: req.CreditLimit,
	})
	if err != nil {
		return Customer{}, fmt.Errorf("create customer: %w", err)
	}
	return customer, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateCustomerRequest) (Customer, error) {
	customer, err := s.gw.Update(ctx, id, func(c Customer) Customer {
		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.Email != nil {
			c.Email = *req.Email
		}
		if req.Phone != nil {
			c.Phone = *req.Phone
		}
		if req.GSTIN != nil {
			c.GSTIN = *req.GSTIN
		}
		if req.Address != nil {
			c.Address = *req.Address
		}
		if req.CreditLimit != nil {
			c.CreditLimit = *req.CreditLimit
		}
		return c
	})
	if err != nil {
		return Customer{}, fmt.Errorf("update customer: %w", err)
	}
	return customer, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.gw.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// Search keeps customers whose name or email contains term case-insensitively,
// or whose phone contains term verbatim.
func Search(rows []Customer, term string) []Customer {
	if term == "" {
		return rows
	}
	needle := strings.ToLower(term)
	out := make([]Customer, 0, len(rows))
	for _, c := range rows {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Email), needle) ||
			strings.Contains(c.Phone, term) {
			out = append(out, c)
		}
	}
	return out
}

// NameOf resolves a customer name, tolerating dangling references.
func NameOf(rows []Customer, id int64) string {
	for _, c := range rows {
		if c.ID == id {
			return c.Name
		}
	}
	return UnknownName
}

// Names maps every customer id to its name.
func (s *Service) Names(ctx context.Context) (map[int64]string, error) {
	rows, err := s.gw.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customer names: %w", err)
	}
	out := make(map[int64]string, len(rows))
	for _, c := range rows {
		out[c.ID] = c.Name
	}
	return out, nil
}
