package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/odyssey-erp/billdesk/internal/customers"
	"github.com/odyssey-erp/billdesk/internal/expenses"
	"github.com/odyssey-erp/billdesk/internal/invoices"
	"github.com/odyssey-erp/billdesk/internal/items"
)

// Lister is the read side of an entity service.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// Sources are the entity services aggregates are derived from.
type Sources struct {
	Invoices  Lister[invoices.Invoice]
	Customers Lister[customers.Customer]
	Items     Lister[items.Item]
	Expenses  Lister[expenses.Expense]
}

// Dashboard combines the headline stats with the expense summary.
type Dashboard struct {
	DashboardStats
	Expenses ExpenseSummary `json:"expenses"`
	AsOf     string         `json:"as_of"`
}

// Service derives aggregates from the live collections. Concurrent requests
// for the same aggregate share one build.
type Service struct {
	src   Sources
	cache *Cache
	group singleflight.Group
	now   func() time.Time
}

func NewService(src Sources, cache *Cache) *Service {
	return &Service{src: src, cache: cache, now: time.Now}
}

// WithNow overrides the service clock for testing.
func (s *Service) WithNow(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

// Now returns the service clock reading.
func (s *Service) Now() time.Time {
	return s.now()
}

func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	now := s.now()
	loader := func(ctx context.Context) (any, error) {
		var (
			invs  []invoices.Invoice
			custs []customers.Customer
			its   []items.Item
			exps  []expenses.Expense
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) { invs, err = s.src.Invoices.List(gctx); return err })
		g.Go(func() (err error) { custs, err = s.src.Customers.List(gctx); return err })
		g.Go(func() (err error) { its, err = s.src.Items.List(gctx); return err })
		g.Go(func() (err error) { exps, err = s.src.Expenses.List(gctx); return err })
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return Dashboard{
			DashboardStats: BuildDashboard(invs, custs, its, now),
			Expenses:       SummarizeExpenses(exps),
			AsOf:           now.Format("2006-01-02"),
		}, nil
	}
	var out Dashboard
	if err := s.fetch(ctx, keyDashboard(now), &out, loader); err != nil {
		return Dashboard{}, fmt.Errorf("build dashboard: %w", err)
	}
	return out, nil
}

func (s *Service) Report(ctx context.Context, p Period) (Report, error) {
	now := s.now()
	loader := func(ctx context.Context) (any, error) {
		var (
			invs  []invoices.Invoice
			custs []customers.Customer
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) { invs, err = s.src.Invoices.List(gctx); return err })
		g.Go(func() (err error) { custs, err = s.src.Customers.List(gctx); return err })
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return BuildReport(invs, custs, p, now), nil
	}
	var out Report
	if err := s.fetch(ctx, keyReport(p, now), &out, loader); err != nil {
		return Report{}, fmt.Errorf("build %s report: %w", p, err)
	}
	return out, nil
}

// Overdue lists pending invoices past their due date. It always reads the
// live collection.
func (s *Service) Overdue(ctx context.Context) ([]invoices.Invoice, error) {
	invs, err := s.src.Invoices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list overdue invoices: %w", err)
	}
	return OverdueInvoices(invs, s.now()), nil
}

// Invalidate drops every cached aggregate.
func (s *Service) Invalidate(ctx context.Context) error {
	return s.cache.Bump(ctx)
}

func (s *Service) fetch(ctx context.Context, base string, dest any, loader func(context.Context) (any, error)) error {
	key, err := s.cache.BuildKey(ctx, base)
	if err != nil {
		return err
	}
	v, err, _ := s.group.Do(key, func() (any, error) {
		var raw json.RawMessage
		if err := s.cache.FetchJSON(ctx, key, &raw, loader); err != nil {
			return nil, err
		}
		return raw, nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(v.(json.RawMessage), dest)
}
