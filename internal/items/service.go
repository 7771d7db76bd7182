package items

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/odyssey-erp/billdesk/internal/platform/crud"
	"github.com/odyssey-erp/billdesk/internal/platform/store"
)

// NewStore seeds the item collection.
func NewStore(seed []Item) *store.Collection[Item] {
	return store.New(store.Schema[Item]{
		Kind:   Kind,
		ID:     func(i Item) int64 { return i.ID },
		WithID: func(i Item, id int64) Item { i.ID = id; return i },
	}, seed)
}

type Service struct {
	gw *crud.Gateway[Item]
}

func NewService(coll *store.Collection[Item], opts crud.Options) *Service {
	return &Service{gw: crud.New(coll, crud.Stamps[Item]{
		OnCreate: func(i Item, now time.Time) Item {
			i.CreatedAt = now
			return i
		},
	}, opts)}
}

func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.gw.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Item, error) {
	return s.gw.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateItemRequest) (Item, error) {
	item, err := s.gw.Create(ctx, Item{
		Name:          req.Name,
		HSNCode:       req.HSNCode,
		Price:         req.Price,
		GSTRate:       req.GSTRate,
		Unit:          req.Unit,
		StockQuantity: req.StockQuantity,
		Description:   req.Description,
	})
	if err != nil {
		return Item{}, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateItemRequest) (Item, error) {
	item, err := s.gw.Update(ctx, id, func(i Item) Item {
		if req.Name != nil {
			i.Name = *req.Name
		}
		if req.HSNCode != nil {
			i.HSNCode = *req.HSNCode
		}
		if req.Price != nil {
			i.Price = *req.Price
		}
		if req.GSTRate != nil {
			i.GSTRate = *req.GSTRate
		}
		if req.Unit != nil {
			i.Unit = *req.Unit
		}
		if req.StockQuantity != nil {
			i.StockQuantity = *req.StockQuantity
		}
		if req.Description != nil {
			i.Description = *req.Description
		}
		return i
	})
	if err != nil {
		return Item{}, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.gw.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// Search matches the item name case-insensitively or the HSN code verbatim.
func Search(rows []Item, term string) []Item {
	if term == "" {
		return rows
	}
	needle := strings.ToLower(term)
	out := make([]Item, 0, len(rows))
	for _, it := range rows {
		if strings.Contains(strings.ToLower(it.Name), needle) || strings.Contains(it.HSNCode, term) {
			out = append(out, it)
		}
	}
	return out
}
