package service

import (
	"context"
	"fmt"

	"group-dining/order-svc/internal/domain"
)

type MenuService struct {
	store TableStore
}

func NewMenuService(store TableStore) *MenuService {
	return &MenuService{store: store}
}

// Load returns menu items in row order. Rows without an id are padding
// and are skipped.
func (s *MenuService) Load(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := s.store.GetAllRows(ctx, domain.TableMenu)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}

	items := make([]domain.MenuItem, 0, len(rows))
	for i := 1; i < len(rows); i++ {
		if cell(rows[i], domain.MenuColID) == "" {
			continue
		}
		item, err := menuItemFromRow(rows[i], i+1)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
