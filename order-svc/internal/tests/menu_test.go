package tests

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"group-dining/order-svc/internal/domain"
	"group-dining/order-svc/internal/mocks"
	"group-dining/order-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMenuService_Load(t *testing.T) {
	tests := []struct {
		name    string
		rows    []domain.Row
		wantIDs []int
		check   func(t *testing.T, items []domain.MenuItem)
	}{
		{
			name:    "only header",
			rows:    withHeader(domain.TableMenu),
			wantIDs: []int{},
		},
		{
			name: "rows without id are skipped and order is kept",
			rows: withHeader(domain.TableMenu,
				domain.Row{"3", "Food", "Pasta", "12.5", "Fresh", "TRUE", "TRUE"},
				domain.Row{"", "", "", "", "", "", ""},
				domain.Row{"1", "Drinks", "Lemonade", "3", "", "FALSE", "FALSE"},
				domain.Row{""},
				domain.Row{"2", "Food", "Salad", "7.25", "", "true", ""},
			),
			wantIDs: []int{3, 1, 2},
			check: func(t *testing.T, items []domain.MenuItem) {
				assert.Equal(t, "Pasta", items[0].Name)
				assert.Equal(t, "Food", items[0].Category)
				assert.Equal(t, "Fresh", items[0].Description)
				assertDecimal(t, "12.5", items[0].Price)
				assert.True(t, items[0].Vegetarian)
				assert.True(t, items[0].Available)

				assert.False(t, items[1].Vegetarian)
				assert.False(t, items[1].Available)

				assert.True(t, items[2].Vegetarian)
			},
		},
		{
			name: "empty flags default available but not vegetarian",
			rows: withHeader(domain.TableMenu,
				domain.Row{"7", "Dessert", "Tiramisu", "6", "", "", ""},
			),
			wantIDs: []int{7},
			check: func(t *testing.T, items []domain.MenuItem) {
				assert.False(t, items[0].Vegetarian)
				assert.True(t, items[0].Available)
			},
		},
		{
			name: "short rows read missing cells as empty",
			rows: withHeader(domain.TableMenu,
				domain.Row{"9", "Bread", "Focaccia"},
			),
			wantIDs: []int{9},
			check: func(t *testing.T, items []domain.MenuItem) {
				assertDecimal(t, "0", items[0].Price)
				assert.True(t, items[0].Available)
			},
		},
		{
			name: "truthy check is exact",
			rows: withHeader(domain.TableMenu,
				domain.Row{"4", "Food", "Soup", "5", "", "yes", "True"},
			),
			wantIDs: []int{4},
			check: func(t *testing.T, items []domain.MenuItem) {
				assert.False(t, items[0].Vegetarian)
				assert.False(t, items[0].Available)
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewTableStore(t)
			store.On("GetAllRows", mock.Anything, domain.TableMenu).Return(testCase.rows, nil).Once()

			items, err := service.NewMenuService(store).Load(context.Background())

			require.NoError(t, err)
			ids := make([]int, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, testCase.wantIDs, ids)
			if testCase.check != nil {
				testCase.check(t, items)
			}
		})
	}
}

func TestMenuService_LoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		rows     []domain.Row
		storeErr error
		wantErr  error
	}{
		{
			name:     "missing menu table",
			storeErr: fmt.Errorf("Menu: %w", domain.ErrStoreUnavailable),
			wantErr:  domain.ErrStoreUnavailable,
		},
		{
			name:    "non numeric id",
			rows:    withHeader(domain.TableMenu, domain.Row{"abc", "Food", "Pasta", "1"}),
			wantErr: domain.ErrUnexpected,
		},
		{
			name:    "non numeric price",
			rows:    withHeader(domain.TableMenu, domain.Row{"1", "Food", "Pasta", "twelve"}),
			wantErr: domain.ErrUnexpected,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewTableStore(t)
			store.On("GetAllRows", mock.Anything, domain.TableMenu).Return(testCase.rows, testCase.storeErr).Once()

			items, err := service.NewMenuService(store).Load(context.Background())

			assert.Nil(t, items)
			assert.True(t, errors.Is(err, testCase.wantErr), "got %v", err)
		})
	}
}

func TestMenuService_LoadFromSQLite(t *testing.T) {
	store := newSQLiteStore(t)
	appendRows(t, store, domain.TableMenu,
		domain.Row{"1", "Food", "Burger", "11.90", "", "FALSE", ""},
		domain.Row{"", "", "", "", "", "", ""},
		domain.Row{"2", "Food", "Veggie Burger", "10.90", "", "TRUE", "FALSE"},
	)

	items, err := service.NewMenuService(store).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Burger", items[0].Name)
	assert.True(t, items[0].Available)
	assert.Equal(t, "Veggie Burger", items[1].Name)
	assert.True(t, items[1].Vegetarian)
	assert.False(t, items[1].Available)
}
