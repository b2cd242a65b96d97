package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/planner"
)

// MockPlanner mocks PlannerService
type MockPlanner struct {
	mock.Mock
}

func (m *MockPlanner) AddWishItem(ctx context.Context, itemID domain.ItemID, quantity domain.Quantity) error {
	return m.Called(ctx, itemID, quantity).Error(0)
}

func (m *MockPlanner) RemoveWishItem(ctx context.Context, itemID domain.ItemID, quantity domain.Quantity, crafted bool) error {
	return m.Called(ctx, itemID, quantity, crafted).Error(0)
}

func (m *MockPlanner) AdjustInventory(ctx context.Context, itemID domain.ItemID, delta int32) error {
	return m.Called(ctx, itemID, delta).Error(0)
}

func (m *MockPlanner) Search(ctx context.Context, text string) error {
	return m.Called(ctx, text).Error(0)
}

func (m *MockPlanner) CalculatedInventory(ctx context.Context) (*domain.RecipeExpansion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeExpansion), args.Error(1)
}

func (m *MockPlanner) Snapshot() *planner.Snapshot {
	return m.Called().Get(0).(*planner.Snapshot)
}

// MockCrafting mocks crafting.Service
type MockCrafting struct {
	mock.Mock
}

func (m *MockCrafting) ExpandFullRecipe(ctx context.Context, itemID domain.ItemID, quantity domain.Quantity) (*domain.RecipeExpansion, error) {
	args := m.Called(ctx, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeExpansion), args.Error(1)
}

func (m *MockCrafting) LocateSources(ctx context.Context, itemID domain.ItemID) ([]domain.MonsterSources, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonsterSources), args.Error(1)
}

func (m *MockCrafting) ResolveWishItem(ctx context.Context, itemID domain.ItemID) (*domain.Resolution, []domain.Item, error) {
	args := m.Called(ctx, itemID)
	return nil, nil, args.Error(2)
}

func (m *MockCrafting) CraftDecrement(ctx context.Context, itemID domain.ItemID, quantity domain.Quantity, inventory domain.ItemList) (domain.ItemList, error) {
	args := m.Called(ctx, itemID, quantity, inventory)
	return nil, args.Error(1)
}

func (m *MockCrafting) CalculatedInventory(ctx context.Context, inventory domain.ItemList) (*domain.RecipeExpansion, error) {
	args := m.Called(ctx, inventory)
	return nil, args.Error(1)
}

func (m *MockCrafting) PurgeSources() {
	m.Called()
}

// MockCatalog mocks repository.Catalog
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetItemByID(ctx context.Context, id domain.ItemID) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockCatalog) GetItemsByIDs(ctx context.Context, ids []domain.ItemID) ([]domain.Item, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockCatalog) SearchItems(ctx context.Context, text string, limit int) ([]domain.Item, error) {
	args := m.Called(ctx, text, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}
