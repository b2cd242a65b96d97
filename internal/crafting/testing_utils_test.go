package crafting

import (
	"context"
	"sync"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
)

// MockSource is an in-memory recipe/drop source with call counting and error injection
type MockSource struct {
	sync.RWMutex
	items   map[domain.ItemID]domain.Item
	recipes map[domain.ItemID]domain.ItemList
	drops   map[domain.ItemID][]domain.DropSource

	dropCalls   map[domain.ItemID]int
	recipeCalls int

	// Error injection for testing
	hasRecipeError error
	getRecipeError error
	dropsError     error
	countError     error
	countOverride  int

	// dropsGate, when set, holds every drop query until it is closed
	dropsGate chan struct{}
}

func NewMockSource() *MockSource {
	return &MockSource{
		items:     make(map[domain.ItemID]domain.Item),
		recipes:   make(map[domain.ItemID]domain.ItemList),
		drops:     make(map[domain.ItemID][]domain.DropSource),
		dropCalls: make(map[domain.ItemID]int),
	}
}

func (m *MockSource) AddItem(id domain.ItemID, name string) {
	m.Lock()
	defer m.Unlock()
	m.items[id] = domain.Item{ID: id, Name: name}
}

func (m *MockSource) AddRecipe(result, ingredient domain.ItemID, quantity domain.Quantity) {
	m.Lock()
	defer m.Unlock()
	if m.recipes[result] == nil {
		m.recipes[result] = domain.ItemList{}
	}
	m.recipes[result][ingredient] = quantity
}

func (m *MockSource) AddDrop(item domain.ItemID, monster domain.Monster, subArea domain.SubArea) {
	m.Lock()
	defer m.Unlock()
	m.drops[item] = append(m.drops[item], domain.DropSource{Monster: monster, SubArea: subArea})
}

func (m *MockSource) DropCalls(item domain.ItemID) int {
	m.RLock()
	defer m.RUnlock()
	return m.dropCalls[item]
}

func (m *MockSource) HasRecipe(ctx context.Context, itemID domain.ItemID) (bool, error) {
	m.RLock()
	defer m.RUnlock()
	if m.hasRecipeError != nil {
		return false, m.hasRecipeError
	}
	return len(m.recipes[itemID]) > 0, nil
}

func (m *MockSource) GetRecipe(ctx context.Context, itemID domain.ItemID, quantity domain.Quantity) (domain.ItemList, error) {
	m.Lock()
	defer m.Unlock()
	m.recipeCalls++
	if m.getRecipeError != nil {
		return nil, m.getRecipeError
	}
	return m.recipes[itemID].Scale(quantity)
}

func (m *MockSource) GetDropSources(ctx context.Context, itemID domain.ItemID) ([]domain.DropSource, error) {
	m.Lock()
	m.dropCalls[itemID]++
	gate := m.dropsGate
	m.Unlock()

	if gate != nil {
		<-gate
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.RLock()
	defer m.RUnlock()
	if m.dropsError != nil {
		return nil, m.dropsError
	}
	return append([]domain.DropSource(nil), m.drops[itemID]...), nil
}

func (m *MockSource) CountItems(ctx context.Context) (int, error) {
	m.RLock()
	defer m.RUnlock()
	if m.countError != nil {
		return 0, m.countError
	}
	if m.countOverride > 0 {
		return m.countOverride, nil
	}
	return len(m.items), nil
}

func (m *MockSource) GetItemByID(ctx context.Context, id domain.ItemID) (*domain.Item, error) {
	m.RLock()
	defer m.RUnlock()
	it, ok := m.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &it, nil
}

func (m *MockSource) GetItemsByIDs(ctx context.Context, ids []domain.ItemID) ([]domain.Item, error) {
	m.RLock()
	defer m.RUnlock()
	var out []domain.Item
	for _, id := range ids {
		if it, ok := m.items[id]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *MockSource) SearchItems(ctx context.Context, text string, limit int) ([]domain.Item, error) {
	return nil, nil
}

const (
	test1 = domain.FixtureItemTest1
	test2 = domain.FixtureItemTest2
	test3 = domain.FixtureItemTest3
	test4 = domain.FixtureItemTest4
)

// newFixtureSource builds the test1..test4 chain where each level needs ten of the previous one
func newFixtureSource() *MockSource {
	src := NewMockSource()
	src.AddItem(test1, "test1")
	src.AddItem(test2, "test2")
	src.AddItem(test3, "test3")
	src.AddItem(test4, "test4")
	src.AddRecipe(test2, test1, domain.FixtureRecipeQuantity)
	src.AddRecipe(test3, test2, domain.FixtureRecipeQuantity)
	src.AddRecipe(test4, test3, domain.FixtureRecipeQuantity)
	return src
}

func newTestService(src *MockSource) *service {
	return NewService(src, src, Config{}).(*service)
}
