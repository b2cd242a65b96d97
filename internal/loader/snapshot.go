package loader

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
	"github.com/osse101/FarmPlanner_Go/internal/search"
)

// Snapshot is a whole data set held in memory. Besides loading, it serves as
// recipe source, catalog and user state, so the planner can run without a database.
// User state changes are kept in memory only.
type Snapshot struct {
	items           domain.ItemArena
	recipes         map[domain.ItemID]domain.ItemList
	drops           map[domain.ItemID][]domain.MonsterID
	monsters        map[domain.MonsterID]domain.Monster
	monsterSubAreas map[domain.MonsterID][]domain.SubAreaID
	subAreas        map[domain.SubAreaID]domain.SubArea
	maps            map[domain.SubAreaID][]domain.Map

	mu        sync.RWMutex
	wishList  domain.ItemList
	inventory domain.ItemList
}

// LoadSnapshot reads and parses a YAML snapshot file
func LoadSnapshot(ctx context.Context, path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", ErrMsgFailedToReadSnapshot, domain.ErrDataSourceUnavailable, err)
	}
	return ParseSnapshot(ctx, data)
}

// ParseSnapshot builds a snapshot from YAML bytes
func ParseSnapshot(ctx context.Context, data []byte) (*Snapshot, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParse, err)
	}
	return NewSnapshot(ctx, &doc)
}

// NewSnapshot indexes a parsed document. Duplicate drops collapse and links to
// unknown monsters are dropped; any other dangling reference is an error.
func NewSnapshot(ctx context.Context, doc *Document) (*Snapshot, error) {
	log := logger.FromContext(ctx)
	s := &Snapshot{
		items:           make(domain.ItemArena, len(doc.Items)),
		recipes:         make(map[domain.ItemID]domain.ItemList),
		drops:           make(map[domain.ItemID][]domain.MonsterID),
		monsters:        make(map[domain.MonsterID]domain.Monster, len(doc.Monsters)),
		monsterSubAreas: make(map[domain.MonsterID][]domain.SubAreaID),
		subAreas:        make(map[domain.SubAreaID]domain.SubArea, len(doc.SubAreas)),
		maps:            make(map[domain.SubAreaID][]domain.Map),
		wishList:        make(domain.ItemList),
		inventory:       make(domain.ItemList),
	}

	s.items.Put(doc.Items...)
	for _, m := range doc.Monsters {
		s.monsters[m.ID] = m
	}

	areas := make(map[domain.AreaID]domain.Area, len(doc.Areas))
	for _, a := range doc.Areas {
		areas[a.ID] = a
	}

	dangling := 0
	for _, rec := range doc.SubAreas {
		area, ok := areas[rec.AreaID]
		if !ok {
			return nil, invalidf("sub-area %d references unknown area %d", rec.ID, rec.AreaID)
		}
		s.subAreas[rec.ID] = domain.SubArea{ID: rec.ID, Name: rec.Name, Area: area}
		for _, mid := range dedupMonsters(rec.Monsters) {
			if _, ok := s.monsters[mid]; !ok {
				dangling++
				continue
			}
			s.monsterSubAreas[mid] = append(s.monsterSubAreas[mid], rec.ID)
		}
	}

	for _, m := range doc.Maps {
		if _, ok := s.subAreas[m.SubAreaID]; !ok {
			return nil, invalidf("map %d references unknown sub-area %d", m.ID, m.SubAreaID)
		}
		s.maps[m.SubAreaID] = append(s.maps[m.SubAreaID], m)
	}

	duplicates := 0
	for _, rec := range doc.Drops {
		if _, ok := s.items[rec.ItemID]; !ok {
			return nil, invalidf("drop references unknown item %d", rec.ItemID)
		}
		unique := dedupMonsters(append(s.drops[rec.ItemID], rec.Monsters...))
		duplicates += len(s.drops[rec.ItemID]) + len(rec.Monsters) - len(unique)
		kept := unique[:0]
		for _, mid := range unique {
			if _, ok := s.monsters[mid]; !ok {
				dangling++
				continue
			}
			kept = append(kept, mid)
		}
		s.drops[rec.ItemID] = kept
	}

	for _, rec := range doc.Recipes {
		if _, ok := s.items[rec.ResultID]; !ok {
			return nil, invalidf("recipe for unknown item %d", rec.ResultID)
		}
		if _, ok := s.recipes[rec.ResultID]; ok {
			return nil, invalidf("duplicate recipe for item %d", rec.ResultID)
		}
		lines := make(domain.ItemList, len(rec.Ingredients))
		for _, ing := range rec.Ingredients {
			if _, ok := s.items[ing.ItemID]; !ok {
				return nil, invalidf("recipe for item %d uses unknown item %d", rec.ResultID, ing.ItemID)
			}
			if ing.Quantity <= 0 {
				return nil, invalidf("recipe for item %d: %v", rec.ResultID, domain.ErrInvalidQuantity)
			}
			if err := lines.Add(ing.ItemID, ing.Quantity); err != nil {
				return nil, invalidf("recipe for item %d: %v", rec.ResultID, err)
			}
		}
		if !lines.IsEmpty() {
			s.recipes[rec.ResultID] = lines
		}
	}

	if err := s.loadUserRows(doc.WishList, s.wishList); err != nil {
		return nil, err
	}
	if err := s.loadUserRows(doc.Inventory, s.inventory); err != nil {
		return nil, err
	}

	if dangling > 0 {
		log.Warn(LogMsgDanglingMonsterLinks, "count", dangling)
	}
	if duplicates > 0 {
		log.Debug(LogMsgDuplicateDrops, "count", duplicates)
	}
	log.Info(LogMsgSnapshotLoaded,
		"items", len(s.items),
		"recipes", len(s.recipes),
		"monsters", len(s.monsters),
		"sub_areas", len(s.subAreas))
	return s, nil
}

func (s *Snapshot) loadUserRows(rows []QuantityRecord, into domain.ItemList) error {
	for _, row := range rows {
		if _, ok := s.items[row.ItemID]; !ok {
			return invalidf("user row references unknown item %d", row.ItemID)
		}
		// Zero rows mean absent
		if row.Quantity <= 0 {
			continue
		}
		into.Set(row.ItemID, row.Quantity)
	}
	return nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", ErrMsgInvalidSnapshot, domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func dedupMonsters(ids []domain.MonsterID) []domain.MonsterID {
	out := make([]domain.MonsterID, 0, len(ids))
	seen := make(map[domain.MonsterID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ---- RecipeSource ----

// HasRecipe reports whether the item has a recipe
func (s *Snapshot) HasRecipe(_ context.Context, itemID domain.ItemID) (bool, error) {
	_, ok := s.recipes[itemID]
	return ok, nil
}

// GetRecipe returns one level of the item's recipe multiplied by quantity
func (s *Snapshot) GetRecipe(_ context.Context, itemID domain.ItemID, quantity domain.Quantity) (domain.ItemList, error) {
	lines, ok := s.recipes[itemID]
	if !ok {
		return domain.ItemList{}, nil
	}
	out, err := lines.Scale(quantity)
	if err != nil {
		return nil, fmt.Errorf("item %d: %w", itemID, err)
	}
	return out, nil
}

// GetDropSources returns one row per (monster, sub-area) pair dropping the item,
// ordered by monster then sub-area id
func (s *Snapshot) GetDropSources(_ context.Context, itemID domain.ItemID) ([]domain.DropSource, error) {
	var out []domain.DropSource
	for _, mid := range s.drops[itemID] {
		for _, said := range s.monsterSubAreas[mid] {
			out = append(out, domain.DropSource{SubArea: s.subAreas[said], Monster: s.monsters[mid]})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Monster.ID != out[j].Monster.ID {
			return out[i].Monster.ID < out[j].Monster.ID
		}
		return out[i].SubArea.ID < out[j].SubArea.ID
	})
	return out, nil
}

// CountItems returns the number of known items
func (s *Snapshot) CountItems(_ context.Context) (int, error) {
	return len(s.items), nil
}

// ---- Catalog ----

// GetItemByID returns the item or domain.ErrItemNotFound
func (s *Snapshot) GetItemByID(_ context.Context, id domain.ItemID) (*domain.Item, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, id)
	}
	return &item, nil
}

// GetItemsByIDs returns the known items among ids, ordered by name
func (s *Snapshot) GetItemsByIDs(_ context.Context, ids []domain.ItemID) ([]domain.Item, error) {
	var out []domain.Item
	for _, id := range ids {
		if item, ok := s.items[id]; ok {
			out = append(out, item)
		}
	}
	domain.SortItemsByName(out)
	return out, nil
}

// SearchItems returns searchable items whose name contains text, ignoring case and accents
func (s *Snapshot) SearchItems(ctx context.Context, text string, limit int) ([]domain.Item, error) {
	if limit <= 0 || limit > domain.MaxSearchLimit {
		limit = domain.DefaultSearchLimit
	}
	var out []domain.Item
	for _, item := range s.items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if item.IsSearchable() && search.Match(text, item.Name) {
			out = append(out, item)
		}
	}
	domain.SortItemsByName(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ---- UserState ----

// UpsertWishItem stores a wish-list quantity
func (s *Snapshot) UpsertWishItem(_ context.Context, itemID domain.ItemID, quantity domain.Quantity) error {
	return s.upsert(s.wishList, itemID, quantity)
}

// DeleteWishItem removes a wish-list row
func (s *Snapshot) DeleteWishItem(_ context.Context, itemID domain.ItemID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wishList, itemID)
	return nil
}

// UpsertInventory stores a held quantity
func (s *Snapshot) UpsertInventory(_ context.Context, itemID domain.ItemID, quantity domain.Quantity) error {
	return s.upsert(s.inventory, itemID, quantity)
}

// DeleteInventory removes a held ingredient
func (s *Snapshot) DeleteInventory(_ context.Context, itemID domain.ItemID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inventory, itemID)
	return nil
}

func (s *Snapshot) upsert(list domain.ItemList, itemID domain.ItemID, quantity domain.Quantity) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, quantity)
	}
	if _, ok := s.items[itemID]; !ok {
		return fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	list.Set(itemID, quantity)
	return nil
}

// ---- DataLoader ----

// LoadAllSubAreas returns the sub-areas that own map tiles, ordered by id
func (s *Snapshot) LoadAllSubAreas(_ context.Context) ([]domain.SubAreaMaps, error) {
	out := make([]domain.SubAreaMaps, 0, len(s.maps))
	for id, maps := range s.maps {
		if len(maps) == 0 {
			continue
		}
		tiles := append([]domain.Map(nil), maps...)
		sort.Slice(tiles, func(i, j int) bool { return tiles[i].ID < tiles[j].ID })
		out = append(out, domain.SubAreaMaps{SubArea: s.subAreas[id], Maps: tiles})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubArea.ID < out[j].SubArea.ID })
	return out, nil
}

// LoadInitialState returns the held ingredients and the wish list
func (s *Snapshot) LoadInitialState(_ context.Context) (*domain.InitialState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := &domain.InitialState{Inventory: s.inventory.Clone()}
	seen := make(map[domain.ItemID]struct{})
	for _, id := range s.wishList.IDs() {
		item := s.items[id]
		state.WishList = append(state.WishList, domain.WishItem{Item: item, Quantity: s.wishList[id]})
		seen[id] = struct{}{}
	}
	for _, id := range s.inventory.IDs() {
		seen[id] = struct{}{}
	}
	for id := range seen {
		state.Items = append(state.Items, s.items[id])
	}
	domain.SortItemsByName(state.Items)
	return state, nil
}
