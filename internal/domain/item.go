package domain

import (
	"sort"
	"strings"
)

// ItemID identifies an item. Equality and hashing of items use the id alone.
type ItemID int32

// Item is immutable reference data loaded from the recipe/drop data source.
// Two items with the same ID are the same item even if other fields differ.
type Item struct {
	ID       ItemID `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Category int16  `json:"category" yaml:"category"`
	ImageID  int32  `json:"image_id" yaml:"image_id"`
}

// Item categories that can be added to a wish list or an inventory.
const (
	ItemCategoryEquipment  int16 = 0
	ItemCategoryConsumable int16 = 1
	ItemCategoryResource   int16 = 2
)

// SearchableCategories lists the categories returned by item search.
var SearchableCategories = []int16{ItemCategoryEquipment, ItemCategoryConsumable, ItemCategoryResource}

// PlaceholderImageID is the image shared by items that have no real artwork.
// Items carrying it are hidden from search results.
const PlaceholderImageID int32 = 89042

// IsSearchable reports whether the item may appear in search results.
func (i Item) IsSearchable() bool {
	if i.ImageID == PlaceholderImageID {
		return false
	}
	for _, c := range SearchableCategories {
		if i.Category == c {
			return true
		}
	}
	return false
}

// SortItemsByName orders items by name for stable display, falling back to id.
func SortItemsByName(items []Item) {
	sort.Slice(items, func(a, b int) bool {
		na, nb := strings.ToLower(items[a].Name), strings.ToLower(items[b].Name)
		if na != nb {
			return na < nb
		}
		return items[a].ID < items[b].ID
	})
}

// ItemArena is the id -> record side table shared by every id-keyed map.
type ItemArena map[ItemID]Item

// Put stores the item, replacing any record with the same id.
func (a ItemArena) Put(items ...Item) {
	for _, it := range items {
		a[it.ID] = it
	}
}

// Lookup returns the record for id, or a stub carrying only the id.
func (a ItemArena) Lookup(id ItemID) Item {
	if it, ok := a[id]; ok {
		return it
	}
	return Item{ID: id}
}

// Missing returns the ids that have no record in the arena, sorted.
func (a ItemArena) Missing(ids []ItemID) []ItemID {
	var missing []ItemID
	for _, id := range ids {
		if _, ok := a[id]; !ok {
			missing = append(missing, id)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}
