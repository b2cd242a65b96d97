package domain

import "sort"

// ItemList is a quantity multiset keyed by item id. It is the working
// representation of "how many of each item" for recipes, expansions and inventory.
// Iteration order is fixed through IDs, which sorts by item id.
type ItemList map[ItemID]Quantity

// Get returns the quantity for id, 0 when absent.
func (l ItemList) Get(id ItemID) Quantity {
	return l[id]
}

// Add increments the quantity for id. A result of exactly 0 removes the entry.
func (l ItemList) Add(id ItemID, q Quantity) error {
	sum, err := AddQuantity(l[id], q)
	if err != nil {
		return err
	}
	l.Set(id, sum)
	return nil
}

// Set overwrites the quantity for id. Setting 0 removes the entry.
func (l ItemList) Set(id ItemID, q Quantity) {
	if q == 0 {
		delete(l, id)
		return
	}
	l[id] = q
}

// Merge adds every entry of other into l.
func (l ItemList) Merge(other ItemList) error {
	for _, id := range other.IDs() {
		if err := l.Add(id, other[id]); err != nil {
			return err
		}
	}
	return nil
}

// Scale returns a copy of l with every quantity multiplied by factor.
func (l ItemList) Scale(factor Quantity) (ItemList, error) {
	out := make(ItemList, len(l))
	for _, id := range l.IDs() {
		q, err := MulQuantity(l[id], factor)
		if err != nil {
			return nil, err
		}
		out.Set(id, q)
	}
	return out, nil
}

// Clone returns an independent copy.
func (l ItemList) Clone() ItemList {
	out := make(ItemList, len(l))
	for id, q := range l {
		out[id] = q
	}
	return out
}

// IDs returns the item ids in ascending order.
func (l ItemList) IDs() []ItemID {
	ids := make([]ItemID, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// IsEmpty reports whether the list holds no entries.
func (l ItemList) IsEmpty() bool {
	return len(l) == 0
}

// ItemQuantity is a single (item, quantity) pair, the serialized form of an ItemList entry.
type ItemQuantity struct {
	ItemID   ItemID   `json:"item_id" yaml:"item_id"`
	Quantity Quantity `json:"quantity" yaml:"quantity"`
}

// Entries flattens the list into pairs ordered by item id.
func (l ItemList) Entries() []ItemQuantity {
	out := make([]ItemQuantity, 0, len(l))
	for _, id := range l.IDs() {
		out = append(out, ItemQuantity{ItemID: id, Quantity: l[id]})
	}
	return out
}
