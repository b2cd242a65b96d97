package domain

import "sort"

// MonsterID identifies a monster.
type MonsterID int32

// Monster drops items and inhabits sub-areas.
type Monster struct {
	ID   MonsterID `json:"id" yaml:"id"`
	Name string    `json:"name" yaml:"name"`
}

// AreaID identifies an area.
type AreaID int32

// Area groups sub-areas.
type Area struct {
	ID   AreaID `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// SubAreaID identifies a sub-area.
type SubAreaID int32

// SubArea belongs to exactly one area. Identity is the ID only: the data source
// may return stale names, so SubArea values are always keyed by ID.
type SubArea struct {
	ID   SubAreaID `json:"id"`
	Name string    `json:"name"`
	Area Area      `json:"area"`
}

// MapID identifies a map tile.
type MapID int32

// Map is a grid tile of a sub-area.
type Map struct {
	ID        MapID     `json:"id" yaml:"id"`
	Name      *string   `json:"name,omitempty" yaml:"name,omitempty"`
	X         int16     `json:"x" yaml:"x"`
	Y         int16     `json:"y" yaml:"y"`
	SubAreaID SubAreaID `json:"sub_area_id" yaml:"sub_area_id"`
}

// SubAreaMaps is a sub-area with the tiles it owns. Sub-areas without tiles are never loaded.
type SubAreaMaps struct {
	SubArea SubArea `json:"sub_area"`
	Maps    []Map   `json:"maps"`
}

// DropSource is one row of the ingredient -> drop -> monster -> sub-area join.
type DropSource struct {
	SubArea SubArea
	Monster Monster
}

// MonsterSources is a monster with the set of sub-areas it inhabits.
type MonsterSources struct {
	Monster  Monster   `json:"monster"`
	SubAreas []SubArea `json:"sub_areas"`
}

// SubAreaSet is a set of sub-areas keyed by id.
type SubAreaSet map[SubAreaID]SubArea

// Add inserts the sub-area. A repeated id keeps the first record.
func (s SubAreaSet) Add(sa SubArea) {
	if _, ok := s[sa.ID]; !ok {
		s[sa.ID] = sa
	}
}

// Sorted returns the members ordered by id.
func (s SubAreaSet) Sorted() []SubArea {
	out := make([]SubArea, 0, len(s))
	for _, sa := range s {
		out = append(out, sa)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
