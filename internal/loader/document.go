package loader

import (
	"github.com/osse101/FarmPlanner_Go/internal/domain"
)

// Document is the on-disk YAML form of a snapshot. It follows the shape of the
// game data exports: drops and monster habitats are listed per item and per
// sub-area, and may contain duplicates or unknown monsters.
type Document struct {
	Areas     []domain.Area    `yaml:"areas"`
	SubAreas  []SubAreaRecord  `yaml:"sub_areas"`
	Maps      []domain.Map     `yaml:"maps"`
	Items     []domain.Item    `yaml:"items"`
	Monsters  []domain.Monster `yaml:"monsters"`
	Drops     []DropRecord     `yaml:"drops"`
	Recipes   []RecipeRecord   `yaml:"recipes"`
	WishList  []QuantityRecord `yaml:"wish_list"`
	Inventory []QuantityRecord `yaml:"inventory"`
}

// SubAreaRecord is a sub-area with the monsters living in it
type SubAreaRecord struct {
	ID       domain.SubAreaID   `yaml:"id"`
	Name     string             `yaml:"name"`
	AreaID   domain.AreaID      `yaml:"area_id"`
	Monsters []domain.MonsterID `yaml:"monsters"`
}

// DropRecord lists the monsters dropping an item
type DropRecord struct {
	ItemID   domain.ItemID      `yaml:"item_id"`
	Monsters []domain.MonsterID `yaml:"monsters"`
}

// RecipeRecord is the full recipe of one result item
type RecipeRecord struct {
	ResultID    domain.ItemID    `yaml:"result_id"`
	Ingredients []QuantityRecord `yaml:"ingredients"`
}

// QuantityRecord is an (item, quantity) pair
type QuantityRecord struct {
	ItemID   domain.ItemID   `yaml:"item_id"`
	Quantity domain.Quantity `yaml:"quantity"`
}
