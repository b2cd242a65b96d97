package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDelta(t *testing.T) {
	tests := []struct {
		name    string
		current Quantity
		delta   int32
		want    Quantity
		wantErr error
	}{
		{"Best Case: positive delta", 5, 3, 8, nil},
		{"Best Case: negative delta", 5, -3, 2, nil},
		{"Edge Case: clamps at zero", 5, -50, 0, nil},
		{"Edge Case: reaches max", MaxQuantity - 1, 1, MaxQuantity, nil},
		{"Error Case: overflow", MaxQuantity, 1, MaxQuantity, ErrQuantityOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyDelta(tt.current, tt.delta)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMulQuantity(t *testing.T) {
	got, err := MulQuantity(100, 10)
	assert.NoError(t, err)
	assert.Equal(t, Quantity(1000), got)

	_, err = MulQuantity(1000, 100)
	assert.ErrorIs(t, err, ErrQuantityOverflow)
}

func TestItem_IsSearchable(t *testing.T) {
	assert.True(t, Item{ID: 1, Category: ItemCategoryResource}.IsSearchable())
	assert.False(t, Item{ID: 1, Category: 3}.IsSearchable())
	assert.False(t, Item{ID: 1, Category: ItemCategoryEquipment, ImageID: PlaceholderImageID}.IsSearchable())
}

func TestSubAreaSet_DedupByID(t *testing.T) {
	s := SubAreaSet{}
	s.Add(SubArea{ID: 2, Name: "b"})
	s.Add(SubArea{ID: 1, Name: "a"})
	s.Add(SubArea{ID: 2, Name: "stale name"})
	got := s.Sorted()
	assert.Len(t, got, 2)
	assert.Equal(t, SubAreaID(1), got[0].ID)
	assert.Equal(t, "b", got[1].Name)
}
