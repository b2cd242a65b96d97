package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Épée", "epee"},
		{"  Bouftou Wool ", "bouftou wool"},
		{"ÇA", "ca"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestMatch(t *testing.T) {
	assert.True(t, Match("epee", "Grande Épée"))
	assert.True(t, Match("", "anything"))
	assert.False(t, Match("wool", "Bouftou Leather"))
}

func TestRank(t *testing.T) {
	items := []domain.Item{
		{ID: 1, Name: "Wheat Flour"},
		{ID: 2, Name: "Wheat"},
		{ID: 3, Name: "Buckwheat"},
		{ID: 4, Name: "Golden Wheat Bread"},
		{ID: 5, Name: "Barley"},
		{ID: 6, Name: "Wheet Straw"},
	}

	t.Run("Best Case: exact, prefix, word prefix, contains", func(t *testing.T) {
		got := Rank("wheat", items, 0)
		ids := make([]domain.ItemID, len(got))
		for i, it := range got {
			ids[i] = it.ID
		}
		assert.Equal(t, []domain.ItemID{2, 1, 4, 3, 6}, ids)
	})

	t.Run("Edge Case: limit", func(t *testing.T) {
		got := Rank("wheat", items, 2)
		require.Len(t, got, 2)
		assert.Equal(t, domain.ItemID(2), got[0].ID)
	})

	t.Run("Edge Case: short query is not fuzzy", func(t *testing.T) {
		got := Rank("wx", items, 0)
		assert.Empty(t, got)
	})
}

func TestTracker(t *testing.T) {
	var tr Tracker

	ctx1, seq1 := tr.Begin(context.Background(), "whe")
	ctx2, seq2 := tr.Begin(context.Background(), "wheat")

	assert.Greater(t, seq2, seq1)
	assert.ErrorIs(t, ctx1.Err(), context.Canceled)
	assert.NoError(t, ctx2.Err())

	assert.False(t, tr.Finish(seq1))
	seq, text := tr.Current()
	assert.Equal(t, seq2, seq)
	assert.Equal(t, "wheat", text)

	assert.True(t, tr.Finish(seq2))
	assert.ErrorIs(t, ctx2.Err(), context.Canceled)

	tr.Stop()
}
