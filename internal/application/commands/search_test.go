package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takenotes/internal/application"
	"takenotes/internal/domain"
)

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		query     string
		wantScore int
		wantMin   int // use this for relative comparisons
	}{
		{
			name:      "exact match",
			target:    "design",
			query:     "design",
			wantScore: 150, // 100 for contains + 50 for prefix
		},
		{
			name:      "prefix match",
			target:    "design/ui",
			query:     "design",
			wantScore: 150,
		},
		{
			name:      "substring match",
			target:    "work/design",
			query:     "design",
			wantScore: 100,
		},
		{
			name:    "fuzzy match across segments",
			target:  "work/design/ui",
			query:   "wdu",
			wantMin: 1,
		},
		{
			name:      "no match",
			target:    "design",
			query:     "xyz",
			wantScore: 0,
		},
		{
			name:      "empty query",
			target:    "design",
			query:     "",
			wantScore: 0,
		},
		{
			name:    "case insensitive",
			target:  "DESIGN",
			query:   "design",
			wantMin: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := FuzzyScore(tt.target, tt.query)

			switch {
			case tt.wantScore > 0:
				assert.Equal(t, tt.wantScore, score)
			case tt.wantMin > 0:
				assert.GreaterOrEqual(t, score, tt.wantMin)
			default:
				assert.Zero(t, score)
			}
		})
	}
}

func TestFuzzyScore_Ordering(t *testing.T) {
	query := "recipes"

	exactScore := FuzzyScore("recipes", query)
	containsScore := FuzzyScore("personal/recipes", query)
	fuzzyScore := FuzzyScore("r-e-c-i-p-e-s", query)

	assert.GreaterOrEqual(t, exactScore, containsScore)
	assert.Greater(t, containsScore, fuzzyScore)
	assert.Positive(t, fuzzyScore)
}

func TestFuzzySort(t *testing.T) {
	labels := []application.LabelView{
		{Name: "random", Path: "random"},
		{Name: "design", Path: "work/design"},
		{Name: "cooking", Path: "personal/cooking"},
		{Name: "ui", Path: "work/design/ui"},
	}

	sorted := FuzzySort(labels, "design")

	require.Len(t, sorted, 2)
	assert.Equal(t, "work/design", sorted[0].Path, "name prefix beats path substring")
	assert.Equal(t, "work/design/ui", sorted[1].Path)
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i].Score, sorted[i-1].Score)
	}
}

func TestSearchCommand(t *testing.T) {
	labels := newSeeded(t)

	results, err := NewSearchCommand(labels, domain.KindTag, "#read").Execute(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "personal/reading", results[0].Path)

	short, err := NewSearchCommand(labels, domain.KindTag, "r").Execute(context.Background())
	require.NoError(t, err)
	assert.Nil(t, short)

	_, err = NewSearchCommand(labels, domain.Kind("note"), "read").Execute(context.Background())
	require.Error(t, err)
}
