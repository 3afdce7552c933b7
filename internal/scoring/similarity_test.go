package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"exact match", "downtown apartment", "downtown apartment", 100},
		{"exact match ignores case and spacing", "  Downtown Apartment ", "downtown APARTMENT", 100},
		{"partial word overlap", "senior go developer", "go developer remote", 50},
		{"no overlap", "piano lessons", "car repair", 0},
		{"empty first input", "", "anything", 0},
		{"empty second input", "anything", "", 0},
		{"both empty", "", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TextSimilarity(tt.a, tt.b))
		})
	}
}

func TestArrayOverlap(t *testing.T) {
	tests := []struct {
		name         string
		list1, list2 []string
		expected     int
	}{
		{
			"identical lists", []string{"a", "b", "c"}, []string{"a", "b", "c"}, 100,
		},
		{
			"subset over union",
			[]string{"JavaScript", "React", "TypeScript"},
			[]string{"JavaScript", "React", "TypeScript", "CSS"},
			75,
		},
		{
			"case insensitive", []string{"remote"}, []string{"Remote"}, 100,
		},
		{
			"disjoint lists", []string{"a"}, []string{"b"}, 0,
		},
		{
			"empty first list", nil, []string{"a"}, 0,
		},
		{
			"empty second list", []string{"a"}, nil, 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ArrayOverlap(tt.list1, tt.list2))
		})
	}
}

func TestRangeMatch(t *testing.T) {
	t.Run("inside range", func(t *testing.T) {
		assert.Equal(t, 100, RangeMatch(100, 80, 120))
		assert.Equal(t, 100, RangeMatch(80, 80, 120))
		assert.Equal(t, 100, RangeMatch(120, 80, 120))
	})

	t.Run("below min decays at full rate", func(t *testing.T) {
		score := RangeMatch(70, 80, 120)
		assert.Equal(t, 88, score)
		assert.Greater(t, score, 0)
		assert.Less(t, score, 100)
	})

	t.Run("above max penalized at half rate", func(t *testing.T) {
		below := RangeMatch(60, 80, 120)  // 25% shortfall of min
		above := RangeMatch(150, 80, 120) // 25% excess of max
		assert.Equal(t, 75, below)
		assert.Equal(t, 88, above)
		assert.Greater(t, above, below)
	})

	t.Run("far outside floors at zero", func(t *testing.T) {
		assert.Equal(t, 0, RangeMatch(-1000, 80, 120))
		assert.Equal(t, 0, RangeMatch(1e9, 80, 120))
	})

	t.Run("invalid bounds", func(t *testing.T) {
		assert.Equal(t, 0, RangeMatch(10, math.NaN(), 120))
		assert.Equal(t, 0, RangeMatch(10, 80, math.NaN()))
		assert.Equal(t, 0, RangeMatch(math.NaN(), 80, 120))
		assert.Equal(t, 0, RangeMatch(10, 120, 80))
		assert.Equal(t, 0, RangeMatch(-5, 0, 120))
	})
}

func TestDistanceDecay(t *testing.T) {
	assert.Equal(t, 100, DistanceDecay(5, 10))
	assert.Equal(t, 100, DistanceDecay(10, 10))
	assert.Equal(t, 50, DistanceDecay(15, 10))
	assert.Equal(t, 0, DistanceDecay(25, 10))
	assert.Equal(t, 0, DistanceDecay(5, 0))
	assert.Equal(t, 0, DistanceDecay(5, -1))
	assert.Equal(t, 0, DistanceDecay(math.NaN(), 10))
}

func TestScaleMatch(t *testing.T) {
	levels := []string{"entry", "junior", "mid", "senior", "expert", "lead"}

	assert.Equal(t, 100, ScaleMatch("mid", "mid", levels))
	assert.Equal(t, 100, ScaleMatch("Mid", " mid ", levels))
	assert.Equal(t, 80, ScaleMatch("junior", "mid", levels))
	assert.Equal(t, 80, ScaleMatch("senior", "mid", levels))
	assert.Equal(t, 0, ScaleMatch("entry", "lead", levels))

	// Unknown levels are missing data, not a mismatch.
	assert.Equal(t, 50, ScaleMatch("wizard", "mid", levels))
	assert.Equal(t, 50, ScaleMatch("mid", "", levels))
}
