package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-engine/internal/models"
)

func TestAggregate_WeightedMean(t *testing.T) {
	// Unmapped names so the scorer-assigned weights apply directly.
	dims := []models.Dimension{
		{Name: "Alpha", Score: 90, Weight: 0.5},
		{Name: "Beta", Score: 80, Weight: 0.3},
	}
	// (90*0.5 + 80*0.3) / 0.8 = 86.25 -> 86
	assert.Equal(t, 86, Aggregate(dims, DefaultWeights()))
}

func TestAggregate_RoundsHalfAwayFromZero(t *testing.T) {
	dims := []models.Dimension{
		{Name: "Alpha", Score: 90, Weight: 0.25},
		{Name: "Beta", Score: 80, Weight: 0.75},
	}
	// weighted mean 82.5 rounds up to 83
	assert.Equal(t, 83, Aggregate(dims, DefaultWeights()))
}

func TestAggregate_ZeroTotalWeight(t *testing.T) {
	dims := []models.Dimension{
		{Name: "Alpha", Score: 90, Weight: 0},
		{Name: "Beta", Score: 80, Weight: -1},
	}
	assert.Equal(t, 0, Aggregate(dims, DefaultWeights()))
	assert.Equal(t, 0, Aggregate(nil, DefaultWeights()))
}

func TestAggregate_Bounds(t *testing.T) {
	dims := []models.Dimension{
		{Name: "Alpha", Score: 100, Weight: 0.6},
		{Name: "Beta", Score: 0, Weight: 0.4},
	}
	score := Aggregate(dims, DefaultWeights())
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 100)
}

func TestEffectiveWeight_SynonymRemap(t *testing.T) {
	weights := DefaultWeights()

	// Recognized names pull their weight from the resolved table.
	assert.InDelta(t, 0.3, EffectiveWeight(models.Dimension{Name: "Skills Match", Weight: 0.4}, weights), 1e-9)
	assert.InDelta(t, 0.1, EffectiveWeight(models.Dimension{Name: "Salary Match", Weight: 0.25}, weights), 1e-9)
	assert.InDelta(t, 0.15, EffectiveWeight(models.Dimension{Name: "Distance", Weight: 0.2}, weights), 1e-9)

	// Unrecognized names keep the scorer-assigned weight.
	assert.InDelta(t, 0.2, EffectiveWeight(models.Dimension{Name: "Work Arrangement", Weight: 0.2}, weights), 1e-9)
}

func TestResolveWeights_OverrideReplacesDefaults(t *testing.T) {
	prefs := &models.UserPreferences{
		UserID:  "u1",
		Weights: map[string]float64{"skills": 0.9},
	}
	weights := ResolveWeights(prefs)
	require.Len(t, weights, 1)

	// The override is a full replacement: keys absent from it fall back to
	// the scorer-assigned dimension weight.
	assert.InDelta(t, 0.9, EffectiveWeight(models.Dimension{Name: "Skills Match", Weight: 0.4}, weights), 1e-9)
	assert.InDelta(t, 0.25, EffectiveWeight(models.Dimension{Name: "Price Match", Weight: 0.25}, weights), 1e-9)
}

func TestResolveWeights_DefaultsWhenAbsent(t *testing.T) {
	assert.InDelta(t, 0.3, ResolveWeights(nil)["skills"], 1e-9)
	assert.InDelta(t, 0.05, ResolveWeights(&models.UserPreferences{UserID: "u1"})["aiTrend"], 1e-9)
}

func TestPrimaryReason(t *testing.T) {
	t.Run("strongest qualifying dimension wins", func(t *testing.T) {
		dims := []models.Dimension{
			{Name: "Skills Match", Score: 75},
			{Name: "Salary Match", Score: 92},
			{Name: "Distance", Score: 40},
		}
		assert.Equal(t, "Strong match on Salary Match.", PrimaryReason(dims))
	})

	t.Run("ties keep first in dimension order", func(t *testing.T) {
		dims := []models.Dimension{
			{Name: "Skills Match", Score: 90},
			{Name: "Salary Match", Score: 90},
		}
		assert.Equal(t, "Strong match on Skills Match.", PrimaryReason(dims))
	})

	t.Run("no dimension above threshold", func(t *testing.T) {
		dims := []models.Dimension{
			{Name: "Skills Match", Score: 69},
		}
		assert.Equal(t, ReasonModerate, PrimaryReason(dims))
	})
}

func TestSuggestions(t *testing.T) {
	dims := []models.Dimension{
		{Name: "Skills Match", Score: 45},
		{Name: "Salary Match", Score: 80},
		{Name: "Distance", Score: 10},
		{Name: "Availability", Score: 30},
		{Name: "Condition", Score: 49},
	}
	got := Suggestions(dims)
	require.Len(t, got, 3)
	assert.Equal(t, "Improve your distance match by updating your preferences.", got[0])
	assert.Equal(t, "Improve your availability match by updating your preferences.", got[1])
	assert.Equal(t, "Improve your skills match by updating your preferences.", got[2])
}

func TestSuggestions_NoWeakDimensions(t *testing.T) {
	dims := []models.Dimension{{Name: "Skills Match", Score: 80}}
	assert.Empty(t, Suggestions(dims))
}

func TestBuildResult(t *testing.T) {
	prefs := &models.UserPreferences{UserID: "user-1"}
	listing := &models.JobListing{ListingMeta: models.ListingMeta{ID: "job-1", Subcategory: "engineering"}}
	dims := []models.Dimension{
		{Name: "Alpha", Score: 90, Weight: 0.5},
		{Name: "Beta", Score: 80, Weight: 0.3},
	}

	result := BuildResult(prefs, listing, dims)
	assert.Equal(t, 86, result.OverallScore)
	assert.Equal(t, models.CategoryJob, result.Category)
	assert.Equal(t, "engineering", result.Subcategory)
	assert.Equal(t, "job-1", result.ListingID)
	assert.Equal(t, "user-1", result.UserID)
	assert.False(t, result.Timestamp.IsZero())
	assert.Equal(t, "Strong match on Alpha.", result.PrimaryMatchReason)
}

func TestDefaultResult(t *testing.T) {
	result := DefaultResult("user-1", "listing-1", "", models.CategoryRental)
	assert.Equal(t, 50, result.OverallScore)
	require.Len(t, result.Dimensions, 1)
	assert.Equal(t, "Overall Match", result.Dimensions[0].Name)
	assert.Equal(t, 50, result.Dimensions[0].Score)
	assert.InDelta(t, 1.0, result.Dimensions[0].Weight, 1e-9)
	assert.Equal(t, ReasonLimitedData, result.PrimaryMatchReason)
	require.Len(t, result.ImprovementSuggestions, 1)
	assert.Contains(t, result.ImprovementSuggestions[0], "rental")
}
