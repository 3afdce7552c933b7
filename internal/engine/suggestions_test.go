package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"match-engine/internal/models"
)

func TestDetailedSuggestions_TargetedAdvice(t *testing.T) {
	dims := []models.Dimension{
		{Name: "Skills Match", Score: 20, Weight: 0.40},
		{Name: "Salary Match", Score: 100, Weight: 0.25},
	}

	got := detailedSuggestions(models.CategoryJob, dims)

	assert.Equal(t, []string{
		"Add the skills this role requires to your profile, or search for roles built on your current skills.",
	}, got)
}

func TestDetailedSuggestions_LightweightDimensionsIgnored(t *testing.T) {
	// Low score but under the weight threshold: no targeted advice.
	dims := []models.Dimension{
		{Name: "Salary Match", Score: 10, Weight: 0.25},
		{Name: "Work Arrangement", Score: 0, Weight: 0.20},
	}

	got := detailedSuggestions(models.CategoryJob, dims)

	assert.Equal(t, genericAdvice, got)
}

func TestDetailedSuggestions_ThresholdWeightFires(t *testing.T) {
	// A weight of exactly 0.30 is enough for targeted advice.
	dims := []models.Dimension{
		{Name: "Price Match", Score: 20, Weight: 0.30},
		{Name: "Rental Type", Score: 100, Weight: 0.25},
	}

	got := detailedSuggestions(models.CategoryRental, dims)

	assert.Equal(t, []string{
		"Adjust your rental budget or search in areas with lower rents.",
	}, got)
}

func TestDetailedSuggestions_HealthyDimensionsFallBackToGeneric(t *testing.T) {
	dims := []models.Dimension{
		{Name: "Interest Match", Score: 95, Weight: 0.40},
	}

	got := detailedSuggestions(models.CategoryCommunity, dims)

	assert.Len(t, got, 2)
	assert.Equal(t, genericAdvice, got)
}

func TestDetailedSuggestions_UnknownCategory(t *testing.T) {
	dims := []models.Dimension{
		{Name: "Overall Match", Score: 50, Weight: 1},
	}

	got := detailedSuggestions(models.Category("vehicle"), dims)

	assert.Equal(t, genericAdvice, got)
}

func TestDetailedSuggestions_UnlistedDimensionName(t *testing.T) {
	// Heavy and weak, but no advice entry for the name: generic fallback.
	dims := []models.Dimension{
		{Name: "Moon Phase", Score: 5, Weight: 0.9},
	}

	got := detailedSuggestions(models.CategoryJob, dims)

	assert.Equal(t, genericAdvice, got)
}
