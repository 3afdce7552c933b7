package favor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-engine/internal/common/logger"
	"match-engine/internal/models"
)

func newListing() *models.FavorListing {
	return &models.FavorListing{
		ListingMeta: models.ListingMeta{ID: "favor-1", Title: "Walk my dog"},
		FavorType:   "dog walking",
		DistanceKm:  3,
		TimeSlots:   []string{"weekends"},
		EffortLevel: "low",
	}
}

func newPrefs() *models.UserPreferences {
	return &models.UserPreferences{
		UserID: "user-1",
		Categories: models.CategoryPreferences{
			Favor: &models.FavorPreferences{
				FavorTypes:    []string{"dog walking"},
				MaxDistanceKm: 5,
				Availability:  []string{"weekday evenings", "weekends"},
				EffortLevels:  []string{"low", "medium"},
			},
		},
	}
}

func TestCalculateScore_GoodFit(t *testing.T) {
	s := New(logger.NewTestLogger(t))

	result := s.CalculateScore(newPrefs(), newListing(), nil)

	assert.Greater(t, result.OverallScore, 70)
	require.Len(t, result.Dimensions, 4)

	byName := map[string]models.Dimension{}
	for _, d := range result.Dimensions {
		byName[d.Name] = d
	}
	assert.Equal(t, 100, byName["Favor Type"].Score)
	assert.Equal(t, 100, byName["Distance"].Score)
	// One of the two availability windows overlaps the requested slots.
	assert.Equal(t, 50, byName["Availability"].Score)
	assert.Equal(t, 100, byName["Effort Level"].Score)
}

func TestCalculateScore_HighEffortRejected(t *testing.T) {
	s := New(logger.NewTestLogger(t))

	listing := newListing()
	listing.EffortLevel = "high"
	result := s.CalculateScore(newPrefs(), listing, nil)

	for _, d := range result.Dimensions {
		if d.Name == "Effort Level" {
			assert.Equal(t, 0, d.Score)
			assert.Contains(t, d.Description, "high")
		}
	}
}

func TestCalculateScore_NoPreferences(t *testing.T) {
	s := New(logger.NewTestLogger(t))

	result := s.CalculateScore(&models.UserPreferences{UserID: "user-1"}, newListing(), nil)

	assert.Equal(t, 50, result.OverallScore)
	require.Len(t, result.Dimensions, 1)
}

func TestCalculateScore_MissingFieldsScoreNeutral(t *testing.T) {
	s := New(logger.NewTestLogger(t))

	listing := &models.FavorListing{ListingMeta: models.ListingMeta{ID: "favor-2"}}
	result := s.CalculateScore(newPrefs(), listing, nil)

	for _, d := range result.Dimensions {
		assert.Equal(t, 50, d.Score, d.Name)
	}
	assert.Equal(t, 50, result.OverallScore)
}
