package giveaway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-engine/internal/common/logger"
	"match-engine/internal/models"
)

func newListing() *models.GiveawayListing {
	return &models.GiveawayListing{
		ListingMeta:  models.ListingMeta{ID: "give-1", Title: "Free bookshelf"},
		ItemCategory: "furniture",
		DistanceKm:   4,
		Condition:    "good",
		PickupTimes:  []string{"weekend mornings"},
	}
}

func newPrefs() *models.UserPreferences {
	return &models.UserPreferences{
		UserID: "user-1",
		Categories: models.CategoryPreferences{
			Giveaway: &models.GiveawayPreferences{
				ItemCategories:       []string{"furniture"},
				MaxDistanceKm:        10,
				AcceptableConditions: []string{"good", "fair"},
				PickupTimes:          []string{"weekend mornings"},
			},
		},
	}
}

func TestCalculateScore_PerfectPickup(t *testing.T) {
	s := New(logger.NewTestLogger(t))

	result := s.CalculateScore(newPrefs(), newListing(), nil)

	assert.Equal(t, 100, result.OverallScore)
	require.Len(t, result.Dimensions, 4)
	assert.Equal(t, "Strong match on Item Category.", result.PrimaryMatchReason)
}

func TestCalculateScore_PoorFit(t *testing.T) {
	s := New(logger.NewTestLogger(t))

	listing := &models.GiveawayListing{
		ListingMeta:  models.ListingMeta{ID: "give-2"},
		ItemCategory: "electronics",
		DistanceKm:   18,
		Condition:    "broken",
		PickupTimes:  []string{"weekday noon"},
	}
	result := s.CalculateScore(newPrefs(), listing, nil)

	assert.Less(t, result.OverallScore, 50)
	assert.NotEmpty(t, result.ImprovementSuggestions)
}

func TestCalculateScore_DistanceBeyondRadiusDecays(t *testing.T) {
	s := New(logger.NewTestLogger(t))

	listing := newListing()
	listing.DistanceKm = 15
	result := s.CalculateScore(newPrefs(), listing, nil)

	for _, d := range result.Dimensions {
		if d.Name == "Distance" {
			// 5 km past a 10 km radius is halfway to the cutoff.
			assert.Equal(t, 50, d.Score)
		}
	}
}

func TestCalculateScore_NoPreferences(t *testing.T) {
	s := New(logger.NewTestLogger(t))

	result := s.CalculateScore(&models.UserPreferences{UserID: "user-1"}, newListing(), nil)

	assert.Equal(t, 50, result.OverallScore)
	require.Len(t, result.Dimensions, 1)
}
