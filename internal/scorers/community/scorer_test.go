package community

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-engine/internal/common/logger"
	"match-engine/internal/models"
)

func newListing() *models.CommunityListing {
	return &models.CommunityListing{
		ListingMeta: models.ListingMeta{ID: "com-1", Title: "Thursday games night"},
		Topics:      []string{"board games", "hiking"},
		EventType:   "meetup",
		DistanceKm:  8,
		GroupSize:   12,
	}
}

func newPrefs() *models.UserPreferences {
	return &models.UserPreferences{
		UserID: "user-1",
		Categories: models.CategoryPreferences{
			Community: &models.CommunityPreferences{
				Interests:     []string{"board games", "hiking"},
				EventTypes:    []string{"meetup"},
				MaxDistanceKm: 15,
				GroupSizeMin:  5,
				GroupSizeMax:  20,
			},
		},
	}
}

func TestCalculateScore_PerfectFit(t *testing.T) {
	s := New(logger.NewTestLogger(t))

	result := s.CalculateScore(newPrefs(), newListing(), nil)

	assert.Equal(t, 100, result.OverallScore)
	require.Len(t, result.Dimensions, 4)
	assert.Equal(t, "Strong match on Interest Match.", result.PrimaryMatchReason)
}

func TestCalculateScore_PoorFit(t *testing.T) {
	s := New(logger.NewTestLogger(t))

	listing := &models.CommunityListing{
		ListingMeta: models.ListingMeta{ID: "com-2"},
		Topics:      []string{"crypto"},
		EventType:   "rave",
		DistanceKm:  28,
		GroupSize:   200,
	}
	result := s.CalculateScore(newPrefs(), listing, nil)

	assert.Less(t, result.OverallScore, 20)
	assert.NotEmpty(t, result.ImprovementSuggestions)
}

func TestCalculateScore_GroupSizeOutsideBand(t *testing.T) {
	s := New(logger.NewTestLogger(t))

	listing := newListing()
	listing.GroupSize = 30
	result := s.CalculateScore(newPrefs(), listing, nil)

	for _, d := range result.Dimensions {
		if d.Name == "Group Size" {
			// 50% over the cap loses a quarter of the score.
			assert.Equal(t, 75, d.Score)
		}
	}
}

func TestCalculateScore_NoPreferences(t *testing.T) {
	s := New(logger.NewTestLogger(t))

	result := s.CalculateScore(&models.UserPreferences{UserID: "user-1"}, newListing(), nil)

	assert.Equal(t, 50, result.OverallScore)
	require.Len(t, result.Dimensions, 1)
}
