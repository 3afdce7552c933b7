package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-engine/internal/common/logger"
	"match-engine/internal/models"
)

func newListing() *models.LearningListing {
	return &models.LearningListing{
		ListingMeta: models.ListingMeta{ID: "learn-1", Title: "Spanish for beginners"},
		Subjects:    []string{"spanish"},
		SkillLevel:  "elementary",
		Format:      "online",
		Price:       200,
		Schedule:    []string{"evenings", "weekends"},
	}
}

func newPrefs() *models.UserPreferences {
	return &models.UserPreferences{
		UserID: "user-1",
		Categories: models.CategoryPreferences{
			Learning: &models.LearningPreferences{
				Subjects:   []string{"spanish"},
				SkillLevel: "beginner",
				Formats:    []string{"online"},
				BudgetMin:  0,
				BudgetMax:  300,
				Schedule:   []string{"evenings"},
			},
		},
	}
}

func TestCalculateScore_GoodFit(t *testing.T) {
	s := New(logger.NewTestLogger(t))

	result := s.CalculateScore(newPrefs(), newListing(), nil)

	assert.Greater(t, result.OverallScore, 70)
	require.Len(t, result.Dimensions, 5)

	byName := map[string]models.Dimension{}
	for _, d := range result.Dimensions {
		byName[d.Name] = d
	}
	assert.Equal(t, 100, byName["Subject Match"].Score)
	// One step apart on the five-level scale.
	assert.Equal(t, 75, byName["Skill Level"].Score)
	assert.Equal(t, 100, byName["Format"].Score)
	assert.Equal(t, 100, byName["Price Match"].Score)
	assert.Equal(t, 50, byName["Schedule"].Score)
}

func TestCalculateScore_UnknownSkillLevelScoresNeutral(t *testing.T) {
	s := New(logger.NewTestLogger(t))

	listing := newListing()
	listing.SkillLevel = "ninja"
	result := s.CalculateScore(newPrefs(), listing, nil)

	for _, d := range result.Dimensions {
		if d.Name == "Skill Level" {
			assert.Equal(t, 50, d.Score)
		}
	}
}

func TestCalculateScore_ExpertCourseForBeginner(t *testing.T) {
	s := New(logger.NewTestLogger(t))

	listing := newListing()
	listing.SkillLevel = "expert"
	result := s.CalculateScore(newPrefs(), listing, nil)

	for _, d := range result.Dimensions {
		if d.Name == "Skill Level" {
			// Opposite ends of the scale.
			assert.Equal(t, 0, d.Score)
		}
	}
}

func TestCalculateScore_NoPreferences(t *testing.T) {
	s := New(logger.NewTestLogger(t))

	result := s.CalculateScore(&models.UserPreferences{UserID: "user-1"}, newListing(), nil)

	assert.Equal(t, 50, result.OverallScore)
	require.Len(t, result.Dimensions, 1)
}
