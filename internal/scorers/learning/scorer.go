// Package learning scores courses and tutoring offers across subject, skill
// level, format, price and schedule.
package learning

import (
	"fmt"

	"match-engine/internal/common/logger"
	"match-engine/internal/models"
	"match-engine/internal/scoring"
)

// skillLevels orders course levels from novice to expert for proximity
// comparison.
var skillLevels = []string{"beginner", "elementary", "intermediate", "advanced", "expert"}

type Scorer struct {
	logger logger.Logger
}

func New(log logger.Logger) *Scorer {
	return &Scorer{
		logger: log.WithFields(map[string]interface{}{"scorer": string(models.CategoryLearning)}),
	}
}

func (s *Scorer) CalculateScore(prefs *models.UserPreferences, listing models.Listing, _ map[string]interface{}) *models.Result {
	uid := ""
	var p *models.LearningPreferences
	if prefs != nil {
		uid = prefs.UserID
		p = prefs.Categories.Learning
	}
	l, ok := listing.(*models.LearningListing)
	if !ok || p == nil {
		return scoring.DefaultResult(uid, scoring.ListingID(listing), scoring.ListingSubcategory(listing), models.CategoryLearning)
	}

	dims := []models.Dimension{
		s.subjectDimension(p, l),
		s.levelDimension(p, l),
		s.formatDimension(p, l),
		s.priceDimension(p, l),
		s.scheduleDimension(p, l),
	}

	result := scoring.BuildResult(prefs, l, dims)
	s.logger.Debug("learning compatibility calculated", map[string]interface{}{
		"userId":    uid,
		"listingId": l.ID,
		"score":     result.OverallScore,
	})
	return result
}

func (s *Scorer) subjectDimension(p *models.LearningPreferences, l *models.LearningListing) models.Dimension {
	if len(p.Subjects) == 0 || len(l.Subjects) == 0 {
		return models.Dimension{Name: "Subject Match", Score: 50, Weight: 0.35,
			Description: "No subject information available to compare"}
	}

	score := scoring.ArrayOverlap(p.Subjects, l.Subjects)
	var desc string
	switch {
	case score >= 90:
		desc = "The course covers the subjects you want to learn"
	case score >= 70:
		desc = "The course covers most of the subjects you want to learn"
	case score >= 50:
		desc = "The course covers some of the subjects you want to learn"
	default:
		desc = "The course covers little of what you want to learn"
	}
	return models.Dimension{Name: "Subject Match", Score: score, Weight: 0.35, Description: desc}
}

func (s *Scorer) levelDimension(p *models.LearningPreferences, l *models.LearningListing) models.Dimension {
	if p.SkillLevel == "" || l.SkillLevel == "" {
		return models.Dimension{Name: "Skill Level", Score: 50, Weight: 0.20,
			Description: "No skill level information available to compare"}
	}

	score := scoring.ScaleMatch(l.SkillLevel, p.SkillLevel, skillLevels)
	var desc string
	switch {
	case score >= 90:
		desc = fmt.Sprintf("The %s level matches where you are", l.SkillLevel)
	case score >= 70:
		desc = fmt.Sprintf("The %s level is one step from where you are", l.SkillLevel)
	case score >= 50:
		desc = fmt.Sprintf("The %s level is a moderate fit for where you are", l.SkillLevel)
	default:
		desc = fmt.Sprintf("The %s level is far from your %s level", l.SkillLevel, p.SkillLevel)
	}
	return models.Dimension{Name: "Skill Level", Score: score, Weight: 0.20, Description: desc}
}

func (s *Scorer) formatDimension(p *models.LearningPreferences, l *models.LearningListing) models.Dimension {
	if len(p.Formats) == 0 || l.Format == "" {
		return models.Dimension{Name: "Format", Score: 50, Weight: 0.20,
			Description: "No format information available to compare"}
	}

	score := 0
	for _, f := range p.Formats {
		if scoring.TextSimilarity(f, l.Format) == 100 {
			score = 100
			break
		}
	}

	desc := fmt.Sprintf("The %s format is not one you prefer", l.Format)
	if score == 100 {
		desc = fmt.Sprintf("The %s format is one you prefer", l.Format)
	}
	return models.Dimension{Name: "Format", Score: score, Weight: 0.20, Description: desc}
}

func (s *Scorer) priceDimension(p *models.LearningPreferences, l *models.LearningListing) models.Dimension {
	if p.BudgetMax <= 0 || l.Price <= 0 {
		return models.Dimension{Name: "Price Match", Score: 50, Weight: 0.15,
			Description: "No price information available to compare"}
	}

	score := scoring.RangeMatch(l.Price, p.BudgetMin, p.BudgetMax)
	var desc string
	switch {
	case score >= 90:
		desc = fmt.Sprintf("The %.0f course fee sits inside your budget", l.Price)
	case score >= 70:
		desc = fmt.Sprintf("The %.0f course fee is close to your budget", l.Price)
	case score >= 50:
		desc = fmt.Sprintf("The %.0f course fee stretches your budget", l.Price)
	default:
		desc = fmt.Sprintf("The %.0f course fee is well outside your budget", l.Price)
	}
	return models.Dimension{Name: "Price Match", Score: score, Weight: 0.15, Description: desc}
}

func (s *Scorer) scheduleDimension(p *models.LearningPreferences, l *models.LearningListing) models.Dimension {
	if len(p.Schedule) == 0 || len(l.Schedule) == 0 {
		return models.Dimension{Name: "Schedule", Score: 50, Weight: 0.10,
			Description: "No schedule information available to compare"}
	}

	score := scoring.ArrayOverlap(p.Schedule, l.Schedule)
	var desc string
	switch {
	case score >= 90:
		desc = "The session times line up with your schedule"
	case score >= 50:
		desc = "Some session times line up with your schedule"
	default:
		desc = "The session times rarely line up with your schedule"
	}
	return models.Dimension{Name: "Schedule", Score: score, Weight: 0.10, Description: desc}
}
