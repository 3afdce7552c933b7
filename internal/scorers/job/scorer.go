// Package job scores job listings against a user's job preferences across
// skills, salary, work arrangement and experience level.
package job

import (
	"fmt"

	"match-engine/internal/common/logger"
	"match-engine/internal/models"
	"match-engine/internal/scoring"
)

// experienceLevels is the ordered career ladder used for level distance.
var experienceLevels = []string{"entry", "junior", "mid", "senior", "expert", "lead"}

type Scorer struct {
	logger logger.Logger
}

func New(log logger.Logger) *Scorer {
	return &Scorer{
		logger: log.WithFields(map[string]interface{}{"scorer": string(models.CategoryJob)}),
	}
}

func (s *Scorer) CalculateScore(prefs *models.UserPreferences, listing models.Listing, _ map[string]interface{}) *models.Result {
	uid := ""
	var p *models.JobPreferences
	if prefs != nil {
		uid = prefs.UserID
		p = prefs.Categories.Job
	}
	l, ok := listing.(*models.JobListing)
	if !ok || p == nil {
		return scoring.DefaultResult(uid, scoring.ListingID(listing), scoring.ListingSubcategory(listing), models.CategoryJob)
	}

	dims := []models.Dimension{
		s.skillsDimension(p, l),
		s.salaryDimension(p, l),
		s.arrangementDimension(p, l),
		s.experienceDimension(p, l),
	}

	result := scoring.BuildResult(prefs, l, dims)
	s.logger.Debug("job compatibility calculated", map[string]interface{}{
		"userId":    uid,
		"listingId": l.ID,
		"score":     result.OverallScore,
	})
	return result
}

func (s *Scorer) skillsDimension(p *models.JobPreferences, l *models.JobListing) models.Dimension {
	if len(p.DesiredSkills) == 0 || len(l.Skills) == 0 {
		return models.Dimension{
			Name:        "Skills Match",
			Score:       50,
			Weight:      0.40,
			Description: "No skill information available to compare",
		}
	}

	score := scoring.ArrayOverlap(p.DesiredSkills, l.Skills)
	var desc string
	switch {
	case score >= 90:
		desc = fmt.Sprintf("Excellent alignment with the %d skills this position asks for", len(l.Skills))
	case score >= 70:
		desc = "Good overlap with the skills this position asks for"
	case score >= 50:
		desc = "Moderate overlap with the required skills"
	default:
		desc = "Few of your desired skills appear in this listing"
	}
	return models.Dimension{Name: "Skills Match", Score: score, Weight: 0.40, Description: desc}
}

func (s *Scorer) salaryDimension(p *models.JobPreferences, l *models.JobListing) models.Dimension {
	if p.SalaryMax <= 0 || (l.SalaryMin <= 0 && l.SalaryMax <= 0) {
		return models.Dimension{
			Name:        "Salary Match",
			Score:       50,
			Weight:      0.25,
			Description: "No salary information available to compare",
		}
	}

	// Midpoint of the advertised range, or whichever bound is present.
	offered := l.SalaryMin
	switch {
	case l.SalaryMin > 0 && l.SalaryMax > 0:
		offered = (l.SalaryMin + l.SalaryMax) / 2
	case l.SalaryMax > 0:
		offered = l.SalaryMax
	}

	score := scoring.RangeMatch(offered, p.SalaryMin, p.SalaryMax)
	var desc string
	switch {
	case score >= 90:
		desc = fmt.Sprintf("Offered salary around %.0f sits inside your desired range", offered)
	case score >= 70:
		desc = fmt.Sprintf("Offered salary around %.0f is close to your desired range", offered)
	case score >= 50:
		desc = fmt.Sprintf("Offered salary around %.0f is a moderate fit for your range", offered)
	default:
		desc = fmt.Sprintf("Offered salary around %.0f is below your preference", offered)
	}
	return models.Dimension{Name: "Salary Match", Score: score, Weight: 0.25, Description: desc}
}

func (s *Scorer) arrangementDimension(p *models.JobPreferences, l *models.JobListing) models.Dimension {
	if len(p.WorkArrangements) == 0 || l.WorkArrangement == "" {
		return models.Dimension{
			Name:        "Work Arrangement",
			Score:       50,
			Weight:      0.20,
			Description: "No work arrangement information available to compare",
		}
	}

	score := 0
	for _, a := range p.WorkArrangements {
		if scoring.TextSimilarity(a, l.WorkArrangement) == 100 {
			score = 100
			break
		}
	}

	desc := fmt.Sprintf("%s work is not among your accepted arrangements", l.WorkArrangement)
	if score == 100 {
		desc = fmt.Sprintf("%s work matches your accepted arrangements", l.WorkArrangement)
	}
	return models.Dimension{Name: "Work Arrangement", Score: score, Weight: 0.20, Description: desc}
}

func (s *Scorer) experienceDimension(p *models.JobPreferences, l *models.JobListing) models.Dimension {
	score := scoring.ScaleMatch(l.ExperienceLevel, p.ExperienceLevel, experienceLevels)
	var desc string
	switch {
	case score >= 90:
		desc = fmt.Sprintf("The %s level matches your experience exactly", l.ExperienceLevel)
	case score >= 70:
		desc = fmt.Sprintf("The %s level is one step from your experience", l.ExperienceLevel)
	case score >= 50:
		desc = "Experience level is a moderate fit or not specified"
	default:
		desc = fmt.Sprintf("The %s level is far from your experience", l.ExperienceLevel)
	}
	return models.Dimension{Name: "Experience Level", Score: score, Weight: 0.15, Description: desc}
}
