// Package holiday scores holiday packages across destination, budget, travel
// style, trip duration and activities.
package holiday

import (
	"fmt"

	"match-engine/internal/common/logger"
	"match-engine/internal/models"
	"match-engine/internal/scoring"
)

type Scorer struct {
	logger logger.Logger
}

func New(log logger.Logger) *Scorer {
	return &Scorer{
		logger: log.WithFields(map[string]interface{}{"scorer": string(models.CategoryHoliday)}),
	}
}

func (s *Scorer) CalculateScore(prefs *models.UserPreferences, listing models.Listing, _ map[string]interface{}) *models.Result {
	uid := ""
	var p *models.HolidayPreferences
	if prefs != nil {
		uid = prefs.UserID
		p = prefs.Categories.Holiday
	}
	l, ok := listing.(*models.HolidayListing)
	if !ok || p == nil {
		return scoring.DefaultResult(uid, scoring.ListingID(listing), scoring.ListingSubcategory(listing), models.CategoryHoliday)
	}

	dims := []models.Dimension{
		s.destinationDimension(p, l),
		s.budgetDimension(p, l),
		s.styleDimension(p, l),
		s.durationDimension(p, l),
		s.activitiesDimension(p, l),
	}

	result := scoring.BuildResult(prefs, l, dims)
	s.logger.Debug("holiday compatibility calculated", map[string]interface{}{
		"userId":    uid,
		"listingId": l.ID,
		"score":     result.OverallScore,
	})
	return result
}

func (s *Scorer) destinationDimension(p *models.HolidayPreferences, l *models.HolidayListing) models.Dimension {
	if len(p.Destinations) == 0 || l.Destination == "" {
		return models.Dimension{Name: "Destination", Score: 50, Weight: 0.30,
			Description: "No destination information available to compare"}
	}

	best := 0
	for _, d := range p.Destinations {
		if sim := scoring.TextSimilarity(d, l.Destination); sim > best {
			best = sim
		}
	}

	var desc string
	switch {
	case best >= 90:
		desc = fmt.Sprintf("%s is on your destination wish list", l.Destination)
	case best >= 70:
		desc = fmt.Sprintf("%s is close to destinations on your wish list", l.Destination)
	case best >= 50:
		desc = fmt.Sprintf("%s partially matches your wish list", l.Destination)
	default:
		desc = fmt.Sprintf("%s is not on your destination wish list", l.Destination)
	}
	return models.Dimension{Name: "Destination", Score: best, Weight: 0.30, Description: desc}
}

func (s *Scorer) budgetDimension(p *models.HolidayPreferences, l *models.HolidayListing) models.Dimension {
	if p.BudgetMax <= 0 || l.Price <= 0 {
		return models.Dimension{Name: "Budget Match", Score: 50, Weight: 0.25,
			Description: "No price information available to compare"}
	}

	score := scoring.RangeMatch(l.Price, p.BudgetMin, p.BudgetMax)
	var desc string
	switch {
	case score >= 90:
		desc = fmt.Sprintf("The %.0f package price sits inside your budget", l.Price)
	case score >= 70:
		desc = fmt.Sprintf("The %.0f package price is close to your budget", l.Price)
	case score >= 50:
		desc = fmt.Sprintf("The %.0f package price stretches your budget", l.Price)
	default:
		desc = fmt.Sprintf("The %.0f package price is well outside your budget", l.Price)
	}
	return models.Dimension{Name: "Budget Match", Score: score, Weight: 0.25, Description: desc}
}

func (s *Scorer) styleDimension(p *models.HolidayPreferences, l *models.HolidayListing) models.Dimension {
	if len(p.TravelStyles) == 0 || len(l.TravelStyles) == 0 {
		return models.Dimension{Name: "Travel Style", Score: 50, Weight: 0.20,
			Description: "No travel style information available to compare"}
	}

	score := scoring.ArrayOverlap(p.TravelStyles, l.TravelStyles)
	var desc string
	switch {
	case score >= 90:
		desc = "The trip style matches how you like to travel"
	case score >= 70:
		desc = "The trip style mostly matches how you like to travel"
	case score >= 50:
		desc = "The trip style partly matches how you like to travel"
	default:
		desc = "The trip style differs from how you like to travel"
	}
	return models.Dimension{Name: "Travel Style", Score: score, Weight: 0.20, Description: desc}
}

func (s *Scorer) durationDimension(p *models.HolidayPreferences, l *models.HolidayListing) models.Dimension {
	if p.DurationMaxDays <= 0 || l.DurationDays <= 0 {
		return models.Dimension{Name: "Duration Match", Score: 50, Weight: 0.15,
			Description: "No trip duration information available to compare"}
	}

	score := scoring.RangeMatch(l.DurationDays, p.DurationMinDays, p.DurationMaxDays)
	var desc string
	switch {
	case score >= 90:
		desc = fmt.Sprintf("A %.0f-day trip fits your desired length", l.DurationDays)
	case score >= 70:
		desc = fmt.Sprintf("A %.0f-day trip is close to your desired length", l.DurationDays)
	case score >= 50:
		desc = fmt.Sprintf("A %.0f-day trip is a moderate fit for your desired length", l.DurationDays)
	default:
		desc = fmt.Sprintf("A %.0f-day trip is far from your desired length", l.DurationDays)
	}
	return models.Dimension{Name: "Duration Match", Score: score, Weight: 0.15, Description: desc}
}

func (s *Scorer) activitiesDimension(p *models.HolidayPreferences, l *models.HolidayListing) models.Dimension {
	if len(p.Activities) == 0 || len(l.Activities) == 0 {
		return models.Dimension{Name: "Activities", Score: 50, Weight: 0.10,
			Description: "No activity information available to compare"}
	}

	score := scoring.ArrayOverlap(p.Activities, l.Activities)
	var desc string
	switch {
	case score >= 90:
		desc = "The offered activities cover what you enjoy"
	case score >= 70:
		desc = "The offered activities cover most of what you enjoy"
	case score >= 50:
		desc = "The offered activities cover some of what you enjoy"
	default:
		desc = "The offered activities cover little of what you enjoy"
	}
	return models.Dimension{Name: "Activities", Score: score, Weight: 0.10, Description: desc}
}
