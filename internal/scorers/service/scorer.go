// Package service scores service listings across type, price, distance and
// provider rating.
package service

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
		logger: log.WithFields(map[string]interface{}{"scorer": string(models.CategoryService)}),
	}
}

func (s *Scorer) CalculateScore(prefs *models.UserPreferences, listing models.Listing, contextual map[string]interface{}) *models.Result {
	uid := ""
	var p *models.ServicePreferences
	if prefs != nil {
		uid = prefs.UserID
		p = prefs.Categories.Service
	}
	l, ok := listing.(*models.ServiceListing)
	if !ok || p == nil {
		return scoring.DefaultResult(uid, scoring.ListingID(listing), scoring.ListingSubcategory(listing), models.CategoryService)
	}

	dims := []models.Dimension{
		s.typeDimension(p, l),
		s.priceDimension(p, l),
		s.distanceDimension(p, l, contextual),
		s.ratingDimension(p, l),
	}

	result := scoring.BuildResult(prefs, l, dims)
	s.logger.Debug("service compatibility calculated", map[string]interface{}{
		"userId":    uid,
		"listingId": l.ID,
		"score":     result.OverallScore,
	})
	return result
}

func (s *Scorer) typeDimension(p *models.ServicePreferences, l *models.ServiceListing) models.Dimension {
	if len(p.ServiceTypes) == 0 || l.ServiceType == "" {
		return models.Dimension{Name: "Service Type", Score: 50, Weight: 0.30,
			Description: "No service type information available to compare"}
	}

	best := 0
	for _, st := range p.ServiceTypes {
		if sim := scoring.TextSimilarity(st, l.ServiceType); sim > best {
			best = sim
		}
	}

	var desc string
	switch {
	case best >= 90:
		desc = fmt.Sprintf("%s is exactly the kind of service you look for", l.ServiceType)
	case best >= 70:
		desc = fmt.Sprintf("%s is close to the services you look for", l.ServiceType)
	case best >= 50:
		desc = fmt.Sprintf("%s partially matches the services you look for", l.ServiceType)
	default:
		desc = fmt.Sprintf("%s is not among the services you look for", l.ServiceType)
	}
	return models.Dimension{Name: "Service Type", Score: best, Weight: 0.30, Description: desc}
}

func (s *Scorer) priceDimension(p *models.ServicePreferences, l *models.ServiceListing) models.Dimension {
	if p.BudgetMax <= 0 || l.Price <= 0 {
		return models.Dimension{Name: "Price Match", Score: 50, Weight: 0.25,
			Description: "No price information available to compare"}
	}

	score := scoring.RangeMatch(l.Price, p.BudgetMin, p.BudgetMax)
	var desc string
	switch {
	case score >= 90:
		desc = fmt.Sprintf("The %.0f price sits inside your budget", l.Price)
	case score >= 70:
		desc = fmt.Sprintf("The %.0f price is close to your budget", l.Price)
	case score >= 50:
		desc = fmt.Sprintf("The %.0f price stretches your budget", l.Price)
	default:
		desc = fmt.Sprintf("The %.0f price is well outside your budget", l.Price)
	}
	return models.Dimension{Name: "Price Match", Score: score, Weight: 0.25, Description: desc}
}

func (s *Scorer) distanceDimension(p *models.ServicePreferences, l *models.ServiceListing, contextual map[string]interface{}) models.Dimension {
	distance := scoring.ContextDistance(l.DistanceKm, contextual)
	if p.MaxDistanceKm <= 0 || distance <= 0 {
		return models.Dimension{Name: "Distance", Score: 50, Weight: 0.25,
			Description: "No distance information available to compare"}
	}

	score := scoring.DistanceDecay(distance, p.MaxDistanceKm)
	var desc string
	switch {
	case score >= 90:
		desc = fmt.Sprintf("%.1f km away, within your %.0f km limit", distance, p.MaxDistanceKm)
	case score >= 50:
		desc = fmt.Sprintf("%.1f km away, somewhat beyond your %.0f km limit", distance, p.MaxDistanceKm)
	default:
		desc = fmt.Sprintf("%.1f km away, far beyond your %.0f km limit", distance, p.MaxDistanceKm)
	}
	return models.Dimension{Name: "Distance", Score: score, Weight: 0.25, Description: desc}
}

func (s *Scorer) ratingDimension(p *models.ServicePreferences, l *models.ServiceListing) models.Dimension {
	if l.Rating <= 0 {
		return models.Dimension{Name: "Provider Rating", Score: 50, Weight: 0.20,
			Description: "This provider has no rating yet"}
	}

	// 5-star scale mapped to 0-100; falls short of a declared minimum at
	// double rate so a missed bar is visible in the score.
	score := scoring.ClampScore(int(l.Rating * 20))
	if p.MinRating > 0 && l.Rating < p.MinRating {
		score = scoring.ClampScore(score - int((p.MinRating-l.Rating)*20))
	}

	var desc string
	switch {
	case score >= 90:
		desc = fmt.Sprintf("Rated %.1f of 5, an excellent reputation", l.Rating)
	case score >= 70:
		desc = fmt.Sprintf("Rated %.1f of 5, a good reputation", l.Rating)
	case score >= 50:
		desc = fmt.Sprintf("Rated %.1f of 5, a moderate reputation", l.Rating)
	default:
		desc = fmt.Sprintf("Rated %.1f of 5, below your minimum of %.1f", l.Rating, p.MinRating)
	}
	return models.Dimension{Name: "Provider Rating", Score: score, Weight: 0.20, Description: desc}
}
