// Package favor scores neighborly favor requests across type, distance,
// availability overlap and effort level.
package favor

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
		logger: log.WithFields(map[string]interface{}{"scorer": string(models.CategoryFavor)}),
	}
}

func (s *Scorer) CalculateScore(prefs *models.UserPreferences, listing models.Listing, contextual map[string]interface{}) *models.Result {
	uid := ""
	var p *models.FavorPreferences
	if prefs != nil {
		uid = prefs.UserID
		p = prefs.Categories.Favor
	}
	l, ok := listing.(*models.FavorListing)
	if !ok || p == nil {
		return scoring.DefaultResult(uid, scoring.ListingID(listing), scoring.ListingSubcategory(listing), models.CategoryFavor)
	}

	dims := []models.Dimension{
		s.typeDimension(p, l),
		s.distanceDimension(p, l, contextual),
		s.availabilityDimension(p, l),
		s.effortDimension(p, l),
	}

	result := scoring.BuildResult(prefs, l, dims)
	s.logger.Debug("favor compatibility calculated", map[string]interface{}{
		"userId":    uid,
		"listingId": l.ID,
		"score":     result.OverallScore,
	})
	return result
}

func (s *Scorer) typeDimension(p *models.FavorPreferences, l *models.FavorListing) models.Dimension {
	if len(p.FavorTypes) == 0 || l.FavorType == "" {
		return models.Dimension{Name: "Favor Type", Score: 50, Weight: 0.35,
			Description: "No favor type information available to compare"}
	}

	best := 0
	for _, ft := range p.FavorTypes {
		if sim := scoring.TextSimilarity(ft, l.FavorType); sim > best {
			best = sim
		}
	}

	var desc string
	switch {
	case best >= 90:
		desc = fmt.Sprintf("%s is exactly the kind of favor you help with", l.FavorType)
	case best >= 70:
		desc = fmt.Sprintf("%s is close to the favors you help with", l.FavorType)
	case best >= 50:
		desc = fmt.Sprintf("%s partially matches the favors you help with", l.FavorType)
	default:
		desc = fmt.Sprintf("%s is not among the favors you help with", l.FavorType)
	}
	return models.Dimension{Name: "Favor Type", Score: best, Weight: 0.35, Description: desc}
}

func (s *Scorer) distanceDimension(p *models.FavorPreferences, l *models.FavorListing, contextual map[string]interface{}) models.Dimension {
	distance := scoring.ContextDistance(l.DistanceKm, contextual)
	if p.MaxDistanceKm <= 0 || distance <= 0 {
		return models.Dimension{Name: "Distance", Score: 50, Weight: 0.25,
			Description: "No distance information available to compare"}
	}

	score := scoring.DistanceDecay(distance, p.MaxDistanceKm)
	var desc string
	switch {
	case score >= 90:
		desc = fmt.Sprintf("%.1f km away, within your %.0f km radius", distance, p.MaxDistanceKm)
	case score >= 50:
		desc = fmt.Sprintf("%.1f km away, somewhat beyond your %.0f km radius", distance, p.MaxDistanceKm)
	default:
		desc = fmt.Sprintf("%.1f km away, far beyond your %.0f km radius", distance, p.MaxDistanceKm)
	}
	return models.Dimension{Name: "Distance", Score: score, Weight: 0.25, Description: desc}
}

func (s *Scorer) availabilityDimension(p *models.FavorPreferences, l *models.FavorListing) models.Dimension {
	if len(p.Availability) == 0 || len(l.TimeSlots) == 0 {
		return models.Dimension{Name: "Availability", Score: 50, Weight: 0.25,
			Description: "No availability information available to compare"}
	}

	score := scoring.ArrayOverlap(p.Availability, l.TimeSlots)
	var desc string
	switch {
	case score >= 90:
		desc = "The requested time slots line up with your availability"
	case score >= 70:
		desc = "Most requested time slots line up with your availability"
	case score >= 50:
		desc = "Some requested time slots line up with your availability"
	default:
		desc = "The requested time slots rarely line up with your availability"
	}
	return models.Dimension{Name: "Availability", Score: score, Weight: 0.25, Description: desc}
}

func (s *Scorer) effortDimension(p *models.FavorPreferences, l *models.FavorListing) models.Dimension {
	if len(p.EffortLevels) == 0 || l.EffortLevel == "" {
		return models.Dimension{Name: "Effort Level", Score: 50, Weight: 0.15,
			Description: "No effort level information available to compare"}
	}

	score := 0
	for _, e := range p.EffortLevels {
		if scoring.TextSimilarity(e, l.EffortLevel) == 100 {
			score = 100
			break
		}
	}

	desc := fmt.Sprintf("A %s-effort favor is outside what you signed up for", l.EffortLevel)
	if score == 100 {
		desc = fmt.Sprintf("A %s-effort favor is within what you signed up for", l.EffortLevel)
	}
	return models.Dimension{Name: "Effort Level", Score: score, Weight: 0.15, Description: desc}
}
