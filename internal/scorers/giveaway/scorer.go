// Package giveaway scores free-item listings across category, distance,
// condition and pickup timing.
package giveaway

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
		logger: log.WithFields(map[string]interface{}{"scorer": string(models.CategoryGiveaway)}),
	}
}

func (s *Scorer) CalculateScore(prefs *models.UserPreferences, listing models.Listing, contextual map[string]interface{}) *models.Result {
	uid := ""
	var p *models.GiveawayPreferences
	if prefs != nil {
		uid = prefs.UserID
		p = prefs.Categories.Giveaway
	}
	l, ok := listing.(*models.GiveawayListing)
	if !ok || p == nil {
		return scoring.DefaultResult(uid, scoring.ListingID(listing), scoring.ListingSubcategory(listing), models.CategoryGiveaway)
	}

	dims := []models.Dimension{
		s.categoryDimension(p, l),
		s.distanceDimension(p, l, contextual),
		s.conditionDimension(p, l),
		s.pickupDimension(p, l),
	}

	result := scoring.BuildResult(prefs, l, dims)
	s.logger.Debug("giveaway compatibility calculated", map[string]interface{}{
		"userId":    uid,
		"listingId": l.ID,
		"score":     result.OverallScore,
	})
	return result
}

func (s *Scorer) categoryDimension(p *models.GiveawayPreferences, l *models.GiveawayListing) models.Dimension {
	if len(p.ItemCategories) == 0 || l.ItemCategory == "" {
		return models.Dimension{Name: "Item Category", Score: 50, Weight: 0.40,
			Description: "No item category information available to compare"}
	}

	best := 0
	for _, c := range p.ItemCategories {
		if sim := scoring.TextSimilarity(c, l.ItemCategory); sim > best {
			best = sim
		}
	}

	var desc string
	switch {
	case best >= 90:
		desc = fmt.Sprintf("%s is exactly what you are looking for", l.ItemCategory)
	case best >= 70:
		desc = fmt.Sprintf("%s is close to the items you look for", l.ItemCategory)
	case best >= 50:
		desc = fmt.Sprintf("%s partially matches the items you look for", l.ItemCategory)
	default:
		desc = fmt.Sprintf("%s is not among the items you look for", l.ItemCategory)
	}
	return models.Dimension{Name: "Item Category", Score: best, Weight: 0.40, Description: desc}
}

func (s *Scorer) distanceDimension(p *models.GiveawayPreferences, l *models.GiveawayListing, contextual map[string]interface{}) models.Dimension {
	distance := scoring.ContextDistance(l.DistanceKm, contextual)
	if p.MaxDistanceKm <= 0 || distance <= 0 {
		return models.Dimension{Name: "Distance", Score: 50, Weight: 0.30,
			Description: "No distance information available to compare"}
	}

	score := scoring.DistanceDecay(distance, p.MaxDistanceKm)
	var desc string
	switch {
	case score >= 90:
		desc = fmt.Sprintf("%.1f km away, within your %.0f km pickup radius", distance, p.MaxDistanceKm)
	case score >= 50:
		desc = fmt.Sprintf("%.1f km away, somewhat beyond your %.0f km pickup radius", distance, p.MaxDistanceKm)
	default:
		desc = fmt.Sprintf("%.1f km away, far beyond your %.0f km pickup radius", distance, p.MaxDistanceKm)
	}
	return models.Dimension{Name: "Distance", Score: score, Weight: 0.30, Description: desc}
}

func (s *Scorer) conditionDimension(p *models.GiveawayPreferences, l *models.GiveawayListing) models.Dimension {
	if len(p.AcceptableConditions) == 0 || l.Condition == "" {
		return models.Dimension{Name: "Condition", Score: 50, Weight: 0.20,
			Description: "No condition information available to compare"}
	}

	score := 0
	for _, c := range p.AcceptableConditions {
		if scoring.TextSimilarity(c, l.Condition) == 100 {
			score = 100
			break
		}
	}

	desc := fmt.Sprintf("%s condition is outside what you accept", l.Condition)
	if score == 100 {
		desc = fmt.Sprintf("%s condition is within what you accept", l.Condition)
	}
	return models.Dimension{Name: "Condition", Score: score, Weight: 0.20, Description: desc}
}

func (s *Scorer) pickupDimension(p *models.GiveawayPreferences, l *models.GiveawayListing) models.Dimension {
	if len(p.PickupTimes) == 0 || len(l.PickupTimes) == 0 {
		return models.Dimension{Name: "Pickup Timing", Score: 50, Weight: 0.10,
			Description: "No pickup timing information available to compare"}
	}

	score := scoring.ArrayOverlap(p.PickupTimes, l.PickupTimes)
	var desc string
	switch {
	case score >= 90:
		desc = "The pickup windows line up with your schedule"
	case score >= 50:
		desc = "Some pickup windows line up with your schedule"
	default:
		desc = "The pickup windows rarely line up with your schedule"
	}
	return models.Dimension{Name: "Pickup Timing", Score: score, Weight: 0.10, Description: desc}
}
