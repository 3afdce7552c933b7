// Package community scores community events and groups across shared
// interests, event type, distance and group size.
package community

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
		logger: log.WithFields(map[string]interface{}{"scorer": string(models.CategoryCommunity)}),
	}
}

func (s *Scorer) CalculateScore(prefs *models.UserPreferences, listing models.Listing, contextual map[string]interface{}) *models.Result {
	uid := ""
	var p *models.CommunityPreferences
	if prefs != nil {
		uid = prefs.UserID
		p = prefs.Categories.Community
	}
	l, ok := listing.(*models.CommunityListing)
	if !ok || p == nil {
		return scoring.DefaultResult(uid, scoring.ListingID(listing), scoring.ListingSubcategory(listing), models.CategoryCommunity)
	}

	dims := []models.Dimension{
		s.interestDimension(p, l),
		s.eventTypeDimension(p, l),
		s.distanceDimension(p, l, contextual),
		s.groupSizeDimension(p, l),
	}

	result := scoring.BuildResult(prefs, l, dims)
	s.logger.Debug("community compatibility calculated", map[string]interface{}{
		"userId":    uid,
		"listingId": l.ID,
		"score":     result.OverallScore,
	})
	return result
}

func (s *Scorer) interestDimension(p *models.CommunityPreferences, l *models.CommunityListing) models.Dimension {
	if len(p.Interests) == 0 || len(l.Topics) == 0 {
		return models.Dimension{Name: "Interest Match", Score: 50, Weight: 0.40,
			Description: "No interest information available to compare"}
	}

	score := scoring.ArrayOverlap(p.Interests, l.Topics)
	var desc string
	switch {
	case score >= 90:
		desc = "The group's topics match your interests"
	case score >= 70:
		desc = "The group's topics mostly match your interests"
	case score >= 50:
		desc = "The group's topics partly match your interests"
	default:
		desc = "The group's topics differ from your interests"
	}
	return models.Dimension{Name: "Interest Match", Score: score, Weight: 0.40, Description: desc}
}

func (s *Scorer) eventTypeDimension(p *models.CommunityPreferences, l *models.CommunityListing) models.Dimension {
	if len(p.EventTypes) == 0 || l.EventType == "" {
		return models.Dimension{Name: "Event Type", Score: 50, Weight: 0.25,
			Description: "No event type information available to compare"}
	}

	score := 0
	for _, et := range p.EventTypes {
		if scoring.TextSimilarity(et, l.EventType) == 100 {
			score = 100
			break
		}
	}

	desc := fmt.Sprintf("A %s is not the kind of event you attend", l.EventType)
	if score == 100 {
		desc = fmt.Sprintf("A %s is the kind of event you attend", l.EventType)
	}
	return models.Dimension{Name: "Event Type", Score: score, Weight: 0.25, Description: desc}
}

func (s *Scorer) distanceDimension(p *models.CommunityPreferences, l *models.CommunityListing, contextual map[string]interface{}) models.Dimension {
	distance := scoring.ContextDistance(l.DistanceKm, contextual)
	if p.MaxDistanceKm <= 0 || distance <= 0 {
		return models.Dimension{Name: "Distance", Score: 50, Weight: 0.20,
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
	return models.Dimension{Name: "Distance", Score: score, Weight: 0.20, Description: desc}
}

func (s *Scorer) groupSizeDimension(p *models.CommunityPreferences, l *models.CommunityListing) models.Dimension {
	if p.GroupSizeMax <= 0 || l.GroupSize <= 0 {
		return models.Dimension{Name: "Group Size", Score: 50, Weight: 0.15,
			Description: "No group size information available to compare"}
	}

	score := scoring.RangeMatch(l.GroupSize, p.GroupSizeMin, p.GroupSizeMax)
	var desc string
	switch {
	case score >= 90:
		desc = fmt.Sprintf("A group of %.0f fits the size you enjoy", l.GroupSize)
	case score >= 70:
		desc = fmt.Sprintf("A group of %.0f is close to the size you enjoy", l.GroupSize)
	case score >= 50:
		desc = fmt.Sprintf("A group of %.0f is a moderate fit for the size you enjoy", l.GroupSize)
	default:
		desc = fmt.Sprintf("A group of %.0f is far from the size you enjoy", l.GroupSize)
	}
	return models.Dimension{Name: "Group Size", Score: score, Weight: 0.15, Description: desc}
}
