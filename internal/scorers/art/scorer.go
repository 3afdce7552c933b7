// Package art scores artwork listings across style, price, medium and
// subject matter.
package art

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
		logger: log.WithFields(map[string]interface{}{"scorer": string(models.CategoryArt)}),
	}
}

func (s *Scorer) CalculateScore(prefs *models.UserPreferences, listing models.Listing, _ map[string]interface{}) *models.Result {
	uid := ""
	var p *models.ArtPreferences
	if prefs != nil {
		uid = prefs.UserID
		p = prefs.Categories.Art
	}
	l, ok := listing.(*models.ArtListing)
	if !ok || p == nil {
		return scoring.DefaultResult(uid, scoring.ListingID(listing), scoring.ListingSubcategory(listing), models.CategoryArt)
	}

	dims := []models.Dimension{
		s.styleDimension(p, l),
		s.priceDimension(p, l),
		s.mediumDimension(p, l),
		s.subjectDimension(p, l),
	}

	result := scoring.BuildResult(prefs, l, dims)
	s.logger.Debug("art compatibility calculated", map[string]interface{}{
		"userId":    uid,
		"listingId": l.ID,
		"score":     result.OverallScore,
	})
	return result
}

func (s *Scorer) styleDimension(p *models.ArtPreferences, l *models.ArtListing) models.Dimension {
	if len(p.Styles) == 0 || len(l.Styles) == 0 {
		return models.Dimension{Name: "Style Match", Score: 50, Weight: 0.35,
			Description: "No style information available to compare"}
	}

	score := scoring.ArrayOverlap(p.Styles, l.Styles)
	var desc string
	switch {
	case score >= 90:
		desc = "The piece matches the styles you collect"
	case score >= 70:
		desc = "The piece mostly matches the styles you collect"
	case score >= 50:
		desc = "The piece partly matches the styles you collect"
	default:
		desc = "The piece differs from the styles you collect"
	}
	return models.Dimension{Name: "Style Match", Score: score, Weight: 0.35, Description: desc}
}

func (s *Scorer) priceDimension(p *models.ArtPreferences, l *models.ArtListing) models.Dimension {
	if p.PriceMax <= 0 || l.Price <= 0 {
		return models.Dimension{Name: "Price Match", Score: 50, Weight: 0.25,
			Description: "No price information available to compare"}
	}

	score := scoring.RangeMatch(l.Price, p.PriceMin, p.PriceMax)
	var desc string
	switch {
	case score >= 90:
		desc = fmt.Sprintf("Asking price %.0f sits inside your range", l.Price)
	case score >= 70:
		desc = fmt.Sprintf("Asking price %.0f is close to your range", l.Price)
	case score >= 50:
		desc = fmt.Sprintf("Asking price %.0f stretches your range", l.Price)
	default:
		desc = fmt.Sprintf("Asking price %.0f is well outside your range", l.Price)
	}
	return models.Dimension{Name: "Price Match", Score: score, Weight: 0.25, Description: desc}
}

func (s *Scorer) mediumDimension(p *models.ArtPreferences, l *models.ArtListing) models.Dimension {
	if len(p.Mediums) == 0 || l.Medium == "" {
		return models.Dimension{Name: "Medium", Score: 50, Weight: 0.20,
			Description: "No medium information available to compare"}
	}

	score := 0
	for _, m := range p.Mediums {
		if scoring.TextSimilarity(m, l.Medium) == 100 {
			score = 100
			break
		}
	}

	desc := fmt.Sprintf("%s is not among the mediums you collect", l.Medium)
	if score == 100 {
		desc = fmt.Sprintf("%s is one of the mediums you collect", l.Medium)
	}
	return models.Dimension{Name: "Medium", Score: score, Weight: 0.20, Description: desc}
}

func (s *Scorer) subjectDimension(p *models.ArtPreferences, l *models.ArtListing) models.Dimension {
	if len(p.Subjects) == 0 || len(l.Subjects) == 0 {
		return models.Dimension{Name: "Subject Match", Score: 50, Weight: 0.20,
			Description: "No subject information available to compare"}
	}

	score := scoring.ArrayOverlap(p.Subjects, l.Subjects)
	var desc string
	switch {
	case score >= 90:
		desc = "The subject matter matches what you look for"
	case score >= 70:
		desc = "The subject matter mostly matches what you look for"
	case score >= 50:
		desc = "The subject matter partly matches what you look for"
	default:
		desc = "The subject matter differs from what you look for"
	}
	return models.Dimension{Name: "Subject Match", Score: score, Weight: 0.20, Description: desc}
}
