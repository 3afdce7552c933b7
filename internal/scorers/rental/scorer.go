// Package rental scores rental listings across type, price, location,
// amenities and lease duration.
package rental

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
		logger: log.WithFields(map[string]interface{}{"scorer": string(models.CategoryRental)}),
	}
}

func (s *Scorer) CalculateScore(prefs *models.UserPreferences, listing models.Listing, _ map[string]interface{}) *models.Result {
	uid := ""
	var p *models.RentalPreferences
	if prefs != nil {
		uid = prefs.UserID
		p = prefs.Categories.Rental
	}
	l, ok := listing.(*models.RentalListing)
	if !ok || p == nil {
		return scoring.DefaultResult(uid, scoring.ListingID(listing), scoring.ListingSubcategory(listing), models.CategoryRental)
	}

	dims := []models.Dimension{
		s.typeDimension(p, l),
		s.priceDimension(p, l),
		s.locationDimension(p, l),
		s.amenitiesDimension(p, l),
		s.durationDimension(p, l),
	}

	result := scoring.BuildResult(prefs, l, dims)
	s.logger.Debug("rental compatibility calculated", map[string]interface{}{
		"userId":    uid,
		"listingId": l.ID,
		"score":     result.OverallScore,
	})
	return result
}

func (s *Scorer) typeDimension(p *models.RentalPreferences, l *models.RentalListing) models.Dimension {
	if len(p.RentalTypes) == 0 || l.RentalType == "" {
		return models.Dimension{Name: "Rental Type", Score: 50, Weight: 0.25,
			Description: "No rental type information available to compare"}
	}

	score := 0
	for _, rt := range p.RentalTypes {
		if scoring.TextSimilarity(rt, l.RentalType) == 100 {
			score = 100
			break
		}
	}

	desc := fmt.Sprintf("A %s is not among the rental types you look for", l.RentalType)
	if score == 100 {
		desc = fmt.Sprintf("A %s is exactly the rental type you look for", l.RentalType)
	}
	return models.Dimension{Name: "Rental Type", Score: score, Weight: 0.25, Description: desc}
}

func (s *Scorer) priceDimension(p *models.RentalPreferences, l *models.RentalListing) models.Dimension {
	if p.PriceMax <= 0 || l.Price <= 0 {
		return models.Dimension{Name: "Price Match", Score: 50, Weight: 0.30,
			Description: "No price information available to compare"}
	}

	score := scoring.RangeMatch(l.Price, p.PriceMin, p.PriceMax)
	var desc string
	switch {
	case score >= 90:
		desc = fmt.Sprintf("Rent of %.0f sits inside your budget", l.Price)
	case score >= 70:
		desc = fmt.Sprintf("Rent of %.0f is close to your budget", l.Price)
	case score >= 50:
		desc = fmt.Sprintf("Rent of %.0f stretches your budget", l.Price)
	default:
		desc = fmt.Sprintf("Rent of %.0f is well outside your budget", l.Price)
	}
	return models.Dimension{Name: "Price Match", Score: score, Weight: 0.30, Description: desc}
}

func (s *Scorer) locationDimension(p *models.RentalPreferences, l *models.RentalListing) models.Dimension {
	if p.Location == "" || l.Location == "" {
		return models.Dimension{Name: "Location Match", Score: 50, Weight: 0.25,
			Description: "No location information available to compare"}
	}

	score := scoring.TextSimilarity(p.Location, l.Location)
	var desc string
	switch {
	case score >= 90:
		desc = fmt.Sprintf("%s matches your preferred area", l.Location)
	case score >= 70:
		desc = fmt.Sprintf("%s is close to your preferred area", l.Location)
	case score >= 50:
		desc = fmt.Sprintf("%s partially overlaps your preferred area", l.Location)
	default:
		desc = fmt.Sprintf("%s is outside your preferred area", l.Location)
	}
	return models.Dimension{Name: "Location Match", Score: score, Weight: 0.25, Description: desc}
}

func (s *Scorer) amenitiesDimension(p *models.RentalPreferences, l *models.RentalListing) models.Dimension {
	if len(p.RequiredAmenities) == 0 || len(l.Amenities) == 0 {
		return models.Dimension{Name: "Amenities", Score: 50, Weight: 0.10,
			Description: "No amenity information available to compare"}
	}

	score := scoring.ArrayOverlap(p.RequiredAmenities, l.Amenities)
	var desc string
	switch {
	case score >= 90:
		desc = "The listing covers the amenities you require"
	case score >= 70:
		desc = "The listing covers most of the amenities you require"
	case score >= 50:
		desc = "The listing covers some of the amenities you require"
	default:
		desc = "The listing is missing most of the amenities you require"
	}
	return models.Dimension{Name: "Amenities", Score: score, Weight: 0.10, Description: desc}
}

func (s *Scorer) durationDimension(p *models.RentalPreferences, l *models.RentalListing) models.Dimension {
	if p.DurationMaxMonths <= 0 || l.DurationMonths <= 0 {
		return models.Dimension{Name: "Duration Match", Score: 50, Weight: 0.10,
			Description: "No lease duration information available to compare"}
	}

	score := scoring.RangeMatch(l.DurationMonths, p.DurationMinMonths, p.DurationMaxMonths)
	var desc string
	switch {
	case score >= 90:
		desc = fmt.Sprintf("A %.0f-month lease fits your desired duration", l.DurationMonths)
	case score >= 70:
		desc = fmt.Sprintf("A %.0f-month lease is close to your desired duration", l.DurationMonths)
	case score >= 50:
		desc = fmt.Sprintf("A %.0f-month lease is a moderate fit for your desired duration", l.DurationMonths)
	default:
		desc = fmt.Sprintf("A %.0f-month lease is far from your desired duration", l.DurationMonths)
	}
	return models.Dimension{Name: "Duration Match", Score: score, Weight: 0.10, Description: desc}
}
