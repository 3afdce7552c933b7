// Package marketplace scores second-hand item listings. Price, condition and
// distance weights scale with the user's importance sliders before the set is
// renormalized.
package marketplace

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
		logger: log.WithFields(map[string]interface{}{"scorer": string(models.CategoryMarketplace)}),
	}
}

func (s *Scorer) CalculateScore(prefs *models.UserPreferences, listing models.Listing, contextual map[string]interface{}) *models.Result {
	uid := ""
	var p *models.MarketplacePreferences
	if prefs != nil {
		uid = prefs.UserID
		p = prefs.Categories.Marketplace
	}
	l, ok := listing.(*models.MarketplaceListing)
	if !ok || p == nil {
		return scoring.DefaultResult(uid, scoring.ListingID(listing), scoring.ListingSubcategory(listing), models.CategoryMarketplace)
	}

	priceW, condW, distW := importanceWeights(p)
	dims := []models.Dimension{
		s.itemTypeDimension(p, l, 0.30),
		s.priceDimension(p, l, priceW),
		s.conditionDimension(p, l, condW),
		s.distanceDimension(p, l, contextual, distW),
		s.brandDimension(p, l, 0.15),
	}
	normalizeWeights(dims)

	result := scoring.BuildResult(prefs, l, dims)
	s.logger.Debug("marketplace compatibility calculated", map[string]interface{}{
		"userId":    uid,
		"listingId": l.ID,
		"score":     result.OverallScore,
	})
	return result
}

// importanceWeights scales the base price/condition/distance weights by the
// user's 0-1 importance sliders. Zero sliders are unset and mean full
// importance.
func importanceWeights(p *models.MarketplacePreferences) (priceW, condW, distW float64) {
	return 0.25 * importance(p.PriceImportance),
		0.15 * importance(p.ConditionImportance),
		0.15 * importance(p.DistanceImportance)
}

func importance(v float64) float64 {
	if v <= 0 {
		return 1
	}
	if v > 1 {
		return 1
	}
	return v
}

// normalizeWeights rescales scorer-assigned weights to sum to 1.0 so that
// importance scaling never shrinks the total below the fixed-set contract.
func normalizeWeights(dims []models.Dimension) {
	var total float64
	for _, d := range dims {
		total += d.Weight
	}
	if total <= 0 {
		return
	}
	for i := range dims {
		dims[i].Weight /= total
	}
}

func (s *Scorer) itemTypeDimension(p *models.MarketplacePreferences, l *models.MarketplaceListing, weight float64) models.Dimension {
	if len(p.ItemTypes) == 0 || l.ItemType == "" {
		return models.Dimension{Name: "Item Type", Score: 50, Weight: weight,
			Description: "No item type information available to compare"}
	}

	best := 0
	for _, it := range p.ItemTypes {
		if sim := scoring.TextSimilarity(it, l.ItemType); sim > best {
			best = sim
		}
	}

	var desc string
	switch {
	case best >= 90:
		desc = fmt.Sprintf("%s is exactly what you are looking for", l.ItemType)
	case best >= 70:
		desc = fmt.Sprintf("%s is close to the items you look for", l.ItemType)
	case best >= 50:
		desc = fmt.Sprintf("%s partially matches the items you look for", l.ItemType)
	default:
		desc = fmt.Sprintf("%s is not among the items you look for", l.ItemType)
	}
	return models.Dimension{Name: "Item Type", Score: best, Weight: weight, Description: desc}
}

func (s *Scorer) priceDimension(p *models.MarketplacePreferences, l *models.MarketplaceListing, weight float64) models.Dimension {
	if p.PriceMax <= 0 || l.Price <= 0 {
		return models.Dimension{Name: "Price Match", Score: 50, Weight: weight,
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
	return models.Dimension{Name: "Price Match", Score: score, Weight: weight, Description: desc}
}

func (s *Scorer) conditionDimension(p *models.MarketplacePreferences, l *models.MarketplaceListing, weight float64) models.Dimension {
	if len(p.PreferredConditions) == 0 || l.Condition == "" {
		return models.Dimension{Name: "Condition", Score: 50, Weight: weight,
			Description: "No condition information available to compare"}
	}

	score := 0
	for _, c := range p.PreferredConditions {
		if scoring.TextSimilarity(c, l.Condition) == 100 {
			score = 100
			break
		}
	}

	desc := fmt.Sprintf("%s condition is outside what you accept", l.Condition)
	if score == 100 {
		desc = fmt.Sprintf("%s condition is within what you accept", l.Condition)
	}
	return models.Dimension{Name: "Condition", Score: score, Weight: weight, Description: desc}
}

func (s *Scorer) distanceDimension(p *models.MarketplacePreferences, l *models.MarketplaceListing, contextual map[string]interface{}, weight float64) models.Dimension {
	distance := scoring.ContextDistance(l.DistanceKm, contextual)
	if p.MaxDistanceKm <= 0 || distance <= 0 {
		return models.Dimension{Name: "Distance", Score: 50, Weight: weight,
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
	return models.Dimension{Name: "Distance", Score: score, Weight: weight, Description: desc}
}

func (s *Scorer) brandDimension(p *models.MarketplacePreferences, l *models.MarketplaceListing, weight float64) models.Dimension {
	if len(p.PreferredBrands) == 0 || l.Brand == "" {
		return models.Dimension{Name: "Brand Match", Score: 50, Weight: weight,
			Description: "No brand information available to compare"}
	}

	score := 0
	for _, b := range p.PreferredBrands {
		if scoring.TextSimilarity(b, l.Brand) == 100 {
			score = 100
			break
		}
	}

	desc := fmt.Sprintf("%s is not among your preferred brands", l.Brand)
	if score == 100 {
		desc = fmt.Sprintf("%s is one of your preferred brands", l.Brand)
	}
	return models.Dimension{Name: "Brand Match", Score: score, Weight: weight, Description: desc}
}
