package engine

import (
	"strings"

	"match-engine/internal/models"
)

// Detailed suggestion generation. Dimensions scoring under 50 with a weight
// of at least 0.3 carry enough of the overall score to be worth targeted
// advice; everything else keeps the generic phrasing.

const (
	weakSuggestionScore  = 50
	weakSuggestionWeight = 0.3
)

var genericAdvice = []string{
	"Complete more of your profile preferences for better matches.",
	"Broaden your preference ranges to widen the pool of compatible listings.",
}

// categoryAdvice maps a category and lower-cased dimension name to targeted
// advice. Only dimensions whose weight can reach the threshold appear here.
var categoryAdvice = map[models.Category]map[string]string{
	models.CategoryJob: {
		"skills match": "Add the skills this role requires to your profile, or search for roles built on your current skills.",
	},
	models.CategoryRental: {
		"price match": "Adjust your rental budget or search in areas with lower rents.",
	},
	models.CategoryService: {
		"service type": "Add this kind of service to your preferences to see more providers like this one.",
	},
	models.CategoryMarketplace: {
		"item type":   "Add this item category to your search preferences to see similar items.",
		"price match": "Adjust your price range to match current asking prices for these items.",
	},
	models.CategoryFavor: {
		"favor type": "Add this kind of favor to the help you offer to match similar requests.",
	},
	models.CategoryHoliday: {
		"destination": "Add this destination to your wish list to see similar trips.",
	},
	models.CategoryArt: {
		"style match": "Add this style to the art you collect to see similar pieces.",
	},
	models.CategoryGiveaway: {
		"item category": "Add this item category to your pickup preferences to see similar giveaways.",
	},
	models.CategoryLearning: {
		"subject match": "Add this subject to your learning goals to see similar courses.",
	},
	models.CategoryCommunity: {
		"interest match": "Add these topics to your interests to find groups you will enjoy.",
	},
}

// detailedSuggestions replaces the base templated suggestions with
// category-aware advice. When nothing specific triggers, two generic lines
// are emitted so the caller always has something actionable.
func detailedSuggestions(category models.Category, dims []models.Dimension) []string {
	advice := categoryAdvice[category]
	var out []string
	for _, d := range dims {
		if d.Score >= weakSuggestionScore || d.Weight < weakSuggestionWeight {
			continue
		}
		if line, ok := advice[strings.ToLower(d.Name)]; ok {
			out = append(out, line)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), genericAdvice...)
	}
	return out
}
