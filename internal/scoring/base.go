package scoring

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"match-engine/internal/models"
)

// Shared aggregation logic composed by every category scorer: weight
// resolution, name-based weight remapping, weighted-mean aggregation, primary
// reason selection and generic improvement suggestions.

const (
	// ReasonLimitedData is reported when a scorer has no preference record
	// to work with and falls back to the neutral default.
	ReasonLimitedData = "Limited preference data available"
	// ReasonModerate is reported when no dimension reaches the strong-match
	// threshold.
	ReasonModerate = "Moderate overall compatibility."

	strongMatchThreshold = 70
	weakDimensionCutoff  = 50
	maxSuggestions       = 3
)

// defaultWeights is the fixed table of abstract weight keys applied when the
// user supplies no override.
var defaultWeights = map[string]float64{
	"skills":               0.3,
	"location":             0.15,
	"availability":         0.1,
	"price":                0.1,
	"userPreferences":      0.1,
	"previousInteractions": 0.1,
	"reputation":           0.1,
	"aiTrend":              0.05,
}

// weightSynonyms maps lower-cased dimension names onto abstract weight keys.
// Dimensions whose name matches no synonym keep their scorer-assigned weight.
var weightSynonyms = map[string]string{
	"skills match":    "skills",
	"skill match":     "skills",
	"tag match":       "skills",
	"interest match":  "skills",
	"subject match":   "skills",
	"style match":     "skills",
	"location match":  "location",
	"location":        "location",
	"distance":        "location",
	"price match":     "price",
	"salary match":    "price",
	"budget match":    "price",
	"price":           "price",
	"availability":    "availability",
	"schedule":        "availability",
	"schedule match":  "availability",
	"provider rating": "reputation",
	"rating match":    "reputation",
	"reputation":      "reputation",
}

// DefaultWeights returns a copy of the built-in weight table.
func DefaultWeights() map[string]float64 {
	out := make(map[string]float64, len(defaultWeights))
	for k, v := range defaultWeights {
		out[k] = v
	}
	return out
}

// ResolveWeights picks the user's weight override when present; the override
// fully replaces the defaults, there is no partial merge.
func ResolveWeights(prefs *models.UserPreferences) map[string]float64 {
	if prefs != nil && len(prefs.Weights) > 0 {
		return prefs.Weights
	}
	return defaultWeights
}

// EffectiveWeight resolves the weight a dimension contributes with: the
// synonym-mapped entry of the weight table when its name is recognized,
// otherwise the scorer-assigned weight.
func EffectiveWeight(dim models.Dimension, weights map[string]float64) float64 {
	if key, ok := weightSynonyms[strings.ToLower(dim.Name)]; ok {
		if w, ok := weights[key]; ok {
			return w
		}
	}
	return dim.Weight
}

// Aggregate computes the weighted mean of the dimension scores. Dimensions
// with a non-positive effective weight are excluded; zero total weight scores
// 0. Scores are already 0-100, so the weighted mean needs no re-scaling.
func Aggregate(dims []models.Dimension, weights map[string]float64) int {
	var sum, total float64
	for _, d := range dims {
		w := EffectiveWeight(d, weights)
		if w <= 0 {
			continue
		}
		sum += float64(d.Score) * w
		total += w
	}
	if total <= 0 {
		return 0
	}
	return clampScore(roundScore(sum / total))
}

// PrimaryReason reports the single strongest dimension at or above the
// strong-match threshold, or a moderate-compatibility note.
func PrimaryReason(dims []models.Dimension) string {
	best := -1
	bestScore := strongMatchThreshold - 1
	for i, d := range dims {
		if d.Score >= strongMatchThreshold && d.Score > bestScore {
			best = i
			bestScore = d.Score
		}
	}
	if best < 0 {
		return ReasonModerate
	}
	return fmt.Sprintf("Strong match on %s.", dims[best].Name)
}

// Suggestions emits one templated sentence for each of the up to three
// weakest dimensions under the cutoff, sorted ascending by score. Category
// scorers may replace these with field-aware phrasing.
func Suggestions(dims []models.Dimension) []string {
	var weak []models.Dimension
	for _, d := range dims {
		if d.Score < weakDimensionCutoff {
			weak = append(weak, d)
		}
	}
	sort.SliceStable(weak, func(i, j int) bool { return weak[i].Score < weak[j].Score })
	if len(weak) > maxSuggestions {
		weak = weak[:maxSuggestions]
	}

	out := make([]string, 0, len(weak))
	for _, d := range weak {
		out = append(out, fmt.Sprintf("Improve your %s match by updating your preferences.", suggestionLabel(d.Name)))
	}
	return out
}

func suggestionLabel(name string) string {
	label := strings.ToLower(name)
	label = strings.TrimSuffix(label, " match")
	return label
}

// BuildResult runs the shared aggregation pipeline over computed dimensions
// and assembles a fully populated result stamped with the current time.
func BuildResult(prefs *models.UserPreferences, listing models.Listing, dims []models.Dimension) *models.Result {
	weights := ResolveWeights(prefs)
	userID := ""
	if prefs != nil {
		userID = prefs.UserID
	}
	return &models.Result{
		OverallScore:           Aggregate(dims, weights),
		Dimensions:             dims,
		Category:               listing.ListingCategory(),
		Subcategory:            listing.ListingSubcategory(),
		ListingID:              listing.ListingID(),
		UserID:                 userID,
		Timestamp:              time.Now().UTC(),
		PrimaryMatchReason:     PrimaryReason(dims),
		ImprovementSuggestions: Suggestions(dims),
	}
}

// DefaultResult is the neutral fallback for requests without a preference
// record for the scorer's category. Absence of data is never scored as
// incompatibility nor as a perfect match.
func DefaultResult(userID, listingID, subcategory string, category models.Category) *models.Result {
	return &models.Result{
		OverallScore: 50,
		Dimensions: []models.Dimension{{
			Name:        "Overall Match",
			Score:       50,
			Weight:      1,
			Description: "Default compatibility score based on limited information",
		}},
		Category:           category,
		Subcategory:        subcategory,
		ListingID:          listingID,
		UserID:             userID,
		Timestamp:          time.Now().UTC(),
		PrimaryMatchReason: ReasonLimitedData,
		ImprovementSuggestions: []string{
			fmt.Sprintf("Add your %s preferences to receive a personalized compatibility score.", category),
		},
	}
}

// ListingID safely extracts the id of a possibly nil listing.
func ListingID(l models.Listing) string {
	if l == nil {
		return ""
	}
	return l.ListingID()
}

// ListingSubcategory safely extracts the subcategory of a possibly nil listing.
func ListingSubcategory(l models.Listing) string {
	if l == nil {
		return ""
	}
	return l.ListingSubcategory()
}

// ContextDistance prefers the listing-reported distance, falling back to a
// caller-supplied "distanceKm" contextual factor.
func ContextDistance(listed float64, contextual map[string]interface{}) float64 {
	if listed > 0 {
		return listed
	}
	if contextual == nil {
		return 0
	}
	if v, ok := contextual["distanceKm"]; ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return 0
}

// Qualifier maps a score into the shared description vocabulary used by the
// category scorers.
func Qualifier(score int) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 70:
		return "good"
	case score >= 50:
		return "moderate"
	default:
		return "below preference"
	}
}
