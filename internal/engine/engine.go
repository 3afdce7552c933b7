// Package engine is the entry point for compatibility scoring. It routes a
// request to the category scorer, consults and populates the result cache,
// and offers a detailed mode with category-aware improvement suggestions.
package engine

import (
	"context"
	"time"

	"match-engine/internal/cache"
	"match-engine/internal/common/logger"
	"match-engine/internal/common/metrics"
	"match-engine/internal/models"
	"match-engine/internal/scorers/art"
	"match-engine/internal/scorers/community"
	"match-engine/internal/scorers/favor"
	"match-engine/internal/scorers/giveaway"
	"match-engine/internal/scorers/holiday"
	"match-engine/internal/scorers/job"
	"match-engine/internal/scorers/learning"
	"match-engine/internal/scorers/marketplace"
	"match-engine/internal/scorers/rental"
	"match-engine/internal/scorers/service"
	"match-engine/internal/scoring"
)

// Scorer computes a compatibility result for one listing category.
type Scorer interface {
	CalculateScore(prefs *models.UserPreferences, listing models.Listing, contextual map[string]interface{}) *models.Result
}

// Request carries one scoring call. The zero value of the flags gives the
// default behavior: consult the cache and generate detailed suggestions.
type Request struct {
	Preferences *models.UserPreferences
	Category    models.Category
	Listing     models.Listing
	Contextual  map[string]interface{}
	// BypassCache forces a fresh computation even when a valid entry exists.
	// The cache is left untouched: no read, no write.
	BypassCache bool
	// OmitSuggestionDetails keeps the base suggestions in detailed mode.
	OmitSuggestionDetails bool
}

// Options tune engine construction.
type Options struct {
	// CacheTTL bounds the lifetime of cached results. Non-positive values
	// fall back to the cache package default.
	CacheTTL time.Duration
}

// Engine dispatches scoring requests over a fixed category registry.
type Engine struct {
	scorers map[models.Category]Scorer
	cache   cache.Store
	logger  logger.Logger
	ttl     time.Duration
}

// New builds an engine with every category scorer registered.
func New(log logger.Logger, store cache.Store, opts Options) *Engine {
	e := &Engine{
		scorers: make(map[models.Category]Scorer),
		cache:   store,
		logger:  log.WithFields(map[string]interface{}{"component": "match-engine"}),
		ttl:     opts.CacheTTL,
	}
	e.Register(models.CategoryJob, job.New(log))
	e.Register(models.CategoryRental, rental.New(log))
	e.Register(models.CategoryService, service.New(log))
	e.Register(models.CategoryMarketplace, marketplace.New(log))
	e.Register(models.CategoryFavor, favor.New(log))
	e.Register(models.CategoryHoliday, holiday.New(log))
	e.Register(models.CategoryArt, art.New(log))
	e.Register(models.CategoryGiveaway, giveaway.New(log))
	e.Register(models.CategoryLearning, learning.New(log))
	e.Register(models.CategoryCommunity, community.New(log))
	return e
}

// Register binds a scorer to a category, replacing any existing binding.
func (e *Engine) Register(category models.Category, s Scorer) {
	e.scorers[category] = s
}

// CalculateCompatibility scores one listing for one user. Cache hits return
// the cached object itself; callers can rely on reference equality to detect
// a hit. The call never fails: unknown categories and missing data degrade to
// a neutral generic result.
func (e *Engine) CalculateCompatibility(ctx context.Context, req Request) *models.Result {
	start := time.Now()
	userID := ""
	if req.Preferences != nil {
		userID = req.Preferences.UserID
	}
	listingID := scoring.ListingID(req.Listing)
	category := req.Category
	if category == "" && req.Listing != nil {
		category = req.Listing.ListingCategory()
	}
	metrics.ScoringRequests.WithLabelValues(string(category)).Inc()

	cacheable := userID != "" && listingID != "" && category != ""
	if cacheable && !req.BypassCache {
		if cached := e.cache.Get(ctx, userID, listingID, category); cached != nil {
			metrics.CacheHits.WithLabelValues(string(category)).Inc()
			e.logger.Debug("returning cached result", map[string]interface{}{
				"userId":    userID,
				"listingId": listingID,
				"category":  string(category),
			})
			return cached
		}
		metrics.CacheMisses.WithLabelValues(string(category)).Inc()
	}

	result := e.dispatch(req, userID, listingID, category)
	if cacheable && !req.BypassCache {
		e.cache.Set(ctx, result, e.ttl)
	}
	metrics.ScoringDuration.WithLabelValues(string(category)).Observe(time.Since(start).Seconds())
	return result
}

// CalculateDetailedCompatibility computes the base result, then regenerates
// its improvement suggestions with category-aware phrasing. The cached object
// is never mutated: detailed results are a copy of the base result.
func (e *Engine) CalculateDetailedCompatibility(ctx context.Context, req Request) *models.Result {
	base := e.CalculateCompatibility(ctx, req)
	if req.OmitSuggestionDetails {
		return base
	}
	detailed := *base
	detailed.ImprovementSuggestions = detailedSuggestions(base.Category, base.Dimensions)
	return &detailed
}

func (e *Engine) dispatch(req Request, userID, listingID string, category models.Category) *models.Result {
	scorer, ok := e.scorers[category]
	if !ok {
		metrics.ScoringFallbacks.WithLabelValues(string(category)).Inc()
		e.logger.Warn("no scorer registered for category", map[string]interface{}{
			"category":  string(category),
			"listingId": listingID,
		})
		return genericResult(userID, listingID, scoring.ListingSubcategory(req.Listing), category)
	}
	return scorer.CalculateScore(req.Preferences, req.Listing, req.Contextual)
}

// genericResult answers requests for categories without a registered scorer.
func genericResult(userID, listingID, subcategory string, category models.Category) *models.Result {
	return &models.Result{
		OverallScore: 50,
		Dimensions: []models.Dimension{{
			Name:        "Overall Match",
			Score:       50,
			Weight:      1,
			Description: "Basic compatibility calculation",
		}},
		Category:           category,
		Subcategory:        subcategory,
		ListingID:          listingID,
		UserID:             userID,
		Timestamp:          time.Now().UTC(),
		PrimaryMatchReason: "Basic compatibility calculation",
		ImprovementSuggestions: []string{
			"Complete your profile preferences to receive a personalized compatibility score.",
		},
	}
}
