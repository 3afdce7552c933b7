package models

// UserPreferences is the per-user input to every scoring request. It is
// supplied by the caller per request and never stored by the engine.
type UserPreferences struct {
	UserID     string              `json:"userId"`
	General    *GeneralPreferences `json:"generalPreferences,omitempty"`
	Categories CategoryPreferences `json:"categoryPreferences"`
	// Weights fully replaces the engine's default weight table when set.
	// Keys are the abstract weight keys (skills, location, availability,
	// price, userPreferences, previousInteractions, reputation, aiTrend).
	Weights map[string]float64 `json:"weightPreferences,omitempty"`
}

// GeneralPreferences are category-agnostic importance sliders on a 0-1 scale.
type GeneralPreferences struct {
	PriceImportance    float64 `json:"priceImportance"`
	LocationImportance float64 `json:"locationImportance"`
	QualityImportance  float64 `json:"qualityImportance"`
}

// CategoryPreferences holds one optional record per category. A nil record
// means the user has not expressed preferences for that category, which
// scores neutrally, never as incompatibility.
type CategoryPreferences struct {
	Job         *JobPreferences         `json:"job,omitempty"`
	Rental      *RentalPreferences      `json:"rental,omitempty"`
	Service     *ServicePreferences     `json:"service,omitempty"`
	Marketplace *MarketplacePreferences `json:"marketplace,omitempty"`
	Favor       *FavorPreferences       `json:"favor,omitempty"`
	Holiday     *HolidayPreferences     `json:"holiday,omitempty"`
	Art         *ArtPreferences         `json:"art,omitempty"`
	Giveaway    *GiveawayPreferences    `json:"giveaway,omitempty"`
	Learning    *LearningPreferences    `json:"learning,omitempty"`
	Community   *CommunityPreferences   `json:"community,omitempty"`
}

type JobPreferences struct {
	DesiredSkills    []string `json:"desiredSkills"`
	SalaryMin        float64  `json:"salaryMin"`
	SalaryMax        float64  `json:"salaryMax"`
	WorkArrangements []string `json:"workArrangements"`
	ExperienceLevel  string   `json:"experienceLevel"`
}

type RentalPreferences struct {
	RentalTypes       []string `json:"rentalTypes"`
	PriceMin          float64  `json:"priceMin"`
	PriceMax          float64  `json:"priceMax"`
	Location          string   `json:"location"`
	RequiredAmenities []string `json:"requiredAmenities"`
	DurationMinMonths float64  `json:"durationMinMonths"`
	DurationMaxMonths float64  `json:"durationMaxMonths"`
}

type ServicePreferences struct {
	ServiceTypes  []string `json:"serviceTypes"`
	BudgetMin     float64  `json:"budgetMin"`
	BudgetMax     float64  `json:"budgetMax"`
	MaxDistanceKm float64  `json:"maxDistanceKm"`
	MinRating     float64  `json:"minRating"`
}

type MarketplacePreferences struct {
	ItemTypes           []string `json:"itemTypes"`
	PriceMin            float64  `json:"priceMin"`
	PriceMax            float64  `json:"priceMax"`
	PreferredConditions []string `json:"preferredConditions"`
	MaxDistanceKm       float64  `json:"maxDistanceKm"`
	PreferredBrands     []string `json:"preferredBrands"`
	// Importance sliders scale the weight of their dimension, 0-1.
	// Zero means unset and is treated as full importance.
	PriceImportance     float64 `json:"priceImportance"`
	ConditionImportance float64 `json:"conditionImportance"`
	DistanceImportance  float64 `json:"distanceImportance"`
}

type FavorPreferences struct {
	FavorTypes    []string `json:"favorTypes"`
	MaxDistanceKm float64  `json:"maxDistanceKm"`
	Availability  []string `json:"availability"`
	EffortLevels  []string `json:"effortLevels"`
}

type HolidayPreferences struct {
	Destinations    []string `json:"destinations"`
	BudgetMin       float64  `json:"budgetMin"`
	BudgetMax       float64  `json:"budgetMax"`
	TravelStyles    []string `json:"travelStyles"`
	DurationMinDays float64  `json:"durationMinDays"`
	DurationMaxDays float64  `json:"durationMaxDays"`
	Activities      []string `json:"activities"`
}

type ArtPreferences struct {
	Styles   []string `json:"styles"`
	PriceMin float64  `json:"priceMin"`
	PriceMax float64  `json:"priceMax"`
	Mediums  []string `json:"mediums"`
	Subjects []string `json:"subjects"`
}

type GiveawayPreferences struct {
	ItemCategories       []string `json:"itemCategories"`
	MaxDistanceKm        float64  `json:"maxDistanceKm"`
	AcceptableConditions []string `json:"acceptableConditions"`
	PickupTimes          []string `json:"pickupTimes"`
}

type LearningPreferences struct {
	Subjects   []string `json:"subjects"`
	SkillLevel string   `json:"skillLevel"`
	Formats    []string `json:"formats"`
	BudgetMin  float64  `json:"budgetMin"`
	BudgetMax  float64  `json:"budgetMax"`
	Schedule   []string `json:"schedule"`
}

type CommunityPreferences struct {
	Interests     []string `json:"interests"`
	EventTypes    []string `json:"eventTypes"`
	MaxDistanceKm float64  `json:"maxDistanceKm"`
	GroupSizeMin  float64  `json:"groupSizeMin"`
	GroupSizeMax  float64  `json:"groupSizeMax"`
}
