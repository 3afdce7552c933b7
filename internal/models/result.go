package models

import "time"

// Dimension is one named, weighted 0-100 sub-score of a compatibility result.
// Weight is the scorer-assigned fraction; aggregation may substitute an
// effective weight from the user's weight table.
type Dimension struct {
	Name        string  `json:"name"`
	Score       int     `json:"score"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// Result is the full outcome of one scoring request.
type Result struct {
	OverallScore           int         `json:"overallScore"`
	Dimensions             []Dimension `json:"dimensions"`
	Category               Category    `json:"category"`
	Subcategory            string      `json:"subcategory,omitempty"`
	ListingID              string      `json:"listingId"`
	UserID                 string      `json:"userId"`
	Timestamp              time.Time   `json:"timestamp"`
	PrimaryMatchReason     string      `json:"primaryMatchReason"`
	ImprovementSuggestions []string    `json:"improvementSuggestions"`
}

// HasCacheKey reports whether the result carries every field of the cache
// key contract.
func (r *Result) HasCacheKey() bool {
	return r != nil && r.UserID != "" && r.ListingID != "" && r.Category != ""
}
