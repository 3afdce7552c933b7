package models

import (
	"encoding/json"
	"fmt"
)

// Listing is the tagged union over per-category listing records. Each scorer
// only reads its own shape; anything else degrades to the neutral default.
type Listing interface {
	ListingID() string
	ListingCategory() Category
	ListingSubcategory() string
}

// ListingMeta carries the fields every listing shape shares.
type ListingMeta struct {
	ID          string `json:"id"`
	Subcategory string `json:"subcategory,omitempty"`
	Title       string `json:"title,omitempty"`
}

func (m ListingMeta) ListingID() string          { return m.ID }
func (m ListingMeta) ListingSubcategory() string { return m.Subcategory }

type JobListing struct {
	ListingMeta
	Skills          []string `json:"skills"`
	SalaryMin       float64  `json:"salaryMin"`
	SalaryMax       float64  `json:"salaryMax"`
	WorkArrangement string   `json:"workArrangement"`
	ExperienceLevel string   `json:"experienceLevel"`
}

func (JobListing) ListingCategory() Category { return CategoryJob }

type RentalListing struct {
	ListingMeta
	RentalType     string   `json:"rentalType"`
	Price          float64  `json:"price"`
	Location       string   `json:"location"`
	Amenities      []string `json:"amenities"`
	DurationMonths float64  `json:"durationMonths"`
}

func (RentalListing) ListingCategory() Category { return CategoryRental }

type ServiceListing struct {
	ListingMeta
	ServiceType string  `json:"serviceType"`
	Price       float64 `json:"price"`
	DistanceKm  float64 `json:"distanceKm"`
	Rating      float64 `json:"rating"`
}

func (ServiceListing) ListingCategory() Category { return CategoryService }

type MarketplaceListing struct {
	ListingMeta
	ItemType   string  `json:"itemType"`
	Price      float64 `json:"price"`
	Condition  string  `json:"condition"`
	DistanceKm float64 `json:"distanceKm"`
	Brand      string  `json:"brand"`
}

func (MarketplaceListing) ListingCategory() Category { return CategoryMarketplace }

type FavorListing struct {
	ListingMeta
	FavorType   string   `json:"favorType"`
	DistanceKm  float64  `json:"distanceKm"`
	TimeSlots   []string `json:"timeSlots"`
	EffortLevel string   `json:"effortLevel"`
}

func (FavorListing) ListingCategory() Category { return CategoryFavor }

type HolidayListing struct {
	ListingMeta
	Destination  string   `json:"destination"`
	Price        float64  `json:"price"`
	TravelStyles []string `json:"travelStyles"`
	DurationDays float64  `json:"durationDays"`
	Activities   []string `json:"activities"`
}

func (HolidayListing) ListingCategory() Category { return CategoryHoliday }

type ArtListing struct {
	ListingMeta
	Styles   []string `json:"styles"`
	Price    float64  `json:"price"`
	Medium   string   `json:"medium"`
	Subjects []string `json:"subjects"`
}

func (ArtListing) ListingCategory() Category { return CategoryArt }

type GiveawayListing struct {
	ListingMeta
	ItemCategory string   `json:"itemCategory"`
	DistanceKm   float64  `json:"distanceKm"`
	Condition    string   `json:"condition"`
	PickupTimes  []string `json:"pickupTimes"`
}

func (GiveawayListing) ListingCategory() Category { return CategoryGiveaway }

type LearningListing struct {
	ListingMeta
	Subjects   []string `json:"subjects"`
	SkillLevel string   `json:"skillLevel"`
	Format     string   `json:"format"`
	Price      float64  `json:"price"`
	Schedule   []string `json:"schedule"`
}

func (LearningListing) ListingCategory() Category { return CategoryLearning }

type CommunityListing struct {
	ListingMeta
	Topics     []string `json:"topics"`
	EventType  string   `json:"eventType"`
	DistanceKm float64  `json:"distanceKm"`
	GroupSize  float64  `json:"groupSize"`
}

func (CommunityListing) ListingCategory() Category { return CategoryCommunity }

// UnmarshalListing decodes raw JSON into the listing record for the given
// category. Callers holding serialized listings (CLI input, queue payloads)
// use this to enter the typed union.
func UnmarshalListing(category Category, raw []byte) (Listing, error) {
	var (
		listing Listing
		err     error
	)
	switch category {
	case CategoryJob:
		l := &JobListing{}
		err = json.Unmarshal(raw, l)
		listing = l
	case CategoryRental:
		l := &RentalListing{}
		err = json.Unmarshal(raw, l)
		listing = l
	case CategoryService:
		l := &ServiceListing{}
		err = json.Unmarshal(raw, l)
		listing = l
	case CategoryMarketplace:
		l := &MarketplaceListing{}
		err = json.Unmarshal(raw, l)
		listing = l
	case CategoryFavor:
		l := &FavorListing{}
		err = json.Unmarshal(raw, l)
		listing = l
	case CategoryHoliday:
		l := &HolidayListing{}
		err = json.Unmarshal(raw, l)
		listing = l
	case CategoryArt:
		l := &ArtListing{}
		err = json.Unmarshal(raw, l)
		listing = l
	case CategoryGiveaway:
		l := &GiveawayListing{}
		err = json.Unmarshal(raw, l)
		listing = l
	case CategoryLearning:
		l := &LearningListing{}
		err = json.Unmarshal(raw, l)
		listing = l
	case CategoryCommunity:
		l := &CommunityListing{}
		err = json.Unmarshal(raw, l)
		listing = l
	default:
		return nil, fmt.Errorf("unknown listing category %q", category)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s listing: %w", category, err)
	}
	return listing, nil
}
