package models

// Category identifies a listing domain. Every category has its own scorer,
// preference record and listing shape.
type Category string

const (
	CategoryJob         Category = "job"
	CategoryRental      Category = "rental"
	CategoryService     Category = "service"
	CategoryMarketplace Category = "marketplace"
	CategoryFavor       Category = "favor"
	CategoryHoliday     Category = "holiday"
	CategoryArt         Category = "art"
	CategoryGiveaway    Category = "giveaway"
	CategoryLearning    Category = "learning"
	CategoryCommunity   Category = "community"
)

// AllCategories returns every category the engine ships a scorer for.
func AllCategories() []Category {
	return []Category{
		CategoryJob,
		CategoryRental,
		CategoryService,
		CategoryMarketplace,
		CategoryFavor,
		CategoryHoliday,
		CategoryArt,
		CategoryGiveaway,
		CategoryLearning,
		CategoryCommunity,
	}
}

func (c Category) Known() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}
