package models

import "time"

// Venue categories.
const (
	CategoryHotel    = "hotel"
	CategoryFood     = "food"
	CategoryActivity = "activity"
	CategoryOther    = "other"
)

// VenueLink is a pasted URL unfurled into an enriched venue record.
type VenueLink struct {
	LinkID      string `json:"linkid" bson:"linkid"`
	TripID      string `json:"tripid" bson:"tripid"`
	URL         string `json:"url" bson:"url"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Category    string `json:"category" bson:"category"`

	Rating       *float64 `json:"rating,omitempty" bson:"rating,omitempty"`
	ReviewCount  *int     `json:"review_count,omitempty" bson:"review_count,omitempty"`
	PriceRange   string   `json:"price_range,omitempty" bson:"price_range,omitempty"` // "$".."$$$$"
	RatingSource string   `json:"rating_source,omitempty" bson:"rating_source,omitempty"`

	// enrichment, food venues only
	VenueType               string   `json:"venue_type,omitempty" bson:"venue_type,omitempty"` // fine_dining/fast_casual/cafe/bar/casual
	MealTimes               []string `json:"meal_times,omitempty" bson:"meal_times,omitempty"` // breakfast/lunch/dinner
	EstimatedPricePerPerson *int     `json:"estimated_price_per_person,omitempty" bson:"estimated_price_per_person,omitempty"`
	CuisineType             string   `json:"cuisine_type,omitempty" bson:"cuisine_type,omitempty"`
	AISummary               string   `json:"ai_summary,omitempty" bson:"ai_summary,omitempty"`

	IsConfirmed bool      `json:"is_confirmed" bson:"is_confirmed"`
	AddedBy     string    `json:"added_by,omitempty" bson:"added_by,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Vote is one user's up/down vote on a link.
type Vote struct {
	LinkID    string    `json:"linkid" bson:"linkid"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Vote      string    `json:"vote" bson:"vote"` // up/down
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
