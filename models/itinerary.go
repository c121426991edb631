package models

// Itinerary item types.
const (
	ItemHotelCheckin  = "hotel_checkin"
	ItemHotelCheckout = "hotel_checkout"
	ItemMeal          = "meal"
	ItemActivity      = "activity"
	ItemOther         = "other"
)

// ItineraryItem is one scheduled entry in a day plan.
type ItineraryItem struct {
	ID            string     `json:"id"`
	Date          string     `json:"date"`
	Time          string     `json:"time"`     // "3:00 PM"
	TimeSlot      string     `json:"timeSlot"` // morning/afternoon/evening/night
	Type          string     `json:"type"`
	Title         string     `json:"title"`
	Subtitle      string     `json:"subtitle,omitempty"`
	Link          *VenueLink `json:"link,omitempty"`
	EstimatedCost int        `json:"estimatedCost,omitempty"`
}

// DayPlan is one calendar day of the itinerary.
type DayPlan struct {
	Date      string          `json:"date"`
	DayNumber int             `json:"dayNumber"`
	DayLabel  string          `json:"dayLabel"`
	Items     []ItineraryItem `json:"items"`
}

// Itinerary is the derived day-by-day schedule. It is regenerated from the
// confirmed links on every request and never persisted.
type Itinerary struct {
	Days      []DayPlan `json:"days"`
	TotalCost int       `json:"totalCost"`
	Summary   string    `json:"summary"`
}

// PriceEstimate is the estimator's verdict for one venue.
type PriceEstimate struct {
	EstimatedCost int    `json:"estimatedCost"`
	Confidence    string `json:"confidence"` // high/medium/low
	Source        string `json:"source"`
	Explanation   string `json:"explanation"`
}
