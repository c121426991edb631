package models

import "time"

// Trip is a group trip being planned.
type Trip struct {
	TripID      string    `json:"tripid" bson:"tripid"`
	Name        string    `json:"name" bson:"name"`
	Destination string    `json:"destination" bson:"destination"`
	StartDate   string    `json:"start_date" bson:"start_date"` // YYYY-MM-DD
	EndDate     string    `json:"end_date" bson:"end_date"`     // YYYY-MM-DD
	CreatedBy   string    `json:"created_by" bson:"created_by"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	Deleted     bool      `json:"-" bson:"deleted,omitempty"`

	// resolved on reads, not stored on the trip document
	Links []VenueLink `json:"links,omitempty" bson:"-"`
}
