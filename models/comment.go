package models

import "time"

// Comment is a note left on a trip link.
type Comment struct {
	ID        string    `json:"id" bson:"commentid"`
	LinkID    string    `json:"linkid" bson:"linkid"`
	CreatedBy string    `json:"created_by" bson:"created_by"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
