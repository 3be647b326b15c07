package models

import "time"

// Service is a bookable offering created by an approved provider. Only the
// fields the reservation core reads are modeled; vertical-specific attributes
// live in Extra and pass through untouched.
type Service struct {
	ID          string         `bson:"id" json:"id"`
	ProviderID  string         `bson:"provider_id" json:"provider_id"`
	Name        string         `bson:"name" json:"name"`
	Description string         `bson:"description,omitempty" json:"description,omitempty"`
	Type        string         `bson:"type" json:"type"`
	Price       float64        `bson:"price" json:"price"`
	Location    string         `bson:"location,omitempty" json:"location,omitempty"`
	Status      string         `bson:"status" json:"status"`
	Extra       map[string]any `bson:"extra,omitempty" json:"extra,omitempty"`
	CreatedAt   time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `bson:"updated_at" json:"updated_at"`
}
