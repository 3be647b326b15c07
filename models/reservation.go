package models

import "time"

// ServiceReservation is the generic booking record: one row per customer
// booking against a bookable Service, keyed directly by customer and provider
// ids. Customer contact fields are denormalized at creation time.
type ServiceReservation struct {
	ID              string    `bson:"id" json:"id"`
	CustomerID      string    `bson:"customer_id" json:"customer_id"`
	ServiceID       string    `bson:"service_id" json:"service_id"`
	ProviderID      string    `bson:"provider_id" json:"provider_id"`
	CheckInDate     time.Time `bson:"check_in_date" json:"check_in_date"`
	CheckOutDate    time.Time `bson:"check_out_date" json:"check_out_date"`
	Guests          int       `bson:"guests,omitempty" json:"guests,omitempty"`
	Rooms           int       `bson:"rooms,omitempty" json:"rooms,omitempty"`
	CustomerName    string    `bson:"customer_name" json:"customer_name"`
	CustomerEmail   string    `bson:"customer_email" json:"customer_email"`
	CustomerPhone   string    `bson:"customer_phone" json:"customer_phone"`
	SpecialRequests string    `bson:"special_requests,omitempty" json:"special_requests,omitempty"`
	PricePerUnit    float64   `bson:"price_per_unit" json:"price_per_unit"`
	// Computed once at creation (price x units x days) and frozen.
	TotalAmount        float64    `bson:"total_amount" json:"total_amount"`
	Status             string     `bson:"status" json:"status"`
	RejectionReason    string     `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	ResponseDate       *time.Time `bson:"response_date,omitempty" json:"response_date,omitempty"`
	ConfirmationNumber string     `bson:"confirmation_number,omitempty" json:"confirmation_number,omitempty"`
	CreatedAt          time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `bson:"updated_at" json:"updated_at"`
}
