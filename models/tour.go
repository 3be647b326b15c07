package models

import "time"

// Tour is a legacy tour listing. Location display falls back from Cities to
// Category, matching how the old frontend rendered it.
type Tour struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	// OwnerID carries the same id-or-email inconsistency as TourBook.TourOwnerID.
	OwnerID   string    `bson:"owner_id,omitempty" json:"owner_id,omitempty"`
	Cities    string    `bson:"cities,omitempty" json:"cities,omitempty"`
	Category  string    `bson:"category,omitempty" json:"category,omitempty"`
	Price     float64   `bson:"price" json:"price"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// TourBook is a legacy tour booking record.
//
// TourOwnerID is historically inconsistent: older records store the owner's
// email address, newer ones the account id. Adapters must match against both
// and must never leak the dual representation upward.
type TourBook struct {
	ID              string    `bson:"id" json:"id"`
	TourID          string    `bson:"tour_id" json:"tour_id"`
	TourOwnerID     string    `bson:"tour_owner_id" json:"tour_owner_id"`
	CustomerID      string    `bson:"customer_id,omitempty" json:"customer_id,omitempty"`
	CustomerName    string    `bson:"customer_name" json:"customer_name"`
	CustomerEmail   string    `bson:"customer_email" json:"customer_email"`
	CustomerPhone   string    `bson:"customer_phone,omitempty" json:"customer_phone,omitempty"`
	TourDate        time.Time `bson:"tour_date" json:"tour_date"`
	Guests          int       `bson:"guests" json:"guests"`
	TourPrice       float64   `bson:"tour_price" json:"tour_price"`
	TotalAmount     float64   `bson:"total_amount" json:"total_amount"`
	SpecialRequests string    `bson:"special_requests,omitempty" json:"special_requests,omitempty"`
	// May be empty on old records; read as pending.
	Status             string     `bson:"status,omitempty" json:"status,omitempty"`
	RejectionReason    string     `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	ResponseDate       *time.Time `bson:"response_date,omitempty" json:"response_date,omitempty"`
	ConfirmationNumber string     `bson:"confirmation_number,omitempty" json:"confirmation_number,omitempty"`
	CreatedAt          time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `bson:"updated_at" json:"updated_at"`
}
