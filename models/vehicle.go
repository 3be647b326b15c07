package models

import "time"

// Vehicle is a legacy rental vehicle listing, owned by the user in UserID.
type Vehicle struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	Brand         string    `bson:"brand" json:"brand"`
	Model         string    `bson:"model" json:"model"`
	VehicleNumber string    `bson:"vehicle_number,omitempty" json:"vehicle_number,omitempty"`
	Price         float64   `bson:"price,omitempty" json:"price,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// VehicleReservation is the legacy vehicle booking record. It carries no
// human-usable service name, only the vehicle id; the adapter hydrates the
// display name from brand + model. Date doubles as the record's creation
// timestamp, the schema predates created_at/updated_at.
type VehicleReservation struct {
	ID                 string     `bson:"id" json:"id"`
	UserID             string     `bson:"user_id" json:"user_id"` // customer
	VehicleID          string     `bson:"vehicle_id" json:"vehicle_id"`
	VehicleNumber      string     `bson:"vehicle_number" json:"vehicle_number"`
	Date               time.Time  `bson:"date" json:"date"`
	Location           string     `bson:"location" json:"location"`
	PickupDate         time.Time  `bson:"pickup_date" json:"pickup_date"`
	ReturnDate         time.Time  `bson:"return_date" json:"return_date"`
	Price              float64    `bson:"price" json:"price"`
	VehicleOwnerID     string     `bson:"vehicle_owner_id" json:"vehicle_owner_id"`
	TransactionID      string     `bson:"transaction_id" json:"transaction_id"`
	NeedDriver         bool       `bson:"need_driver" json:"need_driver"`
	Status             string     `bson:"status,omitempty" json:"status,omitempty"`
	RejectionReason    string     `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	ResponseDate       *time.Time `bson:"response_date,omitempty" json:"response_date,omitempty"`
	ConfirmationNumber string     `bson:"confirmation_number,omitempty" json:"confirmation_number,omitempty"`
}
