package models

import "time"

// ProviderRequest is a provider qualification request: the application a user
// files to become a service provider for one vertical. At most one active
// (pending or approved) request may exist per (user, provider type) pair; the
// collection enforces this with a partial unique index.
type ProviderRequest struct {
	ID     string `bson:"id" json:"id"`
	UserID string `bson:"user_id" json:"user_id"`

	// Personal details.
	FirstName string `bson:"first_name" json:"first_name"`
	LastName  string `bson:"last_name" json:"last_name"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone" json:"phone"`

	// Business details.
	BusinessName    string `bson:"business_name" json:"business_name"`
	BusinessAddress string `bson:"business_address" json:"business_address"`
	BusinessCity    string `bson:"business_city" json:"business_city"`
	BusinessState   string `bson:"business_state" json:"business_state"`
	BusinessZip     string `bson:"business_zip" json:"business_zip"`
	BusinessPhone   string `bson:"business_phone" json:"business_phone"`
	BusinessEmail   string `bson:"business_email" json:"business_email"`
	BusinessWebsite string `bson:"business_website,omitempty" json:"business_website,omitempty"`

	// Documentation.
	RegistrationNumber string `bson:"registration_number" json:"registration_number"`
	LicenseNumber      string `bson:"license_number" json:"license_number"`
	TaxID              string `bson:"tax_id" json:"tax_id"`

	// Service details.
	ProviderType   string  `bson:"provider_type" json:"provider_type"`
	ServiceDetails string  `bson:"service_details" json:"service_details"`
	Experience     float64 `bson:"experience" json:"experience"`
	AdditionalInfo string  `bson:"additional_info,omitempty" json:"additional_info,omitempty"`

	// Review trail. Approved and rejected are both terminal.
	Status          string     `bson:"status" json:"status"`
	RejectionReason string     `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	ReviewedBy      string     `bson:"reviewed_by,omitempty" json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `bson:"reviewed_at,omitempty" json:"reviewed_at,omitempty"`
	SubmittedAt     time.Time  `bson:"submitted_at" json:"submitted_at"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
