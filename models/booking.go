package models

import "time"

// BookingCustomer is the customer-facing slice of a unified booking.
type BookingCustomer struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// BookingProvider is the provider-facing slice of a unified booking.
type BookingProvider struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name,omitempty"`
	BusinessName  string `json:"business_name,omitempty"`
	BusinessPhone string `json:"business_phone,omitempty"`
	BusinessEmail string `json:"business_email,omitempty"`
}

// BookingServiceRef points at the booked offering, whatever store it lives in.
type BookingServiceRef struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Type     string `json:"type,omitempty"`
	Location string `json:"location,omitempty"`
}

// Booking is the unified read model over every reservation store. It is never
// persisted as-is: adapters reshape their native records into this form at the
// read boundary, and all mutation goes back through the owning adapter.
type Booking struct {
	ID                 string            `json:"id"`
	SourceKind         string            `json:"source_kind"`
	Customer           BookingCustomer   `json:"customer"`
	Provider           BookingProvider   `json:"provider"`
	Service            BookingServiceRef `json:"service"`
	PeriodStart        time.Time         `json:"period_start"`
	PeriodEnd          time.Time         `json:"period_end"`
	PartySize          int               `json:"party_size"`
	PricePerUnit       float64           `json:"price_per_unit"`
	TotalAmount        float64           `json:"total_amount"`
	Status             string            `json:"status"`
	ConfirmationNumber string            `json:"confirmation_number,omitempty"`
	RejectionReason    string            `json:"rejection_reason,omitempty"`
	ResponseTimestamp  *time.Time        `json:"response_timestamp,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
	SourceSpecific     map[string]any    `json:"source_specific,omitempty"`
}

// BookingPage is one page of the merged, sorted unified view.
type BookingPage struct {
	Items      []Booking `json:"items"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}
