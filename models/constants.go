package models

// Booking statuses shared by every reservation store. The unified view and the
// workflow engine only ever see these four values; legacy records with an empty
// status are read as pending.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// IsValidStatus reports whether s is one of the four booking statuses.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Source kinds identify which legacy store a unified booking originates from.
// The wire values match the original platform's `type` query parameter.
const (
	SourceGeneric       = "service"
	SourceTour          = "tour"
	SourceLegacyVehicle = "vehicle"
)

// Service verticals offered on the platform. Shared by bookable services,
// provider qualification requests and user.provider_types.
var ServiceTypes = []string{"hotel", "vehicle", "tour", "restaurant", "flight", "event", "train"}

// IsValidServiceType reports whether t is a known service vertical.
func IsValidServiceType(t string) bool {
	for _, s := range ServiceTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Account types.
const (
	AccountTypeUser     = "user"
	AccountTypeProvider = "provider"
	AccountTypeAdmin    = "admin"
)

// Provider qualification request statuses.
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// Bookable service statuses.
const (
	ServiceStatusActive    = "active"
	ServiceStatusInactive  = "inactive"
	ServiceStatusPending   = "pending"
	ServiceStatusSuspended = "suspended"
)
