package reservationRepo

import "travelhub/models"

// ReservationRepository defines data access for generic service reservations.
// Status filters are optional; an empty string means "any status".
type ReservationRepository interface {
	// Create inserts a new reservation record.
	Create(res *models.ServiceReservation) error
	// GetByID retrieves a reservation by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.ServiceReservation, error)
	// ListByProvider retrieves reservations for a provider, newest first.
	ListByProvider(providerID, status string) ([]models.ServiceReservation, error)
	// ListByCustomer retrieves reservations for a customer, newest first.
	ListByCustomer(customerID, status string) ([]models.ServiceReservation, error)
	// Update modifies an existing reservation record.
	Update(res *models.ServiceReservation) error
}
