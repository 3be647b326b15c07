package vehicleRepo

import "travelhub/models"

// VehicleRepository defines data access for legacy vehicles and their
// reservation records.
type VehicleRepository interface {
	// GetVehicleByID retrieves a vehicle by its unique ID. Returns (nil, nil) when absent.
	GetVehicleByID(id string) (*models.Vehicle, error)
	// ListVehiclesByOwner retrieves every vehicle owned by a user.
	ListVehiclesByOwner(ownerID string) ([]models.Vehicle, error)
	// ListReservationsByOwner retrieves reservations against the owner's
	// vehicles, newest first (sorted on the legacy date field).
	ListReservationsByOwner(ownerID string) ([]models.VehicleReservation, error)
	// ListReservationsByCustomer retrieves a customer's reservations, newest first.
	ListReservationsByCustomer(customerID string) ([]models.VehicleReservation, error)
	// GetReservationByID retrieves a reservation by its unique ID. Returns (nil, nil) when absent.
	GetReservationByID(id string) (*models.VehicleReservation, error)
	// UpdateReservation modifies an existing reservation record.
	UpdateReservation(res *models.VehicleReservation) error
}
