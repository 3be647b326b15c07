package tourRepo

import "travelhub/models"

// TourRepository defines data access for legacy tours and their booking records.
type TourRepository interface {
	// GetTourByID retrieves a tour by its unique ID. Returns (nil, nil) when absent.
	GetTourByID(id string) (*models.Tour, error)
	// ListBooksByOwner retrieves booking records whose tour_owner_id matches
	// either the owner's account id or email, newest first. Old records store
	// the owner as an email address.
	ListBooksByOwner(ownerID, ownerEmail string) ([]models.TourBook, error)
	// ListBooksByCustomer retrieves booking records whose customer matches
	// either the account id or email, newest first.
	ListBooksByCustomer(customerID, customerEmail string) ([]models.TourBook, error)
	// GetBookByID retrieves a booking record by its unique ID. Returns (nil, nil) when absent.
	GetBookByID(id string) (*models.TourBook, error)
	// CreateBook inserts a new tour booking record.
	CreateBook(book *models.TourBook) error
	// UpdateBook modifies an existing tour booking record.
	UpdateBook(book *models.TourBook) error
}
