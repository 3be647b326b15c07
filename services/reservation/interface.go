package reservation

import (
	"context"
	"errors"
	"time"

	"travelhub/models"
)

var (
	// ErrServiceNotFound is returned when the booked service does not exist.
	ErrServiceNotFound = errors.New("service not found")
	// ErrServiceNotBookable is returned when the service exists but is not
	// currently accepting bookings.
	ErrServiceNotBookable = errors.New("service is not accepting bookings")
	// ErrTourNotFound is returned when the booked tour does not exist.
	ErrTourNotFound = errors.New("tour not found")
	// ErrReservationNotFound is returned when the reservation does not exist.
	ErrReservationNotFound = errors.New("reservation not found")
	// ErrForbidden is returned when the actor is neither the reservation's
	// customer nor its provider.
	ErrForbidden = errors.New("actor is not a party to this reservation")
	// ErrInvalidPeriod is returned when the checkout is not after the checkin.
	ErrInvalidPeriod = errors.New("checkout must not be before checkin")
	// ErrCustomerNotFound is returned when the booking customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")
)

// CreateInput is a generic service booking as received from the client.
// Customer contact fields default from the account when left blank.
type CreateInput struct {
	ServiceID       string    `json:"service_id" binding:"required"`
	CheckInDate     time.Time `json:"check_in_date" binding:"required"`
	CheckOutDate    time.Time `json:"check_out_date" binding:"required"`
	Guests          int       `json:"guests"`
	Rooms           int       `json:"rooms"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone"`
	SpecialRequests string    `json:"special_requests"`
}

// CreateTourInput is a tour booking as received from the client.
type CreateTourInput struct {
	TourID          string    `json:"tour_id" binding:"required"`
	TourDate        time.Time `json:"tour_date" binding:"required"`
	Guests          int       `json:"guests"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone"`
	SpecialRequests string    `json:"special_requests"`
}

// Service creates reservations and reads single records with party checks.
// Listing goes through the unified booking view instead.
type Service interface {
	Create(ctx context.Context, customerID string, input CreateInput) (*models.ServiceReservation, error)
	CreateTourBooking(ctx context.Context, customerID string, input CreateTourInput) (*models.TourBook, error)
	Get(ctx context.Context, reservationID, actorID string) (*models.ServiceReservation, error)
}
