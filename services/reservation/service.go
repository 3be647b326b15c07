package reservation

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	reservationRepo "travelhub/database/repository/reservation"
	serviceRepo "travelhub/database/repository/service"
	tourRepo "travelhub/database/repository/tour"
	userRepo "travelhub/database/repository/user"
	"travelhub/models"
	"travelhub/services/notification"
	"travelhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultService is the production reservation creator.
type DefaultService struct {
	Reservations reservationRepo.ReservationRepository
	Services     serviceRepo.ServiceRepository
	Tours        tourRepo.TourRepository
	Users        userRepo.UserRepository
	Notifier     notification.Service
}

// Create books a generic service. The total is price x units x days, computed
// once here and frozen on the record.
func (s *DefaultService) Create(ctx context.Context, customerID string, input CreateInput) (*models.ServiceReservation, error) {
	if input.CheckOutDate.Before(input.CheckInDate) {
		return nil, ErrInvalidPeriod
	}

	svc, err := s.Services.GetByID(input.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	// Records predating the status field stay bookable.
	if svc.Status != "" && svc.Status != models.ServiceStatusActive {
		return nil, ErrServiceNotBookable
	}

	customer, err := s.Users.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	guests := input.Guests
	if guests < 1 {
		guests = 1
	}
	now := time.Now()
	res := &models.ServiceReservation{
		ID:              uuid.New().String(),
		CustomerID:      customerID,
		ServiceID:       svc.ID,
		ProviderID:      svc.ProviderID,
		CheckInDate:     input.CheckInDate,
		CheckOutDate:    input.CheckOutDate,
		Guests:          guests,
		Rooms:           input.Rooms,
		CustomerName:    fallback(input.CustomerName, customer.Name),
		CustomerEmail:   fallback(input.CustomerEmail, customer.Email),
		CustomerPhone:   fallback(input.CustomerPhone, customer.Mobile),
		SpecialRequests: input.SpecialRequests,
		PricePerUnit:    svc.Price,
		TotalAmount:     totalAmount(svc.Price, units(guests, input.Rooms), input.CheckInDate, input.CheckOutDate),
		Status:          models.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Reservations.Create(res); err != nil {
		return nil, fmt.Errorf("failed to persist reservation: %w", err)
	}

	s.notifyProvider(ctx, svc.ProviderID, models.NotifyNewServiceBooking,
		"New booking received",
		fmt.Sprintf("%s booked %s for %s.", res.CustomerName, svc.Name, res.CheckInDate.Format("2 Jan 2006")),
		map[string]string{
			"reservation_id": res.ID,
			"source_kind":    models.SourceGeneric,
			"service_id":     svc.ID,
		})
	return res, nil
}

// CreateTourBooking books a tour. Tours are flat per-person: the total is the
// tour price times the party size, single day.
func (s *DefaultService) CreateTourBooking(ctx context.Context, customerID string, input CreateTourInput) (*models.TourBook, error) {
	tour, err := s.Tours.GetTourByID(input.TourID)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, ErrTourNotFound
	}

	customer, err := s.Users.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	guests := input.Guests
	if guests < 1 {
		guests = 1
	}
	now := time.Now()
	book := &models.TourBook{
		ID:              uuid.New().String(),
		TourID:          tour.ID,
		CustomerID:      customerID,
		CustomerName:    fallback(input.CustomerName, customer.Name),
		CustomerEmail:   fallback(input.CustomerEmail, customer.Email),
		CustomerPhone:   fallback(input.CustomerPhone, customer.Mobile),
		TourDate:        input.TourDate,
		Guests:          guests,
		TourPrice:       tour.Price,
		TotalAmount:     tour.Price * float64(guests),
		SpecialRequests: input.SpecialRequests,
		Status:          models.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// The tour's owner key may be an account id or an email; new booking
	// records carry it verbatim and the read adapter normalizes it.
	book.TourOwnerID = tour.OwnerID

	if err := s.Tours.CreateBook(book); err != nil {
		return nil, fmt.Errorf("failed to persist tour booking: %w", err)
	}

	s.notifyProvider(ctx, s.resolveOwnerAccount(tour.OwnerID), models.NotifyNewTourBooking,
		"New tour booking received",
		fmt.Sprintf("%s booked %s for %s (%d guests).",
			book.CustomerName, tour.Name, book.TourDate.Format("2 Jan 2006"), guests),
		map[string]string{
			"booking_id":  book.ID,
			"source_kind": models.SourceTour,
			"tour_id":     tour.ID,
		})
	return book, nil
}

// Get returns a single generic reservation, restricted to its two parties.
func (s *DefaultService) Get(ctx context.Context, reservationID, actorID string) (*models.ServiceReservation, error) {
	res, err := s.Reservations.GetByID(reservationID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrReservationNotFound
	}
	if res.CustomerID != actorID && res.ProviderID != actorID {
		return nil, ErrForbidden
	}
	return res, nil
}

// resolveOwnerAccount maps a stored owner key to an account id for
// notification. Old tours store the owner's email.
func (s *DefaultService) resolveOwnerAccount(stored string) string {
	if !strings.Contains(stored, "@") {
		return stored
	}
	owner, err := s.Users.GetByEmail(stored)
	if err != nil || owner == nil {
		return ""
	}
	return owner.ID
}

// units is the billing multiplier: rooms when booked, otherwise guests.
func units(guests, rooms int) int {
	if rooms > 0 {
		return rooms
	}
	return guests
}

// totalAmount computes price x units x whole days, minimum one day. Partial
// days round up.
func totalAmount(price float64, units int, start, end time.Time) float64 {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return price * float64(units) * float64(days)
}

func fallback(value, def string) string {
	if value != "" {
		return value
	}
	return def
}

func (s *DefaultService) notifyProvider(ctx context.Context, providerID, kind, title, body string, metadata map[string]string) {
	if s.Notifier == nil || providerID == "" {
		return
	}
	if err := s.Notifier.Notify(ctx, providerID, title, body, kind, metadata); err != nil {
		utils.GetLogger().Error("failed to dispatch booking notification",
			zap.String("provider_id", providerID),
			zap.String("kind", kind),
			zap.Error(err))
	}
}
