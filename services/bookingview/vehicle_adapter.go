package bookingview

import (
	"context"
	"strings"

	userRepo "travelhub/database/repository/user"
	vehicleRepo "travelhub/database/repository/vehicle"
	"travelhub/models"
	"travelhub/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// VehicleAdapter maps legacy vehicle rental reservations. The store keys the
// customer under user_id and the owner under vehicle_owner_id, carries no
// created_at (the date field doubles as the creation timestamp) and no service
// name, so the display name is hydrated from the vehicle's brand and model. A
// reservation whose vehicle or customer account cannot be resolved is skipped.
type VehicleAdapter struct {
	Vehicles vehicleRepo.VehicleRepository
	Users    userRepo.UserRepository
	// Cache holds resolved vehicles for a short TTL. Optional, nil skips
	// caching.
	Cache *redis.Client
}

func (a *VehicleAdapter) Kind() string { return models.SourceLegacyVehicle }

// ListByProvider returns reservations against the provider's vehicles.
func (a *VehicleAdapter) ListByProvider(ctx context.Context, providerID, status string) ([]models.Booking, error) {
	// Owned vehicles are resolved first so reservations referencing a vehicle
	// the provider no longer owns are dropped rather than misattributed.
	owned, err := a.Vehicles.ListVehiclesByOwner(providerID)
	if err != nil {
		return nil, err
	}
	if len(owned) == 0 {
		return []models.Booking{}, nil
	}
	vehiclesByID := make(map[string]*models.Vehicle, len(owned))
	for i := range owned {
		vehiclesByID[owned[i].ID] = &owned[i]
	}

	reservations, err := a.Vehicles.ListReservationsByOwner(providerID)
	if err != nil {
		return nil, err
	}
	return a.convertAll(reservations, vehiclesByID, true, status), nil
}

// ListByCustomer returns the customer's vehicle reservations.
func (a *VehicleAdapter) ListByCustomer(ctx context.Context, customerID, status string) ([]models.Booking, error) {
	reservations, err := a.Vehicles.ListReservationsByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return a.convertAll(reservations, map[string]*models.Vehicle{}, false, status), nil
}

// LoadForMutation resolves one vehicle reservation and returns a commit
// against the vehicle store.
func (a *VehicleAdapter) LoadForMutation(ctx context.Context, bookingID string) (*MutableBooking, error) {
	res, err := a.Vehicles.GetReservationByID(bookingID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrBookingNotFound
	}

	vehicle, err := a.getVehicle(res.VehicleID)
	if err != nil {
		return nil, err
	}
	customer, err := a.Users.GetByID(res.UserID)
	if err != nil {
		return nil, err
	}

	booking := a.convert(res, vehicle, customer)
	commit := func(status string, extras CommitExtras) error {
		res.Status = status
		ts := extras.ResponseTimestamp
		res.ResponseDate = &ts
		if extras.ConfirmationNumber != "" {
			res.ConfirmationNumber = extras.ConfirmationNumber
		}
		if extras.RejectionReason != "" {
			res.RejectionReason = extras.RejectionReason
		}
		return a.Vehicles.UpdateReservation(res)
	}
	return &MutableBooking{Booking: booking, Commit: commit}, nil
}

func (a *VehicleAdapter) convertAll(reservations []models.VehicleReservation, vehiclesByID map[string]*models.Vehicle, ownedOnly bool, status string) []models.Booking {
	logger := utils.GetLogger()

	customerMemo := map[string]*models.User{}

	bookings := make([]models.Booking, 0, len(reservations))
	for i := range reservations {
		res := &reservations[i]

		if status != "" && normalizeStatus(res.Status) != status {
			continue
		}

		vehicle, ok := vehiclesByID[res.VehicleID]
		if !ok {
			if ownedOnly {
				logger.Warn("vehicle adapter: skipping reservation for vehicle not in owner's fleet",
					zap.String("reservation_id", res.ID),
					zap.String("vehicle_id", res.VehicleID))
				continue
			}
			var err error
			vehicle, err = a.getVehicle(res.VehicleID)
			if err != nil {
				logger.Warn("vehicle adapter: vehicle lookup failed",
					zap.String("vehicle_id", res.VehicleID), zap.Error(err))
				vehicle = nil
			}
			vehiclesByID[res.VehicleID] = vehicle
		}
		if vehicle == nil {
			logger.Warn("vehicle adapter: skipping reservation with missing vehicle",
				zap.String("reservation_id", res.ID),
				zap.String("vehicle_id", res.VehicleID))
			continue
		}

		customer, ok := customerMemo[res.UserID]
		if !ok {
			var err error
			customer, err = a.Users.GetByID(res.UserID)
			if err != nil {
				logger.Warn("vehicle adapter: customer lookup failed",
					zap.String("user_id", res.UserID), zap.Error(err))
				customer = nil
			}
			customerMemo[res.UserID] = customer
		}
		if customer == nil {
			logger.Warn("vehicle adapter: skipping reservation with missing customer",
				zap.String("reservation_id", res.ID),
				zap.String("user_id", res.UserID))
			continue
		}

		bookings = append(bookings, a.convert(res, vehicle, customer))
	}
	return bookings
}

// getVehicle resolves a vehicle through the shared cache. Missing vehicles are
// not cached.
func (a *VehicleAdapter) getVehicle(vehicleID string) (*models.Vehicle, error) {
	var cached models.Vehicle
	if cacheGet(a.Cache, "vehicle:"+vehicleID, &cached) {
		return &cached, nil
	}
	vehicle, err := a.Vehicles.GetVehicleByID(vehicleID)
	if err != nil || vehicle == nil {
		return vehicle, err
	}
	cacheSet(a.Cache, "vehicle:"+vehicleID, vehicle)
	return vehicle, nil
}

func (a *VehicleAdapter) convert(res *models.VehicleReservation, vehicle *models.Vehicle, customer *models.User) models.Booking {
	booking := models.Booking{
		ID:         res.ID,
		SourceKind: models.SourceLegacyVehicle,
		Customer:   models.BookingCustomer{ID: res.UserID},
		// The legacy store has no owner display fields to hydrate from.
		Provider: models.BookingProvider{
			ID:           res.VehicleOwnerID,
			Name:         "Vehicle Owner",
			BusinessName: "Vehicle Rental",
		},
		Service: models.BookingServiceRef{
			ID:       res.VehicleID,
			Type:     "vehicle",
			Location: res.Location,
		},
		PeriodStart:        res.PickupDate,
		PeriodEnd:          res.ReturnDate,
		PartySize:          1,
		PricePerUnit:       res.Price,
		TotalAmount:        res.Price,
		Status:             normalizeStatus(res.Status),
		ConfirmationNumber: res.ConfirmationNumber,
		RejectionReason:    res.RejectionReason,
		ResponseTimestamp:  res.ResponseDate,
		CreatedAt:          res.Date,
		UpdatedAt:          res.Date,
	}
	if vehicle != nil {
		booking.Service.Name = vehicleDisplayName(vehicle)
	}
	if customer != nil {
		booking.Customer.Name = customer.Name
		booking.Customer.Email = customer.Email
		booking.Customer.Phone = customer.Mobile
	}
	extra := map[string]any{}
	if res.VehicleNumber != "" {
		extra["vehicle_number"] = res.VehicleNumber
	}
	if res.TransactionID != "" {
		extra["transaction_id"] = res.TransactionID
	}
	if res.NeedDriver {
		extra["need_driver"] = true
	}
	if len(extra) > 0 {
		booking.SourceSpecific = extra
	}
	return booking
}

func vehicleDisplayName(v *models.Vehicle) string {
	return strings.TrimSpace(v.Brand + " " + v.Model)
}
