package bookingview

import (
	"context"

	reservationRepo "travelhub/database/repository/reservation"
	serviceRepo "travelhub/database/repository/service"
	userRepo "travelhub/database/repository/user"
	"travelhub/models"
	"travelhub/utils"

	"go.uber.org/zap"
)

// GenericAdapter maps generic service reservations. The store already keys by
// provider and customer id, so listing is mostly field renaming; service and
// counterparty display fields are hydrated with per-call memo maps. Unlike the
// legacy adapters a broken service reference does not exclude the record, the
// reservation itself carries enough to be useful.
type GenericAdapter struct {
	Reservations reservationRepo.ReservationRepository
	Services     serviceRepo.ServiceRepository
	Users        userRepo.UserRepository
}

func (a *GenericAdapter) Kind() string { return models.SourceGeneric }

// ListByProvider returns the provider's generic reservations.
func (a *GenericAdapter) ListByProvider(ctx context.Context, providerID, status string) ([]models.Booking, error) {
	reservations, err := a.Reservations.ListByProvider(providerID, status)
	if err != nil {
		return nil, err
	}
	return a.convertAll(reservations, true), nil
}

// ListByCustomer returns the customer's generic reservations.
func (a *GenericAdapter) ListByCustomer(ctx context.Context, customerID, status string) ([]models.Booking, error) {
	reservations, err := a.Reservations.ListByCustomer(customerID, status)
	if err != nil {
		return nil, err
	}
	return a.convertAll(reservations, false), nil
}

// LoadForMutation resolves one reservation and returns a commit against the
// generic store.
func (a *GenericAdapter) LoadForMutation(ctx context.Context, bookingID string) (*MutableBooking, error) {
	res, err := a.Reservations.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrBookingNotFound
	}

	booking := a.convert(res, nil, nil)
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
		return a.Reservations.Update(res)
	}
	return &MutableBooking{Booking: booking, Commit: commit}, nil
}

func (a *GenericAdapter) convertAll(reservations []models.ServiceReservation, providerSide bool) []models.Booking {
	logger := utils.GetLogger()

	serviceMemo := map[string]*models.Service{}
	userMemo := map[string]*models.User{}

	bookings := make([]models.Booking, 0, len(reservations))
	for i := range reservations {
		res := &reservations[i]

		svc, ok := serviceMemo[res.ServiceID]
		if !ok {
			var err error
			svc, err = a.Services.GetByID(res.ServiceID)
			if err != nil {
				logger.Warn("generic adapter: service lookup failed",
					zap.String("service_id", res.ServiceID), zap.Error(err))
				svc = nil
			}
			serviceMemo[res.ServiceID] = svc
		}

		// On the provider side the counterparty is the customer and vice
		// versa; the reservation's own denormalized fields cover the customer
		// already, so only the provider account needs a lookup.
		var counterparty *models.User
		if !providerSide {
			counterparty, ok = userMemo[res.ProviderID]
			if !ok {
				var err error
				counterparty, err = a.Users.GetByID(res.ProviderID)
				if err != nil {
					logger.Warn("generic adapter: provider lookup failed",
						zap.String("provider_id", res.ProviderID), zap.Error(err))
					counterparty = nil
				}
				userMemo[res.ProviderID] = counterparty
			}
		}

		bookings = append(bookings, a.convert(res, svc, counterparty))
	}
	return bookings
}

func (a *GenericAdapter) convert(res *models.ServiceReservation, svc *models.Service, provider *models.User) models.Booking {
	booking := models.Booking{
		ID:         res.ID,
		SourceKind: models.SourceGeneric,
		Customer: models.BookingCustomer{
			ID:    res.CustomerID,
			Name:  res.CustomerName,
			Email: res.CustomerEmail,
			Phone: res.CustomerPhone,
		},
		Provider: models.BookingProvider{ID: res.ProviderID},
		Service:  models.BookingServiceRef{ID: res.ServiceID},
		PeriodStart:        res.CheckInDate,
		PeriodEnd:          res.CheckOutDate,
		PartySize:          partySize(res.Guests),
		PricePerUnit:       res.PricePerUnit,
		TotalAmount:        res.TotalAmount,
		Status:             normalizeStatus(res.Status),
		ConfirmationNumber: res.ConfirmationNumber,
		RejectionReason:    res.RejectionReason,
		ResponseTimestamp:  res.ResponseDate,
		CreatedAt:          res.CreatedAt,
		UpdatedAt:          res.UpdatedAt,
	}
	if svc != nil {
		booking.Service.Name = svc.Name
		booking.Service.Type = svc.Type
		booking.Service.Location = svc.Location
	}
	if provider != nil {
		booking.Provider.Name = provider.Name
		booking.Provider.BusinessEmail = provider.Email
		booking.Provider.BusinessPhone = provider.Mobile
	}
	if res.Rooms > 0 || res.SpecialRequests != "" {
		booking.SourceSpecific = map[string]any{}
		if res.Rooms > 0 {
			booking.SourceSpecific["rooms"] = res.Rooms
		}
		if res.SpecialRequests != "" {
			booking.SourceSpecific["special_requests"] = res.SpecialRequests
		}
	}
	return booking
}

func partySize(guests int) int {
	if guests < 1 {
		return 1
	}
	return guests
}

// normalizeStatus maps legacy empty statuses to pending.
func normalizeStatus(s string) string {
	if s == "" {
		return models.StatusPending
	}
	return s
}
