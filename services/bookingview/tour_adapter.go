package bookingview

import (
	"context"
	"strings"

	tourRepo "travelhub/database/repository/tour"
	userRepo "travelhub/database/repository/user"
	"travelhub/models"
	"travelhub/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// TourAdapter maps legacy tour booking records. Ownership in that store is a
// dual-key mess, tour_owner_id holds an email on old records and an account id
// on newer ones, so the provider listing queries both and every booking that
// leaves this adapter carries the normalized account id. A booking whose tour
// no longer resolves is skipped.
type TourAdapter struct {
	Tours tourRepo.TourRepository
	Users userRepo.UserRepository
	// Cache holds resolved tours for a short TTL. Optional, nil skips caching.
	Cache *redis.Client
}

func (a *TourAdapter) Kind() string { return models.SourceTour }

// ListByProvider returns the provider's tour bookings, matched against both
// the account id and the account email.
func (a *TourAdapter) ListByProvider(ctx context.Context, providerID, status string) ([]models.Booking, error) {
	owner, err := a.Users.GetByID(providerID)
	if err != nil {
		return nil, err
	}
	ownerEmail := ""
	if owner != nil {
		ownerEmail = owner.Email
	}

	books, err := a.Tours.ListBooksByOwner(providerID, ownerEmail)
	if err != nil {
		return nil, err
	}
	return a.convertAll(books, providerID, owner, status), nil
}

// ListByCustomer returns the customer's tour bookings, matched against both
// the account id and email since old records only store the email.
func (a *TourAdapter) ListByCustomer(ctx context.Context, customerID, status string) ([]models.Booking, error) {
	customer, err := a.Users.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	customerEmail := ""
	if customer != nil {
		customerEmail = customer.Email
	}

	books, err := a.Tours.ListBooksByCustomer(customerID, customerEmail)
	if err != nil {
		return nil, err
	}
	return a.convertAll(books, "", nil, status), nil
}

// LoadForMutation resolves one tour booking and returns a commit against the
// tour store.
func (a *TourAdapter) LoadForMutation(ctx context.Context, bookingID string) (*MutableBooking, error) {
	book, err := a.Tours.GetBookByID(bookingID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookingNotFound
	}

	tour, err := a.getTour(book.TourID)
	if err != nil {
		return nil, err
	}

	booking := a.convert(book, tour)
	booking.Provider.ID = a.resolveOwnerID(book.TourOwnerID)

	commit := func(status string, extras CommitExtras) error {
		book.Status = status
		ts := extras.ResponseTimestamp
		book.ResponseDate = &ts
		book.UpdatedAt = ts
		if extras.ConfirmationNumber != "" {
			book.ConfirmationNumber = extras.ConfirmationNumber
		}
		if extras.RejectionReason != "" {
			book.RejectionReason = extras.RejectionReason
		}
		return a.Tours.UpdateBook(book)
	}
	return &MutableBooking{Booking: booking, Commit: commit}, nil
}

// getTour resolves a tour through the shared cache. Missing tours are not
// cached so a tour created moments ago shows up on the next listing.
func (a *TourAdapter) getTour(tourID string) (*models.Tour, error) {
	var cached models.Tour
	if cacheGet(a.Cache, "tour:"+tourID, &cached) {
		return &cached, nil
	}
	tour, err := a.Tours.GetTourByID(tourID)
	if err != nil || tour == nil {
		return tour, err
	}
	cacheSet(a.Cache, "tour:"+tourID, tour)
	return tour, nil
}

// resolveOwnerID turns the dual-key tour_owner_id into an account id. When the
// stored value is an email and the account lookup fails, the raw value is
// returned rather than losing the booking.
func (a *TourAdapter) resolveOwnerID(stored string) string {
	if !looksLikeEmail(stored) {
		return stored
	}
	owner, err := a.Users.GetByEmail(stored)
	if err != nil || owner == nil {
		return stored
	}
	return owner.ID
}

func (a *TourAdapter) convertAll(books []models.TourBook, ownerID string, owner *models.User, status string) []models.Booking {
	logger := utils.GetLogger()

	tourMemo := map[string]*models.Tour{}

	bookings := make([]models.Booking, 0, len(books))
	for i := range books {
		book := &books[i]

		if status != "" && normalizeStatus(book.Status) != status {
			continue
		}

		tour, ok := tourMemo[book.TourID]
		if !ok {
			var err error
			tour, err = a.getTour(book.TourID)
			if err != nil {
				logger.Warn("tour adapter: tour lookup failed",
					zap.String("tour_id", book.TourID), zap.Error(err))
				tour = nil
			}
			tourMemo[book.TourID] = tour
		}
		if tour == nil {
			logger.Warn("tour adapter: skipping booking with missing tour",
				zap.String("booking_id", book.ID),
				zap.String("tour_id", book.TourID))
			continue
		}

		booking := a.convert(book, tour)
		if ownerID != "" {
			booking.Provider.ID = ownerID
			if owner != nil {
				booking.Provider.Name = owner.Name
				booking.Provider.BusinessEmail = owner.Email
				booking.Provider.BusinessPhone = owner.Mobile
			}
		} else {
			booking.Provider.ID = a.resolveOwnerID(book.TourOwnerID)
		}
		bookings = append(bookings, booking)
	}
	return bookings
}

func (a *TourAdapter) convert(book *models.TourBook, tour *models.Tour) models.Booking {
	booking := models.Booking{
		ID:         book.ID,
		SourceKind: models.SourceTour,
		Customer: models.BookingCustomer{
			ID:    book.CustomerID,
			Name:  book.CustomerName,
			Email: book.CustomerEmail,
			Phone: book.CustomerPhone,
		},
		Service: models.BookingServiceRef{
			ID:   book.TourID,
			Type: "tour",
		},
		// Tours are single-day, the period collapses to the tour date.
		PeriodStart:        book.TourDate,
		PeriodEnd:          book.TourDate,
		PartySize:          partySize(book.Guests),
		PricePerUnit:       book.TourPrice,
		TotalAmount:        book.TotalAmount,
		Status:             normalizeStatus(book.Status),
		ConfirmationNumber: book.ConfirmationNumber,
		RejectionReason:    book.RejectionReason,
		ResponseTimestamp:  book.ResponseDate,
		CreatedAt:          book.CreatedAt,
		UpdatedAt:          book.UpdatedAt,
	}
	if tour != nil {
		booking.Service.Name = tour.Name
		booking.Service.Location = tourLocation(tour)
		if booking.PricePerUnit == 0 {
			booking.PricePerUnit = tour.Price
		}
	}
	if book.SpecialRequests != "" {
		booking.SourceSpecific = map[string]any{
			"special_requests": book.SpecialRequests,
		}
	}
	return booking
}

// tourLocation falls back from cities to category for display.
func tourLocation(tour *models.Tour) string {
	if tour.Cities != "" {
		return tour.Cities
	}
	return tour.Category
}

func looksLikeEmail(s string) bool {
	return strings.Contains(s, "@")
}
