package reservation

import (
	"context"
	"testing"
	"time"

	"travelhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockReservationRepo struct {
	mock.Mock
}

func (m *mockReservationRepo) Create(res *models.ServiceReservation) error {
	return m.Called(res).Error(0)
}
func (m *mockReservationRepo) GetByID(id string) (*models.ServiceReservation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceReservation), args.Error(1)
}
func (m *mockReservationRepo) ListByProvider(providerID, status string) ([]models.ServiceReservation, error) {
	args := m.Called(providerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceReservation), args.Error(1)
}
func (m *mockReservationRepo) ListByCustomer(customerID, status string) ([]models.ServiceReservation, error) {
	args := m.Called(customerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceReservation), args.Error(1)
}
func (m *mockReservationRepo) Update(res *models.ServiceReservation) error {
	return m.Called(res).Error(0)
}

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) GetByID(id string) (*models.Service, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}
func (m *mockServiceRepo) ListByProvider(providerID string) ([]models.Service, error) {
	args := m.Called(providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}
func (m *mockServiceRepo) Create(svc *models.Service) error { return m.Called(svc).Error(0) }

type mockTourRepo struct {
	mock.Mock
}

func (m *mockTourRepo) GetTourByID(id string) (*models.Tour, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tour), args.Error(1)
}
func (m *mockTourRepo) ListBooksByOwner(ownerID, ownerEmail string) ([]models.TourBook, error) {
	args := m.Called(ownerID, ownerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TourBook), args.Error(1)
}
func (m *mockTourRepo) ListBooksByCustomer(customerID, customerEmail string) ([]models.TourBook, error) {
	args := m.Called(customerID, customerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TourBook), args.Error(1)
}
func (m *mockTourRepo) GetBookByID(id string) (*models.TourBook, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TourBook), args.Error(1)
}
func (m *mockTourRepo) CreateBook(book *models.TourBook) error { return m.Called(book).Error(0) }
func (m *mockTourRepo) UpdateBook(book *models.TourBook) error { return m.Called(book).Error(0) }

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *mockUserRepo) Create(user *models.User) error { return m.Called(user).Error(0) }
func (m *mockUserRepo) Update(user *models.User) error { return m.Called(user).Error(0) }

func newTestService() (*DefaultService, *mockReservationRepo, *mockServiceRepo, *mockTourRepo, *mockUserRepo) {
	reservations := new(mockReservationRepo)
	services := new(mockServiceRepo)
	tours := new(mockTourRepo)
	users := new(mockUserRepo)
	svc := &DefaultService{
		Reservations: reservations,
		Services:     services,
		Tours:        tours,
		Users:        users,
	}
	return svc, reservations, services, tours, users
}

func TestCreateFreezesTotalAmount(t *testing.T) {
	svc, reservations, services, _, users := newTestService()

	services.On("GetByID", "svc-1").Return(&models.Service{
		ID:         "svc-1",
		ProviderID: "prov-1",
		Name:       "Seaside Hotel",
		Price:      100,
	}, nil)
	users.On("GetByID", "cust-1").Return(&models.User{
		ID:    "cust-1",
		Name:  "Ada",
		Email: "ada@example.com",
	}, nil)
	reservations.On("Create", mock.Anything).Return(nil)

	checkIn := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	res, err := svc.Create(context.Background(), "cust-1", CreateInput{
		ServiceID:    "svc-1",
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDate(0, 0, 2),
		Guests:       3,
		Rooms:        2,
	})
	require.NoError(t, err)

	// price 100 x 2 rooms x 2 days.
	assert.Equal(t, 400.0, res.TotalAmount)
	assert.Equal(t, 100.0, res.PricePerUnit)
	assert.Equal(t, models.StatusPending, res.Status)
	assert.Equal(t, "prov-1", res.ProviderID)
	assert.Equal(t, "Ada", res.CustomerName)
}

func TestCreateChargesMinimumOneDay(t *testing.T) {
	svc, reservations, services, _, users := newTestService()

	services.On("GetByID", "svc-1").Return(&models.Service{
		ID: "svc-1", ProviderID: "prov-1", Price: 50,
	}, nil)
	users.On("GetByID", "cust-1").Return(&models.User{ID: "cust-1"}, nil)
	reservations.On("Create", mock.Anything).Return(nil)

	day := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	res, err := svc.Create(context.Background(), "cust-1", CreateInput{
		ServiceID:    "svc-1",
		CheckInDate:  day,
		CheckOutDate: day,
		Guests:       2,
	})
	require.NoError(t, err)

	// Same-day booking bills one day; no rooms, so guests are the unit.
	assert.Equal(t, 100.0, res.TotalAmount)
}

func TestCreatePartialDaysRoundUp(t *testing.T) {
	svc, reservations, services, _, users := newTestService()

	services.On("GetByID", "svc-1").Return(&models.Service{
		ID: "svc-1", ProviderID: "prov-1", Price: 100,
	}, nil)
	users.On("GetByID", "cust-1").Return(&models.User{ID: "cust-1"}, nil)
	reservations.On("Create", mock.Anything).Return(nil)

	checkIn := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	res, err := svc.Create(context.Background(), "cust-1", CreateInput{
		ServiceID:    "svc-1",
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Guests:       1,
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, res.TotalAmount)
}

func TestCreateRejectsReversedPeriod(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	checkIn := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), "cust-1", CreateInput{
		ServiceID:    "svc-1",
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDate(0, 0, -1),
	})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestCreateServiceNotFound(t *testing.T) {
	svc, _, services, _, _ := newTestService()
	services.On("GetByID", "gone").Return(nil, nil)

	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), "cust-1", CreateInput{
		ServiceID:    "gone",
		CheckInDate:  day,
		CheckOutDate: day.AddDate(0, 0, 1),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCreateRejectsSuspendedService(t *testing.T) {
	svc, _, services, _, _ := newTestService()
	services.On("GetByID", "svc-1").Return(&models.Service{
		ID: "svc-1", ProviderID: "prov-1", Price: 50, Status: models.ServiceStatusSuspended,
	}, nil)

	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), "cust-1", CreateInput{
		ServiceID:    "svc-1",
		CheckInDate:  day,
		CheckOutDate: day.AddDate(0, 0, 1),
	})
	assert.ErrorIs(t, err, ErrServiceNotBookable)
}

func TestCreateTourBookingFlatPerPerson(t *testing.T) {
	svc, _, _, tours, users := newTestService()

	tours.On("GetTourByID", "tour-1").Return(&models.Tour{
		ID:      "tour-1",
		Name:    "Masai Mara Weekend",
		OwnerID: "prov-1",
		Price:   5000,
	}, nil)
	users.On("GetByID", "cust-1").Return(&models.User{
		ID: "cust-1", Name: "Ada", Email: "ada@example.com",
	}, nil)
	tours.On("CreateBook", mock.Anything).Return(nil)

	book, err := svc.CreateTourBooking(context.Background(), "cust-1", CreateTourInput{
		TourID:   "tour-1",
		TourDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Guests:   2,
	})
	require.NoError(t, err)

	assert.Equal(t, 10000.0, book.TotalAmount)
	assert.Equal(t, 5000.0, book.TourPrice)
	assert.Equal(t, models.StatusPending, book.Status)
	assert.Equal(t, "prov-1", book.TourOwnerID)
}

func TestGetRestrictedToParties(t *testing.T) {
	svc, reservations, _, _, _ := newTestService()

	stored := &models.ServiceReservation{
		ID:         "r1",
		CustomerID: "cust-1",
		ProviderID: "prov-1",
	}
	reservations.On("GetByID", "r1").Return(stored, nil)

	_, err := svc.Get(context.Background(), "r1", "cust-1")
	assert.NoError(t, err)

	_, err = svc.Get(context.Background(), "r1", "prov-1")
	assert.NoError(t, err)

	_, err = svc.Get(context.Background(), "r1", "stranger")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetNotFound(t *testing.T) {
	svc, reservations, _, _, _ := newTestService()
	reservations.On("GetByID", "missing").Return(nil, nil)

	_, err := svc.Get(context.Background(), "missing", "cust-1")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
