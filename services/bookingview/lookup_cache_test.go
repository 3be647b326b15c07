package bookingview

import (
	"context"
	"testing"
	"time"

	"travelhub/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *redis.Client {
	t.Helper()
	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestTourAdapterCachesTourLookups(t *testing.T) {
	tours := new(mockTourRepo)
	users := new(mockUserRepo)

	users.On("GetByID", "cust-1").Return(&models.User{
		ID:    "cust-1",
		Email: "ada@example.com",
	}, nil)
	tours.On("ListBooksByCustomer", "cust-1", "ada@example.com").Return([]models.TourBook{{
		ID:          "tb1",
		TourID:      "tour-1",
		TourOwnerID: "prov-1",
		CustomerID:  "cust-1",
		Guests:      2,
		TourPrice:   5000,
		TotalAmount: 10000,
		CreatedAt:   time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}}, nil)
	tours.On("GetTourByID", "tour-1").Return(&models.Tour{
		ID:     "tour-1",
		Name:   "Masai Mara Weekend",
		Cities: "Narok",
	}, nil)

	adapter := &TourAdapter{Tours: tours, Users: users, Cache: newTestCache(t)}

	for i := 0; i < 2; i++ {
		bookings, err := adapter.ListByCustomer(context.Background(), "cust-1", "")
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, "Masai Mara Weekend", bookings[0].Service.Name)
	}

	// The second listing is served from the cache.
	tours.AssertNumberOfCalls(t, "GetTourByID", 1)
}

func TestVehicleAdapterCachesVehicleLookups(t *testing.T) {
	vehicles := new(mockVehicleRepo)
	users := new(mockUserRepo)

	vehicles.On("ListReservationsByCustomer", "cust-1").Return([]models.VehicleReservation{{
		ID:             "vr1",
		VehicleID:      "veh-1",
		UserID:         "cust-1",
		VehicleOwnerID: "prov-1",
		Price:          80,
		Date:           time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}}, nil)
	vehicles.On("GetVehicleByID", "veh-1").Return(&models.Vehicle{
		ID:    "veh-1",
		Brand: "Toyota",
		Model: "Land Cruiser",
	}, nil)
	users.On("GetByID", "cust-1").Return(&models.User{ID: "cust-1", Name: "Ada"}, nil)

	adapter := &VehicleAdapter{Vehicles: vehicles, Users: users, Cache: newTestCache(t)}

	for i := 0; i < 2; i++ {
		bookings, err := adapter.ListByCustomer(context.Background(), "cust-1", "")
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, "Toyota Land Cruiser", bookings[0].Service.Name)
	}

	vehicles.AssertNumberOfCalls(t, "GetVehicleByID", 1)
}

func TestLookupCacheRoundTrip(t *testing.T) {
	cache := newTestCache(t)

	var tour models.Tour
	assert.False(t, cacheGet(cache, "tour:missing", &tour))

	cacheSet(cache, "tour:t1", &models.Tour{ID: "t1", Name: "City Walk"})
	require.True(t, cacheGet(cache, "tour:t1", &tour))
	assert.Equal(t, "City Walk", tour.Name)

	// A nil client degrades to a no-op.
	assert.False(t, cacheGet(nil, "tour:t1", &tour))
	cacheSet(nil, "tour:t1", &tour)
}
