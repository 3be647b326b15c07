package bookingview

import (
	"context"
	"errors"
	"testing"
	"time"

	"travelhub/config"
	"travelhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAdapter returns a fixed slice for every listing call.
type stubAdapter struct {
	kind     string
	bookings []models.Booking
	err      error
}

func (s *stubAdapter) Kind() string { return s.kind }

func (s *stubAdapter) ListByProvider(ctx context.Context, providerID, status string) ([]models.Booking, error) {
	return s.bookings, s.err
}

func (s *stubAdapter) ListByCustomer(ctx context.Context, customerID, status string) ([]models.Booking, error) {
	return s.bookings, s.err
}

func (s *stubAdapter) LoadForMutation(ctx context.Context, bookingID string) (*MutableBooking, error) {
	return nil, ErrBookingNotFound
}

func bookingAt(id, kind, status string, createdAt time.Time) models.Booking {
	return models.Booking{
		ID:         id,
		SourceKind: kind,
		Status:     status,
		CreatedAt:  createdAt,
	}
}

func TestListMergesAndSortsNewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	view := NewDefaultViewService(
		&stubAdapter{kind: models.SourceGeneric, bookings: []models.Booking{
			bookingAt("g1", models.SourceGeneric, models.StatusPending, base.Add(1*time.Hour)),
			bookingAt("g2", models.SourceGeneric, models.StatusPending, base.Add(5*time.Hour)),
		}},
		&stubAdapter{kind: models.SourceTour, bookings: []models.Booking{
			bookingAt("t1", models.SourceTour, models.StatusPending, base.Add(3*time.Hour)),
		}},
	)

	page, err := view.ListForProvider(context.Background(), "prov-1", ListQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)

	require.Equal(t, 3, page.Total)
	ids := make([]string, 0, len(page.Items))
	for _, b := range page.Items {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"g2", "t1", "g1"}, ids)
}

func TestListTieBreaksByID(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	view := NewDefaultViewService(
		&stubAdapter{kind: models.SourceGeneric, bookings: []models.Booking{
			bookingAt("b", models.SourceGeneric, models.StatusPending, ts),
			bookingAt("a", models.SourceGeneric, models.StatusPending, ts),
		}},
	)

	page, err := view.ListForCustomer(context.Background(), "cust-1", ListQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "a", page.Items[0].ID)
	assert.Equal(t, "b", page.Items[1].ID)
}

func TestListReappliesStatusFilter(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	// The adapter ignores the status argument, simulating a store that cannot
	// pre-filter.
	view := NewDefaultViewService(
		&stubAdapter{kind: models.SourceGeneric, bookings: []models.Booking{
			bookingAt("g1", models.SourceGeneric, models.StatusConfirmed, base),
			bookingAt("g2", models.SourceGeneric, models.StatusPending, base.Add(time.Hour)),
		}},
	)

	page, err := view.ListForProvider(context.Background(), "prov-1", ListQuery{Status: models.StatusConfirmed, Page: 1, PageSize: 10})
	require.NoError(t, err)

	require.Equal(t, 1, page.Total)
	assert.Equal(t, "g1", page.Items[0].ID)
}

func TestListSourceKindLimitsFanOut(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	view := NewDefaultViewService(
		&stubAdapter{kind: models.SourceGeneric, bookings: []models.Booking{
			bookingAt("g1", models.SourceGeneric, models.StatusPending, base),
		}},
		&stubAdapter{kind: models.SourceTour, bookings: []models.Booking{
			bookingAt("t1", models.SourceTour, models.StatusPending, base),
		}},
	)

	page, err := view.ListForProvider(context.Background(), "prov-1", ListQuery{SourceKind: models.SourceTour, Page: 1, PageSize: 10})
	require.NoError(t, err)

	require.Equal(t, 1, page.Total)
	assert.Equal(t, "t1", page.Items[0].ID)
}

func TestListFailingAdapterContributesEmpty(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	view := NewDefaultViewService(
		&stubAdapter{kind: models.SourceGeneric, bookings: []models.Booking{
			bookingAt("g1", models.SourceGeneric, models.StatusPending, base),
		}},
		&stubAdapter{kind: models.SourceTour, err: errors.New("tour store down")},
	)

	page, err := view.ListForProvider(context.Background(), "prov-1", ListQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)

	require.Equal(t, 1, page.Total)
	assert.Equal(t, "g1", page.Items[0].ID)
}

// stalledAdapter blocks for delay before answering, honoring cancellation.
type stalledAdapter struct {
	kind     string
	delay    time.Duration
	bookings []models.Booking
}

func (s *stalledAdapter) Kind() string { return s.kind }

func (s *stalledAdapter) list(ctx context.Context) ([]models.Booking, error) {
	select {
	case <-time.After(s.delay):
		return s.bookings, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *stalledAdapter) ListByProvider(ctx context.Context, providerID, status string) ([]models.Booking, error) {
	return s.list(ctx)
}

func (s *stalledAdapter) ListByCustomer(ctx context.Context, customerID, status string) ([]models.Booking, error) {
	return s.list(ctx)
}

func (s *stalledAdapter) LoadForMutation(ctx context.Context, bookingID string) (*MutableBooking, error) {
	return nil, ErrBookingNotFound
}

func TestListDeadlineDropsStalledAdapter(t *testing.T) {
	prev := config.AppConfig.ViewTimeoutSeconds
	config.AppConfig.ViewTimeoutSeconds = 1
	defer func() { config.AppConfig.ViewTimeoutSeconds = prev }()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	view := NewDefaultViewService(
		&stubAdapter{kind: models.SourceGeneric, bookings: []models.Booking{
			bookingAt("g1", models.SourceGeneric, models.StatusPending, base),
		}},
		&stalledAdapter{kind: models.SourceTour, delay: 30 * time.Second, bookings: []models.Booking{
			bookingAt("t1", models.SourceTour, models.StatusPending, base),
		}},
	)

	start := time.Now()
	page, err := view.ListForProvider(context.Background(), "prov-1", ListQuery{Page: 1, PageSize: 10})
	elapsed := time.Since(start)
	require.NoError(t, err)

	assert.Less(t, elapsed, 2*time.Second, "listing must return at the deadline, not when the slow adapter does")
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "g1", page.Items[0].ID)
}

func TestPaginationCoversWholeSetWithoutDuplicates(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	var generic, tour []models.Booking
	for i := 0; i < 7; i++ {
		generic = append(generic, bookingAt(
			"g"+string(rune('0'+i)), models.SourceGeneric, models.StatusPending, base.Add(time.Duration(i)*time.Minute)))
	}
	for i := 0; i < 5; i++ {
		tour = append(tour, bookingAt(
			"t"+string(rune('0'+i)), models.SourceTour, models.StatusPending, base.Add(time.Duration(i)*time.Second)))
	}
	view := NewDefaultViewService(
		&stubAdapter{kind: models.SourceGeneric, bookings: generic},
		&stubAdapter{kind: models.SourceTour, bookings: tour},
	)

	const pageSize = 5
	seen := map[string]bool{}
	collected := 0
	for page := 1; page <= 3; page++ {
		result, err := view.ListForCustomer(context.Background(), "cust-1", ListQuery{Page: page, PageSize: pageSize})
		require.NoError(t, err)
		assert.Equal(t, 12, result.Total)
		assert.Equal(t, 3, result.TotalPages)
		for _, b := range result.Items {
			assert.False(t, seen[b.ID], "duplicate booking %s across pages", b.ID)
			seen[b.ID] = true
			collected++
		}
	}
	assert.Equal(t, 12, collected)

	// A page past the end is empty but still reports the true total.
	past, err := view.ListForCustomer(context.Background(), "cust-1", ListQuery{Page: 4, PageSize: pageSize})
	require.NoError(t, err)
	assert.Empty(t, past.Items)
	assert.Equal(t, 12, past.Total)
}

func TestPaginateDefaults(t *testing.T) {
	items := []models.Booking{{ID: "a"}, {ID: "b"}}
	page := paginate(items, 0, 0)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, defaultPageSize, page.PageSize)
	assert.Len(t, page.Items, 2)
}
