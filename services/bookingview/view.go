package bookingview

import (
	"context"
	"sort"
	"time"

	"travelhub/config"
	"travelhub/models"
	"travelhub/utils"

	"go.uber.org/zap"
)

const defaultPageSize = 20

// DefaultViewService merges every source adapter into one sorted, paginated
// listing. The fan-out is partial-result tolerant: an adapter that errors or
// exceeds the view timeout contributes nothing, the rest of the page is still
// served.
type DefaultViewService struct {
	Adapters []SourceAdapter
}

// NewDefaultViewService builds the merged view over the given adapters.
func NewDefaultViewService(adapters ...SourceAdapter) *DefaultViewService {
	return &DefaultViewService{Adapters: adapters}
}

// ListForProvider returns one page of the provider's merged bookings.
func (s *DefaultViewService) ListForProvider(ctx context.Context, providerID string, q ListQuery) (*models.BookingPage, error) {
	return s.list(ctx, q, func(ctx context.Context, a SourceAdapter) ([]models.Booking, error) {
		return a.ListByProvider(ctx, providerID, q.Status)
	})
}

// ListForCustomer returns one page of the customer's merged bookings.
func (s *DefaultViewService) ListForCustomer(ctx context.Context, customerID string, q ListQuery) (*models.BookingPage, error) {
	return s.list(ctx, q, func(ctx context.Context, a SourceAdapter) ([]models.Booking, error) {
		return a.ListByCustomer(ctx, customerID, q.Status)
	})
}

func (s *DefaultViewService) list(ctx context.Context, q ListQuery, fetch func(context.Context, SourceAdapter) ([]models.Booking, error)) (*models.BookingPage, error) {
	logger := utils.GetLogger()

	timeout := 10 * time.Second
	if config.AppConfig.ViewTimeoutSeconds > 0 {
		timeout = time.Duration(config.AppConfig.ViewTimeoutSeconds) * time.Second
	}
	fanCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// The channel is buffered for every launched adapter so a goroutine that
	// finishes after the deadline can still send and exit.
	type fanResult struct {
		index    int
		bookings []models.Booking
	}
	resultCh := make(chan fanResult, len(s.Adapters))
	launched := 0
	for i, adapter := range s.Adapters {
		if q.SourceKind != "" && adapter.Kind() != q.SourceKind {
			continue
		}
		launched++
		go func(i int, adapter SourceAdapter) {
			bookings, err := fetch(fanCtx, adapter)
			if err != nil {
				logger.Error("booking view: source adapter failed",
					zap.String("source_kind", adapter.Kind()),
					zap.Error(err))
				resultCh <- fanResult{index: i}
				return
			}
			resultCh <- fanResult{index: i, bookings: bookings}
		}(i, adapter)
	}

	// Collect until every adapter has answered or the deadline hits. Adapters
	// that miss the deadline contribute nothing to this page.
	results := make([][]models.Booking, len(s.Adapters))
collect:
	for received := 0; received < launched; received++ {
		select {
		case res := <-resultCh:
			results[res.index] = res.bookings
		case <-fanCtx.Done():
			logger.Warn("booking view: deadline hit, serving partial result",
				zap.Int("adapters_pending", launched-received))
			break collect
		}
	}

	merged := make([]models.Booking, 0)
	for _, part := range results {
		for _, b := range part {
			// Adapters pre-filter where their store allows it; the filter is
			// re-applied here so the merged page is consistent regardless.
			if q.Status != "" && b.Status != q.Status {
				continue
			}
			merged = append(merged, b)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if !merged[i].CreatedAt.Equal(merged[j].CreatedAt) {
			return merged[i].CreatedAt.After(merged[j].CreatedAt)
		}
		return merged[i].ID < merged[j].ID
	})

	return paginate(merged, q.Page, q.PageSize), nil
}

// paginate slices the merged list in memory. Page numbers are 1-based; a page
// past the end yields an empty item list with the true total.
func paginate(items []models.Booking, page, pageSize int) *models.BookingPage {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &models.BookingPage{
		Items:      items[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
