package providerReqRepo

import "travelhub/models"

// ProviderRequestRepository defines data access for provider qualification
// requests.
type ProviderRequestRepository interface {
	// Create inserts a new request. Returns ErrDuplicateActive when the
	// partial unique index rejects a second active request for the same
	// (user, provider type) pair.
	Create(req *models.ProviderRequest) error
	// GetByID retrieves a request by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.ProviderRequest, error)
	// FindActiveByUserAndType returns the pending or approved request for the
	// pair, or (nil, nil) when none exists.
	FindActiveByUserAndType(userID, providerType string) (*models.ProviderRequest, error)
	// ListAll retrieves every request, newest submission first.
	ListAll() ([]models.ProviderRequest, error)
	// ListByUser retrieves a user's requests, newest submission first.
	ListByUser(userID string) ([]models.ProviderRequest, error)
	// Update modifies an existing request record.
	Update(req *models.ProviderRequest) error
}
