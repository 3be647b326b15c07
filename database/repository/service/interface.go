package serviceRepo

import "travelhub/models"

// ServiceRepository defines methods for bookable service data access.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Service, error)
	// ListByProvider retrieves every service owned by a provider.
	ListByProvider(providerID string) ([]models.Service, error)
	// Create inserts a new service record.
	Create(svc *models.Service) error
}
