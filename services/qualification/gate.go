package qualification

import (
	"context"
	"errors"
	"fmt"
	"time"

	providerReqRepo "travelhub/database/repository/providerreq"
	userRepo "travelhub/database/repository/user"
	"travelhub/models"
	"travelhub/services/notification"
	"travelhub/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Gate is the provider qualification pipeline: submit, review, and the user
// record denormalization that happens on approval.
type Gate interface {
	Submit(ctx context.Context, userID string, input SubmitInput) (*models.ProviderRequest, error)
	Approve(ctx context.Context, requestID, adminID string) (*models.ProviderRequest, error)
	Reject(ctx context.Context, requestID, adminID, reason string) (*models.ProviderRequest, error)
	Get(ctx context.Context, requestID string) (*models.ProviderRequest, error)
	ListAll(ctx context.Context) ([]models.ProviderRequest, error)
	ListForUser(ctx context.Context, userID string) ([]models.ProviderRequest, error)
}

// DefaultGate is the production Gate.
type DefaultGate struct {
	Requests providerReqRepo.ProviderRequestRepository
	Users    userRepo.UserRepository
	Notifier notification.Service

	validate *validator.Validate
}

// NewDefaultGate wires the gate with its validator instance.
func NewDefaultGate(requests providerReqRepo.ProviderRequestRepository, users userRepo.UserRepository, notifier notification.Service) *DefaultGate {
	return &DefaultGate{
		Requests: requests,
		Users:    users,
		Notifier: notifier,
		validate: newValidator(),
	}
}

// Submit validates the application, enforces one active request per provider
// type and persists it as pending. The pre-check keeps the common duplicate
// path friendly; the partial unique index catches the check-then-write race.
func (g *DefaultGate) Submit(ctx context.Context, userID string, input SubmitInput) (*models.ProviderRequest, error) {
	if userID == "" {
		return nil, ErrUserNotFound
	}
	if verr := validateSubmitInput(g.validate, &input); verr != nil {
		return nil, verr
	}

	user, err := g.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	existing, err := g.Requests.FindActiveByUserAndType(userID, input.ProviderType)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateRequest
	}

	now := time.Now()
	req := &models.ProviderRequest{
		ID:     uuid.New().String(),
		UserID: userID,

		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,

		BusinessName:    input.BusinessName,
		BusinessAddress: input.BusinessAddress,
		BusinessCity:    input.BusinessCity,
		BusinessState:   input.BusinessState,
		BusinessZip:     input.BusinessZip,
		BusinessPhone:   input.BusinessPhone,
		BusinessEmail:   input.BusinessEmail,
		BusinessWebsite: input.BusinessWebsite,

		RegistrationNumber: input.RegistrationNumber,
		LicenseNumber:      input.LicenseNumber,
		TaxID:              input.TaxID,

		ProviderType:   input.ProviderType,
		ServiceDetails: input.ServiceDetails,
		Experience:     input.Experience,
		AdditionalInfo: input.AdditionalInfo,

		Status:      models.RequestStatusPending,
		SubmittedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := g.Requests.Create(req); err != nil {
		if errors.Is(err, providerReqRepo.ErrDuplicateActive) {
			return nil, ErrDuplicateRequest
		}
		return nil, fmt.Errorf("failed to persist provider request: %w", err)
	}
	return req, nil
}

// Approve marks a pending request approved and denormalizes the provider type
// onto the user record. The two writes are sequential: a user update failure
// after the request write is logged as a repair-needed inconsistency, not
// rolled back.
func (g *DefaultGate) Approve(ctx context.Context, requestID, adminID string) (*models.ProviderRequest, error) {
	logger := utils.GetLogger()

	req, err := g.loadPending(requestID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	req.Status = models.RequestStatusApproved
	req.ReviewedBy = adminID
	req.ReviewedAt = &now
	req.UpdatedAt = now
	if err := g.Requests.Update(req); err != nil {
		return nil, fmt.Errorf("failed to persist approval: %w", err)
	}

	if err := g.denormalizeApproval(req); err != nil {
		logger.Error("provider approval needs reconciliation: request approved but user update failed",
			zap.String("request_id", req.ID),
			zap.String("user_id", req.UserID),
			zap.String("provider_type", req.ProviderType),
			zap.Error(err))
	}

	g.notifyReviewed(ctx, req)
	return req, nil
}

// Reject marks a pending request rejected. Requires a non-empty reason and
// never touches the user record.
func (g *DefaultGate) Reject(ctx context.Context, requestID, adminID, reason string) (*models.ProviderRequest, error) {
	if reason == "" {
		return nil, ErrReasonRequired
	}

	req, err := g.loadPending(requestID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	req.Status = models.RequestStatusRejected
	req.RejectionReason = reason
	req.ReviewedBy = adminID
	req.ReviewedAt = &now
	req.UpdatedAt = now
	if err := g.Requests.Update(req); err != nil {
		return nil, fmt.Errorf("failed to persist rejection: %w", err)
	}

	g.notifyReviewed(ctx, req)
	return req, nil
}

// Get returns a single request.
func (g *DefaultGate) Get(ctx context.Context, requestID string) (*models.ProviderRequest, error) {
	req, err := g.Requests.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	return req, nil
}

// ListAll returns every request for admin review.
func (g *DefaultGate) ListAll(ctx context.Context) ([]models.ProviderRequest, error) {
	return g.Requests.ListAll()
}

// ListForUser returns the user's own requests.
func (g *DefaultGate) ListForUser(ctx context.Context, userID string) ([]models.ProviderRequest, error) {
	return g.Requests.ListByUser(userID)
}

func (g *DefaultGate) loadPending(requestID string) (*models.ProviderRequest, error) {
	req, err := g.Requests.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	if req.Status != models.RequestStatusPending {
		return nil, ErrNotPending
	}
	return req, nil
}

// denormalizeApproval reconciles the user record after approval: account type
// becomes provider, the approved type joins provider_types without
// duplicates, and the deprecated single-value mirror is back-filled only when
// still empty.
func (g *DefaultGate) denormalizeApproval(req *models.ProviderRequest) error {
	user, err := g.Users.GetByID(req.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	changed := false
	if user.Type != models.AccountTypeProvider && user.Type != models.AccountTypeAdmin {
		user.Type = models.AccountTypeProvider
		changed = true
	}
	if !user.HasProviderType(req.ProviderType) {
		user.ProviderTypes = append(user.ProviderTypes, req.ProviderType)
		changed = true
	}
	if user.LegacyProviderType == "" {
		user.LegacyProviderType = req.ProviderType
		changed = true
	}
	if !changed {
		return nil
	}

	user.UpdatedAt = time.Now()
	return g.Users.Update(user)
}

// notifyReviewed tells the applicant about the decision. Best-effort, the
// review has already committed.
func (g *DefaultGate) notifyReviewed(ctx context.Context, req *models.ProviderRequest) {
	if g.Notifier == nil {
		return
	}
	logger := utils.GetLogger()

	var title, body, kind string
	switch req.Status {
	case models.RequestStatusApproved:
		kind = models.NotifyRequestApproved
		title = "Provider request approved"
		body = fmt.Sprintf("Your application to provide %s services has been approved. You can now list services.", req.ProviderType)
	case models.RequestStatusRejected:
		kind = models.NotifyRequestRejected
		title = "Provider request rejected"
		body = fmt.Sprintf("Your application to provide %s services was rejected: %s", req.ProviderType, req.RejectionReason)
	default:
		return
	}

	err := g.Notifier.Notify(ctx, req.UserID, title, body, kind, map[string]string{
		"request_id":    req.ID,
		"provider_type": req.ProviderType,
		"status":        req.Status,
	})
	if err != nil {
		logger.Error("failed to dispatch review notification",
			zap.String("request_id", req.ID),
			zap.Error(err))
	}
}
