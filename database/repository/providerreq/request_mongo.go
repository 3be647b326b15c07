package providerReqRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travelhub/database"
	"travelhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateActive is returned when the partial unique index on
// (user_id, provider_type) rejects a second active request.
var ErrDuplicateActive = errors.New("active request already exists for this provider type")

// MongoProviderRequestRepo implements ProviderRequestRepository using MongoDB.
type MongoProviderRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRequestRepo creates a new instance of
// ProviderRequestRepository using MongoDB.
func NewMongoProviderRequestRepo() ProviderRequestRepository {
	coll := database.DB().Collection("provider_requests")
	repo := &MongoProviderRequestRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes mirrors the inherited schema: the unique index applies only to
// active (pending/approved) requests, so a rejected request never blocks a
// fresh application.
func (r *MongoProviderRequestRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "provider_type", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(bson.M{
				"status": bson.M{"$in": []string{models.RequestStatusPending, models.RequestStatusApproved}},
			}),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "submitted_at", Value: -1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new request document.
func (r *MongoProviderRequestRepo) Create(req *models.ProviderRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateActive
		}
		return fmt.Errorf("failed to create provider request: %w", err)
	}
	return nil
}

// GetByID retrieves a request by its unique ID.
func (r *MongoProviderRequestRepo) GetByID(id string) (*models.ProviderRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var req models.ProviderRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch provider request with id %s: %w", id, err)
	}
	return &req, nil
}

// FindActiveByUserAndType returns the pending or approved request for the pair.
func (r *MongoProviderRequestRepo) FindActiveByUserAndType(userID, providerType string) (*models.ProviderRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"user_id":       userID,
		"provider_type": providerType,
		"status":        bson.M{"$in": []string{models.RequestStatusPending, models.RequestStatusApproved}},
	}
	var req models.ProviderRequest
	if err := r.coll.FindOne(ctx, filter).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up active request: %w", err)
	}
	return &req, nil
}

func (r *MongoProviderRequestRepo) list(filter bson.M) ([]models.ProviderRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list provider requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.ProviderRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode provider requests: %w", err)
	}
	return requests, nil
}

// ListAll retrieves every request, newest submission first.
func (r *MongoProviderRequestRepo) ListAll() ([]models.ProviderRequest, error) {
	return r.list(bson.M{})
}

// ListByUser retrieves a user's requests, newest submission first.
func (r *MongoProviderRequestRepo) ListByUser(userID string) ([]models.ProviderRequest, error) {
	return r.list(bson.M{"user_id": userID})
}

// Update modifies an existing request document.
func (r *MongoProviderRequestRepo) Update(req *models.ProviderRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	req.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": req.ID}, bson.M{"$set": req})
	if err != nil {
		return fmt.Errorf("failed to update provider request with id %s: %w", req.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("provider request with id %s not found", req.ID)
	}
	return nil
}
