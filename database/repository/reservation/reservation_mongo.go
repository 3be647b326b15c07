package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"travelhub/database"
	"travelhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo creates a new instance of ReservationRepository using MongoDB.
func NewMongoReservationRepo() ReservationRepository {
	coll := database.DB().Collection("service_reservations")
	repo := &MongoReservationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReservationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "provider_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new reservation document.
func (r *MongoReservationRepo) Create(res *models.ServiceReservation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	res.CreatedAt = now
	res.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, res); err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

// GetByID retrieves a reservation by its unique ID.
func (r *MongoReservationRepo) GetByID(id string) (*models.ServiceReservation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var res models.ServiceReservation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch reservation with id %s: %w", id, err)
	}
	return &res, nil
}

func (r *MongoReservationRepo) list(filter bson.M) ([]models.ServiceReservation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.ServiceReservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return reservations, nil
}

// ListByProvider retrieves reservations for a provider, newest first.
func (r *MongoReservationRepo) ListByProvider(providerID, status string) ([]models.ServiceReservation, error) {
	filter := bson.M{"provider_id": providerID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(filter)
}

// ListByCustomer retrieves reservations for a customer, newest first.
func (r *MongoReservationRepo) ListByCustomer(customerID, status string) ([]models.ServiceReservation, error) {
	filter := bson.M{"customer_id": customerID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(filter)
}

// Update modifies an existing reservation document.
func (r *MongoReservationRepo) Update(res *models.ServiceReservation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": res.ID}, bson.M{"$set": res})
	if err != nil {
		return fmt.Errorf("failed to update reservation with id %s: %w", res.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reservation with id %s not found", res.ID)
	}
	return nil
}
