package vehicleRepo

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

// MongoVehicleRepo implements VehicleRepository using MongoDB.
type MongoVehicleRepo struct {
	vehicles     *mongo.Collection
	reservations *mongo.Collection
}

// NewMongoVehicleRepo creates a new instance of VehicleRepository using MongoDB.
func NewMongoVehicleRepo() VehicleRepository {
	repo := &MongoVehicleRepo{
		vehicles:     database.DB().Collection("vehicles"),
		reservations: database.DB().Collection("vehicle_reservations"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoVehicleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	vehicleIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}
	if _, err := r.vehicles.Indexes().CreateMany(ctx, vehicleIndexes); err != nil {
		return fmt.Errorf("failed to create vehicle indexes: %w", err)
	}

	reservationIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "vehicle_owner_id", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}}},
	}
	if _, err := r.reservations.Indexes().CreateMany(ctx, reservationIndexes); err != nil {
		return fmt.Errorf("failed to create vehicle reservation indexes: %w", err)
	}
	return nil
}

// GetVehicleByID retrieves a vehicle by its unique ID.
func (r *MongoVehicleRepo) GetVehicleByID(id string) (*models.Vehicle, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var vehicle models.Vehicle
	if err := r.vehicles.FindOne(ctx, bson.M{"id": id}).Decode(&vehicle); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch vehicle with id %s: %w", id, err)
	}
	return &vehicle, nil
}

// ListVehiclesByOwner retrieves every vehicle owned by a user.
func (r *MongoVehicleRepo) ListVehiclesByOwner(ownerID string) ([]models.Vehicle, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.vehicles.Find(ctx, bson.M{"user_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var vehicles []models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to decode vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *MongoVehicleRepo) listReservations(filter bson.M) ([]models.VehicleReservation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.reservations.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicle reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.VehicleReservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode vehicle reservations: %w", err)
	}
	return reservations, nil
}

// ListReservationsByOwner retrieves reservations against the owner's vehicles.
func (r *MongoVehicleRepo) ListReservationsByOwner(ownerID string) ([]models.VehicleReservation, error) {
	return r.listReservations(bson.M{"vehicle_owner_id": ownerID})
}

// ListReservationsByCustomer retrieves a customer's reservations.
func (r *MongoVehicleRepo) ListReservationsByCustomer(customerID string) ([]models.VehicleReservation, error) {
	return r.listReservations(bson.M{"user_id": customerID})
}

// GetReservationByID retrieves a reservation by its unique ID.
func (r *MongoVehicleRepo) GetReservationByID(id string) (*models.VehicleReservation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var res models.VehicleReservation
	if err := r.reservations.FindOne(ctx, bson.M{"id": id}).Decode(&res); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch vehicle reservation with id %s: %w", id, err)
	}
	return &res, nil
}

// UpdateReservation modifies an existing reservation record.
func (r *MongoVehicleRepo) UpdateReservation(res *models.VehicleReservation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.reservations.UpdateOne(ctx, bson.M{"id": res.ID}, bson.M{"$set": res})
	if err != nil {
		return fmt.Errorf("failed to update vehicle reservation with id %s: %w", res.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("vehicle reservation with id %s not found", res.ID)
	}
	return nil
}
