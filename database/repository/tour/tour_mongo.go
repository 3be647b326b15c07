package tourRepo

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

// MongoTourRepo implements TourRepository using MongoDB. Tours and their
// booking records live in separate collections, as inherited.
type MongoTourRepo struct {
	tours *mongo.Collection
	books *mongo.Collection
}

// NewMongoTourRepo creates a new instance of TourRepository using MongoDB.
func NewMongoTourRepo() TourRepository {
	repo := &MongoTourRepo{
		tours: database.DB().Collection("tours"),
		books: database.DB().Collection("tour_books"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTourRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.tours.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create tour indexes: %w", err)
	}

	bookIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tour_owner_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "customer_email", Value: 1}}},
	}
	if _, err := r.books.Indexes().CreateMany(ctx, bookIndexes); err != nil {
		return fmt.Errorf("failed to create tour book indexes: %w", err)
	}
	return nil
}

// GetTourByID retrieves a tour by its unique ID.
func (r *MongoTourRepo) GetTourByID(id string) (*models.Tour, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var tour models.Tour
	if err := r.tours.FindOne(ctx, bson.M{"id": id}).Decode(&tour); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tour with id %s: %w", id, err)
	}
	return &tour, nil
}

func (r *MongoTourRepo) listBooks(filter bson.M) ([]models.TourBook, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.books.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tour books: %w", err)
	}
	defer cursor.Close(ctx)

	var books []models.TourBook
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("failed to decode tour books: %w", err)
	}
	return books, nil
}

// ListBooksByOwner matches tour_owner_id against the owner's id or email.
func (r *MongoTourRepo) ListBooksByOwner(ownerID, ownerEmail string) ([]models.TourBook, error) {
	or := []bson.M{{"tour_owner_id": ownerID}}
	if ownerEmail != "" {
		or = append(or, bson.M{"tour_owner_id": ownerEmail})
	}
	return r.listBooks(bson.M{"$or": or})
}

// ListBooksByCustomer matches the customer's id or email.
func (r *MongoTourRepo) ListBooksByCustomer(customerID, customerEmail string) ([]models.TourBook, error) {
	or := []bson.M{{"customer_id": customerID}}
	if customerEmail != "" {
		or = append(or, bson.M{"customer_email": customerEmail})
	}
	return r.listBooks(bson.M{"$or": or})
}

// GetBookByID retrieves a booking record by its unique ID.
func (r *MongoTourRepo) GetBookByID(id string) (*models.TourBook, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var book models.TourBook
	if err := r.books.FindOne(ctx, bson.M{"id": id}).Decode(&book); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tour book with id %s: %w", id, err)
	}
	return &book, nil
}

// CreateBook inserts a new tour booking record.
func (r *MongoTourRepo) CreateBook(book *models.TourBook) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	book.CreatedAt = now
	book.UpdatedAt = now

	if _, err := r.books.InsertOne(ctx, book); err != nil {
		return fmt.Errorf("failed to create tour book: %w", err)
	}
	return nil
}

// UpdateBook modifies an existing tour booking record.
func (r *MongoTourRepo) UpdateBook(book *models.TourBook) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	book.UpdatedAt = time.Now()
	result, err := r.books.UpdateOne(ctx, bson.M{"id": book.ID}, bson.M{"$set": book})
	if err != nil {
		return fmt.Errorf("failed to update tour book with id %s: %w", book.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("tour book with id %s not found", book.ID)
	}
	return nil
}
