package mongo

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/domain"
	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const foodLogCollectionName = "food_logs"

// mongoFoodLogRepository implements repository.FoodLogRepository.
type mongoFoodLogRepository struct {
	collection *mongo.Collection
}

// NewMongoFoodLogRepository creates a new FoodLog repository.
func NewMongoFoodLogRepository(db *mongo.Database) repository.FoodLogRepository {
	return &mongoFoodLogRepository{
		collection: db.Collection(foodLogCollectionName),
	}
}

// Create inserts a new food log entry.
func (r *mongoFoodLogRepository) Create(ctx context.Context, entry *domain.FoodLog) (primitive.ObjectID, error) {
	if entry.UserID == primitive.NilObjectID || entry.LogDate == "" || entry.NameEn == "" {
		return primitive.NilObjectID, errors.New("food log requires userId, logDate, and name")
	}
	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted food log ID")
	}
	return insertedID, nil
}

// GetByUserAndDate lists one user's food logs for a calendar date, oldest first.
func (r *mongoFoodLogRepository) GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.FoodLog, error) {
	var entries []domain.FoodLog
	filter := bson.M{"userId": userID, "logDate": date}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes a food log entry owned by the user.
func (r *mongoFoodLogRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	filter := bson.M{"_id": id, "userId": userID}
	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureFoodLogIndexes creates necessary indexes. Call during startup.
func EnsureFoodLogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "logDate", Value: 1}},
			Options: options.Index(),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
