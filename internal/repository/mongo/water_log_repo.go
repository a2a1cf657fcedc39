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

const waterLogCollectionName = "water_logs"

// mongoWaterLogRepository implements repository.WaterLogRepository.
type mongoWaterLogRepository struct {
	collection *mongo.Collection
}

// NewMongoWaterLogRepository creates a new WaterLog repository.
func NewMongoWaterLogRepository(db *mongo.Database) repository.WaterLogRepository {
	return &mongoWaterLogRepository{
		collection: db.Collection(waterLogCollectionName),
	}
}

// Create inserts a new water log entry.
func (r *mongoWaterLogRepository) Create(ctx context.Context, entry *domain.WaterLog) (primitive.ObjectID, error) {
	if entry.UserID == primitive.NilObjectID || entry.LogDate == "" || entry.AmountMl <= 0 {
		return primitive.NilObjectID, errors.New("water log requires userId, logDate, and a positive amount")
	}
	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted water log ID")
	}
	return insertedID, nil
}

// GetByUserAndDate lists one user's water logs for a calendar date, oldest first.
func (r *mongoWaterLogRepository) GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.WaterLog, error) {
	var entries []domain.WaterLog
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

// Delete removes a water log entry owned by the user.
func (r *mongoWaterLogRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
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

// EnsureWaterLogIndexes creates necessary indexes. Call during startup.
func EnsureWaterLogIndexes(ctx context.Context, collection *mongo.Collection) {
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
