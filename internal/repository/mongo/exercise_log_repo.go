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

const exerciseLogCollectionName = "exercise_logs"

// mongoExerciseLogRepository implements repository.ExerciseLogRepository.
type mongoExerciseLogRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseLogRepository creates a new ExerciseLog repository.
func NewMongoExerciseLogRepository(db *mongo.Database) repository.ExerciseLogRepository {
	return &mongoExerciseLogRepository{
		collection: db.Collection(exerciseLogCollectionName),
	}
}

// Create inserts a new exercise log entry.
func (r *mongoExerciseLogRepository) Create(ctx context.Context, entry *domain.ExerciseLog) (primitive.ObjectID, error) {
	if entry.UserID == primitive.NilObjectID || entry.LogDate == "" || entry.ExerciseName == "" {
		return primitive.NilObjectID, errors.New("exercise log requires userId, logDate, and exerciseName")
	}
	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted exercise log ID")
	}
	return insertedID, nil
}

// GetByUserAndDate lists one user's exercise logs for a calendar date, oldest first.
func (r *mongoExerciseLogRepository) GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.ExerciseLog, error) {
	var entries []domain.ExerciseLog
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

// Delete removes an exercise log entry owned by the user.
func (r *mongoExerciseLogRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
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

// EnsureExerciseLogIndexes creates necessary indexes. Call during startup.
func EnsureExerciseLogIndexes(ctx context.Context, collection *mongo.Collection) {
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
