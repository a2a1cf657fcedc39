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

const dailyPlanCollectionName = "daily_plans"

// mongoDailyPlanRepository implements repository.DailyPlanRepository.
type mongoDailyPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoDailyPlanRepository creates a new DailyPlan repository.
func NewMongoDailyPlanRepository(db *mongo.Database) repository.DailyPlanRepository {
	return &mongoDailyPlanRepository{
		collection: db.Collection(dailyPlanCollectionName),
	}
}

// Create inserts a new daily plan. The unique (userId, planDate) index makes
// a concurrent double-generate surface here as repository.ErrDuplicate.
func (r *mongoDailyPlanRepository) Create(ctx context.Context, plan *domain.DailyPlan) (primitive.ObjectID, error) {
	if plan.UserID == primitive.NilObjectID || plan.PlanDate == "" {
		return primitive.NilObjectID, errors.New("plan requires userId and planDate")
	}
	plan.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, plan)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted plan ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single plan by its ID.
func (r *mongoDailyPlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.DailyPlan, error) {
	var plan domain.DailyPlan
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// GetByUserAndDate retrieves the plan for one user and one calendar date.
func (r *mongoDailyPlanRepository) GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*domain.DailyPlan, error) {
	var plan domain.DailyPlan
	filter := bson.M{"userId": userID, "planDate": date}
	err := r.collection.FindOne(ctx, filter).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// ReplaceItems rewrites the whole items array of a plan. Item toggling and
// log syncing both persist this way; there is no partial-item update.
// The userId in the filter enforces ownership at the DB level.
func (r *mongoDailyPlanRepository) ReplaceItems(ctx context.Context, planID, userID primitive.ObjectID, items []domain.WorkoutItem) error {
	if planID == primitive.NilObjectID {
		return errors.New("plan ID is required for item update")
	}

	filter := bson.M{"_id": planID, "userId": userID}
	update := bson.M{
		"$set": bson.M{
			"items":     items,
			"updatedAt": time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteByUserAndDate removes the plan row for a (user, date), if any.
// Used by forced regeneration; a missing row is not an error.
func (r *mongoDailyPlanRepository) DeleteByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) error {
	if userID == primitive.NilObjectID || date == "" {
		return errors.New("user ID and date are required for deletion")
	}

	filter := bson.M{"userId": userID, "planDate": date}
	_, err := r.collection.DeleteOne(ctx, filter)
	return err
}

// EnsureDailyPlanIndexes creates necessary indexes. Call during startup.
// The unique compound index is the invariant keeper: at most one plan per
// (userId, planDate).
func EnsureDailyPlanIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "planDate", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
