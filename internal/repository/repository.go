package repository

import (
	"context"

	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
}

// DailyPlanRepository defines the interface for interacting with daily plans.
// Dates are domain.PlanDateLayout strings. GetByUserAndDate returns
// ErrNotFound when no plan exists for the day; Create returns ErrDuplicate
// when another plan for the same (user, date) already landed, which callers
// treat as "someone else created today's plan" and re-fetch.
type DailyPlanRepository interface {
	Create(ctx context.Context, plan *domain.DailyPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.DailyPlan, error)
	GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*domain.DailyPlan, error)
	ReplaceItems(ctx context.Context, planID, userID primitive.ObjectID, items []domain.WorkoutItem) error
	DeleteByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) error
}

// FoodLogRepository defines the interface for interacting with food logs.
type FoodLogRepository interface {
	Create(ctx context.Context, entry *domain.FoodLog) (primitive.ObjectID, error)
	GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.FoodLog, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

// WaterLogRepository defines the interface for interacting with water logs.
type WaterLogRepository interface {
	Create(ctx context.Context, entry *domain.WaterLog) (primitive.ObjectID, error)
	GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.WaterLog, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

// ExerciseLogRepository defines the interface for interacting with exercise logs.
type ExerciseLogRepository interface {
	Create(ctx context.Context, entry *domain.ExerciseLog) (primitive.ObjectID, error)
	GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.ExerciseLog, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

// UploadRepository defines the interface for interacting with meal photo metadata.
type UploadRepository interface {
	Create(ctx context.Context, upload *domain.Upload) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Upload, error)
}
