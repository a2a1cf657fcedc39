package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseLog records a workout the user performed, logged independently of
// the daily plan. Each new log is fuzzy-matched against today's plan items
// so planned exercises get checked off as they are actually done.
type ExerciseLog struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"userId" json:"user_id"`
	LogDate        string             `bson:"logDate" json:"log_date"` // PlanDateLayout
	ExerciseName   string             `bson:"exerciseName" json:"exercise_name"`
	DurationMin    int                `bson:"durationMinutes" json:"duration_minutes"`
	CaloriesBurned int                `bson:"caloriesBurned,omitempty" json:"calories_burned,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"created_at"`
}
