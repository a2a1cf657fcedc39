package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanDateLayout is the storage format for plan dates. Plans are keyed by
// UTC calendar date; day boundaries follow UTC everywhere in the backend.
const PlanDateLayout = "2006-01-02"

// DateKey renders t as the UTC calendar date used to key daily rows.
func DateKey(t time.Time) string {
	return t.UTC().Format(PlanDateLayout)
}

// WorkoutItem is one entry of a daily plan's checklist. Items sourced from
// the exercise library carry ExerciseID; manually added ones may not.
type WorkoutItem struct {
	ExerciseID       string     `bson:"exerciseId,omitempty" json:"exercise_id,omitempty"`
	NameEn           string     `bson:"name" json:"name"`
	NameBn           string     `bson:"nameBn" json:"name_bn"`
	Category         string     `bson:"category" json:"category"`
	PlannedMinutes   int        `bson:"duration" json:"duration"`
	CompletedMinutes int        `bson:"completedMinutes" json:"completed_minutes"`
	Progress         int        `bson:"progress" json:"progress"` // 0-100, against PlannedMinutes
	Checked          bool       `bson:"checked" json:"checked"`
	CompletedAt      *time.Time `bson:"completedAt,omitempty" json:"completed_at"`
}

// DailyPlan is one user's workout checklist for a single calendar day.
// At most one plan exists per (UserID, PlanDate); the mongo layer enforces
// this with a unique compound index.
type DailyPlan struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"user_id"`
	PlanDate    string             `bson:"planDate" json:"plan_date"` // PlanDateLayout
	Items       []WorkoutItem      `bson:"items" json:"items"`
	TipEn       string             `bson:"tip" json:"tip"`
	TipBn       string             `bson:"tipBn" json:"tip_bn"`
	MissedCount int                `bson:"missedCount" json:"missed_count"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updated_at"`
}

// MissedWorkout is a carried-over item from the previous day, surfaced to
// the UI alongside today's plan.
type MissedWorkout struct {
	NameEn string `bson:"name" json:"name"`
	NameBn string `bson:"nameBn" json:"name_bn"`
}
