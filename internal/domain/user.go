package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a Desi Nutri account holder together with the profile
// fields the planner and analytics read (goal, body metrics, water target).
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Unique across users
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON

	// Profile. FitnessGoal is free text ("weight loss", "ওজন কমানো", ...);
	// the planner maps it onto category quotas by keyword.
	FitnessGoal   string  `bson:"fitnessGoal,omitempty" json:"fitnessGoal,omitempty"`
	HeightCm      float64 `bson:"heightCm,omitempty" json:"heightCm,omitempty"`
	WeightKg      float64 `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	WaterTargetMl int     `bson:"waterTargetMl,omitempty" json:"waterTargetMl,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
