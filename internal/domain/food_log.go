package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealType buckets food logs into the meals shown on the daily timeline.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// FoodLog records one eaten food item. Bilingual names follow the exercise
// library convention; PhotoObjectKey links an optional meal photo in S3.
type FoodLog struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"userId" json:"user_id"`
	LogDate        string             `bson:"logDate" json:"log_date"` // PlanDateLayout
	NameEn         string             `bson:"name" json:"name"`
	NameBn         string             `bson:"nameBn,omitempty" json:"name_bn,omitempty"`
	Meal           MealType           `bson:"meal" json:"meal"`
	Calories       int                `bson:"calories" json:"calories"`
	PhotoObjectKey string             `bson:"photoObjectKey,omitempty" json:"-"`
	CreatedAt      time.Time          `bson:"createdAt" json:"created_at"`
}
