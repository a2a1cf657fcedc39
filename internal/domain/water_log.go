package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WaterLog records one glass/bottle of water. Daily intake is the sum of a
// user's rows for a date, compared against User.WaterTargetMl.
type WaterLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"user_id"`
	LogDate   string             `bson:"logDate" json:"log_date"` // PlanDateLayout
	AmountMl  int                `bson:"amountMl" json:"amount_ml"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
}
