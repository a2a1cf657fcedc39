package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Upload stores metadata about a meal photo a user uploaded.
// The actual file resides in S3 under S3ObjectKey.
type Upload struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"user_id"`
	S3ObjectKey string             `bson:"s3ObjectKey" json:"-"` // Internal use only
	FileName    string             `bson:"fileName" json:"file_name"`
	ContentType string             `bson:"contentType" json:"content_type"`
	UploadedAt  time.Time          `bson:"uploadedAt" json:"uploaded_at"`
}
