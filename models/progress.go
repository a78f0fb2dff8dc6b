package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgressEntry records the hours a user logged for one calendar day.
// There is at most one entry per (user, date): a same-day resubmission is
// merged into the existing document rather than inserted as a duplicate.
type ProgressEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Date      string             `bson:"date" json:"date"` // YYYY-MM-DD
	Progress  float64            `bson:"progress" json:"progress"`
	Activity  string             `bson:"activity" json:"activity"`
	Subject   string             `bson:"subject" json:"subject"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
