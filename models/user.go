package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User defines a user profile entity. Streak, XP, level and badge fields are
// only ever mutated through the gamification service.
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email            string             `bson:"email" json:"email"`
	DisplayName      string             `bson:"displayName" json:"displayName"`
	AvatarURL        string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	CurrentStreak    int                `bson:"currentStreak" json:"currentStreak"`
	LongestStreak    int                `bson:"longestStreak" json:"longestStreak"`
	Level            int                `bson:"level" json:"level"`
	XP               float64            `bson:"xp" json:"xp"`
	Badges           []string           `bson:"badges" json:"badges"`
	LastActivityDate *time.Time         `bson:"lastActivityDate,omitempty" json:"lastActivityDate,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
