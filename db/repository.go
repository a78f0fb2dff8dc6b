package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"streakkeeper/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("document not found")

// Repository abstracts the document store holding profiles, progress entries
// and notification history. Controllers depend only on this interface so the
// gamification path can be exercised against an in-memory implementation.
type Repository interface {
	GetProfile(ctx context.Context, email string) (*models.User, error)
	UpsertProfile(ctx context.Context, user *models.User) error
	ListProgress(ctx context.Context, userID primitive.ObjectID) ([]models.ProgressEntry, error)
	UpsertProgressEntry(ctx context.Context, entry *models.ProgressEntry) error
	ListNotifications(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error)
	InsertNotification(ctx context.Context, notification *models.Notification) error
	SetNotificationResponse(ctx context.Context, userID, notificationID primitive.ObjectID, response string) error
	TopProfilesByXP(ctx context.Context, limit int) ([]models.User, error)
	RankByXP(ctx context.Context, xp float64) (int, error)
}

type mongoRepository struct {
	users         *mongo.Collection
	progress      *mongo.Collection
	notifications *mongo.Collection
}

// NewMongoRepository builds the Mongo-backed repository over the given database
func NewMongoRepository(database *mongo.Database) Repository {
	return &mongoRepository{
		users:         database.Collection("users"),
		progress:      database.Collection("progress"),
		notifications: database.Collection("notifications"),
	}
}

func (r *mongoRepository) GetProfile(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &user, nil
}

func (r *mongoRepository) UpsertProfile(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.UpdatedAt = now
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
		user.CreatedAt = now
	}

	filter := bson.M{"_id": user.ID}
	_, err := r.users.ReplaceOne(ctx, filter, user, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// ListProgress returns the user's progress entries sorted by date descending
func (r *mongoRepository) ListProgress(ctx context.Context, userID primitive.ObjectID) ([]models.ProgressEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.progress.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch progress history: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.ProgressEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode progress history: %w", err)
	}
	return entries, nil
}

// UpsertProgressEntry writes the entry keyed on (userId, date), so a same-day
// resubmission replaces the merged document instead of duplicating it.
func (r *mongoRepository) UpsertProgressEntry(ctx context.Context, entry *models.ProgressEntry) error {
	now := time.Now()
	entry.UpdatedAt = now
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
		entry.CreatedAt = now
	}

	filter := bson.M{"userId": entry.UserID, "date": entry.Date}
	_, err := r.progress.ReplaceOne(ctx, filter, entry, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert progress entry: %w", err)
	}
	return nil
}

func (r *mongoRepository) ListNotifications(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.notifications.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}

func (r *mongoRepository) InsertNotification(ctx context.Context, notification *models.Notification) error {
	if notification.ID.IsZero() {
		notification.ID = primitive.NewObjectID()
	}
	if notification.Timestamp.IsZero() {
		notification.Timestamp = time.Now()
	}
	_, err := r.notifications.InsertOne(ctx, notification)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

func (r *mongoRepository) SetNotificationResponse(ctx context.Context, userID, notificationID primitive.ObjectID, response string) error {
	filter := bson.M{"_id": notificationID, "userId": userID}
	update := bson.M{"$set": bson.M{"response": response}}
	result, err := r.notifications.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to record notification response: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepository) TopProfilesByXP(ctx context.Context, limit int) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "xp", Value: -1}}).SetLimit(int64(limit))
	cursor, err := r.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leaderboard: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode leaderboard: %w", err)
	}
	return users, nil
}

// RankByXP returns the 1-based leaderboard position for the given XP total
func (r *mongoRepository) RankByXP(ctx context.Context, xp float64) (int, error) {
	count, err := r.users.CountDocuments(ctx, bson.M{"xp": bson.M{"$gt": xp}})
	if err != nil {
		return 0, fmt.Errorf("failed to compute rank: %w", err)
	}
	return int(count) + 1, nil
}
