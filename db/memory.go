package db

import (
	"context"
	"sort"
	"sync"
	"time"

	"streakkeeper/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository is an in-memory Repository used by unit tests and local
// development without a MongoDB instance.
type MemoryRepository struct {
	mu            sync.RWMutex
	users         map[primitive.ObjectID]models.User
	progress      map[primitive.ObjectID][]models.ProgressEntry
	notifications map[primitive.ObjectID][]models.Notification
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:         make(map[primitive.ObjectID]models.User),
		progress:      make(map[primitive.ObjectID][]models.ProgressEntry),
		notifications: make(map[primitive.ObjectID][]models.Notification),
	}
}

func (r *MemoryRepository) GetProfile(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) UpsertProfile(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	user.UpdatedAt = now
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
		user.CreatedAt = now
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryRepository) ListProgress(ctx context.Context, userID primitive.ObjectID) ([]models.ProgressEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := append([]models.ProgressEntry(nil), r.progress[userID]...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date > entries[j].Date })
	return entries, nil
}

func (r *MemoryRepository) UpsertProgressEntry(ctx context.Context, entry *models.ProgressEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	entry.UpdatedAt = now
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
		entry.CreatedAt = now
	}
	entries := r.progress[entry.UserID]
	for i, existing := range entries {
		if existing.Date == entry.Date {
			entries[i] = *entry
			return nil
		}
	}
	r.progress[entry.UserID] = append(entries, *entry)
	return nil
}

func (r *MemoryRepository) ListNotifications(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	notifications := append([]models.Notification(nil), r.notifications[userID]...)
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].Timestamp.After(notifications[j].Timestamp)
	})
	return notifications, nil
}

func (r *MemoryRepository) InsertNotification(ctx context.Context, notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if notification.ID.IsZero() {
		notification.ID = primitive.NewObjectID()
	}
	if notification.Timestamp.IsZero() {
		notification.Timestamp = time.Now()
	}
	r.notifications[notification.UserID] = append(r.notifications[notification.UserID], *notification)
	return nil
}

func (r *MemoryRepository) SetNotificationResponse(ctx context.Context, userID, notificationID primitive.ObjectID, response string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	notifications := r.notifications[userID]
	for i, notification := range notifications {
		if notification.ID == notificationID {
			notifications[i].Response = response
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryRepository) TopProfilesByXP(ctx context.Context, limit int) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].XP > users[j].XP })
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (r *MemoryRepository) RankByXP(ctx context.Context, xp float64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rank := 1
	for _, user := range r.users {
		if user.XP > xp {
			rank++
		}
	}
	return rank, nil
}
