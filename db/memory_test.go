package db

import (
	"context"
	"testing"

	"streakkeeper/models"
)

func TestMemoryRepositoryProfileRoundTrip(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if _, err := repo.GetProfile(ctx, "nobody@example.com"); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound for a missing profile, got %v", err)
	}

	user := &models.User{Email: "learner@example.com", Level: 1}
	if err := repo.UpsertProfile(ctx, user); err != nil {
		t.Fatalf("Failed to upsert profile: %v", err)
	}
	if user.ID.IsZero() {
		t.Fatal("Upsert should assign an ID to a new profile")
	}

	fetched, err := repo.GetProfile(ctx, "learner@example.com")
	if err != nil {
		t.Fatalf("Failed to fetch profile: %v", err)
	}
	if fetched.ID != user.ID {
		t.Errorf("Fetched a different profile: %v vs %v", fetched.ID, user.ID)
	}

	fetched.CurrentStreak = 4
	if err := repo.UpsertProfile(ctx, fetched); err != nil {
		t.Fatalf("Failed to update profile: %v", err)
	}
	again, _ := repo.GetProfile(ctx, "learner@example.com")
	if again.CurrentStreak != 4 {
		t.Errorf("Update not persisted, streak = %d", again.CurrentStreak)
	}
}

func TestMemoryRepositoryProgressUpsertByDate(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	user := &models.User{Email: "learner@example.com", Level: 1}
	if err := repo.UpsertProfile(ctx, user); err != nil {
		t.Fatalf("Failed to upsert profile: %v", err)
	}

	first := &models.ProgressEntry{UserID: user.ID, Date: "2025-03-11", Progress: 2, Subject: "Math"}
	if err := repo.UpsertProgressEntry(ctx, first); err != nil {
		t.Fatalf("Failed to insert entry: %v", err)
	}
	second := &models.ProgressEntry{UserID: user.ID, Date: "2025-03-12", Progress: 1, Subject: "Math"}
	if err := repo.UpsertProgressEntry(ctx, second); err != nil {
		t.Fatalf("Failed to insert entry: %v", err)
	}

	// Rewriting the same date replaces, not duplicates
	replacement := &models.ProgressEntry{UserID: user.ID, Date: "2025-03-12", Progress: 3.5, Subject: "Physics"}
	if err := repo.UpsertProgressEntry(ctx, replacement); err != nil {
		t.Fatalf("Failed to upsert entry: %v", err)
	}

	entries, err := repo.ListProgress(ctx, user.ID)
	if err != nil {
		t.Fatalf("Failed to list progress: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Date != "2025-03-12" {
		t.Errorf("Entries should be newest first, got %s", entries[0].Date)
	}
	if entries[0].Progress != 3.5 || entries[0].Subject != "Physics" {
		t.Errorf("Same-day upsert did not replace the entry: %+v", entries[0])
	}
}

func TestMemoryRepositoryNotifications(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	user := &models.User{Email: "learner@example.com", Level: 1}
	if err := repo.UpsertProfile(ctx, user); err != nil {
		t.Fatalf("Failed to upsert profile: %v", err)
	}

	notification := &models.Notification{UserID: user.ID, Message: "Keep your streak alive!"}
	if err := repo.InsertNotification(ctx, notification); err != nil {
		t.Fatalf("Failed to insert notification: %v", err)
	}

	if err := repo.SetNotificationResponse(ctx, user.ID, notification.ID, "on it"); err != nil {
		t.Fatalf("Failed to record response: %v", err)
	}

	notifications, err := repo.ListNotifications(ctx, user.ID)
	if err != nil {
		t.Fatalf("Failed to list notifications: %v", err)
	}
	if len(notifications) != 1 || notifications[0].Response != "on it" {
		t.Errorf("Unexpected notifications: %+v", notifications)
	}
}

func TestMemoryRepositoryLeaderboard(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for i, xp := range []float64{150, 900, 400} {
		user := &models.User{Email: string(rune('a'+i)) + "@example.com", Level: 1, XP: xp}
		if err := repo.UpsertProfile(ctx, user); err != nil {
			t.Fatalf("Failed to upsert profile: %v", err)
		}
	}

	top, err := repo.TopProfilesByXP(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to fetch leaderboard: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("Expected 2 profiles, got %d", len(top))
	}
	if top[0].XP != 900 || top[1].XP != 400 {
		t.Errorf("Leaderboard not sorted by XP descending: %v, %v", top[0].XP, top[1].XP)
	}

	rank, err := repo.RankByXP(ctx, 400)
	if err != nil {
		t.Fatalf("Failed to compute rank: %v", err)
	}
	if rank != 2 {
		t.Errorf("Expected rank 2 for 400 XP, got %d", rank)
	}
	rank, _ = repo.RankByXP(ctx, 900)
	if rank != 1 {
		t.Errorf("Expected rank 1 for the top XP, got %d", rank)
	}
}
