package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"streakkeeper/db"
	"streakkeeper/models"
	"streakkeeper/services"
	"streakkeeper/structs"
	"streakkeeper/websocket"

	"github.com/gin-gonic/gin"
)

// SubmitProgress logs a progress entry for today and applies the derived
// streak/XP/level/badge updates. The entry is written before the profile, so
// a crash between the two writes never records a streak without its entry.
func SubmitProgress(ctx *gin.Context) {
	email := ctx.GetString("email")
	if email == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var request structs.SubmitProgressRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := fetchOrCreateProfile(dbCtx, email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	history, err := db.Store.ListProgress(dbCtx, user.ID)
	if err != nil {
		log.Printf("Failed to load progress history: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load progress history"})
		return
	}

	result := services.ApplyProgress(*user, history, services.ProgressSubmission{
		Progress: request.Progress,
		Activity: request.Activity,
		Subject:  request.Subject,
	}, time.Now())

	entry := result.Entry
	if err := db.Store.UpsertProgressEntry(dbCtx, &entry); err != nil {
		log.Printf("Failed to persist progress entry: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save progress"})
		return
	}

	updated := result.Profile
	if err := db.Store.UpsertProfile(dbCtx, &updated); err != nil {
		log.Printf("Failed to persist profile update: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save progress"})
		return
	}

	broadcastProgressEvents(updated, result)

	ctx.JSON(http.StatusOK, gin.H{
		"message":      "Progress logged",
		"profile":      updated,
		"entry":        entry,
		"merged":       result.Merged,
		"levelsGained": result.LevelsGained,
		"newBadges":    result.NewBadges,
	})
}

// ListProgress returns the user's full progress history, newest first
func ListProgress(ctx *gin.Context) {
	email := ctx.GetString("email")
	if email == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := fetchOrCreateProfile(dbCtx, email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	history, err := db.Store.ListProgress(dbCtx, user.ID)
	if err != nil {
		log.Printf("Failed to load progress history: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load progress history"})
		return
	}
	if history == nil {
		history = []models.ProgressEntry{}
	}

	ctx.JSON(http.StatusOK, gin.H{"progress": history, "total": len(history)})
}

// broadcastProgressEvents emits one event per badge earned and a level-up
// event when any levels were gained.
func broadcastProgressEvents(user models.User, result services.ProgressResult) {
	now := time.Now()

	for _, badge := range result.NewBadges {
		websocket.BroadcastGamificationEvent(models.GamificationEvent{
			Type:      "badge_awarded",
			UserID:    user.ID.Hex(),
			BadgeID:   badge.ID,
			BadgeName: badge.Name,
			Timestamp: now,
		})
	}

	if result.LevelsGained > 0 {
		websocket.BroadcastGamificationEvent(models.GamificationEvent{
			Type:         "level_up",
			UserID:       user.ID.Hex(),
			Level:        user.Level,
			LevelsGained: result.LevelsGained,
			XP:           user.XP,
			Timestamp:    now,
		})
	}

	websocket.BroadcastGamificationEvent(models.GamificationEvent{
		Type:          "streak_updated",
		UserID:        user.ID.Hex(),
		CurrentStreak: user.CurrentStreak,
		XP:            user.XP,
		Timestamp:     now,
	})
}
