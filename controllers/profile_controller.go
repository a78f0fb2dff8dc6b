package controllers

import (
	"context"
	"net/http"
	"time"

	"streakkeeper/db"
	"streakkeeper/models"
	"streakkeeper/services"
	"streakkeeper/structs"
	"streakkeeper/utils"

	"github.com/gin-gonic/gin"
)

// fetchOrCreateProfile loads the user's profile, creating a zeroed one on
// first authenticated access.
func fetchOrCreateProfile(ctx context.Context, email string) (*models.User, error) {
	user, err := db.Store.GetProfile(ctx, email)
	if err == nil {
		return user, nil
	}
	if err != db.ErrNotFound {
		return nil, err
	}

	user = &models.User{
		Email:       email,
		DisplayName: utils.ExtractNameFromEmail(email),
		Level:       1,
		Badges:      []string{},
	}
	if err := db.Store.UpsertProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetProfile retrieves and returns the user's profile with badge metadata
func GetProfile(ctx *gin.Context) {
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

	// Set avatar URL with DiceBear fallback
	profileAvatarURL := user.AvatarURL
	if profileAvatarURL == "" {
		profileName := user.DisplayName
		if profileName == "" {
			profileName = utils.ExtractNameFromEmail(email)
		}
		profileAvatarURL = "https://api.dicebear.com/9.x/adventurer/svg?seed=" + profileName
	}

	earnedBadges := make([]services.BadgeDefinition, 0, len(user.Badges))
	for _, id := range user.Badges {
		if badge, ok := services.BadgeByID(id); ok {
			earnedBadges = append(earnedBadges, badge)
		}
	}

	rank, err := db.Store.RankByXP(dbCtx, user.XP)
	if err != nil {
		rank = 0
	}

	ctx.JSON(http.StatusOK, gin.H{
		"profile":         user,
		"avatarUrl":       profileAvatarURL,
		"badges":          earnedBadges,
		"xpForNextLevel":  services.XPForLevel(user.Level + 1),
		"leaderboardRank": rank,
	})
}

// UpdateProfile updates the user's display metadata
func UpdateProfile(ctx *gin.Context) {
	email := ctx.GetString("email")
	if email == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var request structs.UpdateProfileRequest
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

	if request.DisplayName != "" {
		user.DisplayName = request.DisplayName
	}
	if request.AvatarURL != "" {
		user.AvatarURL = request.AvatarURL
	}

	if err := db.Store.UpsertProfile(dbCtx, user); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Profile updated", "profile": user})
}
