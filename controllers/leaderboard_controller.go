package controllers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"streakkeeper/db"
	"streakkeeper/utils"

	"github.com/gin-gonic/gin"
)

// Learner is one ranked row of the XP leaderboard
type Learner struct {
	ID            string  `json:"id"`
	Rank          int     `json:"rank"`
	Name          string  `json:"name"`
	Level         int     `json:"level"`
	XP            float64 `json:"xp"`
	CurrentStreak int     `json:"currentStreak"`
	AvatarURL     string  `json:"avatarUrl"`
	CurrentUser   bool    `json:"currentUser"`
}

// GetLeaderboard returns the top users ranked by XP
func GetLeaderboard(ctx *gin.Context) {
	currentEmail := ctx.GetString("email")
	if currentEmail == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	limit := 50
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	users, err := db.Store.TopProfilesByXP(dbCtx, limit)
	if err != nil {
		log.Printf("Failed to fetch leaderboard: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard data"})
		return
	}

	learners := make([]Learner, 0, len(users))
	for i, user := range users {
		name := user.DisplayName
		if name == "" {
			name = utils.ExtractNameFromEmail(user.Email)
		}

		avatarURL := user.AvatarURL
		if avatarURL == "" {
			avatarURL = "https://api.dicebear.com/9.x/adventurer/svg?seed=" + name
		}

		learners = append(learners, Learner{
			ID:            user.ID.Hex(),
			Rank:          i + 1,
			Name:          name,
			Level:         user.Level,
			XP:            user.XP,
			CurrentStreak: user.CurrentStreak,
			AvatarURL:     avatarURL,
			CurrentUser:   user.Email == currentEmail,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"learners": learners, "total": len(learners)})
}
