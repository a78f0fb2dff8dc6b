package controllers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"streakkeeper/db"
	"streakkeeper/models"
	"streakkeeper/services"

	"github.com/gin-gonic/gin"
)

func loadHistory(ctx *gin.Context) ([]models.ProgressEntry, bool) {
	email := ctx.GetString("email")
	if email == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := fetchOrCreateProfile(dbCtx, email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return nil, false
	}

	history, err := db.Store.ListProgress(dbCtx, user.ID)
	if err != nil {
		log.Printf("Failed to load progress history: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load progress history"})
		return nil, false
	}
	return history, true
}

// GetDailyStats buckets progress per day over a 7 or 30 day window
func GetDailyStats(ctx *gin.Context) {
	window := 7
	if windowStr := ctx.Query("window"); windowStr != "" {
		parsed, err := strconv.Atoi(windowStr)
		if err != nil || (parsed != 7 && parsed != 30) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "window must be 7 or 30"})
			return
		}
		window = parsed
	}

	history, ok := loadHistory(ctx)
	if !ok {
		return
	}

	buckets := services.DailyBuckets(history, time.Now(), window)
	ctx.JSON(http.StatusOK, gin.H{"window": window, "days": buckets})
}

// GetSubjectStats sums logged hours per subject for the pie chart
func GetSubjectStats(ctx *gin.Context) {
	history, ok := loadHistory(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"subjects": services.SubjectTotals(history)})
}

// GetWeeklyStats compares the current ISO week against the previous one
func GetWeeklyStats(ctx *gin.Context) {
	history, ok := loadHistory(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, services.CompareWeeks(history, time.Now()))
}
