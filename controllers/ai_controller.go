package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"streakkeeper/db"
	"streakkeeper/models"
	"streakkeeper/services"

	"github.com/gin-gonic/gin"
)

// GetMotivation returns the motivational quote of the day
func GetMotivation(ctx *gin.Context) {
	output, err := services.GetMotivationOfTheDay(ctx.Request.Context())
	if err != nil {
		log.Printf("Motivation flow failed: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Could not generate a motivational quote"})
		return
	}
	ctx.JSON(http.StatusOK, output)
}

// GetStreakGoal suggests a personalized streak goal from the user's history
func GetStreakGoal(ctx *gin.Context) {
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

	input := services.StreakGoalInput{StudentID: user.ID.Hex()}
	for _, entry := range history {
		input.HistoricalProgress = append(input.HistoricalProgress, services.ProgressPoint{
			Date:     entry.Date,
			Progress: entry.Progress,
		})
	}

	output, err := services.GetPersonalizedStreakGoal(ctx.Request.Context(), input)
	if err != nil {
		log.Printf("Streak goal flow failed: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Could not generate a personalized goal"})
		return
	}
	ctx.JSON(http.StatusOK, output)
}

// GetStreakLossNotification crafts a streak-loss nudge and records it in the
// user's notification history.
func GetStreakLossNotification(ctx *gin.Context) {
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

	notifications, err := db.Store.ListNotifications(dbCtx, user.ID)
	if err != nil {
		log.Printf("Failed to load notifications: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications"})
		return
	}

	// When the user has never logged anything, treat the last activity as
	// three days ago so the flow still has a plausible date to reason about.
	lastActivity := time.Now().AddDate(0, 0, -3).Format("2006-01-02")
	if len(history) > 0 {
		lastActivity = history[0].Date
	}

	input := services.StreakLossInput{
		StudentID:    user.ID.Hex(),
		StreakLength: user.CurrentStreak,
		LastActivity: lastActivity,
	}
	for _, notification := range notifications {
		input.NotificationHistory = append(input.NotificationHistory, services.NotificationRecord{
			Timestamp: notification.Timestamp.Format(time.RFC3339),
			Message:   notification.Message,
			Response:  notification.Response,
		})
	}

	output, err := services.GetStreakLossNotification(ctx.Request.Context(), input)
	if err != nil {
		log.Printf("Streak loss flow failed: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Could not generate the notification"})
		return
	}

	record := models.Notification{
		UserID:    user.ID,
		Timestamp: time.Now(),
		Message:   output.NotificationMessage,
	}
	if err := db.Store.InsertNotification(dbCtx, &record); err != nil {
		// The notification was generated; history persistence failing is not fatal
		log.Printf("Failed to record notification: %v", err)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"notificationMessage": output.NotificationMessage,
		"deliveryMethod":      output.DeliveryMethod,
		"scheduledTime":       output.ScheduledTime,
		"notificationId":      record.ID.Hex(),
	})
}

// GetPerformanceTips asks for coaching tips based on the weekly comparison
func GetPerformanceTips(ctx *gin.Context) {
	history, ok := loadHistory(ctx)
	if !ok {
		return
	}

	comparison := services.CompareWeeks(history, time.Now())
	input := services.PerformanceTipsInput{
		CurrentWeekProgress:  comparison.CurrentWeekHours,
		PreviousWeekProgress: comparison.PreviousWeekHours,
	}
	for i, entry := range history {
		if i >= 5 {
			break
		}
		input.RecentActivities = append(input.RecentActivities, services.RecentActivity{
			Subject:  entry.Subject,
			Activity: entry.Activity,
		})
	}

	output, err := services.GetPerformanceTips(ctx.Request.Context(), input)
	if err != nil {
		log.Printf("Performance tips flow failed: %v", err)
		// Empty tips list keeps the client rendering a safe default
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Could not generate tips", "tips": []string{}})
		return
	}
	ctx.JSON(http.StatusOK, output)
}

// GetWeeklyReview generates the narrative weekly performance report
func GetWeeklyReview(ctx *gin.Context) {
	history, ok := loadHistory(ctx)
	if !ok {
		return
	}

	currentWeek, previousWeek := services.SplitWeeks(history, time.Now())
	output, err := services.GetWeeklyPerformanceReview(ctx.Request.Context(), services.WeeklyReviewInput{
		CurrentWeek:  currentWeek,
		PreviousWeek: previousWeek,
	})
	if err != nil {
		log.Printf("Weekly review flow failed: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Could not generate the weekly review"})
		return
	}
	ctx.JSON(http.StatusOK, output)
}
