package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"streakkeeper/db"
	"streakkeeper/models"
	"streakkeeper/structs"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListNotifications returns the user's notification history, newest first
func ListNotifications(ctx *gin.Context) {
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

	notifications, err := db.Store.ListNotifications(dbCtx, user.ID)
	if err != nil {
		log.Printf("Failed to load notifications: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications"})
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}

	ctx.JSON(http.StatusOK, gin.H{"notifications": notifications, "total": len(notifications)})
}

// RespondNotification records the user's response to a past notification so
// future streak-loss messages can account for it.
func RespondNotification(ctx *gin.Context) {
	email := ctx.GetString("email")
	if email == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	notificationID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return
	}

	var request structs.RespondNotificationRequest
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

	if err := db.Store.SetNotificationResponse(dbCtx, user.ID, notificationID, request.Response); err != nil {
		if err == db.ErrNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		log.Printf("Failed to record notification response: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record response"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Response recorded"})
}
