package routes

import (
	"streakkeeper/controllers"

	"github.com/gin-gonic/gin"
)

func ListNotificationsRouteHandler(ctx *gin.Context) {
	controllers.ListNotifications(ctx)
}

func RespondNotificationRouteHandler(ctx *gin.Context) {
	controllers.RespondNotification(ctx)
}
