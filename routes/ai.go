package routes

import (
	"streakkeeper/controllers"

	"github.com/gin-gonic/gin"
)

func GetMotivationRouteHandler(ctx *gin.Context) {
	controllers.GetMotivation(ctx)
}

func GetStreakGoalRouteHandler(ctx *gin.Context) {
	controllers.GetStreakGoal(ctx)
}

func GetStreakLossNotificationRouteHandler(ctx *gin.Context) {
	controllers.GetStreakLossNotification(ctx)
}

func GetPerformanceTipsRouteHandler(ctx *gin.Context) {
	controllers.GetPerformanceTips(ctx)
}

func GetWeeklyReviewRouteHandler(ctx *gin.Context) {
	controllers.GetWeeklyReview(ctx)
}
