package routes

import (
	"streakkeeper/controllers"

	"github.com/gin-gonic/gin"
)

func SubmitProgressRouteHandler(ctx *gin.Context) {
	controllers.SubmitProgress(ctx)
}

func ListProgressRouteHandler(ctx *gin.Context) {
	controllers.ListProgress(ctx)
}

func GetDailyStatsRouteHandler(ctx *gin.Context) {
	controllers.GetDailyStats(ctx)
}

func GetSubjectStatsRouteHandler(ctx *gin.Context) {
	controllers.GetSubjectStats(ctx)
}

func GetWeeklyStatsRouteHandler(ctx *gin.Context) {
	controllers.GetWeeklyStats(ctx)
}
