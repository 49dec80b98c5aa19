package handlers

import (
	"strconv"

	"github.com/nguyentuanthien2384/unishare-be-main/utils"

	"github.com/gin-gonic/gin"
)

func GetPlatformStats(c *gin.Context) {
	stats, err := getServices().Stats.GetPlatformStats(c.Request.Context())
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, stats)
}

func GetUploadsOverTime(c *gin.Context) {
	days, _ := strconv.Atoi(c.Query("days"))
	points, err := getServices().Stats.GetUploadsOverTime(c.Request.Context(), days)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, points)
}
