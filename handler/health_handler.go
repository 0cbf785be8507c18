package handler

import (
	"context"
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports process and database health for probes
func HealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "ok"
	if err := utils.PingMongo(ctx); err != nil {
		dbStatus = "unreachable"
	}

	payload := gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"cpu_usage": utils.GetCPUUsage(),
		"timestamp": time.Now().UTC(),
	}

	if dbStatus != "ok" {
		c.JSON(503, payload)
		return
	}

	utils.Success(c, payload)
}
