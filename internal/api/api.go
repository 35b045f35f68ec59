package api

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, kitchenHandler *KitchenHandler, healthHandler *HealthHandler, cookLimit gin.HandlerFunc) {
	// Health check endpoint (no session required)
	router.GET("/health", healthHandler.HealthCheck)

	v1 := router.Group("/api/v1")
	kitchenHandler.RegisterRoutes(v1, cookLimit)
}
