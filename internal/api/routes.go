package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {

	// --- Theme Generation ---
	themeGroup := router.Group("/api/theme")
	{
		themeGroup.POST("/generate", h.GenerateTheme)   // Generate a theme from a chat message
		themeGroup.GET("/components", h.ListComponents) // List the catalog visible to a plan
	}

	// --- Simple Health Check ---
	// Basic health endpoint to check if the service is running
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
