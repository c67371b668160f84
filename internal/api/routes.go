package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {

	// --- Generation ---
	projectGroup := router.Group("/project")
	{
		projectGroup.POST("/generate", h.GenerateProject) // Full contextual pipeline
	}
	websiteGroup := router.Group("/website")
	{
		websiteGroup.POST("/generate", h.GenerateWebsite) // Simpler single-pass path
	}

	// --- Conversation & assets ---
	router.POST("/chat/respond", h.ChatRespond)
	router.POST("/image/generate", h.GenerateImage)
	router.POST("/upload", h.UploadFile)

	// --- Operational ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
