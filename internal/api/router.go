package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter registers every route on a gin engine. metrics may be nil.
func NewRouter(h *Handler, metrics http.Handler, allowedOrigins []string) *gin.Engine {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:8081"}
	}
	r := gin.Default()

	// Configure CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", h.Health)
	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics))
	}

	r.POST("/plan", h.Plan)
	r.GET("/stores", h.FindStores)
	r.POST("/context", h.Context)

	sessions := r.Group("/sessions")
	sessions.POST("", h.CreateSession)
	sessions.GET("/:id", h.GetSession)
	sessions.DELETE("/:id", h.DeleteSession)
	sessions.PATCH("/:id/preferences", h.UpdatePreferences)
	sessions.POST("/:id/reset", h.ResetSession)
	sessions.POST("/:id/plan", h.GeneratePlan)
	sessions.GET("/:id/stores", h.SessionStores)
	sessions.POST("/:id/refresh", h.Refresh)

	return r
}
