package v1

import (
	"hostpanel/api/v1/auth"
	"hostpanel/api/v1/components"
	"hostpanel/api/v1/middleware"
	"hostpanel/internal/catalog"
	"hostpanel/internal/config"
	"hostpanel/internal/httpx"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter sets up the API v1 routes
func SetupRouter(r *gin.Engine, db *gorm.DB, cfg *config.Config, svc *catalog.Service) {
	v1 := r.Group("/api/v1")
	{
		v1.GET("/ping", pingHandler)

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/login", auth.LoginHandler(db, cfg))
		}

		protected := v1.Group("")
		protected.Use(middleware.AuthRequired())
		{
			componentsHandler := components.NewHandler(db, svc)
			componentsGroup := protected.Group("/components")
			{
				componentsGroup.GET("", componentsHandler.List)
				componentsGroup.POST("", componentsHandler.Sync)
				componentsGroup.PATCH("", componentsHandler.Update)
				componentsGroup.DELETE("", componentsHandler.Reset)
			}
		}
	}
}

// pingHandler answers liveness probes
func pingHandler(c *gin.Context) {
	httpx.OK(c, gin.H{
		"pong": true,
	})
}
