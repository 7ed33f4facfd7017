package http

import (
	"github.com/gin-gonic/gin"

	"task-portal/internal/middleware"
)

// RegisterRoutes mounts the profile routes behind the internal boundary.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	profiles := rg.Group("/profiles", mw.InternalAuth())
	profiles.GET("/:id", h.Detail)
}
