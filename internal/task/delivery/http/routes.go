package http

import (
	"github.com/gin-gonic/gin"

	"task-portal/internal/middleware"
)

// RegisterRoutes maps the task routes. Every route sits behind InternalAuth.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.InternalAuth())
	{
		tasks.POST("", h.Create)
	}
}
