package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the login page on the engine root and the JSON
// projection on the public API group.
func RegisterRoutes(root gin.IRoutes, api *gin.RouterGroup, h Handler) {
	root.GET("/login", h.LoginPage)
	api.GET("/notice", h.Notice)
}
