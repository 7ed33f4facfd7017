package http

import (
	"github.com/gin-gonic/gin"

	"task-portal/internal/profile"
	"task-portal/pkg/log"
)

// Handler is the public interface for the profile HTTP delivery layer.
type Handler interface {
	Detail(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc profile.UseCase
}

// New creates a new HTTP handler for the profile domain.
func New(l log.Logger, uc profile.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
