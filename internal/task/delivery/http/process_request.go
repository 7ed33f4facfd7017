package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"task-portal/internal/task"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", task.ErrInvalidPayload, err)
	}
	return req, req.validate()
}
