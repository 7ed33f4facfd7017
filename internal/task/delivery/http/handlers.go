package http

import (
	"github.com/gin-gonic/gin"

	"task-portal/internal/middleware"
	"task-portal/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Forwards a title and optional description to the task store. Internal callers only.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-Internal-Key header string    true "Internal API key"
// @Param       X-Caller-ID    header string    false "Calling service"
// @Param       body           body   createReq true "Task data"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Task store error"
// @Router      /internal/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc, _ := middleware.GetScope(c)
	if err := h.uc.Create(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, createResp{})
}
