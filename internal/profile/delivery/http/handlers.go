package http

import (
	"github.com/gin-gonic/gin"

	"task-portal/internal/middleware"
	"task-portal/pkg/response"
)

// Detail godoc
// @Summary     Get a user profile
// @Tags        Profiles
// @Produce     json
// @Param       X-Internal-Key header string true "Internal API key"
// @Param       id             path   string true "Profile ID"
// @Success     200 {object} response.Resp{data=profileResp}
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Unknown role"
// @Router      /internal/v1/profiles/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	p, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		if mapped := h.mapError(err); mapped != nil {
			response.Error(c, mapped, nil)
			return
		}
		h.l.Errorf(ctx, "profile.delivery.http.Detail: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, toProfileResp(p))
}
