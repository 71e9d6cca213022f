package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gatepass/internal/errors"
	"gatepass/internal/service"
)

// BadgeHandler serves badge render data to the print view.
type BadgeHandler struct {
	svc service.BadgeService
}

// NewBadgeHandler creates a new badge handler.
func NewBadgeHandler(svc service.BadgeService) *BadgeHandler {
	return &BadgeHandler{svc: svc}
}

// RenderData godoc
// @Summary Fetch badge render data and mark the badge printed
// @Tags badges
// @Produce json
// @Param id path int true "Attendee ID"
// @Success 200 {object} service.BadgeRenderData
// @Failure 404 {object} errors.ErrorResponse
// @Router /badge/{id} [get]
func (h *BadgeHandler) RenderData(c echo.Context) error {
	id, err := attendeeID(c)
	if err != nil {
		return err
	}
	data, err := h.svc.RenderData(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, data)
}
