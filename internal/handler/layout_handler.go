package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gatepass/internal/errors"
	"gatepass/internal/layout"
	"gatepass/internal/service"
)

// LayoutHandler serves the badge-layout document to the print designer.
type LayoutHandler struct {
	svc service.LayoutService
}

// NewLayoutHandler creates a new layout handler.
func NewLayoutHandler(svc service.LayoutService) *LayoutHandler {
	return &LayoutHandler{svc: svc}
}

// Get godoc
// @Summary Fetch the badge layout (built-in defaults if never saved)
// @Tags layout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} layout.Document
// @Router /layout [get]
func (h *LayoutHandler) Get(c echo.Context) error {
	doc, err := h.svc.Load(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if doc == nil {
		doc = layout.Default()
	}
	return c.JSON(http.StatusOK, doc)
}

// Save godoc
// @Summary Replace the badge layout wholesale
// @Tags layout
// @Accept json
// @Security BearerAuth
// @Param layout body layout.Document true "Layout document"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Router /layout [put]
func (h *LayoutHandler) Save(c echo.Context) error {
	var doc layout.Document
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if doc.Size.Width <= 0 || doc.Size.Height <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "badge size must be positive")
	}
	if err := h.svc.Save(c.Request().Context(), &doc); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
