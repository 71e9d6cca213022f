package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"gatepass/internal/errors"
	"gatepass/internal/model"
	"gatepass/internal/service"
)

// AttendeeHandler handles registration and attendee admin endpoints.
type AttendeeHandler struct {
	svc service.AttendeeService
}

// NewAttendeeHandler creates a new attendee handler.
func NewAttendeeHandler(svc service.AttendeeService) *AttendeeHandler {
	return &AttendeeHandler{svc: svc}
}

// AttendeeRequest is the registration/edit payload.
type AttendeeRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Mobile      string `json:"mobile" validate:"required"`
	Designation string `json:"designation"`
	Category    string `json:"category" validate:"required"`
	Company     string `json:"company"`
}

// Register godoc
// @Summary Register an attendee
// @Tags attendees
// @Accept json
// @Produce json
// @Param attendee body AttendeeRequest true "Registration payload"
// @Success 201 {object} model.Attendee
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /register [post]
func (h *AttendeeHandler) Register(c echo.Context) error {
	var req AttendeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	attendee, err := h.svc.Register(c.Request().Context(), service.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Mobile:      req.Mobile,
		Designation: req.Designation,
		Category:    req.Category,
		Company:     req.Company,
	}, model.SourceManual)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, attendee)
}

// List godoc
// @Summary List attendees, newest first
// @Tags attendees
// @Produce json
// @Success 200 {array} model.Attendee
// @Router /attendees [get]
func (h *AttendeeHandler) List(c echo.Context) error {
	attendees, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, attendees)
}

// Update godoc
// @Summary Edit an attendee's editable fields
// @Tags attendees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendee ID"
// @Param attendee body AttendeeRequest true "Edit payload"
// @Success 200 {object} model.Attendee
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /attendees/{id} [put]
func (h *AttendeeHandler) Update(c echo.Context) error {
	id, err := attendeeID(c)
	if err != nil {
		return err
	}
	var req AttendeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	attendee, err := h.svc.Update(c.Request().Context(), id, model.EditableFields{
		Name:        req.Name,
		Email:       req.Email,
		Mobile:      req.Mobile,
		Designation: req.Designation,
		Category:    req.Category,
		Company:     req.Company,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, attendee)
}

// Delete godoc
// @Summary Delete an attendee
// @Tags attendees
// @Security BearerAuth
// @Param id path int true "Attendee ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /attendees/{id} [delete]
func (h *AttendeeHandler) Delete(c echo.Context) error {
	id, err := attendeeID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkScanned godoc
// @Summary Mark an attendee scanned from the admin table
// @Tags attendees
// @Security BearerAuth
// @Param id path int true "Attendee ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /attendees/{id}/scan [post]
func (h *AttendeeHandler) MarkScanned(c echo.Context) error {
	id, err := attendeeID(c)
	if err != nil {
		return err
	}
	if err := h.svc.MarkScanned(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

func attendeeID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
