package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gatepass/internal/errors"
	"gatepass/internal/model"
	"gatepass/internal/service"
)

// ScanHandler handles door check-in verification.
type ScanHandler struct {
	svc service.AttendeeService
}

// NewScanHandler creates a new scan handler.
func NewScanHandler(svc service.AttendeeService) *ScanHandler {
	return &ScanHandler{svc: svc}
}

// VerifyScanRequest carries the scanned barcode.
type VerifyScanRequest struct {
	Barcode string `json:"barcode" validate:"required"`
}

// VerifyScanResponse confirms a successful check-in.
type VerifyScanResponse struct {
	Message  string         `json:"message"`
	Attendee model.Attendee `json:"attendee"`
}

// VerifyScan godoc
// @Summary Verify a scanned badge (one-time check-in)
// @Tags scan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param scan body VerifyScanRequest true "Scanned barcode"
// @Success 200 {object} VerifyScanResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /scan/verify [post]
func (h *ScanHandler) VerifyScan(c echo.Context) error {
	var req VerifyScanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	attendee, err := h.svc.VerifyScan(c.Request().Context(), req.Barcode)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, VerifyScanResponse{
		Message:  attendee.Name + " verified",
		Attendee: *attendee,
	})
}
