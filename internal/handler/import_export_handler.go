package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gatepass/internal/errors"
	"gatepass/internal/service"
)

// ImportExportHandler handles CSV upload and download.
type ImportExportHandler struct {
	importSvc service.ImportService
	exportSvc service.ExportService
}

// NewImportExportHandler creates a new import/export handler.
func NewImportExportHandler(importSvc service.ImportService, exportSvc service.ExportService) *ImportExportHandler {
	return &ImportExportHandler{importSvc: importSvc, exportSvc: exportSvc}
}

// Import godoc
// @Summary Import attendees from an uploaded CSV file
// @Tags import-export
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param csvfile formData file true "CSV file with name,email,mobile,category columns"
// @Success 200 {object} service.ImportSummary
// @Failure 400 {object} errors.ErrorResponse
// @Router /import [post]
func (h *ImportExportHandler) Import(c echo.Context) error {
	fileHeader, err := c.FormFile("csvfile")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no file uploaded")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded file")
	}
	defer f.Close()

	summary, err := h.importSvc.ImportCSV(c.Request().Context(), f)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, summary)
}

// Export godoc
// @Summary Export all attendees as CSV
// @Tags import-export
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV document"
// @Router /export [get]
func (h *ImportExportHandler) Export(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="attendees.csv"`)
	res.WriteHeader(http.StatusOK)
	return h.exportSvc.ExportCSV(c.Request().Context(), res)
}
