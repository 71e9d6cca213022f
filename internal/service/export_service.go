package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gatepass/internal/model"
	"gatepass/internal/repository"
)

const exportHeader = "id,name,email,mobile,designation,category,company,printed,scanned,barcode,source"

// ExportService writes the whole attendee table as CSV.
type ExportService interface {
	ExportCSV(ctx context.Context, w io.Writer) error
}

type exportService struct {
	repo repository.AttendeeRepository
}

// NewExportService builds an ExportService.
func NewExportService(repo repository.AttendeeRepository) ExportService {
	return &exportService{repo: repo}
}

// ExportCSV emits rows by ascending id with CRLF terminators. Text fields
// are always double-quoted with internal quotes doubled; printed/scanned
// are raw 0/1. The format is fixed, so the writer is hand-rolled rather
// than encoding/csv which quotes only on demand.
func (s *exportService) ExportCSV(ctx context.Context, w io.Writer) error {
	attendees, err := s.repo.List(ctx, false)
	if err != nil {
		return err
	}

	lines := make([]string, 0, len(attendees)+1)
	lines = append(lines, exportHeader)
	for _, a := range attendees {
		lines = append(lines, exportLine(a))
	}
	_, err = io.WriteString(w, strings.Join(lines, "\r\n"))
	return err
}

func exportLine(a model.Attendee) string {
	return strings.Join([]string{
		fmt.Sprintf("%d", a.ID),
		quote(a.Name),
		quote(a.Email),
		quote(a.Mobile),
		quote(a.Designation),
		quote(a.Category),
		quote(a.Company),
		flag(a.Printed),
		flag(a.Scanned),
		quote(a.Barcode),
		quote(a.Source),
	}, ",")
}

func quote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
