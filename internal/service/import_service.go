package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	apperrors "gatepass/internal/errors"
	"gatepass/internal/model"
	"gatepass/internal/notify"
	"gatepass/internal/repository"
)

// ImportSummary reports the outcome of a bulk import.
type ImportSummary struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// ImportService consumes an uploaded CSV stream and feeds rows through
// attendee creation one at a time. Import is not transactional: rows
// committed before a failure stay committed.
type ImportService interface {
	ImportCSV(ctx context.Context, r io.Reader) (ImportSummary, error)
}

type importService struct {
	repo     repository.AttendeeRepository
	notifier notify.Broadcaster
}

// NewImportService builds an ImportService.
func NewImportService(repo repository.AttendeeRepository, notifier notify.Broadcaster) ImportService {
	return &importService{repo: repo, notifier: notifier}
}

// ImportCSV parses the stream and creates one attendee per usable row.
// Rows missing a required field and rows duplicating an existing email or
// mobile are counted skipped, not reported as errors. One change signal
// fires at the end when anything was inserted.
func (s *importService) ImportCSV(ctx context.Context, r io.Reader) (ImportSummary, error) {
	var summary ImportSummary

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return summary, fmt.Errorf("%w: %v", apperrors.ErrImportParse, err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"name", "email", "mobile", "category"} {
		if _, ok := cols[required]; !ok {
			return summary, fmt.Errorf("%w: missing required column %q", apperrors.ErrImportParse, required)
		}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// malformed stream aborts; rows already inserted are kept
			if summary.Inserted > 0 {
				s.notifier.AttendeesChanged()
			}
			return summary, fmt.Errorf("%w: %v", apperrors.ErrImportParse, err)
		}

		row := RegisterInput{
			Name:        field(record, cols, "name"),
			Email:       field(record, cols, "email"),
			Mobile:      field(record, cols, "mobile"),
			Designation: field(record, cols, "designation"),
			Category:    field(record, cols, "category"),
			Company:     field(record, cols, "company"),
		}
		if row.Name == "" || row.Email == "" || row.Mobile == "" || row.Category == "" {
			summary.Skipped++
			continue
		}

		attendee := &model.Attendee{
			Name:        row.Name,
			Email:       row.Email,
			Mobile:      row.Mobile,
			Designation: row.Designation,
			Category:    row.Category,
			Company:     row.Company,
			Source:      model.SourceCSV,
		}
		switch err := s.repo.CreateWithBarcode(ctx, attendee); err {
		case nil:
			summary.Inserted++
		case apperrors.ErrDuplicateAttendee:
			summary.Skipped++
		default:
			if summary.Inserted > 0 {
				s.notifier.AttendeesChanged()
			}
			return summary, err
		}
	}

	if summary.Inserted > 0 {
		s.notifier.AttendeesChanged()
	}
	return summary, nil
}

func field(record []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
