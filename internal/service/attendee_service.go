package service

import (
	"context"
	"strings"

	apperrors "gatepass/internal/errors"
	"gatepass/internal/model"
	"gatepass/internal/notify"
	"gatepass/internal/repository"
)

// RegisterInput carries a registration form, public or admin.
type RegisterInput struct {
	Name        string
	Email       string
	Mobile      string
	Designation string
	Category    string
	Company     string
}

// AttendeeService exposes attendee lifecycle operations. Every successful
// mutation broadcasts a change signal; failures broadcast nothing.
type AttendeeService interface {
	Register(ctx context.Context, input RegisterInput, source string) (*model.Attendee, error)
	Update(ctx context.Context, id uint, fields model.EditableFields) (*model.Attendee, error)
	Delete(ctx context.Context, id uint) error
	MarkScanned(ctx context.Context, id uint) error
	VerifyScan(ctx context.Context, code string) (*model.Attendee, error)
	List(ctx context.Context) ([]model.Attendee, error)
}

type attendeeService struct {
	repo     repository.AttendeeRepository
	notifier notify.Broadcaster
}

// NewAttendeeService builds an AttendeeService.
func NewAttendeeService(repo repository.AttendeeRepository, notifier notify.Broadcaster) AttendeeService {
	return &attendeeService{repo: repo, notifier: notifier}
}

// Register validates the form and creates the attendee with a fresh barcode.
func (s *attendeeService) Register(ctx context.Context, input RegisterInput, source string) (*model.Attendee, error) {
	attendee := &model.Attendee{
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		Mobile:      strings.TrimSpace(input.Mobile),
		Designation: strings.TrimSpace(input.Designation),
		Category:    strings.TrimSpace(input.Category),
		Company:     strings.TrimSpace(input.Company),
		Source:      source,
	}
	if attendee.Name == "" || attendee.Email == "" || attendee.Mobile == "" || attendee.Category == "" {
		return nil, apperrors.ErrValidation
	}

	if err := s.repo.CreateWithBarcode(ctx, attendee); err != nil {
		return nil, err
	}
	s.notifier.AttendeesChanged()
	return attendee, nil
}

// Update replaces the six editable fields of an existing attendee.
func (s *attendeeService) Update(ctx context.Context, id uint, fields model.EditableFields) (*model.Attendee, error) {
	fields.Name = strings.TrimSpace(fields.Name)
	fields.Email = strings.TrimSpace(fields.Email)
	fields.Mobile = strings.TrimSpace(fields.Mobile)
	fields.Designation = strings.TrimSpace(fields.Designation)
	fields.Category = strings.TrimSpace(fields.Category)
	fields.Company = strings.TrimSpace(fields.Company)
	if fields.Name == "" || fields.Email == "" || fields.Mobile == "" || fields.Category == "" {
		return nil, apperrors.ErrValidation
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	s.notifier.AttendeesChanged()
	return updated, nil
}

// Delete removes an attendee permanently.
func (s *attendeeService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.AttendeesChanged()
	return nil
}

// MarkScanned is the admin override from the attendee table. Unlike
// VerifyScan it accepts an already-scanned attendee.
func (s *attendeeService) MarkScanned(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.MarkScanned(ctx, id); err != nil {
		return err
	}
	s.notifier.AttendeesChanged()
	return nil
}

// VerifyScan performs door check-in: the one-time transition of scanned
// from false to true. A second scan of the same badge is rejected.
func (s *attendeeService) VerifyScan(ctx context.Context, code string) (*model.Attendee, error) {
	attendee, err := s.repo.FindByBarcode(ctx, strings.TrimSpace(code))
	if err != nil {
		return nil, err
	}
	if attendee.Scanned {
		return nil, apperrors.ErrAlreadyScanned
	}
	if err := s.repo.MarkScanned(ctx, attendee.ID); err != nil {
		return nil, err
	}
	attendee.Scanned = true
	s.notifier.AttendeesChanged()
	return attendee, nil
}

// List returns all attendees newest first, for the admin panel and the
// public dashboard alike.
func (s *attendeeService) List(ctx context.Context) ([]model.Attendee, error) {
	return s.repo.List(ctx, true)
}
