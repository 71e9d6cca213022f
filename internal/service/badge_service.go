package service

import (
	"context"

	"gatepass/internal/layout"
	"gatepass/internal/model"
	"gatepass/internal/notify"
	"gatepass/internal/repository"
)

// BadgeRenderData is everything a badge view needs: the attendee, the badge
// canvas, and the resolved visible fields.
type BadgeRenderData struct {
	Attendee model.Attendee       `json:"attendee"`
	Size     layout.Size          `json:"size"`
	Fields   []layout.RenderField `json:"fields"`
}

// BadgeService produces badge render data and records the print.
type BadgeService interface {
	RenderData(ctx context.Context, id uint) (*BadgeRenderData, error)
}

type badgeService struct {
	repo     repository.AttendeeRepository
	layouts  LayoutService
	notifier notify.Broadcaster
}

// NewBadgeService builds a BadgeService.
func NewBadgeService(repo repository.AttendeeRepository, layouts LayoutService, notifier notify.Broadcaster) BadgeService {
	return &badgeService{repo: repo, layouts: layouts, notifier: notifier}
}

// RenderData loads the attendee, marks the badge printed (every render, as
// reprints are normal) and applies the stored layout or the defaults.
func (s *badgeService) RenderData(ctx context.Context, id uint) (*BadgeRenderData, error) {
	attendee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.MarkPrinted(ctx, attendee.ID); err != nil {
		return nil, err
	}
	attendee.Printed = true
	s.notifier.AttendeesChanged()

	doc, err := s.layouts.Load(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = layout.Default()
	}

	values := map[string]string{
		layout.FieldName:     attendee.Name,
		layout.FieldCompany:  attendee.Company,
		layout.FieldCategory: attendee.Category,
		layout.FieldBarcode:  attendee.Barcode,
	}
	return &BadgeRenderData{
		Attendee: *attendee,
		Size:     doc.Size,
		Fields:   layout.Apply(doc, values),
	}, nil
}
