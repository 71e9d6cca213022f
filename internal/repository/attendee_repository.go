package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gatepass/internal/barcode"
	apperrors "gatepass/internal/errors"
	"gatepass/internal/model"
)

// AttendeeRepository defines attendee persistence operations.
type AttendeeRepository interface {
	CreateWithBarcode(ctx context.Context, attendee *model.Attendee) error
	Update(ctx context.Context, id uint, fields model.EditableFields) (*model.Attendee, error)
	Delete(ctx context.Context, id uint) error
	MarkPrinted(ctx context.Context, id uint) error
	MarkScanned(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Attendee, error)
	FindByBarcode(ctx context.Context, code string) (*model.Attendee, error)
	BarcodeExists(ctx context.Context, code string) (bool, error)
	List(ctx context.Context, newestFirst bool) ([]model.Attendee, error)
}

type attendeeRepository struct {
	db *gorm.DB
}

// NewAttendeeRepository builds a GORM-backed repository.
func NewAttendeeRepository(db *gorm.DB) AttendeeRepository {
	return &attendeeRepository{db: db}
}

// CreateWithBarcode checks the natural keys, allocates a fresh barcode and
// inserts, all inside one transaction so two concurrent creates cannot both
// pass the checks with the same candidate.
func (r *attendeeRepository) CreateWithBarcode(ctx context.Context, attendee *model.Attendee) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &attendeeRepository{db: tx}

		var count int64
		if err := tx.Model(&model.Attendee{}).
			Where("email = ? OR mobile = ?", attendee.Email, attendee.Mobile).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrDuplicateAttendee
		}

		code, err := barcode.NewAllocator(txRepo).Allocate(ctx)
		if err != nil {
			return err
		}
		attendee.Barcode = code
		attendee.Printed = false
		attendee.Scanned = false
		return tx.Create(attendee).Error
	})
}

// Update replaces the six editable fields. A rejected write applies nothing.
func (r *attendeeRepository) Update(ctx context.Context, id uint, fields model.EditableFields) (*model.Attendee, error) {
	var updated *model.Attendee
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Attendee
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAttendeeNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&model.Attendee{}).
			Where("id <> ? AND (email = ? OR mobile = ?)", id, fields.Email, fields.Mobile).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrDuplicateAttendee
		}

		// Map form so empty strings overwrite too.
		if err := tx.Model(&existing).Updates(map[string]interface{}{
			"name":        fields.Name,
			"email":       fields.Email,
			"mobile":      fields.Mobile,
			"designation": fields.Designation,
			"category":    fields.Category,
			"company":     fields.Company,
		}).Error; err != nil {
			return err
		}
		updated = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an attendee permanently.
func (r *attendeeRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Attendee{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrAttendeeNotFound
	}
	return nil
}

// MarkPrinted sets the printed flag. Safe to call repeatedly.
func (r *attendeeRepository) MarkPrinted(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Attendee{}).
		Where("id = ?", id).
		Update("printed", true).Error
}

// MarkScanned sets the scanned flag. Safe to call repeatedly; rejecting a
// second scan is the scan-verification caller's business rule.
func (r *attendeeRepository) MarkScanned(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Attendee{}).
		Where("id = ?", id).
		Update("scanned", true).Error
}

// FindByID finds an attendee by ID.
func (r *attendeeRepository) FindByID(ctx context.Context, id uint) (*model.Attendee, error) {
	var attendee model.Attendee
	if err := r.db.WithContext(ctx).First(&attendee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAttendeeNotFound
		}
		return nil, err
	}
	return &attendee, nil
}

// FindByBarcode finds an attendee by barcode.
func (r *attendeeRepository) FindByBarcode(ctx context.Context, code string) (*model.Attendee, error) {
	var attendee model.Attendee
	if err := r.db.WithContext(ctx).Where("barcode = ?", code).First(&attendee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBarcodeNotFound
		}
		return nil, err
	}
	return &attendee, nil
}

// BarcodeExists reports whether a code is already assigned.
func (r *attendeeRepository) BarcodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Attendee{}).
		Where("barcode = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns all attendees, newest first for dashboards or by ascending
// id for export.
func (r *attendeeRepository) List(ctx context.Context, newestFirst bool) ([]model.Attendee, error) {
	order := "id ASC"
	if newestFirst {
		order = "id DESC"
	}
	var attendees []model.Attendee
	if err := r.db.WithContext(ctx).Order(order).Find(&attendees).Error; err != nil {
		return nil, err
	}
	return attendees, nil
}
