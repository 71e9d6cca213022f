package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "gatepass/internal/errors"
	"gatepass/internal/model"
)

func TestImportCSV_SkipsInvalidAndDuplicateRows(t *testing.T) {
	// row 3 misses category, row 4 duplicates row 1's email
	csvData := strings.Join([]string{
		"Name,Email,Mobile,Category,Company",
		`Ada,ada@example.com,555-0100,VIP,Initech`,
		`Grace,grace@example.com,555-0101,GEN,`,
		`NoCat,nocat@example.com,555-0102,,Hooli`,
		`Dupe,ada@example.com,555-0103,GEN,`,
		`Alan,alan@example.com,555-0104,GEN,Bletchley`,
	}, "\n")

	mockRepo := new(MockAttendeeRepository)
	mockRepo.On("CreateWithBarcode", mock.Anything, mock.MatchedBy(func(a *model.Attendee) bool {
		return a.Email == "ada@example.com" && a.Source == model.SourceCSV
	})).Return(nil).Once()
	mockRepo.On("CreateWithBarcode", mock.Anything, mock.MatchedBy(func(a *model.Attendee) bool {
		return a.Email == "grace@example.com"
	})).Return(nil).Once()
	// second occurrence of ada's email is rejected by the store
	mockRepo.On("CreateWithBarcode", mock.Anything, mock.MatchedBy(func(a *model.Attendee) bool {
		return a.Name == "Dupe"
	})).Return(apperrors.ErrDuplicateAttendee).Once()
	mockRepo.On("CreateWithBarcode", mock.Anything, mock.MatchedBy(func(a *model.Attendee) bool {
		return a.Email == "alan@example.com"
	})).Return(nil).Once()

	broadcaster := &countingBroadcaster{}
	svc := NewImportService(mockRepo, broadcaster)

	summary, err := svc.ImportCSV(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Inserted)
	assert.Equal(t, 2, summary.Skipped)
	assert.Equal(t, 1, broadcaster.count, "one broadcast for the whole import, not one per row")
	mockRepo.AssertExpectations(t)
}

func TestImportCSV_HeaderMatchedCaseInsensitively(t *testing.T) {
	csvData := " NAME , eMail ,MOBILE,Category\nAda,ada@example.com,555-0100,VIP\n"

	mockRepo := new(MockAttendeeRepository)
	mockRepo.On("CreateWithBarcode", mock.Anything, mock.MatchedBy(func(a *model.Attendee) bool {
		return a.Name == "Ada" && a.Mobile == "555-0100" && a.Category == "VIP"
	})).Return(nil).Once()
	svc := NewImportService(mockRepo, &countingBroadcaster{})

	summary, err := svc.ImportCSV(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Inserted)
	mockRepo.AssertExpectations(t)
}

func TestImportCSV_UnknownColumnsIgnored(t *testing.T) {
	csvData := "name,email,mobile,category,twitter\nAda,ada@example.com,555-0100,VIP,@ada\n"

	mockRepo := new(MockAttendeeRepository)
	mockRepo.On("CreateWithBarcode", mock.Anything, mock.AnythingOfType("*model.Attendee")).
		Return(nil).Once()
	svc := NewImportService(mockRepo, &countingBroadcaster{})

	summary, err := svc.ImportCSV(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Inserted)
}

func TestImportCSV_MissingRequiredColumnIsParseError(t *testing.T) {
	csvData := "name,email,mobile\nAda,ada@example.com,555-0100\n"

	svc := NewImportService(new(MockAttendeeRepository), &countingBroadcaster{})

	_, err := svc.ImportCSV(context.Background(), strings.NewReader(csvData))
	assert.ErrorIs(t, err, apperrors.ErrImportParse)
}

func TestImportCSV_MalformedStreamKeepsCommittedRows(t *testing.T) {
	// bare quote in row 2 breaks the stream after row 1 inserted
	csvData := "name,email,mobile,category\nAda,ada@example.com,555-0100,VIP\nBro\"ken,x@example.com,555-0101,GEN\n"

	mockRepo := new(MockAttendeeRepository)
	mockRepo.On("CreateWithBarcode", mock.Anything, mock.AnythingOfType("*model.Attendee")).
		Return(nil).Once()
	broadcaster := &countingBroadcaster{}
	svc := NewImportService(mockRepo, broadcaster)

	summary, err := svc.ImportCSV(context.Background(), strings.NewReader(csvData))
	assert.ErrorIs(t, err, apperrors.ErrImportParse)
	assert.Equal(t, 1, summary.Inserted)
	assert.Equal(t, 1, broadcaster.count, "committed rows still announce a change")
	mockRepo.AssertExpectations(t)
}

func TestImportCSV_EmptyStreamIsParseError(t *testing.T) {
	svc := NewImportService(new(MockAttendeeRepository), &countingBroadcaster{})

	_, err := svc.ImportCSV(context.Background(), strings.NewReader(""))
	assert.ErrorIs(t, err, apperrors.ErrImportParse)
}
