package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gatepass/internal/model"
)

func TestExportCSV_QuotingAndFlags(t *testing.T) {
	mockRepo := new(MockAttendeeRepository)
	mockRepo.On("List", mock.Anything, false).Return([]model.Attendee{
		{
			ID:       1,
			Name:     `A "B"`,
			Email:    "a@x.com",
			Mobile:   "555-0100",
			Category: "VIP",
			Printed:  true,
			Scanned:  false,
			Barcode:  "BARA1B2",
			Source:   model.SourceManual,
		},
	}, nil)
	svc := NewExportService(mockRepo)

	var sb strings.Builder
	require.NoError(t, svc.ExportCSV(context.Background(), &sb))

	lines := strings.Split(sb.String(), "\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,name,email,mobile,designation,category,company,printed,scanned,barcode,source", lines[0])
	assert.Equal(t, `1,"A ""B""","a@x.com","555-0100","","VIP","",1,0,"BARA1B2","manual"`, lines[1])
}

func TestExportCSV_RowsOrderedByAscendingID(t *testing.T) {
	mockRepo := new(MockAttendeeRepository)
	mockRepo.On("List", mock.Anything, false).Return([]model.Attendee{
		{ID: 1, Name: "First", Email: "1@x.com", Mobile: "1", Category: "GEN", Barcode: "BARAAAA", Source: model.SourceCSV},
		{ID: 2, Name: "Second", Email: "2@x.com", Mobile: "2", Category: "GEN", Barcode: "BARBBBB", Source: model.SourceManual},
	}, nil)
	svc := NewExportService(mockRepo)

	var sb strings.Builder
	require.NoError(t, svc.ExportCSV(context.Background(), &sb))

	lines := strings.Split(sb.String(), "\r\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], `1,"First"`))
	assert.True(t, strings.HasPrefix(lines[2], `2,"Second"`))
}
