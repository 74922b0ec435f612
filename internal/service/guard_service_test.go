package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hosteldesk/outpass-api/internal/models"
	appErrors "github.com/hosteldesk/outpass-api/pkg/errors"
)

func TestGuardOutLogListsDecidedRows(t *testing.T) {
	ledger := &mockLedger{records: []models.RequestRecord{
		{RowIndex: 0, Width: 14, StudentID: "S001", Status: models.StatusOut, OutApproval: models.ApprovalApproved},
		{RowIndex: 1, Width: 14, StudentID: "S002", Status: models.StatusOut, OutApproval: models.ApprovalRejected},
		{RowIndex: 2, Width: 13, StudentID: "S003", Status: models.StatusOut},
		{RowIndex: 3, Width: 19, StudentID: "S004", Status: models.StatusIn, InApproval: models.ApprovalApproved},
	}}
	svc := NewGuardService(ledger, validator.New(), zap.NewNop())

	records, err := svc.OutLog(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "S001", records[0].StudentID)
	assert.Equal(t, "S002", records[1].StudentID)
}

func TestGuardInLogListsDecidedRows(t *testing.T) {
	ledger := &mockLedger{records: []models.RequestRecord{
		{RowIndex: 0, Width: 19, StudentID: "S001", Status: models.StatusIn, InApproval: models.ApprovalApproved},
		{RowIndex: 1, Width: 18, StudentID: "S002", Status: models.StatusIn},
		{RowIndex: 2, Width: 14, StudentID: "S003", Status: models.StatusOut, OutApproval: models.ApprovalApproved},
	}}
	svc := NewGuardService(ledger, validator.New(), zap.NewNop())

	records, err := svc.InLog(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "S001", records[0].StudentID)
}

func TestGuardSearchMatchesDecisionMarker(t *testing.T) {
	ledger := &mockLedger{records: []models.RequestRecord{
		// WardenNameOut holds a warden's name, not a decision marker: skipped.
		{RowIndex: 0, Width: 15, StudentID: "S001", Status: models.StatusOut,
			OutApproval: models.ApprovalApproved, WardenNameOut: "Sharma"},
		{RowIndex: 1, Width: 15, StudentID: "S001", Status: models.StatusOut,
			OutApproval: models.ApprovalApproved, WardenNameOut: " APPROVED "},
	}}
	svc := NewGuardService(ledger, validator.New(), zap.NewNop())

	record, err := svc.Search(context.Background(), "S001")
	require.NoError(t, err)
	assert.Equal(t, 1, record.RowIndex)
}

func TestGuardSearchMatchesNotApprovedMarker(t *testing.T) {
	ledger := &mockLedger{records: []models.RequestRecord{
		{RowIndex: 0, Width: 15, StudentID: "S001", Status: models.StatusOut,
			WardenNameOut: "NOT APPROVED"},
	}}
	svc := NewGuardService(ledger, validator.New(), zap.NewNop())

	record, err := svc.Search(context.Background(), "S001")
	require.NoError(t, err)
	assert.Equal(t, 0, record.RowIndex)
}

func TestGuardSearchNotFound(t *testing.T) {
	ledger := &mockLedger{records: []models.RequestRecord{
		{RowIndex: 0, Width: 13, StudentID: "S001", Status: models.StatusOut},
	}}
	svc := NewGuardService(ledger, validator.New(), zap.NewNop())

	_, err := svc.Search(context.Background(), "S001")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErr.Status)
	assert.Equal(t, "Student not found or request not approved", appErr.Message)
}

func TestGuardRecordExitWritesFullRow(t *testing.T) {
	ledger := &mockLedger{records: []models.RequestRecord{
		{RowIndex: 1, Width: 14, StudentID: "S001", Status: models.StatusOut,
			OutApproval: models.ApprovalApproved, OutDate: "30-08-2026"},
	}}
	svc := NewGuardService(ledger, validator.New(), zap.NewNop())

	err := svc.RecordExit(context.Background(), GateUpdateRequest{StudentID: "S001", Status: models.StatusOut, Time: "09:40"})
	require.NoError(t, err)

	row, ok := ledger.rowWrites[1]
	require.True(t, ok)
	require.Len(t, row, models.LedgerWidth)
	assert.Equal(t, "09:40", row[models.ColOutTime])
	assert.Equal(t, models.StatusOut, row[models.ColStatus])
}

func TestGuardRecordExitSkipsInPhaseRows(t *testing.T) {
	ledger := &mockLedger{records: []models.RequestRecord{
		{RowIndex: 0, Width: 22, StudentID: "S001", Status: models.StatusIn},
		{RowIndex: 1, Width: 13, StudentID: "S001", Status: models.StatusOut},
	}}
	svc := NewGuardService(ledger, validator.New(), zap.NewNop())

	err := svc.RecordExit(context.Background(), GateUpdateRequest{StudentID: "S001", Time: "09:40"})
	require.NoError(t, err)

	_, wroteFirst := ledger.rowWrites[0]
	assert.False(t, wroteFirst)
	_, wroteSecond := ledger.rowWrites[1]
	assert.True(t, wroteSecond)
}

func TestGuardRecordEntryStampsInTime(t *testing.T) {
	ledger := &mockLedger{records: []models.RequestRecord{
		{RowIndex: 0, Width: 19, StudentID: "S001", Status: models.StatusIn,
			InApproval: models.ApprovalApproved, InDate: "03-09-2026"},
	}}
	svc := NewGuardService(ledger, validator.New(), zap.NewNop())

	err := svc.RecordEntry(context.Background(), GateUpdateRequest{StudentID: "S001", Time: "18:45"})
	require.NoError(t, err)

	row, ok := ledger.rowWrites[0]
	require.True(t, ok)
	assert.Equal(t, "18:45", row[models.ColInTime])
}

func TestGuardRecordEntryNotFound(t *testing.T) {
	ledger := &mockLedger{records: []models.RequestRecord{
		{RowIndex: 0, Width: 13, StudentID: "S001", Status: models.StatusOut},
	}}
	svc := NewGuardService(ledger, validator.New(), zap.NewNop())

	err := svc.RecordEntry(context.Background(), GateUpdateRequest{StudentID: "S001", Time: "18:45"})
	require.Error(t, err)
	assert.Equal(t, "Matching request not found", appErrors.FromError(err).Message)
}

func TestGuardGateUpdateValidation(t *testing.T) {
	svc := NewGuardService(&mockLedger{}, validator.New(), zap.NewNop())

	err := svc.RecordExit(context.Background(), GateUpdateRequest{StudentID: "S001"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
