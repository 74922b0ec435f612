package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hosteldesk/outpass-api/internal/models"
	appErrors "github.com/hosteldesk/outpass-api/pkg/errors"
)

type mockLedger struct {
	records []models.RequestRecord
	err     error

	appendedRows [][]string
	cellWrites   []cellWrite
	rowWrites    map[int][]string
}

type cellWrite struct {
	rowIndex int
	col      int
	value    string
}

func (m *mockLedger) Snapshot(ctx context.Context) ([]models.RequestRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func (m *mockLedger) Append(ctx context.Context, row []string) error {
	if m.err != nil {
		return m.err
	}
	m.appendedRows = append(m.appendedRows, row)
	return nil
}

func (m *mockLedger) UpdateCell(ctx context.Context, rowIndex, col int, value string) error {
	if m.err != nil {
		return m.err
	}
	m.cellWrites = append(m.cellWrites, cellWrite{rowIndex: rowIndex, col: col, value: value})
	return nil
}

func (m *mockLedger) UpdateRow(ctx context.Context, rowIndex int, row []string) error {
	if m.err != nil {
		return m.err
	}
	if m.rowWrites == nil {
		m.rowWrites = make(map[int][]string)
	}
	m.rowWrites[rowIndex] = row
	return nil
}

func outRequest(studentID, reason, outDate string) SubmitOutRequest {
	var req SubmitOutRequest
	req.StudentDetails.StudentID = studentID
	req.StudentDetails.Name = "Asha"
	req.StudentDetails.MobileNumber = "9000000001"
	req.LeaveRequest.Reason = reason
	req.LeaveRequest.OutDate = outDate
	return req
}

func TestSubmitOutAppendsSubmissionColumns(t *testing.T) {
	ledger := &mockLedger{}
	svc := NewRequestService(ledger, validator.New(), zap.NewNop())

	err := svc.SubmitOut(context.Background(), outRequest("S001", "temple visit", "30-08-2026"))
	require.NoError(t, err)

	require.Len(t, ledger.appendedRows, 1)
	row := ledger.appendedRows[0]
	require.Len(t, row, models.ColStatus+1)
	assert.Equal(t, "S001", row[models.ColStudentID])
	assert.Equal(t, "temple visit", row[models.ColReason])
	assert.Equal(t, "30-08-2026", row[models.ColOutDate])
	assert.Equal(t, models.StatusOut, row[models.ColStatus])
}

func TestSubmitOutMissingFields(t *testing.T) {
	svc := NewRequestService(&mockLedger{}, validator.New(), zap.NewNop())

	err := svc.SubmitOut(context.Background(), outRequest("S001", "", "30-08-2026"))
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "All fields (StudentId, Reason, OutDate) are required", appErr.Message)
}

func TestSubmitOutDuplicateConflict(t *testing.T) {
	ledger := &mockLedger{records: []models.RequestRecord{
		{RowIndex: 0, Width: 13, StudentID: "S001", OutDate: "30-08-2026", Status: models.StatusOut},
	}}
	svc := NewRequestService(ledger, validator.New(), zap.NewNop())

	err := svc.SubmitOut(context.Background(), outRequest("S001", "again", "30-08-2026"))
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Status, appErr.Status)
	assert.Empty(t, ledger.appendedRows)
}

func TestSubmitOutSameStudentDifferentDate(t *testing.T) {
	ledger := &mockLedger{records: []models.RequestRecord{
		{RowIndex: 0, Width: 13, StudentID: "S001", OutDate: "30-08-2026", Status: models.StatusOut},
	}}
	svc := NewRequestService(ledger, validator.New(), zap.NewNop())

	err := svc.SubmitOut(context.Background(), outRequest("S001", "again", "05-09-2026"))
	require.NoError(t, err)
	assert.Len(t, ledger.appendedRows, 1)
}

func inRequest(studentID, inDate string) SubmitInRequest {
	var req SubmitInRequest
	req.StudentDetails.StudentID = studentID
	req.LeaveRequest.InDate = inDate
	return req
}

func TestSubmitInFlipsPhase(t *testing.T) {
	ledger := &mockLedger{records: []models.RequestRecord{
		{RowIndex: 0, Width: 17, StudentID: "S001", OutDate: "30-08-2026", Status: models.StatusOut,
			OutApproval: models.ApprovalApproved, OutTime: "09:40"},
	}}
	svc := NewRequestService(ledger, validator.New(), zap.NewNop())

	err := svc.SubmitIn(context.Background(), inRequest("S001", "03-09-2026"))
	require.NoError(t, err)

	require.Len(t, ledger.cellWrites, 2)
	assert.Equal(t, cellWrite{rowIndex: 0, col: models.ColInDate, value: "03-09-2026"}, ledger.cellWrites[0])
	assert.Equal(t, cellWrite{rowIndex: 0, col: models.ColStatus, value: models.StatusIn}, ledger.cellWrites[1])
}

func TestSubmitInSkipsRowsWithoutExitTime(t *testing.T) {
	ledger := &mockLedger{records: []models.RequestRecord{
		{RowIndex: 0, Width: 13, StudentID: "S001", OutDate: "30-08-2026", Status: models.StatusOut},
	}}
	svc := NewRequestService(ledger, validator.New(), zap.NewNop())

	err := svc.SubmitIn(context.Background(), inRequest("S001", "03-09-2026"))
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErr.Status)
	assert.Empty(t, ledger.cellWrites)
}

func TestSubmitInPicksFirstEligibleRow(t *testing.T) {
	ledger := &mockLedger{records: []models.RequestRecord{
		{RowIndex: 0, Width: 22, StudentID: "S001", Status: models.StatusIn, OutTime: "08:00"},
		{RowIndex: 1, Width: 17, StudentID: "S001", Status: models.StatusOut, OutTime: "09:40"},
		{RowIndex: 2, Width: 17, StudentID: "S001", Status: models.StatusOut, OutTime: "11:00"},
	}}
	svc := NewRequestService(ledger, validator.New(), zap.NewNop())

	err := svc.SubmitIn(context.Background(), inRequest("S001", "03-09-2026"))
	require.NoError(t, err)
	require.NotEmpty(t, ledger.cellWrites)
	assert.Equal(t, 1, ledger.cellWrites[0].rowIndex)
}

func TestRequestsForSkipsShortRows(t *testing.T) {
	ledger := &mockLedger{records: []models.RequestRecord{
		{RowIndex: 0, Width: 5, StudentID: "S001"},
		{RowIndex: 1, Width: 13, StudentID: "S001", Reason: "temple visit", OutDate: "30-08-2026", Status: models.StatusOut},
	}}
	svc := NewRequestService(ledger, validator.New(), zap.NewNop())

	summaries, err := svc.RequestsFor(context.Background(), "S001")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].RequestID)
	assert.Equal(t, "PENDING", summaries[0].OutApproval)
}

func TestRequestsForNoneFound(t *testing.T) {
	ledger := &mockLedger{records: []models.RequestRecord{
		{RowIndex: 0, Width: 13, StudentID: "S002", OutDate: "30-08-2026"},
	}}
	svc := NewRequestService(ledger, validator.New(), zap.NewNop())

	_, err := svc.RequestsFor(context.Background(), "S001")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNoRequests.Code, appErr.Code)
	assert.Equal(t, "No requests found for the given StudentId", appErr.Message)
}

func TestRequestsForUpstreamFailure(t *testing.T) {
	ledger := &mockLedger{err: errors.New("quota exceeded")}
	svc := NewRequestService(ledger, validator.New(), zap.NewNop())

	_, err := svc.RequestsFor(context.Background(), "S001")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErrors.FromError(err).Code)
}
