package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hosteldesk/outpass-api/internal/models"
	"github.com/hosteldesk/outpass-api/internal/repository"
	"github.com/hosteldesk/outpass-api/internal/service"
)

type responseEnvelope struct {
	Data  json.RawMessage        `json:"data"`
	Error *envelopeError         `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type fakeDirectoryRepo struct {
	students map[string]models.StudentRecord
}

func (f *fakeDirectoryRepo) FindByID(_ context.Context, studentID string) (*models.StudentRecord, error) {
	if s, ok := f.students[studentID]; ok {
		return &s, nil
	}
	return nil, repository.ErrRowNotFound
}

type fakeLedger struct {
	records  []models.RequestRecord
	appended [][]string
}

func (f *fakeLedger) Snapshot(context.Context) ([]models.RequestRecord, error) {
	return f.records, nil
}

func (f *fakeLedger) Append(_ context.Context, row []string) error {
	f.appended = append(f.appended, row)
	return nil
}

func (f *fakeLedger) UpdateCell(context.Context, int, int, string) error { return nil }

func (f *fakeLedger) UpdateRow(context.Context, int, []string) error { return nil }

func newStudentHandler(dirRepo *fakeDirectoryRepo, ledger *fakeLedger) *StudentHandler {
	directory := service.NewDirectoryService(dirRepo, nil, time.Minute, validator.New(), zap.NewNop(), nil)
	requests := service.NewRequestService(ledger, validator.New(), zap.NewNop())
	return NewStudentHandler(directory, requests)
}

func postJSON(t *testing.T, h gin.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h(c)
	return rec
}

func TestFetchStudentSuccess(t *testing.T) {
	handler := newStudentHandler(&fakeDirectoryRepo{students: map[string]models.StudentRecord{
		"S001": {StudentID: "S001", Name: "Asha", HostelName: "Ganga"},
	}}, &fakeLedger{})

	rec := postJSON(t, handler.FetchStudent, "/fetch_student", gin.H{"StudentId": "S001"})

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	var student models.StudentRecord
	require.NoError(t, json.Unmarshal(envelope.Data, &student))
	assert.Equal(t, "Asha", student.Name)
}

func TestFetchStudentNotFound(t *testing.T) {
	handler := newStudentHandler(&fakeDirectoryRepo{}, &fakeLedger{})

	rec := postJSON(t, handler.FetchStudent, "/fetch_student", gin.H{"StudentId": "S404"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "Student not found", envelope.Error.Message)
}

func TestSubmitOutRequestCreated(t *testing.T) {
	ledger := &fakeLedger{}
	handler := newStudentHandler(&fakeDirectoryRepo{}, ledger)

	payload := gin.H{
		"studentDetails": gin.H{"StudentId": "S001", "Name": "Asha", "MobileNumber": "9000000001"},
		"leaveRequest":   gin.H{"reason": "temple visit", "outDate": "30-08-2026"},
	}
	rec := postJSON(t, handler.SubmitOutRequest, "/submit_out_request", payload)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, ledger.appended, 1)

	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Contains(t, string(envelope.Data), "Outing request submitted successfully")
}

func TestSubmitOutRequestDuplicate(t *testing.T) {
	ledger := &fakeLedger{records: []models.RequestRecord{
		{RowIndex: 0, Width: 13, StudentID: "S001", OutDate: "30-08-2026", Status: models.StatusOut},
	}}
	handler := newStudentHandler(&fakeDirectoryRepo{}, ledger)

	payload := gin.H{
		"studentDetails": gin.H{"StudentId": "S001"},
		"leaveRequest":   gin.H{"reason": "temple visit", "outDate": "30-08-2026"},
	}
	rec := postJSON(t, handler.SubmitOutRequest, "/submit_out_request", payload)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Empty(t, ledger.appended)
}

func TestSubmitInRequestUpdatesDate(t *testing.T) {
	ledger := &fakeLedger{records: []models.RequestRecord{
		{RowIndex: 0, Width: 17, StudentID: "S001", Status: models.StatusOut,
			OutApproval: models.ApprovalApproved, OutTime: "09:40"},
	}}
	handler := newStudentHandler(&fakeDirectoryRepo{}, ledger)

	payload := gin.H{
		"studentDetails": gin.H{"StudentId": "S001"},
		"leaveRequest":   gin.H{"inDate": "03-09-2026"},
	}
	rec := postJSON(t, handler.SubmitInRequest, "/submit_in_request", payload)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Contains(t, string(envelope.Data), "InDate updated successfully")
}
