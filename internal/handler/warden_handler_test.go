package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hosteldesk/outpass-api/internal/models"
	"github.com/hosteldesk/outpass-api/internal/service"
)

type fakeNotifier struct {
	err error
}

func (f *fakeNotifier) Send(to, body string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "SM999", nil
}

func decisionPayload() gin.H {
	return gin.H{
		"StudentId":      "S001",
		"OutDate":        "30-08-2026",
		"ApprovalStatus": "APPROVED",
		"WardenName":     "Sharma",
		"Remarks":        "Return by 8 PM",
	}
}

func TestWardenUpdateOutStatusDelivered(t *testing.T) {
	ledger := &fakeLedger{records: []models.RequestRecord{
		{RowIndex: 0, Width: 13, StudentID: "S001", OutDate: "30-08-2026", Status: models.StatusOut,
			MobileNumber: "9000000001"},
	}}
	warden := service.NewWardenService(ledger, &fakeNotifier{}, validator.New(), zap.NewNop())
	handler := NewWardenHandler(warden, nil)

	rec := postJSON(t, handler.UpdateOutStatus, "/warden/update_out_status", decisionPayload())

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Contains(t, string(envelope.Data), "Status updated successfully")
	assert.Equal(t, "delivered", envelope.Meta["notification"])
	assert.Equal(t, "SM999", envelope.Meta["messageSid"])
}

func TestWardenUpdateOutStatusNotificationFailed(t *testing.T) {
	ledger := &fakeLedger{records: []models.RequestRecord{
		{RowIndex: 0, Width: 13, StudentID: "S001", OutDate: "30-08-2026", Status: models.StatusOut},
	}}
	warden := service.NewWardenService(ledger, &fakeNotifier{err: errors.New("twilio 500")}, validator.New(), zap.NewNop())
	handler := NewWardenHandler(warden, nil)

	rec := postJSON(t, handler.UpdateOutStatus, "/warden/update_out_status", decisionPayload())

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "failed", envelope.Meta["notification"])
}

func TestWardenUpdateOutStatusNotFound(t *testing.T) {
	warden := service.NewWardenService(&fakeLedger{}, &fakeNotifier{}, validator.New(), zap.NewNop())
	handler := NewWardenHandler(warden, nil)

	rec := postJSON(t, handler.UpdateOutStatus, "/warden/update_out_status", decisionPayload())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "Matching request not found", envelope.Error.Message)
}

func TestWardenRegisterExportCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ledger := &fakeLedger{records: []models.RequestRecord{
		{RowIndex: 0, Width: 13, StudentID: "S001", Name: "Asha", OutDate: "30-08-2026", Status: models.StatusOut},
	}}
	export := service.NewExportService(ledger, zap.NewNop(), nil, nil)
	handler := NewWardenHandler(nil, export)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/warden/register_export?format=csv", nil)

	handler.RegisterExport(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "outing_register_")
	assert.Contains(t, rec.Body.String(), "S001")
}
