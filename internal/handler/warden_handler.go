package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hosteldesk/outpass-api/internal/service"
	appErrors "github.com/hosteldesk/outpass-api/pkg/errors"
	"github.com/hosteldesk/outpass-api/pkg/response"
)

// WardenHandler wires the approval endpoints: pending dashboards, phase
// decisions, and the register export.
type WardenHandler struct {
	warden *service.WardenService
	export *service.ExportService
}

// NewWardenHandler creates a new handler.
func NewWardenHandler(warden *service.WardenService, export *service.ExportService) *WardenHandler {
	return &WardenHandler{warden: warden, export: export}
}

// OutDashboard godoc
// @Summary List pending OUT requests
// @Description OUT-phase requests awaiting a decision for today or later
// @Tags Warden
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /warden/out_request_dashboard [get]
func (h *WardenHandler) OutDashboard(c *gin.Context) {
	records, err := h.warden.OutDashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil)
}

// InDashboard godoc
// @Summary List pending IN requests
// @Description IN-phase requests awaiting a decision for today or later
// @Tags Warden
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /warden/in_request_dashboard [get]
func (h *WardenHandler) InDashboard(c *gin.Context) {
	records, err := h.warden.InDashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil)
}

// UpdateOutStatus godoc
// @Summary Decide an OUT request
// @Description Persist the warden's OUT decision and notify the student's contact
// @Tags Warden
// @Accept json
// @Produce json
// @Param payload body service.DecisionRequest true "Decision"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /warden/update_out_status [post]
func (h *WardenHandler) UpdateOutStatus(c *gin.Context) {
	var req service.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	result, err := h.warden.DecideOut(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Status updated successfully"}, decisionMeta(result))
}

// UpdateInStatus godoc
// @Summary Decide an IN request
// @Description Persist the warden's IN decision and notify the student's contact
// @Tags Warden
// @Accept json
// @Produce json
// @Param payload body service.DecisionRequest true "Decision"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /warden/update_in_status [post]
func (h *WardenHandler) UpdateInStatus(c *gin.Context) {
	var req service.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	result, err := h.warden.DecideIn(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Status updated successfully"}, decisionMeta(result))
}

// RegisterExport godoc
// @Summary Download the outing register
// @Description Render the full register as CSV or PDF
// @Tags Warden
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "Export format (csv or pdf)" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /warden/register_export [get]
func (h *WardenHandler) RegisterExport(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", string(service.ExportFormatCSV)))

	file, err := h.export.Register(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Payload)
}

// decisionMeta surfaces the notification outcome next to the persisted
// decision so clients can tell "decided and notified" from "decided only".
func decisionMeta(result *service.DecisionResult) gin.H {
	if result == nil {
		return nil
	}
	status := "failed"
	if result.Notified {
		status = "delivered"
	}
	meta := gin.H{"notification": status}
	if result.MessageSID != "" {
		meta["messageSid"] = result.MessageSID
	}
	return meta
}
