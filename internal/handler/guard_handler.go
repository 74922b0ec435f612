package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hosteldesk/outpass-api/internal/service"
	appErrors "github.com/hosteldesk/outpass-api/pkg/errors"
	"github.com/hosteldesk/outpass-api/pkg/response"
)

// GuardHandler wires the gate endpoints: decided-request logs, lookup, and
// passage time recording.
type GuardHandler struct {
	guard *service.GuardService
}

// NewGuardHandler creates a new handler.
func NewGuardHandler(guard *service.GuardService) *GuardHandler {
	return &GuardHandler{guard: guard}
}

// OutDashboard godoc
// @Summary List decided OUT requests
// @Description OUT-phase requests with a recorded warden decision
// @Tags Guard
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /guard/out_dashboard [get]
func (h *GuardHandler) OutDashboard(c *gin.Context) {
	records, err := h.guard.OutLog(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil)
}

// InDashboard godoc
// @Summary List decided IN requests
// @Description IN-phase requests with a recorded warden decision
// @Tags Guard
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /guard/in_dashboard [get]
func (h *GuardHandler) InDashboard(c *gin.Context) {
	records, err := h.guard.InLog(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil)
}

// Search godoc
// @Summary Look up a student's decided request
// @Description First ledger row for the student with a recorded OUT decision
// @Tags Guard
// @Accept json
// @Produce json
// @Param payload body handler.studentIDPayload true "Student id"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /guard/search [post]
func (h *GuardHandler) Search(c *gin.Context) {
	var req studentIDPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	record, err := h.guard.Search(c.Request.Context(), req.StudentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, record, nil)
}

// UpdateOutStatus godoc
// @Summary Record gate exit
// @Description Stamp the exit time on the student's OUT-phase request
// @Tags Guard
// @Accept json
// @Produce json
// @Param payload body service.GateUpdateRequest true "Gate update"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /guard/update_out_status [post]
func (h *GuardHandler) UpdateOutStatus(c *gin.Context) {
	var req service.GateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	if err := h.guard.RecordExit(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Status updated successfully"}, nil)
}

// UpdateInStatus godoc
// @Summary Record gate entry
// @Description Stamp the entry time on the student's IN-phase request
// @Tags Guard
// @Accept json
// @Produce json
// @Param payload body service.GateUpdateRequest true "Gate update"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /guard/update_in_status [post]
func (h *GuardHandler) UpdateInStatus(c *gin.Context) {
	var req service.GateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	if err := h.guard.RecordEntry(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Status updated successfully"}, nil)
}
