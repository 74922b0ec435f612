package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hosteldesk/outpass-api/internal/service"
	appErrors "github.com/hosteldesk/outpass-api/pkg/errors"
	"github.com/hosteldesk/outpass-api/pkg/response"
)

// StudentHandler wires the student-facing endpoints: directory lookup,
// request submission, and request history.
type StudentHandler struct {
	directory *service.DirectoryService
	requests  *service.RequestService
}

// NewStudentHandler creates a new handler.
func NewStudentHandler(directory *service.DirectoryService, requests *service.RequestService) *StudentHandler {
	return &StudentHandler{directory: directory, requests: requests}
}

type studentIDPayload struct {
	StudentID string `json:"StudentId"`
}

// FetchStudent godoc
// @Summary Fetch student directory record
// @Description Look up a student's directory details by StudentId
// @Tags Student
// @Accept json
// @Produce json
// @Param payload body handler.studentIDPayload true "Student id"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /fetch_student [post]
func (h *StudentHandler) FetchStudent(c *gin.Context) {
	var req studentIDPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	student, err := h.directory.Fetch(c.Request.Context(), req.StudentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, student, nil)
}

// FetchStudentRequests godoc
// @Summary List a student's outing requests
// @Description Returns every ledger entry for the student with derived statuses
// @Tags Student
// @Accept json
// @Produce json
// @Param payload body handler.studentIDPayload true "Student id"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /fetch_student_requests [post]
func (h *StudentHandler) FetchStudentRequests(c *gin.Context) {
	var req studentIDPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	summaries, err := h.requests.RequestsFor(c.Request.Context(), req.StudentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, summaries, nil)
}

// SubmitOutRequest godoc
// @Summary Submit an outing request
// @Description Append a new OUT request to the ledger after a duplicate check
// @Tags Student
// @Accept json
// @Produce json
// @Param payload body service.SubmitOutRequest true "Outing request"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /submit_out_request [post]
func (h *StudentHandler) SubmitOutRequest(c *gin.Context) {
	var req service.SubmitOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	if err := h.requests.SubmitOut(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"message": "Outing request submitted successfully"})
}

// SubmitInRequest godoc
// @Summary Declare re-entry for an outing request
// @Description Record the InDate on the student's active OUT request
// @Tags Student
// @Accept json
// @Produce json
// @Param payload body service.SubmitInRequest true "Re-entry declaration"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /submit_in_request [post]
func (h *StudentHandler) SubmitInRequest(c *gin.Context) {
	var req service.SubmitInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	if err := h.requests.SubmitIn(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "InDate updated successfully"}, nil)
}
