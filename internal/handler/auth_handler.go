package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hosteldesk/outpass-api/internal/models"
	"github.com/hosteldesk/outpass-api/internal/service"
	appErrors "github.com/hosteldesk/outpass-api/pkg/errors"
	"github.com/hosteldesk/outpass-api/pkg/response"
)

// AuthHandler wires the warden and guard login endpoints.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// WardenLogin godoc
// @Summary Authenticate warden
// @Description Validate warden credentials and issue a session token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.WardenLoginRequest true "Warden credentials"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /warden/login [post]
func (h *AuthHandler) WardenLogin(c *gin.Context) {
	var req models.WardenLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.service.LoginWarden(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res, nil)
}

// GuardLogin godoc
// @Summary Authenticate gate guard
// @Description Validate the gate PIN and issue a session token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.GuardLoginRequest true "Gate PIN"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /guard/login [post]
func (h *AuthHandler) GuardLogin(c *gin.Context) {
	var req models.GuardLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.service.LoginGuard(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res, nil)
}
