package handlers

import (
	"net/http"

	"hiredaily/models"
	"hiredaily/services/auth"
	"hiredaily/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Svc auth.AuthService
}

func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

// RegisterUserHandler handles POST /api/auth/register-user.
func (h *AuthHandler) RegisterUserHandler(c *gin.Context) {
	var req models.CustomerRegistration
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.Svc.RegisterCustomer(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RegisterWorkerHandler handles POST /api/auth/register-worker.
func (h *AuthHandler) RegisterWorkerHandler(c *gin.Context) {
	var req models.WorkerRegistration
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.Svc.RegisterWorker(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.Svc.Login(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProfileHandler handles GET /api/auth/profile for either kind.
func (h *AuthHandler) ProfileHandler(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, p.Account())
}
