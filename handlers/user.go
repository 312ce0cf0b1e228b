package handlers

import (
	"net/http"

	"hiredaily/models"
	"hiredaily/services/customer"
	"hiredaily/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Svc customer.CustomerService
}

func NewUserHandler(svc customer.CustomerService) *UserHandler {
	return &UserHandler{Svc: svc}
}

// GetUserProfileHandler handles GET /api/users/profile.
func (h *UserHandler) GetUserProfileHandler(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	usr, err := h.Svc.GetProfile(c.Request.Context(), p.ID())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateUserProfileHandler handles PUT /api/users/profile.
func (h *UserHandler) UpdateUserProfileHandler(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req models.CustomerUpdate
	if !bindJSON(c, &req) {
		return
	}
	usr, err := h.Svc.UpdateProfile(c.Request.Context(), p.ID(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}
