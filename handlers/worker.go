package handlers

import (
	"net/http"

	"hiredaily/models"
	"hiredaily/services/booking"
	"hiredaily/services/worker"
	"hiredaily/utils"

	"github.com/gin-gonic/gin"
)

type WorkerHandler struct {
	Svc      worker.WorkerService
	Bookings booking.BookingService
}

func NewWorkerHandler(svc worker.WorkerService, bookings booking.BookingService) *WorkerHandler {
	return &WorkerHandler{Svc: svc, Bookings: bookings}
}

// ListWorkersHandler handles GET /api/workers.
func (h *WorkerHandler) ListWorkersHandler(c *gin.Context) {
	criteria := models.WorkerSearchCriteria{
		Skill:    c.Query("skill"),
		Location: c.Query("location"),
		MinRate:  floatQuery(c, "minRate"),
		MaxRate:  floatQuery(c, "maxRate"),
		Search:   c.Query("search"),
		Page:     pageQuery(c),
	}
	list, err := h.Svc.SearchWorkers(c.Request.Context(), criteria)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetWorkerHandler handles GET /api/workers/:id.
func (h *WorkerHandler) GetWorkerHandler(c *gin.Context) {
	w, err := h.Svc.GetWorkerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// UpdateWorkerProfileHandler handles PUT /api/workers/profile.
func (h *WorkerHandler) UpdateWorkerProfileHandler(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req models.WorkerUpdate
	if !bindJSON(c, &req) {
		return
	}
	w, err := h.Svc.UpdateProfile(c.Request.Context(), p.ID(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// ListWorkerBookingsHandler handles GET /api/workers/bookings.
func (h *WorkerHandler) ListWorkerBookingsHandler(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	list, err := h.Bookings.ListWorkerBookings(c.Request.Context(), p.ID(), c.Query("status"), pageQuery(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateBookingStatusHandler handles PUT /api/workers/bookings/:id/status.
func (h *WorkerHandler) UpdateBookingStatusHandler(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req struct {
		Status models.BookingStatus `json:"status"`
	}
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.Bookings.UpdateStatus(c.Request.Context(), p.ID(), c.Param("id"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetSkillsHandler handles GET /api/workers/skills.
func (h *WorkerHandler) GetSkillsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.Skills())
}
