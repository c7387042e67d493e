package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/senshi-dojo/dojo-backend/internal/middleware"
	"github.com/senshi-dojo/dojo-backend/internal/model"
	"github.com/senshi-dojo/dojo-backend/internal/policy"
	"github.com/senshi-dojo/dojo-backend/internal/response"
	"github.com/senshi-dojo/dojo-backend/internal/service"
)

// AttendanceHandler handles attendance records.
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// ListAttendance godoc
// GET /api/attendance
// Admins see every record, members only their own.
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	records, err := h.attendanceService.List(c.Request.Context(), policy.AttendanceScope(middleware.GetActor(c)))
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, http.StatusOK, records)
}

// MarkAttendance godoc
// POST /api/attendance
func (h *AttendanceHandler) MarkAttendance(c *gin.Context) {
	req, _ := middleware.GetInput[model.MarkAttendanceRequest](c)

	record, err := h.attendanceService.Mark(c.Request.Context(), req)
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, http.StatusCreated, record)
}
