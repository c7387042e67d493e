package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/senshi-dojo/dojo-backend/internal/middleware"
	"github.com/senshi-dojo/dojo-backend/internal/model"
	"github.com/senshi-dojo/dojo-backend/internal/response"
	"github.com/senshi-dojo/dojo-backend/internal/service"
)

// ClassSessionHandler handles the training schedule.
type ClassSessionHandler struct {
	sessionService *service.ClassSessionService
}

// NewClassSessionHandler creates a new ClassSessionHandler.
func NewClassSessionHandler(sessionService *service.ClassSessionService) *ClassSessionHandler {
	return &ClassSessionHandler{sessionService: sessionService}
}

// ListSessions godoc
// GET /api/sessions
// Lists all sessions by date.
func (h *ClassSessionHandler) ListSessions(c *gin.Context) {
	sessions, err := h.sessionService.List(c.Request.Context())
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, http.StatusOK, sessions)
}

// CreateSession godoc
// POST /api/sessions
func (h *ClassSessionHandler) CreateSession(c *gin.Context) {
	req, _ := middleware.GetInput[model.CreateClassSessionRequest](c)

	session, err := h.sessionService.Create(c.Request.Context(), req)
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, http.StatusCreated, session)
}

// DeleteSession godoc
// DELETE /api/sessions/:id
func (h *ClassSessionHandler) DeleteSession(c *gin.Context) {
	if err := h.sessionService.Delete(c.Request.Context(), middleware.GetTarget(c).ID); err != nil {
		failWith(c, err)
		return
	}
	response.NoContent(c)
}
