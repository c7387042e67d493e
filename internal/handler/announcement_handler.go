package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/senshi-dojo/dojo-backend/internal/middleware"
	"github.com/senshi-dojo/dojo-backend/internal/model"
	"github.com/senshi-dojo/dojo-backend/internal/response"
	"github.com/senshi-dojo/dojo-backend/internal/service"
)

// AnnouncementHandler handles club announcements.
type AnnouncementHandler struct {
	announcementService *service.AnnouncementService
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(announcementService *service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

// ListAnnouncements godoc
// GET /api/announcements
// Newest first.
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	announcements, err := h.announcementService.List(c.Request.Context())
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, http.StatusOK, announcements)
}

// CreateAnnouncement godoc
// POST /api/announcements
// The acting admin is the author unless authorId is given.
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	req, _ := middleware.GetInput[model.CreateAnnouncementRequest](c)

	announcement, err := h.announcementService.Create(c.Request.Context(), req, middleware.GetActor(c).ID)
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, http.StatusCreated, announcement)
}

// DeleteAnnouncement godoc
// DELETE /api/announcements/:id
func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	if err := h.announcementService.Delete(c.Request.Context(), middleware.GetTarget(c).ID); err != nil {
		failWith(c, err)
		return
	}
	response.NoContent(c)
}
