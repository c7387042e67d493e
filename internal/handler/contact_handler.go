package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/senshi-dojo/dojo-backend/internal/middleware"
	"github.com/senshi-dojo/dojo-backend/internal/model"
	"github.com/senshi-dojo/dojo-backend/internal/response"
	"github.com/senshi-dojo/dojo-backend/internal/service"
)

// ContactHandler handles the public contact form.
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// CreateContact godoc
// POST /api/contact
// Stores the message; there is no endpoint to read it back.
func (h *ContactHandler) CreateContact(c *gin.Context) {
	req, _ := middleware.GetInput[model.CreateContactRequest](c)

	contact, err := h.contactService.Create(c.Request.Context(), req)
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": contact.ID, "createdAt": contact.CreatedAt})
}
