package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/senshi-dojo/dojo-backend/internal/middleware"
	"github.com/senshi-dojo/dojo-backend/internal/model"
	"github.com/senshi-dojo/dojo-backend/internal/response"
	"github.com/senshi-dojo/dojo-backend/internal/service"
)

// UserHandler handles member administration and profile updates.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers godoc
// GET /api/admin/users
// Most recently joined first.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

// UpdateUser godoc
// PATCH /api/users/:id
// Members edit their own profile; admins may also change email, password,
// role and verification of any account.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	val, _ := c.Get(middleware.ContextKeyInput)
	patcher, ok := val.(model.UserPatcher)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	var newPassword *string
	if req, isAdmin := val.(*model.AdminUpdateUserRequest); isAdmin {
		newPassword = req.Password
	}

	user, err := h.userService.Update(c.Request.Context(), middleware.GetTarget(c).ID, patcher.Patch(), newPassword)
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// DeleteUser godoc
// DELETE /api/admin/users/:id
// Attendance of the user is removed with it.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.Delete(c.Request.Context(), middleware.GetTarget(c).ID); err != nil {
		failWith(c, err)
		return
	}
	response.NoContent(c)
}

// VerifyUser godoc
// POST /api/admin/verify-user/:id
func (h *UserHandler) VerifyUser(c *gin.Context) {
	user, err := h.userService.Verify(c.Request.Context(), middleware.GetTarget(c).ID)
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}
