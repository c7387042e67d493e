package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/senshi-dojo/dojo-backend/internal/config"
	"github.com/senshi-dojo/dojo-backend/internal/middleware"
	"github.com/senshi-dojo/dojo-backend/internal/model"
	"github.com/senshi-dojo/dojo-backend/internal/response"
	"github.com/senshi-dojo/dojo-backend/internal/service"
)

// AuthHandler handles registration, login and the session cookie.
type AuthHandler struct {
	authService *service.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// authResult is the body of a successful register or login.
type authResult struct {
	model.UserSummary
	User *model.User `json:"user"`
}

// Register godoc
// POST /api/register
// Creates a student account and signs it in.
func (h *AuthHandler) Register(c *gin.Context) {
	req, _ := middleware.GetInput[model.RegisterRequest](c)
	ctx := c.Request.Context()

	user, err := h.authService.Register(ctx, req)
	if err != nil {
		failWith(c, err)
		return
	}

	token, err := h.authService.StartSession(ctx, user.ID)
	if err != nil {
		failWith(c, err)
		return
	}
	h.setSessionCookie(c, token)

	response.Success(c, http.StatusCreated, authResult{UserSummary: user.Summary(), User: user})
}

// Login godoc
// POST /api/login
// Verifies credentials and issues the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	req, _ := middleware.GetInput[model.LoginRequest](c)

	user, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		failWith(c, err)
		return
	}
	h.setSessionCookie(c, token)

	response.Success(c, http.StatusOK, authResult{UserSummary: user.Summary(), User: user})
}

// Logout godoc
// POST /api/logout
// Destroys the current session, if any, and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), middleware.GetToken(c)); err != nil {
		failWith(c, err)
		return
	}
	h.clearSessionCookie(c)

	response.Success(c, http.StatusOK, gin.H{"loggedOut": true})
}

// CurrentUser godoc
// GET /api/user
// Returns the signed-in user.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrUnauthenticated)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// ChangePassword godoc
// POST /api/change-password
// Replaces the caller's password after checking the current one.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	req, _ := middleware.GetInput[model.ChangePasswordRequest](c)
	actor := middleware.GetActor(c)

	if err := h.authService.ChangePassword(c.Request.Context(), actor.ID, req.OldPassword, req.NewPassword); err != nil {
		failWith(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"passwordChanged": true})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.SessionCookieName, token, int(h.cfg.SessionTTL.Seconds()), "/", "", h.cfg.SessionCookieSecure, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.SessionCookieName, "", -1, "/", "", h.cfg.SessionCookieSecure, true)
}
