package router

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/senshi-dojo/dojo-backend/internal/config"
	"github.com/senshi-dojo/dojo-backend/internal/contract"
	"github.com/senshi-dojo/dojo-backend/internal/handler"
	"github.com/senshi-dojo/dojo-backend/internal/middleware"
	"github.com/senshi-dojo/dojo-backend/internal/policy"
	"github.com/senshi-dojo/dojo-backend/internal/response"
	"github.com/senshi-dojo/dojo-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth         *handler.AuthHandler
	Session      *handler.ClassSessionHandler
	Announcement *handler.AnnouncementHandler
	Attendance   *handler.AttendanceHandler
	User         *handler.UserHandler
	Contact      *handler.ContactHandler
}

// byOperation binds every contract operation to its handler.
func (h *Handlers) byOperation() map[policy.Operation]gin.HandlerFunc {
	return map[policy.Operation]gin.HandlerFunc{
		policy.OpRegister:       h.Auth.Register,
		policy.OpLogin:          h.Auth.Login,
		policy.OpLogout:         h.Auth.Logout,
		policy.OpCurrentUser:    h.Auth.CurrentUser,
		policy.OpChangePassword: h.Auth.ChangePassword,

		policy.OpListSessions:  h.Session.ListSessions,
		policy.OpCreateSession: h.Session.CreateSession,
		policy.OpDeleteSession: h.Session.DeleteSession,

		policy.OpListAnnouncements:  h.Announcement.ListAnnouncements,
		policy.OpCreateAnnouncement: h.Announcement.CreateAnnouncement,
		policy.OpDeleteAnnouncement: h.Announcement.DeleteAnnouncement,

		policy.OpListAttendance: h.Attendance.ListAttendance,
		policy.OpMarkAttendance: h.Attendance.MarkAttendance,

		policy.OpListUsers:  h.User.ListUsers,
		policy.OpUpdateUser: h.User.UpdateUser,
		policy.OpDeleteUser: h.User.DeleteUser,
		policy.OpVerifyUser: h.User.VerifyUser,

		policy.OpCreateContact: h.Contact.CreateContact,
	}
}

// rateLimited are the unauthenticated operations that accept untrusted input.
var rateLimited = map[policy.Operation]bool{
	policy.OpRegister:      true,
	policy.OpLogin:         true,
	policy.OpCreateContact: true,
}

// SetupRouter mounts every endpoint of the contract with its middleware chain.
// It panics if an endpoint has no handler.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	limiter *middleware.RateLimiter,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// Request ID first so the access log and every envelope carry it.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.AccessLog(log))

	// ─── CORS ──────────────────────────────────────────────────────────
	// The session travels in a cookie, so origins must be listed
	// explicitly; without a list every origin is echoed back.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	// ─── API (from the contract) ───────────────────────────────────────
	api := router.Group("/api")
	api.Use(
		middleware.NoStore(),
		middleware.LoadActor(authService, cfg.SessionCookieName, log),
	)

	bound := handlers.byOperation()
	for _, e := range contract.Endpoints {
		h, ok := bound[e.Operation]
		if !ok || h == nil {
			panic(fmt.Sprintf("router: no handler for %s %s (%s)", e.Method, e.Path, e.Operation))
		}

		chain := make([]gin.HandlerFunc, 0, 4)
		if rateLimited[e.Operation] && limiter != nil {
			chain = append(chain, limiter.Middleware())
		}
		chain = append(chain,
			middleware.Authorize(e.Operation),
			middleware.BindInput(e),
			h,
		)

		api.Handle(e.Method, strings.TrimPrefix(e.Path, "/api"), chain...)
	}

	return router
}
