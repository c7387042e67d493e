package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/senshi-dojo/dojo-backend/internal/contract"
	"github.com/senshi-dojo/dojo-backend/internal/model"
	"github.com/senshi-dojo/dojo-backend/internal/policy"
	"github.com/senshi-dojo/dojo-backend/internal/response"
	"github.com/senshi-dojo/dojo-backend/internal/service"
	"github.com/senshi-dojo/dojo-backend/internal/validator"
)

const (
	// ContextKeyUser holds the *model.User behind the session cookie.
	ContextKeyUser = "user"
	// ContextKeyToken holds the raw session token, if any.
	ContextKeyToken = "session_token"
	// ContextKeyTarget holds the policy.Target of the request.
	ContextKeyTarget = "target"
	// ContextKeyInput holds the decoded request body.
	ContextKeyInput = "input"
)

// ownedInput is implemented by payloads that reference a user.
type ownedInput interface {
	OwnerID() int
}

// LoadActor resolves the session cookie into a user. Requests without a
// valid session continue anonymously; only a failing session store aborts.
func LoadActor(authService *service.AuthService, cookieName string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cookieName)
		if token == "" {
			c.Next()
			return
		}
		c.Set(ContextKeyToken, token)

		user, err := authService.CurrentUser(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrNoSession) {
				c.Next()
				return
			}
			log.Error().Err(err).Str("request_id", response.RequestID(c)).Msg("Failed to resolve session")
			response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// Authorize enforces the rule of op against the actor and the :id path
// parameter. 401 wins over a malformed id, which wins over 403.
func Authorize(op policy.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, idErr := pathID(c)
		actor := GetActor(c)

		err := policy.Check(op, actor, policy.Target{ID: id})
		if errors.Is(err, policy.ErrUnauthenticated) {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrUnauthenticated)
			return
		}
		if idErr != nil {
			response.AbortFail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		if err != nil {
			response.AbortFail(c, http.StatusForbidden, response.ErrForbidden)
			return
		}

		c.Set(ContextKeyTarget, policy.Target{ID: id})
		c.Next()
	}
}

// BindInput decodes and validates the body declared by e. When the payload
// names a user, the rule is evaluated again with that owner.
func BindInput(e contract.Endpoint) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !e.HasBody() {
			c.Next()
			return
		}

		actor := GetActor(c)
		dst := e.Input(actor)
		if fields := validator.Bind(c, dst); fields != nil {
			code := response.ErrValidation
			if _, ok := fields["detail"]; ok && len(fields) == 1 {
				code = response.ErrInvalidPayload
			}
			response.AbortFailWithFields(c, http.StatusBadRequest, code, fields)
			return
		}

		if owned, ok := dst.(ownedInput); ok {
			target := GetTarget(c)
			target.OwnerID = owned.OwnerID()
			if err := policy.Check(e.Operation, actor, target); err != nil {
				response.AbortFail(c, http.StatusForbidden, response.ErrForbidden)
				return
			}
			c.Set(ContextKeyTarget, target)
		}

		c.Set(ContextKeyInput, dst)
		c.Next()
	}
}

// ─── Context accessors ─────────────────────────────────────────────────

// GetUser returns the signed-in user, or nil.
func GetUser(c *gin.Context) *model.User {
	val, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil
	}
	user, ok := val.(*model.User)
	if !ok {
		return nil
	}
	return user
}

// GetActor returns the acting identity, or nil for anonymous requests.
func GetActor(c *gin.Context) *policy.Actor {
	return policy.ActorFor(GetUser(c))
}

// GetToken returns the raw session token sent with the request.
func GetToken(c *gin.Context) string {
	return c.GetString(ContextKeyToken)
}

// GetTarget returns the target resolved by Authorize.
func GetTarget(c *gin.Context) policy.Target {
	val, _ := c.Get(ContextKeyTarget)
	target, _ := val.(policy.Target)
	return target
}

// GetInput returns the body decoded by BindInput.
func GetInput[T any](c *gin.Context) (*T, bool) {
	val, exists := c.Get(ContextKeyInput)
	if !exists {
		return nil, false
	}
	input, ok := val.(*T)
	return input, ok
}

// extractToken reads the session cookie, falling back to a bearer token for
// non-browser clients.
func extractToken(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// pathID parses the :id parameter. Routes without one yield 0.
func pathID(c *gin.Context) (int, error) {
	raw := c.Param("id")
	if raw == "" {
		return 0, nil
	}
	// Ids are int4 columns.
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return int(id), nil
}
