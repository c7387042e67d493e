// Package contract is the single table of API endpoints. The router mounts
// handlers from it and the Go client builds requests from it, so a path or
// method change happens in exactly one place.
package contract

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/senshi-dojo/dojo-backend/internal/model"
	"github.com/senshi-dojo/dojo-backend/internal/policy"
)

// ErrMissingParam is returned by BuildPath when a path parameter has no value.
var ErrMissingParam = errors.New("missing path parameter")

// Endpoint describes one operation on the wire.
type Endpoint struct {
	Operation policy.Operation
	Method    string
	Path      string
	// Input returns a fresh request body for the given actor, or nil when
	// the endpoint takes no body.
	Input func(a *policy.Actor) any
	// Responses lists the statuses the endpoint can return, besides the
	// common ones every endpoint may produce.
	Responses map[int]string
}

// HasBody reports whether the endpoint decodes a JSON body.
func (e Endpoint) HasBody() bool {
	return e.Input != nil
}

// HasID reports whether the path carries an :id parameter.
func (e Endpoint) HasID() bool {
	return strings.Contains(e.Path, "/:id")
}

// Declares reports whether status is an expected outcome of the endpoint.
func (e Endpoint) Declares(status int) bool {
	if _, ok := e.Responses[status]; ok {
		return true
	}
	_, ok := CommonResponses[status]
	return ok
}

// CommonResponses can come from any endpoint.
var CommonResponses = map[int]string{
	http.StatusTooManyRequests:     "rate limited",
	http.StatusInternalServerError: "internal error",
}

func input[T any](*policy.Actor) any { return new(T) }

// userPatchInput picks the update payload by privilege: members can only
// send profile fields, admins may also change role, email and verification.
func userPatchInput(a *policy.Actor) any {
	if a.IsAdmin() {
		return new(model.AdminUpdateUserRequest)
	}
	return new(model.UpdateProfileRequest)
}

// Endpoints is the API surface.
var Endpoints = []Endpoint{
	// ─── Auth ───────────────────────────────────────────────
	{
		Operation: policy.OpRegister, Method: http.MethodPost, Path: "/api/register",
		Input: input[model.RegisterRequest],
		Responses: map[int]string{
			http.StatusCreated:    "account created and signed in",
			http.StatusBadRequest: "invalid payload",
			http.StatusConflict:   "email already registered",
		},
	},
	{
		Operation: policy.OpLogin, Method: http.MethodPost, Path: "/api/login",
		Input: input[model.LoginRequest],
		Responses: map[int]string{
			http.StatusOK:           "signed in",
			http.StatusBadRequest:   "invalid payload",
			http.StatusUnauthorized: "invalid credentials",
		},
	},
	{
		Operation: policy.OpLogout, Method: http.MethodPost, Path: "/api/logout",
		Responses: map[int]string{
			http.StatusOK: "signed out",
		},
	},
	{
		Operation: policy.OpCurrentUser, Method: http.MethodGet, Path: "/api/user",
		Responses: map[int]string{
			http.StatusOK:           "current user",
			http.StatusUnauthorized: "not signed in",
		},
	},
	{
		Operation: policy.OpChangePassword, Method: http.MethodPost, Path: "/api/change-password",
		Input: input[model.ChangePasswordRequest],
		Responses: map[int]string{
			http.StatusOK:           "password changed",
			http.StatusBadRequest:   "invalid payload",
			http.StatusUnauthorized: "not signed in or wrong old password",
		},
	},

	// ─── Class sessions ─────────────────────────────────────
	{
		Operation: policy.OpListSessions, Method: http.MethodGet, Path: "/api/sessions",
		Responses: map[int]string{
			http.StatusOK:           "sessions by date",
			http.StatusUnauthorized: "not signed in",
		},
	},
	{
		Operation: policy.OpCreateSession, Method: http.MethodPost, Path: "/api/sessions",
		Input: input[model.CreateClassSessionRequest],
		Responses: map[int]string{
			http.StatusCreated:      "session scheduled",
			http.StatusBadRequest:   "invalid payload",
			http.StatusUnauthorized: "not signed in",
			http.StatusForbidden:    "admin only",
		},
	},
	{
		Operation: policy.OpDeleteSession, Method: http.MethodDelete, Path: "/api/sessions/:id",
		Responses: map[int]string{
			http.StatusNoContent:    "session deleted",
			http.StatusBadRequest:   "invalid id",
			http.StatusUnauthorized: "not signed in",
			http.StatusForbidden:    "admin only",
			http.StatusNotFound:     "no such session",
		},
	},

	// ─── Announcements ──────────────────────────────────────
	{
		Operation: policy.OpListAnnouncements, Method: http.MethodGet, Path: "/api/announcements",
		Responses: map[int]string{
			http.StatusOK:           "announcements, newest first",
			http.StatusUnauthorized: "not signed in",
		},
	},
	{
		Operation: policy.OpCreateAnnouncement, Method: http.MethodPost, Path: "/api/announcements",
		Input: input[model.CreateAnnouncementRequest],
		Responses: map[int]string{
			http.StatusCreated:      "announcement posted",
			http.StatusBadRequest:   "invalid payload",
			http.StatusUnauthorized: "not signed in",
			http.StatusForbidden:    "admin only",
			http.StatusNotFound:     "author does not exist",
		},
	},
	{
		Operation: policy.OpDeleteAnnouncement, Method: http.MethodDelete, Path: "/api/announcements/:id",
		Responses: map[int]string{
			http.StatusNoContent:    "announcement deleted",
			http.StatusBadRequest:   "invalid id",
			http.StatusUnauthorized: "not signed in",
			http.StatusForbidden:    "admin only",
			http.StatusNotFound:     "no such announcement",
		},
	},

	// ─── Attendance ─────────────────────────────────────────
	{
		Operation: policy.OpListAttendance, Method: http.MethodGet, Path: "/api/attendance",
		Responses: map[int]string{
			http.StatusOK:           "attendance visible to the caller",
			http.StatusUnauthorized: "not signed in",
		},
	},
	{
		Operation: policy.OpMarkAttendance, Method: http.MethodPost, Path: "/api/attendance",
		Input: input[model.MarkAttendanceRequest],
		Responses: map[int]string{
			http.StatusCreated:      "attendance recorded",
			http.StatusBadRequest:   "invalid payload",
			http.StatusUnauthorized: "not signed in",
			http.StatusForbidden:    "marking for another member",
			http.StatusNotFound:     "user or session does not exist",
		},
	},

	// ─── Users & administration ─────────────────────────────
	{
		Operation: policy.OpListUsers, Method: http.MethodGet, Path: "/api/admin/users",
		Responses: map[int]string{
			http.StatusOK:           "all users",
			http.StatusUnauthorized: "not signed in",
			http.StatusForbidden:    "admin only",
		},
	},
	{
		Operation: policy.OpUpdateUser, Method: http.MethodPatch, Path: "/api/users/:id",
		Input: userPatchInput,
		Responses: map[int]string{
			http.StatusOK:           "updated user",
			http.StatusBadRequest:   "invalid id or payload",
			http.StatusUnauthorized: "not signed in",
			http.StatusForbidden:    "not your account",
			http.StatusNotFound:     "no such user",
			http.StatusConflict:     "email already registered",
		},
	},
	{
		Operation: policy.OpDeleteUser, Method: http.MethodDelete, Path: "/api/admin/users/:id",
		Responses: map[int]string{
			http.StatusNoContent:    "user deleted",
			http.StatusBadRequest:   "invalid id",
			http.StatusUnauthorized: "not signed in",
			http.StatusForbidden:    "admin only",
			http.StatusNotFound:     "no such user",
		},
	},
	{
		Operation: policy.OpVerifyUser, Method: http.MethodPost, Path: "/api/admin/verify-user/:id",
		Responses: map[int]string{
			http.StatusOK:           "verified user",
			http.StatusBadRequest:   "invalid id",
			http.StatusUnauthorized: "not signed in",
			http.StatusForbidden:    "admin only",
			http.StatusNotFound:     "no such user",
		},
	},

	// ─── Public ─────────────────────────────────────────────
	{
		Operation: policy.OpCreateContact, Method: http.MethodPost, Path: "/api/contact",
		Input: input[model.CreateContactRequest],
		Responses: map[int]string{
			http.StatusCreated:    "message received",
			http.StatusBadRequest: "invalid payload",
		},
	},
}

// Lookup returns the endpoint for op.
func Lookup(op policy.Operation) (Endpoint, bool) {
	for _, e := range Endpoints {
		if e.Operation == op {
			return e, true
		}
	}
	return Endpoint{}, false
}

// MustLookup is Lookup for operations known at compile time.
func MustLookup(op policy.Operation) Endpoint {
	e, ok := Lookup(op)
	if !ok {
		panic(fmt.Sprintf("contract: unknown operation %q", op))
	}
	return e
}

// FillPath substitutes ":name" segments of pattern from params. Segments
// without a value are left as they are.
func FillPath(pattern string, params map[string]string) string {
	segments := strings.Split(pattern, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		if v, ok := params[seg[1:]]; ok && v != "" {
			segments[i] = url.PathEscape(v)
		}
	}
	return strings.Join(segments, "/")
}

// BuildPath is FillPath that refuses to leave a placeholder of pattern
// without a value.
func BuildPath(pattern string, params map[string]string) (string, error) {
	for _, seg := range strings.Split(pattern, "/") {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		if params[seg[1:]] == "" {
			return "", fmt.Errorf("%w %q in %s", ErrMissingParam, seg[1:], pattern)
		}
	}
	return FillPath(pattern, params), nil
}
