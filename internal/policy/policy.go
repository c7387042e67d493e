// Package policy holds the per-operation authorization rules. Every rule is a
// pure function of the acting identity and the request target, so the whole
// table can be exercised without HTTP or a database.
package policy

import (
	"errors"

	"github.com/senshi-dojo/dojo-backend/internal/model"
)

var (
	// ErrUnauthenticated means the request carries no valid identity.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrForbidden means the identity is valid but lacks the privilege.
	ErrForbidden = errors.New("forbidden")
)

// Operation names one logical API operation.
type Operation string

const (
	OpRegister       Operation = "auth.register"
	OpLogin          Operation = "auth.login"
	OpLogout         Operation = "auth.logout"
	OpCurrentUser    Operation = "auth.me"
	OpChangePassword Operation = "auth.changePassword"

	OpListSessions  Operation = "sessions.list"
	OpCreateSession Operation = "sessions.create"
	OpDeleteSession Operation = "sessions.delete"

	OpListAnnouncements  Operation = "announcements.list"
	OpCreateAnnouncement Operation = "announcements.create"
	OpDeleteAnnouncement Operation = "announcements.delete"

	OpListAttendance Operation = "attendance.list"
	OpMarkAttendance Operation = "attendance.mark"

	OpListUsers  Operation = "admin.users"
	OpUpdateUser Operation = "admin.updateUser"
	OpDeleteUser Operation = "admin.deleteUser"
	OpVerifyUser Operation = "admin.verifyUser"

	OpCreateContact Operation = "contact.create"
)

// Actor is the identity behind a request. A nil *Actor means anonymous.
type Actor struct {
	ID   int
	Role model.Role
}

// ActorFor builds the actor for a loaded user; nil user yields nil.
func ActorFor(u *model.User) *Actor {
	if u == nil {
		return nil
	}
	return &Actor{ID: u.ID, Role: u.Role}
}

// IsAdmin reports whether a is an authenticated admin.
func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == model.RoleAdmin
}

// Target is what a request acts on. Zero fields are absent: ID is the
// entity id from the path, OwnerID the user reference carried by the payload.
type Target struct {
	ID      int
	OwnerID int
}

// Rule decides one operation. It returns nil, ErrUnauthenticated or ErrForbidden.
type Rule func(a *Actor, t Target) error

// Public allows everyone.
func Public(*Actor, Target) error { return nil }

// Authenticated allows any identity.
func Authenticated(a *Actor, _ Target) error {
	if a == nil {
		return ErrUnauthenticated
	}
	return nil
}

// AdminOnly allows admins.
func AdminOnly(a *Actor, _ Target) error {
	if a == nil {
		return ErrUnauthenticated
	}
	if a.Role != model.RoleAdmin {
		return ErrForbidden
	}
	return nil
}

// SelfOrAdmin allows admins, and members acting on their own user id.
func SelfOrAdmin(a *Actor, t Target) error {
	if a == nil {
		return ErrUnauthenticated
	}
	if a.Role == model.RoleAdmin || a.ID == t.ID {
		return nil
	}
	return ErrForbidden
}

// OwnerOrAdmin allows admins, and members whose payload references themselves.
// Before the payload is decoded (OwnerID == 0) only authentication is checked.
func OwnerOrAdmin(a *Actor, t Target) error {
	if a == nil {
		return ErrUnauthenticated
	}
	if a.Role == model.RoleAdmin || t.OwnerID == 0 || t.OwnerID == a.ID {
		return nil
	}
	return ErrForbidden
}

// Rules is the authorization table.
var Rules = map[Operation]Rule{
	OpRegister:       Public,
	OpLogin:          Public,
	OpLogout:         Public,
	OpCurrentUser:    Authenticated,
	OpChangePassword: Authenticated,

	OpListSessions:  Authenticated,
	OpCreateSession: AdminOnly,
	OpDeleteSession: AdminOnly,

	OpListAnnouncements:  Authenticated,
	OpCreateAnnouncement: AdminOnly,
	OpDeleteAnnouncement: AdminOnly,

	OpListAttendance: Authenticated,
	OpMarkAttendance: OwnerOrAdmin,

	OpListUsers:  AdminOnly,
	OpUpdateUser: SelfOrAdmin,
	OpDeleteUser: AdminOnly,
	OpVerifyUser: AdminOnly,

	OpCreateContact: Public,
}

// Check evaluates the rule for op. Operations without a rule are denied.
func Check(op Operation, a *Actor, t Target) error {
	rule, ok := Rules[op]
	if !ok {
		if a == nil {
			return ErrUnauthenticated
		}
		return ErrForbidden
	}
	return rule(a, t)
}

// AttendanceScope returns the user filter for listing attendance:
// nil (everything) for admins, the actor's own id otherwise.
func AttendanceScope(a *Actor) *int {
	if a == nil || a.IsAdmin() {
		return nil
	}
	id := a.ID
	return &id
}
