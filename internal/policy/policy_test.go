package policy

import (
	"errors"
	"testing"

	"github.com/senshi-dojo/dojo-backend/internal/model"
)

var (
	admin   = &Actor{ID: 1, Role: model.RoleAdmin}
	student = &Actor{ID: 7, Role: model.RoleStudent}
	other   = &Actor{ID: 8, Role: model.RoleStudent}
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name  string
		op    Operation
		actor *Actor
		tgt   Target
		want  error
	}{
		{"anonymous contact", OpCreateContact, nil, Target{}, nil},
		{"anonymous register", OpRegister, nil, Target{}, nil},
		{"anonymous logout is allowed", OpLogout, nil, Target{}, nil},
		{"anonymous me", OpCurrentUser, nil, Target{}, ErrUnauthenticated},
		{"anonymous change password", OpChangePassword, nil, Target{}, ErrUnauthenticated},

		{"anonymous list sessions", OpListSessions, nil, Target{}, ErrUnauthenticated},
		{"student list sessions", OpListSessions, student, Target{}, nil},
		{"student create session", OpCreateSession, student, Target{}, ErrForbidden},
		{"anonymous create session", OpCreateSession, nil, Target{}, ErrUnauthenticated},
		{"admin create session", OpCreateSession, admin, Target{}, nil},
		{"student delete session", OpDeleteSession, student, Target{ID: 3}, ErrForbidden},

		{"student list announcements", OpListAnnouncements, student, Target{}, nil},
		{"student create announcement", OpCreateAnnouncement, student, Target{}, ErrForbidden},
		{"admin delete announcement", OpDeleteAnnouncement, admin, Target{ID: 2}, nil},

		{"student list attendance", OpListAttendance, student, Target{}, nil},
		{"anonymous mark attendance", OpMarkAttendance, nil, Target{OwnerID: 7}, ErrUnauthenticated},
		{"student marks self", OpMarkAttendance, student, Target{OwnerID: 7}, nil},
		{"student marks other", OpMarkAttendance, student, Target{OwnerID: 8}, ErrForbidden},
		{"student before payload", OpMarkAttendance, student, Target{}, nil},
		{"admin marks other", OpMarkAttendance, admin, Target{OwnerID: 8}, nil},

		{"student lists users", OpListUsers, student, Target{}, ErrForbidden},
		{"admin lists users", OpListUsers, admin, Target{}, nil},
		{"student updates self", OpUpdateUser, student, Target{ID: 7}, nil},
		{"student updates other", OpUpdateUser, student, Target{ID: 8}, ErrForbidden},
		{"anonymous updates user", OpUpdateUser, nil, Target{ID: 7}, ErrUnauthenticated},
		{"admin updates other", OpUpdateUser, admin, Target{ID: 8}, nil},
		{"peer updates student", OpUpdateUser, other, Target{ID: 7}, ErrForbidden},
		{"student deletes self", OpDeleteUser, student, Target{ID: 7}, ErrForbidden},
		{"admin deletes user", OpDeleteUser, admin, Target{ID: 7}, nil},
		{"student verifies self", OpVerifyUser, student, Target{ID: 7}, ErrForbidden},
		{"admin verifies user", OpVerifyUser, admin, Target{ID: 7}, nil},

		{"unknown op anonymous", Operation("nope"), nil, Target{}, ErrUnauthenticated},
		{"unknown op admin", Operation("nope"), admin, Target{}, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Check(tt.op, tt.actor, tt.tgt); !errors.Is(got, tt.want) {
				t.Errorf("Check(%s) = %v, want %v", tt.op, got, tt.want)
			}
		})
	}
}

func TestUnauthenticatedAndForbiddenAreDistinct(t *testing.T) {
	if errors.Is(ErrUnauthenticated, ErrForbidden) || errors.Is(ErrForbidden, ErrUnauthenticated) {
		t.Fatal("denial kinds must not be conflated")
	}
}

func TestAttendanceScope(t *testing.T) {
	if AttendanceScope(admin) != nil {
		t.Error("admin scope should be unfiltered")
	}
	scope := AttendanceScope(student)
	if scope == nil || *scope != student.ID {
		t.Errorf("student scope = %v, want %d", scope, student.ID)
	}
}

func TestActorFor(t *testing.T) {
	if ActorFor(nil) != nil {
		t.Error("nil user must produce nil actor")
	}
	a := ActorFor(&model.User{ID: 4, Role: model.RoleAdmin})
	if a.ID != 4 || !a.IsAdmin() {
		t.Errorf("got %+v", a)
	}
	var anon *Actor
	if anon.IsAdmin() {
		t.Error("nil actor is not admin")
	}
}
