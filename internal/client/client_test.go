package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/senshi-dojo/dojo-backend/internal/client"
	"github.com/senshi-dojo/dojo-backend/internal/config"
	"github.com/senshi-dojo/dojo-backend/internal/handler"
	"github.com/senshi-dojo/dojo-backend/internal/middleware"
	"github.com/senshi-dojo/dojo-backend/internal/model"
	"github.com/senshi-dojo/dojo-backend/internal/policy"
	"github.com/senshi-dojo/dojo-backend/internal/repository/memstore"
	"github.com/senshi-dojo/dojo-backend/internal/response"
	"github.com/senshi-dojo/dojo-backend/internal/router"
	"github.com/senshi-dojo/dojo-backend/internal/service"
	"github.com/senshi-dojo/dojo-backend/internal/validator"
	"golang.org/x/crypto/bcrypt"
)

type env struct {
	t      *testing.T
	store  *memstore.Store
	auth   *service.AuthService
	server *httptest.Server
}

func newEnv(t *testing.T, rateLimit int) *env {
	t.Helper()
	validator.Setup()

	cfg := &config.Config{
		GinMode:           gin.TestMode,
		BcryptCost:        bcrypt.MinCost,
		SessionSecret:     "test-secret",
		SessionTTL:        time.Hour,
		SessionCookieName: "dojo_session",
	}

	store := memstore.New()
	authService := service.NewAuthService(cfg, store.Users(), store.LoginSessions())
	handlers := &router.Handlers{
		Auth:         handler.NewAuthHandler(authService, cfg),
		Session:      handler.NewClassSessionHandler(service.NewClassSessionService(store.ClassSessions())),
		Announcement: handler.NewAnnouncementHandler(service.NewAnnouncementService(store.Announcements())),
		Attendance:   handler.NewAttendanceHandler(service.NewAttendanceService(store.Attendance())),
		User:         handler.NewUserHandler(service.NewUserService(store.Users(), authService)),
		Contact:      handler.NewContactHandler(service.NewContactService(store.Contacts(), zerolog.Nop())),
	}

	limiter := middleware.NewRateLimiter(rateLimit, time.Minute)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(router.SetupRouter(authService, handlers, limiter, cfg, zerolog.Nop()))
	t.Cleanup(srv.Close)

	return &env{t: t, store: store, auth: authService, server: srv}
}

func (e *env) newClient() *client.Client {
	e.t.Helper()
	c, err := client.New(e.server.URL, e.server.Client())
	if err != nil {
		e.t.Fatalf("new client: %v", err)
	}
	return c
}

// seedUser inserts a user directly, bypassing registration.
func (e *env) seedUser(name, email, password string, role model.Role) model.User {
	e.t.Helper()
	hash, err := e.auth.HashPassword(password)
	if err != nil {
		e.t.Fatal(err)
	}
	u := &model.User{Name: name, Email: email, PasswordHash: hash, Role: role}
	if err := e.store.Users().Create(context.Background(), u); err != nil {
		e.t.Fatal(err)
	}
	return *u
}

// signIn seeds a user and returns a client holding their session.
func (e *env) signIn(name, email string, role model.Role) (*client.Client, model.User) {
	e.t.Helper()
	u := e.seedUser(name, email, "password123", role)
	c := e.newClient()
	if _, err := c.Login(context.Background(), email, "password123"); err != nil {
		e.t.Fatalf("login %s: %v", email, err)
	}
	return c, u
}

func expectStatus(t *testing.T, err error, status int) *client.APIError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected status %d, got success", status)
	}
	apiErr, ok := err.(*client.APIError)
	if !ok {
		t.Fatalf("expected *APIError with status %d, got %v", status, err)
	}
	if apiErr.Status != status {
		t.Fatalf("status = %d, want %d (%s)", apiErr.Status, status, apiErr.Message)
	}
	if apiErr.Undeclared {
		t.Errorf("status %d is not declared by the contract", status)
	}
	return apiErr
}

func judoBasics() model.CreateClassSessionRequest {
	capacity := 20
	return model.CreateClassSessionRequest{
		Title:      "Judo Basics",
		Date:       "2024-06-01",
		StartTime:  "18:00",
		EndTime:    "20:00",
		Instructor: "Sensei Lee",
		Capacity:   &capacity,
	}
}

func TestAdminSchedulesSession(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	admin, _ := e.signIn("Sensei Lee", "lee@dojo.test", model.RoleAdmin)

	created, err := admin.CreateSession(ctx, judoBasics())
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if created.ID <= 0 {
		t.Fatalf("server did not assign an id: %+v", created)
	}
	if created.Capacity != 20 || created.Date.Format(time.DateOnly) != "2024-06-01" {
		t.Errorf("created = %+v", created)
	}

	student, _ := e.signIn("Aiko", "aiko@dojo.test", model.RoleStudent)
	sessions, err := student.ListSessions(ctx)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != created.ID || sessions[0].Title != "Judo Basics" {
		t.Fatalf("sessions = %+v", sessions)
	}

	_, err = student.CreateSession(ctx, judoBasics())
	expectStatus(t, err, http.StatusForbidden)

	_, err = e.newClient().ListSessions(ctx)
	expectStatus(t, err, http.StatusUnauthorized)
}

func TestCreateSessionStatusCode(t *testing.T) {
	e := newEnv(t, 100)
	admin, _ := e.signIn("Sensei Lee", "lee@dojo.test", model.RoleAdmin)

	res, err := client.Do[model.ClassSession](context.Background(), admin, policy.OpCreateSession, nil, judoBasics())
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != http.StatusCreated {
		t.Errorf("status = %d, want 201", res.Status)
	}
	if res.RequestID == "" {
		t.Error("missing X-Request-ID")
	}
}

func TestSessionDefaultsAndValidation(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	admin, _ := e.signIn("Sensei Lee", "lee@dojo.test", model.RoleAdmin)

	req := judoBasics()
	req.Capacity = nil
	created, err := admin.CreateSession(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	if created.Capacity != model.DefaultCapacity {
		t.Errorf("capacity = %d, want default %d", created.Capacity, model.DefaultCapacity)
	}

	bad := judoBasics()
	bad.StartTime = "6pm"
	_, err = admin.CreateSession(ctx, bad)
	apiErr := expectStatus(t, err, http.StatusBadRequest)
	if apiErr.Code != response.ErrValidation || apiErr.Fields["startTime"] == "" {
		t.Errorf("error = %+v", apiErr)
	}
}

func TestSessionsListedByDate(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	admin, _ := e.signIn("Sensei Lee", "lee@dojo.test", model.RoleAdmin)

	for _, date := range []string{"2024-07-01", "2024-05-01", "2024-06-01"} {
		req := judoBasics()
		req.Date = date
		if _, err := admin.CreateSession(ctx, req); err != nil {
			t.Fatal(err)
		}
	}

	sessions, err := admin.ListSessions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(sessions); i++ {
		if sessions[i].Date.Before(sessions[i-1].Date) {
			t.Fatalf("sessions out of order: %v before %v", sessions[i-1].Date, sessions[i].Date)
		}
	}
}

func TestStudentCannotMarkAttendanceForOthers(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	admin, _ := e.signIn("Sensei Lee", "lee@dojo.test", model.RoleAdmin)
	a, userA := e.signIn("Aiko", "aiko@dojo.test", model.RoleStudent)
	b, userB := e.signIn("Kenji", "kenji@dojo.test", model.RoleStudent)

	session, err := admin.CreateSession(ctx, judoBasics())
	if err != nil {
		t.Fatal(err)
	}

	_, err = a.MarkAttendance(ctx, model.MarkAttendanceRequest{UserID: userB.ID, SessionID: session.ID, Status: model.AttendancePresent})
	expectStatus(t, err, http.StatusForbidden)
	if n := e.store.AttendanceCount(); n != 0 {
		t.Fatalf("forbidden request wrote %d rows", n)
	}

	own, err := a.MarkAttendance(ctx, model.MarkAttendanceRequest{UserID: userA.ID, SessionID: session.ID, Status: model.AttendancePresent})
	if err != nil {
		t.Fatalf("mark own attendance: %v", err)
	}
	if own.ID <= 0 || own.Timestamp.IsZero() {
		t.Errorf("record = %+v", own)
	}

	if _, err := admin.MarkAttendance(ctx, model.MarkAttendanceRequest{UserID: userB.ID, SessionID: session.ID, Status: model.AttendanceAbsent}); err != nil {
		t.Fatalf("admin marks for member: %v", err)
	}

	mine, err := a.ListAttendance(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 || mine[0].UserID != userA.ID {
		t.Errorf("student A sees %+v", mine)
	}
	theirs, err := b.ListAttendance(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(theirs) != 1 || theirs[0].Status != model.AttendanceAbsent {
		t.Errorf("student B sees %+v", theirs)
	}
	all, err := admin.ListAttendance(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].UserID != userB.ID {
		t.Errorf("admin sees %+v, want newest first", all)
	}

	_, err = admin.MarkAttendance(ctx, model.MarkAttendanceRequest{UserID: userA.ID, SessionID: 999, Status: model.AttendancePresent})
	apiErr := expectStatus(t, err, http.StatusNotFound)
	if apiErr.Code != response.ErrReferenceNotFound {
		t.Errorf("code = %s", apiErr.Code)
	}
}

func TestAnonymousContact(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	anon := e.newClient()

	id, err := anon.SendContact(ctx, model.CreateContactRequest{Name: "Aiko", Email: "aiko@example.com", Message: "Do you run kids classes?"})
	if err != nil {
		t.Fatalf("send contact: %v", err)
	}
	if id <= 0 || e.store.ContactCount() != 1 {
		t.Errorf("id = %d, stored = %d", id, e.store.ContactCount())
	}

	_, err = anon.SendContact(ctx, model.CreateContactRequest{Name: "Aiko", Email: "nope", Message: "hi"})
	apiErr := expectStatus(t, err, http.StatusBadRequest)
	if apiErr.Fields["email"] == "" {
		t.Errorf("fields = %v", apiErr.Fields)
	}
}

func TestVerifyUserIsVisibleToTheUser(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	admin, _ := e.signIn("Sensei Lee", "lee@dojo.test", model.RoleAdmin)

	member := e.newClient()
	reg, err := member.Register(ctx, model.RegisterRequest{Name: "Aiko", Email: "Aiko@Dojo.test", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if reg.Role != model.RoleStudent || reg.User.Verified || reg.Email != "aiko@dojo.test" {
		t.Fatalf("registered = %+v", reg)
	}

	verified, err := admin.VerifyUser(ctx, reg.ID)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !verified.Verified {
		t.Error("verify response not verified")
	}

	me, err := member.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if !me.Verified {
		t.Error("current user does not reflect verification")
	}

	_, err = admin.VerifyUser(ctx, 999)
	expectStatus(t, err, http.StatusNotFound)
}

func TestRegisterConflict(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	e.seedUser("Aiko", "aiko@dojo.test", "secret1", model.RoleStudent)

	_, err := e.newClient().Register(ctx, model.RegisterRequest{Name: "Other", Email: "AIKO@dojo.test", Password: "secret1"})
	apiErr := expectStatus(t, err, http.StatusConflict)
	if apiErr.Code != response.ErrEmailTaken {
		t.Errorf("code = %s", apiErr.Code)
	}

	_, err = e.newClient().Register(ctx, model.RegisterRequest{Name: "Short", Email: "short@dojo.test", Password: "123"})
	expectStatus(t, err, http.StatusBadRequest)
}

func TestLoginFailures(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	e.seedUser("Aiko", "aiko@dojo.test", "secret1", model.RoleStudent)

	c := e.newClient()
	_, err := c.Login(ctx, "aiko@dojo.test", "wrong-password")
	apiErr := expectStatus(t, err, http.StatusUnauthorized)
	if apiErr.Code != response.ErrInvalidCredentials {
		t.Errorf("code = %s", apiErr.Code)
	}
	_, err = c.Login(ctx, "ghost@dojo.test", "secret1")
	expectStatus(t, err, http.StatusUnauthorized)

	// No session was established by the failed attempts.
	_, err = c.CurrentUser(ctx)
	expectStatus(t, err, http.StatusUnauthorized)

	res, err := c.Login(ctx, "AIKO@dojo.test", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Email != "aiko@dojo.test" || res.User.Name != "Aiko" {
		t.Errorf("login result = %+v", res)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	c, _ := e.signIn("Aiko", "aiko@dojo.test", model.RoleStudent)

	if _, err := c.CurrentUser(ctx); err != nil {
		t.Fatalf("current user: %v", err)
	}
	if err := c.Logout(ctx); err != nil {
		t.Fatalf("first logout: %v", err)
	}
	if err := c.Logout(ctx); err != nil {
		t.Fatalf("second logout: %v", err)
	}
	_, err := c.CurrentUser(ctx)
	expectStatus(t, err, http.StatusUnauthorized)

	if err := e.newClient().Logout(ctx); err != nil {
		t.Fatalf("logout without session: %v", err)
	}
}

func TestUnauthenticatedVersusForbidden(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	student, _ := e.signIn("Aiko", "aiko@dojo.test", model.RoleStudent)

	_, err := e.newClient().ListUsers(ctx)
	expectStatus(t, err, http.StatusUnauthorized)

	_, err = student.ListUsers(ctx)
	expectStatus(t, err, http.StatusForbidden)

	err = e.newClient().DeleteUser(ctx, 1)
	expectStatus(t, err, http.StatusUnauthorized)

	err = student.DeleteUser(ctx, 1)
	expectStatus(t, err, http.StatusForbidden)
}

func TestUpdateUser(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	admin, _ := e.signIn("Sensei Lee", "lee@dojo.test", model.RoleAdmin)
	student, self := e.signIn("Aiko", "aiko@dojo.test", model.RoleStudent)
	_, peer := e.signIn("Kenji", "kenji@dojo.test", model.RoleStudent)

	name := "Aiko Tanaka"
	role := model.RoleAdmin
	verified := true
	updated, err := student.UpdateUser(ctx, self.ID, model.AdminUpdateUserRequest{Name: &name, Role: &role, Verified: &verified})
	if err != nil {
		t.Fatalf("self update: %v", err)
	}
	if updated.Name != name || updated.Role != model.RoleStudent || updated.Verified {
		t.Errorf("self update escalated privileges: %+v", updated)
	}

	_, err = student.UpdateUser(ctx, peer.ID, model.UpdateProfileRequest{Name: &name})
	expectStatus(t, err, http.StatusForbidden)

	promoted, err := admin.UpdateUser(ctx, peer.ID, model.AdminUpdateUserRequest{Role: &role})
	if err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if promoted.Role != model.RoleAdmin {
		t.Errorf("role = %s", promoted.Role)
	}

	taken := "AIKO@dojo.test"
	_, err = admin.UpdateUser(ctx, peer.ID, model.AdminUpdateUserRequest{Email: &taken})
	expectStatus(t, err, http.StatusConflict)

	_, err = admin.UpdateUser(ctx, 999, model.AdminUpdateUserRequest{Name: &name})
	expectStatus(t, err, http.StatusNotFound)

	password := "new-secret"
	if _, err := admin.UpdateUser(ctx, peer.ID, model.AdminUpdateUserRequest{Password: &password}); err != nil {
		t.Fatalf("admin password reset: %v", err)
	}
	if _, err := e.newClient().Login(ctx, "kenji@dojo.test", password); err != nil {
		t.Errorf("login with reset password: %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	c, _ := e.signIn("Aiko", "aiko@dojo.test", model.RoleStudent)

	err := c.ChangePassword(ctx, "not-it", "brand-new")
	apiErr := expectStatus(t, err, http.StatusUnauthorized)
	if apiErr.Code != response.ErrWrongPassword {
		t.Errorf("code = %s", apiErr.Code)
	}

	err = c.ChangePassword(ctx, "password123", "123")
	expectStatus(t, err, http.StatusBadRequest)

	if err := c.ChangePassword(ctx, "password123", "brand-new"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := c.CurrentUser(ctx); err != nil {
		t.Errorf("session lost after password change: %v", err)
	}
	if _, err := e.newClient().Login(ctx, "aiko@dojo.test", "brand-new"); err != nil {
		t.Errorf("login with new password: %v", err)
	}

	err = e.newClient().ChangePassword(ctx, "a", "b")
	expectStatus(t, err, http.StatusUnauthorized)
}

func TestDeletes(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	admin, _ := e.signIn("Sensei Lee", "lee@dojo.test", model.RoleAdmin)
	member, user := e.signIn("Aiko", "aiko@dojo.test", model.RoleStudent)

	session, err := admin.CreateSession(ctx, judoBasics())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := member.MarkAttendance(ctx, model.MarkAttendanceRequest{UserID: user.ID, SessionID: session.ID, Status: model.AttendancePresent}); err != nil {
		t.Fatal(err)
	}

	if err := admin.DeleteSession(ctx, session.ID); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if n := e.store.AttendanceCount(); n != 0 {
		t.Errorf("attendance of deleted session kept: %d", n)
	}
	expectStatus(t, admin.DeleteSession(ctx, session.ID), http.StatusNotFound)
	expectStatus(t, admin.DeleteAnnouncement(ctx, 999), http.StatusNotFound)

	if err := admin.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	expectStatus(t, admin.DeleteUser(ctx, user.ID), http.StatusNotFound)

	// The deleted member's session no longer resolves.
	_, err = member.CurrentUser(ctx)
	expectStatus(t, err, http.StatusUnauthorized)
}

func TestAnnouncements(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	admin, adminUser := e.signIn("Sensei Lee", "lee@dojo.test", model.RoleAdmin)
	student, _ := e.signIn("Aiko", "aiko@dojo.test", model.RoleStudent)

	first, err := admin.CreateAnnouncement(ctx, model.CreateAnnouncementRequest{Title: "Grading", Body: "Belt grading on Saturday."})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.AuthorID != adminUser.ID {
		t.Errorf("author = %d, want acting admin %d", first.AuthorID, adminUser.ID)
	}
	second, err := admin.CreateAnnouncement(ctx, model.CreateAnnouncementRequest{Title: "Closed", Body: "Dojo closed Monday."})
	if err != nil {
		t.Fatal(err)
	}

	list, err := student.ListAnnouncements(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].ID != second.ID {
		t.Errorf("announcements = %+v, want newest first", list)
	}

	_, err = student.CreateAnnouncement(ctx, model.CreateAnnouncementRequest{Title: "x", Body: "y"})
	expectStatus(t, err, http.StatusForbidden)

	_, err = admin.CreateAnnouncement(ctx, model.CreateAnnouncementRequest{Title: "x", Body: "y", AuthorID: 999})
	expectStatus(t, err, http.StatusNotFound)

	if err := admin.DeleteAnnouncement(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestListUsersNewestFirst(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	admin, _ := e.signIn("Sensei Lee", "lee@dojo.test", model.RoleAdmin)
	_, last := e.signIn("Aiko", "aiko@dojo.test", model.RoleStudent)

	users, err := admin.ListUsers(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 2 || users[0].ID != last.ID {
		t.Errorf("users = %+v", users)
	}
}

func TestLoginRateLimited(t *testing.T) {
	e := newEnv(t, 2)
	ctx := context.Background()
	c := e.newClient()

	for i := 0; i < 2; i++ {
		_, err := c.Login(ctx, "ghost@dojo.test", "whatever")
		expectStatus(t, err, http.StatusUnauthorized)
	}
	_, err := c.Login(ctx, "ghost@dojo.test", "whatever")
	expectStatus(t, err, http.StatusTooManyRequests)
}

func TestInvalidPathID(t *testing.T) {
	e := newEnv(t, 100)
	admin, _ := e.signIn("Sensei Lee", "lee@dojo.test", model.RoleAdmin)

	_, err := client.Do[struct{}](context.Background(), admin, policy.OpDeleteSession, map[string]string{"id": "abc"}, nil)
	apiErr := expectStatus(t, err, http.StatusBadRequest)
	if apiErr.Code != response.ErrInvalidID {
		t.Errorf("code = %s", apiErr.Code)
	}
}

func TestPasswordsBeyondBcryptLimit(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	long := strings.Repeat("a", 80)

	expectValidation := func(t *testing.T, err error, field string) {
		t.Helper()
		apiErr := expectStatus(t, err, http.StatusBadRequest)
		if apiErr.Code != response.ErrValidation {
			t.Errorf("code = %s", apiErr.Code)
		}
		if _, ok := apiErr.Fields[field]; !ok {
			t.Errorf("fields = %v, want %q", apiErr.Fields, field)
		}
	}

	_, err := e.newClient().Register(ctx, model.RegisterRequest{Name: "Aiko", Email: "aiko@dojo.test", Password: long})
	expectValidation(t, err, "password")

	member, user := e.signIn("Kenji", "kenji@dojo.test", model.RoleStudent)
	err = member.ChangePassword(ctx, "password123", long)
	expectValidation(t, err, "newPassword")

	admin, _ := e.signIn("Sensei Lee", "lee@dojo.test", model.RoleAdmin)
	_, err = admin.UpdateUser(ctx, user.ID, model.AdminUpdateUserRequest{Password: &long})
	expectValidation(t, err, "password")

	// The old password still works after the rejected change and reset.
	if _, err := e.newClient().Login(ctx, "kenji@dojo.test", "password123"); err != nil {
		t.Errorf("login after rejected changes: %v", err)
	}

	exact := strings.Repeat("a", 72)
	if _, err := e.newClient().Register(ctx, model.RegisterRequest{Name: "Aiko", Email: "aiko@dojo.test", Password: exact}); err != nil {
		t.Errorf("register with 72-byte password: %v", err)
	}
}
