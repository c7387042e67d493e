// Package client is a Go client for the dojo API. Requests are built from
// the contract registry, so the client and the router cannot disagree on a
// method or path.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strconv"
	"strings"

	"github.com/senshi-dojo/dojo-backend/internal/contract"
	"github.com/senshi-dojo/dojo-backend/internal/model"
	"github.com/senshi-dojo/dojo-backend/internal/policy"
	"github.com/senshi-dojo/dojo-backend/internal/response"
)

// ErrUnknownOperation is returned for operations missing from the contract.
var ErrUnknownOperation = errors.New("unknown operation")

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Code    response.ErrCode
	Message string
	Fields  map[string]string
	// Undeclared is set when the contract does not list Status for the endpoint.
	Undeclared bool
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

// StatusOf returns the HTTP status of an *APIError, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Result is a decoded successful answer.
type Result[T any] struct {
	Status    int
	Data      T
	RequestID string
}

// Client keeps the session cookie between calls.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for baseURL. A nil httpClient gets a fresh one; a
// client without a cookie jar gets one, since the session lives in a cookie.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("cookie jar: %w", err)
		}
		httpClient.Jar = jar
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}, nil
}

// Do performs op with the given path parameters and body and decodes the
// data of the envelope into T.
func Do[T any](ctx context.Context, c *Client, op policy.Operation, params map[string]string, body any) (*Result[T], error) {
	e, ok := contract.Lookup(op)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
	path, err := contract.BuildPath(e.Path, params)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if e.HasBody() {
		if body == nil {
			body = struct{}{}
		}
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, e.Method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", op, err)
	}

	result := &Result[T]{Status: resp.StatusCode, RequestID: resp.Header.Get("X-Request-ID")}
	if resp.StatusCode == http.StatusNoContent {
		return result, nil
	}

	var envelope struct {
		Data  json.RawMessage     `json:"data"`
		Error *response.ErrorBody `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		if resp.StatusCode >= 300 {
			return nil, &APIError{Status: resp.StatusCode, Message: string(raw), Undeclared: !e.Declares(resp.StatusCode)}
		}
		return nil, fmt.Errorf("decode %s response: %w", op, err)
	}

	if resp.StatusCode >= 300 || envelope.Error != nil {
		apiErr := &APIError{Status: resp.StatusCode, Undeclared: !e.Declares(resp.StatusCode)}
		if envelope.Error != nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
			apiErr.Fields = envelope.Error.Fields
		}
		return nil, apiErr
	}

	if len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		if err := json.Unmarshal(envelope.Data, &result.Data); err != nil {
			return nil, fmt.Errorf("decode %s data: %w", op, err)
		}
	}
	return result, nil
}

func idParam(id int) map[string]string {
	return map[string]string{"id": strconv.Itoa(id)}
}

func data[T any](r *Result[T], err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return r.Data, nil
}

// ─── Auth ──────────────────────────────────────────────────────────────

// AuthResult is returned by Register and Login.
type AuthResult struct {
	model.UserSummary
	User model.User `json:"user"`
}

// Register creates an account; the client is signed in afterwards.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (AuthResult, error) {
	return data(Do[AuthResult](ctx, c, policy.OpRegister, nil, req))
}

// Login signs in with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	return data(Do[AuthResult](ctx, c, policy.OpLogin, nil, model.LoginRequest{Username: email, Password: password}))
}

// Logout ends the session. Calling it without a session succeeds.
func (c *Client) Logout(ctx context.Context) error {
	_, err := Do[json.RawMessage](ctx, c, policy.OpLogout, nil, nil)
	return err
}

// CurrentUser returns the signed-in user.
func (c *Client) CurrentUser(ctx context.Context) (model.User, error) {
	return data(Do[model.User](ctx, c, policy.OpCurrentUser, nil, nil))
}

// ChangePassword replaces the password of the signed-in user.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	_, err := Do[json.RawMessage](ctx, c, policy.OpChangePassword, nil,
		model.ChangePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword})
	return err
}

// ─── Class sessions ────────────────────────────────────────────────────

func (c *Client) ListSessions(ctx context.Context) ([]model.ClassSession, error) {
	return data(Do[[]model.ClassSession](ctx, c, policy.OpListSessions, nil, nil))
}

func (c *Client) CreateSession(ctx context.Context, req model.CreateClassSessionRequest) (model.ClassSession, error) {
	return data(Do[model.ClassSession](ctx, c, policy.OpCreateSession, nil, req))
}

func (c *Client) DeleteSession(ctx context.Context, id int) error {
	_, err := Do[json.RawMessage](ctx, c, policy.OpDeleteSession, idParam(id), nil)
	return err
}

// ─── Announcements ─────────────────────────────────────────────────────

func (c *Client) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	return data(Do[[]model.Announcement](ctx, c, policy.OpListAnnouncements, nil, nil))
}

func (c *Client) CreateAnnouncement(ctx context.Context, req model.CreateAnnouncementRequest) (model.Announcement, error) {
	return data(Do[model.Announcement](ctx, c, policy.OpCreateAnnouncement, nil, req))
}

func (c *Client) DeleteAnnouncement(ctx context.Context, id int) error {
	_, err := Do[json.RawMessage](ctx, c, policy.OpDeleteAnnouncement, idParam(id), nil)
	return err
}

// ─── Attendance ────────────────────────────────────────────────────────

func (c *Client) ListAttendance(ctx context.Context) ([]model.Attendance, error) {
	return data(Do[[]model.Attendance](ctx, c, policy.OpListAttendance, nil, nil))
}

func (c *Client) MarkAttendance(ctx context.Context, req model.MarkAttendanceRequest) (model.Attendance, error) {
	return data(Do[model.Attendance](ctx, c, policy.OpMarkAttendance, nil, req))
}

// ─── Users & administration ────────────────────────────────────────────

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	return data(Do[[]model.User](ctx, c, policy.OpListUsers, nil, nil))
}

// UpdateUser sends a partial update; patch is typically an
// UpdateProfileRequest or, for admins, an AdminUpdateUserRequest.
func (c *Client) UpdateUser(ctx context.Context, id int, patch any) (model.User, error) {
	return data(Do[model.User](ctx, c, policy.OpUpdateUser, idParam(id), patch))
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	_, err := Do[json.RawMessage](ctx, c, policy.OpDeleteUser, idParam(id), nil)
	return err
}

func (c *Client) VerifyUser(ctx context.Context, id int) (model.User, error) {
	return data(Do[model.User](ctx, c, policy.OpVerifyUser, idParam(id), nil))
}

// ─── Contact ───────────────────────────────────────────────────────────

// SendContact posts the public contact form and returns the stored id.
func (c *Client) SendContact(ctx context.Context, req model.CreateContactRequest) (int, error) {
	res, err := Do[struct {
		ID int `json:"id"`
	}](ctx, c, policy.OpCreateContact, nil, req)
	if err != nil {
		return 0, err
	}
	return res.Data.ID, nil
}
