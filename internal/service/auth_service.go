package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/senshi-dojo/dojo-backend/internal/config"
	"github.com/senshi-dojo/dojo-backend/internal/model"
	"github.com/senshi-dojo/dojo-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWrongPassword      = errors.New("current password does not match")
	ErrPasswordTooShort   = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrPasswordTooLong    = fmt.Errorf("password must be at most %d bytes", MaxPasswordBytes)
	ErrNoSession          = errors.New("no active session")
)

// Password length bounds for registration and password changes. bcrypt
// only hashes the first 72 bytes and refuses anything longer.
const (
	MinPasswordLength = 6
	MaxPasswordBytes  = 72
)

// checkPasswordLength reports ErrPasswordTooShort or ErrPasswordTooLong.
func checkPasswordLength(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

// SessionClaims is the signed content of the session cookie. The JWT ID is
// the server-side session id; the token is only honoured while that session
// still exists in the session store.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// AuthService handles credentials, password hashing and login sessions.
type AuthService struct {
	cfg       *config.Config
	users     repository.UserRepository
	sessions  repository.LoginSessionRepository
	dummyHash []byte
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, users repository.UserRepository, sessions repository.LoginSessionRepository) *AuthService {
	// Compared against when the email is unknown so both login failures cost one bcrypt run.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("dojo-timing-equaliser"), cfg.BcryptCost)
	return &AuthService{cfg: cfg, users: users, sessions: sessions, dummyHash: dummy}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash in constant time.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// NormalizeEmail lower-cases and trims an email so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a student account. Role and verified are never taken from the caller.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	return s.createUser(ctx, &model.User{
		Name:           strings.TrimSpace(req.Name),
		Email:          NormalizeEmail(req.Email),
		Role:           model.RoleStudent,
		Phone:          req.Phone,
		ProfilePicture: req.ProfilePicture,
		AcceptedTerms:  req.AcceptedTerms,
	}, req.Password)
}

// CreateAdmin creates a verified admin account. It is used for bootstrapping
// and is not reachable over HTTP.
func (s *AuthService) CreateAdmin(ctx context.Context, name, email, password string) (*model.User, error) {
	return s.createUser(ctx, &model.User{
		Name:     strings.TrimSpace(name),
		Email:    NormalizeEmail(email),
		Role:     model.RoleAdmin,
		Verified: true,
	}, password)
}

func (s *AuthService) createUser(ctx context.Context, user *model.User, password string) (*model.User, error) {
	if err := checkPasswordLength(password); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = hash

	if err := s.users.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same email.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and starts a session, returning the user and the cookie token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}

	if err := s.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, "", err
	}

	token, err := s.StartSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// StartSession registers a new server-side session for userID and returns the signed token.
func (s *AuthService) StartSession(ctx context.Context, userID int) (string, error) {
	sessionID := uuid.New().String()
	now := time.Now()

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.SessionTTL)),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	if err := s.sessions.Save(ctx, sessionID, userID, s.cfg.SessionTTL); err != nil {
		return "", err
	}
	return signed, nil
}

// parseToken validates the signature and expiry of a session token.
func (s *AuthService) parseToken(tokenStr string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.SessionSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// ResolveSession returns the user id bound to a token, or ErrNoSession.
func (s *AuthService) ResolveSession(ctx context.Context, tokenStr string) (int, error) {
	if tokenStr == "" {
		return 0, ErrNoSession
	}
	claims, err := s.parseToken(tokenStr)
	if err != nil {
		return 0, ErrNoSession
	}

	userID, err := s.sessions.Lookup(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrNoSession
		}
		return 0, err
	}
	if userID != claims.UserID {
		return 0, ErrNoSession
	}
	return userID, nil
}

// CurrentUser resolves the token to a freshly loaded user. A session whose
// user has since been deleted yields ErrNoSession.
func (s *AuthService) CurrentUser(ctx context.Context, tokenStr string) (*model.User, error) {
	userID, err := s.ResolveSession(ctx, tokenStr)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	return user, nil
}

// Logout destroys the session behind tokenStr. Unknown, expired or empty
// tokens are a no-op so repeated calls never fail.
func (s *AuthService) Logout(ctx context.Context, tokenStr string) error {
	if tokenStr == "" {
		return nil
	}
	claims, err := s.parseToken(tokenStr)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.ID)
}

// ChangePassword re-hashes the password of userID after verifying the old one.
// Other sessions of the user stay valid.
func (s *AuthService) ChangePassword(ctx context.Context, userID int, oldPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNoSession
		}
		return err
	}

	if err := s.CheckPassword(user.PasswordHash, oldPassword); err != nil {
		return ErrWrongPassword
	}
	if err := checkPasswordLength(newPassword); err != nil {
		return err
	}

	hash, err := s.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.UpdatePassword(ctx, userID, hash)
}
