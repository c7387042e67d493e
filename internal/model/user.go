package model

import "time"

// User is a club member or administrator.
type User struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	Phone          *string   `json:"phone"`
	ProfilePicture *string   `json:"profilePicture"`
	Verified       bool      `json:"verified"`
	AcceptedTerms  bool      `json:"acceptedTerms"`
	JoinedAt       time.Time `json:"joinedAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserSummary is the short projection returned by register and login.
type UserSummary struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Summary returns the short projection of u.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email, Role: u.Role}
}

// RegisterRequest is the payload for self-registration.
// Role and verified are never accepted here.
type RegisterRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=100"`
	Email          string  `json:"email" binding:"required,email,max=255"`
	Password       string  `json:"password" binding:"required,min=6,bcryptlen"`
	Phone          *string `json:"phone" binding:"omitempty,max=32"`
	ProfilePicture *string `json:"profilePicture" binding:"omitempty,max=5242880"`
	AcceptedTerms  bool    `json:"acceptedTerms"`
}

// LoginRequest is the payload for authentication. Username carries the email.
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}

// ChangePasswordRequest is the payload for changing the caller's own password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required,max=128"`
	NewPassword string `json:"newPassword" binding:"required,min=6,bcryptlen"`
}

// UserPatch is a partial update; nil fields are left unchanged.
// PasswordHash is filled by the service layer, never from a payload.
type UserPatch struct {
	Name           *string
	Email          *string
	PasswordHash   *string
	Phone          *string
	ProfilePicture *string
	AcceptedTerms  *bool
	Role           *Role
	Verified       *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.PasswordHash == nil && p.Phone == nil && p.ProfilePicture == nil &&
		p.AcceptedTerms == nil && p.Role == nil && p.Verified == nil
}

// UserPatcher is implemented by the update payloads.
type UserPatcher interface {
	Patch() UserPatch
}

// UpdateProfileRequest is what a member may change on their own account.
// Role, verified, email and password cannot be sent; unknown JSON keys are
// dropped by the decoder.
type UpdateProfileRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone          *string `json:"phone" binding:"omitempty,max=32"`
	ProfilePicture *string `json:"profilePicture" binding:"omitempty,max=5242880"`
	AcceptedTerms  *bool   `json:"acceptedTerms"`
}

func (r *UpdateProfileRequest) Patch() UserPatch {
	return UserPatch{
		Name:           r.Name,
		Phone:          r.Phone,
		ProfilePicture: r.ProfilePicture,
		AcceptedTerms:  r.AcceptedTerms,
	}
}

// AdminUpdateUserRequest is what an admin may change on any account.
type AdminUpdateUserRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email          *string `json:"email" binding:"omitempty,email,max=255"`
	Password       *string `json:"password" binding:"omitempty,min=6,bcryptlen"`
	Phone          *string `json:"phone" binding:"omitempty,max=32"`
	ProfilePicture *string `json:"profilePicture" binding:"omitempty,max=5242880"`
	AcceptedTerms  *bool   `json:"acceptedTerms"`
	Role           *Role   `json:"role" binding:"omitempty,oneof=admin student"`
	Verified       *bool   `json:"verified"`
}

func (r *AdminUpdateUserRequest) Patch() UserPatch {
	return UserPatch{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		ProfilePicture: r.ProfilePicture,
		AcceptedTerms:  r.AcceptedTerms,
		Role:           r.Role,
		Verified:       r.Verified,
	}
}
