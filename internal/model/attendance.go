package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// AttendanceStatus is the closed set of attendance outcomes.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// ParseAttendanceStatus converts a raw string, rejecting unknown values.
func ParseAttendanceStatus(s string) (AttendanceStatus, error) {
	switch AttendanceStatus(s) {
	case AttendancePresent, AttendanceAbsent:
		return AttendanceStatus(s), nil
	default:
		return "", fmt.Errorf("invalid attendance status %q", s)
	}
}

func (s *AttendanceStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("status must be a string")
	}
	parsed, err := ParseAttendanceStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Attendance records one member's presence at one session. Immutable once written.
type Attendance struct {
	ID        int              `json:"id"`
	UserID    int              `json:"userId"`
	SessionID int              `json:"sessionId"`
	Status    AttendanceStatus `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
}

// MarkAttendanceRequest is the payload for recording attendance.
type MarkAttendanceRequest struct {
	UserID    int              `json:"userId" binding:"required,min=1,max=2147483647"`
	SessionID int              `json:"sessionId" binding:"required,min=1,max=2147483647"`
	Status    AttendanceStatus `json:"status" binding:"required,oneof=present absent"`
}

// OwnerID is the user the record will be written for.
func (r *MarkAttendanceRequest) OwnerID() int {
	return r.UserID
}
