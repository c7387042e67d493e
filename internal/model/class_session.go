package model

import (
	"fmt"
	"time"
)

// DefaultCapacity is used when a session is created without a capacity.
const DefaultCapacity = 20

// ClassSession is a scheduled training session (not a login session).
type ClassSession struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Instructor  string    `json:"instructor"`
	Capacity    int       `json:"capacity"`
	Description *string   `json:"description"`
}

// CreateClassSessionRequest is the payload for scheduling a session.
type CreateClassSessionRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=200"`
	Date        string  `json:"date" binding:"required,isodate"`
	StartTime   string  `json:"startTime" binding:"required,datetime=15:04"`
	EndTime     string  `json:"endTime" binding:"required,datetime=15:04"`
	Instructor  string  `json:"instructor" binding:"required,min=1,max=100"`
	Capacity    *int    `json:"capacity" binding:"omitempty,min=1,max=1000"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// ClassSession converts the request into an unsaved entity.
func (r *CreateClassSessionRequest) ClassSession() (*ClassSession, error) {
	date, err := ParseSessionDate(r.Date)
	if err != nil {
		return nil, err
	}
	capacity := DefaultCapacity
	if r.Capacity != nil {
		capacity = *r.Capacity
	}
	return &ClassSession{
		Title:       r.Title,
		Date:        date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Instructor:  r.Instructor,
		Capacity:    capacity,
		Description: r.Description,
	}, nil
}

// ParseSessionDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
// Calendar dates are interpreted as midnight UTC.
func ParseSessionDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
