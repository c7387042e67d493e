package model

import "time"

// Announcement is a club-wide notice written by an admin.
type Announcement struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	AuthorID  int       `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateAnnouncementRequest is the payload for posting an announcement.
// AuthorID defaults to the posting admin when omitted.
type CreateAnnouncementRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=200"`
	Body     string `json:"body" binding:"required,min=1,max=5000"`
	AuthorID int    `json:"authorId" binding:"omitempty,min=1,max=2147483647"`
}
