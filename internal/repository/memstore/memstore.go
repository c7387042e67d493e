// Package memstore is an in-memory implementation of the repository
// interfaces for tests. It mirrors the Postgres schema's behavior: unique
// emails, foreign keys with cascading deletes, and the list orderings.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/senshi-dojo/dojo-backend/internal/model"
	"github.com/senshi-dojo/dojo-backend/internal/repository"
)

// Store holds every table behind one lock.
type Store struct {
	mu            sync.Mutex
	seq           int
	now           func() time.Time
	users         map[int]model.User
	sessions      map[int]model.ClassSession
	announcements map[int]model.Announcement
	attendance    map[int]model.Attendance
	contacts      map[int]model.Contact
	logins        map[string]int
}

// New returns an empty store.
func New() *Store {
	return &Store{
		now:           time.Now,
		users:         map[int]model.User{},
		sessions:      map[int]model.ClassSession{},
		announcements: map[int]model.Announcement{},
		attendance:    map[int]model.Attendance{},
		contacts:      map[int]model.Contact{},
		logins:        map[string]int{},
	}
}

// nextID hands out ids from one sequence; callers hold mu. Timestamps
// advance with every id so orderings are deterministic.
func (s *Store) nextID() (int, time.Time) {
	s.seq++
	return s.seq, s.now().Add(time.Duration(s.seq) * time.Millisecond)
}

func (s *Store) Users() repository.UserRepository                 { return userRepo{s} }
func (s *Store) ClassSessions() repository.ClassSessionRepository { return classSessionRepo{s} }
func (s *Store) Announcements() repository.AnnouncementRepository { return announcementRepo{s} }
func (s *Store) Attendance() repository.AttendanceRepository      { return attendanceRepo{s} }
func (s *Store) Contacts() repository.ContactRepository           { return contactRepo{s} }
func (s *Store) LoginSessions() repository.LoginSessionRepository { return loginRepo{s} }

// ContactCount reports how many contact messages were stored.
func (s *Store) ContactCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contacts)
}

// AttendanceCount reports how many attendance rows exist.
func (s *Store) AttendanceCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.attendance)
}

// ─── users ─────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

func (r userRepo) GetByID(_ context.Context, id int) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r userRepo) List(context.Context) ([]model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]model.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].JoinedAt.Equal(out[j].JoinedAt) {
			return out[i].JoinedAt.After(out[j].JoinedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r userRepo) Create(_ context.Context, u *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.emailTaken(u.Email, 0) {
		return repository.ErrDuplicateEmail
	}
	u.ID, u.JoinedAt = r.s.nextID()
	r.s.users[u.ID] = *u
	return nil
}

func (r userRepo) Update(_ context.Context, id int, p model.UserPatch) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if p.Email != nil {
		if r.s.emailTaken(*p.Email, id) {
			return nil, repository.ErrDuplicateEmail
		}
		u.Email = *p.Email
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if p.Phone != nil {
		u.Phone = p.Phone
	}
	if p.ProfilePicture != nil {
		u.ProfilePicture = p.ProfilePicture
	}
	if p.AcceptedTerms != nil {
		u.AcceptedTerms = *p.AcceptedTerms
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Verified != nil {
		u.Verified = *p.Verified
	}
	r.s.users[id] = u
	return &u, nil
}

func (r userRepo) UpdatePassword(_ context.Context, id int, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.PasswordHash = hash
	r.s.users[id] = u
	return nil
}

func (r userRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.users, id)
	for aid, a := range r.s.attendance {
		if a.UserID == id {
			delete(r.s.attendance, aid)
		}
	}
	for aid, a := range r.s.announcements {
		if a.AuthorID == id {
			delete(r.s.announcements, aid)
		}
	}
	return nil
}

func (s *Store) emailTaken(email string, except int) bool {
	for _, u := range s.users {
		if u.ID != except && u.Email == email {
			return true
		}
	}
	return false
}

// ─── class sessions ────────────────────────────────────────────────────

type classSessionRepo struct{ s *Store }

func (r classSessionRepo) List(context.Context) ([]model.ClassSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]model.ClassSession, 0, len(r.s.sessions))
	for _, cs := range r.s.sessions {
		out = append(out, cs)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r classSessionRepo) Create(_ context.Context, cs *model.ClassSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cs.ID, _ = r.s.nextID()
	r.s.sessions[cs.ID] = *cs
	return nil
}

func (r classSessionRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sessions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.sessions, id)
	for aid, a := range r.s.attendance {
		if a.SessionID == id {
			delete(r.s.attendance, aid)
		}
	}
	return nil
}

// ─── announcements ─────────────────────────────────────────────────────

type announcementRepo struct{ s *Store }

func (r announcementRepo) List(context.Context) ([]model.Announcement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]model.Announcement, 0, len(r.s.announcements))
	for _, a := range r.s.announcements {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r announcementRepo) Create(_ context.Context, a *model.Announcement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[a.AuthorID]; !ok {
		return repository.ErrReferenceMissing
	}
	a.ID, a.CreatedAt = r.s.nextID()
	r.s.announcements[a.ID] = *a
	return nil
}

func (r announcementRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.announcements[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.announcements, id)
	return nil
}

// ─── attendance ────────────────────────────────────────────────────────

type attendanceRepo struct{ s *Store }

func (r attendanceRepo) List(_ context.Context, userID *int) ([]model.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]model.Attendance, 0, len(r.s.attendance))
	for _, a := range r.s.attendance {
		if userID != nil && a.UserID != *userID {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r attendanceRepo) Create(_ context.Context, a *model.Attendance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[a.UserID]; !ok {
		return repository.ErrReferenceMissing
	}
	if _, ok := r.s.sessions[a.SessionID]; !ok {
		return repository.ErrReferenceMissing
	}
	a.ID, a.Timestamp = r.s.nextID()
	r.s.attendance[a.ID] = *a
	return nil
}

// ─── contacts ──────────────────────────────────────────────────────────

type contactRepo struct{ s *Store }

func (r contactRepo) Create(_ context.Context, c *model.Contact) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID, c.CreatedAt = r.s.nextID()
	r.s.contacts[c.ID] = *c
	return nil
}

// ─── login sessions ────────────────────────────────────────────────────

// loginRepo ignores the TTL; tests end long before any session would expire.
type loginRepo struct{ s *Store }

func (r loginRepo) Save(_ context.Context, sid string, userID int, _ time.Duration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.logins[sid] = userID
	return nil
}

func (r loginRepo) Lookup(_ context.Context, sid string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id, ok := r.s.logins[sid]
	if !ok {
		return 0, repository.ErrNotFound
	}
	return id, nil
}

func (r loginRepo) Delete(_ context.Context, sid string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.logins, sid)
	return nil
}
