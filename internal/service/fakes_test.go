package service

import (
	"context"
	"sync"
	"time"

	"github.com/senshi-dojo/dojo-backend/internal/config"
	"github.com/senshi-dojo/dojo-backend/internal/model"
	"github.com/senshi-dojo/dojo-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		BcryptCost:    bcrypt.MinCost,
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
	}
}

type fakeUserRepo struct {
	mu        sync.Mutex
	nextID    int
	users     map[int]*model.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]*model.User{}}
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.User{}
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.nextID++
	u.ID = r.nextID
	u.JoinedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, id int, p model.UserPatch) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if p.Email != nil {
		for _, other := range r.users {
			if other.ID != id && other.Email == *p.Email {
				return nil, repository.ErrDuplicateEmail
			}
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
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id int, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]int{}}
}

func (r *fakeSessionRepo) Save(_ context.Context, sid string, userID int, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sid] = userID
	return nil
}

func (r *fakeSessionRepo) Lookup(_ context.Context, sid string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.sessions[sid]
	if !ok {
		return 0, repository.ErrNotFound
	}
	return id, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, sid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sid)
	return nil
}

func (r *fakeSessionRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

type fakeClassSessionRepo struct {
	created []model.ClassSession
}

func (r *fakeClassSessionRepo) List(context.Context) ([]model.ClassSession, error) {
	return r.created, nil
}

func (r *fakeClassSessionRepo) Create(_ context.Context, s *model.ClassSession) error {
	s.ID = len(r.created) + 1
	r.created = append(r.created, *s)
	return nil
}

func (r *fakeClassSessionRepo) Delete(context.Context, int) error { return repository.ErrNotFound }

type fakeAnnouncementRepo struct {
	created []model.Announcement
}

func (r *fakeAnnouncementRepo) List(context.Context) ([]model.Announcement, error) {
	return r.created, nil
}

func (r *fakeAnnouncementRepo) Create(_ context.Context, a *model.Announcement) error {
	a.ID = len(r.created) + 1
	a.CreatedAt = time.Now()
	r.created = append(r.created, *a)
	return nil
}

func (r *fakeAnnouncementRepo) Delete(context.Context, int) error { return nil }
