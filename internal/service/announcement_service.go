package service

import (
	"context"

	"github.com/senshi-dojo/dojo-backend/internal/model"
	"github.com/senshi-dojo/dojo-backend/internal/repository"
)

type AnnouncementService struct {
	repo repository.AnnouncementRepository
}

func NewAnnouncementService(repo repository.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{repo: repo}
}

// List returns announcements newest first.
func (s *AnnouncementService) List(ctx context.Context) ([]model.Announcement, error) {
	return s.repo.List(ctx)
}

// Create posts an announcement. A missing author defaults to actorID.
func (s *AnnouncementService) Create(ctx context.Context, req *model.CreateAnnouncementRequest, actorID int) (*model.Announcement, error) {
	authorID := req.AuthorID
	if authorID == 0 {
		authorID = actorID
	}
	a := &model.Announcement{
		Title:    req.Title,
		Body:     req.Body,
		AuthorID: authorID,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AnnouncementService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
