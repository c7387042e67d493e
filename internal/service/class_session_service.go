package service

import (
	"context"

	"github.com/senshi-dojo/dojo-backend/internal/model"
	"github.com/senshi-dojo/dojo-backend/internal/repository"
)

// ClassSessionService handles the training schedule.
type ClassSessionService struct {
	repo repository.ClassSessionRepository
}

// NewClassSessionService creates a new ClassSessionService.
func NewClassSessionService(repo repository.ClassSessionRepository) *ClassSessionService {
	return &ClassSessionService{repo: repo}
}

// List returns sessions in ascending date order.
func (s *ClassSessionService) List(ctx context.Context) ([]model.ClassSession, error) {
	return s.repo.List(ctx)
}

func (s *ClassSessionService) Create(ctx context.Context, req *model.CreateClassSessionRequest) (*model.ClassSession, error) {
	session, err := req.ClassSession()
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *ClassSessionService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
