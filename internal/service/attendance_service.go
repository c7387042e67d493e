package service

import (
	"context"

	"github.com/senshi-dojo/dojo-backend/internal/model"
	"github.com/senshi-dojo/dojo-backend/internal/repository"
)

type AttendanceService struct {
	repo repository.AttendanceRepository
}

func NewAttendanceService(repo repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{repo: repo}
}

// List returns records newest first, limited to userID when non-nil.
func (s *AttendanceService) List(ctx context.Context, userID *int) ([]model.Attendance, error) {
	return s.repo.List(ctx, userID)
}

// Mark records attendance. Ownership is checked by the caller's policy.
func (s *AttendanceService) Mark(ctx context.Context, req *model.MarkAttendanceRequest) (*model.Attendance, error) {
	record := &model.Attendance{
		UserID:    req.UserID,
		SessionID: req.SessionID,
		Status:    req.Status,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}
