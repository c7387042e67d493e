package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/senshi-dojo/dojo-backend/internal/model"
	"github.com/senshi-dojo/dojo-backend/internal/repository"
)

// ContactService stores public inquiries for staff follow-up.
type ContactService struct {
	repo repository.ContactRepository
	log  zerolog.Logger
}

func NewContactService(repo repository.ContactRepository, log zerolog.Logger) *ContactService {
	return &ContactService{
		repo: repo,
		log:  log.With().Str("component", "contact_service").Logger(),
	}
}

func (s *ContactService) Create(ctx context.Context, req *model.CreateContactRequest) (*model.Contact, error) {
	contact := &model.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: req.Message,
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}

	s.log.Info().
		Int("contact_id", contact.ID).
		Msg("Contact inquiry received")

	return contact, nil
}
