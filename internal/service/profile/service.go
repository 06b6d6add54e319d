package profile

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dentradar/dentradar-api/internal/model"
	"github.com/dentradar/dentradar-api/internal/repository"
	apperrors "github.com/dentradar/dentradar-api/pkg/errors"
)

type Service struct {
	repo   repository.ProfileRepository
	logger zerolog.Logger
}

func NewService(repo repository.ProfileRepository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// EnsureForPhone returns the profile for the phone number, creating it on
// first successful authentication. The existence check is read-then-write,
// the same documented race as the other lazy-creation paths.
func (s *Service) EnsureForPhone(ctx context.Context, phone string) (*model.Profile, error) {
	if p, err := s.repo.GetByPhone(ctx, phone); err == nil {
		return p, nil
	}

	p := &model.Profile{
		UserID: uuid.New(),
		Phone:  &phone,
		Role:   model.ProfileRoleUser,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	s.logger.Info().Str("profile_id", p.ID.String()).Msg("profile created on first login")
	return p, nil
}

func (s *Service) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewNotFound("profile", err)
	}
	return p, nil
}

// SetVerified flips the verification flag; only admins reach this.
func (s *Service) SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*model.Profile, error) {
	if err := s.repo.SetVerified(ctx, id, verified); err != nil {
		return nil, apperrors.NewNotFound("profile", err)
	}
	return s.repo.Get(ctx, id)
}
