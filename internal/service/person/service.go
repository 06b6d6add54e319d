package person

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/dentradar/dentradar-api/internal/model"
	"github.com/dentradar/dentradar-api/internal/repository"
	"github.com/dentradar/dentradar-api/internal/validation"
	apperrors "github.com/dentradar/dentradar-api/pkg/errors"
)

// OwnerResolver derives the caller's own provider from their verified contact
// channel. Every mutating operation goes through it rather than trusting a
// client-supplied provider id.
type OwnerResolver interface {
	OwnProvider(ctx context.Context, callerPhone string) (*model.Provider, error)
}

type Service struct {
	repo         repository.PersonRepository
	providerRepo repository.ProviderRepository
	owner        OwnerResolver
}

func NewService(repo repository.PersonRepository, providerRepo repository.ProviderRepository, owner OwnerResolver) *Service {
	return &Service{
		repo:         repo,
		providerRepo: providerRepo,
		owner:        owner,
	}
}

// nullable coerces empty optional strings to NULL rather than empty string.
func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func (s *Service) List(ctx context.Context, callerPhone string) ([]*model.Person, error) {
	provider, err := s.owner.OwnProvider(ctx, callerPhone)
	if err != nil {
		return nil, err
	}

	people, err := s.repo.ListByProvider(ctx, provider.ID)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if people == nil {
		people = []*model.Person{}
	}
	return people, nil
}

func (s *Service) Create(ctx context.Context, callerPhone string, req *model.CreatePersonRequest) (*model.Person, error) {
	provider, err := s.owner.OwnProvider(ctx, callerPhone)
	if err != nil {
		return nil, err
	}
	return s.createUnder(ctx, provider.ID, req)
}

// CreateForProvider is the path-scoped variant used by the public widget; the
// provider id comes from the URL and only existence is checked.
func (s *Service) CreateForProvider(ctx context.Context, providerID uuid.UUID, req *model.CreatePersonRequest) (*model.Person, error) {
	if _, err := s.providerRepo.Get(ctx, providerID); err != nil {
		return nil, apperrors.NewNotFound("provider", err)
	}
	return s.createUnder(ctx, providerID, req)
}

func (s *Service) createUnder(ctx context.Context, providerID uuid.UUID, req *model.CreatePersonRequest) (*model.Person, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if name == "" {
		return nil, apperrors.NewBadRequest("name is required", nil)
	}
	if !validation.ValidEmail(email) {
		return nil, apperrors.NewBadRequest("invalid email format", nil)
	}

	// Same read-then-write caveat as bookings: no unique constraint backs this.
	if existing, err := s.repo.GetByProviderAndEmail(ctx, providerID, email, nil); err == nil && existing != nil {
		return nil, apperrors.NewConflict("a person with this email already exists", nil)
	}

	person := &model.Person{
		ProviderID:     providerID,
		Name:           name,
		Email:          email,
		Avatar:         nullable(req.Avatar),
		Address:        nullable(req.Address),
		Biography:      nullable(req.Biography),
		DentistryTypes: req.DentistryTypes,
		Degree:         nullable(req.Degree),
	}

	if err := s.repo.Create(ctx, person); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return person, nil
}

func (s *Service) Update(ctx context.Context, callerPhone string, req *model.UpdatePersonRequest) (*model.Person, error) {
	provider, err := s.owner.OwnProvider(ctx, callerPhone)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, apperrors.NewBadRequest("invalid person id", nil)
	}

	person, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperrors.NewNotFound("person", err)
	}
	if person.ProviderID != provider.ID {
		return nil, apperrors.Forbidden("person belongs to another provider", nil)
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		person.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !validation.ValidEmail(email) {
			return nil, apperrors.NewBadRequest("invalid email format", nil)
		}
		if existing, err := s.repo.GetByProviderAndEmail(ctx, provider.ID, email, &person.ID); err == nil && existing != nil {
			return nil, apperrors.NewConflict("a person with this email already exists", nil)
		}
		person.Email = email
	}
	if req.Avatar != nil {
		person.Avatar = nullable(*req.Avatar)
	}
	if req.Address != nil {
		person.Address = nullable(*req.Address)
	}
	if req.Biography != nil {
		person.Biography = nullable(*req.Biography)
	}
	if req.DentistryTypes != nil {
		person.DentistryTypes = *req.DentistryTypes
	}
	if req.Degree != nil {
		person.Degree = nullable(*req.Degree)
	}

	if err := s.repo.Update(ctx, person); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return person, nil
}

// Delete removes a person after the ownership check and returns the deleted
// person's name for the confirmation message.
func (s *Service) Delete(ctx context.Context, callerPhone string, id uuid.UUID) (string, error) {
	provider, err := s.owner.OwnProvider(ctx, callerPhone)
	if err != nil {
		return "", err
	}

	person, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", apperrors.NewNotFound("person", err)
	}
	if person.ProviderID != provider.ID {
		return "", apperrors.Forbidden("person belongs to another provider", nil)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return "", apperrors.NewInternal(err)
	}
	return person.Name, nil
}
