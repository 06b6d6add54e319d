package booking

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dentradar/dentradar-api/internal/model"
	"github.com/dentradar/dentradar-api/internal/repository"
	"github.com/dentradar/dentradar-api/internal/service/event"
	"github.com/dentradar/dentradar-api/internal/validation"
	apperrors "github.com/dentradar/dentradar-api/pkg/errors"
)

type Service struct {
	repo         repository.BookingRepository
	providerRepo repository.ProviderRepository
	events       event.Emitter
	logger       zerolog.Logger
}

func NewService(repo repository.BookingRepository, providerRepo repository.ProviderRepository, events event.Emitter, logger zerolog.Logger) *Service {
	return &Service{
		repo:         repo,
		providerRepo: providerRepo,
		events:       events,
		logger:       logger,
	}
}

// resolveProvider accepts either an internal id or an external place id.
func (s *Service) resolveProvider(ctx context.Context, identifier string) (*model.Provider, error) {
	if id, err := uuid.Parse(identifier); err == nil {
		if p, err := s.providerRepo.Get(ctx, id); err == nil {
			return p, nil
		}
	}
	if p, err := s.providerRepo.GetByPlaceID(ctx, identifier); err == nil {
		return p, nil
	}
	return nil, apperrors.NewNotFound("provider "+identifier, nil)
}

// Create validates a raw booking submission, resolves the target provider,
// rejects duplicate pending bookings and persists with status pending.
//
// The duplicate check is read-then-write without a transaction or unique
// constraint; two concurrent identical submissions can both pass it.
func (s *Service) Create(ctx context.Context, req *model.CreateBookingRequest) (*model.BookingResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)
	address := strings.TrimSpace(req.Address)
	providerID := strings.TrimSpace(req.ProviderID)

	switch {
	case name == "":
		return nil, apperrors.NewBadRequest("name is required", nil)
	case email == "":
		return nil, apperrors.NewBadRequest("email is required", nil)
	case phone == "":
		return nil, apperrors.NewBadRequest("phone is required", nil)
	case address == "":
		return nil, apperrors.NewBadRequest("address is required", nil)
	case providerID == "":
		return nil, apperrors.NewBadRequest("provider_id is required", nil)
	}

	if !validation.ValidEmail(email) {
		return nil, apperrors.NewBadRequest("invalid email format", nil)
	}
	if !validation.ValidPhone(phone) {
		return nil, apperrors.NewBadRequest("invalid phone number", nil)
	}

	booking := &model.Booking{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Address: address,
		Status:  model.BookingStatusPending,
	}

	if req.AppointmentDate != "" {
		date, err := validation.ParseFutureDate(req.AppointmentDate)
		if err != nil {
			return nil, apperrors.NewBadRequest(err.Error(), nil)
		}
		booking.AppointmentDate = &date
	}

	if req.AppointmentTime != "" {
		if !validation.ValidTime(req.AppointmentTime) {
			return nil, apperrors.NewBadRequest("invalid appointment time, expected HH:MM", nil)
		}
		t := req.AppointmentTime
		booking.AppointmentTime = &t
	}

	provider, err := s.resolveProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	booking.ProviderID = provider.ID

	if existing, err := s.repo.FindPending(ctx, email, provider.ID); err == nil && existing != nil {
		return nil, apperrors.NewConflict("Duplicate booking", nil)
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	if err := s.events.Emit(ctx, model.EventBookingCreated, booking); err != nil {
		s.logger.Warn().Err(err).Str("booking_id", booking.ID.String()).Msg("failed to emit booking.created")
	}

	return &model.BookingResponse{
		Booking:  booking,
		Provider: provider.Summary(),
	}, nil
}

// List requires at least one filter; unfiltered table scans are not served.
func (s *Service) List(ctx context.Context, filters *model.BookingFilters) ([]*model.Booking, error) {
	if filters.Email == "" && filters.ProviderID == nil {
		return nil, apperrors.NewBadRequest("email or provider_id filter is required", nil)
	}

	bookings, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return bookings, nil
}

// UpdateStatus transitions a booking's status; admin-only at the route layer.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) (*model.Booking, error) {
	if !status.Valid() {
		return nil, apperrors.NewBadRequest("invalid booking status", nil)
	}

	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, apperrors.NewNotFound("booking", err)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return s.repo.Get(ctx, id)
}
