package provider

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dentradar/dentradar-api/internal/model"
	"github.com/dentradar/dentradar-api/internal/repository"
	"github.com/dentradar/dentradar-api/internal/service/event"
	"github.com/dentradar/dentradar-api/internal/validation"
	apperrors "github.com/dentradar/dentradar-api/pkg/errors"
)

// Enricher backfills a provider record from the external places API when the
// local table has no row for a verified caller.
type Enricher interface {
	LookupByPhone(ctx context.Context, phone string) (*model.Provider, error)
}

type Service struct {
	repo     repository.ProviderRepository
	enricher Enricher
	events   event.Emitter
	logger   zerolog.Logger
}

func NewService(repo repository.ProviderRepository, enricher Enricher, events event.Emitter, logger zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		enricher: enricher,
		events:   events,
		logger:   logger,
	}
}

// digits strips everything but digit characters.
func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// resolveByPhone finds the caller's own provider row by exact phone match,
// then by the last-10-digit suffix (stored numbers may carry country codes or
// formatting).
func (s *Service) resolveByPhone(ctx context.Context, phone string) (*model.Provider, error) {
	if p, err := s.repo.GetByPhone(ctx, phone); err == nil {
		return p, nil
	}

	d := digits(phone)
	if len(d) >= phoneSuffixLen {
		if p, err := s.repo.SearchPhoneSuffix(ctx, d[len(d)-phoneSuffixLen:]); err == nil {
			return p, nil
		}
	}
	return nil, apperrors.NewNotFound("provider", nil)
}

// GetForCaller returns the verified caller's provider record, falling back to
// external enrichment when no local row exists. Enrichment is best-effort;
// its persistence failures never block the read path.
func (s *Service) GetForCaller(ctx context.Context, callerPhone string) (*model.Provider, error) {
	if p, err := s.resolveByPhone(ctx, callerPhone); err == nil {
		return p, nil
	}

	p, err := s.enricher.LookupByPhone(ctx, callerPhone)
	if err != nil {
		s.logger.Warn().Err(err).Str("phone", validation.MaskPhone(callerPhone)).Msg("enrichment lookup failed")
		return nil, apperrors.NewNotFound("provider", err)
	}
	return p, nil
}

// OwnProvider resolves the caller's provider without the enrichment fallback,
// for mutating operations that must target an existing row.
func (s *Service) OwnProvider(ctx context.Context, callerPhone string) (*model.Provider, error) {
	return s.resolveByPhone(ctx, callerPhone)
}

// UpdateProfile applies a provider's self-service edits to their own record.
func (s *Service) UpdateProfile(ctx context.Context, callerPhone string, req *model.UpdateProviderProfileRequest) (*model.Provider, error) {
	p, err := s.resolveByPhone(ctx, callerPhone)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		p.Address = strings.TrimSpace(*req.Address)
	}
	if req.PhoneNumber != nil && strings.TrimSpace(*req.PhoneNumber) != "" {
		phone := strings.TrimSpace(*req.PhoneNumber)
		p.PhoneNumber = &phone
	}
	if req.Website != nil {
		website := strings.TrimSpace(*req.Website)
		if website == "" {
			p.Website = nil
		} else {
			p.Website = &website
		}
	}
	if req.Tags != nil {
		p.Tags = req.Tags
	}
	if req.Photos != nil {
		p.Photos = req.Photos
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	if err := s.events.Emit(ctx, model.EventProviderUpdated, p); err != nil {
		s.logger.Warn().Err(err).Msg("failed to emit provider.updated")
	}
	return p, nil
}
