// Package enrichment backfills provider records from the external places API
// when the local table has no row for a verified caller. Everything here is
// best-effort: persistence failures are logged and swallowed, and the mapped
// data is returned to the caller regardless.
package enrichment

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dentradar/dentradar-api/internal/model"
	"github.com/dentradar/dentradar-api/internal/places"
	"github.com/dentradar/dentradar-api/internal/repository"
	"github.com/dentradar/dentradar-api/internal/service/event"
)

const phoneSuffixLen = 10

type Service struct {
	client *places.Client
	repo   repository.ProviderRepository
	events event.Emitter
	logger zerolog.Logger
}

func NewService(client *places.Client, repo repository.ProviderRepository, events event.Emitter, logger zerolog.Logger) *Service {
	return &Service{
		client: client,
		repo:   repo,
		events: events,
		logger: logger,
	}
}

func lastDigits(s string, n int) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	d := b.String()
	if len(d) <= n {
		return d
	}
	return d[len(d)-n:]
}

// LookupByPhone searches the places API for a practice matching the caller's
// phone number, maps the best candidate into the internal schema and persists
// it best-effort. Without an API key this is a no-op returning not found.
func (s *Service) LookupByPhone(ctx context.Context, phone string) (*model.Provider, error) {
	if !s.client.Configured() {
		return nil, fmt.Errorf("places API not configured")
	}

	results, err := s.client.TextSearch(ctx, "dentist "+phone)
	if err != nil {
		return nil, fmt.Errorf("places search failed: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no places results for phone %s", phone)
	}

	suffix := lastDigits(phone, phoneSuffixLen)

	// First candidate whose phone suffix matches wins; else the first search
	// result stands in.
	var chosen *places.Place
	for i := range results {
		details, err := s.client.Details(ctx, results[i].PlaceID)
		if err != nil {
			s.logger.Debug().Err(err).Str("place_id", results[i].PlaceID).Msg("place details failed")
			continue
		}
		if suffix != "" &&
			(lastDigits(details.InternationalPhoneNumber, phoneSuffixLen) == suffix ||
				lastDigits(details.FormattedPhoneNumber, phoneSuffixLen) == suffix) {
			chosen = details
			break
		}
	}

	if chosen == nil {
		details, err := s.client.Details(ctx, results[0].PlaceID)
		if err != nil {
			chosen = &results[0]
		} else {
			chosen = details
		}
	}

	provider := mapPlace(chosen, s.client.PhotoURL)

	if err := s.repo.UpsertByPlaceID(ctx, provider); err != nil {
		// Best-effort: the mapped data is still returned to the caller.
		s.logger.Warn().Err(err).Str("place_id", chosen.PlaceID).Msg("failed to persist enriched provider")
	} else if err := s.events.Emit(ctx, model.EventProviderEnriched, provider); err != nil {
		s.logger.Warn().Err(err).Msg("failed to emit provider.enriched")
	}

	return provider, nil
}
