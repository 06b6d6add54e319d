package location

import (
	"context"
	"strings"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/dentradar/dentradar-api/internal/model"
	"github.com/dentradar/dentradar-api/internal/places"
	"github.com/dentradar/dentradar-api/internal/repository"
	apperrors "github.com/dentradar/dentradar-api/pkg/errors"
)

const maxSuggestions = 8

type Service struct {
	repo   repository.LocationRepository
	places *places.Client
	cache  *cache.Cache
	logger zerolog.Logger
}

func NewService(repo repository.LocationRepository, placesClient *places.Client, c *cache.Cache, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		places: placesClient,
		cache:  c,
		logger: logger,
	}
}

// Autocomplete suggests localities for the query, optionally constrained to a
// ZIP code. Local rows win; the places API fills in only when the table has
// nothing, and results are cached either way.
func (s *Service) Autocomplete(ctx context.Context, query, zip string) ([]*model.LocationSuggestion, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewBadRequest("query is required", nil)
	}

	cacheKey := strings.ToLower(query) + "|" + zip
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.([]*model.LocationSuggestion), nil
	}

	suggestions := []*model.LocationSuggestion{}

	locations, searchErr := s.repo.Search(ctx, query, zip, maxSuggestions)
	if searchErr != nil {
		s.logger.Warn().Err(searchErr).Msg("location search failed")
	}
	for _, loc := range locations {
		suggestions = append(suggestions, &model.LocationSuggestion{
			Description: loc.City + ", " + loc.State + " " + loc.ZipCode,
			ZipCode:     loc.ZipCode,
			Lat:         loc.Lat,
			Lng:         loc.Lng,
			Source:      "local",
		})
	}

	if len(suggestions) == 0 && s.places.Configured() {
		input := query
		if zip != "" {
			input += " " + zip
		}
		predictions, err := s.places.Autocomplete(ctx, input)
		if err != nil {
			s.logger.Warn().Err(err).Msg("places autocomplete failed")
		}
		for i, p := range predictions {
			if i >= maxSuggestions {
				break
			}
			suggestions = append(suggestions, &model.LocationSuggestion{
				Description: p.Description,
				Source:      "places",
			})
		}
	}

	// An empty result that traces back to a failed local search is transient;
	// caching it would pin "no suggestions" for the full TTL.
	if searchErr == nil || len(suggestions) > 0 {
		s.cache.SetDefault(cacheKey, suggestions)
	}
	return suggestions, nil
}
