package provider

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/dentradar/dentradar-api/internal/model"
	apperrors "github.com/dentradar/dentradar-api/pkg/errors"
)

// Strategy names a resolver lookup strategy, recorded as provenance on hits
// and listed in the not-found debug payload on misses.
type Strategy string

const (
	StrategyPhoneExact  Strategy = "phone_exact"
	StrategyPlaceID     Strategy = "place_id"
	StrategyID          Strategy = "id"
	StrategyPhoneSuffix Strategy = "phone_suffix"
	StrategyAnyField    Strategy = "any_field"
)

// Resolution is a successful lookup with the strategy that produced it.
type Resolution struct {
	Provider *model.Provider `json:"provider"`
	Strategy Strategy        `json:"strategy"`
}

// digitsOnly intentionally rejects formatted numbers like "(555) 123-4567";
// those fall through to the later strategies. Callers that pass digits-only
// phone numbers hit the fast path.
var digitsOnly = regexp.MustCompile(`^\d+$`)

const phoneSuffixLen = 10

// Resolve determines which provider an opaque identifier refers to. The
// identifier may be a phone number, an external place id, or an internal id;
// strategies are applied in order and the first hit wins. A failed query at
// any step counts as a miss for that step and the chain proceeds.
func (s *Service) Resolve(ctx context.Context, identifier string) (*Resolution, error) {
	identifier = strings.TrimSpace(identifier)
	attempted := make([]Strategy, 0, 5)

	if digitsOnly.MatchString(identifier) && len(identifier) >= phoneSuffixLen {
		attempted = append(attempted, StrategyPhoneExact)
		if p, err := s.repo.GetByPhone(ctx, identifier); err == nil {
			return &Resolution{Provider: p, Strategy: StrategyPhoneExact}, nil
		}
	}

	if strings.HasPrefix(identifier, "ChIJ") {
		attempted = append(attempted, StrategyPlaceID)
		if p, err := s.repo.GetByPlaceID(ctx, identifier); err == nil {
			return &Resolution{Provider: p, Strategy: StrategyPlaceID}, nil
		}
	}

	if id, err := uuid.Parse(identifier); err == nil {
		attempted = append(attempted, StrategyID)
		if p, err := s.repo.Get(ctx, id); err == nil {
			return &Resolution{Provider: p, Strategy: StrategyID}, nil
		}
	}

	if len(identifier) >= phoneSuffixLen {
		attempted = append(attempted, StrategyPhoneSuffix)
		suffix := identifier[len(identifier)-phoneSuffixLen:]
		if p, err := s.repo.SearchPhoneSuffix(ctx, suffix); err == nil {
			return &Resolution{Provider: p, Strategy: StrategyPhoneSuffix}, nil
		}
	}

	attempted = append(attempted, StrategyAnyField)
	if p, err := s.repo.SearchAny(ctx, identifier); err == nil {
		return &Resolution{Provider: p, Strategy: StrategyAnyField}, nil
	}

	names := make([]string, len(attempted))
	for i, a := range attempted {
		names[i] = string(a)
	}

	notFound := apperrors.NewNotFound("provider", nil)
	notFound.Debug = "attempted strategies: " + strings.Join(names, ", ")
	return nil, notFound
}
