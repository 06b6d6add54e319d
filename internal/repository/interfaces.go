package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dentradar/dentradar-api/internal/model"
)

// All repository interfaces in one file
type (
	ProviderRepository interface {
		Create(ctx context.Context, provider *model.Provider) error
		Get(ctx context.Context, id uuid.UUID) (*model.Provider, error)
		GetByPhone(ctx context.Context, phone string) (*model.Provider, error)
		GetByPlaceID(ctx context.Context, placeID string) (*model.Provider, error)
		GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Provider, error)
		// SearchPhoneSuffix returns the first provider whose phone_number ends
		// with the given suffix, case-insensitively.
		SearchPhoneSuffix(ctx context.Context, suffix string) (*model.Provider, error)
		// SearchAny runs a single OR query across id, place_id and phone_number
		// (exact and substring) and returns the first hit.
		SearchAny(ctx context.Context, term string) (*model.Provider, error)
		Update(ctx context.Context, provider *model.Provider) error
		// UpsertByPlaceID inserts an externally-sourced provider, updating the
		// existing row when the place_id is already present.
		UpsertByPlaceID(ctx context.Context, provider *model.Provider) error
		Delete(ctx context.Context, id uuid.UUID) error
	}

	PersonRepository interface {
		Create(ctx context.Context, person *model.Person) error
		Get(ctx context.Context, id uuid.UUID) (*model.Person, error)
		Update(ctx context.Context, person *model.Person) error
		Delete(ctx context.Context, id uuid.UUID) error
		ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*model.Person, error)
		// GetByProviderAndEmail finds a person under the provider with the given
		// email, optionally excluding one record (for update uniqueness checks).
		GetByProviderAndEmail(ctx context.Context, providerID uuid.UUID, email string, excludeID *uuid.UUID) (*model.Person, error)
	}

	BookingRepository interface {
		Create(ctx context.Context, booking *model.Booking) error
		Get(ctx context.Context, id uuid.UUID) (*model.Booking, error)
		List(ctx context.Context, filters *model.BookingFilters) ([]*model.Booking, error)
		// FindPending returns the pending booking for the (email, provider)
		// pair, if one exists.
		FindPending(ctx context.Context, email string, providerID uuid.UUID) (*model.Booking, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) error
	}

	ProfileRepository interface {
		Create(ctx context.Context, profile *model.Profile) error
		Get(ctx context.Context, id uuid.UUID) (*model.Profile, error)
		GetByPhone(ctx context.Context, phone string) (*model.Profile, error)
		GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
		Update(ctx context.Context, profile *model.Profile) error
		SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
	}

	LocationRepository interface {
		// Search matches city or ZIP prefix, optionally constrained to an exact
		// ZIP code, newest entries first.
		Search(ctx context.Context, query, zip string, limit int) ([]*model.Location, error)
	}

	OutboxRepository interface {
		Create(ctx context.Context, event *model.OutboxEvent) error
		// ClaimPendingEvents marks a batch of pending events PROCESSING and
		// returns them; a row is claimed by at most one drainer.
		ClaimPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, errMsg *string) error
		DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error)
	}
)
