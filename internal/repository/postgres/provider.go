package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dentradar/dentradar-api/internal/model"
)

const providerColumns = `
	id, place_id, user_id, name, type, address, lat, lng,
	phone_number, website, tags, photos, rating, review_count,
	business_status, opening_hours, created_at, updated_at, deleted_at
`

func (r *providerRepository) Create(ctx context.Context, provider *model.Provider) error {
	query := `
		INSERT INTO providers (
			id, place_id, user_id, name, type, address, lat, lng,
			phone_number, website, tags, photos, rating, review_count,
			business_status, opening_hours, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	if provider.ID == uuid.Nil {
		provider.ID = uuid.New()
	}
	provider.CreatedAt = time.Now()
	provider.UpdatedAt = time.Now()
	if provider.BusinessStatus == "" {
		provider.BusinessStatus = model.BusinessStatusOperational
	}

	_, err := r.db.ExecContext(ctx, query,
		provider.ID,
		provider.PlaceID,
		provider.UserID,
		provider.Name,
		provider.Type,
		provider.Address,
		provider.Lat,
		provider.Lng,
		provider.PhoneNumber,
		provider.Website,
		provider.Tags,
		provider.Photos,
		provider.Rating,
		provider.ReviewCount,
		provider.BusinessStatus,
		provider.OpeningHours,
		provider.CreatedAt,
		provider.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	return nil
}

func (r *providerRepository) Get(ctx context.Context, id uuid.UUID) (*model.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE id = $1 AND deleted_at IS NULL`

	var provider model.Provider
	if err := r.db.GetContext(ctx, &provider, query, id); err != nil {
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}
	return &provider, nil
}

func (r *providerRepository) GetByPhone(ctx context.Context, phone string) (*model.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE phone_number = $1 AND deleted_at IS NULL`

	var provider model.Provider
	if err := r.db.GetContext(ctx, &provider, query, phone); err != nil {
		return nil, fmt.Errorf("failed to get provider by phone: %w", err)
	}
	return &provider, nil
}

func (r *providerRepository) GetByPlaceID(ctx context.Context, placeID string) (*model.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE place_id = $1 AND deleted_at IS NULL`

	var provider model.Provider
	if err := r.db.GetContext(ctx, &provider, query, placeID); err != nil {
		return nil, fmt.Errorf("failed to get provider by place id: %w", err)
	}
	return &provider, nil
}

func (r *providerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE user_id = $1 AND deleted_at IS NULL`

	var provider model.Provider
	if err := r.db.GetContext(ctx, &provider, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get provider by user id: %w", err)
	}
	return &provider, nil
}

func (r *providerRepository) SearchPhoneSuffix(ctx context.Context, suffix string) (*model.Provider, error) {
	query := `
		SELECT ` + providerColumns + `
		FROM providers
		WHERE phone_number ILIKE '%' || $1 AND deleted_at IS NULL
		ORDER BY created_at ASC
		LIMIT 1
	`
	var provider model.Provider
	if err := r.db.GetContext(ctx, &provider, query, suffix); err != nil {
		return nil, fmt.Errorf("failed to search provider by phone suffix: %w", err)
	}
	return &provider, nil
}

func (r *providerRepository) SearchAny(ctx context.Context, term string) (*model.Provider, error) {
	query := `
		SELECT ` + providerColumns + `
		FROM providers
		WHERE deleted_at IS NULL
		AND (
			id::text = $1
			OR place_id = $1
			OR phone_number = $1
			OR phone_number LIKE '%' || $1 || '%'
		)
		ORDER BY created_at ASC
		LIMIT 1
	`
	var provider model.Provider
	if err := r.db.GetContext(ctx, &provider, query, term); err != nil {
		return nil, fmt.Errorf("failed to search provider: %w", err)
	}
	return &provider, nil
}

func (r *providerRepository) Update(ctx context.Context, provider *model.Provider) error {
	query := `
		UPDATE providers
		SET name = $1, type = $2, address = $3, lat = $4, lng = $5,
			phone_number = $6, website = $7, tags = $8, photos = $9,
			rating = $10, review_count = $11, business_status = $12,
			opening_hours = $13, updated_at = $14
		WHERE id = $15 AND deleted_at IS NULL
	`
	provider.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		provider.Name,
		provider.Type,
		provider.Address,
		provider.Lat,
		provider.Lng,
		provider.PhoneNumber,
		provider.Website,
		provider.Tags,
		provider.Photos,
		provider.Rating,
		provider.ReviewCount,
		provider.BusinessStatus,
		provider.OpeningHours,
		provider.UpdatedAt,
		provider.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update provider: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("provider not found")
	}
	return nil
}

func (r *providerRepository) UpsertByPlaceID(ctx context.Context, provider *model.Provider) error {
	query := `
		INSERT INTO providers (
			id, place_id, user_id, name, type, address, lat, lng,
			phone_number, website, tags, photos, rating, review_count,
			business_status, opening_hours, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (place_id) DO UPDATE SET
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			address = EXCLUDED.address,
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			phone_number = EXCLUDED.phone_number,
			website = EXCLUDED.website,
			tags = EXCLUDED.tags,
			photos = EXCLUDED.photos,
			rating = EXCLUDED.rating,
			review_count = EXCLUDED.review_count,
			business_status = EXCLUDED.business_status,
			opening_hours = EXCLUDED.opening_hours,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`
	if provider.ID == uuid.Nil {
		provider.ID = uuid.New()
	}
	provider.CreatedAt = time.Now()
	provider.UpdatedAt = time.Now()
	if provider.BusinessStatus == "" {
		provider.BusinessStatus = model.BusinessStatusOperational
	}

	row := r.db.QueryRowContext(ctx, query,
		provider.ID,
		provider.PlaceID,
		provider.UserID,
		provider.Name,
		provider.Type,
		provider.Address,
		provider.Lat,
		provider.Lng,
		provider.PhoneNumber,
		provider.Website,
		provider.Tags,
		provider.Photos,
		provider.Rating,
		provider.ReviewCount,
		provider.BusinessStatus,
		provider.OpeningHours,
		provider.CreatedAt,
		provider.UpdatedAt,
	)
	if err := row.Scan(&provider.ID, &provider.CreatedAt); err != nil {
		return fmt.Errorf("failed to upsert provider: %w", err)
	}
	return nil
}

func (r *providerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE providers SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete provider: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("provider not found")
	}
	return nil
}
