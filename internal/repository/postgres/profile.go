package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dentradar/dentradar-api/internal/model"
)

const profileColumns = `
	id, user_id, phone, email, full_name, role, is_verified,
	created_at, updated_at, deleted_at
`

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	query := `
		INSERT INTO profiles (
			id, user_id, phone, email, full_name, role, is_verified,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	profile.ID = uuid.New()
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()
	if profile.Role == "" {
		profile.Role = model.ProfileRoleUser
	}

	_, err := r.db.ExecContext(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Phone,
		profile.Email,
		profile.FullName,
		profile.Role,
		profile.IsVerified,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *profileRepository) Get(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1 AND deleted_at IS NULL`

	var profile model.Profile
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

func (r *profileRepository) GetByPhone(ctx context.Context, phone string) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE phone = $1 AND deleted_at IS NULL`

	var profile model.Profile
	if err := r.db.GetContext(ctx, &profile, query, phone); err != nil {
		return nil, fmt.Errorf("failed to get profile by phone: %w", err)
	}
	return &profile, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1 AND deleted_at IS NULL`

	var profile model.Profile
	if err := r.db.GetContext(ctx, &profile, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get profile by user id: %w", err)
	}
	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *model.Profile) error {
	query := `
		UPDATE profiles
		SET phone = $1, email = $2, full_name = $3, role = $4, is_verified = $5, updated_at = $6
		WHERE id = $7 AND deleted_at IS NULL
	`
	profile.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		profile.Phone,
		profile.Email,
		profile.FullName,
		profile.Role,
		profile.IsVerified,
		profile.UpdatedAt,
		profile.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("profile not found")
	}
	return nil
}

func (r *profileRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	query := `UPDATE profiles SET is_verified = $1, updated_at = $2 WHERE id = $3 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, verified, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to set profile verification: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("profile not found")
	}
	return nil
}
