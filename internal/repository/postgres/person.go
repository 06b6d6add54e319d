package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dentradar/dentradar-api/internal/model"
)

const personColumns = `
	id, provider_id, name, email, avatar, address, biography,
	dentistry_types, degree, created_at, updated_at, deleted_at
`

func (r *personRepository) Create(ctx context.Context, person *model.Person) error {
	query := `
		INSERT INTO people (
			id, provider_id, name, email, avatar, address, biography,
			dentistry_types, degree, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	person.ID = uuid.New()
	person.CreatedAt = time.Now()
	person.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		person.ID,
		person.ProviderID,
		person.Name,
		person.Email,
		person.Avatar,
		person.Address,
		person.Biography,
		person.DentistryTypes,
		person.Degree,
		person.CreatedAt,
		person.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create person: %w", err)
	}
	return nil
}

func (r *personRepository) Get(ctx context.Context, id uuid.UUID) (*model.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE id = $1 AND deleted_at IS NULL`

	var person model.Person
	if err := r.db.GetContext(ctx, &person, query, id); err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return &person, nil
}

func (r *personRepository) Update(ctx context.Context, person *model.Person) error {
	query := `
		UPDATE people
		SET name = $1, email = $2, avatar = $3, address = $4, biography = $5,
			dentistry_types = $6, degree = $7, updated_at = $8
		WHERE id = $9 AND deleted_at IS NULL
	`
	person.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		person.Name,
		person.Email,
		person.Avatar,
		person.Address,
		person.Biography,
		person.DentistryTypes,
		person.Degree,
		person.UpdatedAt,
		person.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("person not found")
	}
	return nil
}

func (r *personRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM people WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("person not found")
	}
	return nil
}

func (r *personRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*model.Person, error) {
	query := `
		SELECT ` + personColumns + `
		FROM people
		WHERE provider_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`
	var people []*model.Person
	if err := r.db.SelectContext(ctx, &people, query, providerID); err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	return people, nil
}

func (r *personRepository) GetByProviderAndEmail(ctx context.Context, providerID uuid.UUID, email string, excludeID *uuid.UUID) (*model.Person, error) {
	query := `
		SELECT ` + personColumns + `
		FROM people
		WHERE provider_id = $1 AND lower(email) = lower($2) AND deleted_at IS NULL
	`
	args := []interface{}{providerID, email}

	if excludeID != nil {
		query += " AND id != $3"
		args = append(args, *excludeID)
	}

	query += " LIMIT 1"

	var person model.Person
	if err := r.db.GetContext(ctx, &person, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get person by email: %w", err)
	}
	return &person, nil
}
