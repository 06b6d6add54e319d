package postgres

import (
	"context"
	"fmt"

	"github.com/dentradar/dentradar-api/internal/model"
)

func (r *locationRepository) Search(ctx context.Context, query, zip string, limit int) ([]*model.Location, error) {
	q := `
		SELECT id, city, state, zip_code, lat, lng, created_at, updated_at, deleted_at
		FROM locations
		WHERE deleted_at IS NULL
		AND (city ILIKE $1 || '%' OR zip_code LIKE $1 || '%')
	`
	args := []interface{}{query}
	argCount := 2

	if zip != "" {
		q += fmt.Sprintf(" AND zip_code = $%d", argCount)
		args = append(args, zip)
		argCount++
	}

	q += fmt.Sprintf(" ORDER BY city ASC LIMIT $%d", argCount)
	args = append(args, limit)

	var locations []*model.Location
	if err := r.db.SelectContext(ctx, &locations, q, args...); err != nil {
		return nil, fmt.Errorf("failed to search locations: %w", err)
	}
	return locations, nil
}
