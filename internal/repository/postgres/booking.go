package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dentradar/dentradar-api/internal/model"
)

const bookingColumns = `
	id, provider_id, name, email, phone, address,
	appointment_date, appointment_time, status,
	created_at, updated_at, deleted_at
`

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (
			id, provider_id, name, email, phone, address,
			appointment_date, appointment_time, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()
	if booking.Status == "" {
		booking.Status = model.BookingStatusPending
	}

	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.ProviderID,
		booking.Name,
		booking.Email,
		booking.Phone,
		booking.Address,
		booking.AppointmentDate,
		booking.AppointmentTime,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) Get(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 AND deleted_at IS NULL`

	var booking model.Booking
	if err := r.db.GetContext(ctx, &booking, query, id); err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

func (r *bookingRepository) List(ctx context.Context, filters *model.BookingFilters) ([]*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE deleted_at IS NULL`
	args := []interface{}{}
	argCount := 1

	if filters.Email != "" {
		query += fmt.Sprintf(" AND lower(email) = lower($%d)", argCount)
		args = append(args, filters.Email)
		argCount++
	}

	if filters.ProviderID != nil {
		query += fmt.Sprintf(" AND provider_id = $%d", argCount)
		args = append(args, *filters.ProviderID)
		argCount++
	}

	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argCount)
		args = append(args, filters.Status)
		argCount++
	}

	query += " ORDER BY created_at DESC"

	var bookings []*model.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) FindPending(ctx context.Context, email string, providerID uuid.UUID) (*model.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE lower(email) = lower($1) AND provider_id = $2 AND status = $3 AND deleted_at IS NULL
		LIMIT 1
	`
	var booking model.Booking
	if err := r.db.GetContext(ctx, &booking, query, email, providerID, model.BookingStatusPending); err != nil {
		return nil, fmt.Errorf("failed to find pending booking: %w", err)
	}
	return &booking, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) error {
	query := `UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("booking not found")
	}
	return nil
}
