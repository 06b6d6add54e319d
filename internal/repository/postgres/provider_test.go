package postgres

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentradar/dentradar-api/internal/model"
	"github.com/dentradar/dentradar-api/internal/repository"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

var providerCols = []string{
	"id", "place_id", "user_id", "name", "type", "address", "lat", "lng",
	"phone_number", "website", "tags", "photos", "rating", "review_count",
	"business_status", "opening_hours", "created_at", "updated_at", "deleted_at",
}

func providerRow(t *testing.T, id uuid.UUID, name string) []driver.Value {
	t.Helper()
	hours, err := json.Marshal(model.OpeningHours{
		Periods: []model.Period{{
			Open:  model.PeriodPoint{Day: 1, Time: "0900"},
			Close: model.PeriodPoint{Day: 1, Time: "1700"},
		}},
	})
	require.NoError(t, err)
	now := time.Now()
	return []driver.Value{
		id, "ChIJtest", nil, name, "dentist", "1 Main St", 40.7, -74.0,
		"5551234567", "https://example.com", "{General Dentistry}", "{}",
		4.5, 10, "OPERATIONAL", hours, now, now, nil,
	}
}

func TestProviderGet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProviderRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM providers WHERE id = \$1 AND deleted_at IS NULL`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(providerCols).AddRow(providerRow(t, id, "Main St Dental")...))

	p, err := repo.Get(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, p.ID)
	assert.Equal(t, "Main St Dental", p.Name)
	assert.Equal(t, model.ProviderTypeDentist, p.Type)
	require.NotNil(t, p.PhoneNumber)
	assert.Equal(t, "5551234567", *p.PhoneNumber)

	// The JSONB opening_hours column scans back into the struct.
	require.Len(t, p.OpeningHours.Periods, 1)
	assert.Equal(t, "0900", p.OpeningHours.Periods[0].Open.Time)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProviderGetMiss(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProviderRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM providers WHERE id = \$1 AND deleted_at IS NULL`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(providerCols))

	_, err := repo.Get(context.Background(), id)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProviderSearchPhoneSuffix(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProviderRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM providers\s+WHERE phone_number ILIKE '%' \|\| \$1 AND deleted_at IS NULL`).
		WithArgs("5551234567").
		WillReturnRows(sqlmock.NewRows(providerCols).AddRow(providerRow(t, id, "Suffix Hit")...))

	p, err := repo.SearchPhoneSuffix(context.Background(), "5551234567")
	require.NoError(t, err)
	assert.Equal(t, "Suffix Hit", p.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProviderSearchAny(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProviderRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM providers\s+WHERE deleted_at IS NULL\s+AND \(\s+id::text = \$1`).
		WithArgs("some-term").
		WillReturnRows(sqlmock.NewRows(providerCols).AddRow(providerRow(t, id, "Any Hit")...))

	p, err := repo.SearchAny(context.Background(), "some-term")
	require.NoError(t, err)
	assert.Equal(t, "Any Hit", p.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProviderCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProviderRepository(db)

	mock.ExpectExec(`INSERT INTO providers`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	p := &model.Provider{Name: "New Practice", Type: model.ProviderTypeDentist}
	require.NoError(t, repo.Create(context.Background(), p))

	assert.NotEqual(t, uuid.Nil, p.ID, "an id is assigned on insert")
	assert.Equal(t, model.BusinessStatusOperational, p.BusinessStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProviderUpdateNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProviderRepository(db)

	mock.ExpectExec(`UPDATE providers`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	p := &model.Provider{Name: "Ghost"}
	p.ID = uuid.New()
	err := repo.Update(context.Background(), p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProviderUpsertByPlaceID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProviderRepository(db)

	existingID := uuid.New()
	createdAt := time.Now().Add(-24 * time.Hour)
	mock.ExpectQuery(`INSERT INTO providers (.+) ON CONFLICT \(place_id\) DO UPDATE SET`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(existingID, createdAt))

	placeID := "ChIJtest"
	p := &model.Provider{Name: "Imported", PlaceID: &placeID}
	require.NoError(t, repo.UpsertByPlaceID(context.Background(), p))

	// The conflict path hands back the existing row's identity.
	assert.Equal(t, existingID, p.ID)
	assert.WithinDuration(t, createdAt, p.CreatedAt, time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProviderSoftDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProviderRepository(db)

	id := uuid.New()
	mock.ExpectExec(`UPDATE providers SET deleted_at = \$1, updated_at = \$1 WHERE id = \$2 AND deleted_at IS NULL`).
		WithArgs(sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

var _ repository.ProviderRepository = (*providerRepository)(nil)
