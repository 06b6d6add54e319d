package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentradar/dentradar-api/internal/model"
	apperrors "github.com/dentradar/dentradar-api/pkg/errors"
)

var errNoRows = errors.New("sql: no rows in result set")

type fakeBookingRepo struct {
	created    []*model.Booking
	pending    *model.Booking
	listed     []*model.Booking
	updated    map[uuid.UUID]model.BookingStatus
	getByID    *model.Booking
	failCreate error
	failList   error
	failUpdate error
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *model.Booking) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	b.ID = uuid.New()
	f.created = append(f.created, b)
	return nil
}

func (f *fakeBookingRepo) Get(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	if f.getByID == nil {
		return nil, errNoRows
	}
	return f.getByID, nil
}

func (f *fakeBookingRepo) List(ctx context.Context, filters *model.BookingFilters) ([]*model.Booking, error) {
	if f.failList != nil {
		return nil, f.failList
	}
	return f.listed, nil
}

func (f *fakeBookingRepo) FindPending(ctx context.Context, email string, providerID uuid.UUID) (*model.Booking, error) {
	if f.pending == nil {
		return nil, errNoRows
	}
	return f.pending, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) error {
	if f.failUpdate != nil {
		return f.failUpdate
	}
	if f.updated == nil {
		f.updated = map[uuid.UUID]model.BookingStatus{}
	}
	f.updated[id] = status
	if f.getByID != nil {
		f.getByID.Status = status
	}
	return nil
}

// fakeProviderLookup covers only the two lookups the booking service uses.
type fakeProviderLookup struct {
	byID      *model.Provider
	byPlaceID *model.Provider
}

func (f *fakeProviderLookup) Create(ctx context.Context, p *model.Provider) error { return nil }
func (f *fakeProviderLookup) Get(ctx context.Context, id uuid.UUID) (*model.Provider, error) {
	if f.byID == nil {
		return nil, errNoRows
	}
	return f.byID, nil
}
func (f *fakeProviderLookup) GetByPhone(ctx context.Context, phone string) (*model.Provider, error) {
	return nil, errNoRows
}
func (f *fakeProviderLookup) GetByPlaceID(ctx context.Context, placeID string) (*model.Provider, error) {
	if f.byPlaceID == nil {
		return nil, errNoRows
	}
	return f.byPlaceID, nil
}
func (f *fakeProviderLookup) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Provider, error) {
	return nil, errNoRows
}
func (f *fakeProviderLookup) SearchPhoneSuffix(ctx context.Context, suffix string) (*model.Provider, error) {
	return nil, errNoRows
}
func (f *fakeProviderLookup) SearchAny(ctx context.Context, term string) (*model.Provider, error) {
	return nil, errNoRows
}
func (f *fakeProviderLookup) Update(ctx context.Context, p *model.Provider) error          { return nil }
func (f *fakeProviderLookup) UpsertByPlaceID(ctx context.Context, p *model.Provider) error { return nil }
func (f *fakeProviderLookup) Delete(ctx context.Context, id uuid.UUID) error               { return nil }

type recordingEmitter struct{ events []string }

func (e *recordingEmitter) Emit(ctx context.Context, eventType string, payload interface{}) error {
	e.events = append(e.events, eventType)
	return nil
}

func testProvider() *model.Provider {
	phone := "5551234567"
	p := &model.Provider{
		Name:        "Main St Dental",
		Type:        model.ProviderTypeDentist,
		Address:     "1 Main St",
		PhoneNumber: &phone,
	}
	p.ID = uuid.New()
	return p
}

func validRequest(providerID string) *model.CreateBookingRequest {
	return &model.CreateBookingRequest{
		Name:       "Jane Doe",
		Email:      "Jane@Example.com",
		Phone:      "(555) 987-6543",
		Address:    "2 Elm St",
		ProviderID: providerID,
	}
}

func TestCreateBooking(t *testing.T) {
	provider := testProvider()
	repo := &fakeBookingRepo{}
	emitter := &recordingEmitter{}
	svc := NewService(repo, &fakeProviderLookup{byID: provider}, emitter, zerolog.Nop())

	req := validRequest(provider.ID.String())
	req.AppointmentDate = time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	req.AppointmentTime = "09:30"

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, model.BookingStatusPending, resp.Booking.Status)
	assert.Equal(t, "jane@example.com", resp.Booking.Email, "email is stored lowercased")
	assert.Equal(t, provider.ID, resp.Booking.ProviderID)
	require.NotNil(t, resp.Booking.AppointmentTime)
	assert.Equal(t, "09:30", *resp.Booking.AppointmentTime)

	require.NotNil(t, resp.Provider)
	assert.Equal(t, provider.Name, resp.Provider.Name)
	assert.Equal(t, "5551234567", resp.Provider.PhoneNumber)

	assert.Len(t, repo.created, 1)
	assert.Equal(t, []string{model.EventBookingCreated}, emitter.events)
}

func TestCreateBookingByPlaceID(t *testing.T) {
	provider := testProvider()
	svc := NewService(&fakeBookingRepo{}, &fakeProviderLookup{byPlaceID: provider}, &recordingEmitter{}, zerolog.Nop())

	resp, err := svc.Create(context.Background(), validRequest("ChIJN1t_tDeuEmsRUsoyG83frY4"))
	require.NoError(t, err)
	assert.Equal(t, provider.ID, resp.Booking.ProviderID)
}

func TestCreateBookingRequiredFields(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeProviderLookup{}, &recordingEmitter{}, zerolog.Nop())

	tests := []struct {
		mutate  func(*model.CreateBookingRequest)
		message string
	}{
		{func(r *model.CreateBookingRequest) { r.Name = "  " }, "name is required"},
		{func(r *model.CreateBookingRequest) { r.Email = "" }, "email is required"},
		{func(r *model.CreateBookingRequest) { r.Phone = "" }, "phone is required"},
		{func(r *model.CreateBookingRequest) { r.Address = "" }, "address is required"},
		{func(r *model.CreateBookingRequest) { r.ProviderID = "" }, "provider_id is required"},
		{func(r *model.CreateBookingRequest) { r.Email = "bad-email" }, "invalid email format"},
		{func(r *model.CreateBookingRequest) { r.Phone = "1234" }, "invalid phone number"},
	}
	for _, tt := range tests {
		req := validRequest(uuid.New().String())
		tt.mutate(req)

		_, err := svc.Create(context.Background(), req)
		require.Error(t, err, tt.message)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, tt.message, appErr.Message)
	}
}

func TestCreateBookingRejectsPastDate(t *testing.T) {
	provider := testProvider()
	svc := NewService(&fakeBookingRepo{}, &fakeProviderLookup{byID: provider}, &recordingEmitter{}, zerolog.Nop())

	req := validRequest(provider.ID.String())
	req.AppointmentDate = "2020-01-01"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "past")
}

func TestCreateBookingRejectsBadTime(t *testing.T) {
	provider := testProvider()
	svc := NewService(&fakeBookingRepo{}, &fakeProviderLookup{byID: provider}, &recordingEmitter{}, zerolog.Nop())

	req := validRequest(provider.ID.String())
	req.AppointmentTime = "9:30 PM"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HH:MM")
}

func TestCreateBookingUnknownProvider(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeProviderLookup{}, &recordingEmitter{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), validRequest(uuid.New().String()))
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCreateBookingDuplicatePending(t *testing.T) {
	provider := testProvider()
	repo := &fakeBookingRepo{pending: &model.Booking{Status: model.BookingStatusPending}}
	emitter := &recordingEmitter{}
	svc := NewService(repo, &fakeProviderLookup{byID: provider}, emitter, zerolog.Nop())

	_, err := svc.Create(context.Background(), validRequest(provider.ID.String()))
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Equal(t, "Duplicate booking", err.(*apperrors.AppError).Message)
	assert.Empty(t, repo.created)
	assert.Empty(t, emitter.events)
}

func TestListRequiresFilter(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeProviderLookup{}, &recordingEmitter{}, zerolog.Nop())

	_, err := svc.List(context.Background(), &model.BookingFilters{})
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestListByEmail(t *testing.T) {
	repo := &fakeBookingRepo{listed: []*model.Booking{{Name: "Jane"}}}
	svc := NewService(repo, &fakeProviderLookup{}, &recordingEmitter{}, zerolog.Nop())

	bookings, err := svc.List(context.Background(), &model.BookingFilters{Email: "jane@example.com"})
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestUpdateStatus(t *testing.T) {
	existing := &model.Booking{Status: model.BookingStatusPending}
	existing.ID = uuid.New()
	repo := &fakeBookingRepo{getByID: existing}
	svc := NewService(repo, &fakeProviderLookup{}, &recordingEmitter{}, zerolog.Nop())

	updated, err := svc.UpdateStatus(context.Background(), existing.ID, model.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusConfirmed, updated.Status)
	assert.Equal(t, model.BookingStatusConfirmed, repo.updated[existing.ID])
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeProviderLookup{}, &recordingEmitter{}, zerolog.Nop())

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), model.BookingStatus("archived"))
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}
