package booking

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/exp/slog"

	"hostelmate/internal/domain/room"
)

// fakeRepo копит бронирования в срезе.
type fakeRepo struct {
	saved   []Booking
	saveErr error
}

func (f *fakeRepo) SaveBooking(_ context.Context, b Booking) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, b)
	return nil
}

func (f *fakeRepo) ListBookings(context.Context) ([]Booking, error) {
	return f.saved, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validRequest() Request {
	return Request{
		RoomID:     1,
		CheckIn:    "2025-03-15",
		CheckOut:   "2025-03-17",
		GuestName:  "Иван Иванов",
		GuestEmail: "ivan@example.com",
		GuestPhone: "+7 900 000-00-00",
	}
}

func newTestService(t *testing.T, repo Repository) *Service {
	t.Helper()
	catalog, err := room.NewCatalog()
	require.NoError(t, err)
	return NewService(repo, catalog, testLogger())
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := newTestService(t, repo)

	b, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, 1, b.RoomID)
	assert.Equal(t, StatusConfirmed, b.Status)
	// 2 ночи по цене номера из справочника
	assert.Equal(t, 1600, b.TotalPrice)

	require.Len(t, repo.saved, 1)
	assert.Equal(t, b, repo.saved[0])
}

func TestService_Create_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "unknown room",
			mutate:  func(r *Request) { r.RoomID = 99 },
			wantErr: ErrUnknownRoom,
		},
		{
			name:    "bad check-in date",
			mutate:  func(r *Request) { r.CheckIn = "15.03.2025" },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "bad check-out date",
			mutate:  func(r *Request) { r.CheckOut = "" },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "missing guest name",
			mutate:  func(r *Request) { r.GuestName = "" },
			wantErr: ErrMissingField,
		},
		{
			name:    "inverted dates",
			mutate:  func(r *Request) { r.CheckIn, r.CheckOut = r.CheckOut, r.CheckIn },
			wantErr: ErrInvalidDateRange,
		},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := newTestService(t, repo)

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Create(ctx, req)
			assert.ErrorIs(t, err, tt.wantErr)
			// Невалидный запрос не должен ничего сохранить
			assert.Empty(t, repo.saved)
		})
	}
}

func TestService_Create_SaveError(t *testing.T) {
	ctx := context.Background()
	saveErr := errors.New("disk failure")
	svc := newTestService(t, &fakeRepo{saveErr: saveErr})

	_, err := svc.Create(ctx, validRequest())
	assert.ErrorIs(t, err, saveErr)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := newTestService(t, repo)

	_, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	bookings, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}
