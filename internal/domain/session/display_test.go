package session

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/exp/slog"

	"hostelmate/internal/domain/user"
	"hostelmate/internal/infrastructure/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDisplayStore_DegradesOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore(&brokenKV{err: errors.New("disk failure")})
	display := NewDisplayStore(store, discardLogger())

	// Экранные методы не возвращают ошибку - только пустые значения
	assert.Nil(t, display.GetUser(ctx))
	assert.False(t, display.IsLoggedIn(ctx))

	bookings := display.ListBookings(ctx)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestDisplayStore_PassesThroughValues(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemory())
	display := NewDisplayStore(store, discardLogger())

	u := user.User{ID: "u1", Email: "ivan@example.com", Name: "ivan"}
	require.NoError(t, store.SaveUser(ctx, u))
	require.NoError(t, store.SaveBooking(ctx, testBooking("b1")))

	got := display.GetUser(ctx)
	require.NotNil(t, got)
	assert.Equal(t, u, *got)
	assert.True(t, display.IsLoggedIn(ctx))
	assert.Len(t, display.ListBookings(ctx), 1)
}
