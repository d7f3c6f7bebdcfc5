package session

import (
	"context"

	"golang.org/x/exp/slog"

	"hostelmate/internal/domain/booking"
	"hostelmate/internal/domain/user"
)

// DisplayStore - тонкая обертка для экранов: ошибки хранилища
// логируются и превращаются в пустые значения, чтобы сбой диска
// не ронял интерфейс. Для записи используется сам Store.
type DisplayStore struct {
	store *Store
	log   *slog.Logger
}

func NewDisplayStore(store *Store, log *slog.Logger) *DisplayStore {
	return &DisplayStore{store: store, log: log}
}

// GetUser возвращает текущего пользователя или nil при любой ошибке.
func (d *DisplayStore) GetUser(ctx context.Context) *user.User {
	u, err := d.store.GetUser(ctx)
	if err != nil {
		d.log.Warn("не удалось прочитать пользователя", slog.Any("err", err))
		return nil
	}
	return u
}

// IsLoggedIn возвращает false при любой ошибке.
func (d *DisplayStore) IsLoggedIn(ctx context.Context) bool {
	ok, err := d.store.IsLoggedIn(ctx)
	if err != nil {
		d.log.Warn("не удалось прочитать флаг входа", slog.Any("err", err))
		return false
	}
	return ok
}

// ListBookings возвращает пустой список при любой ошибке.
func (d *DisplayStore) ListBookings(ctx context.Context) []booking.Booking {
	bookings, err := d.store.ListBookings(ctx)
	if err != nil {
		d.log.Warn("не удалось прочитать бронирования", slog.Any("err", err))
		return []booking.Booking{}
	}
	return bookings
}
