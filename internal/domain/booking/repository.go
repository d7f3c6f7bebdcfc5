package booking

import "context"

// Repository - хранилище бронирований. Последовательность бронирований
// дописывается в конец и читается целиком, без выборочных запросов.
type Repository interface {
	SaveBooking(ctx context.Context, b Booking) error
	ListBookings(ctx context.Context) ([]Booking, error)
}
