package admin

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"hostelmate/internal/domain/booking"
	"hostelmate/internal/domain/request"
)

// Movement - заезд или выезд в списке на сегодня.
type Movement struct {
	GuestName string
	RoomTitle string
}

// Dashboard - сводка панели управления.
type Dashboard struct {
	Occupancy       int
	TodayRevenue    int
	Rating          float64
	ActiveRequests  int
	BookingsTotal   int
	BookingsRevenue int
	Arrivals        []Movement
	Departures      []Movement
}

// Демонстрационные показатели, как в мобильной версии: заполняемость,
// дневной доход и рейтинг не считаются из данных устройства.
const (
	mockOccupancy    = 75
	mockTodayRevenue = 45000
	mockRating       = 4.5
)

// Service собирает сводку по локальным данным устройства.
type Service struct {
	bookings booking.Repository
	requests *request.Service
	now      func() time.Time
	log      *slog.Logger
}

func NewService(bookings booking.Repository, requests *request.Service, log *slog.Logger) *Service {
	return &Service{
		bookings: bookings,
		requests: requests,
		now:      time.Now,
		log:      log,
	}
}

// Build возвращает сводку: демонстрационные показатели плюс живые
// данные - количество и выручка бронирований, активные запросы,
// заезды и выезды на сегодня.
func (s *Service) Build(ctx context.Context) (Dashboard, error) {
	bookings, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("ошибка чтения бронирований: %w", err)
	}

	today := s.now().Format(booking.DateLayout)

	d := Dashboard{
		Occupancy:      mockOccupancy,
		TodayRevenue:   mockTodayRevenue,
		Rating:         mockRating,
		ActiveRequests: len(s.requests.Active()),
		BookingsTotal:  len(bookings),
	}

	for _, b := range bookings {
		d.BookingsRevenue += b.TotalPrice

		if b.CheckIn == today {
			d.Arrivals = append(d.Arrivals, Movement{GuestName: b.GuestName, RoomTitle: b.RoomTitle})
		}
		if b.CheckOut == today {
			d.Departures = append(d.Departures, Movement{GuestName: b.GuestName, RoomTitle: b.RoomTitle})
		}
	}

	s.log.Debug("dashboard built",
		slog.Int("bookings", d.BookingsTotal),
		slog.Int("active_requests", d.ActiveRequests))

	return d, nil
}
