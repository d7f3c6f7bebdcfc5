package booking

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"hostelmate/internal/domain/room"
)

type Servicer interface {
	Create(ctx context.Context, req Request) (Booking, error)
	List(ctx context.Context) ([]Booking, error)
}

// Service реализует сценарий бронирования: проверка входных данных,
// расчет стоимости, сборка записи и сохранение.
type Service struct {
	repo      Repository
	catalog   *room.Catalog
	validator Validator
	builder   *Builder
	log       *slog.Logger
}

func NewService(repo Repository, catalog *room.Catalog, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		catalog:   catalog,
		validator: NewInputValidator(),
		builder:   NewBuilder(),
		log:       log,
	}
}

// Create создает подтвержденное бронирование и дописывает его в хранилище.
// Ошибки валидации возвращаются вызывающему как есть - интерфейс обязан
// показать их пользователю до повторной попытки.
func (s *Service) Create(ctx context.Context, req Request) (Booking, error) {
	rm, err := s.catalog.Get(req.RoomID)
	if err != nil {
		return Booking{}, fmt.Errorf("%w: %d", ErrUnknownRoom, req.RoomID)
	}

	checkIn, err := ParseDate(req.CheckIn)
	if err != nil {
		return Booking{}, err
	}
	checkOut, err := ParseDate(req.CheckOut)
	if err != nil {
		return Booking{}, err
	}

	guest := Guest{
		Name:  req.GuestName,
		Email: req.GuestEmail,
		Phone: req.GuestPhone,
	}

	if err := s.validator.ValidateInput(guest, checkIn, checkOut); err != nil {
		return Booking{}, err
	}

	b := s.builder.Build(rm.ID, rm.Title, rm.Price, checkIn, checkOut, guest)

	if err := s.repo.SaveBooking(ctx, b); err != nil {
		return Booking{}, fmt.Errorf("ошибка сохранения бронирования: %w", err)
	}

	s.log.Info("created new booking",
		slog.String("id", b.ID),
		slog.Int("room_id", b.RoomID),
		slog.Int("total", b.TotalPrice))

	return b, nil
}

// List возвращает все бронирования в порядке создания.
func (s *Service) List(ctx context.Context) ([]Booking, error) {
	return s.repo.ListBookings(ctx)
}
