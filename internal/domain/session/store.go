package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"hostelmate/internal/domain/booking"
	"hostelmate/internal/domain/user"
	"hostelmate/internal/infrastructure/storage"
)

// Ключи хранилища. Значения совпадают с ключами AsyncStorage мобильной
// версии, чтобы выгрузка данных оставалась совместимой.
const (
	keyUser     = "user_data"
	keyBookings = "bookings"
	keyLoggedIn = "is_logged_in"
)

// Store - фасад над локальным хранилищем: текущий пользователь, флаг
// входа и последовательность бронирований под тремя фиксированными
// ключами. Ошибки хранилища возвращаются явно; для отображения есть
// DisplayStore, который деградирует до пустых значений.
//
// Store реализует user.Repository и booking.Repository.
type Store struct {
	kv storage.KeyValue

	// Сериализует read-modify-write по ключу bookings: без нее два
	// одновременных SaveBooking могут затереть дописанное друг другом.
	mu sync.Mutex
}

func NewStore(kv storage.KeyValue) *Store {
	return &Store{kv: kv}
}

// SaveUser сохраняет пользователя как текущего и взводит флаг входа.
// Прежний пользователь перезаписывается.
func (s *Store) SaveUser(ctx context.Context, u user.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("ошибка сериализации пользователя: %w", err)
	}

	if err := s.kv.Set(ctx, keyUser, data); err != nil {
		return fmt.Errorf("ошибка сохранения пользователя: %w", err)
	}

	if err := s.kv.Set(ctx, keyLoggedIn, []byte("true")); err != nil {
		return fmt.Errorf("ошибка установки флага входа: %w", err)
	}

	return nil
}

// GetUser возвращает текущего пользователя или nil, если входа не было.
func (s *Store) GetUser(ctx context.Context) (*user.User, error) {
	data, err := s.kv.Get(ctx, keyUser)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения пользователя: %w", err)
	}

	var u user.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("ошибка разбора пользователя: %w", err)
	}

	return &u, nil
}

// IsLoggedIn возвращает true только если под флагом входа лежит
// ровно строка "true". Отсутствующий ключ - false без ошибки.
func (s *Store) IsLoggedIn(ctx context.Context) (bool, error) {
	data, err := s.kv.Get(ctx, keyLoggedIn)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("ошибка чтения флага входа: %w", err)
	}

	return string(data) == "true", nil
}

// Logout удаляет пользователя и сбрасывает флаг входа.
// Ключ бронирований не трогается: история переживает выход.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, keyUser); err != nil {
		return fmt.Errorf("ошибка удаления пользователя: %w", err)
	}

	if err := s.kv.Set(ctx, keyLoggedIn, []byte("false")); err != nil {
		return fmt.Errorf("ошибка сброса флага входа: %w", err)
	}

	return nil
}

// SaveBooking дописывает бронирование в конец последовательности.
// Вся последовательность хранится одним JSON-массивом и
// перезаписывается целиком.
func (s *Store) SaveBooking(ctx context.Context, b booking.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.readBookings(ctx)
	if err != nil {
		// Не затираем последовательность, если не смогли ее прочитать
		return err
	}

	bookings = append(bookings, b)

	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("ошибка сериализации бронирований: %w", err)
	}

	if err := s.kv.Set(ctx, keyBookings, data); err != nil {
		return fmt.Errorf("ошибка сохранения бронирований: %w", err)
	}

	return nil
}

// ListBookings возвращает все бронирования в порядке создания.
// Отсутствующий ключ - пустой список без ошибки.
func (s *Store) ListBookings(ctx context.Context) ([]booking.Booking, error) {
	return s.readBookings(ctx)
}

func (s *Store) readBookings(ctx context.Context) ([]booking.Booking, error) {
	data, err := s.kv.Get(ctx, keyBookings)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []booking.Booking{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения бронирований: %w", err)
	}

	var bookings []booking.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("ошибка разбора бронирований: %w", err)
	}

	return bookings, nil
}

// ClearAll удаляет все ключи хранилища. Полный сброс приложения.
func (s *Store) ClearAll(ctx context.Context) error {
	if err := s.kv.Clear(ctx); err != nil {
		return fmt.Errorf("ошибка очистки хранилища: %w", err)
	}
	return nil
}
