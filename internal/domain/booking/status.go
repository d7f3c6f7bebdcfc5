package booking

import "fmt"

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

// Validate проверяет, что статус из допустимого словаря.
func (s Status) Validate() error {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled:
		return nil
	}
	return fmt.Errorf("неверный статус бронирования: %s", s)
}

// String возвращает строковое представление статуса.
func (s Status) String() string {
	return string(s)
}

// DisplayName возвращает человекочитаемое название статуса.
func (s Status) DisplayName() string {
	switch s {
	case StatusConfirmed:
		return "Подтверждено"
	case StatusPending:
		return "Ожидает подтверждения"
	case StatusCancelled:
		return "Отменено"
	default:
		return "Неизвестный статус"
	}
}
