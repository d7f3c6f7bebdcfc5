package booking

import (
	"fmt"
	"time"
)

// Validator - интерфейс для валидации данных бронирования
type Validator interface {
	ValidateInput(guest Guest, checkIn, checkOut time.Time) error
}

type InputValidator struct{}

// NewInputValidator создает новый валидатор
func NewInputValidator() *InputValidator {
	return &InputValidator{}
}

// ValidateInput проверяет контактные поля и порядок дат.
// Пустое контактное поле - ErrMissingField, checkIn >= checkOut - ErrInvalidDateRange.
func (v *InputValidator) ValidateInput(guest Guest, checkIn, checkOut time.Time) error {
	if guest.Name == "" {
		return fmt.Errorf("%w: guest name", ErrMissingField)
	}
	if guest.Email == "" {
		return fmt.Errorf("%w: guest email", ErrMissingField)
	}
	if guest.Phone == "" {
		return fmt.Errorf("%w: guest phone", ErrMissingField)
	}

	if !checkIn.Before(checkOut) {
		return ErrInvalidDateRange
	}

	return nil
}
