package booking

import (
	"fmt"
	"time"
)

// DateLayout - формат календарных дат бронирования (даты без времени).
const DateLayout = "2006-01-02"

// Booking - бронирование номера. После создания запись не изменяется.
type Booking struct {
	ID         string `json:"id"`
	RoomID     int    `json:"roomId"`
	RoomTitle  string `json:"roomTitle"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	TotalPrice int    `json:"totalPrice"`
	Status     Status `json:"status"`
	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone"`
	CreatedAt  string `json:"createdAt"`
}

// Guest - контактные данные гостя. Формат email/телефона не проверяется,
// поля принимаются как свободный текст.
type Guest struct {
	Name  string
	Email string
	Phone string
}

// ParseDate разбирает дату вида YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}
