package booking

import (
	"time"

	"github.com/google/uuid"
)

// Builder - фабрика бронирований. Источники времени и идентификаторов
// инжектируются, чтобы тесты были детерминированными.
type Builder struct {
	now   func() time.Time
	newID func() string
}

// NewBuilder создает фабрику с реальными часами и uuid-идентификаторами.
func NewBuilder() *Builder {
	return &Builder{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// NewBuilderWith создает фабрику с заданными источниками времени и идентификаторов.
func NewBuilderWith(now func() time.Time, newID func() string) *Builder {
	return &Builder{now: now, newID: newID}
}

// Build собирает подтвержденное бронирование по данным номера, датам и гостю.
// Единственная точка, где назначаются id и createdAt.
func (b *Builder) Build(roomID int, roomTitle string, pricePerNight int, checkIn, checkOut time.Time, guest Guest) Booking {
	return Booking{
		ID:         b.newID(),
		RoomID:     roomID,
		RoomTitle:  roomTitle,
		CheckIn:    checkIn.Format(DateLayout),
		CheckOut:   checkOut.Format(DateLayout),
		TotalPrice: ComputeTotal(checkIn, checkOut, pricePerNight),
		Status:     StatusConfirmed,
		GuestName:  guest.Name,
		GuestEmail: guest.Email,
		GuestPhone: guest.Phone,
		CreatedAt:  b.now().UTC().Format(time.RFC3339),
	}
}
