package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_Build(t *testing.T) {
	// Детерминированные источники времени и идентификаторов
	now := func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }
	newID := func() string { return "fixed-id" }

	b := NewBuilderWith(now, newID).Build(
		3,
		"Двухместный номер",
		2500,
		date(t, "2025-03-15"),
		date(t, "2025-03-17"),
		Guest{Name: "Иван Иванов", Email: "ivan@example.com", Phone: "+7 900 000-00-00"},
	)

	assert.Equal(t, "fixed-id", b.ID)
	assert.Equal(t, 3, b.RoomID)
	assert.Equal(t, "Двухместный номер", b.RoomTitle)
	assert.Equal(t, "2025-03-15", b.CheckIn)
	assert.Equal(t, "2025-03-17", b.CheckOut)
	assert.Equal(t, 5000, b.TotalPrice)
	assert.Equal(t, StatusConfirmed, b.Status)
	assert.Equal(t, "Иван Иванов", b.GuestName)
	assert.Equal(t, "2025-03-01T10:00:00Z", b.CreatedAt)
}

func TestBuilder_UniqueIDs(t *testing.T) {
	b := NewBuilder()
	guest := Guest{Name: "n", Email: "e", Phone: "p"}

	first := b.Build(1, "x", 100, date(t, "2025-03-15"), date(t, "2025-03-16"), guest)
	second := b.Build(1, "x", 100, date(t, "2025-03-15"), date(t, "2025-03-16"), guest)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-15")
	assert.NoError(t, err)
	assert.Equal(t, 2025, d.Year())

	_, err = ParseDate("15.03.2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
