package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := ParseDate(value)
	require.NoError(t, err)
	return d
}

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{name: "two nights", checkIn: "2025-03-15", checkOut: "2025-03-17", want: 2},
		{name: "one night", checkIn: "2025-03-15", checkOut: "2025-03-16", want: 1},
		{name: "same day", checkIn: "2025-03-15", checkOut: "2025-03-15", want: 0},
		{name: "reversed dates use absolute difference", checkIn: "2025-03-17", checkOut: "2025-03-15", want: 2},
		{name: "across month boundary", checkIn: "2025-03-30", checkOut: "2025-04-02", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NightsBetween(date(t, tt.checkIn), date(t, tt.checkOut))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNightsBetween_PartialDayRoundsUp(t *testing.T) {
	// Неполные сутки считаются за ночь
	checkIn := time.Date(2025, 3, 15, 14, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, NightsBetween(checkIn, checkOut))
}

func TestComputeTotal(t *testing.T) {
	// 2 ночи по 1000 = 2000
	total := ComputeTotal(date(t, "2025-03-15"), date(t, "2025-03-17"), 1000)
	assert.Equal(t, 2000, total)

	// Нулевая цена дает нулевую стоимость
	assert.Equal(t, 0, ComputeTotal(date(t, "2025-03-15"), date(t, "2025-03-17"), 0))
}
