package booking

import (
	"math"
	"time"
)

// NightsBetween возвращает количество ночей между датами заезда и выезда:
// ceil(|checkOut - checkIn| / 1 сутки). Разница берется по модулю, поэтому
// порядок дат функция не проверяет - за это отвечает ValidateInput.
func NightsBetween(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// ComputeTotal считает стоимость проживания: ночи * цена за ночь.
// Определена для неотрицательной целой цены.
func ComputeTotal(checkIn, checkOut time.Time, pricePerNight int) int {
	return NightsBetween(checkIn, checkOut) * pricePerNight
}
