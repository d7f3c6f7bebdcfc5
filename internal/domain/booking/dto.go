package booking

// Request - данные формы бронирования, как их передает интерфейс.
// Даты приходят строками YYYY-MM-DD.
type Request struct {
	RoomID     int    `json:"room_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	GuestPhone string `json:"guest_phone"`
}
