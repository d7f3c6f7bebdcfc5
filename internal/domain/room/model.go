package room

// Room - номер из справочника. Данные только для чтения,
// поставляются вместе с приложением.
type Room struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Price       int      `json:"price"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
}
