package room

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

// Справочник номеров поставляется вместе с приложением,
// как и rooms.json в мобильной версии.
//
//go:embed rooms.json
var roomsJSON []byte

// Catalog - справочник номеров, загруженный из встроенного JSON.
type Catalog struct {
	rooms []Room
	byID  map[int]Room
}

// NewCatalog разбирает встроенный справочник.
func NewCatalog() (*Catalog, error) {
	var rooms []Room
	if err := json.Unmarshal(roomsJSON, &rooms); err != nil {
		return nil, fmt.Errorf("ошибка разбора справочника номеров: %w", err)
	}

	byID := make(map[int]Room, len(rooms))
	for _, r := range rooms {
		byID[r.ID] = r
	}

	return &Catalog{rooms: rooms, byID: byID}, nil
}

// List возвращает все номера в порядке следования в справочнике.
func (c *Catalog) List() []Room {
	result := make([]Room, len(c.rooms))
	copy(result, c.rooms)
	return result
}

// Get возвращает номер по идентификатору или ErrNotFound.
func (c *Catalog) Get(id int) (Room, error) {
	r, ok := c.byID[id]
	if !ok {
		return Room{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return r, nil
}
