package extras

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("extra service not found")

// Extra - платная дополнительная услуга.
type Extra struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
}

// Category - группа услуг, как она показывается на экране.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Items []Extra
}

// Каталог услуг, как в мобильной версии. Заказ услуг имитируется,
// корзина нигде не сохраняется.
var catalog = []Category{
	{
		ID:   1,
		Name: "Питание",
		Items: []Extra{
			{ID: 1, Name: "Завтрак континентальный", Description: "Свежая выпечка, фрукты, кофе/чай", Price: 450},
			{ID: 2, Name: "Обед бизнес-ланч", Description: "Суп, основное блюдо, салат, напиток", Price: 750},
		},
	},
	{
		ID:   2,
		Name: "Прачечная",
		Items: []Extra{
			{ID: 3, Name: "Стирка белья", Description: "До 5 кг, возврат в течение 24 часов", Price: 500},
			{ID: 4, Name: "Экспресс-стирка", Description: "До 3 кг, возврат в течение 3 часов", Price: 800},
		},
	},
	{
		ID:   3,
		Name: "Экскурсии",
		Items: []Extra{
			{ID: 5, Name: "Обзорная экскурсия по городу", Description: "Автобусная экскурсия, 3 часа", Price: 1500},
			{ID: 6, Name: "Пешеходная экскурсия по центру", Description: "Индивидуальный гид, 2 часа", Price: 1200},
		},
	},
}

// Categories возвращает каталог услуг по группам.
func Categories() []Category {
	result := make([]Category, len(catalog))
	copy(result, catalog)
	return result
}

// Find возвращает услугу по идентификатору или ErrNotFound.
func Find(id int) (Extra, error) {
	for _, c := range catalog {
		for _, e := range c.Items {
			if e.ID == id {
				return e, nil
			}
		}
	}
	return Extra{}, fmt.Errorf("%w: %d", ErrNotFound, id)
}

// CartTotal считает сумму корзины по списку идентификаторов услуг.
func CartTotal(ids []int) (int, error) {
	total := 0
	for _, id := range ids {
		e, err := Find(id)
		if err != nil {
			return 0, err
		}
		total += e.Price
	}
	return total, nil
}
