package request

import (
	"fmt"
	"time"
)

// Category - категория гостевого запроса.
type Category string

const (
	CategoryCleaning  Category = "cleaning"
	CategoryTechnical Category = "technical"
	CategoryQuestion  Category = "question"
	CategoryComplaint Category = "complaint"
)

// Validate проверяет, что категория из допустимого словаря.
func (c Category) Validate() error {
	switch c {
	case CategoryCleaning, CategoryTechnical, CategoryQuestion, CategoryComplaint:
		return nil
	}
	return fmt.Errorf("неверная категория запроса: %s", c)
}

// DisplayName возвращает человекочитаемое название категории.
func (c Category) DisplayName() string {
	switch c {
	case CategoryCleaning:
		return "Уборка"
	case CategoryTechnical:
		return "Техническая поддержка"
	case CategoryQuestion:
		return "Вопросы"
	case CategoryComplaint:
		return "Жалобы"
	default:
		return "Неизвестная категория"
	}
}

// Categories возвращает все категории в порядке показа.
func Categories() []Category {
	return []Category{CategoryCleaning, CategoryTechnical, CategoryQuestion, CategoryComplaint}
}

type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusCancelled  Status = "cancelled"
)

// DisplayName возвращает человекочитаемое название статуса.
func (s Status) DisplayName() string {
	switch s {
	case StatusNew:
		return "Новый"
	case StatusInProgress:
		return "В процессе"
	case StatusResolved:
		return "Решено"
	case StatusCancelled:
		return "Отменено"
	default:
		return "Неизвестный статус"
	}
}

// Active сообщает, находится ли запрос в работе.
func (s Status) Active() bool {
	return s == StatusNew || s == StatusInProgress
}

// Request - гостевой запрос в службу размещения.
type Request struct {
	ID          string    `json:"id"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
}
