package request

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Service - журнал гостевых запросов. Хранится в памяти процесса
// с демонстрационными записями, на диск не пишется.
type Service struct {
	mu       sync.RWMutex
	requests []Request
	now      func() time.Time
	newID    func() string
	log      *slog.Logger
}

func NewService(log *slog.Logger) *Service {
	s := &Service{
		now:   time.Now,
		newID: uuid.NewString,
		log:   log,
	}
	s.requests = seedRequests(s.newID)
	return s
}

// Демонстрационные записи, как в мобильной версии.
func seedRequests(newID func() string) []Request {
	return []Request{
		{
			ID:          newID(),
			Category:    CategoryCleaning,
			Description: "Необходима уборка номера",
			Status:      StatusInProgress,
			Created:     time.Date(2025, 5, 10, 14, 30, 0, 0, time.UTC),
			Updated:     time.Date(2025, 5, 10, 15, 0, 0, 0, time.UTC),
		},
		{
			ID:          newID(),
			Category:    CategoryTechnical,
			Description: "Не работает кондиционер",
			Status:      StatusResolved,
			Created:     time.Date(2025, 5, 9, 10, 0, 0, 0, time.UTC),
			Updated:     time.Date(2025, 5, 9, 12, 30, 0, 0, time.UTC),
		},
	}
}

// Create регистрирует новый запрос и ставит его первым в списке.
func (s *Service) Create(category Category, description string) (Request, error) {
	if err := category.Validate(); err != nil {
		return Request{}, err
	}
	if description == "" {
		return Request{}, ErrMissingDescription
	}

	now := s.now()
	req := Request{
		ID:          s.newID(),
		Category:    category,
		Description: description,
		Status:      StatusNew,
		Created:     now,
		Updated:     now,
	}

	s.mu.Lock()
	s.requests = append([]Request{req}, s.requests...)
	s.mu.Unlock()

	s.log.Info("created guest request",
		slog.String("id", req.ID),
		slog.String("category", string(req.Category)))

	return req, nil
}

// Active возвращает запросы в работе (новые и в процессе).
func (s *Service) Active() []Request {
	return s.filter(func(r Request) bool { return r.Status.Active() })
}

// Completed возвращает закрытые запросы.
func (s *Service) Completed() []Request {
	return s.filter(func(r Request) bool { return !r.Status.Active() })
}

// All возвращает все запросы, новые первыми.
func (s *Service) All() []Request {
	return s.filter(func(Request) bool { return true })
}

// Resolve закрывает запрос по идентификатору.
func (s *Service) Resolve(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests[i].Status = StatusResolved
			s.requests[i].Updated = s.now()
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (s *Service) filter(keep func(Request) bool) []Request {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Request, 0, len(s.requests))
	for _, r := range s.requests {
		if keep(r) {
			result = append(result, r)
		}
	}
	return result
}
