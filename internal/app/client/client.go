package client

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"hostelmate/internal/app/client/config"
	"hostelmate/internal/domain/admin"
	"hostelmate/internal/domain/booking"
	"hostelmate/internal/domain/request"
	"hostelmate/internal/domain/room"
	"hostelmate/internal/domain/session"
	"hostelmate/internal/domain/user"
	"hostelmate/internal/infrastructure/migration"
	"hostelmate/internal/infrastructure/storage"
	"hostelmate/internal/infrastructure/storage/sqlite"
)

// App собирает все сервисы клиента вокруг локального хранилища.
type App struct {
	config *config.Config
	log    *slog.Logger

	kv      storage.KeyValue
	store   *session.Store
	display *session.DisplayStore

	catalog  *room.Catalog
	users    *user.Service
	bookings *booking.Service
	requests *request.Service
	admin    *admin.Service
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	catalog, err := room.NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки справочника номеров: %w", err)
	}

	// Инициализируем локальное хранилище (используем SQLite)
	kv := openStorage(cfg, log)

	store := session.NewStore(kv)

	users, err := user.NewService(store, cfg.AdminEmail, cfg.AdminPassword, log)
	if err != nil {
		kv.Close()
		return nil, err
	}

	requests := request.NewService(log)

	app := &App{
		config:   cfg,
		log:      log,
		kv:       kv,
		store:    store,
		display:  session.NewDisplayStore(store, log),
		catalog:  catalog,
		users:    users,
		bookings: booking.NewService(store, catalog, log),
		requests: requests,
		admin:    admin.NewService(store, requests, log),
	}

	return app, nil
}

// openStorage применяет миграции и открывает SQLite; при любой ошибке
// переключается на хранилище в памяти, чтобы клиент оставался рабочим.
func openStorage(cfg *config.Config, log *slog.Logger) storage.KeyValue {
	mg := migration.NewMigration(cfg.DatabasePath, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		log.Warn("Не удалось применить миграции, используем память", slog.Any("err", err))
		return storage.NewMemory()
	}

	kv, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		log.Warn("Не удалось инициализировать SQLite, используем память", slog.Any("err", err))
		return storage.NewMemory()
	}

	return kv
}

// Users возвращает сервис входа/выхода.
func (a *App) Users() *user.Service { return a.users }

// Bookings возвращает сервис бронирования.
func (a *App) Bookings() *booking.Service { return a.bookings }

// Requests возвращает журнал гостевых запросов.
func (a *App) Requests() *request.Service { return a.requests }

// Admin возвращает сборщик сводки панели управления.
func (a *App) Admin() *admin.Service { return a.admin }

// Rooms возвращает справочник номеров.
func (a *App) Rooms() *room.Catalog { return a.catalog }

// Store возвращает хранилище сессии с явными ошибками.
func (a *App) Store() *session.Store { return a.store }

// Display возвращает обертку хранилища для экранов.
func (a *App) Display() *session.DisplayStore { return a.display }

// Reset полностью очищает локальное хранилище.
func (a *App) Reset(ctx context.Context) error {
	return a.store.ClearAll(ctx)
}

func (a *App) Close() error {
	return a.kv.Close()
}
