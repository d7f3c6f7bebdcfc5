package migration

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	// Blank import required for SQLite driver registration for migrations
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrator — интерфейс для самой библиотеки migrate.Migrate
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine — фабрика для создания мигратора (чтобы не лезть в ФС и БД в тестах)
type MigrationEngine func(databasePath string) (Migrator, error)

type Migration struct {
	databasePath string
	engine       MigrationEngine
}

func NewMigration(databasePath string, engine MigrationEngine) *Migration {
	return &Migration{
		databasePath: databasePath,
		engine:       engine,
	}
}

// DefaultEngine — реальная реализация: встроенные миграции поверх локального SQLite
func DefaultEngine(databasePath string) (Migrator, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения встроенных миграций: %w", err)
	}
	return migrate.NewWithSourceInstance("iofs", source, "sqlite3://"+databasePath)
}

func (mg *Migration) Up() error {
	m, err := mg.engine(mg.databasePath)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w; migration up error", err)
	}
	return nil
}
