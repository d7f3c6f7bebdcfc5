package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound возвращается, когда по ключу ничего не сохранено.
var ErrKeyNotFound = errors.New("key not found")

// KeyValue - локальное долговременное хранилище "ключ-значение".
// Все данные приложения (пользователь, флаг входа, бронирования)
// лежат под фиксированными строковыми ключами.
type KeyValue interface {
	// Get возвращает значение по ключу или ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set сохраняет значение по ключу, перезаписывая прежнее.
	Set(ctx context.Context, key string, value []byte) error
	// Delete удаляет ключ. Отсутствие ключа не считается ошибкой.
	Delete(ctx context.Context, key string) error
	// Clear удаляет все ключи хранилища.
	Clear(ctx context.Context) error

	Close() error
}
