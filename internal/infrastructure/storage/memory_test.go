package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "key", []byte("value")))

	got, err := m.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)
}

func TestMemory_GetMissing(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemory_Overwrite(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "key", []byte("old")))
	require.NoError(t, m.Set(ctx, "key", []byte("new")))

	got, err := m.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

func TestMemory_Delete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "key", []byte("value")))
	require.NoError(t, m.Delete(ctx, "key"))

	_, err := m.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Удаление отсутствующего ключа - не ошибка
	assert.NoError(t, m.Delete(ctx, "missing"))
}

func TestMemory_Clear(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "a", []byte("1")))
	require.NoError(t, m.Set(ctx, "b", []byte("2")))
	require.NoError(t, m.Clear(ctx))

	_, err := m.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = m.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	value := []byte("value")
	require.NoError(t, m.Set(ctx, "key", value))

	// Изменение исходного и прочитанного срезов не трогает хранимое
	value[0] = 'X'
	got, err := m.Get(ctx, "key")
	require.NoError(t, err)
	got[0] = 'Y'

	fresh, err := m.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), fresh)
}
