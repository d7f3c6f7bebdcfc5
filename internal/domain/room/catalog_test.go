package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	rooms := catalog.List()
	require.Len(t, rooms, 6)

	// Каждая запись справочника заполнена
	for _, r := range rooms {
		assert.NotZero(t, r.ID)
		assert.NotEmpty(t, r.Title)
		assert.NotEmpty(t, r.Type)
		assert.Greater(t, r.Price, 0)
		assert.Greater(t, r.Capacity, 0)
		assert.NotEmpty(t, r.Amenities)
	}
}

func TestCatalog_Get(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	r, err := catalog.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 1, r.ID)
	assert.Equal(t, 800, r.Price)

	_, err = catalog.Get(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_ListReturnsCopy(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	rooms := catalog.List()
	rooms[0].Title = "испорчено"

	fresh := catalog.List()
	assert.NotEqual(t, "испорчено", fresh[0].Title)
}
