package request

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/exp/slog"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewService_Seeded(t *testing.T) {
	svc := NewService(testLogger())

	all := svc.All()
	require.Len(t, all, 2)

	// Демонстрационные записи: одна в работе, одна закрыта
	assert.Len(t, svc.Active(), 1)
	assert.Len(t, svc.Completed(), 1)
}

func TestService_Create(t *testing.T) {
	svc := NewService(testLogger())

	req, err := svc.Create(CategoryCleaning, "Нужны полотенца")
	require.NoError(t, err)

	assert.NotEmpty(t, req.ID)
	assert.Equal(t, StatusNew, req.Status)
	assert.Equal(t, req.Created, req.Updated)

	// Новый запрос встает первым в списке
	all := svc.All()
	require.Len(t, all, 3)
	assert.Equal(t, req.ID, all[0].ID)
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(testLogger())

	_, err := svc.Create(CategoryCleaning, "")
	assert.ErrorIs(t, err, ErrMissingDescription)

	_, err = svc.Create(Category("spam"), "текст")
	assert.Error(t, err)
}

func TestService_Resolve(t *testing.T) {
	svc := NewService(testLogger())

	req, err := svc.Create(CategoryTechnical, "Не работает душ")
	require.NoError(t, err)

	require.NoError(t, svc.Resolve(req.ID))

	for _, r := range svc.All() {
		if r.ID == req.ID {
			assert.Equal(t, StatusResolved, r.Status)
			return
		}
	}
	t.Fatalf("запрос %s не найден после Resolve", req.ID)
}

func TestService_Resolve_NotFound(t *testing.T) {
	svc := NewService(testLogger())
	assert.ErrorIs(t, svc.Resolve("missing"), ErrNotFound)
}

func TestStatus_Active(t *testing.T) {
	assert.True(t, StatusNew.Active())
	assert.True(t, StatusInProgress.Active())
	assert.False(t, StatusResolved.Active())
	assert.False(t, StatusCancelled.Active())
}
