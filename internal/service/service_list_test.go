package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jvreeken/boodschapp/internal/logger"
	"github.com/jvreeken/boodschapp/internal/store"
	"github.com/jvreeken/boodschapp/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.ListRepository
// ─────────────────────────────────────────────

type mockListRepository struct {
	createListFn       func(ctx context.Context, list models.List) (models.List, error)
	findListsByOwnerFn func(ctx context.Context, creatorID string) ([]models.List, error)
	findListByIDFn     func(ctx context.Context, creatorID, listID string) (models.List, error)
	updateListNameFn   func(ctx context.Context, creatorID, listID, name string) (models.List, error)
	deleteListFn       func(ctx context.Context, creatorID, listID string) (models.List, error)
}

func (m *mockListRepository) CreateList(ctx context.Context, list models.List) (models.List, error) {
	if m.createListFn != nil {
		return m.createListFn(ctx, list)
	}
	return list, nil
}

func (m *mockListRepository) FindListsByOwner(ctx context.Context, creatorID string) ([]models.List, error) {
	if m.findListsByOwnerFn != nil {
		return m.findListsByOwnerFn(ctx, creatorID)
	}
	return nil, nil
}

func (m *mockListRepository) FindListByID(ctx context.Context, creatorID, listID string) (models.List, error) {
	if m.findListByIDFn != nil {
		return m.findListByIDFn(ctx, creatorID, listID)
	}
	return models.List{}, store.ErrListNotFound
}

func (m *mockListRepository) UpdateListName(ctx context.Context, creatorID, listID, name string) (models.List, error) {
	if m.updateListNameFn != nil {
		return m.updateListNameFn(ctx, creatorID, listID, name)
	}
	return models.List{}, store.ErrListNotFound
}

func (m *mockListRepository) DeleteList(ctx context.Context, creatorID, listID string) (models.List, error) {
	if m.deleteListFn != nil {
		return m.deleteListFn(ctx, creatorID, listID)
	}
	return models.List{}, store.ErrListNotFound
}

const wellFormedID = "0198a6a0-0000-7000-8000-000000000009"

// ─────────────────────────────────────────────
// CreateList
// ─────────────────────────────────────────────

func TestCreateList_Success(t *testing.T) {
	var persisted models.List
	svc := NewListService(&mockListRepository{
		createListFn: func(ctx context.Context, list models.List) (models.List, error) {
			persisted = list
			return list, nil
		},
	}, logger.Nop())

	created, err := svc.CreateList(context.Background(), "uid-1", "  Aldi  ")

	require.NoError(t, err)
	assert.Equal(t, "Aldi", created.Name)
	assert.Equal(t, "uid-1", created.CreatorID)
	assert.NotEmpty(t, created.ListID)
	assert.Equal(t, created, persisted)
}

func TestCreateList_EmptyName(t *testing.T) {
	svc := NewListService(&mockListRepository{
		createListFn: func(ctx context.Context, list models.List) (models.List, error) {
			t.Fatal("store must not be touched on validation failure")
			return models.List{}, nil
		},
	}, logger.Nop())

	tests := []string{"", "   ", "\t\n"}
	for _, name := range tests {
		_, err := svc.CreateList(context.Background(), "uid-1", name)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

// ─────────────────────────────────────────────
// Lists / ListByID
// ─────────────────────────────────────────────

func TestLists_ScopedToOwner(t *testing.T) {
	svc := NewListService(&mockListRepository{
		findListsByOwnerFn: func(ctx context.Context, creatorID string) ([]models.List, error) {
			assert.Equal(t, "uid-1", creatorID)
			return []models.List{{ListID: wellFormedID, Name: "Aldi", CreatorID: "uid-1"}}, nil
		},
	}, logger.Nop())

	lists, err := svc.Lists(context.Background(), "uid-1")

	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "Aldi", lists[0].Name)
}

func TestListByID_MalformedIDIsNotFound(t *testing.T) {
	svc := NewListService(&mockListRepository{
		findListByIDFn: func(ctx context.Context, creatorID, listID string) (models.List, error) {
			t.Fatal("store must not be queried for a malformed id")
			return models.List{}, nil
		},
	}, logger.Nop())

	_, err := svc.ListByID(context.Background(), "uid-1", "123abc")
	assert.ErrorIs(t, err, store.ErrListNotFound)
}

func TestListByID_OwnershipMismatchIsNotFound(t *testing.T) {
	svc := NewListService(&mockListRepository{
		findListByIDFn: func(ctx context.Context, creatorID, listID string) (models.List, error) {
			return models.List{}, store.ErrListNotFound
		},
	}, logger.Nop())

	_, err := svc.ListByID(context.Background(), "uid-2", wellFormedID)
	assert.ErrorIs(t, err, store.ErrListNotFound)
}

// ─────────────────────────────────────────────
// UpdateListName / DeleteList
// ─────────────────────────────────────────────

func TestUpdateListName_Success(t *testing.T) {
	svc := NewListService(&mockListRepository{
		updateListNameFn: func(ctx context.Context, creatorID, listID, name string) (models.List, error) {
			return models.List{ListID: listID, Name: name, CreatorID: creatorID}, nil
		},
	}, logger.Nop())

	updated, err := svc.UpdateListName(context.Background(), "uid-1", wellFormedID, " Jumbo ")

	require.NoError(t, err)
	assert.Equal(t, "Jumbo", updated.Name)
}

func TestUpdateListName_EmptyName(t *testing.T) {
	svc := NewListService(&mockListRepository{}, logger.Nop())

	_, err := svc.UpdateListName(context.Background(), "uid-1", wellFormedID, "  ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateListName_MalformedID(t *testing.T) {
	svc := NewListService(&mockListRepository{}, logger.Nop())

	_, err := svc.UpdateListName(context.Background(), "uid-1", "nope", "Jumbo")
	assert.ErrorIs(t, err, store.ErrListNotFound)
}

func TestDeleteList_ReturnsFinalState(t *testing.T) {
	svc := NewListService(&mockListRepository{
		deleteListFn: func(ctx context.Context, creatorID, listID string) (models.List, error) {
			return models.List{ListID: listID, Name: "Aldi", CreatorID: creatorID}, nil
		},
	}, logger.Nop())

	deleted, err := svc.DeleteList(context.Background(), "uid-1", wellFormedID)

	require.NoError(t, err)
	assert.Equal(t, "Aldi", deleted.Name)
}

func TestDeleteList_MalformedID(t *testing.T) {
	svc := NewListService(&mockListRepository{}, logger.Nop())

	_, err := svc.DeleteList(context.Background(), "uid-1", "123abc")
	assert.ErrorIs(t, err, store.ErrListNotFound)
}

// A missing list is a routine outcome of owner-scoped lookups and must not
// surface in error logs; only unexpected store failures do.
func TestListByID_NotFoundLogsAtDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	ctx := log.WithContext(context.Background())

	svc := NewListService(&mockListRepository{}, logger.Nop())

	_, err := svc.ListByID(ctx, "uid-1", wellFormedID)

	require.ErrorIs(t, err, store.ErrListNotFound)
	assert.Contains(t, buf.String(), `"level":"debug"`)
	assert.NotContains(t, buf.String(), `"level":"error"`)
}

func TestUpdateListName_NotFoundLogsAtDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	ctx := log.WithContext(context.Background())

	svc := NewListService(&mockListRepository{}, logger.Nop())

	_, err := svc.UpdateListName(ctx, "uid-1", wellFormedID, "Jumbo")

	require.ErrorIs(t, err, store.ErrListNotFound)
	assert.NotContains(t, buf.String(), `"level":"error"`)
}

func TestDeleteList_NotFoundLogsAtDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	ctx := log.WithContext(context.Background())

	svc := NewListService(&mockListRepository{}, logger.Nop())

	_, err := svc.DeleteList(ctx, "uid-1", wellFormedID)

	require.ErrorIs(t, err, store.ErrListNotFound)
	assert.NotContains(t, buf.String(), `"level":"error"`)
}
