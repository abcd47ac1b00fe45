package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCreateListQuery(t *testing.T) {
	query, args, err := buildCreateListQuery("lid-1", "Aldi", "uid-1")

	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO lists")
	assert.Contains(t, query, "RETURNING list_id, name, creator_id, created_at")
	assert.Equal(t, []any{"lid-1", "Aldi", "uid-1"}, args)
}

func TestBuildFindListsByOwnerQuery(t *testing.T) {
	query, args, err := buildFindListsByOwnerQuery("uid-1")

	require.NoError(t, err)
	assert.Contains(t, query, "FROM lists")
	assert.Contains(t, query, "creator_id = $1")
	assert.Equal(t, []any{"uid-1"}, args)
}

func TestBuildFindListByIDQuery_OwnerScoped(t *testing.T) {
	query, args, err := buildFindListByIDQuery("uid-1", "lid-1")

	require.NoError(t, err)
	// both identity and owner must appear in the predicate
	assert.Contains(t, query, "creator_id =")
	assert.Contains(t, query, "list_id =")
	assert.Len(t, args, 2)
}

func TestBuildUpdateListNameQuery_OnlyName(t *testing.T) {
	query, args, err := buildUpdateListNameQuery("uid-1", "lid-1", "Jumbo")

	require.NoError(t, err)
	assert.Contains(t, query, "UPDATE lists")
	assert.Contains(t, query, "SET name =")
	assert.NotContains(t, query, "SET creator_id") // owner is a predicate, never a SET target
	assert.Contains(t, query, "RETURNING list_id, name, creator_id, created_at")
	assert.Len(t, args, 3)
}

func TestBuildDeleteListQuery(t *testing.T) {
	query, args, err := buildDeleteListQuery("uid-1", "lid-1")

	require.NoError(t, err)
	assert.Contains(t, query, "DELETE FROM lists")
	assert.Contains(t, query, "RETURNING list_id, name, creator_id, created_at")
	assert.Len(t, args, 2)
}
