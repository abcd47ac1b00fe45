package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jvreeken/boodschapp/internal/logger"
	"github.com/jvreeken/boodschapp/models"
)

// listRepository is the PostgreSQL-backed implementation of [ListRepository].
// It executes all list CRUD operations against the "lists" table using the
// embedded [*DB] connection.
//
// Every method is owner-scoped: the WHERE clause always includes creator_id,
// so a list owned by another user is indistinguishable from a missing one.
type listRepository struct {
	*DB
	logger *logger.Logger
}

// NewListRepository constructs a [ListRepository] backed by the provided
// database connection and logger.
func NewListRepository(db *DB, logger *logger.Logger) ListRepository {
	logger.Debug().Msg("creating list repository")
	return &listRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateList persists a new list record and returns the fully populated
// [models.List] with server-assigned fields (CreatedAt).
func (r *listRepository) CreateList(ctx context.Context, list models.List) (models.List, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateListQuery(list.ListID, list.Name, list.CreatorID)
	if err != nil {
		log.Err(err).
			Str("func", "listRepository.CreateList").
			Str("creator_id", list.CreatorID).
			Msg("failed to create query")
		return models.List{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.List
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.ListID, &created.Name, &created.CreatorID, &created.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "listRepository.CreateList").
			Str("creator_id", list.CreatorID).
			Msg("failed to insert list")
		return models.List{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindListsByOwner retrieves every list owned by the given user in
// store-native order. Returns an empty slice when no records are found.
func (r *listRepository) FindListsByOwner(ctx context.Context, creatorID string) ([]models.List, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindListsByOwnerQuery(creatorID)
	if err != nil {
		log.Err(err).
			Str("func", "listRepository.FindListsByOwner").
			Str("creator_id", creatorID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "listRepository.FindListsByOwner").
			Str("creator_id", creatorID).
			Msg("failed to execute query for getting owner lists")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.List, 0, 10)

	for rows.Next() {
		var item models.List

		scanErr := rows.Scan(&item.ListID, &item.Name, &item.CreatorID, &item.CreatedAt)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "listRepository.FindListsByOwner").
				Str("creator_id", creatorID).
				Msg("failed to scan list row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "listRepository.FindListsByOwner").
			Str("creator_id", creatorID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// FindListByID retrieves a single list by id and owner.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrListNotFound] (missing or owned by someone else).
func (r *listRepository) FindListByID(ctx context.Context, creatorID, listID string) (models.List, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindListByIDQuery(creatorID, listID)
	if err != nil {
		log.Err(err).
			Str("func", "listRepository.FindListByID").
			Str("creator_id", creatorID).
			Msg("failed to create query")
		return models.List{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.List
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.ListID, &found.Name, &found.CreatorID, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.List{}, ErrListNotFound
		}

		log.Err(err).
			Str("func", "listRepository.FindListByID").
			Str("creator_id", creatorID).
			Str("list_id", listID).
			Msg("failed to scan list row")
		return models.List{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// UpdateListName renames the list and returns the post-update record via a
// RETURNING clause. Only the name column is ever touched.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrListNotFound] (missing or owned by someone else).
func (r *listRepository) UpdateListName(ctx context.Context, creatorID, listID, name string) (models.List, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateListNameQuery(creatorID, listID, name)
	if err != nil {
		log.Err(err).
			Str("func", "listRepository.UpdateListName").
			Str("creator_id", creatorID).
			Msg("failed to create query")
		return models.List{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.List
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&updated.ListID, &updated.Name, &updated.CreatorID, &updated.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.List{}, ErrListNotFound
		}

		log.Err(err).
			Str("func", "listRepository.UpdateListName").
			Str("creator_id", creatorID).
			Str("list_id", listID).
			Msg("failed to update list")
		return models.List{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteList removes the list and returns its final state via a RETURNING
// clause.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrListNotFound] (missing or owned by someone else).
func (r *listRepository) DeleteList(ctx context.Context, creatorID, listID string) (models.List, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteListQuery(creatorID, listID)
	if err != nil {
		log.Err(err).
			Str("func", "listRepository.DeleteList").
			Str("creator_id", creatorID).
			Msg("failed to create query")
		return models.List{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted models.List
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&deleted.ListID, &deleted.Name, &deleted.CreatorID, &deleted.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.List{}, ErrListNotFound
		}

		log.Err(err).
			Str("func", "listRepository.DeleteList").
			Str("creator_id", creatorID).
			Str("list_id", listID).
			Msg("failed to delete list")
		return models.List{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}
