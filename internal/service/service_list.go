package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jvreeken/boodschapp/internal/logger"
	"github.com/jvreeken/boodschapp/internal/store"
	"github.com/jvreeken/boodschapp/internal/utils"
	"github.com/jvreeken/boodschapp/models"
)

// listService is the concrete implementation of ListService. All operations
// are owner-scoped; the creator id always comes from the authenticated
// identity, never from the request body.
type listService struct {
	listRepository store.ListRepository
	ids            *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewListService constructs a ListService backed by the given ListRepository.
func NewListService(listRepository store.ListRepository, logger *logger.Logger) ListService {
	return &listService{
		listRepository: listRepository,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// CreateList persists a new list owned by creatorID.
//
// The name is trimmed first; an empty result fails with a *ValidationError
// and nothing is persisted.
func (s *listService) CreateList(ctx context.Context, creatorID, name string) (models.List, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		log.Error().Str("creator_id", creatorID).Msg("empty list name provided")
		return models.List{}, &ValidationError{Violations: []string{"name must not be empty"}}
	}

	list := models.List{
		ListID:    s.ids.Generate(),
		Name:      name,
		CreatorID: creatorID,
	}

	created, err := s.listRepository.CreateList(ctx, list)
	if err != nil {
		log.Err(err).Str("creator_id", creatorID).Msg("list creation ended with error")
		return models.List{}, fmt.Errorf("list creation ended with error: %w", err)
	}

	return created, nil
}

// Lists returns all lists owned by creatorID in store-native order.
func (s *listService) Lists(ctx context.Context, creatorID string) ([]models.List, error) {
	log := logger.FromContext(ctx)

	lists, err := s.listRepository.FindListsByOwner(ctx, creatorID)
	if err != nil {
		log.Err(err).Str("creator_id", creatorID).Msg("list search by owner failed")
		return nil, fmt.Errorf("list search by owner failed: %w", err)
	}

	return lists, nil
}

// ListByID returns the list owned by creatorID with the given id.
//
// A malformed id fails with [store.ErrListNotFound] without touching the
// store, the same error a nonexistent or foreign-owned list produces.
func (s *listService) ListByID(ctx context.Context, creatorID, listID string) (models.List, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(listID) {
		return models.List{}, store.ErrListNotFound
	}

	found, err := s.listRepository.FindListByID(ctx, creatorID, listID)
	if err != nil {
		if errors.Is(err, store.ErrListNotFound) {
			log.Debug().Str("creator_id", creatorID).Str("list_id", listID).Msg("list was not found")
			return models.List{}, err
		}
		log.Err(err).Str("creator_id", creatorID).Str("list_id", listID).Msg("list search by id failed")
		return models.List{}, fmt.Errorf("list search by id failed: %w", err)
	}

	return found, nil
}

// UpdateListName renames the list and returns the post-update record. Only
// the name may change; any other field supplied by the caller is ignored by
// construction.
func (s *listService) UpdateListName(ctx context.Context, creatorID, listID, name string) (models.List, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(listID) {
		return models.List{}, store.ErrListNotFound
	}

	name = strings.TrimSpace(name)
	if name == "" {
		log.Error().Str("creator_id", creatorID).Msg("empty list name provided")
		return models.List{}, &ValidationError{Violations: []string{"name must not be empty"}}
	}

	updated, err := s.listRepository.UpdateListName(ctx, creatorID, listID, name)
	if err != nil {
		if errors.Is(err, store.ErrListNotFound) {
			log.Debug().Str("creator_id", creatorID).Str("list_id", listID).Msg("list was not found")
			return models.List{}, err
		}
		log.Err(err).Str("creator_id", creatorID).Str("list_id", listID).Msg("list update failed")
		return models.List{}, fmt.Errorf("list update failed: %w", err)
	}

	return updated, nil
}

// DeleteList removes the list and returns its final state.
func (s *listService) DeleteList(ctx context.Context, creatorID, listID string) (models.List, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(listID) {
		return models.List{}, store.ErrListNotFound
	}

	deleted, err := s.listRepository.DeleteList(ctx, creatorID, listID)
	if err != nil {
		if errors.Is(err, store.ErrListNotFound) {
			log.Debug().Str("creator_id", creatorID).Str("list_id", listID).Msg("list was not found")
			return models.List{}, err
		}
		log.Err(err).Str("creator_id", creatorID).Str("list_id", listID).Msg("list deletion failed")
		return models.List{}, fmt.Errorf("list deletion failed: %w", err)
	}

	return deleted, nil
}
