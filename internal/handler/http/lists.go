package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jvreeken/boodschapp/internal/logger"
	"github.com/jvreeken/boodschapp/internal/service"
	"github.com/jvreeken/boodschapp/internal/store"
	"github.com/jvreeken/boodschapp/internal/utils"
	"github.com/jvreeken/boodschapp/models"
)

// listsResponse wraps the collection endpoint payload.
type listsResponse struct {
	Lists []models.List `json:"lists"`
}

// listResponse wraps single-list payloads returned by the by-id endpoints.
type listResponse struct {
	List models.List `json:"list"`
}

func (h *Handler) createList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var list models.List
	if err := json.NewDecoder(r.Body).Decode(&list); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdList, err := h.services.ListService.CreateList(ctx, user.UserID, list.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during list creation")
			http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, createdList, http.StatusOK)
}

func (h *Handler) getLists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	lists, err := h.services.ListService.Lists(ctx, user.UserID)
	if err != nil {
		log.Err(err).Msg("error fetching lists")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, listsResponse{Lists: lists}, http.StatusOK)
}

func (h *Handler) getList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	listID := chi.URLParam(r, "id")

	list, err := h.services.ListService.ListByID(ctx, user.UserID, listID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrListNotFound):
			log.Err(err).Str("list_id", listID).Msg("list was not found")
			http.Error(w, store.ErrListNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("error fetching list")
			http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, listResponse{List: list}, http.StatusOK)
}

func (h *Handler) updateList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	listID := chi.URLParam(r, "id")

	var patch models.List
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedList, err := h.services.ListService.UpdateListName(ctx, user.UserID, listID, patch.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrListNotFound):
			log.Err(err).Str("list_id", listID).Msg("list was not found")
			http.Error(w, store.ErrListNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during list update")
			http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, listResponse{List: updatedList}, http.StatusOK)
}

func (h *Handler) deleteList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	listID := chi.URLParam(r, "id")

	deletedList, err := h.services.ListService.DeleteList(ctx, user.UserID, listID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrListNotFound):
			log.Err(err).Str("list_id", listID).Msg("list was not found")
			http.Error(w, store.ErrListNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during list deletion")
			http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, listResponse{List: deletedList}, http.StatusOK)
}
