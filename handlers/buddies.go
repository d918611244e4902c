// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/overlaphq/overlap-server/middleware"
	"github.com/overlaphq/overlap-server/models"
	"github.com/overlaphq/overlap-server/store"
)

type BuddyHandler struct {
	store store.GroupStore
}

func NewBuddyHandler(st store.GroupStore) *BuddyHandler {
	return &BuddyHandler{store: st}
}

// AddBuddy handles POST /moims/:id/buddies
// Buddy names are unique within a moim; a duplicate is a 409 so the
// client can tell "name taken" apart from a generic failure.
func (h *BuddyHandler) AddBuddy(w http.ResponseWriter, r *http.Request) {
	moimID := r.PathValue("id")
	if moimID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var req models.AddBuddyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if len(name) < 2 || len(name) > 50 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name must be 2-50 characters")
		return
	}

	b, err := h.store.AddBuddy(r.Context(), moimID, name)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Moim not found")
		return
	}
	if errors.Is(err, store.ErrConflict) {
		middleware.ErrorResponse(w, http.StatusConflict, "A buddy with that name already exists")
		return
	}
	if err != nil {
		slog.Error("failed to add buddy", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("buddy added", "moim_id", moimID, "buddy_id", b.ID, "name", b.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.AddBuddyResponse{
		BuddyID: b.ID,
	})
}
