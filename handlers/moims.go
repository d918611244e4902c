// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/overlaphq/overlap-server/cliparse"
	"github.com/overlaphq/overlap-server/middleware"
	"github.com/overlaphq/overlap-server/models"
	"github.com/overlaphq/overlap-server/slug"
	"github.com/overlaphq/overlap-server/store"
)

type MoimHandler struct {
	store store.GroupStore
	cfg   cliparse.Config
}

func NewMoimHandler(st store.GroupStore, cfg cliparse.Config) *MoimHandler {
	return &MoimHandler{store: st, cfg: cfg}
}

// CreateMoim handles POST /moims
func (h *MoimHandler) CreateMoim(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMoimRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if len(name) > 100 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name must be at most 100 characters")
		return
	}

	m := &models.Moim{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	m.ShareSlug = slug.ShareSlug(m.ID, h.cfg.SlugSalt)

	if err := h.store.CreateMoim(r.Context(), m); err != nil {
		slog.Error("failed to create moim", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("moim created", "moim_id", m.ID, "name", m.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateMoimResponse{
		MoimID:    m.ID,
		ShareSlug: m.ShareSlug,
	})
}

// GetMoim handles GET /moims/:id
// Returns the moim with its buddies and slots, mirroring what the
// calendar view needs in a single request.
func (h *MoimHandler) GetMoim(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	m, err := h.store.GetMoim(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Moim not found")
		return
	}
	if err != nil {
		slog.Error("failed to get moim", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, m)
}

// SearchMoims handles GET /moims/search?name=
func (h *MoimHandler) SearchMoims(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name parameter is required")
		return
	}

	moims, err := h.store.SearchMoims(r.Context(), name)
	if err != nil {
		slog.Error("failed to search moims", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"moims": moims,
	})
}
