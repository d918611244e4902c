// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/overlaphq/overlap-server/middleware"
	"github.com/overlaphq/overlap-server/models"
	"github.com/overlaphq/overlap-server/realtime"
	"github.com/overlaphq/overlap-server/store"
)

type SlotHandler struct {
	store store.GroupStore
	hub   *realtime.Hub
}

func NewSlotHandler(st store.GroupStore, hub *realtime.Hub) *SlotHandler {
	return &SlotHandler{store: st, hub: hub}
}

// ToggleSlot handles POST /moims/:id/slots
//
// Voting is a toggle: no slot for (buddy, date) inserts one, the same
// pick again removes it, and the opposite pick flips it in place. The
// response reports which of the three happened.
func (h *SlotHandler) ToggleSlot(w http.ResponseWriter, r *http.Request) {
	moimID := r.PathValue("id")
	if moimID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var req models.ToggleSlotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.BuddyID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "buddy_id is required")
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	pick := models.PickAvailable
	if req.Pick != nil {
		pick = *req.Pick
	}
	if pick != models.PickAvailable && pick != models.PickUnavailable {
		middleware.ErrorResponse(w, http.StatusBadRequest, "pick must be 1 or -1")
		return
	}

	slot, deleted, err := h.store.ToggleSlot(r.Context(), moimID, req.BuddyID, req.Date, pick, req.Begin, req.End)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Moim or buddy not found")
		return
	}
	if err != nil {
		slog.Error("failed to toggle slot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.ToggleSlotResponse{Slot: slot, Deleted: deleted}
	if deleted {
		resp.Message = "Slot removed"
	} else {
		resp.Message = "Slot saved"
	}

	slog.Info("slot toggled",
		"moim_id", moimID,
		"buddy_id", req.BuddyID,
		"date", req.Date,
		"deleted", deleted)

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// DeleteSlot handles DELETE /moims/:id/slots?buddy_id=&date=
func (h *SlotHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	moimID := r.PathValue("id")
	if moimID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	buddyID, err := strconv.ParseInt(r.URL.Query().Get("buddy_id"), 10, 64)
	if err != nil || buddyID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "buddy_id parameter is required")
		return
	}
	date := r.URL.Query().Get("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	err = h.store.DeleteSlot(r.Context(), moimID, buddyID, date)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Slot not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete slot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"deleted": true,
	})
}

// Finalize handles PATCH /moims/:id/slots
//
// With no explicit fix value the date's finalized state flips; with one
// it is written as given. Finalizing a date nobody voted on records a
// zero-pick marker slot so the flag has a row to live on. State changes
// are pushed to the moim's websocket session.
func (h *SlotHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	moimID := r.PathValue("id")
	if moimID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var req models.FinalizeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	current, err := h.store.IsDateFixed(r.Context(), moimID, req.Date)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Moim not found")
		return
	}
	if err != nil {
		slog.Error("failed to read fix state", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	target := !current
	if req.Fix != nil {
		target = *req.Fix
	}

	if target != current {
		err = h.store.SetFix(r.Context(), moimID, req.Date, target, req.BuddyID)
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "No slot to finalize; provide a valid buddy_id")
			return
		}
		if err != nil {
			slog.Error("failed to set fix state", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		h.notify(moimID, req.Date, target)
	}

	slog.Info("finalize toggled", "moim_id", moimID, "date", req.Date, "fixed", target)

	middleware.JSONResponse(w, http.StatusOK, models.FinalizeResponse{
		Date:  req.Date,
		Fixed: target,
	})
}

func (h *SlotHandler) notify(moimID, date string, fixed bool) {
	if h.hub == nil {
		return
	}
	event := "canceled"
	if fixed {
		event = "confirmed"
	}
	payload, err := json.Marshal(map[string]string{
		"type": event,
		"date": date,
	})
	if err != nil {
		return
	}
	h.hub.Publish(moimID, payload)
}
