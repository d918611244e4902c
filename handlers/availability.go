// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/overlaphq/overlap-server/middleware"
	"github.com/overlaphq/overlap-server/models"
	"github.com/overlaphq/overlap-server/schedule"
	"github.com/overlaphq/overlap-server/store"
)

type AvailabilityHandler struct {
	store store.GroupStore
}

func NewAvailabilityHandler(st store.GroupStore) *AvailabilityHandler {
	return &AvailabilityHandler{store: st}
}

// aggregate loads the moim and runs the month aggregation shared by the
// availability, recommendation and unavailable-dates endpoints. On
// failure the HTTP error has already been written and ok is false.
func (h *AvailabilityHandler) aggregate(w http.ResponseWriter, r *http.Request) (*schedule.Aggregation, *models.Moim, bool) {
	moimID := r.PathValue("id")
	if moimID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return nil, nil, false
	}

	q := r.URL.Query()
	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "year parameter is required")
		return nil, nil, false
	}
	month, err := strconv.Atoi(q.Get("month"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "month parameter is required")
		return nil, nil, false
	}

	var buddyFilter int64
	if raw := q.Get("buddy_id"); raw != "" {
		buddyFilter, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "buddy_id must be an integer")
			return nil, nil, false
		}
	}

	m, err := h.store.GetMoim(r.Context(), moimID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Moim not found")
		return nil, nil, false
	}
	if err != nil {
		slog.Error("failed to get moim", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return nil, nil, false
	}

	names := make(map[int64]string, len(m.Buddies))
	for _, b := range m.Buddies {
		names[b.ID] = b.Name
	}

	agg, err := schedule.Aggregate(m.Slots, names, year, month, buddyFilter)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return nil, nil, false
	}
	return agg, m, true
}

// GetAvailability handles GET /moims/:id/availability?year=&month=
// Returns the heatmap tally for the month plus the day sets the
// calendar needs: vetoed days, finalized days, and who voted where.
func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	agg, m, ok := h.aggregate(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AvailabilityResponse{
		Year:                   agg.Year,
		Month:                  agg.Month,
		Tally:                  agg.Tally,
		MaxTally:               agg.MaxTally,
		UnavailableDays:        schedule.Days(agg.Unavailable),
		FinalizedDays:          schedule.Days(agg.Finalized),
		VotersByDay:            agg.VotersByDay,
		UnavailableVotersByDay: agg.UnavailableVotersByDay,
		TotalBuddies:           len(m.Buddies),
	})
}

// GetRecommendations handles GET /moims/:id/recommendations?year=&month=
func (h *AvailabilityHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	agg, m, ok := h.aggregate(w, r)
	if !ok {
		return
	}

	recs := schedule.Rank(agg, len(m.Buddies))

	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"recommendations": recs,
	})
}

// GetUnavailable handles GET /moims/:id/unavailable?year=&month=
func (h *AvailabilityHandler) GetUnavailable(w http.ResponseWriter, r *http.Request) {
	agg, _, ok := h.aggregate(w, r)
	if !ok {
		return
	}

	days := schedule.Days(agg.Unavailable)
	dates := make([]string, 0, len(days))
	for _, d := range days {
		dates = append(dates, schedule.DateString(agg.Year, agg.Month, d))
	}

	middleware.JSONResponse(w, http.StatusOK, models.UnavailableDatesResponse{
		Dates: dates,
	})
}
