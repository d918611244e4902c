// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/overlaphq/overlap-server/cliparse"
	"github.com/overlaphq/overlap-server/handlers"
	"github.com/overlaphq/overlap-server/metrics"
	"github.com/overlaphq/overlap-server/middleware"
	"github.com/overlaphq/overlap-server/realtime"
	"github.com/overlaphq/overlap-server/store"
)

func NewRouter(st store.GroupStore, cfg cliparse.Config, hub *realtime.Hub) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	moimHandler := handlers.NewMoimHandler(st, cfg)
	buddyHandler := handlers.NewBuddyHandler(st)
	slotHandler := handlers.NewSlotHandler(st, hub)
	availabilityHandler := handlers.NewAvailabilityHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics
	mux.Handle("GET /metrics", metrics.Handler())

	// Moim management
	mux.HandleFunc("POST /moims", middleware.WithLogging(moimHandler.CreateMoim))
	mux.HandleFunc("GET /moims/search", middleware.WithLogging(moimHandler.SearchMoims))
	mux.HandleFunc("GET /moims/{id}", middleware.WithLogging(moimHandler.GetMoim))

	// Buddies
	mux.HandleFunc("POST /moims/{id}/buddies", middleware.WithLogging(buddyHandler.AddBuddy))

	// Availability voting and finalization
	mux.HandleFunc("POST /moims/{id}/slots", middleware.WithLogging(slotHandler.ToggleSlot))
	mux.HandleFunc("DELETE /moims/{id}/slots", middleware.WithLogging(slotHandler.DeleteSlot))
	mux.HandleFunc("PATCH /moims/{id}/slots", middleware.WithLogging(slotHandler.Finalize))

	// Read-side aggregation
	mux.HandleFunc("GET /moims/{id}/availability", middleware.WithLogging(availabilityHandler.GetAvailability))
	mux.HandleFunc("GET /moims/{id}/recommendations", middleware.WithLogging(availabilityHandler.GetRecommendations))
	mux.HandleFunc("GET /moims/{id}/unavailable", middleware.WithLogging(availabilityHandler.GetUnavailable))

	// Realtime grid sessions
	if hub != nil {
		mux.HandleFunc("GET /ws/{session}", hub.ServeWS)
	}

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("overlap API v1"))
	})

	return mux
}
