// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/overlaphq/overlap-server/models"
	"github.com/overlaphq/overlap-server/schedule"
	"github.com/overlaphq/overlap-server/store"
	"github.com/overlaphq/overlap-server/testutil"
)

// TestCoordinationFlow walks the whole lifecycle the way a group would:
// create a moim, everyone joins, votes come in, the group checks the
// ranking, locks a date, and the calendar reflects it.
func TestCoordinationFlow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	st := store.New(conn)

	moims := NewMoimHandler(st, cfg)
	buddies := NewBuddyHandler(st)
	slots := NewSlotHandler(st, nil)
	availability := NewAvailabilityHandler(st)

	// Create the moim.
	w := httptest.NewRecorder()
	moims.CreateMoim(w, testutil.MakeRequest("POST", "/moims", models.CreateMoimRequest{Name: "Game Night"}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)
	var created models.CreateMoimResponse
	testutil.AssertJSON(t, w, &created)
	moimID := created.MoimID

	// Three buddies join.
	var buddyIDs []int64
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		req := testutil.MakeRequest("POST", "/moims/"+moimID+"/buddies", models.AddBuddyRequest{Name: name}, nil)
		req.SetPathValue("id", moimID)
		w = httptest.NewRecorder()
		buddies.AddBuddy(w, req)
		testutil.AssertStatus(t, w, http.StatusCreated)
		var resp models.AddBuddyResponse
		testutil.AssertJSON(t, w, &resp)
		buddyIDs = append(buddyIDs, resp.BuddyID)
	}

	vote := func(buddyID int64, date string, pick int) {
		t.Helper()
		body := models.ToggleSlotRequest{BuddyID: buddyID, Date: date, Pick: &pick}
		req := testutil.MakeRequest("POST", "/moims/"+moimID+"/slots", body, nil)
		req.SetPathValue("id", moimID)
		w := httptest.NewRecorder()
		slots.ToggleSlot(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	// Day 10 suits everyone, day 24 suits two, day 17 is vetoed.
	vote(buddyIDs[0], "2024-08-10", models.PickAvailable)
	vote(buddyIDs[1], "2024-08-10", models.PickAvailable)
	vote(buddyIDs[2], "2024-08-10", models.PickAvailable)
	vote(buddyIDs[0], "2024-08-24", models.PickAvailable)
	vote(buddyIDs[1], "2024-08-24", models.PickAvailable)
	vote(buddyIDs[0], "2024-08-17", models.PickAvailable)
	vote(buddyIDs[2], "2024-08-17", models.PickUnavailable)

	// The ranking puts the unanimous day on top.
	req := testutil.MakeRequest("GET", "/moims/"+moimID+"/recommendations?year=2024&month=8", nil, nil)
	req.SetPathValue("id", moimID)
	w = httptest.NewRecorder()
	availability.GetRecommendations(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var recs struct {
		Recommendations []schedule.Recommendation `json:"recommendations"`
	}
	testutil.AssertJSON(t, w, &recs)
	if len(recs.Recommendations) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(recs.Recommendations))
	}
	if recs.Recommendations[0].Date != "2024-08-10" || !recs.Recommendations[0].IsUnanimous {
		t.Fatalf("Expected unanimous 2024-08-10 on top, got %+v", recs.Recommendations[0])
	}

	// Lock the winner.
	req = testutil.MakeRequest("PATCH", "/moims/"+moimID+"/slots", models.FinalizeRequest{Date: "2024-08-10"}, nil)
	req.SetPathValue("id", moimID)
	w = httptest.NewRecorder()
	slots.Finalize(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// The calendar shows the locked day.
	req = testutil.MakeRequest("GET", "/moims/"+moimID+"/availability?year=2024&month=8", nil, nil)
	req.SetPathValue("id", moimID)
	w = httptest.NewRecorder()
	availability.GetAvailability(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var avail models.AvailabilityResponse
	testutil.AssertJSON(t, w, &avail)
	if len(avail.FinalizedDays) != 1 || avail.FinalizedDays[0] != 10 {
		t.Errorf("Expected day 10 finalized, got %v", avail.FinalizedDays)
	}
	if avail.Tally[10] != 3 || avail.MaxTally != 3 {
		t.Errorf("Finalizing must not change tallies: %v max %d", avail.Tally, avail.MaxTally)
	}
	if len(avail.UnavailableDays) != 1 || avail.UnavailableDays[0] != 17 {
		t.Errorf("Expected day 17 vetoed, got %v", avail.UnavailableDays)
	}

	// The moim view carries everything for a full rehydrate.
	req = testutil.MakeRequest("GET", "/moims/"+moimID, nil, nil)
	req.SetPathValue("id", moimID)
	w = httptest.NewRecorder()
	moims.GetMoim(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var m models.Moim
	testutil.AssertJSON(t, w, &m)
	if len(m.Buddies) != 3 || len(m.Slots) != 7 {
		t.Errorf("Expected 3 buddies and 7 slots, got %d and %d", len(m.Buddies), len(m.Slots))
	}
}
