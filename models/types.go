// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Pick values for a slot
const (
	PickAvailable   = 1
	PickUnavailable = -1
)

// Request types

type CreateMoimRequest struct {
	Name string `json:"name"`
}

type AddBuddyRequest struct {
	Name string `json:"name"`
}

// ToggleSlotRequest marks or unmarks a day for one buddy. Pick defaults
// to PickAvailable when omitted. Begin and End are optional times of day
// kept for forward compatibility; the aggregation engine ignores them.
type ToggleSlotRequest struct {
	BuddyID int64   `json:"buddy_id"`
	Date    string  `json:"date"`
	Pick    *int    `json:"pick,omitempty"`
	Begin   *string `json:"begin,omitempty"`
	End     *string `json:"end,omitempty"`
}

// FinalizeRequest locks or unlocks a date as the moim's meeting day.
// When Fix is nil the current state is flipped (click semantics).
// BuddyID is only required when finalizing a date nobody has voted for,
// so the marker slot has an owner.
type FinalizeRequest struct {
	Date    string `json:"date"`
	Fix     *bool  `json:"fix,omitempty"`
	BuddyID int64  `json:"buddy_id,omitempty"`
}

// Response types

type CreateMoimResponse struct {
	MoimID    string `json:"moim_id"`
	ShareSlug string `json:"share_slug"`
}

type AddBuddyResponse struct {
	BuddyID int64 `json:"buddy_id"`
}

type ToggleSlotResponse struct {
	Slot    *Slot  `json:"slot,omitempty"`
	Deleted bool   `json:"deleted"`
	Message string `json:"message,omitempty"`
}

type FinalizeResponse struct {
	Date  string `json:"date"`
	Fixed bool   `json:"fixed"`
}

// AvailabilityResponse is the per-month aggregation used to render the
// heatmap. Tally only counts positive picks; a day with any PickUnavailable
// record appears in UnavailableDays regardless of how many positive votes
// it also has. MaxTally is never zero so it can be used as a shading
// denominator directly.
type AvailabilityResponse struct {
	Year                   int              `json:"year"`
	Month                  int              `json:"month"`
	Tally                  map[int]int      `json:"tally"`
	MaxTally               int              `json:"max_tally"`
	UnavailableDays        []int            `json:"unavailable_days"`
	FinalizedDays          []int            `json:"finalized_days"`
	VotersByDay            map[int][]string `json:"voters_by_day"`
	UnavailableVotersByDay map[int][]string `json:"unavailable_voters_by_day"`
	TotalBuddies           int              `json:"total_buddies"`
}

type UnavailableDatesResponse struct {
	Dates []string `json:"dates"`
}

// Domain types

// Moim is a scheduling event that buddies join and vote in.
type Moim struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ShareSlug string    `json:"share_slug"`
	CreatedAt time.Time `json:"created_at"`
	Buddies   []Buddy   `json:"buddies,omitempty"`
	Slots     []Slot    `json:"slots,omitempty"`
}

// Buddy is a named participant of a moim. Names are unique per moim.
type Buddy struct {
	ID        int64     `json:"id"`
	MoimID    string    `json:"moim_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Slot is one buddy's vote for one date within a moim. At most one slot
// exists per (moim, buddy, date); toggling off deletes the row outright.
// Fix marks the date as the moim's confirmed meeting day.
type Slot struct {
	ID        int64     `json:"id"`
	MoimID    string    `json:"moim_id"`
	BuddyID   int64     `json:"buddy_id"`
	Date      string    `json:"date"`
	Begin     *string   `json:"begin,omitempty"`
	End       *string   `json:"end,omitempty"`
	Pick      int       `json:"pick"`
	Fix       bool      `json:"fix"`
	CreatedAt time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
