// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateMoimRequest: name
  - AddBuddyRequest: name
  - ToggleSlotRequest: buddy_id, date, pick, begin, end
  - FinalizeRequest: date, fix, buddy_id

# Response Types

Types for JSON responses:

  - CreateMoimResponse: moim_id, share_slug
  - AddBuddyResponse: buddy_id
  - ToggleSlotResponse: slot, deleted
  - FinalizeResponse: date, fixed
  - AvailabilityResponse: tally, max_tally, unavailable_days, ...
  - UnavailableDatesResponse: dates
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Moim: the scheduling event buddies join ("group")
  - Buddy: a named participant of a moim
  - Slot: one buddy's vote for one date (pick +1/-1, fix flag)

# Constants

Pick values:

	PickAvailable   = 1
	PickUnavailable = -1

A missing slot means "no opinion" — absence is meaningful, which is why
unmarking a day deletes the row instead of writing a zero.
*/
package models
