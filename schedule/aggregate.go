// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schedule

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/overlaphq/overlap-server/models"
)

// Aggregation is the per-month summary of a moim's vote records. Day keys
// are days of the month (1-31). Tally sums positive picks only; a pick of
// -1 never contributes to any sum and instead flags the day in
// Unavailable. MaxTally has a floor of 1 so heatmap shading can divide by
// it unconditionally.
type Aggregation struct {
	Year  int
	Month int

	Tally       map[int]int
	MaxTally    int
	Unavailable map[int]bool
	Finalized   map[int]bool

	// VotersByDay lists buddy names behind each positive tally, sorted
	// for deterministic output. UnavailableVotersByDay lists who vetoed.
	VotersByDay            map[int][]string
	UnavailableVotersByDay map[int][]string
}

// Aggregate reduces a moim's full slot list to a summary for one
// (year, month) window. buddyNames maps buddy IDs to display names;
// buddyFilter > 0 restricts positive tallies to a single buddy
// ("show only my votes"), while unavailability stays unfiltered — any
// participant's -1 vetoes the day for everyone.
//
// Pure function of its inputs, O(n) in the slot count. Slots whose date
// fails to parse are skipped with a warning, never a failure.
func Aggregate(slots []models.Slot, buddyNames map[int64]string, year, month int, buddyFilter int64) (*Aggregation, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be 1-12, got %d", month)
	}

	agg := &Aggregation{
		Year:                   year,
		Month:                  month,
		Tally:                  make(map[int]int),
		Unavailable:            make(map[int]bool),
		Finalized:              make(map[int]bool),
		VotersByDay:            make(map[int][]string),
		UnavailableVotersByDay: make(map[int][]string),
	}

	for _, slot := range slots {
		d, err := time.Parse("2006-01-02", slot.Date)
		if err != nil {
			slog.Warn("skipping slot with unparseable date",
				"moim_id", slot.MoimID,
				"slot_id", slot.ID,
				"date", slot.Date,
			)
			continue
		}
		if d.Year() != year || int(d.Month()) != month {
			continue
		}
		day := d.Day()

		if slot.Fix {
			agg.Finalized[day] = true
		}

		if slot.Pick == models.PickUnavailable {
			// A veto counts no matter whose votes are being viewed.
			agg.Unavailable[day] = true
			if name, ok := buddyNames[slot.BuddyID]; ok {
				agg.UnavailableVotersByDay[day] = append(agg.UnavailableVotersByDay[day], name)
			}
			continue
		}

		if slot.Pick <= 0 {
			continue // marker slots (pick 0) carry only the fix flag
		}
		if buddyFilter > 0 && slot.BuddyID != buddyFilter {
			continue
		}

		agg.Tally[day] += slot.Pick
		if name, ok := buddyNames[slot.BuddyID]; ok {
			agg.VotersByDay[day] = append(agg.VotersByDay[day], name)
		}
	}

	agg.MaxTally = 1
	for _, count := range agg.Tally {
		if count > agg.MaxTally {
			agg.MaxTally = count
		}
	}

	for day := range agg.VotersByDay {
		sort.Strings(agg.VotersByDay[day])
	}
	for day := range agg.UnavailableVotersByDay {
		sort.Strings(agg.UnavailableVotersByDay[day])
	}

	return agg, nil
}

// Days returns the sorted keys of a day set, for JSON output.
func Days(set map[int]bool) []int {
	days := make([]int, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// DateString formats a (year, month, day) triple as YYYY-MM-DD, the
// wire format slots store their dates in.
func DateString(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
