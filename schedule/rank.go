// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schedule

import "sort"

// TopN bounds the length of a ranked recommendation list.
const TopN = 10

// Recommendation is one ranked candidate meeting date.
type Recommendation struct {
	Date        string `json:"date"`
	Votes       int    `json:"votes"`
	IsUnanimous bool   `json:"is_unanimous"`
	IsFinalized bool   `json:"is_finalized"`
	Recommended bool   `json:"recommended"`
}

// Rank turns an aggregation into a bounded, ordered list of candidate
// dates. Days anyone marked unavailable are excluded outright — a single
// -1 is a hard veto, however many positive votes the day collected — and
// so are days with no positive votes at all.
//
// Order: votes descending; ties go to finalized days first (a locked
// date keeps its place), then to the earlier calendar date. Output is at
// most TopN entries and is stable for identical input.
//
// IsUnanimous marks days whose tally equals the moim's participant
// count (false across the board when totalBuddies is 0). Recommended
// marks the entries the UI badges: the top entry when no day in the
// month is finalized yet, plus any unanimous day not already locked.
func Rank(agg *Aggregation, totalBuddies int) []Recommendation {
	type candidate struct {
		day   int
		votes int
		fixed bool
	}

	var cands []candidate
	for day, votes := range agg.Tally {
		if votes == 0 || agg.Unavailable[day] {
			continue
		}
		cands = append(cands, candidate{
			day:   day,
			votes: votes,
			fixed: agg.Finalized[day],
		})
	}

	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.votes != b.votes {
			return a.votes > b.votes
		}
		if a.fixed != b.fixed {
			return a.fixed
		}
		return a.day < b.day
	})

	if len(cands) > TopN {
		cands = cands[:TopN]
	}

	// A finalized day suppresses the top-pick badge even when that day
	// itself is not rankable (e.g. fixed with zero votes).
	hasFixed := len(agg.Finalized) > 0

	recs := make([]Recommendation, len(cands))
	for i, c := range cands {
		unanimous := totalBuddies > 0 && c.votes == totalBuddies
		recs[i] = Recommendation{
			Date:        DateString(agg.Year, agg.Month, c.day),
			Votes:       c.votes,
			IsUnanimous: unanimous,
			IsFinalized: c.fixed,
			Recommended: (!hasFixed && i == 0) || (unanimous && !c.fixed),
		}
	}
	return recs
}
