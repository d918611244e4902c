// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package schedule is the availability aggregation and recommendation core.

Everything here is a pure function over slot lists fetched elsewhere; the
package holds no state and performs no I/O beyond warning logs for
malformed rows.

# Aggregation

Aggregate reduces a moim's slots to a per-day summary for one month:

	agg, err := schedule.Aggregate(moim.Slots, names, 2024, 8, 0)

The veto rule is applied in exactly one place: a pick of -1 never enters
a tally and flags the day unavailable. Both the heatmap endpoint and the
ranker consume this same summary, so they can never disagree about which
days are vetoed.

# Ranking

Rank produces the "top dates" list:

	recs := schedule.Rank(agg, len(moim.Buddies))

Bounded at TopN entries, ordered by votes descending with
finalized-first then earliest-date tie-breaks. Unavailable and zero-vote
days never appear.

# Determinism

Recomputing from the same record set always yields the same output, and
positive votes commute: the tally is a sum, so arrival order of the
underlying records is irrelevant. That property is what lets the HTTP
layer recompute on every read instead of maintaining cached aggregates.
*/
package schedule
