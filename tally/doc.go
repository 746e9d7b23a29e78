// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally implements the result-aggregation engine.

# Computation

	entries, err := engine.Tally(group, position)

For a seat, every approved candidacy is listed with its accumulated ballot
count - including disqualified candidates, whose totals stay visible for
transparency. Ordering is count descending, display name ascending.

Winner determination excludes disqualified candidates. A strict lead wins;
an empty pool, an all-disqualified pool, or a first-place tie is surfaced as
no winner rather than adjudicated here.

# Consistency

The engine is a pure reader over the candidacy and ballot tables. It takes
no locks and never mutates; a ballot arriving concurrently with a read may
be missed by that read, but no ballot is ever double-counted.

# Turnout

	n, err := engine.Turnout(group, position)

counts ballots for a seat regardless of candidate state, for the admin live
dashboard.
*/
package tally
