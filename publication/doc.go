// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package publication implements the per-seat publication gate.

Each seat carries a single boolean, defaulting to unpublished:

	gate.Publish(group, position)
	gate.Unpublish(group, position)
	published, err := gate.IsPublished(group, position)

Publish and Unpublish are idempotent upserts with no side effect on ballots
or candidacies. The gate decides only whether voters may see the tally;
administrators always get the live computation. When a seat is unpublished,
the voter-facing results endpoint answers with an explicit "not published"
failure so callers can tell results-withheld apart from no-votes-yet.
*/
package publication
