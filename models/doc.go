// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the shared domain types, enumerations and error
taxonomy for the council election service.

# Domain Types

  - Candidacy: one applicant's moderated bid for a seat
  - Ballot: one voter's immutable choice for a seat
  - TallyEntry: one row of a seat's computed tally

A seat is a (group, position) pair. Groups are a fixed enumeration
(student, teacher, nonteaching); positions are free text matched
case-insensitively.

# Moderation Lifecycle

Candidacies progress: pending → approved | rejected. An edit to a rejected
application resets it to pending. The disqualified flag is orthogonal to
moderation status: a disqualified candidacy stays visible but can receive no
new ballots and never wins.

# Errors

Core operations fail with one of the sentinel errors:

	ErrValidation       missing/malformed required field
	ErrNotFound         referenced id unknown
	ErrConflict         uniqueness violation (duplicate ballot/application/name)
	ErrInvalidCandidate ballot target unapproved, disqualified or wrong seat

Callers classify with errors.Is; the wrapped message carries the offending
key for user-visible rendering.
*/
package models
