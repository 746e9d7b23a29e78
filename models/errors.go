package models

import "errors"

// Core failure taxonomy. Operations wrap these with the offending key via
// fmt.Errorf("...: %w", Err...) so handlers can classify with errors.Is
// while logs keep the detail.
var (
	ErrValidation       = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrInvalidCandidate = errors.New("invalid candidate")
)
