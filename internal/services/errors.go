// Package services defines the business logic for users, sets, and workouts.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler layer. Anything not covered by a sentinel here is a store failure
// and is propagated as the raw database error.
package services

import "errors"

// Validation errors (malformed input).
var (
	// ErrInvalidID is returned when a referenced id is zero or negative.
	ErrInvalidID = errors.New("id must be a positive integer")

	// ErrInvalidDate is returned when a date is not in YYYY/MM/DD form.
	ErrInvalidDate = errors.New("date must match YYYY/MM/DD")

	// ErrInvalidReps is returned when a rep count is zero or negative.
	ErrInvalidReps = errors.New("reps must be a positive integer")

	// ErrInvalidWeight is returned when a weight is negative.
	ErrInvalidWeight = errors.New("weight must be non-negative")

	// ErrInvalidName is returned when a required name field is blank.
	ErrInvalidName = errors.New("firstname and lastname are required")
)

// Not-found errors (referenced record missing).
var (
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrExerciseNotFound indicates that a referenced exercise does not
	// exist. During aggregation this aborts the whole call rather than
	// producing a partial result.
	ErrExerciseNotFound = errors.New("exercise not found")

	// ErrSetNotFound indicates that the requested set does not exist, or
	// that a workout insert referenced a set that was never created.
	ErrSetNotFound = errors.New("set not found")

	// ErrWorkoutNotFound indicates that the requested workout row does not
	// exist.
	ErrWorkoutNotFound = errors.New("workout not found")
)
