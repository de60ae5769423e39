// Package services defines the business logic for sentences, entries, and
// likes. This file centralizes common service-level error values so that they
// can be consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and translation
// into user-facing messages or HTTP status codes should be performed at the
// handler/controller layer.
package services

import "errors"

// Sentence-related errors.
var (
	// ErrInvalidDayIndex is returned when an explicit day lookup falls
	// outside the group's programme bounds. It is never produced by the
	// "today" or "random" paths, which clamp or fall back instead.
	ErrInvalidDayIndex = errors.New("day index outside programme bounds")

	// ErrSentenceNotFound indicates that the requested sentence does not
	// exist (unknown id or never-materialized slot).
	ErrSentenceNotFound = errors.New("sentence not found")
)

// Entry-related errors.
var (
	// ErrEmptyEntry is returned when a submission contains no text after
	// normalization.
	ErrEmptyEntry = errors.New("entry text is empty")

	// ErrEntryTooLong is returned when a submission exceeds the maximum
	// entry length.
	ErrEntryTooLong = errors.New("entry text too long")

	// ErrEntryNotFound indicates that the requested entry does not exist.
	ErrEntryNotFound = errors.New("entry not found")
)

// Like-related errors.
var (
	// ErrDuplicateLike is returned when a user attempts to like an entry
	// they have already liked.
	ErrDuplicateLike = errors.New("like already exists")

	// ErrOwnEntryLike is returned when a user attempts to like their own
	// entry.
	ErrOwnEntryLike = errors.New("cannot like your own entry")
)

// Author-related errors.
var (
	// ErrAuthorNotFound indicates that the requested author does not exist.
	ErrAuthorNotFound = errors.New("author not found")
)
