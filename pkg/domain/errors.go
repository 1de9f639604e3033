package domain

import "errors"

// ErrDatasetUnavailable is returned when a host asks for a view before a dataset has loaded.
var ErrDatasetUnavailable = errors.New("region dataset unavailable")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrUnknownAction is returned when an action type is not one of the four selection operations.
var ErrUnknownAction = errors.New("unknown selection action")
