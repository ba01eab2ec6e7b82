package services

import "errors"

var (
	// ErrInvalidID means the caller supplied something that is not a valid
	// ObjectID hex string. Rejected before any store call.
	ErrInvalidID = errors.New("invalid id format")

	// ErrInvalidPIN means the owning user has a PIN set and the request
	// omitted it or got it wrong.
	ErrInvalidPIN = errors.New("invalid pin")
)
