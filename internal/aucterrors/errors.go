package aucterrors

import "errors"

// Store-level errors
var (
	ErrCarNotFound = errors.New("car not found")
	ErrBidNotFound = errors.New("bid not found")
)

// Authentication and authorization errors
var (
	ErrUnauthenticated = errors.New("unauthorized access")
	ErrForbidden       = errors.New("forbidden access")
)

// Business logic errors
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrBidTooLow         = errors.New("bid below minimum price")
	ErrInvalidTransition = errors.New("invalid bid status transition")
)
