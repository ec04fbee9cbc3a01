// Package apperr defines the business-rule error classes surfaced to API
// callers. Every failure is an expected user-facing rejection raised at the
// point of violation; nothing here is retried or recovered internally.
package apperr

import "errors"

var (
	// ErrValidation marks a missing or invalid required field.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidTransition marks a status change not allowed by the
	// workflow tables, including a transition to the current status.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrNotFound marks a document identity that does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrPrecursorNotApproved marks an order raised from a request whose
	// status is anything other than approved.
	ErrPrecursorNotApproved = errors.New("source request is not approved")
	// ErrUnknownOrder marks a payment raised against a missing order.
	ErrUnknownOrder = errors.New("unknown purchase order")
	// ErrAmountExceedsBalance marks a payment amount above the order's
	// remaining balance.
	ErrAmountExceedsBalance = errors.New("amount exceeds remaining balance")
)
