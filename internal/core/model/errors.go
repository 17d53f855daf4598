package model

import (
	"errors"
	"fmt"
)

// RejectKind classifies an expected, caller-attributable failure.
type RejectKind int

const (
	// Unauthenticated means the caller identity is missing or invalid.
	Unauthenticated RejectKind = iota + 1
	// BadRequest means the input is malformed or semantically invalid.
	BadRequest
	// NotFound means the referenced entity does not exist.
	NotFound
)

func (k RejectKind) String() string {
	switch k {
	case Unauthenticated:
		return "Unauthenticated"
	case BadRequest:
		return "Bad request"
	case NotFound:
		return "Not found"
	default:
		return fmt.Sprintf("RejectKind(%d)", int(k))
	}
}

// Rejection is an expected failure the caller can act upon. It is not a bug.
type Rejection struct {
	// Kind is the classification of the rejection.
	Kind RejectKind

	// Message is the caller-facing explanation.
	Message string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Kind, r.Message)
}

// InternalFailure is an unexpected failure. Cause is never shown to callers.
type InternalFailure struct {
	// Op describes what was being attempted.
	Op string

	// Cause is the underlying error.
	Cause error
}

func (f *InternalFailure) Error() string {
	if f.Cause == nil {
		return f.Op
	}
	return fmt.Sprintf("%s: %v", f.Op, f.Cause)
}

func (f *InternalFailure) Unwrap() error {
	return f.Cause
}

// Reject builds a rejection of the given kind.
func Reject(kind RejectKind, msg string) error {
	return &Rejection{Kind: kind, Message: msg}
}

// RejectBadRequest rejects malformed input.
func RejectBadRequest(msg string) error {
	return Reject(BadRequest, msg)
}

// RejectNotFound rejects a reference to a missing entity.
func RejectNotFound(msg string) error {
	return Reject(NotFound, msg)
}

// RejectUnauthenticated rejects a caller without a valid identity.
func RejectUnauthenticated(msg string) error {
	return Reject(Unauthenticated, msg)
}

// Internal wraps cause as an internal failure while attempting op.
func Internal(cause error, op string) error {
	return &InternalFailure{Op: op, Cause: cause}
}

// AsRejection reports whether err is, or wraps, a rejection.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// AsInternal reports whether err is, or wraps, an internal failure.
func AsInternal(err error) (*InternalFailure, bool) {
	var f *InternalFailure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
