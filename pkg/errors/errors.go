package errors

import (
	stderrors "errors"
	"fmt"
)

// Source identifies where a failure originates.
type Source int

const (
	SourceUnknown Source = iota
	// SourceCaller - the request itself was wrong, retrying will not help
	SourceCaller
	// SourceTransient - infrastructure failed mid-operation, retry is reasonable
	SourceTransient
	// SourcePermanent - infrastructure or configuration is broken
	SourcePermanent
)

func (s Source) String() string {
	switch s {
	case SourceCaller:
		return "caller"
	case SourceTransient:
		return "transient"
	case SourcePermanent:
		return "permanent"
	default:
		return "unknown"
	}
}

// ConnectionError is returned when the backing store cannot be reached.
type ConnectionError struct {
	err error
}

func NewConnectionError(err error) *ConnectionError {
	return &ConnectionError{err: err}
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to backing store failed: %v", e.err)
}

func (e *ConnectionError) Unwrap() error {
	return e.err
}

func IsConnectionError(err error) bool {
	var e *ConnectionError
	return stderrors.As(err, &e)
}

type ResourceNotFoundError struct {
	kind string
	id   string
}

func NewResourceNotFoundError(kind, id string) *ResourceNotFoundError {
	return &ResourceNotFoundError{kind: kind, id: id}
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.kind, e.id)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return stderrors.As(err, &e)
}

// MalformedInputError is returned when an attribute or body cannot be derived or decoded.
type MalformedInputError struct {
	msg string
	err error
}

func NewMalformedInputError(msg string, err error) *MalformedInputError {
	return &MalformedInputError{msg: msg, err: err}
}

func (e *MalformedInputError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("malformed input: %s", e.msg)
	}
	return fmt.Sprintf("malformed input: %s: %v", e.msg, e.err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.err
}

func IsMalformedInputError(err error) bool {
	var e *MalformedInputError
	return stderrors.As(err, &e)
}

// InfrastructureError wraps an I/O failure that happened mid-operation.
type InfrastructureError struct {
	op  string
	err error
}

func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{op: op, err: err}
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.op, e.err)
}

func (e *InfrastructureError) Unwrap() error {
	return e.err
}

func IsInfrastructureError(err error) bool {
	var e *InfrastructureError
	return stderrors.As(err, &e)
}

type UnsupportedOperationError struct {
	op string
}

func NewUnsupportedOperationError(op string) *UnsupportedOperationError {
	return &UnsupportedOperationError{op: op}
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s is not supported", e.op)
}

func IsUnsupportedOperationError(err error) bool {
	var e *UnsupportedOperationError
	return stderrors.As(err, &e)
}

// Classify attributes err to exactly one failure source.
func Classify(err error) Source {
	switch {
	case err == nil:
		return SourceUnknown
	case IsMalformedInputError(err), IsResourceNotFoundError(err), IsUnsupportedOperationError(err):
		return SourceCaller
	case IsConnectionError(err):
		return SourcePermanent
	case IsInfrastructureError(err):
		return SourceTransient
	default:
		return SourceUnknown
	}
}
