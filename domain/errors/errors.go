// Package errors defines the error taxonomy of the escrow ledger and maps it to
// user-facing reason classes.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Generic errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized is returned when an operation is not authorized
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternal is returned when an internal error occurs
	ErrInternal = errors.New("internal error")
)

// Ledger errors
var (
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrTransferFailed       = errors.New("transfer failed")
	ErrJobNotFound          = errors.New("job not found")
	ErrJobNotOpen           = errors.New("job not open")
	ErrJobClosed            = errors.New("job closed")
	ErrNotJobOwner          = errors.New("not job owner")
	ErrSelfReferral         = errors.New("job creator cannot refer to own job")
	ErrDuplicateReferral    = errors.New("referrer already staked on this job")
	ErrReferralNotFound     = errors.New("referral not found")
	ErrReferralNotClaimable = errors.New("referral not claimable")
	ErrClaimNotFound        = errors.New("claim not found")
	ErrReferralNotSubmitted = errors.New("referral not submitted")
	ErrInvalidDecision      = errors.New("invalid decision")
)

// DomainError represents a domain-specific error with context
type DomainError struct {
	Type    error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	return e.Type.Error()
}

// Is implements errors.Is interface
func (e *DomainError) Is(target error) bool {
	return errors.Is(e.Type, target)
}

// Unwrap implements errors.Unwrap interface
func (e *DomainError) Unwrap() error {
	return e.Type
}

// NewDomainError creates a new domain error
func NewDomainError(errType error, message string) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// WithDetails adds details to the domain error
func (e *DomainError) WithDetails(key string, value interface{}) *DomainError {
	e.Details[key] = value
	return e
}

// ValidationError represents a validation error with field-specific errors
type ValidationError struct {
	Fields map[string][]string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(e.Fields[name], ", ")))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// Is makes validation errors match ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// AddFieldError adds a field-specific error
func (e *ValidationError) AddFieldError(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors returns true if there are any field errors
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// RepositoryError represents a repository-specific error
type RepositoryError struct {
	Operation string
	Entity    string
	Err       error
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository error during %s on %s: %v",
		e.Operation, e.Entity, e.Err)
}

// Unwrap implements errors.Unwrap interface
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// ChainError represents a failure while reading the settlement token on chain.
type ChainError struct {
	Operation string
	Contract  string
	Err       error
}

// Error implements the error interface
func (e *ChainError) Error() string {
	return fmt.Sprintf("chain error during %s on %s: %v", e.Operation, e.Contract, e.Err)
}

// Unwrap implements errors.Unwrap interface
func (e *ChainError) Unwrap() error {
	return e.Err
}
