package errors

import "errors"

// Class groups errors by what the user can do about them.
type Class string

// Error classes.
const (
	ClassFunds         Class = "funds"
	ClassAuthorization Class = "authorization"
	ClassStale         Class = "stale"
	ClassInvalid       Class = "invalid"
	ClassNotFound      Class = "not_found"
	ClassInternal      Class = "internal"
)

var classTable = []struct {
	target error
	class  Class
}{
	{ErrInsufficientFunds, ClassFunds},
	{ErrNotJobOwner, ClassAuthorization},
	{ErrSelfReferral, ClassAuthorization},
	{ErrUnauthorized, ClassAuthorization},
	// Not-found is checked before stale: a missing job also reports ErrJobNotOpen.
	{ErrJobNotFound, ClassNotFound},
	{ErrReferralNotFound, ClassNotFound},
	{ErrClaimNotFound, ClassNotFound},
	{ErrNotFound, ClassNotFound},
	{ErrJobNotOpen, ClassStale},
	{ErrJobClosed, ClassStale},
	{ErrReferralNotClaimable, ClassStale},
	{ErrReferralNotSubmitted, ClassStale},
	{ErrDuplicateReferral, ClassStale},
	{ErrInvalidAmount, ClassInvalid},
	{ErrInvalidDecision, ClassInvalid},
	{ErrInvalidInput, ClassInvalid},
}

// Classify maps an error to its class. Unknown errors are internal.
func Classify(err error) Class {
	if err == nil {
		return ""
	}
	for _, entry := range classTable {
		if errors.Is(err, entry.target) {
			return entry.class
		}
	}
	return ClassInternal
}

// UserMessage returns the reason string shown to the person who triggered err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	switch Classify(err) {
	case ClassFunds:
		return "not enough funds: top up your balance or approve a larger allowance for the escrow"
	case ClassAuthorization:
		if errors.Is(err, ErrSelfReferral) {
			return "not authorized: you cannot refer candidates to your own job"
		}
		return "not authorized: only the job owner can do this"
	case ClassStale:
		return "already decided: this was changed by someone else, refresh to see the latest state (" + rootCause(err) + ")"
	case ClassNotFound:
		return rootCause(err)
	case ClassInvalid:
		return err.Error()
	}
	return "something went wrong, please try again later"
}

// rootCause returns the sentinel message of a DomainError, or the error text.
func rootCause(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Type.Error()
	}
	return err.Error()
}
