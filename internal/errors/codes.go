// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Deck errors
	CodeDeckInvalid             Code = "DECK_INVALID"
	CodeDeckFull                Code = "DECK_FULL"
	CodeDeckCardNotFound        Code = "DECK_CARD_NOT_FOUND"
	CodeDeckDuplicateNotAllowed Code = "DECK_DUPLICATE_NOT_ALLOWED"
	CodeDeckMaxCopiesExceeded   Code = "DECK_MAX_COPIES_EXCEEDED"

	// Hand errors
	CodeHandInvalidConfig Code = "HAND_INVALID_CONFIG"
	CodeHandOverflow      Code = "HAND_OVERFLOW"
	CodeHandCardNotFound  Code = "HAND_CARD_NOT_FOUND"

	// Draft errors
	CodeDraftCardNotInOptions   Code = "DRAFT_CARD_NOT_IN_OPTIONS"
	CodeDraftPickLimitReached   Code = "DRAFT_PICK_LIMIT_REACHED"
	CodeDraftBanningNotAllowed  Code = "DRAFT_BANNING_NOT_ALLOWED"
	CodeDraftNoRerollsRemaining Code = "DRAFT_NO_REROLLS_REMAINING"
	CodeDraftSkipNotAllowed     Code = "DRAFT_SKIP_NOT_ALLOWED"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeDeckInvalid,
		CodeHandInvalidConfig:
		return codes.InvalidArgument

	// FailedPrecondition - capacity and policy rules disallow the operation
	case CodeDeckFull,
		CodeDeckDuplicateNotAllowed,
		CodeDeckMaxCopiesExceeded,
		CodeHandOverflow,
		CodeDraftPickLimitReached,
		CodeDraftBanningNotAllowed,
		CodeDraftNoRerollsRemaining,
		CodeDraftSkipNotAllowed:
		return codes.FailedPrecondition

	// NotFound - the referenced card is not where the caller thinks it is
	case CodeDeckCardNotFound,
		CodeHandCardNotFound,
		CodeDraftCardNotInOptions:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
