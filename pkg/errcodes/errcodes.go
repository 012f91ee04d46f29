package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"

	// Ledger codes.
	Unauthorized        failure.ErrorCode = "Unauthorized"        // non-administrator on a gated operation
	InsufficientBalance failure.ErrorCode = "InsufficientBalance" // debit exceeds balance
	UnknownGift         failure.ErrorCode = "UnknownGift"         // empty-description gift after the balance check
	DivisionByZero      failure.ErrorCode = "DivisionByZero"      // basis rate is zero during mint
	Overflow            failure.ErrorCode = "Overflow"            // credit would exceed the representable range

	InvalidGiftID   failure.ErrorCode = "InvalidGiftID"
	InvalidAccount  failure.ErrorCode = "InvalidAccount"
	InvalidOrderID  failure.ErrorCode = "InvalidOrderID"
	MissingAccount  failure.ErrorCode = "MissingAccount" // request without a caller identity header
	ArchiveDisabled failure.ErrorCode = "ArchiveDisabled"
)
