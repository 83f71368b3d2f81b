package circulation

import (
	"errors"
)

// Reasons for rejecting IssueLoan, in the order the rules are checked.
var (
	ErrBookNotFound         = errors.New("book not found")
	ErrNoCopiesAvailable    = errors.New("no copies available")
	ErrPersonNotFound       = errors.New("person not found")
	ErrPersonHoldsLoan      = errors.New("person already holds a loan")
	ErrExceedsMaximumPeriod = errors.New("exceeds maximum period")
)

// Additional reasons for rejecting ProcessReturn.
var (
	ErrNotHoldingBook    = errors.New("person is not holding this book")
	ErrLoanRecordMissing = errors.New("loan record missing")
)

// Reasons for rejecting the registry operations.
var (
	ErrPersonAlreadyRegistered = errors.New("person already registered")
	ErrBookAlreadyRegistered   = errors.New("book already registered")
	ErrNilPerson               = errors.New("person must not be nil")
	ErrNilBook                 = errors.New("book must not be nil")
	ErrPersonKindMismatch      = errors.New("person kind cannot be changed")
)

// Configuration errors returned by NewSystem.
var (
	ErrNegativeDailyLateFee = errors.New("daily late fee must not be negative")
	ErrNilCollaborator      = errors.New("option value must not be nil")
)

// OperationFailure is an expected business outcome which rejected an operation.
// It leaves the System unchanged.
type OperationFailure struct {
	Operation string
	Reason    error
}

func (f *OperationFailure) Error() string {
	return f.Operation + ": " + f.Reason.Error()
}

// Unwrap exposes the reason for errors.Is.
func (f *OperationFailure) Unwrap() error {
	return f.Reason
}

func reject(operation string, reason error) *OperationFailure {
	return &OperationFailure{Operation: operation, Reason: reason}
}
