// Package error defines domain-specific errors for the billing application.
package error

import "errors"

// Reconciliation domain errors.
var (
	// ErrStatementHeaderNotFound is returned when the statement file has no recognizable header row.
	ErrStatementHeaderNotFound = errors.New("statement header not found")

	// ErrStatementNoValidRows is returned when a statement file yields zero parseable data rows.
	ErrStatementNoValidRows = errors.New("no valid records found in statement")

	// ErrEntryNotFound is returned when a statement entry is not found.
	ErrEntryNotFound = errors.New("statement entry not found")

	// ErrInvoiceNotLinkable is returned when the target invoice is not in an open or overdue status.
	ErrInvoiceNotLinkable = errors.New("invoice is not eligible for linking")

	// ErrAliasNotFound is returned when no alias exists for a description key.
	ErrAliasNotFound = errors.New("description alias not found")
)

// ReconciliationErrorCode defines error codes for reconciliation errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type ReconciliationErrorCode string

const (
	// Import errors (01XXXX)
	ErrCodeStatementHeaderNotFound ReconciliationErrorCode = "REC-010001"
	ErrCodeStatementNoValidRows    ReconciliationErrorCode = "REC-010002"
	ErrCodeStatementUnreadable     ReconciliationErrorCode = "REC-010003"

	// Link errors (02XXXX)
	ErrCodeEntryNotFound       ReconciliationErrorCode = "REC-020001"
	ErrCodeInvoiceNotLinkable  ReconciliationErrorCode = "REC-020002"
	ErrCodeLinkInvoiceNotFound ReconciliationErrorCode = "REC-020003"
)

// ReconciliationError represents a reconciliation error with code and message.
type ReconciliationError struct {
	Code    ReconciliationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReconciliationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReconciliationError) Unwrap() error {
	return e.Err
}

// NewReconciliationError creates a new ReconciliationError with the given code and message.
func NewReconciliationError(code ReconciliationErrorCode, message string, err error) *ReconciliationError {
	return &ReconciliationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
