package error

import "errors"

// Invoice domain errors.
var (
	// ErrInvoiceNotFound is returned when an invoice is not found.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrInvoiceAlreadyExists is returned when an invoice already exists for the
	// client and reference month.
	ErrInvoiceAlreadyExists = errors.New("invoice already exists for this reference month")

	// ErrInvoiceNotCancelable is returned when cancellation is requested for an
	// invoice without bank identifiers.
	ErrInvoiceNotCancelable = errors.New("invoice has no bank identifiers to cancel")

	// ErrInvalidReferenceMonth is returned when the reference year/month is out of range.
	ErrInvalidReferenceMonth = errors.New("invalid reference month")

	// ErrInvalidPaymentMethod is returned when the payment method is not recognized.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrBankIssueFailed is returned when the bank API rejects a charge issuance.
	ErrBankIssueFailed = errors.New("bank charge issuance failed")

	// ErrBankCancelFailed is returned when the bank API rejects a cancellation.
	ErrBankCancelFailed = errors.New("bank charge cancellation failed")

	// ErrReminderNoPhone is returned when a reminder is dispatched for a client
	// without a usable phone number.
	ErrReminderNoPhone = errors.New("client has no valid phone number")

	// ErrBankPDFFailed is returned when the bank API cannot deliver the slip PDF.
	ErrBankPDFFailed = errors.New("bank slip download failed")
)

// InvoiceErrorCode defines error codes for invoice errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InvoiceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvoiceNotFound       InvoiceErrorCode = "INV-010001"
	ErrCodeInvoiceAlreadyExists  InvoiceErrorCode = "INV-010002"
	ErrCodeInvalidReferenceMonth InvoiceErrorCode = "INV-010003"
	ErrCodeInvalidPaymentMethod  InvoiceErrorCode = "INV-010004"
	ErrCodeInvoiceNotCancelable  InvoiceErrorCode = "INV-010005"

	// External service errors (02XXXX)
	ErrCodeBankIssueFailed  InvoiceErrorCode = "INV-020001"
	ErrCodeBankCancelFailed InvoiceErrorCode = "INV-020002"
	ErrCodeReminderFailed   InvoiceErrorCode = "INV-020003"
	ErrCodeReminderNoPhone  InvoiceErrorCode = "INV-020004"
	ErrCodeBankPDFFailed    InvoiceErrorCode = "INV-020005"
)

// InvoiceError represents an invoice error with code and message.
type InvoiceError struct {
	Code    InvoiceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvoiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InvoiceError) Unwrap() error {
	return e.Err
}

// NewInvoiceError creates a new InvoiceError with the given code and message.
func NewInvoiceError(code InvoiceErrorCode, message string, err error) *InvoiceError {
	return &InvoiceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
