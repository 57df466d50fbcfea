package error

import "errors"

// Client domain errors.
var (
	// ErrClientNotFound is returned when a client is not found.
	ErrClientNotFound = errors.New("client not found")

	// ErrClientNameRequired is returned when a client is saved without a name.
	ErrClientNameRequired = errors.New("client name is required")

	// ErrClientTaxIDRequired is returned when a client is saved without a CPF/CNPJ.
	ErrClientTaxIDRequired = errors.New("client tax id is required")

	// ErrClientInvalidDueDay is returned when the due day is outside 1..31.
	ErrClientInvalidDueDay = errors.New("due day must be between 1 and 31")

	// ErrClientInvalidAmount is returned when the nominal amount is not positive.
	ErrClientInvalidAmount = errors.New("nominal amount must be positive")
)

// ClientErrorCode defines error codes for client errors.
// Format: CLI-XXYYYY where XX is category and YYYY is specific error.
type ClientErrorCode string

const (
	ErrCodeClientNotFound      ClientErrorCode = "CLI-010001"
	ErrCodeClientNameRequired  ClientErrorCode = "CLI-010002"
	ErrCodeClientTaxIDRequired ClientErrorCode = "CLI-010003"
	ErrCodeClientInvalidDueDay ClientErrorCode = "CLI-010004"
	ErrCodeClientInvalidAmount ClientErrorCode = "CLI-010005"
)

// ClientError represents a client error with code and message.
type ClientError struct {
	Code    ClientErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ClientError) Unwrap() error {
	return e.Err
}

// NewClientError creates a new ClientError with the given code and message.
func NewClientError(code ClientErrorCode, message string, err error) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
