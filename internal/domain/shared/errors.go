package shared

import "fmt"

// DomainError carries a stable machine-readable code alongside a
// human-readable message. Handlers map codes to HTTP statuses.
type DomainError struct {
	Code    string
	Message string
}

func (e DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewDomainError(code, message string, args ...interface{}) DomainError {
	return DomainError{
		Code:    code,
		Message: fmt.Sprintf(message, args...),
	}
}

var (
	ErrNotFound        = DomainError{Code: "NOT_FOUND", Message: "resource not found"}
	ErrAlreadyExists   = DomainError{Code: "ALREADY_EXISTS", Message: "resource already exists"}
	ErrInvalidInput    = DomainError{Code: "INVALID_INPUT", Message: "invalid input"}
	ErrExternalService = DomainError{Code: "EXTERNAL_SERVICE", Message: "external service failure"}
)
