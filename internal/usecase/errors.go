package usecase

// Outcome codes surfaced to callers. Each maps to exactly one HTTP status
// in the transport layer.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeForbidden    = "FORBIDDEN"
	CodeValidation   = "VALIDATION_ERROR"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

func NotFound(message string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: message}
}

func Forbidden(message string) *DomainError {
	return &DomainError{Code: CodeForbidden, Message: message}
}

func Invalid(message string) *DomainError {
	return &DomainError{Code: CodeValidation, Message: message}
}

func Conflict(message string) *DomainError {
	return &DomainError{Code: CodeConflict, Message: message}
}

func Unauthorized(message string) *DomainError {
	return &DomainError{Code: CodeUnauthorized, Message: message}
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
