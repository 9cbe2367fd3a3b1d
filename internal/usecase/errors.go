package usecase

// DomainError is a business-rule failure the caller can act on: bad input,
// unknown status label, missing record. Safe to show to the submitter.
type DomainError struct {
	Code    string
	Message string

	// Fields carries per-field validation detail when Code is
	// CodeValidation; empty otherwise.
	Fields []ValidationError
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure failure (storage unreachable, query
// failed). Callers get a generic message; the underlying cause stays in the
// logs.
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

const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeInvalidStatus = "INVALID_STATUS"
	CodeStorage       = "STORAGE_ERROR"
)

func validationFailed(fields []ValidationError) *DomainError {
	msg := "validation failed: "
	for i, f := range fields {
		if i > 0 {
			msg += ", "
		}
		msg += f.Field + " (" + f.Message + ")"
	}
	return &DomainError{Code: CodeValidation, Message: msg, Fields: fields}
}

func storageFailed() *TechnicalError {
	return &TechnicalError{Code: CodeStorage, Message: "storage operation failed"}
}
