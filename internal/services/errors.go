package services

// FieldError is a validation failure attributed to a single request field.
// The API layer renders it as a 400 payload keyed by the wire field name.
type FieldError struct {
	Field   string
	Message string
}

func (err *FieldError) Error() string {
	return err.Message
}

func NewFieldError(field string, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

// ValidationError is a validation failure not tied to one field; it surfaces
// as a 400 payload under the "detail" key.
type ValidationError struct {
	Message string
}

func (err *ValidationError) Error() string {
	return err.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
