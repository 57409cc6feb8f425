package wfh

import "fmt"

// Field error codes.
const (
	CodeTimeOrder = "TIME_ORDER"
)

// FieldError is a validation failure attached to a single input field.
type FieldError struct {
	Field   string
	Message string
	Code    string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func errTimeOrder() *FieldError {
	return &FieldError{
		Field:   "timeOut",
		Message: "Time Out must be after Time In",
		Code:    CodeTimeOrder,
	}
}
