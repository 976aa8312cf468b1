package domain

import "fmt"

// ValidationError reports a missing or malformed request input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ServiceError is a terminal failure of a service operation.
// Message is safe to show to clients, Err holds the underlying cause.
type ServiceError struct {
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Details returns the underlying cause message, or "" if there is none.
func (e *ServiceError) Details() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}
