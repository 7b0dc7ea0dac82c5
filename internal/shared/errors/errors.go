// Package errors provides the structured error returned for non-2xx API responses.
// Classification is a pure function of the HTTP status code.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrorType represents the class of an API failure
type ErrorType string

const (
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeValidation   ErrorType = "validation_failed"
	ErrorTypeOther        ErrorType = "other"
)

// APIError is a failed API call. ValidationErrors is only populated for 422 responses.
type APIError struct {
	Message          string              `json:"message"`
	StatusCode       int                 `json:"status_code"`
	ValidationErrors map[string][]string `json:"errors,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: request failed with status %d", e.Kind(), e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Kind(), e.Message)
}

// Kind classifies the error by status code only.
func (e *APIError) Kind() ErrorType {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrorTypeUnauthorized
	case http.StatusForbidden:
		return ErrorTypeForbidden
	case http.StatusNotFound:
		return ErrorTypeNotFound
	case http.StatusUnprocessableEntity:
		return ErrorTypeValidation
	default:
		return ErrorTypeOther
	}
}

func (e *APIError) IsUnauthorized() bool { return e.Kind() == ErrorTypeUnauthorized }

func (e *APIError) IsForbidden() bool { return e.Kind() == ErrorTypeForbidden }

func (e *APIError) IsNotFound() bool { return e.Kind() == ErrorTypeNotFound }

func (e *APIError) IsValidationError() bool { return e.Kind() == ErrorTypeValidation }

// ValidationMessages flattens the field map, ordered by field name.
func (e *APIError) ValidationMessages() []string {
	if len(e.ValidationErrors) == 0 {
		return nil
	}
	fields := make([]string, 0, len(e.ValidationErrors))
	for field := range e.ValidationErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var messages []string
	for _, field := range fields {
		messages = append(messages, e.ValidationErrors[field]...)
	}
	return messages
}

// DisplayMessage is the text shown to the user: validation messages joined by
// newlines when present, otherwise the server message.
func (e *APIError) DisplayMessage() string {
	if e.IsValidationError() {
		if msgs := e.ValidationMessages(); len(msgs) > 0 {
			return strings.Join(msgs, "\n")
		}
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Request failed with status %d", e.StatusCode)
}

// NewAPIError creates an error for the given status code
func NewAPIError(statusCode int, message string, validationErrors map[string][]string) *APIError {
	return &APIError{
		Message:          message,
		StatusCode:       statusCode,
		ValidationErrors: validationErrors,
	}
}

// NewValidationError creates a 422-classified error, used for requests rejected
// before they leave the client.
func NewValidationError(message string, fields map[string][]string) *APIError {
	return NewAPIError(http.StatusUnprocessableEntity, message, fields)
}

// GetAPIError extracts APIError from error
func GetAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// IsAPIError checks if the error is an APIError
func IsAPIError(err error) bool {
	return GetAPIError(err) != nil
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	apiErr := GetAPIError(err)
	return apiErr != nil && apiErr.IsUnauthorized()
}

func IsForbidden(err error) bool {
	apiErr := GetAPIError(err)
	return apiErr != nil && apiErr.IsForbidden()
}

func IsNotFound(err error) bool {
	apiErr := GetAPIError(err)
	return apiErr != nil && apiErr.IsNotFound()
}

func IsValidationError(err error) bool {
	apiErr := GetAPIError(err)
	return apiErr != nil && apiErr.IsValidationError()
}

// Message returns the user-facing text for any error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if apiErr := GetAPIError(err); apiErr != nil {
		return apiErr.DisplayMessage()
	}
	return err.Error()
}
