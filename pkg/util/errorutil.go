package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors. Message is the client-facing
// text rendered by the HTTP error middleware; Code feeds metrics and logs.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

// NewValidationError reports missing or malformed request input.
func NewValidationError(message string) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest)
}

// NewDuplicateEmail reports a registration or update that collides with an
// existing account's email.
func NewDuplicateEmail() error {
	return NewDomainError("DUPLICATE_EMAIL", "El correo ya está registrado.", http.StatusBadRequest)
}

// NewAuthFailure reports a failed login. The message is deliberately generic
// so the response does not confirm whether the email exists.
func NewAuthFailure() error {
	return NewDomainError("AUTH_FAILED", "Credenciales incorrectas", http.StatusBadRequest)
}

// NewStoreFailure wraps a database-layer fault with the status the endpoint
// contract calls for (500 on register/login/list, 400 on update/delete).
func NewStoreFailure(message string, status int, err error) error {
	return &DomainError{Code: "STORE_FAILURE", Message: message, HTTPStatus: status, Err: err}
}

// NewInternalError wraps an unexpected fault as a 500.
func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "Error interno del servidor",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError, defaulting to a 500.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "Error interno del servidor",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
