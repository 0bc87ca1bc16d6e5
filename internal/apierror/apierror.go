// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import "catalogo/internal/validation"

const (
	MsgProductNotFound = "Producto no encontrado"
	MsgRouteNotFound   = "Ruta no encontrada"
	MsgInternal        = "Error interno del servidor"
	MsgMalformedJSON   = "JSON no válido"
	MsgPriceOutOfRange = "Precio fuera del rango permitido"
)

// APIError is the envelope for 404/429/5xx responses.
type APIError struct {
	Error string `json:"error"`
}

func New(msg string) *APIError {
	return &APIError{Error: msg}
}

// ValidationError is the 400 envelope: one entry per failed rule.
type ValidationError struct {
	Errors []validation.FieldError `json:"errors"`
}

func NewValidation(errs []validation.FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// NewMessage builds a 400 body carrying a single message not tied to a field.
func NewMessage(msg string) *ValidationError {
	return NewValidation([]validation.FieldError{validation.Message(msg)})
}
