package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound se devuelve cuando el registro referenciado no existe.
	ErrNotFound = errors.New("not found")

	// ErrConflict se devuelve cuando una escritura viola un índice único.
	ErrConflict = errors.New("conflict")
)

// FieldError describe una restricción violada por un campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa todas las restricciones violadas por un registro.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewValidationError crea un ValidationError con un único campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// NotFoundError indica que no existe un registro con el id dado.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NotFound crea un NotFoundError.
func NotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// FaultError envuelve un fallo inesperado de la base de datos o la infraestructura.
type FaultError struct {
	Op  string
	Err error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FaultError) Unwrap() error {
	return e.Err
}

// Fault envuelve err como FaultError. Devuelve nil si err es nil.
func Fault(op string, err error) error {
	if err == nil {
		return nil
	}
	return &FaultError{Op: op, Err: err}
}

// ConflictError indica que el registro choca con otro existente (índice único).
type ConflictError struct {
	Resource string
	Err      error
}

func (e *ConflictError) Error() string {
	return e.Resource + " already exists"
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

// Conflict crea un ConflictError a partir del error del driver.
func Conflict(resource string, err error) error {
	return &ConflictError{Resource: resource, Err: err}
}
