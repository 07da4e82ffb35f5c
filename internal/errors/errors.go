package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this squad number"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// PersistenceError wraps a storage failure. The message never carries the
// storage error text; use errors.Unwrap or Err for diagnostics.
type PersistenceError struct {
	Operation string
	Entity    string
	Err       error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s the %s due to a database error", e.Operation, e.Entity)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// MigrationError is a fatal seeding failure: a missing prerequisite file or
// table. Nothing has been modified when it is returned.
type MigrationError struct {
	Migration string
	Message   string
}

func (e *MigrationError) Error() string {
	return fmt.Sprintf("migration %s: %s", e.Migration, e.Message)
}

// Entity Not Found Errors
var (
	ErrPlayerNotFound = &NotFoundError{Entity: "player"}
)

// Already Exists Errors
var (
	ErrPlayerExists = &AlreadyExistsError{Entity: "player", Context: "with this squad number"}
)

// Business Logic Errors
var (
	ErrInvalidPlayerID    = errors.New("invalid player ID")
	ErrInvalidSquadNumber = errors.New("invalid squad number")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistenceErr *PersistenceError
	return errors.As(err, &persistenceErr)
}

// IsMigration checks if an error is a MigrationError
func IsMigration(err error) bool {
	var migrationErr *MigrationError
	return errors.As(err, &migrationErr)
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewPersistenceError wraps a storage error raised while performing operation on entity
func NewPersistenceError(operation, entity string, err error) error {
	return &PersistenceError{Operation: operation, Entity: entity, Err: err}
}

// NewMigrationError creates a new MigrationError
func NewMigrationError(migration, message string) error {
	return &MigrationError{Migration: migration, Message: message}
}
