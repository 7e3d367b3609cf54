package errors

import (
	"errors"
	"fmt"

	"resource-planner-backend/internal/calendar"
	"resource-planner-backend/internal/scheduling"
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
	Context string // Additional context like "with this email"
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

// ConflictError is returned when an allocation would overallocate a team
// member. It carries every conflicting day so callers can render them or
// adjust the request.
type ConflictError struct {
	Conflicts []scheduling.ResourceConflict
}

func (e *ConflictError) Error() string {
	first, ok := e.FirstConflict()
	if !ok {
		return "resource conflict detected"
	}
	return fmt.Sprintf("resource conflict: team member overallocated on %s by %.2fh (%d conflicting day(s))",
		calendar.FormatDate(first.Date), first.OverallocatedBy, len(e.Conflicts))
}

// FirstConflict returns the earliest conflict.
func (e *ConflictError) FirstConflict() (scheduling.ResourceConflict, bool) {
	if len(e.Conflicts) == 0 {
		return scheduling.ResourceConflict{}, false
	}
	return e.Conflicts[0], true
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	_, ok := target.(*ConflictError)
	return ok
}

// Entity Not Found Errors
var (
	ErrProjectNotFound      = &NotFoundError{Entity: "project"}
	ErrTeamMemberNotFound   = &NotFoundError{Entity: "team member"}
	ErrAllocationNotFound   = &NotFoundError{Entity: "resource allocation"}
	ErrAvailabilityNotFound = &NotFoundError{Entity: "availability"}
	ErrTimelineNotFound     = &NotFoundError{Entity: "project timeline"}
)

// Already Exists Errors
var (
	ErrProjectExists    = &AlreadyExistsError{Entity: "project", Context: "with this name"}
	ErrTeamMemberExists = &AlreadyExistsError{Entity: "team member", Context: "with this email"}
)

// Business Logic Errors
var (
	ErrTeamMemberInactive = &ValidationError{Field: "team_member_id", Message: "team member is inactive"}
	ErrInvalidDateRange   = &ValidationError{Field: "end_date", Message: "end date must not be before start date"}
	ErrNoWorkingDays      = &ValidationError{Field: "end_date", Message: "window contains no working days"}
	ErrInvalidHours       = &ValidationError{Field: "hours", Message: "hours must be greater than zero"}
	ErrInvalidBucket      = &ValidationError{Field: "bucket", Message: "bucket must be week or month"}
	ErrLockTimeout        = errors.New("timed out waiting for team member lock")
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

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// AsConflict extracts the ConflictError from err
func AsConflict(err error) (*ConflictError, bool) {
	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr, true
	}
	return nil, false
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError from detected conflicts
func NewConflictError(conflicts []scheduling.ResourceConflict) error {
	return &ConflictError{Conflicts: conflicts}
}

// FromWindowError maps the engine's window errors to validation errors.
func FromWindowError(err error) error {
	switch {
	case errors.Is(err, scheduling.ErrInvertedWindow):
		return ErrInvalidDateRange
	case errors.Is(err, scheduling.ErrEmptyWindow):
		return ErrNoWorkingDays
	case errors.Is(err, scheduling.ErrNegativeHours):
		return NewValidationError("hours", err.Error())
	case errors.Is(err, calendar.ErrInvalidDate):
		return NewValidationError("date", err.Error())
	}
	return err
}
