package errors

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"resource-planner-backend/internal/calendar"
	"resource-planner-backend/internal/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "project"}
		assert.Equal(t, "project not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "project"}
		err2 := &NotFoundError{Entity: "project"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrProjectNotFound, ErrTeamMemberNotFound))
	})

	t.Run("IsNotFound helper through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("load allocation: %w", ErrAllocationNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.True(t, errors.Is(wrapped, ErrAllocationNotFound))
		assert.False(t, IsNotFound(ErrInvalidHours))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "team member already exists with this email", ErrTeamMemberExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "project"}
		assert.Equal(t, "project already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrProjectExists))
		assert.False(t, IsAlreadyExists(ErrProjectNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "hours", Message: "must be positive"}
		assert.Equal(t, "validation error: hours - must be positive", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "bad request"}
		assert.Equal(t, "validation error: bad request", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrTeamMemberInactive))
		assert.True(t, IsValidation(NewValidationError("x", "y")))
		assert.False(t, IsValidation(ErrProjectNotFound))
	})
}

func TestConflictError(t *testing.T) {
	conflicts := []scheduling.ResourceConflict{
		{Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), OverallocatedBy: 1.5},
		{Date: time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), OverallocatedBy: 0.5},
	}

	t.Run("message surfaces first conflict", func(t *testing.T) {
		err := NewConflictError(conflicts)
		assert.Equal(t, "resource conflict: team member overallocated on 2024-01-10 by 1.50h (2 conflicting day(s))", err.Error())
	})

	t.Run("AsConflict through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("create allocation: %w", NewConflictError(conflicts))
		assert.True(t, IsConflict(wrapped))
		ce, ok := AsConflict(wrapped)
		require.True(t, ok)
		assert.Len(t, ce.Conflicts, 2)
		first, ok := ce.FirstConflict()
		require.True(t, ok)
		assert.Equal(t, 1.5, first.OverallocatedBy)
	})

	t.Run("empty conflict list", func(t *testing.T) {
		err := &ConflictError{}
		assert.Equal(t, "resource conflict detected", err.Error())
		_, ok := err.FirstConflict()
		assert.False(t, ok)
	})

	t.Run("IsConflict rejects other errors", func(t *testing.T) {
		assert.False(t, IsConflict(ErrProjectNotFound))
	})
}

func TestFromWindowError(t *testing.T) {
	assert.Equal(t, ErrInvalidDateRange, FromWindowError(scheduling.ErrInvertedWindow))
	assert.Equal(t, ErrNoWorkingDays, FromWindowError(scheduling.ErrEmptyWindow))
	assert.True(t, IsValidation(FromWindowError(scheduling.ErrNegativeHours)))

	_, parseErr := calendar.ParseDate("not-a-date")
	assert.True(t, IsValidation(FromWindowError(parseErr)))

	other := errors.New("boom")
	assert.Equal(t, other, FromWindowError(other))
}
