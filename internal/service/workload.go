package service

import (
	"fmt"
	"time"

	"resource-planner-backend/internal/calendar"
	"resource-planner-backend/internal/repository"
	"resource-planner-backend/internal/scheduling"

	"github.com/google/uuid"
)

// WorkloadCalculator keeps TeamMember.CurrentWorkload in sync with the
// allocations covering today.
type WorkloadCalculator struct {
	members     repository.TeamMemberRepositoryInterface
	allocations repository.AllocationRepositoryInterface
	now         func() time.Time
}

// NewWorkloadCalculator creates a calculator that uses the wall clock.
func NewWorkloadCalculator(members repository.TeamMemberRepositoryInterface, allocations repository.AllocationRepositoryInterface) *WorkloadCalculator {
	return &WorkloadCalculator{members: members, allocations: allocations, now: time.Now}
}

// SetClock replaces the clock used to decide what "today" is.
func (w *WorkloadCalculator) SetClock(now func() time.Time) {
	w.now = now
}

// Today returns the current calendar date.
func (w *WorkloadCalculator) Today() time.Time {
	return calendar.DateOf(w.now())
}

// Recompute stores and returns the member's hours per day allocated today.
func (w *WorkloadCalculator) Recompute(memberID uuid.UUID) (float64, error) {
	today := w.Today()
	allocations, err := w.allocations.GetOverlapping(memberID, calendar.NewRange(today, today))
	if err != nil {
		return 0, fmt.Errorf("failed to load allocations: %w", err)
	}
	workload := scheduling.CurrentWorkload(allocations, today)
	if err := w.members.UpdateWorkload(memberID, workload); err != nil {
		return 0, fmt.Errorf("failed to store workload: %w", err)
	}
	return workload, nil
}
