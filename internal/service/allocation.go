package service

import (
	"context"
	"errors"
	"fmt"

	"resource-planner-backend/internal/calendar"
	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/locking"
	"resource-planner-backend/internal/logger"
	"resource-planner-backend/internal/metrics"
	"resource-planner-backend/internal/repository"
	"resource-planner-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AllocationService handles business logic for resource allocations.
// Every write that can change a member's load is gated by conflict detection
// and runs under that member's lock.
type AllocationService struct {
	allocations  repository.AllocationRepositoryInterface
	members      repository.TeamMemberRepositoryInterface
	projects     repository.ProjectRepositoryInterface
	availability repository.AvailabilityRepositoryInterface
	workload     *WorkloadCalculator
	locker       locking.Locker
	metrics      *metrics.Metrics
	validator    *validator.Validate
}

// NewAllocationService creates a new allocation service
func NewAllocationService(
	allocations repository.AllocationRepositoryInterface,
	members repository.TeamMemberRepositoryInterface,
	projects repository.ProjectRepositoryInterface,
	availability repository.AvailabilityRepositoryInterface,
	workload *WorkloadCalculator,
	locker locking.Locker,
	m *metrics.Metrics,
	validator *validator.Validate,
) *AllocationService {
	return &AllocationService{
		allocations:  allocations,
		members:      members,
		projects:     projects,
		availability: availability,
		workload:     workload,
		locker:       locker,
		metrics:      m,
		validator:    validator,
	}
}

// CreateAllocationRequest represents the request to allocate a member's hours to a project
type CreateAllocationRequest struct {
	ProjectID    uuid.UUID `json:"project_id" validate:"required"`
	TeamMemberID uuid.UUID `json:"team_member_id" validate:"required"`
	StartDate    string    `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string    `json:"end_date" validate:"required,datetime=2006-01-02"`
	Hours        float64   `json:"hours" validate:"gt=0"`
	Role         string    `json:"role,omitempty" validate:"max=100"`
	Notes        string    `json:"notes,omitempty"`
}

// UpdateAllocationRequest represents a partial update of an allocation
type UpdateAllocationRequest struct {
	ProjectID    *uuid.UUID `json:"project_id,omitempty"`
	TeamMemberID *uuid.UUID `json:"team_member_id,omitempty"`
	StartDate    *string    `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string    `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Hours        *float64   `json:"hours,omitempty"`
	Role         *string    `json:"role,omitempty" validate:"omitempty,max=100"`
	Notes        *string    `json:"notes,omitempty"`
}

// LogActualHoursRequest records hours actually worked against an allocation
type LogActualHoursRequest struct {
	ActualHours float64 `json:"actual_hours" validate:"gte=0"`
}

// CheckConflictsRequest asks whether a proposal would overallocate a member
type CheckConflictsRequest struct {
	TeamMemberID        uuid.UUID  `json:"team_member_id" validate:"required"`
	ProjectID           *uuid.UUID `json:"project_id,omitempty"`
	StartDate           string     `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate             string     `json:"end_date" validate:"required,datetime=2006-01-02"`
	Hours               float64    `json:"hours" validate:"gte=0"`
	ExcludeAllocationID *uuid.UUID `json:"exclude_allocation_id,omitempty"`
}

// AllocationFilter narrows ListAllocations. Dates are YYYY-MM-DD and select
// allocations overlapping [From, To].
type AllocationFilter struct {
	ProjectID    *uuid.UUID
	TeamMemberID *uuid.UUID
	From         string
	To           string
}

// AllocationResponse represents the response for allocation operations
type AllocationResponse struct {
	ID           uuid.UUID `json:"id"`
	ProjectID    uuid.UUID `json:"project_id"`
	TeamMemberID uuid.UUID `json:"team_member_id"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Hours        float64   `json:"hours"`
	WorkingDays  int       `json:"working_days"`
	DailyHours   float64   `json:"daily_hours"`
	ActualHours  float64   `json:"actual_hours"`
	Role         string    `json:"role"`
	Notes        string    `json:"notes"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// CreateAllocation validates and stores a new allocation. It fails with a
// *apperrors.ConflictError carrying every conflicting day when the member
// cannot absorb the hours.
func (s *AllocationService) CreateAllocation(ctx context.Context, req *CreateAllocationRequest) (*AllocationResponse, error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_member_id": req.TeamMemberID,
		"project_id":     req.ProjectID,
	})

	if err := s.validator.Struct(req); err != nil {
		s.metrics.ObserveAllocation("create", metrics.OutcomeInvalid)
		return nil, validationFailed(err)
	}
	window, err := parseWindow(req.StartDate, req.EndDate)
	if err == nil {
		err = apperrors.FromWindowError(scheduling.ValidateWindow(window))
	}
	if err != nil {
		s.metrics.ObserveAllocation("create", metrics.OutcomeInvalid)
		return nil, err
	}

	if err := s.ensureProject(req.ProjectID); err != nil {
		return nil, err
	}

	unlock, err := s.lock(ctx, req.TeamMemberID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	member, err := s.getActiveMember(req.TeamMemberID)
	if err != nil {
		return nil, err
	}

	conflicts, err := s.detect(member, scheduling.Proposal{
		TeamMemberID: member.ID,
		ProjectID:    req.ProjectID,
		Window:       window,
		Hours:        req.Hours,
	})
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		s.metrics.ObserveAllocation("create", metrics.OutcomeConflict)
		s.metrics.ObserveConflicts("gate", len(conflicts))
		log.WithField("conflicts", len(conflicts)).Info("Allocation rejected by conflict detection")
		return nil, apperrors.NewConflictError(conflicts)
	}

	allocation := &models.ResourceAllocation{
		ProjectID:    req.ProjectID,
		TeamMemberID: member.ID,
		StartDate:    window.Start,
		EndDate:      window.End,
		Hours:        req.Hours,
		Role:         req.Role,
		Notes:        req.Notes,
	}
	if err := s.allocations.Create(allocation); err != nil {
		return nil, fmt.Errorf("failed to create allocation: %w", err)
	}

	s.metrics.ObserveAllocation("create", metrics.OutcomeCreated)
	s.refreshWorkload(log, member.ID)
	log.WithField("allocation_id", allocation.ID).Info("Allocation created")

	return toAllocationResponse(allocation), nil
}

// UpdateAllocation applies the provided fields. The allocation's own prior
// hours are excluded from the conflict check. Moving an allocation to another
// member locks both members in a stable order and refreshes both workloads.
func (s *AllocationService) UpdateAllocation(ctx context.Context, id uuid.UUID, req *UpdateAllocationRequest) (*AllocationResponse, error) {
	log := logger.WithContext(ctx).WithField("allocation_id", id)

	if err := s.validator.Struct(req); err != nil {
		s.metrics.ObserveAllocation("update", metrics.OutcomeInvalid)
		return nil, validationFailed(err)
	}
	if req.Hours != nil && *req.Hours <= 0 {
		s.metrics.ObserveAllocation("update", metrics.OutcomeInvalid)
		return nil, apperrors.ErrInvalidHours
	}

	current, err := s.getAllocation(id)
	if err != nil {
		return nil, err
	}

	targetMemberID := current.TeamMemberID
	if req.TeamMemberID != nil {
		targetMemberID = *req.TeamMemberID
	}

	unlock, err := s.lock(ctx, current.TeamMemberID, targetMemberID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	// reload under the lock so the update applies to the latest stored state
	allocation, err := s.getAllocation(id)
	if err != nil {
		return nil, err
	}
	if allocation.TeamMemberID != current.TeamMemberID {
		return nil, apperrors.NewValidationError("team_member_id", "allocation was reassigned concurrently, retry the update")
	}
	previousMemberID := allocation.TeamMemberID

	start, end := allocation.StartDate, allocation.EndDate
	if req.StartDate != nil {
		if start, err = parseDate("start_date", *req.StartDate); err != nil {
			return nil, err
		}
	}
	if req.EndDate != nil {
		if end, err = parseDate("end_date", *req.EndDate); err != nil {
			return nil, err
		}
	}
	window := calendar.NewRange(start, end)
	if !window.Valid() {
		s.metrics.ObserveAllocation("update", metrics.OutcomeInvalid)
		return nil, apperrors.ErrInvalidDateRange
	}
	if err := scheduling.ValidateWindow(window); err != nil {
		s.metrics.ObserveAllocation("update", metrics.OutcomeInvalid)
		return nil, apperrors.FromWindowError(err)
	}

	if req.ProjectID != nil && *req.ProjectID != allocation.ProjectID {
		if err := s.ensureProject(*req.ProjectID); err != nil {
			return nil, err
		}
		allocation.ProjectID = *req.ProjectID
	}

	hours := allocation.Hours
	if req.Hours != nil {
		hours = *req.Hours
	}

	memberChanged := targetMemberID != previousMemberID
	loadChanged := memberChanged || !window.Start.Equal(calendar.DateOf(allocation.StartDate)) ||
		!window.End.Equal(calendar.DateOf(allocation.EndDate)) || hours != allocation.Hours

	if loadChanged {
		var member *models.TeamMember
		if memberChanged {
			member, err = s.getActiveMember(targetMemberID)
		} else {
			member, err = s.getMember(targetMemberID)
		}
		if err != nil {
			return nil, err
		}

		conflicts, err := s.detect(member, scheduling.Proposal{
			TeamMemberID: member.ID,
			ProjectID:    allocation.ProjectID,
			Window:       window,
			Hours:        hours,
			ExcludeID:    &allocation.ID,
		})
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			s.metrics.ObserveAllocation("update", metrics.OutcomeConflict)
			s.metrics.ObserveConflicts("gate", len(conflicts))
			log.WithField("conflicts", len(conflicts)).Info("Allocation update rejected by conflict detection")
			return nil, apperrors.NewConflictError(conflicts)
		}
	}

	allocation.TeamMemberID = targetMemberID
	allocation.StartDate = window.Start
	allocation.EndDate = window.End
	allocation.Hours = hours
	if req.Role != nil {
		allocation.Role = *req.Role
	}
	if req.Notes != nil {
		allocation.Notes = *req.Notes
	}

	if err := s.allocations.Update(allocation); err != nil {
		return nil, fmt.Errorf("failed to update allocation: %w", err)
	}

	s.metrics.ObserveAllocation("update", metrics.OutcomeUpdated)
	s.refreshWorkload(log, targetMemberID)
	if memberChanged {
		s.refreshWorkload(log, previousMemberID)
	}
	log.Info("Allocation updated")

	return toAllocationResponse(allocation), nil
}

// DeleteAllocation removes an allocation. There is no validation beyond existence.
func (s *AllocationService) DeleteAllocation(ctx context.Context, id uuid.UUID) error {
	log := logger.WithContext(ctx).WithField("allocation_id", id)

	current, err := s.getAllocation(id)
	if err != nil {
		return err
	}

	unlock, err := s.lock(ctx, current.TeamMemberID)
	if err != nil {
		return err
	}
	defer unlock()

	// reload under the lock so the workload refresh targets the current owner
	allocation, err := s.getAllocation(id)
	if err != nil {
		return err
	}
	if allocation.TeamMemberID != current.TeamMemberID {
		return apperrors.NewValidationError("team_member_id", "allocation was reassigned concurrently, retry the delete")
	}

	if err := s.allocations.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAllocationNotFound
		}
		return fmt.Errorf("failed to delete allocation: %w", err)
	}

	s.metrics.ObserveAllocation("delete", metrics.OutcomeDeleted)
	s.refreshWorkload(log, allocation.TeamMemberID)
	log.Info("Allocation deleted")
	return nil
}

// GetAllocation retrieves an allocation by ID
func (s *AllocationService) GetAllocation(id uuid.UUID) (*AllocationResponse, error) {
	allocation, err := s.getAllocation(id)
	if err != nil {
		return nil, err
	}
	return toAllocationResponse(allocation), nil
}

// ListAllocations lists allocations matching filter ordered by start date
func (s *AllocationService) ListAllocations(filter *AllocationFilter) ([]AllocationResponse, error) {
	var repoFilter repository.AllocationFilter
	if filter != nil {
		repoFilter.ProjectID = filter.ProjectID
		repoFilter.TeamMemberID = filter.TeamMemberID
		if filter.From != "" {
			from, err := parseDate("from", filter.From)
			if err != nil {
				return nil, err
			}
			repoFilter.From = &from
		}
		if filter.To != "" {
			to, err := parseDate("to", filter.To)
			if err != nil {
				return nil, err
			}
			repoFilter.To = &to
		}
		if repoFilter.From != nil && repoFilter.To != nil && repoFilter.From.After(*repoFilter.To) {
			return nil, apperrors.ErrInvalidDateRange
		}
	}

	allocations, err := s.allocations.List(repoFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}

	responses := make([]AllocationResponse, len(allocations))
	for i := range allocations {
		responses[i] = *toAllocationResponse(&allocations[i])
	}
	return responses, nil
}

// LogActualHours records the hours actually worked. Actuals are not capacity
// commitments and are not checked for conflicts.
func (s *AllocationService) LogActualHours(ctx context.Context, id uuid.UUID, req *LogActualHoursRequest) (*AllocationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	current, err := s.getAllocation(id)
	if err != nil {
		return nil, err
	}

	unlock, err := s.lock(ctx, current.TeamMemberID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	allocation, err := s.getAllocation(id)
	if err != nil {
		return nil, err
	}
	allocation.ActualHours = req.ActualHours
	if err := s.allocations.Update(allocation); err != nil {
		return nil, fmt.Errorf("failed to log actual hours: %w", err)
	}
	return toAllocationResponse(allocation), nil
}

// CheckConflicts runs conflict detection for a proposal without storing
// anything. An empty result means the proposal would be accepted.
func (s *AllocationService) CheckConflicts(ctx context.Context, req *CheckConflictsRequest) ([]scheduling.ResourceConflict, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	window, err := parseWindow(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if err := scheduling.ValidateWindow(window); err != nil {
		return nil, apperrors.FromWindowError(err)
	}

	member, err := s.getMember(req.TeamMemberID)
	if err != nil {
		return nil, err
	}

	proposal := scheduling.Proposal{
		TeamMemberID: member.ID,
		Window:       window,
		Hours:        req.Hours,
		ExcludeID:    req.ExcludeAllocationID,
	}
	if req.ProjectID != nil {
		proposal.ProjectID = *req.ProjectID
	}

	conflicts, err := s.detect(member, proposal)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveConflicts("check", len(conflicts))
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_member_id": member.ID,
		"conflicts":      len(conflicts),
	}).Debug("Conflict check completed")

	if conflicts == nil {
		conflicts = []scheduling.ResourceConflict{}
	}
	return conflicts, nil
}

// ListConflicts reports days between from and to on which stored allocations
// already exceed availability, for one member or for every active member.
func (s *AllocationService) ListConflicts(ctx context.Context, from, to string, memberID *uuid.UUID) ([]scheduling.ResourceConflict, error) {
	window, err := parseWindow(from, to)
	if err != nil {
		return nil, err
	}

	var members []models.TeamMember
	if memberID != nil {
		member, err := s.getMember(*memberID)
		if err != nil {
			return nil, err
		}
		members = []models.TeamMember{*member}
	} else {
		members, err = s.members.GetAll(true)
		if err != nil {
			return nil, fmt.Errorf("failed to list team members: %w", err)
		}
	}

	ids := make([]uuid.UUID, len(members))
	for i := range members {
		ids[i] = members[i].ID
	}
	overrides, err := s.availability.GetByMembers(ids, window)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	start, end := window.Start, window.End
	allocations, err := s.allocations.List(repository.AllocationFilter{TeamMemberID: memberID, From: &start, To: &end})
	if err != nil {
		return nil, fmt.Errorf("failed to load allocations: %w", err)
	}

	byMember := groupAvailability(overrides)
	conflicts := []scheduling.ResourceConflict{}
	for i := range members {
		found, err := scheduling.ScanConflicts(&members[i], byMember[members[i].ID], allocations, window)
		if err != nil {
			return nil, apperrors.FromWindowError(err)
		}
		conflicts = append(conflicts, found...)
	}
	scheduling.SortConflicts(conflicts)

	s.metrics.ObserveConflicts("scan", len(conflicts))
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"window":    window.String(),
		"conflicts": len(conflicts),
	}).Debug("Conflict scan completed")
	return conflicts, nil
}

// detect loads the member's overrides and overlapping allocations and runs
// conflict detection for p.
func (s *AllocationService) detect(member *models.TeamMember, p scheduling.Proposal) ([]scheduling.ResourceConflict, error) {
	overrides, err := s.availability.GetByMember(member.ID, p.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	existing, err := s.allocations.GetOverlapping(member.ID, p.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to load allocations: %w", err)
	}

	conflicts, err := scheduling.DetectConflicts(member, overrides, existing, p)
	if err != nil {
		return nil, apperrors.FromWindowError(err)
	}
	return conflicts, nil
}

func (s *AllocationService) lock(ctx context.Context, memberIDs ...uuid.UUID) (func(), error) {
	keys := make([]string, len(memberIDs))
	for i, id := range memberIDs {
		keys[i] = locking.MemberKey(id.String())
	}
	unlock, err := s.locker.Lock(ctx, keys...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrLockTimeout, err)
	}
	return unlock, nil
}

// refreshWorkload recomputes a member's current workload after a write. The
// write has already succeeded, so a failure here is logged, not returned.
func (s *AllocationService) refreshWorkload(log *logger.Logger, memberID uuid.UUID) {
	if _, err := s.workload.Recompute(memberID); err != nil {
		log.WithError(err).WithField("team_member_id", memberID).Warn("Failed to recompute workload")
	}
}

func (s *AllocationService) ensureProject(id uuid.UUID) error {
	if _, err := s.projects.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}
	return nil
}

func (s *AllocationService) getMember(id uuid.UUID) (*models.TeamMember, error) {
	member, err := s.members.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	return member, nil
}

func (s *AllocationService) getActiveMember(id uuid.UUID) (*models.TeamMember, error) {
	member, err := s.getMember(id)
	if err != nil {
		return nil, err
	}
	if !member.IsActive {
		return nil, apperrors.ErrTeamMemberInactive
	}
	return member, nil
}

func (s *AllocationService) getAllocation(id uuid.UUID) (*models.ResourceAllocation, error) {
	allocation, err := s.allocations.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAllocationNotFound
		}
		return nil, fmt.Errorf("failed to get allocation: %w", err)
	}
	return allocation, nil
}

func toAllocationResponse(a *models.ResourceAllocation) *AllocationResponse {
	window := scheduling.AllocationWindow(a)
	return &AllocationResponse{
		ID:           a.ID,
		ProjectID:    a.ProjectID,
		TeamMemberID: a.TeamMemberID,
		StartDate:    calendar.FormatDate(a.StartDate),
		EndDate:      calendar.FormatDate(a.EndDate),
		Hours:        a.Hours,
		WorkingDays:  window.WorkingDays(),
		DailyHours:   scheduling.DailyShare(a.Hours, window),
		ActualHours:  a.ActualHours,
		Role:         a.Role,
		Notes:        a.Notes,
		CreatedAt:    formatTimestamp(a.CreatedAt),
		UpdatedAt:    formatTimestamp(a.UpdatedAt),
	}
}
