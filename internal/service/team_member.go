package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resource-planner-backend/internal/calendar"
	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/locking"
	"resource-planner-backend/internal/logger"
	"resource-planner-backend/internal/repository"
	"resource-planner-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultWeeklyCapacity is used for new members that do not specify one.
const DefaultWeeklyCapacity = 40.0

// TeamMemberService handles business logic for team members and their availability
type TeamMemberService struct {
	members        repository.TeamMemberRepositoryInterface
	availability   repository.AvailabilityRepositoryInterface
	allocations    repository.AllocationRepositoryInterface
	workload       *WorkloadCalculator
	locker         locking.Locker
	validator      *validator.Validate
	weeklyCapacity float64
}

// NewTeamMemberService creates a new team member service
func NewTeamMemberService(
	members repository.TeamMemberRepositoryInterface,
	availability repository.AvailabilityRepositoryInterface,
	allocations repository.AllocationRepositoryInterface,
	workload *WorkloadCalculator,
	locker locking.Locker,
	validator *validator.Validate,
) *TeamMemberService {
	return &TeamMemberService{
		members:        members,
		availability:   availability,
		allocations:    allocations,
		workload:       workload,
		locker:         locker,
		validator:      validator,
		weeklyCapacity: DefaultWeeklyCapacity,
	}
}

// SetDefaultWeeklyCapacity changes the capacity given to members created without one.
func (s *TeamMemberService) SetDefaultWeeklyCapacity(hours float64) {
	if hours > 0 {
		s.weeklyCapacity = hours
	}
}

// CreateTeamMemberRequest represents the request to create a team member
type CreateTeamMemberRequest struct {
	Name           string   `json:"name" validate:"required,max=200"`
	Email          string   `json:"email" validate:"required,email,max=255"`
	Role           string   `json:"role" validate:"max=100"`
	Department     string   `json:"department" validate:"max=100"`
	HourlyRate     float64  `json:"hourly_rate" validate:"gte=0"`
	WeeklyCapacity *float64 `json:"weekly_capacity,omitempty" validate:"omitempty,gte=0,lte=168"`
	Skills         []string `json:"skills,omitempty" validate:"omitempty,dive,required,max=100"`
	IsActive       *bool    `json:"is_active,omitempty"`
}

// UpdateTeamMemberRequest represents a partial update of a team member
type UpdateTeamMemberRequest struct {
	Name           *string   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email          *string   `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Role           *string   `json:"role,omitempty" validate:"omitempty,max=100"`
	Department     *string   `json:"department,omitempty" validate:"omitempty,max=100"`
	HourlyRate     *float64  `json:"hourly_rate,omitempty" validate:"omitempty,gte=0"`
	WeeklyCapacity *float64  `json:"weekly_capacity,omitempty" validate:"omitempty,gte=0,lte=168"`
	Skills         *[]string `json:"skills,omitempty"`
	IsActive       *bool     `json:"is_active,omitempty"`
}

// TeamMemberResponse represents the response for team member operations
type TeamMemberResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	Department      string    `json:"department"`
	HourlyRate      float64   `json:"hourly_rate"`
	WeeklyCapacity  float64   `json:"weekly_capacity"`
	DailyCapacity   float64   `json:"daily_capacity"`
	Skills          []string  `json:"skills"`
	IsActive        bool      `json:"is_active"`
	CurrentWorkload float64   `json:"current_workload"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
}

// SetAvailabilityRequest represents an availability override for one date
type SetAvailabilityRequest struct {
	Date  string                  `json:"date" validate:"required,datetime=2006-01-02"`
	Type  models.AvailabilityType `json:"type" validate:"required"`
	Hours float64                 `json:"hours" validate:"gte=0,lte=24"`
	Notes string                  `json:"notes,omitempty"`
}

// AvailabilityResponse represents a stored availability override
type AvailabilityResponse struct {
	ID           uuid.UUID               `json:"id"`
	TeamMemberID uuid.UUID               `json:"team_member_id"`
	Date         string                  `json:"date"`
	Type         models.AvailabilityType `json:"type"`
	Hours        float64                 `json:"hours"`
	Notes        string                  `json:"notes"`
}

// FindAvailableMembersRequest asks which members could take on hours over a window
type FindAvailableMembersRequest struct {
	Skill     string  `json:"skill,omitempty"`
	StartDate string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Hours     float64 `json:"hours" validate:"gte=0"`
}

// CreateMember creates a new team member
func (s *TeamMemberService) CreateMember(req *CreateTeamMemberRequest) (*TeamMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.members.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing team member by email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTeamMemberExists
	}

	member := &models.TeamMember{
		Name:           req.Name,
		Email:          email,
		Role:           req.Role,
		Department:     req.Department,
		HourlyRate:     req.HourlyRate,
		WeeklyCapacity: s.weeklyCapacity,
		Skills:         req.Skills,
		IsActive:       true,
	}
	if req.WeeklyCapacity != nil {
		member.WeeklyCapacity = *req.WeeklyCapacity
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}
	if member.Skills == nil {
		member.Skills = []string{}
	}

	if err := s.members.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	return toMemberResponse(member), nil
}

// GetMember retrieves a team member by ID
func (s *TeamMemberService) GetMember(id uuid.UUID) (*TeamMemberResponse, error) {
	member, err := s.getMember(id)
	if err != nil {
		return nil, err
	}
	return toMemberResponse(member), nil
}

// GetMemberByEmail retrieves a team member by email
func (s *TeamMemberService) GetMemberByEmail(email string) (*TeamMemberResponse, error) {
	member, err := s.members.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	return toMemberResponse(member), nil
}

// ListMembers lists team members ordered by name
func (s *TeamMemberService) ListMembers(activeOnly bool) ([]TeamMemberResponse, error) {
	members, err := s.members.GetAll(activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	responses := make([]TeamMemberResponse, len(members))
	for i := range members {
		responses[i] = *toMemberResponse(&members[i])
	}
	return responses, nil
}

// UpdateMember applies the provided fields to a team member. Capacity changes
// do not re-validate existing allocations; ListConflicts reports any
// overallocation they cause.
func (s *TeamMemberService) UpdateMember(id uuid.UUID, req *UpdateTeamMemberRequest) (*TeamMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	member, err := s.getMember(id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != member.Email {
			existing, err := s.members.GetByEmail(email)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check existing team member by email: %w", err)
			}
			if existing != nil {
				return nil, apperrors.ErrTeamMemberExists
			}
			member.Email = email
		}
	}
	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.Department != nil {
		member.Department = *req.Department
	}
	if req.HourlyRate != nil {
		member.HourlyRate = *req.HourlyRate
	}
	if req.WeeklyCapacity != nil {
		member.WeeklyCapacity = *req.WeeklyCapacity
	}
	if req.Skills != nil {
		member.Skills = *req.Skills
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := s.members.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}
	return toMemberResponse(member), nil
}

// DeactivateMember marks a member inactive. Allocations are kept; inactive
// members cannot receive new allocations and are left out of team reports.
func (s *TeamMemberService) DeactivateMember(id uuid.UUID) (*TeamMemberResponse, error) {
	member, err := s.getMember(id)
	if err != nil {
		return nil, err
	}
	if !member.IsActive {
		return toMemberResponse(member), nil
	}

	member.IsActive = false
	if err := s.members.Update(member); err != nil {
		return nil, fmt.Errorf("failed to deactivate team member: %w", err)
	}
	return toMemberResponse(member), nil
}

// SetAvailability stores an override for one date, replacing an existing
// override of the same type. It runs under the member lock so it cannot
// interleave with an allocation check for the same member.
func (s *TeamMemberService) SetAvailability(ctx context.Context, memberID uuid.UUID, req *SetAvailabilityRequest) (*AvailabilityResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", fmt.Sprintf("unknown availability type %q", req.Type))
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	if _, err := s.getMember(memberID); err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx, locking.MemberKey(memberID.String()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrLockTimeout, err)
	}
	defer unlock()

	entry := &models.Availability{
		TeamMemberID: memberID,
		Date:         date,
		Type:         req.Type,
		Hours:        req.Hours,
		Notes:        req.Notes,
	}
	if err := s.availability.Upsert(entry); err != nil {
		return nil, fmt.Errorf("failed to store availability: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_member_id": memberID,
		"date":           req.Date,
		"type":           req.Type,
	}).Info("Availability override stored")

	return toAvailabilityResponse(entry), nil
}

// RemoveAvailability deletes the override of the given type on date
func (s *TeamMemberService) RemoveAvailability(ctx context.Context, memberID uuid.UUID, date string, typ models.AvailabilityType) error {
	day, err := parseDate("date", date)
	if err != nil {
		return err
	}
	if !typ.IsValid() {
		return apperrors.NewValidationError("type", fmt.Sprintf("unknown availability type %q", typ))
	}

	unlock, err := s.locker.Lock(ctx, locking.MemberKey(memberID.String()))
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrLockTimeout, err)
	}
	defer unlock()

	if err := s.availability.Delete(memberID, day, typ); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAvailabilityNotFound
		}
		return fmt.Errorf("failed to delete availability: %w", err)
	}
	return nil
}

// ListAvailability lists a member's overrides between from and to inclusive
func (s *TeamMemberService) ListAvailability(memberID uuid.UUID, from, to string) ([]AvailabilityResponse, error) {
	window, err := parseWindow(from, to)
	if err != nil {
		return nil, err
	}
	if _, err := s.getMember(memberID); err != nil {
		return nil, err
	}

	entries, err := s.availability.GetByMember(memberID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}

	responses := make([]AvailabilityResponse, len(entries))
	for i := range entries {
		responses[i] = *toAvailabilityResponse(&entries[i])
	}
	return responses, nil
}

// RecomputeWorkload refreshes one member's current workload
func (s *TeamMemberService) RecomputeWorkload(memberID uuid.UUID) (float64, error) {
	if _, err := s.getMember(memberID); err != nil {
		return 0, err
	}
	return s.workload.Recompute(memberID)
}

// RecomputeAllWorkloads refreshes every member's current workload and returns
// the number of members updated. It keeps going after a failure and reports
// all failures together.
func (s *TeamMemberService) RecomputeAllWorkloads() (int, error) {
	members, err := s.members.GetAll(false)
	if err != nil {
		return 0, fmt.Errorf("failed to list team members: %w", err)
	}

	var errs []error
	updated := 0
	for i := range members {
		if _, err := s.workload.Recompute(members[i].ID); err != nil {
			errs = append(errs, fmt.Errorf("team member %s: %w", members[i].ID, err))
			continue
		}
		updated++
	}
	return updated, errors.Join(errs...)
}

// FindAvailableMembers returns the active members holding skill (any member
// when skill is empty) who could take on hours over the window without a
// single conflicting day
func (s *TeamMemberService) FindAvailableMembers(req *FindAvailableMembersRequest) ([]TeamMemberResponse, error) {
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

	members, err := s.members.GetAll(true)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	candidates := make([]models.TeamMember, 0, len(members))
	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		if req.Skill != "" && !m.HasSkill(req.Skill) {
			continue
		}
		candidates = append(candidates, m)
		ids = append(ids, m.ID)
	}
	if len(candidates) == 0 {
		return []TeamMemberResponse{}, nil
	}

	overrides, err := s.availability.GetByMembers(ids, window)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	from, to := window.Start, window.End
	allocations, err := s.allocations.List(repository.AllocationFilter{From: &from, To: &to})
	if err != nil {
		return nil, fmt.Errorf("failed to load allocations: %w", err)
	}

	overridesByMember := groupAvailability(overrides)
	responses := make([]TeamMemberResponse, 0, len(candidates))
	for i := range candidates {
		m := &candidates[i]
		conflicts, err := scheduling.DetectConflicts(m, overridesByMember[m.ID], allocations, scheduling.Proposal{
			TeamMemberID: m.ID,
			Window:       window,
			Hours:        req.Hours,
		})
		if err != nil {
			return nil, apperrors.FromWindowError(err)
		}
		if len(conflicts) == 0 {
			responses = append(responses, *toMemberResponse(m))
		}
	}
	return responses, nil
}

func (s *TeamMemberService) getMember(id uuid.UUID) (*models.TeamMember, error) {
	member, err := s.members.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	return member, nil
}

func groupAvailability(entries []models.Availability) map[uuid.UUID][]models.Availability {
	out := make(map[uuid.UUID][]models.Availability)
	for _, e := range entries {
		out[e.TeamMemberID] = append(out[e.TeamMemberID], e)
	}
	return out
}

func toMemberResponse(member *models.TeamMember) *TeamMemberResponse {
	skills := member.Skills
	if skills == nil {
		skills = []string{}
	}
	return &TeamMemberResponse{
		ID:              member.ID,
		Name:            member.Name,
		Email:           member.Email,
		Role:            member.Role,
		Department:      member.Department,
		HourlyRate:      member.HourlyRate,
		WeeklyCapacity:  member.WeeklyCapacity,
		DailyCapacity:   member.DailyCapacity(),
		Skills:          skills,
		IsActive:        member.IsActive,
		CurrentWorkload: member.CurrentWorkload,
		CreatedAt:       formatTimestamp(member.CreatedAt),
		UpdatedAt:       formatTimestamp(member.UpdatedAt),
	}
}

func toAvailabilityResponse(entry *models.Availability) *AvailabilityResponse {
	return &AvailabilityResponse{
		ID:           entry.ID,
		TeamMemberID: entry.TeamMemberID,
		Date:         calendar.FormatDate(entry.Date),
		Type:         entry.Type,
		Hours:        entry.Hours,
		Notes:        entry.Notes,
	}
}
