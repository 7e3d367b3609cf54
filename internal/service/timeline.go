package service

import (
	"errors"
	"fmt"
	"time"

	"resource-planner-backend/internal/calendar"
	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimelineService handles business logic for project timelines
type TimelineService struct {
	timelines repository.TimelineRepositoryInterface
	projects  repository.ProjectRepositoryInterface
	validator *validator.Validate
}

// NewTimelineService creates a new timeline service
func NewTimelineService(timelines repository.TimelineRepositoryInterface, projects repository.ProjectRepositoryInterface, validator *validator.Validate) *TimelineService {
	return &TimelineService{
		timelines: timelines,
		projects:  projects,
		validator: validator,
	}
}

// PhaseRequest describes one phase of a timeline
type PhaseRequest struct {
	Name      string             `json:"name" yaml:"name" validate:"required,max=200"`
	StartDate string             `json:"start_date" yaml:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string             `json:"end_date" yaml:"end_date" validate:"required,datetime=2006-01-02"`
	Status    models.PhaseStatus `json:"status,omitempty" yaml:"status,omitempty"`
	Progress  int                `json:"progress,omitempty" yaml:"progress,omitempty" validate:"gte=0,lte=100"`
}

// MilestoneRequest describes a dated checkpoint
type MilestoneRequest struct {
	Name      string `json:"name" yaml:"name" validate:"required,max=200"`
	Date      string `json:"date" yaml:"date" validate:"required,datetime=2006-01-02"`
	Completed bool   `json:"completed,omitempty" yaml:"completed,omitempty"`
}

// DependencyRequest links two timeline items by key
type DependencyRequest struct {
	From    string                `json:"from" yaml:"from" validate:"required"`
	To      string                `json:"to" yaml:"to" validate:"required"`
	Type    models.DependencyType `json:"type,omitempty" yaml:"type,omitempty"`
	LagDays int                   `json:"lag_days,omitempty" yaml:"lag_days,omitempty"`
}

// CreateTimelineRequest replaces a project's timeline
type CreateTimelineRequest struct {
	ProjectID    uuid.UUID           `json:"project_id" yaml:"project_id" validate:"required"`
	Phases       []PhaseRequest      `json:"phases" yaml:"phases" validate:"dive"`
	Milestones   []MilestoneRequest  `json:"milestones,omitempty" yaml:"milestones,omitempty" validate:"dive"`
	Dependencies []DependencyRequest `json:"dependencies,omitempty" yaml:"dependencies,omitempty" validate:"dive"`
}

// PhaseResponse represents a stored phase
type PhaseResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	StartDate   string             `json:"start_date"`
	EndDate     string             `json:"end_date"`
	WorkingDays int                `json:"working_days"`
	Position    int                `json:"position"`
	Status      models.PhaseStatus `json:"status"`
	Progress    int                `json:"progress"`
}

// MilestoneResponse represents a stored milestone
type MilestoneResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	Completed bool      `json:"completed"`
}

// DependencyResponse represents a stored dependency
type DependencyResponse struct {
	ID      uuid.UUID             `json:"id"`
	From    string                `json:"from"`
	To      string                `json:"to"`
	Type    models.DependencyType `json:"type"`
	LagDays int                   `json:"lag_days"`
}

// TimelineResponse represents the response for timeline operations
type TimelineResponse struct {
	ID           uuid.UUID            `json:"id"`
	ProjectID    uuid.UUID            `json:"project_id"`
	StartDate    string               `json:"start_date"`
	EndDate      string               `json:"end_date"`
	Phases       []PhaseResponse      `json:"phases"`
	Milestones   []MilestoneResponse  `json:"milestones"`
	Dependencies []DependencyResponse `json:"dependencies"`
	CreatedAt    string               `json:"created_at"`
}

// CreateTimeline stores the timeline for a project, replacing any existing
// one. The timeline spans from the earliest phase start to the latest phase
// end. Dependencies are stored as given and not checked for cycles.
func (s *TimelineService) CreateTimeline(req *CreateTimelineRequest) (*TimelineResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	if len(req.Phases) == 0 {
		return nil, apperrors.NewValidationError("phases", "a timeline needs at least one phase")
	}

	if _, err := s.projects.GetByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	timeline := &models.ProjectTimeline{ProjectID: req.ProjectID}
	for i, p := range req.Phases {
		window, err := parseWindow(p.StartDate, p.EndDate)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("phases[%d]", i), err.Error())
		}
		status := p.Status
		if status == "" {
			status = models.PhaseStatusPlanned
		}
		if !status.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("phases[%d].status", i), fmt.Sprintf("unknown phase status %q", status))
		}

		if i == 0 || window.Start.Before(timeline.StartDate) {
			timeline.StartDate = window.Start
		}
		if i == 0 || window.End.After(timeline.EndDate) {
			timeline.EndDate = window.End
		}
		timeline.Phases = append(timeline.Phases, models.TimelinePhase{
			Name:      p.Name,
			StartDate: window.Start,
			EndDate:   window.End,
			Position:  i,
			Status:    status,
			Progress:  p.Progress,
		})
	}

	for _, m := range req.Milestones {
		date, err := parseDate("milestones.date", m.Date)
		if err != nil {
			return nil, err
		}
		milestone := models.Milestone{Name: m.Name, Date: date, Completed: m.Completed}
		if m.Completed {
			now := time.Now().UTC()
			milestone.CompletedAt = &now
		}
		timeline.Milestones = append(timeline.Milestones, milestone)
	}

	for i, d := range req.Dependencies {
		typ := d.Type
		if typ == "" {
			typ = models.DependencyFinishToStart
		}
		if !typ.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("dependencies[%d].type", i), fmt.Sprintf("unknown dependency type %q", typ))
		}
		timeline.Dependencies = append(timeline.Dependencies, models.ProjectDependency{
			FromKey: d.From,
			ToKey:   d.To,
			Type:    typ,
			LagDays: d.LagDays,
		})
	}

	if err := s.timelines.Replace(timeline); err != nil {
		return nil, fmt.Errorf("failed to store timeline: %w", err)
	}
	return toTimelineResponse(timeline), nil
}

// GetTimeline returns the project's timeline, or nil when the project has none.
func (s *TimelineService) GetTimeline(projectID uuid.UUID) (*TimelineResponse, error) {
	if _, err := s.projects.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	timeline, err := s.timelines.GetByProjectID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get timeline: %w", err)
	}
	return toTimelineResponse(timeline), nil
}

func toTimelineResponse(t *models.ProjectTimeline) *TimelineResponse {
	resp := &TimelineResponse{
		ID:           t.ID,
		ProjectID:    t.ProjectID,
		StartDate:    calendar.FormatDate(t.StartDate),
		EndDate:      calendar.FormatDate(t.EndDate),
		Phases:       make([]PhaseResponse, 0, len(t.Phases)),
		Milestones:   make([]MilestoneResponse, 0, len(t.Milestones)),
		Dependencies: make([]DependencyResponse, 0, len(t.Dependencies)),
		CreatedAt:    formatTimestamp(t.CreatedAt),
	}
	for _, p := range t.Phases {
		resp.Phases = append(resp.Phases, PhaseResponse{
			ID:          p.ID,
			Name:        p.Name,
			StartDate:   calendar.FormatDate(p.StartDate),
			EndDate:     calendar.FormatDate(p.EndDate),
			WorkingDays: calendar.WorkingDays(p.StartDate, p.EndDate),
			Position:    p.Position,
			Status:      p.Status,
			Progress:    p.Progress,
		})
	}
	for _, m := range t.Milestones {
		resp.Milestones = append(resp.Milestones, MilestoneResponse{
			ID:        m.ID,
			Name:      m.Name,
			Date:      calendar.FormatDate(m.Date),
			Completed: m.Completed,
		})
	}
	for _, d := range t.Dependencies {
		resp.Dependencies = append(resp.Dependencies, DependencyResponse{
			ID:      d.ID,
			From:    d.FromKey,
			To:      d.ToKey,
			Type:    d.Type,
			LagDays: d.LagDays,
		})
	}
	return resp
}
