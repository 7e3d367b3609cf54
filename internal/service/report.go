package service

import (
	"errors"
	"fmt"

	"resource-planner-backend/internal/calendar"
	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/repository"
	"resource-planner-backend/internal/scheduling"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportService computes capacity and workload reports from current store
// state. Nothing it returns is cached.
type ReportService struct {
	members     repository.TeamMemberRepositoryInterface
	allocations repository.AllocationRepositoryInterface
	projects    repository.ProjectRepositoryInterface
	timelines   repository.TimelineRepositoryInterface
}

// NewReportService creates a new report service
func NewReportService(
	members repository.TeamMemberRepositoryInterface,
	allocations repository.AllocationRepositoryInterface,
	projects repository.ProjectRepositoryInterface,
	timelines repository.TimelineRepositoryInterface,
) *ReportService {
	return &ReportService{
		members:     members,
		allocations: allocations,
		projects:    projects,
		timelines:   timelines,
	}
}

// ProjectPhaseReport is a project's planned effort split by timeline phase
type ProjectPhaseReport struct {
	ProjectID   uuid.UUID                   `json:"project_id"`
	ProjectName string                      `json:"project_name"`
	StartDate   string                      `json:"start_date"`
	EndDate     string                      `json:"end_date"`
	TotalHours  float64                     `json:"total_hours"`
	Phases      []scheduling.PhaseBreakdown `json:"phases"`
}

// GetCapacityReport returns one report per active member for the window,
// most utilized first.
func (s *ReportService) GetCapacityReport(from, to string) ([]scheduling.CapacityReport, error) {
	window, err := parseWindow(from, to)
	if err != nil {
		return nil, err
	}

	members, err := s.members.GetAll(true)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	allocations, err := s.allocationsIn(window)
	if err != nil {
		return nil, err
	}
	names, err := s.projectNames(allocations)
	if err != nil {
		return nil, err
	}

	byMember := groupAllocations(allocations)
	reports := make([]scheduling.CapacityReport, 0, len(members))
	for i := range members {
		reports = append(reports, scheduling.BuildCapacityReport(&members[i], byMember[members[i].ID], window, names))
	}
	scheduling.SortByUtilization(reports)
	return reports, nil
}

// GetWorkloadDistribution buckets team workload by week or month.
func (s *ReportService) GetWorkloadDistribution(from, to, bucket string) ([]scheduling.WorkloadDistribution, error) {
	window, err := parseWindow(from, to)
	if err != nil {
		return nil, err
	}
	size := calendar.BucketSize(bucket)
	if bucket == "" {
		size = calendar.BucketWeek
	}
	if !size.IsValid() {
		return nil, apperrors.ErrInvalidBucket
	}

	members, err := s.members.GetAll(true)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	allocations, err := s.allocationsIn(window)
	if err != nil {
		return nil, err
	}

	return scheduling.BuildWorkloadDistribution(members, allocations, window, size), nil
}

// GetProjectPhaseReport prorates the project's allocations into the phases of
// its timeline.
func (s *ReportService) GetProjectPhaseReport(projectID uuid.UUID) (*ProjectPhaseReport, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	timeline, err := s.timelines.GetByProjectID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTimelineNotFound
		}
		return nil, fmt.Errorf("failed to get timeline: %w", err)
	}

	start, end := timeline.StartDate, timeline.EndDate
	allocations, err := s.allocations.List(repository.AllocationFilter{ProjectID: &projectID, From: &start, To: &end})
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}

	phases := scheduling.BuildPhaseBreakdown(timeline.Phases, allocations)
	report := &ProjectPhaseReport{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		StartDate:   calendar.FormatDate(start),
		EndDate:     calendar.FormatDate(end),
		Phases:      phases,
	}
	for _, p := range phases {
		report.TotalHours += p.AllocatedHours
	}
	return report, nil
}

func (s *ReportService) allocationsIn(window calendar.Range) ([]models.ResourceAllocation, error) {
	start, end := window.Start, window.End
	allocations, err := s.allocations.List(repository.AllocationFilter{From: &start, To: &end})
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}
	return allocations, nil
}

func (s *ReportService) projectNames(allocations []models.ResourceAllocation) (map[uuid.UUID]string, error) {
	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0)
	for _, a := range allocations {
		if _, ok := seen[a.ProjectID]; ok {
			continue
		}
		seen[a.ProjectID] = struct{}{}
		ids = append(ids, a.ProjectID)
	}
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	projects, err := s.projects.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	names := make(map[uuid.UUID]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}
	return names, nil
}

func groupAllocations(allocations []models.ResourceAllocation) map[uuid.UUID][]models.ResourceAllocation {
	out := make(map[uuid.UUID][]models.ResourceAllocation)
	for _, a := range allocations {
		out[a.TeamMemberID] = append(out[a.TeamMemberID], a)
	}
	return out
}
