package service

import (
	"context"

	"resource-planner-backend/internal/database/models"
	"resource-planner-backend/internal/scheduling"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	CreateProject(req *CreateProjectRequest) (*ProjectResponse, error)
	GetProject(id uuid.UUID) (*ProjectResponse, error)
	ListProjects(page, pageSize int) (*ProjectListResponse, error)
	UpdateProjectStatus(id uuid.UUID, req *UpdateProjectStatusRequest) (*ProjectResponse, error)
}

// TeamMemberServiceInterface defines the interface for team member service
type TeamMemberServiceInterface interface {
	CreateMember(req *CreateTeamMemberRequest) (*TeamMemberResponse, error)
	GetMember(id uuid.UUID) (*TeamMemberResponse, error)
	ListMembers(activeOnly bool) ([]TeamMemberResponse, error)
	UpdateMember(id uuid.UUID, req *UpdateTeamMemberRequest) (*TeamMemberResponse, error)
	DeactivateMember(id uuid.UUID) (*TeamMemberResponse, error)
	SetAvailability(ctx context.Context, memberID uuid.UUID, req *SetAvailabilityRequest) (*AvailabilityResponse, error)
	RemoveAvailability(ctx context.Context, memberID uuid.UUID, date string, typ models.AvailabilityType) error
	ListAvailability(memberID uuid.UUID, from, to string) ([]AvailabilityResponse, error)
	RecomputeWorkload(memberID uuid.UUID) (float64, error)
	RecomputeAllWorkloads() (int, error)
	FindAvailableMembers(req *FindAvailableMembersRequest) ([]TeamMemberResponse, error)
}

// AllocationServiceInterface defines the interface for allocation service
type AllocationServiceInterface interface {
	CreateAllocation(ctx context.Context, req *CreateAllocationRequest) (*AllocationResponse, error)
	UpdateAllocation(ctx context.Context, id uuid.UUID, req *UpdateAllocationRequest) (*AllocationResponse, error)
	DeleteAllocation(ctx context.Context, id uuid.UUID) error
	GetAllocation(id uuid.UUID) (*AllocationResponse, error)
	ListAllocations(filter *AllocationFilter) ([]AllocationResponse, error)
	LogActualHours(ctx context.Context, id uuid.UUID, req *LogActualHoursRequest) (*AllocationResponse, error)
	CheckConflicts(ctx context.Context, req *CheckConflictsRequest) ([]scheduling.ResourceConflict, error)
	ListConflicts(ctx context.Context, from, to string, memberID *uuid.UUID) ([]scheduling.ResourceConflict, error)
}

// ReportServiceInterface defines the interface for report service
type ReportServiceInterface interface {
	GetCapacityReport(from, to string) ([]scheduling.CapacityReport, error)
	GetWorkloadDistribution(from, to, bucket string) ([]scheduling.WorkloadDistribution, error)
	GetProjectPhaseReport(projectID uuid.UUID) (*ProjectPhaseReport, error)
}

// TimelineServiceInterface defines the interface for timeline service
type TimelineServiceInterface interface {
	CreateTimeline(req *CreateTimelineRequest) (*TimelineResponse, error)
	GetTimeline(projectID uuid.UUID) (*TimelineResponse, error)
}
