package repository

import (
	"time"

	"resource-planner-backend/internal/calendar"
	"resource-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByName(name string) (*models.Project, error)
	GetByIDs(ids []uuid.UUID) ([]models.Project, error)
	GetAll(limit, offset int) ([]models.Project, int64, error)
	Update(project *models.Project) error
}

// TeamMemberRepositoryInterface defines the interface for team member repository operations
type TeamMemberRepositoryInterface interface {
	Create(member *models.TeamMember) error
	GetByID(id uuid.UUID) (*models.TeamMember, error)
	GetByEmail(email string) (*models.TeamMember, error)
	GetAll(activeOnly bool) ([]models.TeamMember, error)
	Update(member *models.TeamMember) error
	UpdateWorkload(id uuid.UUID, workload float64) error
}

// AvailabilityRepositoryInterface defines the interface for availability override operations
type AvailabilityRepositoryInterface interface {
	Upsert(entry *models.Availability) error
	GetByMember(memberID uuid.UUID, window calendar.Range) ([]models.Availability, error)
	GetByMembers(memberIDs []uuid.UUID, window calendar.Range) ([]models.Availability, error)
	Delete(memberID uuid.UUID, date time.Time, typ models.AvailabilityType) error
}

// AllocationRepositoryInterface defines the interface for resource allocation operations
type AllocationRepositoryInterface interface {
	Create(allocation *models.ResourceAllocation) error
	GetByID(id uuid.UUID) (*models.ResourceAllocation, error)
	List(filter AllocationFilter) ([]models.ResourceAllocation, error)
	GetOverlapping(memberID uuid.UUID, window calendar.Range) ([]models.ResourceAllocation, error)
	Update(allocation *models.ResourceAllocation) error
	Delete(id uuid.UUID) error
}

// TimelineRepositoryInterface defines the interface for project timeline operations
type TimelineRepositoryInterface interface {
	Replace(timeline *models.ProjectTimeline) error
	GetByProjectID(projectID uuid.UUID) (*models.ProjectTimeline, error)
}
