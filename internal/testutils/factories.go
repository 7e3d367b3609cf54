package testutils

import (
	"fmt"
	"time"

	"resource-planner-backend/internal/calendar"
	"resource-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

// Date parses a YYYY-MM-DD literal and panics on malformed input. Test use only.
func Date(s string) time.Time {
	d, err := calendar.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	id := uuid.New()
	return &models.Project{
		BaseModel:   models.BaseModel{ID: id},
		Name:        "project-" + id.String()[:8],
		Title:       "Test Project",
		Description: "A test project for testing purposes",
		Status:      models.ProjectStatusActive,
	}
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(name string) *models.Project {
	project := f.Create()
	project.Name = name
	project.Title = name
	return project
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates an active 40h/week test TeamMember with a unique email
func (f *TeamMemberFactory) Create() *models.TeamMember {
	id := uuid.New()
	return &models.TeamMember{
		BaseModel:      models.BaseModel{ID: id},
		Name:           "Jane Doe",
		Email:          fmt.Sprintf("jane.%s@test.com", id.String()[:8]),
		Role:           "engineer",
		Department:     "platform",
		HourlyRate:     100,
		WeeklyCapacity: 40,
		Skills:         []string{"go"},
		IsActive:       true,
	}
}

// WithName sets a custom name for the team member
func (f *TeamMemberFactory) WithName(name string) *models.TeamMember {
	member := f.Create()
	member.Name = name
	return member
}

// WithCapacity sets a custom weekly capacity for the team member
func (f *TeamMemberFactory) WithCapacity(weekly float64) *models.TeamMember {
	member := f.Create()
	member.WeeklyCapacity = weekly
	return member
}

// AllocationFactory provides methods to create test ResourceAllocation data
type AllocationFactory struct{}

// NewAllocationFactory creates a new AllocationFactory
func NewAllocationFactory() *AllocationFactory {
	return &AllocationFactory{}
}

// Create creates an allocation of hours over the inclusive window [start, end]
func (f *AllocationFactory) Create(projectID, memberID uuid.UUID, start, end string, hours float64) *models.ResourceAllocation {
	return &models.ResourceAllocation{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		ProjectID:    projectID,
		TeamMemberID: memberID,
		StartDate:    Date(start),
		EndDate:      Date(end),
		Hours:        hours,
		Role:         "engineer",
	}
}

// AvailabilityFactory provides methods to create test Availability data
type AvailabilityFactory struct{}

// NewAvailabilityFactory creates a new AvailabilityFactory
func NewAvailabilityFactory() *AvailabilityFactory {
	return &AvailabilityFactory{}
}

// Create creates an override for memberID on date
func (f *AvailabilityFactory) Create(memberID uuid.UUID, date string, typ models.AvailabilityType, hours float64) *models.Availability {
	return &models.Availability{
		TeamMemberID: memberID,
		Date:         Date(date),
		Type:         typ,
		Hours:        hours,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Project      *ProjectFactory
	TeamMember   *TeamMemberFactory
	Allocation   *AllocationFactory
	Availability *AvailabilityFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Project:      NewProjectFactory(),
		TeamMember:   NewTeamMemberFactory(),
		Allocation:   NewAllocationFactory(),
		Availability: NewAvailabilityFactory(),
	}
}
