package service

import (
	"resource-planner-backend/internal/locking"
	"resource-planner-backend/internal/metrics"
	"resource-planner-backend/internal/repository"

	"gorm.io/gorm"
)

// Services bundles the planner's services over one database. The HTTP server
// and the command line tool share this wiring.
type Services struct {
	Projects    *ProjectService
	Members     *TeamMemberService
	Allocations *AllocationService
	Reports     *ReportService
	Timelines   *TimelineService
	Workload    *WorkloadCalculator
}

// NewServices builds repositories and services. locker serializes writes per
// team member; m may be nil. weeklyCapacity is the capacity given to members
// created without one and is ignored when not positive.
func NewServices(db *gorm.DB, locker locking.Locker, m *metrics.Metrics, weeklyCapacity float64) *Services {
	v := NewValidator()

	projectRepo := repository.NewProjectRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	allocationRepo := repository.NewAllocationRepository(db)
	timelineRepo := repository.NewTimelineRepository(db)

	workload := NewWorkloadCalculator(memberRepo, allocationRepo)
	members := NewTeamMemberService(memberRepo, availabilityRepo, allocationRepo, workload, locker, v)
	members.SetDefaultWeeklyCapacity(weeklyCapacity)

	return &Services{
		Projects:    NewProjectService(projectRepo, v),
		Members:     members,
		Allocations: NewAllocationService(allocationRepo, memberRepo, projectRepo, availabilityRepo, workload, locker, m, v),
		Reports:     NewReportService(memberRepo, allocationRepo, projectRepo, timelineRepo),
		Timelines:   NewTimelineService(timelineRepo, projectRepo, v),
		Workload:    workload,
	}
}
