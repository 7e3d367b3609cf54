package service_test

import (
	"context"
	"time"

	"resource-planner-backend/internal/database/models"
	"resource-planner-backend/internal/locking"
	"resource-planner-backend/internal/metrics"
	"resource-planner-backend/internal/repository"
	"resource-planner-backend/internal/service"
	"resource-planner-backend/internal/testutils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// plannerSuite wires every service against a private sqlite database
type plannerSuite struct {
	suite.Suite
	ctx       context.Context
	db        *gorm.DB
	factories *testutils.FactorySet

	projectRepo      *repository.ProjectRepository
	memberRepo       *repository.TeamMemberRepository
	availabilityRepo *repository.AvailabilityRepository
	allocationRepo   *repository.AllocationRepository
	timelineRepo     *repository.TimelineRepository

	locker      *locking.KeyedMutex
	workload    *service.WorkloadCalculator
	metrics     *metrics.Metrics
	projects    *service.ProjectService
	members     *service.TeamMemberService
	allocations *service.AllocationService
	reports     *service.ReportService
	timelines   *service.TimelineService
}

func (s *plannerSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutils.NewSQLiteDB(s.T())
	s.factories = testutils.NewFactorySet()

	s.projectRepo = repository.NewProjectRepository(s.db)
	s.memberRepo = repository.NewTeamMemberRepository(s.db)
	s.availabilityRepo = repository.NewAvailabilityRepository(s.db)
	s.allocationRepo = repository.NewAllocationRepository(s.db)
	s.timelineRepo = repository.NewTimelineRepository(s.db)

	v := service.NewValidator()
	s.locker = locking.NewKeyedMutex()
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.workload = service.NewWorkloadCalculator(s.memberRepo, s.allocationRepo)
	s.workload.SetClock(func() time.Time { return testutils.Date("2024-01-10").Add(9 * time.Hour) })

	s.projects = service.NewProjectService(s.projectRepo, v)
	s.members = service.NewTeamMemberService(s.memberRepo, s.availabilityRepo, s.allocationRepo, s.workload, s.locker, v)
	s.allocations = service.NewAllocationService(s.allocationRepo, s.memberRepo, s.projectRepo, s.availabilityRepo, s.workload, s.locker, s.metrics, v)
	s.reports = service.NewReportService(s.memberRepo, s.allocationRepo, s.projectRepo, s.timelineRepo)
	s.timelines = service.NewTimelineService(s.timelineRepo, s.projectRepo, v)
}

func (s *plannerSuite) seedProject(name string) *models.Project {
	project := s.factories.Project.WithName(name)
	s.Require().NoError(s.projectRepo.Create(project))
	return project
}

func (s *plannerSuite) seedMember(name string, weekly float64) *models.TeamMember {
	member := s.factories.TeamMember.WithCapacity(weekly)
	member.Name = name
	s.Require().NoError(s.memberRepo.Create(member))
	return member
}

func (s *plannerSuite) seedAllocation(project *models.Project, member *models.TeamMember, start, end string, hours float64) *models.ResourceAllocation {
	allocation := s.factories.Allocation.Create(project.ID, member.ID, start, end, hours)
	s.Require().NoError(s.allocationRepo.Create(allocation))
	return allocation
}

func floatPtr(f float64) *float64 { return &f }

func stringPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
