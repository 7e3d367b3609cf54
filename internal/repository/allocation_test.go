package repository

import (
	"testing"

	"resource-planner-backend/internal/calendar"
	"resource-planner-backend/internal/database/models"
	"resource-planner-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AllocationRepositoryTestSuite tests the AllocationRepository
type AllocationRepositoryTestSuite struct {
	suite.Suite
	db        *gorm.DB
	repo      *AllocationRepository
	factories *testutils.FactorySet
	project   *models.Project
	member    *models.TeamMember
}

// SetupTest runs before each test
func (suite *AllocationRepositoryTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.repo = NewAllocationRepository(suite.db)
	suite.factories = testutils.NewFactorySet()

	suite.project = suite.factories.Project.Create()
	suite.Require().NoError(NewProjectRepository(suite.db).Create(suite.project))
	suite.member = suite.factories.TeamMember.Create()
	suite.Require().NoError(NewTeamMemberRepository(suite.db).Create(suite.member))
}

func (suite *AllocationRepositoryTestSuite) create(start, end string, hours float64) *models.ResourceAllocation {
	allocation := suite.factories.Allocation.Create(suite.project.ID, suite.member.ID, start, end, hours)
	suite.Require().NoError(suite.repo.Create(allocation))
	return allocation
}

// TestCreateAndGet tests creating and reloading an allocation
func (suite *AllocationRepositoryTestSuite) TestCreateAndGet() {
	allocation := suite.create("2024-01-08", "2024-01-12", 40)

	found, err := suite.repo.GetByID(allocation.ID)
	suite.Require().NoError(err)
	suite.Equal(40.0, found.Hours)
	suite.Equal("2024-01-08", calendar.FormatDate(found.StartDate))
	suite.Equal("2024-01-12", calendar.FormatDate(found.EndDate))
	suite.Equal(suite.member.ID, found.TeamMemberID)
}

// TestGetByIDNotFound tests that missing rows surface gorm.ErrRecordNotFound
func (suite *AllocationRepositoryTestSuite) TestGetByIDNotFound() {
	found, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

// TestListOverlap tests the inclusive window overlap filter
func (suite *AllocationRepositoryTestSuite) TestListOverlap() {
	january := suite.create("2024-01-08", "2024-01-12", 40)
	endsOnQueryStart := suite.create("2024-01-01", "2024-01-15", 20)
	suite.create("2024-02-05", "2024-02-09", 10)

	from, to := testutils.Date("2024-01-15"), testutils.Date("2024-01-31")
	allocations, err := suite.repo.List(AllocationFilter{From: &from, To: &to})
	suite.Require().NoError(err)
	suite.Require().Len(allocations, 1)
	suite.Equal(endsOnQueryStart.ID, allocations[0].ID)

	from = testutils.Date("2024-01-10")
	allocations, err = suite.repo.List(AllocationFilter{From: &from, To: &to})
	suite.Require().NoError(err)
	suite.Len(allocations, 2)
	// ordered by start date
	suite.Equal(endsOnQueryStart.ID, allocations[0].ID)
	suite.Equal(january.ID, allocations[1].ID)
}

// TestListByProjectAndMember tests the project and member filters
func (suite *AllocationRepositoryTestSuite) TestListByProjectAndMember() {
	suite.create("2024-01-08", "2024-01-12", 40)

	other := suite.factories.Project.Create()
	suite.Require().NoError(NewProjectRepository(suite.db).Create(other))
	suite.Require().NoError(suite.repo.Create(suite.factories.Allocation.Create(other.ID, suite.member.ID, "2024-01-08", "2024-01-12", 8)))

	allocations, err := suite.repo.List(AllocationFilter{ProjectID: &other.ID})
	suite.Require().NoError(err)
	suite.Require().Len(allocations, 1)
	suite.Equal(8.0, allocations[0].Hours)

	allocations, err = suite.repo.List(AllocationFilter{TeamMemberID: &suite.member.ID})
	suite.Require().NoError(err)
	suite.Len(allocations, 2)

	stranger := uuid.New()
	allocations, err = suite.repo.List(AllocationFilter{TeamMemberID: &stranger})
	suite.Require().NoError(err)
	suite.Empty(allocations)
}

// TestGetOverlapping tests the member window lookup used by conflict detection
func (suite *AllocationRepositoryTestSuite) TestGetOverlapping() {
	suite.create("2024-01-08", "2024-01-12", 40)
	suite.create("2024-01-22", "2024-01-26", 40)

	allocations, err := suite.repo.GetOverlapping(suite.member.ID, calendar.NewRange(testutils.Date("2024-01-12"), testutils.Date("2024-01-19")))
	suite.Require().NoError(err)
	suite.Len(allocations, 1)
}

// TestUpdate tests saving changed fields
func (suite *AllocationRepositoryTestSuite) TestUpdate() {
	allocation := suite.create("2024-01-08", "2024-01-12", 40)
	allocation.Hours = 20
	allocation.EndDate = testutils.Date("2024-01-19")
	suite.Require().NoError(suite.repo.Update(allocation))

	found, err := suite.repo.GetByID(allocation.ID)
	suite.Require().NoError(err)
	suite.Equal(20.0, found.Hours)
	suite.Equal("2024-01-19", calendar.FormatDate(found.EndDate))
}

// TestDelete tests deleting an allocation and deleting it twice
func (suite *AllocationRepositoryTestSuite) TestDelete() {
	allocation := suite.create("2024-01-08", "2024-01-12", 40)

	suite.NoError(suite.repo.Delete(allocation.ID))
	suite.ErrorIs(suite.repo.Delete(allocation.ID), gorm.ErrRecordNotFound)

	_, err := suite.repo.GetByID(allocation.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestAllocationRepositoryTestSuite runs the test suite
func TestAllocationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AllocationRepositoryTestSuite))
}
