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

// AvailabilityRepositoryTestSuite tests the AvailabilityRepository
type AvailabilityRepositoryTestSuite struct {
	suite.Suite
	repo      *AvailabilityRepository
	factories *testutils.FactorySet
	member    *models.TeamMember
}

// SetupTest runs before each test
func (suite *AvailabilityRepositoryTestSuite) SetupTest() {
	db := testutils.NewSQLiteDB(suite.T())
	suite.repo = NewAvailabilityRepository(db)
	suite.factories = testutils.NewFactorySet()
	suite.member = suite.factories.TeamMember.Create()
	suite.Require().NoError(NewTeamMemberRepository(db).Create(suite.member))
}

// TestUpsertReplacesSameType tests that a second override for the same date and type updates the row
func (suite *AvailabilityRepositoryTestSuite) TestUpsertReplacesSameType() {
	first := suite.factories.Availability.Create(suite.member.ID, "2024-01-10", models.AvailabilityBusy, 2)
	suite.Require().NoError(suite.repo.Upsert(first))

	second := suite.factories.Availability.Create(suite.member.ID, "2024-01-10", models.AvailabilityBusy, 5)
	second.Notes = "workshop"
	suite.Require().NoError(suite.repo.Upsert(second))
	suite.Equal(first.ID, second.ID)

	entries, err := suite.repo.GetByMember(suite.member.ID, calendar.NewRange(testutils.Date("2024-01-08"), testutils.Date("2024-01-12")))
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal(5.0, entries[0].Hours)
	suite.Equal("workshop", entries[0].Notes)
}

// TestUpsertKeepsDifferentTypes tests that several types may coexist on one date
func (suite *AvailabilityRepositoryTestSuite) TestUpsertKeepsDifferentTypes() {
	suite.Require().NoError(suite.repo.Upsert(suite.factories.Availability.Create(suite.member.ID, "2024-01-10", models.AvailabilityBusy, 2)))
	suite.Require().NoError(suite.repo.Upsert(suite.factories.Availability.Create(suite.member.ID, "2024-01-10", models.AvailabilityVacation, 8)))

	entries, err := suite.repo.GetByMember(suite.member.ID, calendar.NewRange(testutils.Date("2024-01-10"), testutils.Date("2024-01-10")))
	suite.Require().NoError(err)
	suite.Len(entries, 2)
}

// TestGetByMembersWindow tests the window and member filters
func (suite *AvailabilityRepositoryTestSuite) TestGetByMembersWindow() {
	other := uuid.New()
	suite.Require().NoError(suite.repo.Upsert(suite.factories.Availability.Create(suite.member.ID, "2024-01-10", models.AvailabilityVacation, 8)))
	suite.Require().NoError(suite.repo.Upsert(suite.factories.Availability.Create(suite.member.ID, "2024-02-10", models.AvailabilityVacation, 8)))
	suite.Require().NoError(suite.repo.Upsert(suite.factories.Availability.Create(other, "2024-01-11", models.AvailabilitySick, 8)))

	january := calendar.NewRange(testutils.Date("2024-01-01"), testutils.Date("2024-01-31"))
	entries, err := suite.repo.GetByMembers([]uuid.UUID{suite.member.ID, other}, january)
	suite.Require().NoError(err)
	suite.Len(entries, 2)

	entries, err = suite.repo.GetByMembers(nil, january)
	suite.Require().NoError(err)
	suite.Empty(entries)
}

// TestDelete tests removing one override
func (suite *AvailabilityRepositoryTestSuite) TestDelete() {
	suite.Require().NoError(suite.repo.Upsert(suite.factories.Availability.Create(suite.member.ID, "2024-01-10", models.AvailabilityVacation, 8)))

	suite.NoError(suite.repo.Delete(suite.member.ID, testutils.Date("2024-01-10"), models.AvailabilityVacation))
	suite.ErrorIs(suite.repo.Delete(suite.member.ID, testutils.Date("2024-01-10"), models.AvailabilityVacation), gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.repo.Delete(suite.member.ID, testutils.Date("2024-01-11"), models.AvailabilityBusy), gorm.ErrRecordNotFound)
}

// TestAvailabilityRepositoryTestSuite runs the test suite
func TestAvailabilityRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityRepositoryTestSuite))
}
