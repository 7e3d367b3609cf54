package repository

import (
	"testing"

	"resource-planner-backend/internal/database/models"
	"resource-planner-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	repo      *ProjectRepository
	factories *testutils.FactorySet
}

// SetupTest runs before each test
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.repo = NewProjectRepository(testutils.NewSQLiteDB(suite.T()))
	suite.factories = testutils.NewFactorySet()
}

// TestCreate tests creating a new project
func (suite *ProjectRepositoryTestSuite) TestCreate() {
	project := suite.factories.Project.Create()
	project.ID = uuid.Nil

	err := suite.repo.Create(project)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, project.ID)
	suite.NotZero(project.CreatedAt)
	suite.NotZero(project.UpdatedAt)
}

// TestCreateDuplicateName tests the unique name constraint
func (suite *ProjectRepositoryTestSuite) TestCreateDuplicateName() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Project.WithName("apollo")))
	suite.Error(suite.repo.Create(suite.factories.Project.WithName("apollo")))
}

// TestGetByName tests retrieving a project by name
func (suite *ProjectRepositoryTestSuite) TestGetByName() {
	project := suite.factories.Project.WithName("apollo")
	suite.Require().NoError(suite.repo.Create(project))

	found, err := suite.repo.GetByName("apollo")
	suite.Require().NoError(err)
	suite.Equal(project.ID, found.ID)

	_, err = suite.repo.GetByName("gemini")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByIDs tests loading several projects at once
func (suite *ProjectRepositoryTestSuite) TestGetByIDs() {
	apollo := suite.factories.Project.WithName("apollo")
	gemini := suite.factories.Project.WithName("gemini")
	suite.Require().NoError(suite.repo.Create(apollo))
	suite.Require().NoError(suite.repo.Create(gemini))

	projects, err := suite.repo.GetByIDs([]uuid.UUID{apollo.ID, gemini.ID, uuid.New()})
	suite.Require().NoError(err)
	suite.Len(projects, 2)

	projects, err = suite.repo.GetByIDs(nil)
	suite.Require().NoError(err)
	suite.Empty(projects)
}

// TestGetAllPagination tests paging through projects ordered by name
func (suite *ProjectRepositoryTestSuite) TestGetAllPagination() {
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		suite.Require().NoError(suite.repo.Create(suite.factories.Project.WithName(name)))
	}

	page, total, err := suite.repo.GetAll(2, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(page, 2)
	suite.Equal("alpha", page[0].Name)
	suite.Equal("bravo", page[1].Name)

	page, _, err = suite.repo.GetAll(2, 2)
	suite.Require().NoError(err)
	suite.Require().Len(page, 1)
	suite.Equal("charlie", page[0].Name)
}

// TestUpdate tests updating the project status
func (suite *ProjectRepositoryTestSuite) TestUpdate() {
	project := suite.factories.Project.Create()
	suite.Require().NoError(suite.repo.Create(project))

	project.Status = models.ProjectStatusOnHold
	suite.Require().NoError(suite.repo.Update(project))

	found, err := suite.repo.GetByID(project.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ProjectStatusOnHold, found.Status)
}

// TestProjectRepositoryTestSuite runs the test suite
func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
