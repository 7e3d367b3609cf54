package service_test

import (
	"testing"

	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ProjectServiceTestSuite defines the test suite for ProjectService
type ProjectServiceTestSuite struct {
	plannerSuite
}

// TestCreateProjectValidation tests the validation logic for creating a project
func (suite *ProjectServiceTestSuite) TestCreateProjectValidation() {
	testCases := []struct {
		name        string
		request     *service.CreateProjectRequest
		expectError bool
	}{
		{
			name:    "Valid request",
			request: &service.CreateProjectRequest{Name: "atlas", Title: "Atlas Migration"},
		},
		{
			name:        "Missing name",
			request:     &service.CreateProjectRequest{Title: "Atlas Migration"},
			expectError: true,
		},
		{
			name:        "Missing title",
			request:     &service.CreateProjectRequest{Name: "atlas-2"},
			expectError: true,
		},
		{
			name:        "Unknown status",
			request:     &service.CreateProjectRequest{Name: "atlas-3", Title: "Atlas", Status: "shelved"},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			resp, err := suite.projects.CreateProject(tc.request)
			if tc.expectError {
				suite.True(apperrors.IsValidation(err), "unexpected error %v", err)
				suite.Nil(resp)
				return
			}
			suite.Require().NoError(err)
			suite.Equal(models.ProjectStatusActive, resp.Status)
		})
	}
}

func (suite *ProjectServiceTestSuite) TestCreateProjectDuplicateName() {
	_, err := suite.projects.CreateProject(&service.CreateProjectRequest{Name: "atlas", Title: "Atlas"})
	suite.Require().NoError(err)

	_, err = suite.projects.CreateProject(&service.CreateProjectRequest{Name: "atlas", Title: "Atlas again"})
	suite.ErrorIs(err, apperrors.ErrProjectExists)
}

func (suite *ProjectServiceTestSuite) TestGetProject() {
	created, err := suite.projects.CreateProject(&service.CreateProjectRequest{Name: "atlas", Title: "Atlas", Status: models.ProjectStatusOnHold})
	suite.Require().NoError(err)

	got, err := suite.projects.GetProject(created.ID)
	suite.Require().NoError(err)
	suite.Equal("atlas", got.Name)
	suite.Equal(models.ProjectStatusOnHold, got.Status)

	_, err = suite.projects.GetProject(uuid.New())
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (suite *ProjectServiceTestSuite) TestGetProjectByName() {
	created, err := suite.projects.CreateProject(&service.CreateProjectRequest{Name: "atlas", Title: "Atlas"})
	suite.Require().NoError(err)

	got, err := suite.projects.GetProjectByName("atlas")
	suite.Require().NoError(err)
	suite.Equal(created.ID, got.ID)

	_, err = suite.projects.GetProjectByName("borealis")
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (suite *ProjectServiceTestSuite) TestListProjectsPaginates() {
	for _, name := range []string{"a", "b", "c"} {
		suite.seedProject(name)
	}

	page, err := suite.projects.ListProjects(1, 2)
	suite.Require().NoError(err)
	suite.Equal(int64(3), page.Total)
	suite.Len(page.Projects, 2)

	page, err = suite.projects.ListProjects(2, 2)
	suite.Require().NoError(err)
	suite.Len(page.Projects, 1)

	page, err = suite.projects.ListProjects(0, 0)
	suite.Require().NoError(err)
	suite.Equal(1, page.Page)
	suite.Equal(20, page.PageSize)
}

func (suite *ProjectServiceTestSuite) TestUpdateProjectStatus() {
	project := suite.seedProject("atlas")

	resp, err := suite.projects.UpdateProjectStatus(project.ID, &service.UpdateProjectStatusRequest{Status: models.ProjectStatusCompleted})
	suite.Require().NoError(err)
	suite.Equal(models.ProjectStatusCompleted, resp.Status)

	_, err = suite.projects.UpdateProjectStatus(project.ID, &service.UpdateProjectStatusRequest{Status: "shelved"})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.projects.UpdateProjectStatus(uuid.New(), &service.UpdateProjectStatusRequest{Status: models.ProjectStatusActive})
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

// TestProjectServiceTestSuite runs the test suite
func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
