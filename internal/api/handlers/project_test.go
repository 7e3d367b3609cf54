package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"resource-planner-backend/internal/api/handlers"
	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/mocks"
	"resource-planner-backend/internal/scheduling"
	"resource-planner-backend/internal/service"
	"resource-planner-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	projectService  *mocks.MockProjectServiceInterface
	timelineService *mocks.MockTimelineServiceInterface
	reportService   *mocks.MockReportServiceInterface
	http            *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ProjectHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.projectService = mocks.NewMockProjectServiceInterface(suite.ctrl)
	suite.timelineService = mocks.NewMockTimelineServiceInterface(suite.ctrl)
	suite.reportService = mocks.NewMockReportServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest()

	handler := handlers.NewProjectHandler(suite.projectService, suite.timelineService, suite.reportService)
	router := suite.http.Router
	router.POST("/projects", handler.CreateProject)
	router.GET("/projects", handler.ListProjects)
	router.GET("/projects/:id", handler.GetProject)
	router.PATCH("/projects/:id/status", handler.UpdateProjectStatus)
	router.GET("/projects/:id/timeline", handler.GetTimeline)
	router.GET("/projects/:id/phase-report", handler.GetPhaseReport)
	router.POST("/timelines", handler.CreateTimeline)
}

// TearDownTest cleans up after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectHandlerTestSuite) TestCreateProject() {
	req := &service.CreateProjectRequest{Name: "atlas", Title: "Atlas"}
	suite.projectService.EXPECT().CreateProject(req).Return(&service.ProjectResponse{
		ID:     uuid.New(),
		Name:   "atlas",
		Title:  "Atlas",
		Status: models.ProjectStatusActive,
	}, nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/projects", req)

	var response service.ProjectResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal("atlas", response.Name)
	suite.Equal(models.ProjectStatusActive, response.Status)
}

func (suite *ProjectHandlerTestSuite) TestCreateProjectDuplicate() {
	suite.projectService.EXPECT().CreateProject(gomock.Any()).Return(nil, apperrors.ErrProjectExists)

	recorder := suite.http.MakeRequest(http.MethodPost, "/projects", service.CreateProjectRequest{Name: "atlas", Title: "Atlas"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "project already exists")
}

func (suite *ProjectHandlerTestSuite) TestListProjectsPagination() {
	testCases := []struct {
		name         string
		query        string
		expectedPage int
		expectedSize int
	}{
		{"defaults", "", 1, 20},
		{"explicit", "?page=3&page_size=5", 3, 5},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.projectService.EXPECT().
				ListProjects(tc.expectedPage, tc.expectedSize).
				Return(&service.ProjectListResponse{Projects: []service.ProjectResponse{}, Page: tc.expectedPage, PageSize: tc.expectedSize}, nil)

			recorder := suite.http.MakeRequest(http.MethodGet, "/projects"+tc.query, nil)

			var response service.ProjectListResponse
			testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
			suite.Equal(tc.expectedPage, response.Page)
		})
	}
}

func (suite *ProjectHandlerTestSuite) TestGetProject() {
	id := uuid.New()
	suite.projectService.EXPECT().GetProject(id).Return(&service.ProjectResponse{ID: id, Name: "atlas"}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/projects/"+id.String(), nil)

	var response service.ProjectResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(id, response.ID)
}

func (suite *ProjectHandlerTestSuite) TestGetProjectErrors() {
	suite.Run("invalid id", func() {
		recorder := suite.http.MakeRequest(http.MethodGet, "/projects/xyz", nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid project ID")
	})

	suite.Run("not found", func() {
		id := uuid.New()
		suite.projectService.EXPECT().GetProject(id).Return(nil, apperrors.ErrProjectNotFound)

		recorder := suite.http.MakeRequest(http.MethodGet, "/projects/"+id.String(), nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "project not found")
	})

	suite.Run("storage failure", func() {
		id := uuid.New()
		suite.projectService.EXPECT().GetProject(id).Return(nil, errors.New("connection reset"))

		recorder := suite.http.MakeRequest(http.MethodGet, "/projects/"+id.String(), nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "connection reset")
	})
}

func (suite *ProjectHandlerTestSuite) TestUpdateProjectStatus() {
	id := uuid.New()
	suite.projectService.EXPECT().
		UpdateProjectStatus(id, &service.UpdateProjectStatusRequest{Status: models.ProjectStatusCompleted}).
		Return(&service.ProjectResponse{ID: id, Status: models.ProjectStatusCompleted}, nil)

	recorder := suite.http.MakeRequest(http.MethodPatch, "/projects/"+id.String()+"/status", map[string]string{"status": "completed"})

	var response service.ProjectResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(models.ProjectStatusCompleted, response.Status)
}

func (suite *ProjectHandlerTestSuite) TestGetTimeline() {
	suite.Run("stored timeline", func() {
		id := uuid.New()
		suite.timelineService.EXPECT().GetTimeline(id).Return(&service.TimelineResponse{
			ProjectID: id,
			StartDate: "2024-01-08",
			EndDate:   "2024-01-19",
			Phases:    []service.PhaseResponse{{Name: "design"}, {Name: "build"}},
		}, nil)

		recorder := suite.http.MakeRequest(http.MethodGet, "/projects/"+id.String()+"/timeline", nil)

		var response service.TimelineResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
		suite.Len(response.Phases, 2)
		suite.Equal("2024-01-19", response.EndDate)
	})

	suite.Run("project without timeline", func() {
		id := uuid.New()
		suite.timelineService.EXPECT().GetTimeline(id).Return(nil, nil)

		recorder := suite.http.MakeRequest(http.MethodGet, "/projects/"+id.String()+"/timeline", nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "project timeline not found")
	})
}

func (suite *ProjectHandlerTestSuite) TestCreateTimeline() {
	projectID := uuid.New()
	body := service.CreateTimelineRequest{
		ProjectID: projectID,
		Phases: []service.PhaseRequest{
			{Name: "design", StartDate: "2024-01-08", EndDate: "2024-01-12"},
		},
	}

	suite.timelineService.EXPECT().
		CreateTimeline(gomock.Any()).
		DoAndReturn(func(req *service.CreateTimelineRequest) (*service.TimelineResponse, error) {
			suite.Equal(projectID, req.ProjectID)
			suite.Require().Len(req.Phases, 1)
			return &service.TimelineResponse{ProjectID: projectID, StartDate: "2024-01-08", EndDate: "2024-01-12"}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/timelines", body)

	var response service.TimelineResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal("2024-01-08", response.StartDate)
}

func (suite *ProjectHandlerTestSuite) TestCreateTimelineRejected() {
	suite.timelineService.EXPECT().
		CreateTimeline(gomock.Any()).
		Return(nil, apperrors.NewValidationError("phases", "at least one phase is required"))

	recorder := suite.http.MakeRequest(http.MethodPost, "/timelines", service.CreateTimelineRequest{ProjectID: uuid.New()})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "phases")
}

func (suite *ProjectHandlerTestSuite) TestGetPhaseReport() {
	id := uuid.New()
	suite.reportService.EXPECT().GetProjectPhaseReport(id).Return(&service.ProjectPhaseReport{
		ProjectID:  id,
		TotalHours: 130,
		Phases: []scheduling.PhaseBreakdown{
			{Name: "design", AllocatedHours: 80, TeamMembers: 2},
			{Name: "build", AllocatedHours: 50, TeamMembers: 1},
		},
	}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/projects/"+id.String()+"/phase-report", nil)

	var response struct {
		TotalHours float64                  `json:"total_hours"`
		Phases     []map[string]interface{} `json:"phases"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(130.0, response.TotalHours)
	suite.Len(response.Phases, 2)
}

func (suite *ProjectHandlerTestSuite) TestGetPhaseReportWithoutTimeline() {
	id := uuid.New()
	suite.reportService.EXPECT().GetProjectPhaseReport(id).Return(nil, apperrors.ErrTimelineNotFound)

	recorder := suite.http.MakeRequest(http.MethodGet, "/projects/"+id.String()+"/phase-report", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "project timeline not found")
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
