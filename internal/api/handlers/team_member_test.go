package handlers_test

import (
	"net/http"
	"testing"

	"resource-planner-backend/internal/api/handlers"
	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/mocks"
	"resource-planner-backend/internal/service"
	"resource-planner-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamMemberHandlerTestSuite defines the test suite for TeamMemberHandler
type TeamMemberHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamMemberServiceInterface
	http        *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamMemberHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamMemberServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest()

	handler := handlers.NewTeamMemberHandler(suite.mockService)
	router := suite.http.Router
	router.POST("/members", handler.CreateMember)
	router.GET("/members", handler.ListMembers)
	router.GET("/members/available", handler.FindAvailableMembers)
	router.GET("/members/:id", handler.GetMember)
	router.PUT("/members/:id", handler.UpdateMember)
	router.DELETE("/members/:id", handler.DeactivateMember)
	router.GET("/members/:id/availability", handler.ListAvailability)
	router.PUT("/members/:id/availability", handler.SetAvailability)
	router.DELETE("/members/:id/availability", handler.RemoveAvailability)
}

// TearDownTest cleans up after each test
func (suite *TeamMemberHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamMemberHandlerTestSuite) TestCreateMember() {
	suite.mockService.EXPECT().
		CreateMember(gomock.Any()).
		DoAndReturn(func(req *service.CreateTeamMemberRequest) (*service.TeamMemberResponse, error) {
			suite.Equal("ada@example.com", req.Email)
			suite.Nil(req.WeeklyCapacity)
			return &service.TeamMemberResponse{
				ID:             uuid.New(),
				Name:           req.Name,
				Email:          req.Email,
				WeeklyCapacity: 40,
				DailyCapacity:  8,
				IsActive:       true,
			}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/members", map[string]interface{}{
		"name":  "Ada",
		"email": "ada@example.com",
	})

	var response service.TeamMemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(8.0, response.DailyCapacity)
	suite.True(response.IsActive)
}

func (suite *TeamMemberHandlerTestSuite) TestCreateMemberDuplicateEmail() {
	suite.mockService.EXPECT().CreateMember(gomock.Any()).Return(nil, apperrors.ErrTeamMemberExists)

	recorder := suite.http.MakeRequest(http.MethodPost, "/members", map[string]interface{}{"name": "Ada", "email": "ada@example.com"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists with this email")
}

func (suite *TeamMemberHandlerTestSuite) TestListMembers() {
	testCases := []struct {
		name       string
		query      string
		activeOnly bool
	}{
		{"all members", "", false},
		{"active only", "?active=true", true},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockService.EXPECT().ListMembers(tc.activeOnly).Return([]service.TeamMemberResponse{{Name: "Ada"}}, nil)

			recorder := suite.http.MakeRequest(http.MethodGet, "/members"+tc.query, nil)

			var response []service.TeamMemberResponse
			testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
			suite.Len(response, 1)
		})
	}
}

func (suite *TeamMemberHandlerTestSuite) TestListMembersInvalidFlag() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/members?active=maybe", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "active must be true or false")
}

func (suite *TeamMemberHandlerTestSuite) TestFindAvailableMembers() {
	suite.mockService.EXPECT().
		FindAvailableMembers(&service.FindAvailableMembersRequest{
			Skill:     "go",
			StartDate: "2024-01-08",
			EndDate:   "2024-01-12",
			Hours:     16,
		}).
		Return([]service.TeamMemberResponse{{Name: "Grace", Skills: []string{"go"}}}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/members/available?skill=go&from=2024-01-08&to=2024-01-12&hours=16", nil)

	var response []service.TeamMemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Require().Len(response, 1)
	suite.Equal("Grace", response[0].Name)
}

func (suite *TeamMemberHandlerTestSuite) TestFindAvailableMembersInvalidHours() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/members/available?from=2024-01-08&to=2024-01-12&hours=lots", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "hours must be a number")
}

func (suite *TeamMemberHandlerTestSuite) TestGetMember() {
	id := uuid.New()
	suite.mockService.EXPECT().GetMember(id).Return(&service.TeamMemberResponse{ID: id, CurrentWorkload: 6}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/members/"+id.String(), nil)

	var response service.TeamMemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(6.0, response.CurrentWorkload)
}

func (suite *TeamMemberHandlerTestSuite) TestGetMemberNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().GetMember(id).Return(nil, apperrors.ErrTeamMemberNotFound)

	recorder := suite.http.MakeRequest(http.MethodGet, "/members/"+id.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team member not found")
}

func (suite *TeamMemberHandlerTestSuite) TestUpdateMember() {
	id := uuid.New()
	suite.mockService.EXPECT().
		UpdateMember(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.UpdateTeamMemberRequest) (*service.TeamMemberResponse, error) {
			suite.Require().NotNil(req.WeeklyCapacity)
			suite.Equal(32.0, *req.WeeklyCapacity)
			suite.Nil(req.Name)
			return &service.TeamMemberResponse{ID: id, WeeklyCapacity: 32, DailyCapacity: 6.4}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPut, "/members/"+id.String(), map[string]interface{}{"weekly_capacity": 32})

	var response service.TeamMemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(6.4, response.DailyCapacity)
}

func (suite *TeamMemberHandlerTestSuite) TestDeactivateMember() {
	id := uuid.New()
	suite.mockService.EXPECT().DeactivateMember(id).Return(&service.TeamMemberResponse{ID: id, IsActive: false}, nil)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/members/"+id.String(), nil)

	var response service.TeamMemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.False(response.IsActive)
}

func (suite *TeamMemberHandlerTestSuite) TestListAvailability() {
	id := uuid.New()
	suite.mockService.EXPECT().
		ListAvailability(id, "2024-01-01", "2024-01-31").
		Return([]service.AvailabilityResponse{{TeamMemberID: id, Date: "2024-01-10", Type: models.AvailabilityVacation}}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/members/"+id.String()+"/availability?from=2024-01-01&to=2024-01-31", nil)

	var response []service.AvailabilityResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Require().Len(response, 1)
	suite.Equal(models.AvailabilityVacation, response[0].Type)
}

func (suite *TeamMemberHandlerTestSuite) TestSetAvailability() {
	id := uuid.New()
	req := &service.SetAvailabilityRequest{Date: "2024-01-10", Type: models.AvailabilityBusy, Hours: 3}
	suite.mockService.EXPECT().
		SetAvailability(gomock.Any(), id, req).
		Return(&service.AvailabilityResponse{ID: uuid.New(), TeamMemberID: id, Date: "2024-01-10", Type: models.AvailabilityBusy, Hours: 3}, nil)

	recorder := suite.http.MakeRequest(http.MethodPut, "/members/"+id.String()+"/availability", req)

	var response service.AvailabilityResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(3.0, response.Hours)
}

func (suite *TeamMemberHandlerTestSuite) TestSetAvailabilityUnknownType() {
	id := uuid.New()
	suite.mockService.EXPECT().
		SetAvailability(gomock.Any(), id, gomock.Any()).
		Return(nil, apperrors.NewValidationError("type", "unknown availability type"))

	recorder := suite.http.MakeRequest(http.MethodPut, "/members/"+id.String()+"/availability", map[string]interface{}{"date": "2024-01-10", "type": "holiday"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "unknown availability type")
}

func (suite *TeamMemberHandlerTestSuite) TestRemoveAvailability() {
	id := uuid.New()

	suite.Run("removed", func() {
		suite.mockService.EXPECT().RemoveAvailability(gomock.Any(), id, "2024-01-10", models.AvailabilitySick).Return(nil)

		recorder := suite.http.MakeRequest(http.MethodDelete, "/members/"+id.String()+"/availability?date=2024-01-10&type=sick", nil)
		suite.Equal(http.StatusNoContent, recorder.Code)
	})

	suite.Run("no such override", func() {
		suite.mockService.EXPECT().RemoveAvailability(gomock.Any(), id, "2024-01-11", models.AvailabilitySick).Return(apperrors.ErrAvailabilityNotFound)

		recorder := suite.http.MakeRequest(http.MethodDelete, "/members/"+id.String()+"/availability?date=2024-01-11&type=sick", nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "availability not found")
	})
}

func TestTeamMemberHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamMemberHandlerTestSuite))
}
