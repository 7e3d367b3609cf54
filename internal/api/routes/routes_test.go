package routes_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "resource-planner-backend/docs"
	"resource-planner-backend/internal/api/routes"
	"resource-planner-backend/internal/config"
	"resource-planner-backend/internal/locking"
	"resource-planner-backend/internal/metrics"
	"resource-planner-backend/internal/service"
	"resource-planner-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

// RoutesTestSuite drives the assembled router against an in-memory database
type RoutesTestSuite struct {
	suite.Suite
	http *testutils.HTTPTestSuite
}

func (suite *RoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	db := testutils.NewSQLiteDB(suite.T())
	cfg := &config.Config{Environment: "test", AllowedOrigins: []string{"*"}}
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	svcs := service.NewServices(db, locking.NewKeyedMutex(), m, 40)
	suite.http = &testutils.HTTPTestSuite{
		Router: routes.SetupRoutes(db, cfg, svcs, routes.Options{Metrics: m, Gatherer: reg}),
	}
}

func (suite *RoutesTestSuite) create(path string, body interface{}) string {
	recorder := suite.http.MakeRequest(http.MethodPost, path, body)
	var created struct {
		ID string `json:"id"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &created)
	suite.Require().NotEmpty(created.ID)
	return created.ID
}

func (suite *RoutesTestSuite) TestHealthEndpoints() {
	for _, path := range []string{"/health", "/health/ready", "/health/live"} {
		recorder := suite.http.MakeRequest(http.MethodGet, path, nil)
		suite.Equal(http.StatusOK, recorder.Code, path)
	}
}

func (suite *RoutesTestSuite) TestAllocationLifecycle() {
	projectID := suite.create("/api/v1/projects", map[string]interface{}{"name": "atlas", "title": "Atlas"})
	otherProjectID := suite.create("/api/v1/projects", map[string]interface{}{"name": "borealis", "title": "Borealis"})
	memberID := suite.create("/api/v1/members", map[string]interface{}{"name": "Ada", "email": "ada@example.com"})

	allocationID := suite.create("/api/v1/allocations", map[string]interface{}{
		"project_id":     projectID,
		"team_member_id": memberID,
		"start_date":     "2024-01-08",
		"end_date":       "2024-01-12",
		"hours":          40,
	})

	// the week is saturated, one more hour overlapping it is rejected
	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/allocations", map[string]interface{}{
		"project_id":     otherProjectID,
		"team_member_id": memberID,
		"start_date":     "2024-01-10",
		"end_date":       "2024-01-16",
		"hours":          1,
	})
	conflicts := testutils.AssertConflictResponse(suite.T(), recorder)
	suite.Len(conflicts, 3)

	var listed []map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/api/v1/allocations?team_member_id="+memberID, nil), http.StatusOK, &listed)
	suite.Len(listed, 1)

	var capacity []map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/api/v1/reports/capacity?from=2024-01-08&to=2024-01-12", nil), http.StatusOK, &capacity)
	suite.Require().Len(capacity, 1)
	suite.Equal(100.0, capacity[0]["utilization"])

	recorder = suite.http.MakeRequest(http.MethodDelete, "/api/v1/allocations/"+allocationID, nil)
	suite.Equal(http.StatusNoContent, recorder.Code)

	suite.create("/api/v1/allocations", map[string]interface{}{
		"project_id":     otherProjectID,
		"team_member_id": memberID,
		"start_date":     "2024-01-10",
		"end_date":       "2024-01-16",
		"hours":          1,
	})
}

func (suite *RoutesTestSuite) TestUnknownRoute() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/nothing-here", nil)
	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *RoutesTestSuite) TestMetricsEndpoint() {
	suite.http.MakeRequest(http.MethodGet, "/health/live", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	recorder := httptest.NewRecorder()
	suite.http.Router.ServeHTTP(recorder, req)

	suite.Equal(http.StatusOK, recorder.Code)
	body, err := io.ReadAll(recorder.Body)
	suite.Require().NoError(err)
	suite.Contains(string(body), `planner_api_http_requests_total{method="GET",route="/health/live",status="200"} 1`)
}

func (suite *RoutesTestSuite) TestSwaggerDocument() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/swagger/doc.json", nil)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `"title": "Resource Planner API"`)
	suite.Contains(recorder.Body.String(), `"/allocations/{id}/actual-hours"`)

	recorder = suite.http.MakeRequest(http.MethodGet, "/swagger/index.html", nil)
	suite.Equal(http.StatusOK, recorder.Code)
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
