package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"resource-planner-backend/internal/api/handlers"
	"resource-planner-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

type HealthHandlerTestSuite struct {
	suite.Suite
}

func (suite *HealthHandlerTestSuite) router(probes ...handlers.Probe) *testutils.HTTPTestSuite {
	h := testutils.SetupHTTPTest()
	handler := handlers.NewHealthHandler(testutils.NewSQLiteDB(suite.T()), probes...)
	h.Router.GET("/health", handler.Health)
	h.Router.GET("/health/ready", handler.Ready)
	h.Router.GET("/health/live", handler.Live)
	return h
}

func (suite *HealthHandlerTestSuite) TestHealthy() {
	h := suite.router(handlers.Probe{Name: "redis", Check: func(context.Context) error { return nil }})

	var response handlers.HealthResponse
	testutils.AssertJSONResponse(suite.T(), h.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &response)
	suite.Equal("healthy", response.Status)
	suite.Equal("healthy", response.Services["database"])
	suite.Equal("healthy", response.Services["redis"])
	suite.Equal(handlers.Version, response.Version)
}

func (suite *HealthHandlerTestSuite) TestFailingProbe() {
	h := suite.router(handlers.Probe{Name: "redis", Check: func(context.Context) error { return errors.New("connection refused") }})

	var response handlers.HealthResponse
	testutils.AssertJSONResponse(suite.T(), h.MakeRequest(http.MethodGet, "/health", nil), http.StatusServiceUnavailable, &response)
	suite.Equal("unhealthy", response.Status)
	suite.Equal("error: connection refused", response.Services["redis"])

	var ready map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), h.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusServiceUnavailable, &ready)
	suite.Equal(false, ready["ready"])
}

func (suite *HealthHandlerTestSuite) TestLive() {
	h := suite.router()

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), h.MakeRequest(http.MethodGet, "/health/live", nil), http.StatusOK, &response)
	suite.Equal(true, response["alive"])
}

func TestHealthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}
