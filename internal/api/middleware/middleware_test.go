package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"resource-planner-backend/internal/api/middleware"
	"resource-planner-backend/internal/config"
	"resource-planner-backend/internal/logger"
	"resource-planner-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

// MiddlewareTestSuite defines the test suite for the HTTP middleware
type MiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *MiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
}

func (suite *MiddlewareTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *MiddlewareTestSuite) TestRequestIDGenerated() {
	var seen interface{}
	suite.router.Use(middleware.RequestID())
	suite.router.GET("/ping", func(c *gin.Context) {
		seen = c.Request.Context().Value(logger.RequestIDKey)
		c.Status(http.StatusOK)
	})

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/ping", nil))
	suite.Equal(http.StatusOK, w.Code)
	suite.NotEmpty(w.Header().Get(middleware.RequestIDHeader))
	suite.Equal(w.Header().Get(middleware.RequestIDHeader), seen)
}

func (suite *MiddlewareTestSuite) TestRequestIDPropagated() {
	suite.router.Use(middleware.RequestID())
	suite.router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	w := suite.serve(req)
	suite.Equal("req-123", w.Header().Get(middleware.RequestIDHeader))
}

func (suite *MiddlewareTestSuite) TestRecovery() {
	suite.router.Use(middleware.RequestID(), middleware.Recovery())
	suite.router.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/boom", nil))
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "internal server error")
}

func (suite *MiddlewareTestSuite) TestCORSConfiguredOrigin() {
	suite.router.Use(middleware.CORS(&config.Config{AllowedOrigins: []string{"https://planner.example.com"}}))
	suite.router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://planner.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := suite.serve(req)
	suite.Equal("https://planner.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = suite.serve(req)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *MiddlewareTestSuite) TestMetricsUsesRouteTemplate() {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	suite.router.Use(middleware.Metrics(m))
	suite.router.GET("/members/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	suite.serve(httptest.NewRequest(http.MethodGet, "/members/a", nil))
	suite.serve(httptest.NewRequest(http.MethodGet, "/members/b", nil))

	// both requests land in a single series keyed by the route template
	count, err := testutil.GatherAndCount(reg, "planner_api_http_requests_total")
	suite.Require().NoError(err)
	suite.Equal(1, count)
}

// TestMiddlewareTestSuite runs the test suite
func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}
