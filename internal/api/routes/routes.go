package routes

import (
	"resource-planner-backend/internal/api/handlers"
	"resource-planner-backend/internal/api/middleware"
	"resource-planner-backend/internal/config"
	"resource-planner-backend/internal/metrics"
	"resource-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Options carries the optional pieces of the router
type Options struct {
	// Metrics records request metrics; nil disables them
	Metrics *metrics.Metrics
	// Gatherer is served on /metrics when set
	Gatherer prometheus.Gatherer
	// Probes are checked by the health endpoints in addition to the database
	Probes []handlers.Probe
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, svcs *service.Services, opts Options) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, opts.Probes...)
	projectHandler := handlers.NewProjectHandler(svcs.Projects, svcs.Timelines, svcs.Reports)
	memberHandler := handlers.NewTeamMemberHandler(svcs.Members)
	allocationHandler := handlers.NewAllocationHandler(svcs.Allocations)
	reportHandler := handlers.NewReportHandler(svcs.Reports)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/api/v1")
	{
		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PATCH("/:id/status", projectHandler.UpdateProjectStatus)
			projects.GET("/:id/timeline", projectHandler.GetTimeline)
			projects.GET("/:id/phase-report", projectHandler.GetPhaseReport)
		}

		v1.POST("/timelines", projectHandler.CreateTimeline)

		members := v1.Group("/members")
		{
			members.POST("", memberHandler.CreateMember)
			members.GET("", memberHandler.ListMembers)
			members.GET("/available", memberHandler.FindAvailableMembers)
			members.GET("/:id", memberHandler.GetMember)
			members.PUT("/:id", memberHandler.UpdateMember)
			members.DELETE("/:id", memberHandler.DeactivateMember)
			members.GET("/:id/availability", memberHandler.ListAvailability)
			members.PUT("/:id/availability", memberHandler.SetAvailability)
			members.DELETE("/:id/availability", memberHandler.RemoveAvailability)
		}

		allocations := v1.Group("/allocations")
		{
			allocations.POST("", allocationHandler.CreateAllocation)
			allocations.GET("", allocationHandler.ListAllocations)
			allocations.GET("/:id", allocationHandler.GetAllocation)
			allocations.PUT("/:id", allocationHandler.UpdateAllocation)
			allocations.DELETE("/:id", allocationHandler.DeleteAllocation)
			allocations.PATCH("/:id/actual-hours", allocationHandler.LogActualHours)
		}

		conflicts := v1.Group("/conflicts")
		{
			conflicts.POST("/check", allocationHandler.CheckConflicts)
			conflicts.GET("", allocationHandler.ListConflicts)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/capacity", reportHandler.GetCapacityReport)
			reports.GET("/workload", reportHandler.GetWorkloadDistribution)
		}
	}

	return router
}
