package handlers

import (
	"net/http"

	"resource-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles HTTP requests for capacity and workload reports
type ReportHandler struct {
	reportService service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GetCapacityReport handles GET /reports/capacity
// @Summary Capacity report
// @Description Per-member capacity, allocated hours and utilization over a window, most utilized first
// @Tags reports
// @Produce json
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Success 200 {array} scheduling.CapacityReport "Capacity reports"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /reports/capacity [get]
func (h *ReportHandler) GetCapacityReport(c *gin.Context) {
	reports, err := h.reportService.GetCapacityReport(c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

// GetWorkloadDistribution handles GET /reports/workload
// @Summary Workload distribution
// @Description Team capacity and allocation per week or month bucket
// @Tags reports
// @Produce json
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Param bucket query string false "Bucket size" Enums(week, month) default(week)
// @Success 200 {array} scheduling.WorkloadDistribution "Buckets"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /reports/workload [get]
func (h *ReportHandler) GetWorkloadDistribution(c *gin.Context) {
	dist, err := h.reportService.GetWorkloadDistribution(c.Query("from"), c.Query("to"), c.Query("bucket"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dist)
}
