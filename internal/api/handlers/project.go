package handlers

import (
	"net/http"
	"strconv"

	"resource-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	projectService  service.ProjectServiceInterface
	timelineService service.TimelineServiceInterface
	reportService   service.ReportServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface, timelineService service.TimelineServiceInterface, reportService service.ReportServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService:  projectService,
		timelineService: timelineService,
		reportService:   reportService,
	}
}

// CreateProject handles POST /projects
// @Summary Create a new project
// @Description Create a new project that team members can be allocated to
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} service.ProjectResponse "Successfully created project"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Project already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.CreateProject(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// ListProjects handles GET /projects
// @Summary List projects
// @Description List projects ordered by name with pagination
// @Tags projects
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ProjectListResponse "Successfully retrieved projects"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	projects, err := h.projectService.ListProjects(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject handles GET /projects/:id
// @Summary Get project by ID
// @Description Get a specific project by its UUID
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectResponse "Successfully retrieved project"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProjectStatus handles PATCH /projects/:id/status
// @Summary Update project status
// @Description Move a project to another lifecycle status
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param status body service.UpdateProjectStatusRequest true "New status"
// @Success 200 {object} service.ProjectResponse "Successfully updated project"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects/{id}/status [patch]
func (h *ProjectHandler) UpdateProjectStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}

	var req service.UpdateProjectStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.UpdateProjectStatus(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// GetTimeline handles GET /projects/:id/timeline
// @Summary Get project timeline
// @Description Get the phases, milestones and dependencies of a project
// @Tags timelines
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.TimelineResponse "Successfully retrieved timeline"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project or timeline not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects/{id}/timeline [get]
func (h *ProjectHandler) GetTimeline(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}

	timeline, err := h.timelineService.GetTimeline(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if timeline == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "project timeline not found"})
		return
	}

	c.JSON(http.StatusOK, timeline)
}

// CreateTimeline handles POST /timelines
// @Summary Create or replace a project timeline
// @Description Store a project's timeline, replacing any existing one
// @Tags timelines
// @Accept json
// @Produce json
// @Param timeline body service.CreateTimelineRequest true "Timeline data"
// @Success 201 {object} service.TimelineResponse "Successfully stored timeline"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /timelines [post]
func (h *ProjectHandler) CreateTimeline(c *gin.Context) {
	var req service.CreateTimelineRequest
	if !bindJSON(c, &req) {
		return
	}

	timeline, err := h.timelineService.CreateTimeline(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, timeline)
}

// GetPhaseReport handles GET /projects/:id/phase-report
// @Summary Project effort by phase
// @Description Prorate the project's allocations into the phases of its timeline
// @Tags reports
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectPhaseReport "Phase report"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project or timeline not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects/{id}/phase-report [get]
func (h *ProjectHandler) GetPhaseReport(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}

	report, err := h.reportService.GetProjectPhaseReport(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
