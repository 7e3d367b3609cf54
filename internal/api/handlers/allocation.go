package handlers

import (
	"net/http"

	"resource-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AllocationHandler handles HTTP requests for resource allocations and conflicts
type AllocationHandler struct {
	allocationService service.AllocationServiceInterface
}

// NewAllocationHandler creates a new allocation handler
func NewAllocationHandler(allocationService service.AllocationServiceInterface) *AllocationHandler {
	return &AllocationHandler{
		allocationService: allocationService,
	}
}

// CreateAllocation handles POST /allocations
// @Summary Allocate a team member to a project
// @Description Store an allocation of hours over an inclusive date window. Rejected with 409 and the conflicting days when the member would be overallocated.
// @Tags allocations
// @Accept json
// @Produce json
// @Param allocation body service.CreateAllocationRequest true "Allocation data"
// @Success 201 {object} service.AllocationResponse "Successfully created allocation"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Project or team member not found"
// @Failure 409 {object} ConflictResponse "Member would be overallocated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /allocations [post]
func (h *AllocationHandler) CreateAllocation(c *gin.Context) {
	var req service.CreateAllocationRequest
	if !bindJSON(c, &req) {
		return
	}

	allocation, err := h.allocationService.CreateAllocation(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, allocation)
}

// ListAllocations handles GET /allocations
// @Summary List allocations
// @Description List allocations ordered by start date, optionally filtered by project, member and overlapping window
// @Tags allocations
// @Produce json
// @Param project_id query string false "Project ID (UUID)"
// @Param team_member_id query string false "Team member ID (UUID)"
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end (YYYY-MM-DD)"
// @Success 200 {array} service.AllocationResponse "Allocations"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /allocations [get]
func (h *AllocationHandler) ListAllocations(c *gin.Context) {
	filter := service.AllocationFilter{From: c.Query("from"), To: c.Query("to")}
	var ok bool
	if filter.ProjectID, ok = optionalUUIDQuery(c, "project_id"); !ok {
		return
	}
	if filter.TeamMemberID, ok = optionalUUIDQuery(c, "team_member_id"); !ok {
		return
	}

	allocations, err := h.allocationService.ListAllocations(&filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, allocations)
}

// GetAllocation handles GET /allocations/:id
// @Summary Get allocation by ID
// @Tags allocations
// @Produce json
// @Param id path string true "Allocation ID (UUID)"
// @Success 200 {object} service.AllocationResponse "Successfully retrieved allocation"
// @Failure 400 {object} ErrorResponse "Invalid allocation ID"
// @Failure 404 {object} ErrorResponse "Allocation not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /allocations/{id} [get]
func (h *AllocationHandler) GetAllocation(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "allocation")
	if !ok {
		return
	}

	allocation, err := h.allocationService.GetAllocation(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, allocation)
}

// UpdateAllocation handles PUT /allocations/:id
// @Summary Update allocation
// @Description Update the provided fields. The allocation's previous hours do not count against the new ones.
// @Tags allocations
// @Accept json
// @Produce json
// @Param id path string true "Allocation ID (UUID)"
// @Param allocation body service.UpdateAllocationRequest true "Fields to update"
// @Success 200 {object} service.AllocationResponse "Successfully updated allocation"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Allocation, project or team member not found"
// @Failure 409 {object} ConflictResponse "Member would be overallocated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /allocations/{id} [put]
func (h *AllocationHandler) UpdateAllocation(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "allocation")
	if !ok {
		return
	}

	var req service.UpdateAllocationRequest
	if !bindJSON(c, &req) {
		return
	}

	allocation, err := h.allocationService.UpdateAllocation(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, allocation)
}

// DeleteAllocation handles DELETE /allocations/:id
// @Summary Delete allocation
// @Tags allocations
// @Param id path string true "Allocation ID (UUID)"
// @Success 204 "Allocation deleted"
// @Failure 400 {object} ErrorResponse "Invalid allocation ID"
// @Failure 404 {object} ErrorResponse "Allocation not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /allocations/{id} [delete]
func (h *AllocationHandler) DeleteAllocation(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "allocation")
	if !ok {
		return
	}

	if err := h.allocationService.DeleteAllocation(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// LogActualHours handles PATCH /allocations/:id/actual-hours
// @Summary Log actual hours
// @Description Record the hours actually worked against an allocation
// @Tags allocations
// @Accept json
// @Produce json
// @Param id path string true "Allocation ID (UUID)"
// @Param actual body service.LogActualHoursRequest true "Actual hours"
// @Success 200 {object} service.AllocationResponse "Updated allocation"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Allocation not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /allocations/{id}/actual-hours [patch]
func (h *AllocationHandler) LogActualHours(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "allocation")
	if !ok {
		return
	}

	var req service.LogActualHoursRequest
	if !bindJSON(c, &req) {
		return
	}

	allocation, err := h.allocationService.LogActualHours(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, allocation)
}

// CheckConflicts handles POST /conflicts/check
// @Summary Check a proposed allocation
// @Description Run conflict detection for a proposal without storing it. An empty list means it would be accepted.
// @Tags conflicts
// @Accept json
// @Produce json
// @Param proposal body service.CheckConflictsRequest true "Proposed allocation"
// @Success 200 {object} map[string]interface{} "Conflicting days, if any"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /conflicts/check [post]
func (h *AllocationHandler) CheckConflicts(c *gin.Context) {
	var req service.CheckConflictsRequest
	if !bindJSON(c, &req) {
		return
	}

	conflicts, err := h.allocationService.CheckConflicts(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"has_conflicts": len(conflicts) > 0,
		"conflicts":     conflicts,
	})
}

// ListConflicts handles GET /conflicts
// @Summary List stored conflicts
// @Description Report days on which stored allocations exceed availability
// @Tags conflicts
// @Produce json
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Param team_member_id query string false "Limit to one team member (UUID)"
// @Success 200 {array} scheduling.ResourceConflict "Conflicting days"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /conflicts [get]
func (h *AllocationHandler) ListConflicts(c *gin.Context) {
	memberID, ok := optionalUUIDQuery(c, "team_member_id")
	if !ok {
		return
	}

	conflicts, err := h.allocationService.ListConflicts(c.Request.Context(), c.Query("from"), c.Query("to"), memberID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, conflicts)
}

func optionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return nil, false
	}
	return &id, true
}
