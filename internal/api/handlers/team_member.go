package handlers

import (
	"net/http"
	"strconv"

	"resource-planner-backend/internal/database/models"
	"resource-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamMemberHandler handles HTTP requests for team members and their availability
type TeamMemberHandler struct {
	memberService service.TeamMemberServiceInterface
}

// NewTeamMemberHandler creates a new team member handler
func NewTeamMemberHandler(memberService service.TeamMemberServiceInterface) *TeamMemberHandler {
	return &TeamMemberHandler{
		memberService: memberService,
	}
}

// CreateMember handles POST /members
// @Summary Create a new team member
// @Description Create a team member with a weekly capacity
// @Tags members
// @Accept json
// @Produce json
// @Param member body service.CreateTeamMemberRequest true "Team member data"
// @Success 201 {object} service.TeamMemberResponse "Successfully created team member"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Team member already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /members [post]
func (h *TeamMemberHandler) CreateMember(c *gin.Context) {
	var req service.CreateTeamMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.memberService.CreateMember(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// ListMembers handles GET /members
// @Summary List team members
// @Description List team members ordered by name
// @Tags members
// @Produce json
// @Param active query bool false "Only active members" default(false)
// @Success 200 {array} service.TeamMemberResponse "Successfully retrieved team members"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /members [get]
func (h *TeamMemberHandler) ListMembers(c *gin.Context) {
	activeOnly := false
	if raw := c.Query("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "active must be true or false"})
			return
		}
		activeOnly = v
	}

	members, err := h.memberService.ListMembers(activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// FindAvailableMembers handles GET /members/available
// @Summary Find available team members
// @Description List active members, optionally holding a skill, who could take on the given hours over the window without a conflict
// @Tags members
// @Produce json
// @Param skill query string false "Required skill"
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Param hours query number false "Hours to place over the window" default(0)
// @Success 200 {array} service.TeamMemberResponse "Members with room for the hours"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /members/available [get]
func (h *TeamMemberHandler) FindAvailableMembers(c *gin.Context) {
	req := service.FindAvailableMembersRequest{
		Skill:     c.Query("skill"),
		StartDate: c.Query("from"),
		EndDate:   c.Query("to"),
	}
	if raw := c.Query("hours"); raw != "" {
		hours, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "hours must be a number"})
			return
		}
		req.Hours = hours
	}

	members, err := h.memberService.FindAvailableMembers(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetMember handles GET /members/:id
// @Summary Get team member by ID
// @Description Get a team member including the current workload
// @Tags members
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Success 200 {object} service.TeamMemberResponse "Successfully retrieved team member"
// @Failure 400 {object} ErrorResponse "Invalid team member ID"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /members/{id} [get]
func (h *TeamMemberHandler) GetMember(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "team member")
	if !ok {
		return
	}

	member, err := h.memberService.GetMember(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// UpdateMember handles PUT /members/:id
// @Summary Update team member
// @Description Update the provided fields of a team member
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Param member body service.UpdateTeamMemberRequest true "Fields to update"
// @Success 200 {object} service.TeamMemberResponse "Successfully updated team member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /members/{id} [put]
func (h *TeamMemberHandler) UpdateMember(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "team member")
	if !ok {
		return
	}

	var req service.UpdateTeamMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.memberService.UpdateMember(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeactivateMember handles DELETE /members/:id
// @Summary Deactivate team member
// @Description Mark a team member inactive. Existing allocations are kept.
// @Tags members
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Success 200 {object} service.TeamMemberResponse "Team member deactivated"
// @Failure 400 {object} ErrorResponse "Invalid team member ID"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /members/{id} [delete]
func (h *TeamMemberHandler) DeactivateMember(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "team member")
	if !ok {
		return
	}

	member, err := h.memberService.DeactivateMember(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// ListAvailability handles GET /members/:id/availability
// @Summary List availability overrides
// @Description List a member's availability overrides in a date window
// @Tags availability
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Success 200 {array} service.AvailabilityResponse "Availability overrides"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /members/{id}/availability [get]
func (h *TeamMemberHandler) ListAvailability(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "team member")
	if !ok {
		return
	}

	entries, err := h.memberService.ListAvailability(id, c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// SetAvailability handles PUT /members/:id/availability
// @Summary Set availability override
// @Description Store an availability override for one date, replacing an override of the same type
// @Tags availability
// @Accept json
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Param availability body service.SetAvailabilityRequest true "Override"
// @Success 200 {object} service.AvailabilityResponse "Stored override"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /members/{id}/availability [put]
func (h *TeamMemberHandler) SetAvailability(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "team member")
	if !ok {
		return
	}

	var req service.SetAvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.memberService.SetAvailability(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// RemoveAvailability handles DELETE /members/:id/availability
// @Summary Remove availability override
// @Description Delete the override of the given type on a date
// @Tags availability
// @Param id path string true "Team member ID (UUID)"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param type query string true "Override type" Enums(available, busy, vacation, sick)
// @Success 204 "Override removed"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Override not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /members/{id}/availability [delete]
func (h *TeamMemberHandler) RemoveAvailability(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "team member")
	if !ok {
		return
	}

	err := h.memberService.RemoveAvailability(c.Request.Context(), id, c.Query("date"), models.AvailabilityType(c.Query("type")))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
