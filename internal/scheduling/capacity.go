package scheduling

import (
	"encoding/json"
	"math"
	"sort"
	"time"

	"resource-planner-backend/internal/calendar"
	"resource-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

// ProjectBreakdown is the share of a member's capacity taken by one project.
// Percentage is relative to capacity, so the breakdown percentages of a
// report add up to its utilization.
type ProjectBreakdown struct {
	ProjectID   uuid.UUID `json:"project_id"`
	ProjectName string    `json:"project_name"`
	Hours       float64   `json:"hours"`
	Percentage  float64   `json:"percentage"`
	Cost        float64   `json:"cost"`
}

// CapacityReport summarizes one member's allocation over a reporting window.
type CapacityReport struct {
	TeamMemberID   uuid.UUID          `json:"team_member_id"`
	Name           string             `json:"name"`
	Role           string             `json:"role"`
	Department     string             `json:"department"`
	CapacityHours  float64            `json:"capacity_hours"`
	AllocatedHours float64            `json:"allocated_hours"`
	AvailableHours float64            `json:"available_hours"`
	Utilization    float64            `json:"utilization"`
	Cost           float64            `json:"cost"`
	Projects       []ProjectBreakdown `json:"projects"`
}

// ProratedHours is the part of an allocation's hours that falls on working
// days inside window.
func ProratedHours(a *models.ResourceAllocation, window calendar.Range) float64 {
	w := AllocationWindow(a)
	overlap := calendar.OverlapWorkingDays(w, window)
	if overlap == 0 {
		return 0
	}
	return DailyShare(a.Hours, w) * float64(overlap)
}

// CapacityHours is a member's default capacity over window.
func CapacityHours(member *models.TeamMember, window calendar.Range) float64 {
	return member.DailyCapacity() * float64(window.WorkingDays())
}

func utilization(allocated, capacity float64) float64 {
	if capacity <= 0 {
		return 0
	}
	return allocated / capacity * 100
}

// BuildCapacityReport aggregates the member's allocations over window.
// Stored data is reported as is: utilization is not capped and may exceed
// 100 when allocations bypassed the conflict gate.
func BuildCapacityReport(member *models.TeamMember, allocations []models.ResourceAllocation, window calendar.Range, projectNames map[uuid.UUID]string) CapacityReport {
	report := CapacityReport{
		TeamMemberID:  member.ID,
		Name:          member.Name,
		Role:          member.Role,
		Department:    member.Department,
		CapacityHours: CapacityHours(member, window),
		Projects:      []ProjectBreakdown{},
	}

	byProject := make(map[uuid.UUID]float64)
	for i := range allocations {
		a := &allocations[i]
		if a.TeamMemberID != member.ID {
			continue
		}
		hours := ProratedHours(a, window)
		if hours == 0 {
			continue
		}
		byProject[a.ProjectID] += hours
		report.AllocatedHours += hours
	}

	for projectID, hours := range byProject {
		report.Projects = append(report.Projects, ProjectBreakdown{
			ProjectID:   projectID,
			ProjectName: projectNames[projectID],
			Hours:       hours,
			Percentage:  utilization(hours, report.CapacityHours),
			Cost:        hours * member.HourlyRate,
		})
	}
	sort.Slice(report.Projects, func(i, j int) bool {
		if report.Projects[i].Hours != report.Projects[j].Hours {
			return report.Projects[i].Hours > report.Projects[j].Hours
		}
		return report.Projects[i].ProjectName < report.Projects[j].ProjectName
	})

	report.AvailableHours = math.Max(0, report.CapacityHours-report.AllocatedHours)
	report.Utilization = utilization(report.AllocatedHours, report.CapacityHours)
	report.Cost = report.AllocatedHours * member.HourlyRate
	return report
}

// SortByUtilization orders reports by utilization, highest first.
func SortByUtilization(reports []CapacityReport) {
	sort.SliceStable(reports, func(i, j int) bool {
		if reports[i].Utilization != reports[j].Utilization {
			return reports[i].Utilization > reports[j].Utilization
		}
		return reports[i].Name < reports[j].Name
	})
}

// PhaseBreakdown is the project effort planned inside one timeline phase.
type PhaseBreakdown struct {
	PhaseID        uuid.UUID `json:"phase_id"`
	Name           string    `json:"name"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	WorkingDays    int       `json:"working_days"`
	AllocatedHours float64   `json:"allocated_hours"`
	TeamMembers    int       `json:"team_members"`
}

// MarshalJSON renders the phase window as calendar dates.
func (p PhaseBreakdown) MarshalJSON() ([]byte, error) {
	type alias PhaseBreakdown
	return json.Marshal(struct {
		alias
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}{alias: alias(p), StartDate: calendar.FormatDate(p.StartDate), EndDate: calendar.FormatDate(p.EndDate)})
}

// BuildPhaseBreakdown prorates a project's allocations into each phase of its
// timeline. Phases are returned in position order.
func BuildPhaseBreakdown(phases []models.TimelinePhase, allocations []models.ResourceAllocation) []PhaseBreakdown {
	ordered := make([]models.TimelinePhase, len(phases))
	copy(ordered, phases)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Position < ordered[j].Position })

	out := make([]PhaseBreakdown, 0, len(ordered))
	for _, phase := range ordered {
		window := calendar.NewRange(phase.StartDate, phase.EndDate)
		members := make(map[uuid.UUID]struct{})
		var hours float64
		for i := range allocations {
			h := ProratedHours(&allocations[i], window)
			if h == 0 {
				continue
			}
			hours += h
			members[allocations[i].TeamMemberID] = struct{}{}
		}
		out = append(out, PhaseBreakdown{
			PhaseID:        phase.ID,
			Name:           phase.Name,
			StartDate:      window.Start,
			EndDate:        window.End,
			WorkingDays:    window.WorkingDays(),
			AllocatedHours: hours,
			TeamMembers:    len(members),
		})
	}
	return out
}
