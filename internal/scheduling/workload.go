package scheduling

import (
	"encoding/json"
	"sort"
	"time"

	"resource-planner-backend/internal/calendar"
	"resource-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

// MemberUtilization is one member's load inside a workload bucket.
type MemberUtilization struct {
	TeamMemberID   uuid.UUID `json:"team_member_id"`
	Name           string    `json:"name"`
	CapacityHours  float64   `json:"capacity_hours"`
	AllocatedHours float64   `json:"allocated_hours"`
	Utilization    float64   `json:"utilization"`
}

// WorkloadDistribution aggregates team capacity and allocation for one
// reporting bucket.
type WorkloadDistribution struct {
	Period         string              `json:"period"`
	StartDate      time.Time           `json:"start_date"`
	EndDate        time.Time           `json:"end_date"`
	CapacityHours  float64             `json:"capacity_hours"`
	AllocatedHours float64             `json:"allocated_hours"`
	Utilization    float64             `json:"utilization"`
	Members        []MemberUtilization `json:"members"`
}

// MarshalJSON renders the bucket window as calendar dates.
func (w WorkloadDistribution) MarshalJSON() ([]byte, error) {
	type alias WorkloadDistribution
	return json.Marshal(struct {
		alias
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}{alias: alias(w), StartDate: calendar.FormatDate(w.StartDate), EndDate: calendar.FormatDate(w.EndDate)})
}

// BuildWorkloadDistribution walks window in buckets of the given size and
// computes, per bucket, the same capacity and allocation figures as the
// capacity report, summed over all active members.
func BuildWorkloadDistribution(members []models.TeamMember, allocations []models.ResourceAllocation, window calendar.Range, size calendar.BucketSize) []WorkloadDistribution {
	byMember := make(map[uuid.UUID][]models.ResourceAllocation)
	for _, a := range allocations {
		byMember[a.TeamMemberID] = append(byMember[a.TeamMemberID], a)
	}

	buckets := calendar.Buckets(window, size)
	out := make([]WorkloadDistribution, 0, len(buckets))
	for _, b := range buckets {
		dist := WorkloadDistribution{
			Period:    b.Label,
			StartDate: b.Start,
			EndDate:   b.End,
			Members:   []MemberUtilization{},
		}
		for i := range members {
			m := &members[i]
			if !m.IsActive {
				continue
			}
			report := BuildCapacityReport(m, byMember[m.ID], b.Range, nil)
			dist.CapacityHours += report.CapacityHours
			dist.AllocatedHours += report.AllocatedHours
			dist.Members = append(dist.Members, MemberUtilization{
				TeamMemberID:   m.ID,
				Name:           m.Name,
				CapacityHours:  report.CapacityHours,
				AllocatedHours: report.AllocatedHours,
				Utilization:    report.Utilization,
			})
		}
		dist.Utilization = utilization(dist.AllocatedHours, dist.CapacityHours)
		sort.SliceStable(dist.Members, func(i, j int) bool {
			if dist.Members[i].Utilization != dist.Members[j].Utilization {
				return dist.Members[i].Utilization > dist.Members[j].Utilization
			}
			return dist.Members[i].Name < dist.Members[j].Name
		})
		out = append(out, dist)
	}
	return out
}
