// Package scheduling implements the allocation engine: per-day capacity
// resolution, overallocation detection and the capacity/workload reports.
// Everything here is pure; callers load members, availability overrides and
// allocations from the store and pass them in.
package scheduling

import (
	"encoding/json"
	"errors"
	"math"
	"sort"
	"time"

	"resource-planner-backend/internal/calendar"
	"resource-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

// HoursEpsilon absorbs floating point drift when comparing allocated hours
// against available hours. A day is overallocated only when the total
// exceeds availability by more than this amount.
const HoursEpsilon = 1e-6

var (
	ErrInvertedWindow = errors.New("end date is before start date")
	ErrEmptyWindow    = errors.New("window contains no working days")
	ErrNegativeHours  = errors.New("hours must not be negative")
)

// Proposal is a candidate allocation checked against a member's existing
// allocations. ExcludeID removes an existing allocation from the check so
// that an update does not collide with its own prior contribution.
type Proposal struct {
	TeamMemberID uuid.UUID
	ProjectID    uuid.UUID
	Window       calendar.Range
	Hours        float64
	ExcludeID    *uuid.UUID
}

// ProjectShare is one contribution to a day's allocated hours.
type ProjectShare struct {
	ProjectID    uuid.UUID  `json:"project_id"`
	AllocationID *uuid.UUID `json:"allocation_id,omitempty"`
	Hours        float64    `json:"hours"`
	Proposed     bool       `json:"proposed,omitempty"`
}

// ResourceConflict describes one working day on which a member's allocated
// hours exceed the hours available that day.
type ResourceConflict struct {
	TeamMemberID    uuid.UUID      `json:"team_member_id"`
	TeamMemberName  string         `json:"team_member_name"`
	Date            time.Time      `json:"date"`
	AllocatedHours  float64        `json:"allocated_hours"`
	AvailableHours  float64        `json:"available_hours"`
	OverallocatedBy float64        `json:"overallocated_by"`
	Projects        []ProjectShare `json:"projects"`
}

// MarshalJSON renders Date as a calendar date.
func (c ResourceConflict) MarshalJSON() ([]byte, error) {
	type alias ResourceConflict
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{alias: alias(c), Date: calendar.FormatDate(c.Date)})
}

// DailyShare spreads hours evenly over the working days of a window.
// A window without working days has a share of zero.
func DailyShare(hours float64, window calendar.Range) float64 {
	wd := window.WorkingDays()
	if wd == 0 {
		return 0
	}
	return hours / float64(wd)
}

// AllocationWindow returns the inclusive window of an allocation.
func AllocationWindow(a *models.ResourceAllocation) calendar.Range {
	return calendar.NewRange(a.StartDate, a.EndDate)
}

// AvailabilityIndex groups overrides by calendar date.
type AvailabilityIndex map[time.Time][]models.Availability

// IndexAvailability builds an AvailabilityIndex from a flat list of overrides.
func IndexAvailability(entries []models.Availability) AvailabilityIndex {
	idx := make(AvailabilityIndex, len(entries))
	for _, e := range entries {
		d := calendar.DateOf(e.Date)
		idx[d] = append(idx[d], e)
	}
	return idx
}

// AvailableHours resolves the hours a member can work on day. Overrides are
// applied with precedence vacation/sick, then busy, then an explicit
// available override, then the member's default daily capacity.
func (idx AvailabilityIndex) AvailableHours(member *models.TeamMember, day time.Time) float64 {
	defaultHours := member.DailyCapacity()
	overrides := idx[calendar.DateOf(day)]
	if len(overrides) == 0 {
		return defaultHours
	}

	var busy, available float64
	var hasBusy, hasAvailable bool
	for _, o := range overrides {
		switch o.Type {
		case models.AvailabilityVacation, models.AvailabilitySick:
			return 0
		case models.AvailabilityBusy:
			busy += o.Hours
			hasBusy = true
		case models.AvailabilityAvailable:
			available = math.Max(available, o.Hours)
			hasAvailable = true
		}
	}

	switch {
	case hasBusy:
		return math.Max(0, defaultHours-busy)
	case hasAvailable:
		return available
	}
	return defaultHours
}

type share struct {
	projectID    uuid.UUID
	allocationID *uuid.UUID
	window       calendar.Range
	daily        float64
	proposed     bool
}

func existingShares(memberID uuid.UUID, allocations []models.ResourceAllocation, window calendar.Range, exclude *uuid.UUID) []share {
	var shares []share
	for i := range allocations {
		a := &allocations[i]
		if a.TeamMemberID != memberID {
			continue
		}
		if exclude != nil && a.ID == *exclude {
			continue
		}
		w := AllocationWindow(a)
		if !w.Overlaps(window) {
			continue
		}
		daily := DailyShare(a.Hours, w)
		if daily == 0 {
			continue
		}
		id := a.ID
		shares = append(shares, share{projectID: a.ProjectID, allocationID: &id, window: w, daily: daily})
	}
	return shares
}

// walk visits every working day of window and records the days on which the
// shares exceed the member's availability.
func walk(member *models.TeamMember, idx AvailabilityIndex, shares []share, window calendar.Range) []ResourceConflict {
	var conflicts []ResourceConflict
	window.Each(func(day time.Time) {
		if !calendar.IsWorkingDay(day) {
			return
		}

		var total float64
		var contributing []ProjectShare
		for _, s := range shares {
			if !s.window.Contains(day) {
				continue
			}
			total += s.daily
			contributing = append(contributing, ProjectShare{
				ProjectID:    s.projectID,
				AllocationID: s.allocationID,
				Hours:        s.daily,
				Proposed:     s.proposed,
			})
		}

		available := idx.AvailableHours(member, day)
		if total > available+HoursEpsilon {
			conflicts = append(conflicts, ResourceConflict{
				TeamMemberID:    member.ID,
				TeamMemberName:  member.Name,
				Date:            day,
				AllocatedHours:  total,
				AvailableHours:  available,
				OverallocatedBy: total - available,
				Projects:        contributing,
			})
		}
	})
	return conflicts
}

// ValidateWindow rejects inverted windows and windows without working days.
// Both would make the daily share undefined.
func ValidateWindow(window calendar.Range) error {
	if !window.Valid() {
		return ErrInvertedWindow
	}
	if window.WorkingDays() == 0 {
		return ErrEmptyWindow
	}
	return nil
}

// DetectConflicts reports every working day in the proposal's window on which
// the member's existing allocations plus the proposed daily share exceed the
// hours available that day. An empty result means the proposal fits.
func DetectConflicts(member *models.TeamMember, availability []models.Availability, allocations []models.ResourceAllocation, p Proposal) ([]ResourceConflict, error) {
	if err := ValidateWindow(p.Window); err != nil {
		return nil, err
	}
	if p.Hours < 0 {
		return nil, ErrNegativeHours
	}

	shares := existingShares(member.ID, allocations, p.Window, p.ExcludeID)
	if daily := DailyShare(p.Hours, p.Window); daily > 0 {
		shares = append(shares, share{
			projectID: p.ProjectID,
			window:    p.Window,
			daily:     daily,
			proposed:  true,
		})
	}

	return walk(member, IndexAvailability(availability), shares, p.Window), nil
}

// ScanConflicts lists the days in window on which the member's stored
// allocations already exceed availability.
func ScanConflicts(member *models.TeamMember, availability []models.Availability, allocations []models.ResourceAllocation, window calendar.Range) ([]ResourceConflict, error) {
	if !window.Valid() {
		return nil, ErrInvertedWindow
	}
	shares := existingShares(member.ID, allocations, window, nil)
	return walk(member, IndexAvailability(availability), shares, window), nil
}

// SortConflicts orders conflicts by date, then by member name.
func SortConflicts(conflicts []ResourceConflict) {
	sort.SliceStable(conflicts, func(i, j int) bool {
		if !conflicts[i].Date.Equal(conflicts[j].Date) {
			return conflicts[i].Date.Before(conflicts[j].Date)
		}
		return conflicts[i].TeamMemberName < conflicts[j].TeamMemberName
	})
}

// CurrentWorkload sums the daily shares of the allocations whose window
// contains day. The result is hours per day.
func CurrentWorkload(allocations []models.ResourceAllocation, day time.Time) float64 {
	var total float64
	for i := range allocations {
		w := AllocationWindow(&allocations[i])
		if w.Contains(day) {
			total += DailyShare(allocations[i].Hours, w)
		}
	}
	return total
}
