package scheduling

import (
	"encoding/json"
	"testing"
	"time"

	"resource-planner-backend/internal/calendar"
	"resource-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := calendar.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func window(start, end string) calendar.Range {
	return calendar.NewRange(day(start), day(end))
}

func newMember(name string, weekly float64) *models.TeamMember {
	return &models.TeamMember{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Name:           name,
		Role:           "engineer",
		WeeklyCapacity: weekly,
		IsActive:       true,
	}
}

func newAllocation(member *models.TeamMember, projectID uuid.UUID, start, end string, hours float64) models.ResourceAllocation {
	return models.ResourceAllocation{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		ProjectID:    projectID,
		TeamMemberID: member.ID,
		StartDate:    day(start),
		EndDate:      day(end),
		Hours:        hours,
	}
}

func override(member *models.TeamMember, date string, typ models.AvailabilityType, hours float64) models.Availability {
	return models.Availability{TeamMemberID: member.ID, Date: day(date), Type: typ, Hours: hours}
}

func TestAvailableHours(t *testing.T) {
	m := newMember("Ada", 40)

	testCases := []struct {
		name      string
		overrides []models.Availability
		want      float64
	}{
		{"default capacity", nil, 8},
		{"vacation", []models.Availability{override(m, "2024-01-10", models.AvailabilityVacation, 8)}, 0},
		{"sick", []models.Availability{override(m, "2024-01-10", models.AvailabilitySick, 0)}, 0},
		{"busy subtracts from default", []models.Availability{override(m, "2024-01-10", models.AvailabilityBusy, 3)}, 5},
		{"busy floors at zero", []models.Availability{override(m, "2024-01-10", models.AvailabilityBusy, 12)}, 0},
		{"available replaces default", []models.Availability{override(m, "2024-01-10", models.AvailabilityAvailable, 4)}, 4},
		{"vacation wins over busy", []models.Availability{
			override(m, "2024-01-10", models.AvailabilityBusy, 2),
			override(m, "2024-01-10", models.AvailabilityVacation, 8),
		}, 0},
		{"busy wins over available", []models.Availability{
			override(m, "2024-01-10", models.AvailabilityAvailable, 10),
			override(m, "2024-01-10", models.AvailabilityBusy, 2),
		}, 6},
		{"override on another date is ignored", []models.Availability{override(m, "2024-01-11", models.AvailabilityVacation, 8)}, 8},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			idx := IndexAvailability(tc.overrides)
			assert.InDelta(t, tc.want, idx.AvailableHours(m, day("2024-01-10")), HoursEpsilon)
		})
	}
}

func TestDetectConflictsSaturatedWeek(t *testing.T) {
	m := newMember("Ada", 40)
	projectA, projectB := uuid.New(), uuid.New()
	existing := []models.ResourceAllocation{newAllocation(m, projectA, "2024-01-08", "2024-01-12", 40)}

	conflicts, err := DetectConflicts(m, nil, existing, Proposal{
		TeamMemberID: m.ID,
		ProjectID:    projectB,
		Window:       window("2024-01-10", "2024-01-16"),
		Hours:        1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, conflicts)

	overlap := window("2024-01-10", "2024-01-12")
	for _, c := range conflicts {
		assert.True(t, overlap.Contains(c.Date), "conflict on %s outside the overlap", calendar.FormatDate(c.Date))
		assert.InDelta(t, 8, c.AvailableHours, HoursEpsilon)
		assert.Greater(t, c.OverallocatedBy, 0.0)
		require.Len(t, c.Projects, 2)
		assert.Equal(t, projectA, c.Projects[0].ProjectID)
		assert.False(t, c.Projects[0].Proposed)
		assert.Equal(t, projectB, c.Projects[1].ProjectID)
		assert.True(t, c.Projects[1].Proposed)
	}
	assert.Len(t, conflicts, 3)
	assert.Equal(t, day("2024-01-10"), conflicts[0].Date)
}

func TestDetectConflictsExactSaturationIsAccepted(t *testing.T) {
	m := newMember("Ada", 40)
	conflicts, err := DetectConflicts(m, nil, nil, Proposal{
		TeamMemberID: m.ID,
		ProjectID:    uuid.New(),
		Window:       window("2024-01-08", "2024-01-12"),
		Hours:        40,
	})
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestDetectConflictsFloatingPointSaturation(t *testing.T) {
	m := newMember("Ada", 40)
	project := uuid.New()
	// three allocations of 40/3 hours over the same week add up to exactly 8h a day
	var existing []models.ResourceAllocation
	for i := 0; i < 2; i++ {
		existing = append(existing, newAllocation(m, project, "2024-01-08", "2024-01-12", 40.0/3))
	}
	conflicts, err := DetectConflicts(m, nil, existing, Proposal{
		TeamMemberID: m.ID,
		ProjectID:    project,
		Window:       window("2024-01-08", "2024-01-12"),
		Hours:        40.0 / 3,
	})
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestDetectConflictsVacationDay(t *testing.T) {
	m := newMember("Ada", 40)
	availability := []models.Availability{override(m, "2024-01-10", models.AvailabilityVacation, 8)}

	conflicts, err := DetectConflicts(m, availability, nil, Proposal{
		TeamMemberID: m.ID,
		ProjectID:    uuid.New(),
		Window:       window("2024-01-08", "2024-01-12"),
		Hours:        5,
	})
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, day("2024-01-10"), conflicts[0].Date)
	assert.Equal(t, 0.0, conflicts[0].AvailableHours)
	assert.InDelta(t, 1, conflicts[0].AllocatedHours, HoursEpsilon)
}

func TestDetectConflictsExcludesOwnAllocation(t *testing.T) {
	m := newMember("Ada", 40)
	project := uuid.New()
	own := newAllocation(m, project, "2024-01-08", "2024-01-12", 40)

	conflicts, err := DetectConflicts(m, nil, []models.ResourceAllocation{own}, Proposal{
		TeamMemberID: m.ID,
		ProjectID:    project,
		Window:       window("2024-01-08", "2024-01-12"),
		Hours:        40,
		ExcludeID:    &own.ID,
	})
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestDetectConflictsIgnoresOtherMembersAndWeekends(t *testing.T) {
	m := newMember("Ada", 40)
	other := newMember("Grace", 40)
	project := uuid.New()
	existing := []models.ResourceAllocation{
		newAllocation(other, project, "2024-01-08", "2024-01-12", 40),
		// 16h over a window with two working days and a weekend: 8h/day
		newAllocation(m, project, "2024-01-12", "2024-01-15", 16),
	}

	conflicts, err := DetectConflicts(m, nil, existing, Proposal{
		TeamMemberID: m.ID,
		ProjectID:    project,
		Window:       window("2024-01-13", "2024-01-14"),
		Hours:        0,
	})
	assert.ErrorIs(t, err, ErrEmptyWindow)
	assert.Nil(t, conflicts)

	conflicts, err = DetectConflicts(m, nil, existing, Proposal{
		TeamMemberID: m.ID,
		ProjectID:    project,
		Window:       window("2024-01-08", "2024-01-11"),
		Hours:        32,
	})
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestDetectConflictsRejectsBadWindows(t *testing.T) {
	m := newMember("Ada", 40)

	_, err := DetectConflicts(m, nil, nil, Proposal{TeamMemberID: m.ID, Window: window("2024-01-12", "2024-01-08"), Hours: 8})
	assert.ErrorIs(t, err, ErrInvertedWindow)

	_, err = DetectConflicts(m, nil, nil, Proposal{TeamMemberID: m.ID, Window: window("2024-01-13", "2024-01-14"), Hours: 8})
	assert.ErrorIs(t, err, ErrEmptyWindow)

	_, err = DetectConflicts(m, nil, nil, Proposal{TeamMemberID: m.ID, Window: window("2024-01-08", "2024-01-12"), Hours: -1})
	assert.ErrorIs(t, err, ErrNegativeHours)
}

func TestScanConflicts(t *testing.T) {
	m := newMember("Ada", 40)
	project := uuid.New()
	existing := []models.ResourceAllocation{
		newAllocation(m, project, "2024-01-08", "2024-01-12", 40),
		newAllocation(m, project, "2024-01-11", "2024-01-11", 2),
	}

	conflicts, err := ScanConflicts(m, nil, existing, window("2024-01-01", "2024-01-31"))
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, day("2024-01-11"), conflicts[0].Date)
	assert.InDelta(t, 2, conflicts[0].OverallocatedBy, HoursEpsilon)

	_, err = ScanConflicts(m, nil, existing, window("2024-01-31", "2024-01-01"))
	assert.ErrorIs(t, err, ErrInvertedWindow)
}

func TestSortConflicts(t *testing.T) {
	conflicts := []ResourceConflict{
		{TeamMemberName: "Grace", Date: day("2024-01-10")},
		{TeamMemberName: "Ada", Date: day("2024-01-10")},
		{TeamMemberName: "Zed", Date: day("2024-01-09")},
	}
	SortConflicts(conflicts)
	assert.Equal(t, "Zed", conflicts[0].TeamMemberName)
	assert.Equal(t, "Ada", conflicts[1].TeamMemberName)
	assert.Equal(t, "Grace", conflicts[2].TeamMemberName)
}

func TestCurrentWorkload(t *testing.T) {
	m := newMember("Ada", 40)
	project := uuid.New()
	allocations := []models.ResourceAllocation{
		newAllocation(m, project, "2024-01-08", "2024-01-12", 20),
		newAllocation(m, project, "2024-01-10", "2024-01-19", 24),
		newAllocation(m, project, "2024-02-01", "2024-02-02", 16),
	}

	assert.InDelta(t, 4, CurrentWorkload(allocations, day("2024-01-08")), HoursEpsilon)
	assert.InDelta(t, 7, CurrentWorkload(allocations, day("2024-01-10")), HoursEpsilon)
	assert.InDelta(t, 0, CurrentWorkload(allocations, day("2024-01-25")), HoursEpsilon)
}

func TestResourceConflictJSONUsesCalendarDate(t *testing.T) {
	c := ResourceConflict{TeamMemberID: uuid.New(), Date: day("2024-01-10"), AllocatedHours: 9, AvailableHours: 8, OverallocatedBy: 1}
	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "2024-01-10", decoded["date"])
	assert.Equal(t, 1.0, decoded["overallocated_by"])
}
