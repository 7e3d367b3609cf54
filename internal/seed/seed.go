// Package seed loads planning data from YAML files. Allocations are created
// through the allocation service so seeded data obeys the same conflict rules
// as the API.
package seed

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/logger"
	"resource-planner-backend/internal/service"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ProjectData describes a project in a seed file
type ProjectData struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Status      string `yaml:"status,omitempty"`
}

// MemberData describes a team member in a seed file
type MemberData struct {
	Name           string   `yaml:"name"`
	Email          string   `yaml:"email"`
	Role           string   `yaml:"role,omitempty"`
	Department     string   `yaml:"department,omitempty"`
	HourlyRate     float64  `yaml:"hourly_rate,omitempty"`
	WeeklyCapacity *float64 `yaml:"weekly_capacity,omitempty"`
	Skills         []string `yaml:"skills,omitempty"`
	IsActive       *bool    `yaml:"is_active,omitempty"`
}

// AvailabilityData is an availability override keyed by member email
type AvailabilityData struct {
	MemberEmail string  `yaml:"member_email"`
	Date        string  `yaml:"date"`
	Type        string  `yaml:"type"`
	Hours       float64 `yaml:"hours,omitempty"`
	Notes       string  `yaml:"notes,omitempty"`
}

// AllocationData allocates a member, by email, to a project, by name
type AllocationData struct {
	Project     string  `yaml:"project"`
	MemberEmail string  `yaml:"member_email"`
	StartDate   string  `yaml:"start_date"`
	EndDate     string  `yaml:"end_date"`
	Hours       float64 `yaml:"hours"`
	Role        string  `yaml:"role,omitempty"`
	Notes       string  `yaml:"notes,omitempty"`
}

// TimelineData is a project timeline keyed by project name or id
type TimelineData struct {
	Project      string                      `yaml:"project,omitempty"`
	ProjectID    string                      `yaml:"project_id,omitempty"`
	Phases       []service.PhaseRequest      `yaml:"phases"`
	Milestones   []service.MilestoneRequest  `yaml:"milestones,omitempty"`
	Dependencies []service.DependencyRequest `yaml:"dependencies,omitempty"`
}

// File is the layout of one seed file. Every section is optional.
type File struct {
	Projects     []ProjectData      `yaml:"projects,omitempty"`
	Members      []MemberData       `yaml:"members,omitempty"`
	Availability []AvailabilityData `yaml:"availability,omitempty"`
	Allocations  []AllocationData   `yaml:"allocations,omitempty"`
	Timelines    []TimelineData     `yaml:"timelines,omitempty"`
}

// Rejected is an allocation the conflict gate refused
type Rejected struct {
	Allocation AllocationData
	Conflicts  int
	Reason     string
}

// Result summarizes what Apply stored
type Result struct {
	ProjectsCreated    int
	MembersCreated     int
	AvailabilitySet    int
	AllocationsCreated int
	TimelinesStored    int
	Rejected           []Rejected
}

// LoadDir reads every .yaml and .yml file below dir, in lexical order, and
// merges them into one File.
func LoadDir(dir string) (*File, error) {
	var merged File
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		file, err := LoadFile(path)
		if err != nil {
			return err
		}
		merged.Projects = append(merged.Projects, file.Projects...)
		merged.Members = append(merged.Members, file.Members...)
		merged.Availability = append(merged.Availability, file.Availability...)
		merged.Allocations = append(merged.Allocations, file.Allocations...)
		merged.Timelines = append(merged.Timelines, file.Timelines...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &merged, nil
}

// LoadFile reads a single seed file
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &file, nil
}

// Loader applies seed data through the services
type Loader struct {
	svcs *service.Services
}

// NewLoader creates a loader over svcs
func NewLoader(svcs *service.Services) *Loader {
	return &Loader{svcs: svcs}
}

// Apply stores file in dependency order: projects, members, availability,
// allocations, timelines. Projects and members that already exist are reused
// so a seed can be applied more than once. Allocations rejected by the
// conflict gate are collected in the result; any other error stops the load.
func (l *Loader) Apply(ctx context.Context, file *File) (*Result, error) {
	log := logger.WithContext(ctx).WithField("operation", "seed")
	result := &Result{}

	projects := make(map[string]uuid.UUID, len(file.Projects))
	for _, p := range file.Projects {
		id, created, err := l.ensureProject(p)
		if err != nil {
			return result, fmt.Errorf("project %q: %w", p.Name, err)
		}
		projects[p.Name] = id
		if created {
			result.ProjectsCreated++
		}
	}

	members := make(map[string]uuid.UUID, len(file.Members))
	for _, m := range file.Members {
		id, created, err := l.ensureMember(m)
		if err != nil {
			return result, fmt.Errorf("member %q: %w", m.Email, err)
		}
		members[strings.ToLower(m.Email)] = id
		if created {
			result.MembersCreated++
		}
	}

	for _, a := range file.Availability {
		memberID, err := l.memberID(members, a.MemberEmail)
		if err != nil {
			return result, fmt.Errorf("availability for %q: %w", a.MemberEmail, err)
		}
		_, err = l.svcs.Members.SetAvailability(ctx, memberID, &service.SetAvailabilityRequest{
			Date:  a.Date,
			Type:  models.AvailabilityType(a.Type),
			Hours: a.Hours,
			Notes: a.Notes,
		})
		if err != nil {
			return result, fmt.Errorf("availability for %q on %s: %w", a.MemberEmail, a.Date, err)
		}
		result.AvailabilitySet++
	}

	for _, a := range file.Allocations {
		projectID, err := l.projectID(projects, a.Project)
		if err != nil {
			return result, fmt.Errorf("allocation of %q to %q: %w", a.MemberEmail, a.Project, err)
		}
		memberID, err := l.memberID(members, a.MemberEmail)
		if err != nil {
			return result, fmt.Errorf("allocation of %q to %q: %w", a.MemberEmail, a.Project, err)
		}

		_, err = l.svcs.Allocations.CreateAllocation(ctx, &service.CreateAllocationRequest{
			ProjectID:    projectID,
			TeamMemberID: memberID,
			StartDate:    a.StartDate,
			EndDate:      a.EndDate,
			Hours:        a.Hours,
			Role:         a.Role,
			Notes:        a.Notes,
		})
		if conflictErr, ok := apperrors.AsConflict(err); ok {
			log.WithFields(map[string]interface{}{
				"project":   a.Project,
				"member":    a.MemberEmail,
				"conflicts": len(conflictErr.Conflicts),
			}).Warn("Seed allocation rejected")
			result.Rejected = append(result.Rejected, Rejected{
				Allocation: a,
				Conflicts:  len(conflictErr.Conflicts),
				Reason:     conflictErr.Error(),
			})
			continue
		}
		if err != nil {
			return result, fmt.Errorf("allocation of %q to %q: %w", a.MemberEmail, a.Project, err)
		}
		result.AllocationsCreated++
	}

	for _, t := range file.Timelines {
		req, err := l.TimelineRequest(&t, projects)
		if err != nil {
			return result, err
		}
		if _, err := l.svcs.Timelines.CreateTimeline(req); err != nil {
			return result, fmt.Errorf("timeline for %q: %w", timelineLabel(&t), err)
		}
		result.TimelinesStored++
	}

	log.WithFields(map[string]interface{}{
		"projects":    result.ProjectsCreated,
		"members":     result.MembersCreated,
		"allocations": result.AllocationsCreated,
		"rejected":    len(result.Rejected),
		"timelines":   result.TimelinesStored,
	}).Info("Seed applied")
	return result, nil
}

// TimelineRequest resolves the project of t and builds the timeline request.
// known maps project names created in the same load; names not in it are
// looked up.
func (l *Loader) TimelineRequest(t *TimelineData, known map[string]uuid.UUID) (*service.CreateTimelineRequest, error) {
	var projectID uuid.UUID
	switch {
	case t.ProjectID != "":
		id, err := uuid.Parse(t.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("timeline project_id %q: %w", t.ProjectID, err)
		}
		projectID = id
	case t.Project != "":
		id, err := l.projectID(known, t.Project)
		if err != nil {
			return nil, fmt.Errorf("timeline for %q: %w", t.Project, err)
		}
		projectID = id
	default:
		return nil, apperrors.NewValidationError("project", "timeline needs project or project_id")
	}

	return &service.CreateTimelineRequest{
		ProjectID:    projectID,
		Phases:       t.Phases,
		Milestones:   t.Milestones,
		Dependencies: t.Dependencies,
	}, nil
}

func (l *Loader) ensureProject(p ProjectData) (uuid.UUID, bool, error) {
	existing, err := l.svcs.Projects.GetProjectByName(p.Name)
	if err == nil {
		return existing.ID, false, nil
	}
	if !apperrors.IsNotFound(err) {
		return uuid.Nil, false, err
	}

	created, err := l.svcs.Projects.CreateProject(&service.CreateProjectRequest{
		Name:        p.Name,
		Title:       p.Title,
		Description: p.Description,
		Status:      models.ProjectStatus(p.Status),
	})
	if err != nil {
		return uuid.Nil, false, err
	}
	return created.ID, true, nil
}

func (l *Loader) ensureMember(m MemberData) (uuid.UUID, bool, error) {
	existing, err := l.svcs.Members.GetMemberByEmail(m.Email)
	if err == nil {
		return existing.ID, false, nil
	}
	if !apperrors.IsNotFound(err) {
		return uuid.Nil, false, err
	}

	created, err := l.svcs.Members.CreateMember(&service.CreateTeamMemberRequest{
		Name:           m.Name,
		Email:          m.Email,
		Role:           m.Role,
		Department:     m.Department,
		HourlyRate:     m.HourlyRate,
		WeeklyCapacity: m.WeeklyCapacity,
		Skills:         m.Skills,
		IsActive:       m.IsActive,
	})
	if err != nil {
		return uuid.Nil, false, err
	}
	return created.ID, true, nil
}

func (l *Loader) projectID(known map[string]uuid.UUID, name string) (uuid.UUID, error) {
	if id, ok := known[name]; ok {
		return id, nil
	}
	project, err := l.svcs.Projects.GetProjectByName(name)
	if err != nil {
		return uuid.Nil, err
	}
	return project.ID, nil
}

func (l *Loader) memberID(known map[string]uuid.UUID, email string) (uuid.UUID, error) {
	if id, ok := known[strings.ToLower(email)]; ok {
		return id, nil
	}
	member, err := l.svcs.Members.GetMemberByEmail(email)
	if err != nil {
		return uuid.Nil, err
	}
	return member.ID, nil
}

func timelineLabel(t *TimelineData) string {
	if t.Project != "" {
		return t.Project
	}
	return t.ProjectID
}
