package models

// ProjectStatus represents the status of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// AvailabilityType tags a per-date capacity override
type AvailabilityType string

const (
	AvailabilityAvailable AvailabilityType = "available"
	AvailabilityBusy      AvailabilityType = "busy"
	AvailabilityVacation  AvailabilityType = "vacation"
	AvailabilitySick      AvailabilityType = "sick"
)

// PhaseStatus represents the progress state of a timeline phase
type PhaseStatus string

const (
	PhaseStatusPlanned    PhaseStatus = "planned"
	PhaseStatusInProgress PhaseStatus = "in_progress"
	PhaseStatusCompleted  PhaseStatus = "completed"
)

// DependencyType describes how two timeline items are linked
type DependencyType string

const (
	DependencyFinishToStart  DependencyType = "finish_to_start"
	DependencyStartToStart   DependencyType = "start_to_start"
	DependencyFinishToFinish DependencyType = "finish_to_finish"
	DependencyStartToFinish  DependencyType = "start_to_finish"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusOnHold, ProjectStatusCompleted, ProjectStatusArchived:
		return true
	}
	return false
}

// IsValid checks if the AvailabilityType is valid
func (a AvailabilityType) IsValid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityVacation, AvailabilitySick:
		return true
	}
	return false
}

// IsValid checks if the PhaseStatus is valid
func (s PhaseStatus) IsValid() bool {
	switch s {
	case PhaseStatusPlanned, PhaseStatusInProgress, PhaseStatusCompleted:
		return true
	}
	return false
}

// IsValid checks if the DependencyType is valid
func (d DependencyType) IsValid() bool {
	switch d {
	case DependencyFinishToStart, DependencyStartToStart, DependencyFinishToFinish, DependencyStartToFinish:
		return true
	}
	return false
}
