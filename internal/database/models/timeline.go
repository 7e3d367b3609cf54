package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectTimeline groups the phases, milestones and dependencies of a
// project. StartDate and EndDate are derived from the phases.
type ProjectTimeline struct {
	BaseModel
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	StartDate time.Time `json:"start_date" gorm:"type:date;not null"`
	EndDate   time.Time `json:"end_date" gorm:"type:date;not null"`

	// Relationships
	Phases       []TimelinePhase     `json:"phases" gorm:"foreignKey:TimelineID;constraint:OnDelete:CASCADE"`
	Milestones   []Milestone         `json:"milestones" gorm:"foreignKey:TimelineID;constraint:OnDelete:CASCADE"`
	Dependencies []ProjectDependency `json:"dependencies" gorm:"foreignKey:TimelineID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProjectTimeline
func (ProjectTimeline) TableName() string {
	return "project_timelines"
}

// TimelinePhase is one stage of a project timeline
type TimelinePhase struct {
	BaseModel
	TimelineID uuid.UUID   `json:"timeline_id" gorm:"type:uuid;not null;index"`
	Name       string      `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	StartDate  time.Time   `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate    time.Time   `json:"end_date" gorm:"type:date;not null" validate:"required"`
	Position   int         `json:"position" gorm:"not null;default:0"`
	Status     PhaseStatus `json:"status" gorm:"type:varchar(20);default:'planned'"`
	Progress   int         `json:"progress" gorm:"default:0" validate:"gte=0,lte=100"`
}

// TableName returns the table name for TimelinePhase
func (TimelinePhase) TableName() string {
	return "timeline_phases"
}

// Milestone marks a dated checkpoint on a timeline
type Milestone struct {
	BaseModel
	TimelineID  uuid.UUID  `json:"timeline_id" gorm:"type:uuid;not null;index"`
	Name        string     `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Date        time.Time  `json:"date" gorm:"type:date;not null" validate:"required"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// TableName returns the table name for Milestone
func (Milestone) TableName() string {
	return "milestones"
}

// ProjectDependency links two timeline items (phases or tasks) by key
type ProjectDependency struct {
	BaseModel
	TimelineID uuid.UUID      `json:"timeline_id" gorm:"type:uuid;not null;index"`
	FromKey    string         `json:"from" gorm:"not null;size:200" validate:"required"`
	ToKey      string         `json:"to" gorm:"not null;size:200" validate:"required"`
	Type       DependencyType `json:"type" gorm:"type:varchar(30);default:'finish_to_start'"`
	LagDays    int            `json:"lag_days" gorm:"default:0"`
}

// TableName returns the table name for ProjectDependency
func (ProjectDependency) TableName() string {
	return "project_dependencies"
}
