package models

import (
	"time"

	"github.com/google/uuid"
)

// ResourceAllocation commits a team member's hours to a project over an
// inclusive date window. Hours are spread evenly across the window's working
// days.
type ResourceAllocation struct {
	BaseModel
	ProjectID    uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	TeamMemberID uuid.UUID `json:"team_member_id" gorm:"type:uuid;not null;index:idx_allocations_member_window" validate:"required"`
	StartDate    time.Time `json:"start_date" gorm:"type:date;not null;index:idx_allocations_member_window" validate:"required"`
	EndDate      time.Time `json:"end_date" gorm:"type:date;not null;index:idx_allocations_member_window" validate:"required"`
	Hours        float64   `json:"hours" gorm:"not null" validate:"gt=0"`
	ActualHours  float64   `json:"actual_hours" gorm:"default:0"`
	Role         string    `json:"role" gorm:"size:100"`
	Notes        string    `json:"notes" gorm:"type:text"`

	// Relationships
	Project    *Project    `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	TeamMember *TeamMember `json:"team_member,omitempty" gorm:"foreignKey:TeamMemberID"`
}

// TableName returns the table name for ResourceAllocation
func (ResourceAllocation) TableName() string {
	return "resource_allocations"
}
