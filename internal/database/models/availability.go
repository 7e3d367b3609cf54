package models

import (
	"time"

	"github.com/google/uuid"
)

// Availability overrides a team member's default capacity for one date
type Availability struct {
	BaseModel
	TeamMemberID uuid.UUID        `json:"team_member_id" gorm:"type:uuid;not null;uniqueIndex:idx_availability_member_date_type" validate:"required"`
	Date         time.Time        `json:"date" gorm:"type:date;not null;uniqueIndex:idx_availability_member_date_type" validate:"required"`
	Type         AvailabilityType `json:"type" gorm:"type:varchar(20);not null;uniqueIndex:idx_availability_member_date_type" validate:"required"`
	Hours        float64          `json:"hours" gorm:"not null;default:0" validate:"gte=0"`
	Notes        string           `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for Availability
func (Availability) TableName() string {
	return "availabilities"
}
