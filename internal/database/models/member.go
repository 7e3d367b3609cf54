package models

// TeamMember is a person whose hours can be allocated to projects
type TeamMember struct {
	BaseModel
	Name           string   `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email          string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Role           string   `json:"role" gorm:"size:100"`
	Department     string   `json:"department" gorm:"size:100;index"`
	HourlyRate     float64  `json:"hourly_rate" gorm:"default:0"`
	WeeklyCapacity float64  `json:"weekly_capacity" gorm:"not null"`
	Skills         []string `json:"skills" gorm:"serializer:json;type:text"`
	IsActive       bool     `json:"is_active" gorm:"not null;index"`
	// CurrentWorkload is the allocated hours per day on the most recent
	// recompute. It is derived from allocations and never set by callers.
	CurrentWorkload float64 `json:"current_workload" gorm:"default:0"`

	// Relationships
	Availability []Availability       `json:"availability,omitempty" gorm:"foreignKey:TeamMemberID;constraint:OnDelete:CASCADE"`
	Allocations  []ResourceAllocation `json:"allocations,omitempty" gorm:"foreignKey:TeamMemberID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}

// DailyCapacity is the default number of hours per working day.
func (m *TeamMember) DailyCapacity() float64 {
	return m.WeeklyCapacity / 5
}

// HasSkill reports whether the member lists skill.
func (m *TeamMember) HasSkill(skill string) bool {
	for _, s := range m.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
