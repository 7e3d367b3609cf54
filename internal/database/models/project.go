package models

// Project is the target of resource allocations
type Project struct {
	BaseModel
	Name        string        `json:"name" gorm:"uniqueIndex;not null;size:200" validate:"required,min=1,max=200"`
	Title       string        `json:"title" gorm:"not null;size:250" validate:"required,max=250"`
	Description string        `json:"description" gorm:"type:text"`
	Status      ProjectStatus `json:"status" gorm:"type:varchar(50);default:'active'" validate:"required"`

	// Relationships
	Allocations []ResourceAllocation `json:"allocations,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:RESTRICT"`
	Timeline    *ProjectTimeline     `json:"timeline,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
