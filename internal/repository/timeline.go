package repository

import (
	"resource-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimelineRepository handles database operations for project timelines
type TimelineRepository struct {
	db *gorm.DB
}

// NewTimelineRepository creates a new timeline repository
func NewTimelineRepository(db *gorm.DB) *TimelineRepository {
	return &TimelineRepository{db: db}
}

// Replace stores timeline as the project's only timeline. An existing
// timeline and its children are removed in the same transaction.
func (r *TimelineRepository) Replace(timeline *models.ProjectTimeline) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing []models.ProjectTimeline
		if err := tx.Where("project_id = ?", timeline.ProjectID).Find(&existing).Error; err != nil {
			return err
		}
		for _, old := range existing {
			for _, child := range []interface{}{&models.TimelinePhase{}, &models.Milestone{}, &models.ProjectDependency{}} {
				if err := tx.Where("timeline_id = ?", old.ID).Delete(child).Error; err != nil {
					return err
				}
			}
			if err := tx.Delete(&models.ProjectTimeline{}, "id = ?", old.ID).Error; err != nil {
				return err
			}
		}
		return tx.Create(timeline).Error
	})
}

// GetByProjectID retrieves a project's timeline with phases, milestones and dependencies
func (r *TimelineRepository) GetByProjectID(projectID uuid.UUID) (*models.ProjectTimeline, error) {
	var timeline models.ProjectTimeline
	err := r.db.
		Preload("Phases", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC, start_date ASC") }).
		Preload("Milestones", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") }).
		Preload("Dependencies").
		First(&timeline, "project_id = ?", projectID).Error
	if err != nil {
		return nil, err
	}
	return &timeline, nil
}
