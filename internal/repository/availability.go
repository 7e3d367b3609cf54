package repository

import (
	"time"

	"resource-planner-backend/internal/calendar"
	"resource-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AvailabilityRepository handles database operations for availability overrides
type AvailabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository creates a new availability repository
func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// Upsert inserts an override or replaces hours and notes of the existing row
// for the same member, date and type. entry is overwritten with the stored row
// afterwards, so on the update path it carries the existing ID.
func (r *AvailabilityRepository) Upsert(entry *models.Availability) error {
	entry.Date = calendar.DateOf(entry.Date)
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "team_member_id"}, {Name: "date"}, {Name: "type"}},
			DoUpdates: clause.AssignmentColumns([]string{"hours", "notes", "updated_at", "updated_by"}),
		}).Create(entry).Error
		if err != nil {
			return err
		}
		var stored models.Availability
		if err := tx.First(&stored, "team_member_id = ? AND date = ? AND type = ?", entry.TeamMemberID, entry.Date, entry.Type).Error; err != nil {
			return err
		}
		*entry = stored
		return nil
	})
}

// GetByMember retrieves a member's overrides inside window ordered by date
func (r *AvailabilityRepository) GetByMember(memberID uuid.UUID, window calendar.Range) ([]models.Availability, error) {
	var entries []models.Availability
	err := r.db.
		Where("team_member_id = ? AND date >= ? AND date <= ?", memberID, window.Start, window.End).
		Order("date ASC, type ASC").
		Find(&entries).Error
	return entries, err
}

// GetByMembers retrieves overrides for several members inside window
func (r *AvailabilityRepository) GetByMembers(memberIDs []uuid.UUID, window calendar.Range) ([]models.Availability, error) {
	var entries []models.Availability
	if len(memberIDs) == 0 {
		return entries, nil
	}
	err := r.db.
		Where("team_member_id IN ? AND date >= ? AND date <= ?", memberIDs, window.Start, window.End).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

// Delete removes one override. It returns gorm.ErrRecordNotFound when nothing matched.
func (r *AvailabilityRepository) Delete(memberID uuid.UUID, date time.Time, typ models.AvailabilityType) error {
	result := r.db.
		Where("team_member_id = ? AND date = ? AND type = ?", memberID, calendar.DateOf(date), typ).
		Delete(&models.Availability{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
