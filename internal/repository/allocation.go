package repository

import (
	"time"

	"resource-planner-backend/internal/calendar"
	"resource-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AllocationFilter narrows ListAllocations. Nil fields are ignored; From and To
// select allocations whose window overlaps [From, To].
type AllocationFilter struct {
	ProjectID    *uuid.UUID
	TeamMemberID *uuid.UUID
	From         *time.Time
	To           *time.Time
}

// AllocationRepository handles database operations for resource allocations
type AllocationRepository struct {
	db *gorm.DB
}

// NewAllocationRepository creates a new allocation repository
func NewAllocationRepository(db *gorm.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

// Create creates a new allocation
func (r *AllocationRepository) Create(allocation *models.ResourceAllocation) error {
	allocation.StartDate = calendar.DateOf(allocation.StartDate)
	allocation.EndDate = calendar.DateOf(allocation.EndDate)
	return r.db.Create(allocation).Error
}

// GetByID retrieves an allocation by ID
func (r *AllocationRepository) GetByID(id uuid.UUID) (*models.ResourceAllocation, error) {
	var allocation models.ResourceAllocation
	err := r.db.First(&allocation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

// List retrieves allocations matching filter ordered by start date
func (r *AllocationRepository) List(filter AllocationFilter) ([]models.ResourceAllocation, error) {
	var allocations []models.ResourceAllocation

	query := r.db.Model(&models.ResourceAllocation{})
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.TeamMemberID != nil {
		query = query.Where("team_member_id = ?", *filter.TeamMemberID)
	}
	if filter.To != nil {
		query = query.Where("start_date <= ?", calendar.DateOf(*filter.To))
	}
	if filter.From != nil {
		query = query.Where("end_date >= ?", calendar.DateOf(*filter.From))
	}

	err := query.Order("start_date ASC, created_at ASC").Find(&allocations).Error
	return allocations, err
}

// GetOverlapping retrieves a member's allocations whose window overlaps window
func (r *AllocationRepository) GetOverlapping(memberID uuid.UUID, window calendar.Range) ([]models.ResourceAllocation, error) {
	from, to := window.Start, window.End
	return r.List(AllocationFilter{TeamMemberID: &memberID, From: &from, To: &to})
}

// Update saves all fields of an allocation
func (r *AllocationRepository) Update(allocation *models.ResourceAllocation) error {
	allocation.StartDate = calendar.DateOf(allocation.StartDate)
	allocation.EndDate = calendar.DateOf(allocation.EndDate)
	return r.db.Omit("Project", "TeamMember").Save(allocation).Error
}

// Delete deletes an allocation. It returns gorm.ErrRecordNotFound when nothing matched.
func (r *AllocationRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.ResourceAllocation{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
