package repository

import (
	"resource-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team members
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Create creates a new team member
func (r *TeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a team member by ID
func (r *TeamMemberRepository) GetByID(id uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByEmail retrieves a team member by email
func (r *TeamMemberRepository) GetByEmail(email string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetAll retrieves team members ordered by name
func (r *TeamMemberRepository) GetAll(activeOnly bool) ([]models.TeamMember, error) {
	var members []models.TeamMember
	query := r.db.Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&members).Error
	return members, err
}

// Update saves all fields of a team member
func (r *TeamMemberRepository) Update(member *models.TeamMember) error {
	return r.db.Save(member).Error
}

// UpdateWorkload stores a recomputed current workload without touching other columns
func (r *TeamMemberRepository) UpdateWorkload(id uuid.UUID, workload float64) error {
	result := r.db.Model(&models.TeamMember{}).Where("id = ?", id).Update("current_workload", workload)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
