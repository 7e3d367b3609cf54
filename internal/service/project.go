package service

import (
	"errors"
	"fmt"

	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	repo      repository.ProjectRepositoryInterface
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:      repo,
		validator: validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name        string               `json:"name" validate:"required,min=1,max=200"`
	Title       string               `json:"title" validate:"required,max=250"`
	Description string               `json:"description,omitempty"`
	Status      models.ProjectStatus `json:"status,omitempty"`
}

// UpdateProjectStatusRequest represents the request to change a project's status
type UpdateProjectStatusRequest struct {
	Status models.ProjectStatus `json:"status" validate:"required"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Status      models.ProjectStatus `json:"status"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// CreateProject creates a new project
func (s *ProjectService) CreateProject(req *CreateProjectRequest) (*ProjectResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	status := req.Status
	if status == "" {
		status = models.ProjectStatusActive
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown project status %q", status))
	}

	// Check if project with same name exists
	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing project by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrProjectExists
	}

	project := &models.Project{
		Name:        req.Name,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
	}

	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return s.toResponse(project), nil
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(id uuid.UUID) (*ProjectResponse, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return s.toResponse(project), nil
}

// GetProjectByName retrieves a project by its unique name
func (s *ProjectService) GetProjectByName(name string) (*ProjectResponse, error) {
	project, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return s.toResponse(project), nil
}

// ListProjects retrieves projects with pagination
func (s *ProjectService) ListProjects(page, pageSize int) (*ProjectListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	projects, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *s.toResponse(&projects[i])
	}

	return &ProjectListResponse{
		Projects: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateProjectStatus changes the lifecycle status of a project
func (s *ProjectService) UpdateProjectStatus(id uuid.UUID, req *UpdateProjectStatusRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown project status %q", req.Status))
	}

	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	project.Status = req.Status
	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.toResponse(project), nil
}

// toResponse converts a project model to response
func (s *ProjectService) toResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Title:       project.Title,
		Description: project.Description,
		Status:      project.Status,
		CreatedAt:   formatTimestamp(project.CreatedAt),
		UpdatedAt:   formatTimestamp(project.UpdatedAt),
	}
}
