package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nani-1205/Project-Management-App/internal/model/entity"
	"github.com/nani-1205/Project-Management-App/internal/repository"
)

// ProjectService implements project CRUD with form-level validation.
type ProjectService struct {
	projectRepo *repository.ProjectRepository
}

func NewProjectService(projectRepo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// ProjectRequest carries the project form fields for create and edit.
type ProjectRequest struct {
	Name        string
	Description string
	Status      string
	StartDate   *time.Time
	EndDate     *time.Time
}

func (r *ProjectRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}
	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return ErrDateOrder
	}
	return nil
}

// CreateProject validates and stores a new project.
func (s *ProjectService) CreateProject(ctx context.Context, req ProjectRequest) (*entity.Project, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = entity.ProjectStatusPlanning
	}
	project := &entity.Project{
		ID:          newID(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Status:      status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}

// UpdateProject validates and applies the full project form to an existing
// project.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, req ProjectRequest) (*entity.Project, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	project.Name = strings.TrimSpace(req.Name)
	project.Description = req.Description
	if req.Status != "" {
		project.Status = req.Status
	}
	project.StartDate = req.StartDate
	project.EndDate = req.EndDate
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return project, nil
}

// DeleteProject removes a project and everything under it, returning the
// deleted project's name for reporting.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) (string, bool, error) {
	name := "project " + id
	if project, err := s.projectRepo.FindByID(ctx, id); err == nil {
		name = project.Name
	}
	deleted, err := s.projectRepo.Delete(ctx, id)
	if err != nil {
		return name, false, fmt.Errorf("delete project: %w", err)
	}
	return name, deleted, nil
}

// GetProject looks a project up by id.
func (s *ProjectService) GetProject(ctx context.Context, id string) (*entity.Project, error) {
	return s.projectRepo.FindByID(ctx, id)
}

// ListProjects returns all projects sorted by name.
func (s *ProjectService) ListProjects(ctx context.Context) ([]entity.Project, error) {
	return s.projectRepo.List(ctx)
}
