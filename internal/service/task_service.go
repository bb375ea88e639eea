package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nani-1205/Project-Management-App/internal/model/entity"
	"github.com/nani-1205/Project-Management-App/internal/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const taskCacheTTL = 5 * time.Minute

// TaskService implements task CRUD. Per-project task lists are cached in
// redis and invalidated on any task or time-log mutation.
type TaskService struct {
	taskRepo    *repository.TaskRepository
	projectRepo *repository.ProjectRepository
	rdb         *redis.Client
	log         *zap.Logger
}

func NewTaskService(taskRepo *repository.TaskRepository, projectRepo *repository.ProjectRepository, rdb *redis.Client, log *zap.Logger) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		rdb:         rdb,
		log:         log,
	}
}

// TaskRequest carries the task form fields for create and edit.
type TaskRequest struct {
	Name           string
	Description    string
	Status         string
	Priority       string
	DueDate        *time.Time
	EstimatedHours *float64
}

func (r *TaskRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}
	if r.EstimatedHours != nil && *r.EstimatedHours < 0 {
		return ErrNegativeHours
	}
	return nil
}

// CreateTask validates and stores a new task under the project.
func (s *TaskService) CreateTask(ctx context.Context, projectID string, req TaskRequest) (*entity.Task, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = entity.TaskStatusToDo
	}
	priority := req.Priority
	if priority == "" {
		priority = entity.TaskPriorityMedium
	}
	task := &entity.Task{
		ID:             newID(),
		ProjectID:      projectID,
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		Status:         status,
		Priority:       priority,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	s.invalidateTaskCache(ctx, projectID)
	return task, nil
}

// UpdateTask validates and applies the full task form to an existing task.
func (s *TaskService) UpdateTask(ctx context.Context, id string, req TaskRequest) (*entity.Task, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	task.Name = strings.TrimSpace(req.Name)
	task.Description = req.Description
	if req.Status != "" {
		task.Status = req.Status
	}
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	task.DueDate = req.DueDate
	task.EstimatedHours = req.EstimatedHours
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	s.invalidateTaskCache(ctx, task.ProjectID)
	return task, nil
}

// DeleteTask removes a task and its logs, returning the deleted task for
// reporting and redirect purposes.
func (s *TaskService) DeleteTask(ctx context.Context, id string) (*entity.Task, bool, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	deleted, err := s.taskRepo.Delete(ctx, id)
	if err != nil {
		return task, false, fmt.Errorf("delete task: %w", err)
	}
	s.invalidateTaskCache(ctx, task.ProjectID)
	return task, deleted, nil
}

// GetTask looks a task up by id.
func (s *TaskService) GetTask(ctx context.Context, id string) (*entity.Task, error) {
	return s.taskRepo.FindByID(ctx, id)
}

// ListTasks returns a project's tasks, serving from cache when possible.
func (s *TaskService) ListTasks(ctx context.Context, projectID string) ([]entity.Task, error) {
	key := taskCacheKey(projectID)
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var tasks []entity.Task
			if err := json.Unmarshal(raw, &tasks); err == nil {
				return tasks, nil
			}
			s.rdb.Del(ctx, key)
		}
	}

	tasks, err := s.taskRepo.ListForProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(tasks); err == nil {
			if err := s.rdb.Set(ctx, key, raw, taskCacheTTL).Err(); err != nil {
				s.log.Warn("task cache write failed", zap.String("project_id", projectID), zap.Error(err))
			}
		}
	}
	return tasks, nil
}

func (s *TaskService) invalidateTaskCache(ctx context.Context, projectID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, taskCacheKey(projectID)).Err(); err != nil {
		s.log.Warn("task cache invalidation failed", zap.String("project_id", projectID), zap.Error(err))
	}
}

func taskCacheKey(projectID string) string {
	return "projectpilot:tasks:" + projectID
}
