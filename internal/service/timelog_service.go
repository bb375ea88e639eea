package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nani-1205/Project-Management-App/internal/model/entity"
	"github.com/nani-1205/Project-Management-App/internal/repository"
	"go.uber.org/zap"
)

// TimeLogService records work time against tasks and keeps the task's
// running total in sync.
type TimeLogService struct {
	timeLogRepo *repository.TimeLogRepository
	taskRepo    *repository.TaskRepository
	taskSvc     *TaskService
	log         *zap.Logger
}

func NewTimeLogService(timeLogRepo *repository.TimeLogRepository, taskRepo *repository.TaskRepository, taskSvc *TaskService, log *zap.Logger) *TimeLogService {
	return &TimeLogService{
		timeLogRepo: timeLogRepo,
		taskRepo:    taskRepo,
		taskSvc:     taskSvc,
		log:         log,
	}
}

// TimeLogRequest carries the log-time form fields.
type TimeLogRequest struct {
	DurationMinutes int
	LogDate         *time.Time
	Notes           string
}

// LogTime records time against a task and bumps its logged-minutes total.
func (s *TimeLogService) LogTime(ctx context.Context, taskID string, req TimeLogRequest) (*entity.TimeLog, error) {
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	logDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.LogDate != nil {
		logDate = *req.LogDate
	}

	timeLog := &entity.TimeLog{
		ID:              newID(),
		TaskID:          task.ID,
		LogDate:         logDate,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	}
	if err := s.timeLogRepo.Create(ctx, timeLog); err != nil {
		return nil, fmt.Errorf("create time log: %w", err)
	}

	if err := s.taskRepo.IncrementLoggedMinutes(ctx, task.ID, req.DurationMinutes); err != nil {
		// The log row exists; a vanished task only costs the cached total.
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("task disappeared before total update", zap.String("task_id", task.ID))
		} else {
			return nil, fmt.Errorf("update logged minutes: %w", err)
		}
	}

	s.taskSvc.invalidateTaskCache(ctx, task.ProjectID)
	return timeLog, nil
}

// ListLogs returns a task's time logs, most recent first.
func (s *TimeLogService) ListLogs(ctx context.Context, taskID string) ([]entity.TimeLog, error) {
	return s.timeLogRepo.ListForTask(ctx, taskID)
}
