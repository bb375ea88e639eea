package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/nani-1205/Project-Management-App/internal/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Validation errors surfaced to the user as flash messages.
var (
	ErrNameRequired    = errors.New("name is required")
	ErrDateOrder       = errors.New("end date cannot be earlier than start date")
	ErrNegativeHours   = errors.New("estimated hours cannot be negative")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
)

// Services bundles all services for dependency injection.
type Services struct {
	Project *ProjectService
	Task    *TaskService
	TimeLog *TimeLogService
	Report  *ReportService
}

// NewServices creates all services. rdb may be nil; caching is skipped then.
func NewServices(repos *repository.Repositories, rdb *redis.Client, logger *zap.Logger) *Services {
	taskSvc := NewTaskService(repos.Task, repos.Project, rdb, logger)
	return &Services{
		Project: NewProjectService(repos.Project),
		Task:    taskSvc,
		TimeLog: NewTimeLogService(repos.TimeLog, repos.Task, taskSvc, logger),
		Report:  NewReportService(repos.Project, repos.Task, repos.TimeLog),
	}
}

// newID returns a 32-char hex id.
func newID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
