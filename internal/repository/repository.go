package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repositories bundles all repositories for dependency injection.
type Repositories struct {
	Project *ProjectRepository
	Task    *TaskRepository
	TimeLog *TimeLogRepository
}

// NewRepositories creates all repositories sharing one DB handle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Project: NewProjectRepository(db),
		Task:    NewTaskRepository(db),
		TimeLog: NewTimeLogRepository(db),
	}
}
