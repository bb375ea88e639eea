package repository

import (
	"context"
	"errors"

	"github.com/nani-1205/Project-Management-App/internal/model/entity"
	"gorm.io/gorm"
)

// TaskRepository persists tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// FindByID looks a task up by id.
func (r *TaskRepository) FindByID(ctx context.Context, id string) (*entity.Task, error) {
	var task entity.Task
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Create inserts a task.
func (r *TaskRepository) Create(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// Update saves all task fields.
func (r *TaskRepository) Update(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

// Delete removes a task together with its time logs.
func (r *TaskRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&entity.TimeLog{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&entity.Task{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// ListForProject returns a project's tasks sorted by priority, then name.
func (r *TaskRepository) ListForProject(ctx context.Context, projectID string) ([]entity.Task, error) {
	var tasks []entity.Task
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("priority ASC, name ASC").
		Find(&tasks).Error
	return tasks, err
}

// IncrementLoggedMinutes adds to the task's running logged-time counter.
func (r *TaskRepository) IncrementLoggedMinutes(ctx context.Context, id string, minutes int) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Task{}).
		Where("id = ?", id).
		UpdateColumn("total_logged_minutes", gorm.Expr("total_logged_minutes + ?", minutes))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
