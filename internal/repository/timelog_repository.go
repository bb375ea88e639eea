package repository

import (
	"context"

	"github.com/nani-1205/Project-Management-App/internal/model/entity"
	"gorm.io/gorm"
)

// TimeLogRepository persists time logs.
type TimeLogRepository struct {
	db *gorm.DB
}

func NewTimeLogRepository(db *gorm.DB) *TimeLogRepository {
	return &TimeLogRepository{db: db}
}

// Create inserts a time log.
func (r *TimeLogRepository) Create(ctx context.Context, log *entity.TimeLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// ListForTask returns a task's time logs, most recent log date first.
func (r *TimeLogRepository) ListForTask(ctx context.Context, taskID string) ([]entity.TimeLog, error) {
	var logs []entity.TimeLog
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("log_date DESC, created_at DESC").
		Find(&logs).Error
	return logs, err
}

// TotalForTask sums the logged minutes recorded for a task.
func (r *TimeLogRepository) TotalForTask(ctx context.Context, taskID string) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entity.TimeLog{}).
		Where("task_id = ?", taskID).
		Select("COALESCE(SUM(duration_minutes), 0)").
		Scan(&total).Error
	return int(total), err
}
