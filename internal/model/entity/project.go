package entity

import (
	"time"
)

// Project is a top-level container for tasks.
type Project struct {
	ID          string     `json:"id" gorm:"primaryKey;size:32"`
	Name        string     `json:"name" gorm:"size:128;not null;index"`
	Description string     `json:"description" gorm:"type:text"`
	Status      string     `json:"status" gorm:"size:32;not null"`
	StartDate   *time.Time `json:"start_date" gorm:"type:date"`
	EndDate     *time.Time `json:"end_date" gorm:"type:date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:ProjectID"`
}

func (Project) TableName() string {
	return "projects"
}

// Task belongs to exactly one project.
type Task struct {
	ID                 string     `json:"id" gorm:"primaryKey;size:32"`
	ProjectID          string     `json:"project_id" gorm:"size:32;not null;index"`
	Name               string     `json:"name" gorm:"size:256;not null"`
	Description        string     `json:"description" gorm:"type:text"`
	Status             string     `json:"status" gorm:"size:32;not null;index"`
	Priority           string     `json:"priority" gorm:"size:32;not null"`
	DueDate            *time.Time `json:"due_date" gorm:"type:date"`
	EstimatedHours     *float64   `json:"estimated_hours" gorm:"type:decimal(8,2)"`
	TotalLoggedMinutes int        `json:"total_logged_minutes" gorm:"not null;default:0"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	Project  *Project  `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	TimeLogs []TimeLog `json:"time_logs,omitempty" gorm:"foreignKey:TaskID"`
}

func (Task) TableName() string {
	return "tasks"
}

// TimeLog records minutes spent on a task on a given day.
type TimeLog struct {
	ID              string    `json:"id" gorm:"primaryKey;size:32"`
	TaskID          string    `json:"task_id" gorm:"size:32;not null;index"`
	LogDate         time.Time `json:"log_date" gorm:"type:date;not null"`
	DurationMinutes int       `json:"duration_minutes" gorm:"not null"`
	Notes           string    `json:"notes" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`

	Task *Task `json:"task,omitempty" gorm:"foreignKey:TaskID"`
}

func (TimeLog) TableName() string {
	return "time_logs"
}

// Project status values
const (
	ProjectStatusPlanning  = "Planning"
	ProjectStatusActive    = "Active"
	ProjectStatusOnHold    = "On Hold"
	ProjectStatusCompleted = "Completed"
	ProjectStatusArchived  = "Archived"
)

// Task status values
const (
	TaskStatusToDo       = "To Do"
	TaskStatusInProgress = "In Progress"
	TaskStatusBlocked    = "Blocked"
	TaskStatusReview     = "Review"
	TaskStatusDone       = "Done"
)

// Task priority values
const (
	TaskPriorityLow    = "Low"
	TaskPriorityMedium = "Medium"
	TaskPriorityHigh   = "High"
	TaskPriorityUrgent = "Urgent"
)

// ProjectStatusOptions lists the selectable project states in display order.
func ProjectStatusOptions() []string {
	return []string{
		ProjectStatusPlanning,
		ProjectStatusActive,
		ProjectStatusOnHold,
		ProjectStatusCompleted,
		ProjectStatusArchived,
	}
}

// TaskStatusOptions lists the selectable task states in display order.
func TaskStatusOptions() []string {
	return []string{
		TaskStatusToDo,
		TaskStatusInProgress,
		TaskStatusBlocked,
		TaskStatusReview,
		TaskStatusDone,
	}
}

// TaskPriorityOptions lists the selectable task priorities in display order.
func TaskPriorityOptions() []string {
	return []string{
		TaskPriorityLow,
		TaskPriorityMedium,
		TaskPriorityHigh,
		TaskPriorityUrgent,
	}
}
