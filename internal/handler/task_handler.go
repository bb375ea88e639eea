package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nani-1205/Project-Management-App/internal/repository"
	"github.com/nani-1205/Project-Management-App/internal/service"
	"go.uber.org/zap"
)

// TaskHandler serves the task and time-log form endpoints. Redirects carry
// the originating project id so the page reopens on the same project.
type TaskHandler struct {
	svc *service.Services
	log *zap.Logger
}

func NewTaskHandler(svc *service.Services, log *zap.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: log}
}

func taskRequestFromForm(c *gin.Context) (service.TaskRequest, error) {
	req := service.TaskRequest{
		Name:        strings.TrimSpace(c.PostForm("name")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Status:      c.PostForm("status"),
		Priority:    c.PostForm("priority"),
		DueDate:     parseFormDate(c, "due_date"),
	}
	if raw := c.PostForm("estimated_hours"); raw != "" {
		hours, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, fmt.Errorf("invalid estimated hours %q", raw)
		}
		req.EstimatedHours = &hours
	}
	return req, nil
}

// redirectContext resolves the project to return to: the hidden form field
// first, then the task's own stored project id.
func (h *TaskHandler) redirectContext(ctx context.Context, c *gin.Context, taskID string) string {
	if projectID := c.PostForm("project_id"); projectID != "" {
		return projectID
	}
	if taskID != "" {
		if task, err := h.svc.Task.GetTask(ctx, taskID); err == nil {
			return task.ProjectID
		}
	}
	return ""
}

// Add creates a task under the project in the path.
func (h *TaskHandler) Add(c *gin.Context) {
	projectID := c.Param("projectId")
	req, err := taskRequestFromForm(c)
	if err != nil {
		AddFlash(c, FlashError, "Estimated hours must be a number.")
		redirectToIndex(c, projectID)
		return
	}
	task, err := h.svc.Task.CreateTask(c.Request.Context(), projectID, req)
	switch {
	case errors.Is(err, service.ErrNameRequired):
		AddFlash(c, FlashError, "Task name is required.")
		redirectToIndex(c, projectID)
	case errors.Is(err, service.ErrNegativeHours):
		AddFlash(c, FlashError, "Estimated hours cannot be negative.")
		redirectToIndex(c, projectID)
	case errors.Is(err, repository.ErrNotFound):
		AddFlash(c, FlashWarning, fmt.Sprintf("Project with ID %s not found.", projectID))
		redirectToIndex(c, "")
	case err != nil:
		h.log.Error("add task", zap.String("project_id", projectID), zap.Error(err))
		AddFlash(c, FlashError, fmt.Sprintf("Error adding task '%s'.", req.Name))
		redirectToIndex(c, projectID)
	default:
		AddFlash(c, FlashSuccess, fmt.Sprintf("Task '%s' added.", task.Name))
		redirectToIndex(c, projectID)
	}
}

// Edit updates a task.
func (h *TaskHandler) Edit(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	projectID := h.redirectContext(ctx, c, id)

	req, err := taskRequestFromForm(c)
	if err != nil {
		AddFlash(c, FlashError, "Estimated hours must be a number.")
		redirectToIndex(c, projectID)
		return
	}
	task, err := h.svc.Task.UpdateTask(ctx, id, req)
	switch {
	case errors.Is(err, service.ErrNameRequired):
		AddFlash(c, FlashError, "Task name is required.")
		redirectToIndex(c, projectID)
	case errors.Is(err, service.ErrNegativeHours):
		AddFlash(c, FlashError, "Estimated hours cannot be negative.")
		redirectToIndex(c, projectID)
	case errors.Is(err, repository.ErrNotFound):
		AddFlash(c, FlashWarning, fmt.Sprintf("Task with ID %s not found.", id))
		redirectToIndex(c, projectID)
	case err != nil:
		h.log.Error("edit task", zap.String("task_id", id), zap.Error(err))
		AddFlash(c, FlashError, fmt.Sprintf("Error updating task '%s'.", req.Name))
		redirectToIndex(c, projectID)
	default:
		AddFlash(c, FlashSuccess, fmt.Sprintf("Task '%s' updated.", task.Name))
		redirectToIndex(c, task.ProjectID)
	}
}

// Delete removes a task and its time logs.
func (h *TaskHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	projectID := h.redirectContext(ctx, c, id)

	task, deleted, err := h.svc.Task.DeleteTask(ctx, id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		AddFlash(c, FlashWarning, fmt.Sprintf("Task with ID %s not found.", id))
	case err != nil:
		h.log.Error("delete task", zap.String("task_id", id), zap.Error(err))
		AddFlash(c, FlashError, "Error deleting task.")
	case !deleted:
		AddFlash(c, FlashWarning, fmt.Sprintf("Task '%s' could not be deleted (maybe it was already removed?).", task.Name))
	default:
		AddFlash(c, FlashSuccess, fmt.Sprintf("Task '%s' and its logs deleted.", task.Name))
	}
	redirectToIndex(c, projectID)
}

// LogTime records time against a task and bumps its logged total.
func (h *TaskHandler) LogTime(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	projectID := h.redirectContext(ctx, c, id)

	minutes, convErr := strconv.Atoi(strings.TrimSpace(c.PostForm("duration_minutes")))
	if convErr != nil {
		AddFlash(c, FlashError, "Duration must be a positive number of minutes.")
		redirectToIndex(c, projectID)
		return
	}
	req := service.TimeLogRequest{
		DurationMinutes: minutes,
		LogDate:         parseFormDate(c, "log_date"),
		Notes:           strings.TrimSpace(c.PostForm("notes")),
	}
	timeLog, err := h.svc.TimeLog.LogTime(ctx, id, req)
	switch {
	case errors.Is(err, service.ErrInvalidDuration):
		AddFlash(c, FlashError, "Duration must be a positive number of minutes.")
	case errors.Is(err, repository.ErrNotFound):
		AddFlash(c, FlashWarning, fmt.Sprintf("Task with ID %s not found.", id))
	case err != nil:
		h.log.Error("log time", zap.String("task_id", id), zap.Error(err))
		AddFlash(c, FlashError, "Error logging time.")
	default:
		AddFlash(c, FlashSuccess, fmt.Sprintf("Logged %s.", DurationFormat(timeLog.DurationMinutes)))
	}
	redirectToIndex(c, projectID)
}
