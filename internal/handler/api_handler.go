package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nani-1205/Project-Management-App/internal/payload"
	"github.com/nani-1205/Project-Management-App/internal/repository"
	"github.com/nani-1205/Project-Management-App/internal/service"
	"go.uber.org/zap"
)

// APIHandler serves the JSON endpoints.
type APIHandler struct {
	svc *service.Services
	log *zap.Logger
}

func NewAPIHandler(svc *service.Services, log *zap.Logger) *APIHandler {
	return &APIHandler{svc: svc, log: log}
}

// ProjectTasks returns a project's tasks in the serialized payload form,
// dates carried as wrapped millisecond timestamps.
func (h *APIHandler) ProjectTasks(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := c.Param("id")

	if _, err := h.svc.Project.GetProject(ctx, projectID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		h.log.Error("api project lookup", zap.String("project_id", projectID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	tasks, err := h.svc.Task.ListTasks(ctx, projectID)
	if err != nil {
		h.log.Error("api task list", zap.String("project_id", projectID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	body, err := payload.MarshalTasks(tasks)
	if err != nil {
		h.log.Error("api task marshal", zap.String("project_id", projectID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
