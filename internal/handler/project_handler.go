package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nani-1205/Project-Management-App/internal/repository"
	"github.com/nani-1205/Project-Management-App/internal/service"
	"go.uber.org/zap"
)

// ProjectHandler serves the project form endpoints. Every endpoint redirects
// back to the page with a flash message reporting the outcome.
type ProjectHandler struct {
	svc *service.Services
	log *zap.Logger
}

func NewProjectHandler(svc *service.Services, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: log}
}

func projectRequestFromForm(c *gin.Context) service.ProjectRequest {
	return service.ProjectRequest{
		Name:        strings.TrimSpace(c.PostForm("name")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Status:      c.PostForm("status"),
		StartDate:   parseFormDate(c, "start_date"),
		EndDate:     parseFormDate(c, "end_date"),
	}
}

// Add creates a project and selects it on return.
func (h *ProjectHandler) Add(c *gin.Context) {
	req := projectRequestFromForm(c)
	project, err := h.svc.Project.CreateProject(c.Request.Context(), req)
	switch {
	case errors.Is(err, service.ErrNameRequired):
		AddFlash(c, FlashError, "Project name is required.")
		redirectToIndex(c, "")
	case errors.Is(err, service.ErrDateOrder):
		AddFlash(c, FlashError, "End date cannot be earlier than start date.")
		redirectToIndex(c, "")
	case err != nil:
		h.log.Error("add project", zap.Error(err))
		AddFlash(c, FlashError, fmt.Sprintf("Error adding project '%s'.", req.Name))
		redirectToIndex(c, "")
	default:
		AddFlash(c, FlashSuccess, fmt.Sprintf("Project '%s' added successfully.", project.Name))
		redirectToIndex(c, project.ID)
	}
}

// Edit updates a project, keeping it selected on return.
func (h *ProjectHandler) Edit(c *gin.Context) {
	id := c.Param("id")
	req := projectRequestFromForm(c)
	project, err := h.svc.Project.UpdateProject(c.Request.Context(), id, req)
	switch {
	case errors.Is(err, service.ErrNameRequired):
		AddFlash(c, FlashError, "Project name cannot be empty.")
		redirectToIndex(c, id)
	case errors.Is(err, service.ErrDateOrder):
		AddFlash(c, FlashError, "End date cannot be earlier than start date.")
		redirectToIndex(c, id)
	case errors.Is(err, repository.ErrNotFound):
		AddFlash(c, FlashWarning, fmt.Sprintf("Project with ID %s not found.", id))
		redirectToIndex(c, "")
	case err != nil:
		h.log.Error("edit project", zap.String("project_id", id), zap.Error(err))
		AddFlash(c, FlashError, fmt.Sprintf("Error updating project '%s'.", req.Name))
		redirectToIndex(c, id)
	default:
		AddFlash(c, FlashSuccess, fmt.Sprintf("Project '%s' updated.", project.Name))
		redirectToIndex(c, id)
	}
}

// Delete removes a project with its tasks and time logs, then returns to the
// unselected page.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	name, deleted, err := h.svc.Project.DeleteProject(c.Request.Context(), id)
	switch {
	case err != nil:
		h.log.Error("delete project", zap.String("project_id", id), zap.Error(err))
		AddFlash(c, FlashError, fmt.Sprintf("Error deleting project '%s'.", name))
	case !deleted:
		AddFlash(c, FlashWarning, fmt.Sprintf("Project '%s' could not be deleted (maybe it was already removed?).", name))
	default:
		AddFlash(c, FlashSuccess, fmt.Sprintf("Project '%s' and its tasks/logs deleted.", name))
	}
	redirectToIndex(c, "")
}
