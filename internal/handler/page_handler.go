package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nani-1205/Project-Management-App/internal/model/entity"
	"github.com/nani-1205/Project-Management-App/internal/payload"
	"github.com/nani-1205/Project-Management-App/internal/repository"
	"github.com/nani-1205/Project-Management-App/internal/service"
	"github.com/nani-1205/Project-Management-App/internal/ui"
	"go.uber.org/zap"
)

// Form submission targets, parameterized by entity id.
const (
	endpointAddProject  = "/projects/add"
	endpointEditProject = "/projects/edit/{id}"
	endpointAddTask     = "/tasks/add/{id}"
	endpointEditTask    = "/tasks/edit/{id}"
	endpointLogTime     = "/tasks/log_time/{id}"
)

// Payload-key to form-input bindings per dialog.
var (
	projectFieldMap = ui.FieldMap{
		{Key: "name", Input: "name"},
		{Key: "description", Input: "description"},
		{Key: "status", Input: "status"},
		{Key: "start_date", Input: "start_date"},
		{Key: "end_date", Input: "end_date"},
	}
	taskFieldMap = ui.FieldMap{
		{Key: "name", Input: "name"},
		{Key: "description", Input: "description"},
		{Key: "status", Input: "status"},
		{Key: "priority", Input: "priority"},
		{Key: "due_date", Input: "due_date"},
		{Key: "estimated_hours", Input: "estimated_hours"},
		{Key: "project_id", Input: "project_id"},
	}
)

// PageHandler renders the single tracker page with its dialog surfaces.
type PageHandler struct {
	svc *service.Services
	log *zap.Logger
}

func NewPageHandler(svc *service.Services, log *zap.Logger) *PageHandler {
	return &PageHandler{svc: svc, log: log}
}

// flashNotifier collects hydration alerts for rendering with this response's
// flash messages.
type flashNotifier struct {
	alerts []Flash
}

func (n *flashNotifier) Alert(message string) {
	n.alerts = append(n.alerts, Flash{Level: FlashError, Message: message})
}

// pageContext is the dialog machinery for one page render: controller,
// router, and hydrator over freshly-built (hidden) dialog surfaces. It lives
// for exactly one request.
type pageContext struct {
	modals   *ui.Controller
	router   *ui.Router
	hydrator *ui.Hydrator
	notify   *flashNotifier
}

func newPageContext(log *zap.Logger, contextProjectID string) *pageContext {
	today := time.Now().UTC().Format("2006-01-02")

	dialogs := []*ui.Dialog{
		{
			Surface: ui.SurfaceAddProject,
			Title:   "Add Project",
			Form:    ui.NewForm("add_project", "name", "description", "status", "start_date", "end_date"),
			ResetOnOpen: true,
			Defaults:    map[string]string{"status": entity.ProjectStatusPlanning},
		},
		{
			Surface: ui.SurfaceEditProject,
			Title:   "Edit Project",
			Form:    ui.NewForm("edit_project", "name", "description", "status", "start_date", "end_date"),
		},
		{
			Surface: ui.SurfaceAddTask,
			Title:   "Add Task",
			Form:    ui.NewForm("add_task", "name", "description", "status", "priority", "due_date", "estimated_hours"),
			ResetOnOpen: true,
			Defaults: map[string]string{
				"status":   entity.TaskStatusToDo,
				"priority": entity.TaskPriorityMedium,
			},
		},
		{
			Surface: ui.SurfaceEditTask,
			Title:   "Edit Task",
			Form:    ui.NewForm("edit_task", "name", "description", "status", "priority", "due_date", "estimated_hours", "project_id"),
		},
		{
			Surface:     ui.SurfaceLogTime,
			Title:       "Log Time",
			Form:        ui.NewForm("log_time", "duration_minutes", "log_date", "notes", "project_id"),
			ResetOnOpen: true,
			Defaults:    map[string]string{"log_date": today},
		},
	}

	notify := &flashNotifier{}
	modals := ui.NewController(log, dialogs...)
	hydrator := ui.NewHydrator(modals, notify, log)
	router := ui.NewRouter(log)

	pc := &pageContext{
		modals:   modals,
		router:   router,
		hydrator: hydrator,
		notify:   notify,
	}

	router.Bind(ui.TriggerAddProject, func(t ui.Trigger) {
		if modals.Open(ui.SurfaceAddProject) {
			d, _ := modals.Dialog(ui.SurfaceAddProject)
			d.Form.Action = endpointAddProject
		}
	})

	router.Bind(ui.TriggerAddTask, func(t ui.Trigger) {
		if contextProjectID == "" {
			log.Warn("add-task trigger without a selected project")
			return
		}
		if modals.Open(ui.SurfaceAddTask) {
			d, _ := modals.Dialog(ui.SurfaceAddTask)
			d.Form.Action = ui.ExpandEndpoint(endpointAddTask, contextProjectID)
		}
	})

	router.Bind(ui.TriggerEditProject, func(t ui.Trigger) {
		hydrator.HydrateRaw(ui.SurfaceEditProject, t.Payload, decodeProjectPayload, projectFieldMap, endpointEditProject)
	})

	router.Bind(ui.TriggerEditTask, func(t ui.Trigger) {
		if hydrator.HydrateRaw(ui.SurfaceEditTask, t.Payload, decodeTaskPayload, taskFieldMap, endpointEditTask) {
			hydrator.ApplyContext(ui.SurfaceEditTask, "project_id", t.ContextID)
		}
	})

	router.Bind(ui.TriggerLogTime, func(t ui.Trigger) {
		if modals.Open(ui.SurfaceLogTime) {
			d, _ := modals.Dialog(ui.SurfaceLogTime)
			d.Form.Action = ui.ExpandEndpoint(endpointLogTime, t.ID)
			if t.Label != "" {
				d.Title = fmt.Sprintf("Log Time: %s", t.Label)
			}
			hydrator.ApplyContext(ui.SurfaceLogTime, "project_id", t.ContextID)
		}
	})

	return pc
}

func decodeProjectPayload(raw string) (ui.EntityPayload, error) {
	p, derr := payload.DecodeProject(raw)
	if derr != nil {
		return nil, derr
	}
	return p, nil
}

func decodeTaskPayload(raw string) (ui.EntityPayload, error) {
	t, derr := payload.DecodeTask(raw)
	if derr != nil {
		return nil, derr
	}
	return t, nil
}

// ProjectRow is a project with its serialized trigger payload.
type ProjectRow struct {
	entity.Project
	Payload string
}

// TaskRow is a task with its serialized trigger payload.
type TaskRow struct {
	entity.Task
	Payload string
}

// DialogView is one dialog surface flattened for the template.
type DialogView struct {
	Surface  string
	Title    string
	Action   string
	Visible  bool
	Values   map[string]string
	CloseURL string
}

// Index renders the tracker page. ?project_id selects a project,
// ?dialog=<class> opens a dialog surface hydrated from the trigger's
// serialized payload.
func (h *PageHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	flashes := TakeFlashes(c)

	var projects []entity.Project
	list, err := h.svc.Project.ListProjects(ctx)
	if err != nil {
		h.log.Error("list projects", zap.Error(err))
		flashes = append(flashes, Flash{Level: FlashError, Message: "Could not load projects. Please try again."})
	} else {
		projects = list
	}

	selectedID := c.Query("project_id")
	var selected *entity.Project
	var tasks []entity.Task
	if selectedID != "" {
		selected, err = h.svc.Project.GetProject(ctx, selectedID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			flashes = append(flashes, Flash{
				Level:   FlashWarning,
				Message: fmt.Sprintf("Project with ID %s not found.", selectedID),
			})
			selectedID, selected = "", nil
		case err != nil:
			h.log.Error("load selected project", zap.String("project_id", selectedID), zap.Error(err))
			flashes = append(flashes, Flash{Level: FlashError, Message: "Error loading selected project or tasks."})
			selectedID, selected = "", nil
		default:
			tasks, err = h.svc.Task.ListTasks(ctx, selectedID)
			if err != nil {
				h.log.Error("list tasks", zap.String("project_id", selectedID), zap.Error(err))
				flashes = append(flashes, Flash{Level: FlashError, Message: "Error loading selected project or tasks."})
			}
		}
	}

	pc := newPageContext(h.log, selectedID)
	if class := c.Query("dialog"); class != "" {
		trigger := ui.Trigger{
			Class:     ui.TriggerClass(class),
			ID:        c.Query("id"),
			Payload:   c.Query("payload"),
			Label:     c.Query("name"),
			ContextID: selectedID,
		}
		if trigger.Payload == "" {
			trigger.Payload = h.storedPayload(ctx, trigger)
		}
		pc.router.Dispatch(trigger)
	}
	flashes = append(flashes, pc.notify.alerts...)

	closeURL := "/"
	openURL := "/?dialog="
	if selectedID != "" {
		closeURL = "/?project_id=" + url.QueryEscape(selectedID)
		openURL = closeURL + "&dialog="
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Flashes":         flashes,
		"Projects":        projectRows(projects, selectedID, h.log),
		"Selected":        selected,
		"SelectedID":      selectedID,
		"Tasks":           taskRows(tasks, h.log),
		"Dialogs":         dialogViews(pc.modals, closeURL),
		"CloseURL":        closeURL,
		"OpenURL":         openURL,
		"ProjectStatuses": entity.ProjectStatusOptions(),
		"TaskStatuses":    entity.TaskStatusOptions(),
		"TaskPriorities":  entity.TaskPriorityOptions(),
	})
}

// storedPayload serializes the trigger's entity from storage when the
// activation carried no inline payload.
func (h *PageHandler) storedPayload(ctx context.Context, t ui.Trigger) string {
	if t.ID == "" {
		return ""
	}
	switch t.Class {
	case ui.TriggerEditProject:
		project, err := h.svc.Project.GetProject(ctx, t.ID)
		if err != nil {
			return ""
		}
		raw, err := payload.MarshalProject(project)
		if err != nil {
			return ""
		}
		return raw
	case ui.TriggerEditTask:
		task, err := h.svc.Task.GetTask(ctx, t.ID)
		if err != nil {
			return ""
		}
		raw, err := payload.MarshalTask(task)
		if err != nil {
			return ""
		}
		return raw
	}
	return ""
}

func projectRows(projects []entity.Project, selectedID string, log *zap.Logger) []ProjectRow {
	rows := make([]ProjectRow, 0, len(projects))
	for i := range projects {
		raw, err := payload.MarshalProject(&projects[i])
		if err != nil {
			log.Warn("marshal project payload", zap.String("project_id", projects[i].ID), zap.Error(err))
		}
		rows = append(rows, ProjectRow{Project: projects[i], Payload: raw})
	}
	return rows
}

func taskRows(tasks []entity.Task, log *zap.Logger) []TaskRow {
	rows := make([]TaskRow, 0, len(tasks))
	for i := range tasks {
		raw, err := payload.MarshalTask(&tasks[i])
		if err != nil {
			log.Warn("marshal task payload", zap.String("task_id", tasks[i].ID), zap.Error(err))
		}
		rows = append(rows, TaskRow{Task: tasks[i], Payload: raw})
	}
	return rows
}

func dialogViews(modals *ui.Controller, closeURL string) map[string]DialogView {
	surfaces := []ui.Surface{
		ui.SurfaceAddProject,
		ui.SurfaceEditProject,
		ui.SurfaceAddTask,
		ui.SurfaceEditTask,
		ui.SurfaceLogTime,
	}
	views := make(map[string]DialogView, len(surfaces))
	for _, s := range surfaces {
		d, ok := modals.Dialog(s)
		if !ok {
			continue
		}
		views[string(s)] = DialogView{
			Surface:  string(s),
			Title:    d.Title,
			Action:   d.Form.Action,
			Visible:  d.Visible(),
			Values:   d.Form.Values(),
			CloseURL: closeURL,
		}
	}
	return views
}
