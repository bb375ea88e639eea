package handler

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/nani-1205/Project-Management-App/internal/model/entity"
	"github.com/nani-1205/Project-Management-App/internal/testutil"
)

func TestAddProjectRedirectsAndSelects(t *testing.T) {
	db, router := setupPageTest(t)

	form := url.Values{}
	form.Set("name", "Fresh Project")
	form.Set("status", "Planning")
	form.Set("start_date", "2024-01-01")
	form.Set("end_date", "2024-06-30")

	w := testutil.DoRequest(router, "POST", "/projects/add", form)
	if w.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", w.Code)
	}
	location := w.Header().Get("Location")
	if !strings.HasPrefix(location, "/?project_id=") {
		t.Errorf("new project should be selected on return, got %q", location)
	}

	var project entity.Project
	if err := db.Where("name = ?", "Fresh Project").First(&project).Error; err != nil {
		t.Fatalf("project not stored: %v", err)
	}
	if project.Status != "Planning" {
		t.Errorf("status = %q", project.Status)
	}
}

func TestAddProjectNameRequired(t *testing.T) {
	_, router := setupPageTest(t)

	form := url.Values{}
	form.Set("name", "   ")

	w := testutil.DoRequest(router, "POST", "/projects/add", form)
	if w.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", w.Code)
	}
	if w.Header().Get("Location") != "/" {
		t.Errorf("validation failure should return unselected, got %q", w.Header().Get("Location"))
	}
}

func TestAddProjectDateOrder(t *testing.T) {
	db, router := setupPageTest(t)

	form := url.Values{}
	form.Set("name", "Backwards")
	form.Set("start_date", "2024-06-30")
	form.Set("end_date", "2024-01-01")

	w := testutil.DoRequest(router, "POST", "/projects/add", form)
	if w.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", w.Code)
	}

	var count int64
	db.Model(&entity.Project{}).Where("name = ?", "Backwards").Count(&count)
	if count != 0 {
		t.Error("project with reversed dates must not be stored")
	}
}

func TestEditTaskRedirectContextFallback(t *testing.T) {
	db, router := setupPageTest(t)
	testutil.SeedProject(t, db, "proj-ctx-001", "Context Project", "Active")
	testutil.SeedTask(t, db, "task-ctx-001", "proj-ctx-001", "Context Task")

	// No hidden project_id in the form; the task's stored project id is the
	// fallback redirect context.
	form := url.Values{}
	form.Set("name", "Context Task Renamed")
	form.Set("status", entity.TaskStatusInProgress)
	form.Set("priority", entity.TaskPriorityHigh)

	w := testutil.DoRequest(router, "POST", "/tasks/edit/task-ctx-001", form)
	if w.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/?project_id=proj-ctx-001" {
		t.Errorf("Location = %q, want the task's project selected", got)
	}

	var task entity.Task
	if err := db.First(&task, "id = ?", "task-ctx-001").Error; err != nil {
		t.Fatalf("task lookup failed: %v", err)
	}
	if task.Name != "Context Task Renamed" || task.Status != entity.TaskStatusInProgress {
		t.Errorf("task not updated: %+v", task)
	}
}

func TestLogTimeIncrementsTaskTotal(t *testing.T) {
	db, router := setupPageTest(t)
	testutil.SeedProject(t, db, "proj-log-001", "Log Project", "Active")
	testutil.SeedTask(t, db, "task-log-001", "proj-log-001", "Logged Task")

	form := url.Values{}
	form.Set("duration_minutes", "45")
	form.Set("log_date", "2024-04-10")
	form.Set("notes", "first session")
	form.Set("project_id", "proj-log-001")

	w := testutil.DoRequest(router, "POST", "/tasks/log_time/task-log-001", form)
	if w.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", w.Code)
	}

	form2 := url.Values{}
	form2.Set("duration_minutes", "30")
	form2.Set("project_id", "proj-log-001")
	testutil.DoRequest(router, "POST", "/tasks/log_time/task-log-001", form2)

	var task entity.Task
	if err := db.First(&task, "id = ?", "task-log-001").Error; err != nil {
		t.Fatalf("task lookup failed: %v", err)
	}
	if task.TotalLoggedMinutes != 75 {
		t.Errorf("TotalLoggedMinutes = %d, want 75", task.TotalLoggedMinutes)
	}

	var logCount int64
	db.Model(&entity.TimeLog{}).Where("task_id = ?", "task-log-001").Count(&logCount)
	if logCount != 2 {
		t.Errorf("time log rows = %d, want 2", logCount)
	}
}

func TestLogTimeRejectsNonPositiveDuration(t *testing.T) {
	db, router := setupPageTest(t)
	testutil.SeedProject(t, db, "proj-log-002", "Log Project 2", "Active")
	testutil.SeedTask(t, db, "task-log-002", "proj-log-002", "Strict Task")

	form := url.Values{}
	form.Set("duration_minutes", "0")
	form.Set("project_id", "proj-log-002")

	w := testutil.DoRequest(router, "POST", "/tasks/log_time/task-log-002", form)
	if w.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", w.Code)
	}

	var task entity.Task
	db.First(&task, "id = ?", "task-log-002")
	if task.TotalLoggedMinutes != 0 {
		t.Errorf("rejected duration must not change the total, got %d", task.TotalLoggedMinutes)
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	db, router := setupPageTest(t)
	testutil.SeedProject(t, db, "proj-del-001", "Doomed Project", "Active")
	testutil.SeedTask(t, db, "task-del-001", "proj-del-001", "Doomed Task")

	form := url.Values{}
	form.Set("duration_minutes", "15")
	testutil.DoRequest(router, "POST", "/tasks/log_time/task-del-001", form)

	w := testutil.DoRequest(router, "POST", "/projects/delete/proj-del-001", url.Values{})
	if w.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", w.Code)
	}

	var projects, tasks, logs int64
	db.Model(&entity.Project{}).Where("id = ?", "proj-del-001").Count(&projects)
	db.Model(&entity.Task{}).Where("project_id = ?", "proj-del-001").Count(&tasks)
	db.Model(&entity.TimeLog{}).Where("task_id = ?", "task-del-001").Count(&logs)
	if projects != 0 || tasks != 0 || logs != 0 {
		t.Errorf("cascade incomplete: projects=%d tasks=%d logs=%d", projects, tasks, logs)
	}
}

func TestAddTaskUnderProject(t *testing.T) {
	db, router := setupPageTest(t)
	testutil.SeedProject(t, db, "proj-add-001", "Parent Project", "Active")

	form := url.Values{}
	form.Set("name", "New Task")
	form.Set("estimated_hours", "3.5")

	w := testutil.DoRequest(router, "POST", "/tasks/add/proj-add-001", form)
	if w.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/?project_id=proj-add-001" {
		t.Errorf("Location = %q", got)
	}

	var task entity.Task
	if err := db.Where("project_id = ?", "proj-add-001").First(&task).Error; err != nil {
		t.Fatalf("task not stored: %v", err)
	}
	if task.Status != entity.TaskStatusToDo || task.Priority != entity.TaskPriorityMedium {
		t.Errorf("defaults not applied: status=%q priority=%q", task.Status, task.Priority)
	}
	if task.EstimatedHours == nil || *task.EstimatedHours != 3.5 {
		t.Errorf("estimated hours = %v", task.EstimatedHours)
	}
}
