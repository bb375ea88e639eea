package ui

import (
	"testing"

	"go.uber.org/zap"
)

func newTestController() *Controller {
	return NewController(zap.NewNop(),
		&Dialog{
			Surface: SurfaceEditProject,
			Title:   "Edit Project",
			Form:    NewForm("edit_project", "name", "status"),
		},
		&Dialog{
			Surface: SurfaceEditTask,
			Title:   "Edit Task",
			Form:    NewForm("edit_task", "name", "project_id"),
		},
		&Dialog{
			Surface:     SurfaceLogTime,
			Title:       "Log Time",
			Form:        NewForm("log_time", "duration_minutes", "log_date", "notes"),
			ResetOnOpen: true,
			Defaults:    map[string]string{"log_date": "2024-06-01"},
		},
	)
}

func TestControllerOpenClose(t *testing.T) {
	c := newTestController()

	if c.Visible(SurfaceEditProject) {
		t.Fatal("dialogs must start hidden")
	}
	if !c.Open(SurfaceEditProject) {
		t.Fatal("Open failed for registered dialog")
	}
	if !c.Visible(SurfaceEditProject) {
		t.Fatal("dialog not visible after Open")
	}
	c.Close(SurfaceEditProject)
	if c.Visible(SurfaceEditProject) {
		t.Fatal("dialog still visible after Close")
	}
}

func TestControllerOpenUnregistered(t *testing.T) {
	c := newTestController()
	if c.Open(Surface("nonexistent")) {
		t.Fatal("Open must fail for unregistered surface")
	}
}

func TestScrimClickClosesContentClickDoesNot(t *testing.T) {
	c := newTestController()
	c.Open(SurfaceEditTask)

	c.ClickAt(SurfaceEditTask, ClickContent)
	if !c.Visible(SurfaceEditTask) {
		t.Fatal("content click must not close the dialog")
	}

	c.ClickAt(SurfaceEditTask, ClickScrim)
	if c.Visible(SurfaceEditTask) {
		t.Fatal("scrim click must close the dialog")
	}
}

func TestScrimCloseLeavesOtherDialogsAlone(t *testing.T) {
	c := newTestController()
	c.Open(SurfaceEditProject)
	c.Open(SurfaceEditTask)

	c.ClickAt(SurfaceEditTask, ClickScrim)

	if c.Visible(SurfaceEditTask) {
		t.Fatal("clicked dialog should be closed")
	}
	if !c.Visible(SurfaceEditProject) {
		t.Fatal("closing one dialog must not hide another")
	}
}

func TestResetOnOpenDiscardsPreviousValues(t *testing.T) {
	c := newTestController()
	d, _ := c.Dialog(SurfaceLogTime)

	c.Open(SurfaceLogTime)
	d.Form.SetValue("duration_minutes", "90")
	d.Form.SetValue("notes", "first task session")
	c.Close(SurfaceLogTime)

	c.Open(SurfaceLogTime)
	if got := d.Form.Value("duration_minutes"); got != "" {
		t.Errorf("duration leaked across opens: %q", got)
	}
	if got := d.Form.Value("notes"); got != "" {
		t.Errorf("notes leaked across opens: %q", got)
	}
	if got := d.Form.Value("log_date"); got != "2024-06-01" {
		t.Errorf("default not restored, got %q", got)
	}
}

func TestFormValuesSnapshot(t *testing.T) {
	f := NewForm("edit_project", "name", "status")
	f.SetValue("name", "Apollo")

	values := f.Values()
	if values["name"] != "Apollo" || values["status"] != "" {
		t.Errorf("unexpected snapshot: %#v", values)
	}

	if f.SetValue("missing", "x") {
		t.Error("SetValue must report false for unknown inputs")
	}
	if got := f.Value("missing"); got != "" {
		t.Errorf("Value for unknown input = %q, want empty", got)
	}
}

func TestExpandEndpoint(t *testing.T) {
	got := ExpandEndpoint("/projects/edit/{id}", "abc123")
	if got != "/projects/edit/abc123" {
		t.Errorf("ExpandEndpoint = %q", got)
	}
}
