package ui

import (
	"errors"
	"testing"

	"go.uber.org/zap"
)

// stubPayload is a minimal EntityPayload for hydration tests.
type stubPayload struct {
	id     string
	values map[string]string
}

func (s *stubPayload) EntityID() string               { return s.id }
func (s *stubPayload) FormValues() map[string]string  { return s.values }

type countingNotifier struct {
	alerts []string
}

func (n *countingNotifier) Alert(msg string) {
	n.alerts = append(n.alerts, msg)
}

var taskBindings = FieldMap{
	{Key: "name", Input: "name"},
	{Key: "due_date", Input: "due_date"},
	{Key: "estimated_hours", Input: "estimated_hours"},
}

func newHydrateFixture() (*Controller, *Hydrator, *countingNotifier) {
	modals := NewController(zap.NewNop(),
		&Dialog{
			Surface: SurfaceEditTask,
			Form:    NewForm("edit_task", "name", "due_date", "estimated_hours", "project_id"),
		},
		&Dialog{
			Surface: SurfaceEditProject,
			Form:    NewForm("edit_project", "name", "status"),
		},
	)
	notify := &countingNotifier{}
	return modals, NewHydrator(modals, notify, zap.NewNop()), notify
}

func TestHydratePopulatesAndShows(t *testing.T) {
	modals, h, _ := newHydrateFixture()

	h.Hydrate(SurfaceEditTask, &stubPayload{
		id: "task-9",
		values: map[string]string{
			"name":            "Wire the API",
			"due_date":        "2024-05-01",
			"estimated_hours": "2.5",
		},
	}, taskBindings, "/tasks/edit/{id}")

	if !modals.Visible(SurfaceEditTask) {
		t.Fatal("dialog not shown after hydration")
	}
	d, _ := modals.Dialog(SurfaceEditTask)
	if d.Form.Action != "/tasks/edit/task-9" {
		t.Errorf("action = %q", d.Form.Action)
	}
	if got := d.Form.Value("name"); got != "Wire the API" {
		t.Errorf("name = %q", got)
	}
	if got := d.Form.Value("due_date"); got != "2024-05-01" {
		t.Errorf("due_date = %q", got)
	}
}

func TestHydrateNilOptionalRendersEmpty(t *testing.T) {
	modals, h, _ := newHydrateFixture()

	// A payload with null estimated_hours presents it as "".
	h.Hydrate(SurfaceEditTask, &stubPayload{
		id: "task-1",
		values: map[string]string{
			"name":            "No estimate",
			"due_date":        "",
			"estimated_hours": "",
		},
	}, taskBindings, "/tasks/edit/{id}")

	d, _ := modals.Dialog(SurfaceEditTask)
	if got := d.Form.Value("estimated_hours"); got != "" {
		t.Errorf("estimated_hours = %q, want empty", got)
	}
}

func TestHydrateMissingInputSkipsAndStillOpens(t *testing.T) {
	modals, h, _ := newHydrateFixture()

	bindings := append(FieldMap{}, taskBindings...)
	bindings = append(bindings, FieldBinding{Key: "priority", Input: "priority"})

	h.Hydrate(SurfaceEditTask, &stubPayload{
		id: "task-2",
		values: map[string]string{
			"name":     "Partial",
			"priority": "High",
		},
	}, bindings, "/tasks/edit/{id}")

	if !modals.Visible(SurfaceEditTask) {
		t.Fatal("dialog must still open with partial data")
	}
	d, _ := modals.Dialog(SurfaceEditTask)
	if got := d.Form.Value("name"); got != "Partial" {
		t.Errorf("remaining fields must still populate, name = %q", got)
	}
}

func TestHydrateRawDecodeFailure(t *testing.T) {
	modals, h, notify := newHydrateFixture()

	failing := func(raw string) (EntityPayload, error) {
		return nil, errors.New("unexpected end of JSON input")
	}

	ok := h.HydrateRaw(SurfaceEditTask, "{invalid", failing, taskBindings, "/tasks/edit/{id}")
	if ok {
		t.Fatal("HydrateRaw must report failure")
	}
	if modals.Visible(SurfaceEditTask) {
		t.Fatal("dialog must stay hidden when decode fails")
	}
	if len(notify.alerts) != 1 {
		t.Fatalf("expected exactly one alert, got %d", len(notify.alerts))
	}
}

func TestHydrateRawSuccessPath(t *testing.T) {
	modals, h, notify := newHydrateFixture()

	decode := func(raw string) (EntityPayload, error) {
		return &stubPayload{id: "p-1", values: map[string]string{"name": raw, "status": "Active"}}, nil
	}

	ok := h.HydrateRaw(SurfaceEditProject, "Apollo", decode, FieldMap{
		{Key: "name", Input: "name"},
		{Key: "status", Input: "status"},
	}, "/projects/edit/{id}")
	if !ok {
		t.Fatal("HydrateRaw must report success")
	}
	if !modals.Visible(SurfaceEditProject) {
		t.Fatal("dialog not shown")
	}
	if len(notify.alerts) != 0 {
		t.Errorf("no alerts expected, got %v", notify.alerts)
	}
}

func TestApplyContextServerIDWins(t *testing.T) {
	modals, h, _ := newHydrateFixture()
	d, _ := modals.Dialog(SurfaceEditTask)
	d.Form.SetValue("project_id", "from-payload")

	h.ApplyContext(SurfaceEditTask, "project_id", "from-server")
	if got := d.Form.Value("project_id"); got != "from-server" {
		t.Errorf("project_id = %q, want server value", got)
	}
}

func TestApplyContextFallbackKept(t *testing.T) {
	modals, h, _ := newHydrateFixture()
	d, _ := modals.Dialog(SurfaceEditTask)
	d.Form.SetValue("project_id", "from-payload")

	h.ApplyContext(SurfaceEditTask, "project_id", "")
	if got := d.Form.Value("project_id"); got != "from-payload" {
		t.Errorf("project_id = %q, want payload-derived fallback", got)
	}
}

func TestLogTimeDoubleOpenNoLeakage(t *testing.T) {
	modals := NewController(zap.NewNop(), &Dialog{
		Surface:     SurfaceLogTime,
		Form:        NewForm("log_time", "duration_minutes", "notes", "project_id"),
		ResetOnOpen: true,
	})

	// First task: open, type, close.
	modals.Open(SurfaceLogTime)
	d, _ := modals.Dialog(SurfaceLogTime)
	d.Form.Action = ExpandEndpoint("/tasks/log_time/{id}", "task-a")
	d.Form.SetValue("duration_minutes", "45")
	d.Form.SetValue("notes", "task a work")
	modals.Close(SurfaceLogTime)

	// Second task: open again.
	modals.Open(SurfaceLogTime)
	d.Form.Action = ExpandEndpoint("/tasks/log_time/{id}", "task-b")

	if d.Form.Action != "/tasks/log_time/task-b" {
		t.Errorf("action = %q", d.Form.Action)
	}
	if got := d.Form.Value("duration_minutes"); got != "" {
		t.Errorf("duration from first open leaked: %q", got)
	}
	if got := d.Form.Value("notes"); got != "" {
		t.Errorf("notes from first open leaked: %q", got)
	}
}
