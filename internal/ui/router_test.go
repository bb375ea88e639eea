package ui

import (
	"testing"

	"go.uber.org/zap"
)

func TestRouterDispatch(t *testing.T) {
	r := NewRouter(zap.NewNop())

	var got Trigger
	r.Bind(TriggerEditTask, func(tr Trigger) { got = tr })

	ok := r.Dispatch(Trigger{
		Class:     TriggerEditTask,
		ID:        "task-1",
		Payload:   `{"_id":"task-1"}`,
		ContextID: "proj-1",
	})
	if !ok {
		t.Fatal("Dispatch should report true for a bound class")
	}
	if got.ID != "task-1" || got.ContextID != "proj-1" {
		t.Errorf("handler received wrong trigger: %#v", got)
	}
}

func TestRouterUnboundClassIgnored(t *testing.T) {
	r := NewRouter(zap.NewNop())
	r.Bind(TriggerEditProject, func(Trigger) { t.Fatal("wrong handler invoked") })

	if r.Dispatch(Trigger{Class: TriggerClass("unknown")}) {
		t.Error("unbound class must not dispatch")
	}
}

func TestRouterRebindReplacesHandler(t *testing.T) {
	r := NewRouter(zap.NewNop())

	calls := 0
	r.Bind(TriggerLogTime, func(Trigger) { t.Fatal("stale handler invoked") })
	r.Bind(TriggerLogTime, func(Trigger) { calls++ })

	r.Dispatch(Trigger{Class: TriggerLogTime})
	if calls != 1 {
		t.Errorf("expected 1 call to the latest handler, got %d", calls)
	}
}
