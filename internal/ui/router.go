package ui

import (
	"go.uber.org/zap"
)

// TriggerClass identifies which kind of control the user activated.
type TriggerClass string

const (
	TriggerEditProject TriggerClass = "edit_project"
	TriggerEditTask    TriggerClass = "edit_task"
	TriggerLogTime     TriggerClass = "log_time"
	TriggerAddProject  TriggerClass = "add_project"
	TriggerAddTask     TriggerClass = "add_task"
)

// Trigger carries the identifying attributes of an activated control: the
// entity id, its serialized payload, a display name, and the redirect
// context (the originating project id threaded through task-level dialogs).
type Trigger struct {
	Class     TriggerClass
	ID        string
	Payload   string
	Label     string
	ContextID string
}

// TriggerHandler reacts to one trigger class.
type TriggerHandler func(Trigger)

// Router dispatches trigger activations to their handlers. Triggers live
// inside collections that are re-rendered wholesale on every navigation, so
// handlers are bound once here — the stable dispatch point — and resolved
// per activation instead of being attached to individual controls.
type Router struct {
	handlers map[TriggerClass]TriggerHandler
	log      *zap.Logger
}

func NewRouter(log *zap.Logger) *Router {
	return &Router{
		handlers: make(map[TriggerClass]TriggerHandler),
		log:      log,
	}
}

// Bind registers the handler for a trigger class.
func (r *Router) Bind(class TriggerClass, h TriggerHandler) {
	r.handlers[class] = h
}

// Dispatch resolves the trigger's class and invokes its handler. An
// activation matching no bound class is ignored, not an error.
func (r *Router) Dispatch(t Trigger) bool {
	h, ok := r.handlers[t.Class]
	if !ok {
		r.log.Debug("unhandled trigger", zap.String("class", string(t.Class)))
		return false
	}
	h(t)
	return true
}
