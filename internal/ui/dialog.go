package ui

import (
	"go.uber.org/zap"
)

// Surface identifies one dialog overlay on the page.
type Surface string

const (
	SurfaceEditProject Surface = "edit_project"
	SurfaceEditTask    Surface = "edit_task"
	SurfaceLogTime     Surface = "log_time"
	SurfaceAddProject  Surface = "add_project"
	SurfaceAddTask     Surface = "add_task"
)

// ClickTarget distinguishes where inside a visible dialog a pointer
// interaction landed.
type ClickTarget int

const (
	ClickContent ClickTarget = iota
	ClickScrim
)

// Dialog is one modal surface: fixed markup created once per page load,
// toggled visible/hidden, never destroyed until navigation.
type Dialog struct {
	Surface Surface
	Title   string
	Form    *Form

	// ResetOnOpen dialogs (Log-Time) discard previous values on every
	// open instead of being populated from an entity payload.
	ResetOnOpen bool
	Defaults    map[string]string

	visible bool
}

// Visible reports whether the dialog is currently shown.
func (d *Dialog) Visible() bool {
	return d.visible
}

// Controller owns the visibility lifecycle of all dialog surfaces. Each
// dialog's hidden/visible flag is independent state; opening or closing one
// surface never affects another.
type Controller struct {
	dialogs map[Surface]*Dialog
	log     *zap.Logger
}

// NewController registers the given dialogs, all hidden.
func NewController(log *zap.Logger, dialogs ...*Dialog) *Controller {
	c := &Controller{
		dialogs: make(map[Surface]*Dialog, len(dialogs)),
		log:     log,
	}
	for _, d := range dialogs {
		c.dialogs[d.Surface] = d
	}
	return c
}

// Dialog returns the registered dialog for a surface.
func (c *Controller) Dialog(s Surface) (*Dialog, bool) {
	d, ok := c.dialogs[s]
	return d, ok
}

// Open shows the surface. ResetOnOpen dialogs have their inputs restored to
// defaults first, so stale values from a previous open never leak through.
func (c *Controller) Open(s Surface) bool {
	d, ok := c.dialogs[s]
	if !ok {
		c.log.Warn("open requested for unregistered dialog", zap.String("surface", string(s)))
		return false
	}
	if d.ResetOnOpen && d.Form != nil {
		d.Form.Reset(d.Defaults)
	}
	d.visible = true
	return true
}

// Close hides the surface via its explicit close control.
func (c *Controller) Close(s Surface) {
	if d, ok := c.dialogs[s]; ok {
		d.visible = false
	}
}

// ClickAt handles a pointer interaction on a visible dialog: a click on the
// background scrim closes it, a click inside the content region does not.
func (c *Controller) ClickAt(s Surface, target ClickTarget) {
	d, ok := c.dialogs[s]
	if !ok || !d.visible {
		return
	}
	if target == ClickScrim {
		d.visible = false
	}
}

// Visible reports whether the surface is currently shown.
func (c *Controller) Visible(s Surface) bool {
	d, ok := c.dialogs[s]
	return ok && d.visible
}
