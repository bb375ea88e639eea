package ui

import (
	"go.uber.org/zap"
)

// Notifier raises user-visible failure notices. The page layer backs it
// with flash messages.
type Notifier interface {
	Alert(message string)
}

// EntityPayload is decoded, validated entity data ready for form population.
// FormValues returns every field as its final input value: dates already
// normalized to YYYY-MM-DD, absent and null fields as "".
type EntityPayload interface {
	EntityID() string
	FormValues() map[string]string
}

// DecodeFunc parses a raw serialized payload attribute into an EntityPayload.
type DecodeFunc func(raw string) (EntityPayload, error)

// Hydrator populates dialog forms from entity payloads and hands the
// populated dialog to the modal controller. Field population and dialog
// display happen strictly after a successful decode; a dialog is never
// shown for a payload that failed to parse.
type Hydrator struct {
	modals *Controller
	notify Notifier
	log    *zap.Logger
}

func NewHydrator(modals *Controller, notify Notifier, log *zap.Logger) *Hydrator {
	return &Hydrator{modals: modals, notify: notify, log: log}
}

// HydrateRaw decodes the serialized payload and, on success, hydrates and
// shows the surface. On decode failure the dialog stays hidden, one alert
// is raised, and false is returned; the page remains interactive.
func (h *Hydrator) HydrateRaw(surface Surface, raw string, decode DecodeFunc, mapping FieldMap, endpointTemplate string) bool {
	p, err := decode(raw)
	if err != nil {
		h.log.Warn("payload decode failed",
			zap.String("surface", string(surface)),
			zap.Error(err),
		)
		h.notify.Alert("Could not load the selected item. Please reload the page and try again.")
		return false
	}
	h.Hydrate(surface, p, mapping, endpointTemplate)
	return true
}

// Hydrate sets the surface's form action from the id-parameterized endpoint
// template, populates its inputs per the field mapping, and shows the
// dialog. A mapping entry whose input does not exist in the form is a
// configuration error: it is logged and skipped, and the remaining fields
// are still populated so the dialog opens with partial data.
func (h *Hydrator) Hydrate(surface Surface, p EntityPayload, mapping FieldMap, endpointTemplate string) {
	d, ok := h.modals.Dialog(surface)
	if !ok || d.Form == nil {
		h.log.Warn("hydrate requested for unregistered dialog", zap.String("surface", string(surface)))
		return
	}

	d.Form.Action = ExpandEndpoint(endpointTemplate, p.EntityID())

	values := p.FormValues()
	for _, b := range mapping {
		if _, exists := d.Form.Input(b.Input); !exists {
			h.log.Warn("dialog form is missing a mapped input",
				zap.String("surface", string(surface)),
				zap.String("input", b.Input),
				zap.String("key", b.Key),
			)
			continue
		}
		d.Form.SetValue(b.Input, values[b.Key])
	}

	h.modals.Open(surface)
}

// ApplyContext fills the surface's hidden redirect-context input. The
// server-provided id wins; when it is empty the value hydration derived
// from the payload (if any) is kept as the fallback. Both empty is allowed
// and only logged — the server is the final arbiter on submission.
func (h *Hydrator) ApplyContext(surface Surface, input, contextID string) {
	d, ok := h.modals.Dialog(surface)
	if !ok || d.Form == nil {
		return
	}
	if contextID != "" {
		if !d.Form.SetValue(input, contextID) {
			h.log.Warn("redirect-context input missing from dialog form",
				zap.String("surface", string(surface)),
				zap.String("input", input),
			)
		}
		return
	}
	if d.Form.Value(input) == "" {
		h.log.Warn("no redirect context available for dialog",
			zap.String("surface", string(surface)),
		)
	}
}
