package ui

import (
	"strings"
)

// Input is a single named control inside a dialog form.
type Input struct {
	Name  string
	Value string
}

// Form models one dialog's form: a fixed set of named inputs plus the
// submission target. Inputs are created once with the dialog markup and
// only their values change between hydrations.
type Form struct {
	Name   string
	Action string

	inputs map[string]*Input
	order  []string
}

// NewForm creates a form with the given named inputs, all empty.
func NewForm(name string, inputNames ...string) *Form {
	f := &Form{
		Name:   name,
		inputs: make(map[string]*Input, len(inputNames)),
	}
	for _, n := range inputNames {
		f.inputs[n] = &Input{Name: n}
		f.order = append(f.order, n)
	}
	return f
}

// Input returns the named input, or false when the form has no such control.
func (f *Form) Input(name string) (*Input, bool) {
	in, ok := f.inputs[name]
	return in, ok
}

// SetValue sets the named input's value and reports whether the input exists.
func (f *Form) SetValue(name, value string) bool {
	in, ok := f.inputs[name]
	if !ok {
		return false
	}
	in.Value = value
	return true
}

// Value returns the named input's current value, or "" when absent.
func (f *Form) Value(name string) string {
	if in, ok := f.inputs[name]; ok {
		return in.Value
	}
	return ""
}

// Values returns a name→value snapshot of all inputs.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.inputs))
	for name, in := range f.inputs {
		out[name] = in.Value
	}
	return out
}

// Reset sets every input to its value in defaults, or "" when not listed.
func (f *Form) Reset(defaults map[string]string) {
	for _, in := range f.inputs {
		in.Value = defaults[in.Name]
	}
}

// FieldBinding maps one payload key onto one form input.
type FieldBinding struct {
	Key   string // payload field name
	Input string // form input name
}

// FieldMap is the payload-to-form mapping used by the hydrator.
type FieldMap []FieldBinding

// ExpandEndpoint substitutes the entity id into an id-parameterized endpoint
// template such as "/projects/edit/{id}".
func ExpandEndpoint(template, id string) string {
	return strings.ReplaceAll(template, "{id}", id)
}
