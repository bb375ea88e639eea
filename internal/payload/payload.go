// Package payload implements the wire representation of entities embedded
// on edit triggers and served by the tasks API: plain JSON objects with
// date-valued fields wrapped as {"$date": <milliseconds since epoch>}.
package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/nani-1205/Project-Management-App/internal/model/entity"
	"github.com/nani-1205/Project-Management-App/internal/ui"
)

// DecodeError reports a malformed serialized payload. It is the explicit
// result of the decode step; hydration consumes it as its early-exit path.
type DecodeError struct {
	Entity string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s payload: %v", e.Entity, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodedDate holds a date field in any of its transport forms: the wrapped
// timestamp structure, a native time, an ISO-ish string, or nothing. It
// defers interpretation to ui.NormalizeDate so that malformed values degrade
// to an empty input instead of failing the whole decode.
type EncodedDate struct {
	value any
}

// DateOf wraps a native time value (nil stays absent).
func DateOf(t *time.Time) EncodedDate {
	if t == nil {
		return EncodedDate{}
	}
	return EncodedDate{value: *t}
}

// Value returns the underlying transport value.
func (d EncodedDate) Value() any {
	return d.value
}

// Normalize renders the date as YYYY-MM-DD, or "" when absent or invalid.
func (d EncodedDate) Normalize() string {
	return ui.NormalizeDate(d.value)
}

func (d *EncodedDate) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	d.value = v
	return nil
}

func (d EncodedDate) MarshalJSON() ([]byte, error) {
	switch t := d.value.(type) {
	case nil:
		return []byte("null"), nil
	case time.Time:
		if t.IsZero() {
			return []byte("null"), nil
		}
		return []byte(fmt.Sprintf(`{"%s":%d}`, "$date", t.UnixMilli())), nil
	default:
		// Round-trip whatever transport form was decoded.
		return json.Marshal(d.value)
	}
}

// ProjectPayload is the serialized form of a project carried on its edit
// trigger.
type ProjectPayload struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	StartDate   EncodedDate `json:"start_date"`
	EndDate     EncodedDate `json:"end_date"`
}

func (p *ProjectPayload) EntityID() string {
	return p.ID
}

// FormValues renders every field as its final input value. Absent and null
// fields are "", never a literal null; dates pass through the normalizer.
func (p *ProjectPayload) FormValues() map[string]string {
	return map[string]string{
		"name":        p.Name,
		"description": p.Description,
		"status":      p.Status,
		"start_date":  p.StartDate.Normalize(),
		"end_date":    p.EndDate.Normalize(),
	}
}

// TaskPayload is the serialized form of a task carried on its edit trigger.
type TaskPayload struct {
	ID             string      `json:"_id"`
	ProjectID      string      `json:"project_id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Status         string      `json:"status"`
	Priority       string      `json:"priority"`
	DueDate        EncodedDate `json:"due_date"`
	EstimatedHours *float64    `json:"estimated_hours"`
	LoggedMinutes  int         `json:"total_logged_minutes"`
}

func (t *TaskPayload) EntityID() string {
	return t.ID
}

// FormValues renders every field as its final input value. A null
// estimated_hours renders as "", not "0" or "null".
func (t *TaskPayload) FormValues() map[string]string {
	hours := ""
	if t.EstimatedHours != nil {
		hours = strconv.FormatFloat(*t.EstimatedHours, 'f', -1, 64)
	}
	return map[string]string{
		"name":            t.Name,
		"description":     t.Description,
		"status":          t.Status,
		"priority":        t.Priority,
		"due_date":        t.DueDate.Normalize(),
		"estimated_hours": hours,
		"project_id":      t.ProjectID,
	}
}

// FromProject serializes a stored project.
func FromProject(p *entity.Project) *ProjectPayload {
	return &ProjectPayload{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		StartDate:   DateOf(p.StartDate),
		EndDate:     DateOf(p.EndDate),
	}
}

// FromTask serializes a stored task.
func FromTask(t *entity.Task) *TaskPayload {
	return &TaskPayload{
		ID:             t.ID,
		ProjectID:      t.ProjectID,
		Name:           t.Name,
		Description:    t.Description,
		Status:         t.Status,
		Priority:       t.Priority,
		DueDate:        DateOf(t.DueDate),
		EstimatedHours: t.EstimatedHours,
		LoggedMinutes:  t.TotalLoggedMinutes,
	}
}

// MarshalProject encodes a project for embedding on its trigger.
func MarshalProject(p *entity.Project) (string, error) {
	b, err := json.Marshal(FromProject(p))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MarshalTask encodes a task for embedding on its trigger.
func MarshalTask(t *entity.Task) (string, error) {
	b, err := json.Marshal(FromTask(t))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MarshalTasks encodes a task list for the JSON API, preserving the
// wrapped-timestamp date convention.
func MarshalTasks(tasks []entity.Task) ([]byte, error) {
	out := make([]*TaskPayload, 0, len(tasks))
	for i := range tasks {
		out = append(out, FromTask(&tasks[i]))
	}
	return json.Marshal(out)
}

// DecodeProject parses a raw project payload attribute.
func DecodeProject(raw string) (*ProjectPayload, *DecodeError) {
	var p ProjectPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, &DecodeError{Entity: "project", Err: err}
	}
	return &p, nil
}

// DecodeTask parses a raw task payload attribute.
func DecodeTask(raw string) (*TaskPayload, *DecodeError) {
	var t TaskPayload
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return nil, &DecodeError{Entity: "task", Err: err}
	}
	return &t, nil
}
