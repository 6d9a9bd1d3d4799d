// Package service defines the task entity and the interface for the task store.
package service

import "fmt"

// Task represents a single to-do item.
// Fields are only changed through the Edit methods.
type Task struct {
	title       string
	status      string
	importance  string
	description string
}

// NewTask creates a task. Values are stored as given.
func NewTask(title, status, importance, description string) *Task {
	return &Task{
		title:       title,
		status:      status,
		importance:  importance,
		description: description,
	}
}

// Title returns the task title.
func (t *Task) Title() string { return t.title }

// Status returns the free-form status, e.g. "Pending".
func (t *Task) Status() string { return t.status }

// Importance returns the free-form importance, e.g. "High".
func (t *Task) Importance() string { return t.importance }

// Description returns the task description.
func (t *Task) Description() string { return t.description }

// EditTitle replaces the title.
func (t *Task) EditTitle(title string) { t.title = title }

// EditStatus replaces the status.
func (t *Task) EditStatus(status string) { t.status = status }

// EditImportance replaces the importance.
func (t *Task) EditImportance(importance string) { t.importance = importance }

// EditDescription replaces the description.
func (t *Task) EditDescription(description string) { t.description = description }

// String renders the task as a single display line.
// Format: "Title: {T} || Status: {S} || Importance: {I} || Description: {D}"
func (t *Task) String() string {
	return fmt.Sprintf("Title: %s || Status: %s || Importance: %s || Description: %s",
		t.title, t.status, t.importance, t.description)
}
