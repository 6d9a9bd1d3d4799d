// Package testutil provides testing utilities.
package testutil

import (
	"errors"
	"fmt"

	"taskman/internal/service"
)

// ErrScriptExhausted is returned when a FakeView runs out of scripted answers.
var ErrScriptExhausted = errors.New("script exhausted")

// FakeView is a scripted implementation of session.View for testing.
// Choices, Inputs and Indexes are consumed in order. Every call is
// appended to Events so tests can assert on the exact interaction.
type FakeView struct {
	Choices []int
	Inputs  []string
	Indexes []int // 0-based, as PromptTaskIndex returns them

	Events   []string
	Messages []string
	Listings [][]string // rendered tasks per ListTasks call
}

// NewFakeView creates a FakeView that answers with the given menu choices.
func NewFakeView(choices ...int) *FakeView {
	return &FakeView{Choices: choices}
}

// ShowMenu implements session.View.
func (f *FakeView) ShowMenu() {
	f.Events = append(f.Events, "menu")
}

// UserChoice implements session.View.
func (f *FakeView) UserChoice() (int, error) {
	if len(f.Choices) == 0 {
		return 0, ErrScriptExhausted
	}
	c := f.Choices[0]
	f.Choices = f.Choices[1:]
	f.Events = append(f.Events, fmt.Sprintf("choice %d", c))
	return c, nil
}

// PromptInput implements session.View.
func (f *FakeView) PromptInput(label string) (string, error) {
	if len(f.Inputs) == 0 {
		return "", ErrScriptExhausted
	}
	s := f.Inputs[0]
	f.Inputs = f.Inputs[1:]
	f.Events = append(f.Events, "input "+label)
	return s, nil
}

// ShowMessage implements session.View.
func (f *FakeView) ShowMessage(msg string) {
	f.Messages = append(f.Messages, msg)
	f.Events = append(f.Events, "message "+msg)
}

// ListTasks implements session.View.
func (f *FakeView) ListTasks(tasks []*service.Task) {
	rendered := make([]string, len(tasks))
	for i, t := range tasks {
		rendered[i] = t.String()
	}
	f.Listings = append(f.Listings, rendered)
	f.Events = append(f.Events, fmt.Sprintf("list %d", len(tasks)))
}

// PromptTaskIndex implements session.View.
// The scripted index is returned as-is, even when it is outside [0,max).
func (f *FakeView) PromptTaskIndex(max int) (int, error) {
	if len(f.Indexes) == 0 {
		return 0, ErrScriptExhausted
	}
	i := f.Indexes[0]
	f.Indexes = f.Indexes[1:]
	f.Events = append(f.Events, fmt.Sprintf("index %d of %d", i, max))
	return i, nil
}
