// Package session runs the interactive menu loop over a task store.
package session

import (
	"context"

	"taskman/internal/logging"
	"taskman/internal/service"
)

// Menu choices returned by View.UserChoice.
const (
	ChoiceCreate = 1
	ChoiceEdit   = 2
	ChoiceDelete = 3
	ChoiceList   = 4
	ChoiceEnd    = 5
)

// Messages shown to the user.
const (
	MsgCreated      = "Task created successfully!"
	MsgUpdated      = "Task updated successfully!"
	MsgDeleted      = "Task deleted successfully!"
	MsgDeleteFailed = "Failed to delete task."
	MsgNoneToEdit   = "No tasks to edit."
	MsgNoneToDelete = "No tasks to delete."
	MsgGoodbye      = "Ending session.. Goodbye!"
)

// Field prompts passed to View.PromptInput.
const (
	LabelTitle       = "Title"
	LabelStatus      = "Status (Pending, Completed, etc)"
	LabelImportance  = "Importance (Low, Med, High)"
	LabelDescription = "Description"
)

// View is the interaction layer used by the Controller.
// Implementations validate all input; the Controller never re-prompts.
type View interface {
	// ShowMenu displays the numbered session actions.
	ShowMenu()

	// UserChoice blocks until a choice in [1,5] is entered.
	UserChoice() (int, error)

	// PromptInput shows "Enter {label}: " and returns the next line verbatim.
	PromptInput(label string) (string, error)

	// ShowMessage displays msg as a line.
	ShowMessage(msg string)

	// ListTasks displays tasks numbered from 1.
	ListTasks(tasks []*service.Task)

	// PromptTaskIndex blocks until a number in [1,max] is entered.
	// Returns the 0-based position.
	PromptTaskIndex(max int) (int, error)
}

// Controller sequences View input and store operations.
type Controller struct {
	view  View
	store service.Service
	log   *logging.Logger
}

// New creates a Controller. log may be nil.
func New(view View, store service.Service, log *logging.Logger) *Controller {
	return &Controller{
		view:  view,
		store: store,
		log:   log,
	}
}

// Run loops until the user ends the session.
// Returns nil after ChoiceEnd, or the first View or context error.
func (c *Controller) Run(ctx context.Context) error {
	running := true
	for running {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.view.ShowMenu()
		choice, err := c.view.UserChoice()
		if err != nil {
			return err
		}
		c.log.Printf("choice=%d tasks=%d", choice, c.store.TaskCount())

		switch choice {
		case ChoiceCreate:
			err = c.createTask()
		case ChoiceEdit:
			err = c.editTask()
		case ChoiceDelete:
			err = c.deleteTask()
		case ChoiceList:
			c.listTasks()
		case ChoiceEnd:
			c.view.ShowMessage(MsgGoodbye)
			running = false
		}
		if err != nil {
			return err
		}
	}
	c.log.Printf("session ended tasks=%d", c.store.TaskCount())
	return nil
}

func (c *Controller) createTask() error {
	fields, err := c.promptFields("")
	if err != nil {
		return err
	}

	c.store.AddTask(service.NewTask(fields[0], fields[1], fields[2], fields[3]))
	c.log.Printf("added task at position %d", c.store.TaskCount()-1)

	c.view.ShowMessage(MsgCreated)
	return nil
}

func (c *Controller) editTask() error {
	if c.store.TaskCount() == 0 {
		c.view.ShowMessage(MsgNoneToEdit)
		return nil
	}

	c.listTasks()
	pos, err := c.view.PromptTaskIndex(c.store.TaskCount())
	if err != nil {
		return err
	}
	task, ok := c.store.Task(pos)
	if !ok {
		c.log.Printf("edit: no task at position %d", pos)
		return nil
	}

	fields, err := c.promptFields("New ")
	if err != nil {
		return err
	}
	task.EditTitle(fields[0])
	task.EditStatus(fields[1])
	task.EditImportance(fields[2])
	task.EditDescription(fields[3])
	c.log.Printf("edited task at position %d", pos)

	c.view.ShowMessage(MsgUpdated)
	return nil
}

func (c *Controller) deleteTask() error {
	if c.store.TaskCount() == 0 {
		c.view.ShowMessage(MsgNoneToDelete)
		return nil
	}

	c.listTasks()
	pos, err := c.view.PromptTaskIndex(c.store.TaskCount())
	if err != nil {
		return err
	}

	if c.store.DeleteTask(pos) {
		c.log.Printf("deleted task at position %d", pos)
		c.view.ShowMessage(MsgDeleted)
	} else {
		c.log.Printf("delete: no task at position %d", pos)
		c.view.ShowMessage(MsgDeleteFailed)
	}
	return nil
}

func (c *Controller) listTasks() {
	c.view.ListTasks(c.store.AllTasks())
}

// promptFields reads title, status, importance and description, in that order.
// prefix is prepended to each label, e.g. "New ".
func (c *Controller) promptFields(prefix string) ([4]string, error) {
	var fields [4]string
	labels := [4]string{LabelTitle, LabelStatus, LabelImportance, LabelDescription}
	for i, label := range labels {
		value, err := c.view.PromptInput(prefix + label)
		if err != nil {
			return fields, err
		}
		fields[i] = value
	}
	return fields, nil
}
