package service

// Service defines the interface for task store operations.
// Tasks are addressed by their 0-based position in insertion order.
// Positions shift after a delete and are never stable identifiers.
type Service interface {
	// AddTask appends a task to the end of the store.
	AddTask(task *Task)

	// AllTasks returns a snapshot of all tasks in store order.
	// Changing the returned slice does not affect the store.
	AllTasks() []*Task

	// Task returns the task at pos.
	// Returns false if pos is out of range.
	Task(pos int) (*Task, bool)

	// DeleteTask removes the task at pos.
	// Returns false, leaving the store unchanged, if pos is out of range.
	DeleteTask(pos int) bool

	// TaskCount returns the number of stored tasks.
	TaskCount() int
}
