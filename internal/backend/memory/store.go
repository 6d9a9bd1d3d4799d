// Package memory implements service.Service with a slice held in process memory.
package memory

import (
	"taskman/internal/service"
)

// Store is an in-memory task store for a single session.
// It is not safe for concurrent use.
type Store struct {
	tasks []*service.Task
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// AddTask implements service.Service.
func (s *Store) AddTask(task *service.Task) {
	s.tasks = append(s.tasks, task)
}

// AllTasks implements service.Service.
func (s *Store) AllTasks() []*service.Task {
	result := make([]*service.Task, len(s.tasks))
	copy(result, s.tasks)
	return result
}

// Task implements service.Service.
func (s *Store) Task(pos int) (*service.Task, bool) {
	if !s.valid(pos) {
		return nil, false
	}
	return s.tasks[pos], true
}

// DeleteTask implements service.Service.
func (s *Store) DeleteTask(pos int) bool {
	if !s.valid(pos) {
		return false
	}
	copy(s.tasks[pos:], s.tasks[pos+1:])
	s.tasks[len(s.tasks)-1] = nil
	s.tasks = s.tasks[:len(s.tasks)-1]
	return true
}

// TaskCount implements service.Service.
func (s *Store) TaskCount() int {
	return len(s.tasks)
}

func (s *Store) valid(pos int) bool {
	return pos >= 0 && pos < len(s.tasks)
}
