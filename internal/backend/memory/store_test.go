package memory_test

import (
	"testing"

	"taskman/internal/backend/memory"
	"taskman/internal/service"
)

// Compile-time check that Store satisfies the service interface.
var _ service.Service = (*memory.Store)(nil)

func addTitles(s *memory.Store, titles ...string) []*service.Task {
	added := make([]*service.Task, 0, len(titles))
	for _, title := range titles {
		task := service.NewTask(title, "Pending", "Low", "")
		s.AddTask(task)
		added = append(added, task)
	}
	return added
}

func TestStore_EmptyByDefault(t *testing.T) {
	s := memory.New()

	if s.TaskCount() != 0 {
		t.Errorf("expected count 0, got %d", s.TaskCount())
	}
	all := s.AllTasks()
	if all == nil || len(all) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", all)
	}
	if _, ok := s.Task(0); ok {
		t.Error("expected no task at position 0")
	}
}

func TestStore_CountAfterAdds(t *testing.T) {
	s := memory.New()
	for n := 1; n <= 5; n++ {
		s.AddTask(service.NewTask("t", "", "", ""))
		if s.TaskCount() != n {
			t.Fatalf("after %d adds expected count %d, got %d", n, n, s.TaskCount())
		}
	}
}

func TestStore_TaskReturnsStoredIdentity(t *testing.T) {
	s := memory.New()
	added := addTitles(s, "a", "b", "c")

	for i, want := range added {
		got, ok := s.Task(i)
		if !ok {
			t.Fatalf("expected task at position %d", i)
		}
		if got != want {
			t.Errorf("position %d: expected %p, got %p", i, want, got)
		}
	}
}

func TestStore_TaskInvalidPositions(t *testing.T) {
	s := memory.New()
	addTitles(s, "a", "b")

	for _, pos := range []int{-1, -100, 2, 3, 1 << 20} {
		if task, ok := s.Task(pos); ok || task != nil {
			t.Errorf("position %d: expected absence, got %v, %v", pos, task, ok)
		}
	}
}

func TestStore_BuyMilkRendering(t *testing.T) {
	s := memory.New()
	s.AddTask(service.NewTask("Buy milk", "Pending", "Low", ""))

	if s.TaskCount() != 1 {
		t.Fatalf("expected count 1, got %d", s.TaskCount())
	}
	task, ok := s.Task(0)
	if !ok {
		t.Fatal("expected task at position 0")
	}
	expected := "Title: Buy milk || Status: Pending || Importance: Low || Description: "
	if task.String() != expected {
		t.Errorf("expected %q, got %q", expected, task.String())
	}
}

func TestStore_DeleteFirstOfTwo(t *testing.T) {
	s := memory.New()
	added := addTitles(s, "first", "second")

	if !s.DeleteTask(0) {
		t.Fatal("expected delete to succeed")
	}
	if s.TaskCount() != 1 {
		t.Fatalf("expected count 1, got %d", s.TaskCount())
	}
	got, ok := s.Task(0)
	if !ok || got != added[1] {
		t.Errorf("expected second task at position 0, got %v", got)
	}
}

func TestStore_DeleteShiftsLaterPositions(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		want []string
	}{
		{"first", 0, []string{"b", "c", "d"}},
		{"middle", 1, []string{"a", "c", "d"}},
		{"last", 3, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := memory.New()
			addTitles(s, "a", "b", "c", "d")

			if !s.DeleteTask(tt.pos) {
				t.Fatalf("expected delete at %d to succeed", tt.pos)
			}
			if s.TaskCount() != len(tt.want) {
				t.Fatalf("expected count %d, got %d", len(tt.want), s.TaskCount())
			}
			for i, title := range tt.want {
				task, ok := s.Task(i)
				if !ok {
					t.Fatalf("expected task at position %d", i)
				}
				if task.Title() != title {
					t.Errorf("position %d: expected %q, got %q", i, title, task.Title())
				}
			}
		})
	}
}

func TestStore_DeleteInvalidLeavesStoreUnchanged(t *testing.T) {
	s := memory.New()
	added := addTitles(s, "a", "b", "c")

	for _, pos := range []int{-1, 3, 10} {
		if s.DeleteTask(pos) {
			t.Errorf("position %d: expected delete to fail", pos)
		}
	}

	if s.TaskCount() != 3 {
		t.Fatalf("expected count 3, got %d", s.TaskCount())
	}
	for i, want := range added {
		got, _ := s.Task(i)
		if got != want {
			t.Errorf("position %d changed after failed delete", i)
		}
	}
}

func TestStore_DeleteOnEmpty(t *testing.T) {
	s := memory.New()
	if s.DeleteTask(0) {
		t.Error("expected delete on empty store to fail")
	}
}

func TestStore_AllTasksIsSnapshot(t *testing.T) {
	s := memory.New()
	added := addTitles(s, "a", "b")

	all := s.AllTasks()
	all = append(all, service.NewTask("extra", "", "", ""))
	all[0] = nil

	if s.TaskCount() != 2 {
		t.Errorf("expected count 2 after changing snapshot, got %d", s.TaskCount())
	}
	got, _ := s.Task(0)
	if got != added[0] {
		t.Error("changing the snapshot replaced a stored task")
	}
}

func TestStore_AllTasksOrder(t *testing.T) {
	s := memory.New()
	addTitles(s, "a", "b", "c")
	s.DeleteTask(1)
	addTitles(s, "d")

	all := s.AllTasks()
	want := []string{"a", "c", "d"}
	if len(all) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(all))
	}
	for i, title := range want {
		if all[i].Title() != title {
			t.Errorf("position %d: expected %q, got %q", i, title, all[i].Title())
		}
	}
}

func TestStore_EditThroughTaskIsVisible(t *testing.T) {
	s := memory.New()
	addTitles(s, "a")

	task, _ := s.Task(0)
	task.EditTitle("renamed")

	again, _ := s.Task(0)
	if again.Title() != "renamed" {
		t.Errorf("expected edit to be visible in store, got %q", again.Title())
	}
}
