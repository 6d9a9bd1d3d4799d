// Package output provides formatters for session output.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"taskman/internal/service"
)

const (
	// NoTasks is printed in place of an empty task list.
	NoTasks = "No tasks available."
)

// MenuOptions are the numbered session actions, in choice order.
var MenuOptions = []string{
	"Create a Task",
	"Edit a Task",
	"Delete a Task",
	"List Tasks",
	"End Session",
}

// Styles holds lipgloss styles bound to one output writer.
// Writers that are not terminals render plain text.
type Styles struct {
	Banner lipgloss.Style
}

// NewStyles creates styles for w. If color is false, all styling is dropped.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		Banner: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF")),
	}
}

// FormatMenu writes the banner and the numbered options.
// Format: "\n=== {BANNER} ===\n\n" then "{N}. {OPTION}\n" per option.
func FormatMenu(w io.Writer, st Styles, banner string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, st.Banner.Render("=== "+banner+" ==="))
	fmt.Fprintln(w)
	for i, opt := range MenuOptions {
		fmt.Fprintf(w, "%d. %s\n", i+1, opt)
	}
}

// FormatTask formats a task line for the numbered list.
// Format: "{N}: {TASK}\n"
func FormatTask(w io.Writer, num int, task *service.Task) {
	fmt.Fprintf(w, "%d: %s\n", num, task)
}

// FormatTaskList writes every task numbered from 1, or NoTasks if empty.
func FormatTaskList(w io.Writer, tasks []*service.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, NoTasks)
		return
	}
	for i, task := range tasks {
		FormatTask(w, i+1, task)
	}
}
