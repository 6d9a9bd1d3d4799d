// Package console implements session.View over line-oriented text streams.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"taskman/internal/output"
	"taskman/internal/service"
)

// ErrInputClosed is returned when the input stream ends before a line is read.
var ErrInputClosed = errors.New("input closed")

const (
	choicePrompt  = "Enter your choice: "
	invalidChoice = "Sorry, invalid input. Please choose a number between 1 and 5."
	invalidIndex  = "Invalid input."
)

// View reads answers from in and writes prompts and messages to out.
type View struct {
	in     *bufio.Reader
	out    io.Writer
	styles output.Styles
	banner string
}

// New creates a View. banner is the menu title; color enables styling
// when out is a terminal.
func New(in io.Reader, out io.Writer, banner string, color bool) *View {
	return &View{
		in:     bufio.NewReader(in),
		out:    out,
		styles: output.NewStyles(out, color),
		banner: banner,
	}
}

// ShowMenu implements session.View.
func (v *View) ShowMenu() {
	output.FormatMenu(v.out, v.styles, v.banner)
}

// UserChoice implements session.View.
func (v *View) UserChoice() (int, error) {
	for {
		fmt.Fprint(v.out, choicePrompt)
		line, err := v.readLine()
		if err != nil {
			return 0, err
		}
		if n, ok := parseInRange(line, 1, 5); ok {
			return n, nil
		}
		fmt.Fprintln(v.out, invalidChoice)
	}
}

// PromptInput implements session.View.
func (v *View) PromptInput(label string) (string, error) {
	fmt.Fprintf(v.out, "Enter %s: ", label)
	return v.readLine()
}

// ShowMessage implements session.View.
func (v *View) ShowMessage(msg string) {
	fmt.Fprintln(v.out, msg)
}

// ListTasks implements session.View.
func (v *View) ListTasks(tasks []*service.Task) {
	output.FormatTaskList(v.out, tasks)
}

// PromptTaskIndex implements session.View.
func (v *View) PromptTaskIndex(max int) (int, error) {
	for {
		fmt.Fprintf(v.out, "Enter task number (1-%d): ", max)
		line, err := v.readLine()
		if err != nil {
			return 0, err
		}
		if n, ok := parseInRange(line, 1, max); ok {
			return n - 1, nil
		}
		fmt.Fprintln(v.out, invalidIndex)
	}
}

// readLine returns the next line without its terminator.
// A final line with no trailing newline is still returned.
func (v *View) readLine() (string, error) {
	line, err := v.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("console: read: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// parseInRange parses s as a base-10 integer and checks lo <= n <= hi.
// Surrounding whitespace makes s invalid.
func parseInRange(s string, lo, hi int) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		return 0, false
	}
	return n, true
}
