package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"taskman/internal/config"
	"taskman/internal/console"
	"taskman/internal/exitcode"
	"taskman/internal/service"
	"taskman/internal/session"
)

func init() {
	RegisterDefault(&SessionCmd{})
}

// SessionCmd implements the session command, the default when no command is given.
type SessionCmd struct {
	plain bool
}

// SetPlain disables banner styling (for testing).
func (c *SessionCmd) SetPlain(plain bool) {
	c.plain = plain
}

func (c *SessionCmd) Name() string      { return "session" }
func (c *SessionCmd) Aliases() []string { return []string{"start"} }
func (c *SessionCmd) Synopsis() string  { return "Start an interactive session" }
func (c *SessionCmd) Usage() string     { return "taskman session [common flags] [--plain]" }
func (c *SessionCmd) NeedsStore() bool  { return true }

func (c *SessionCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.plain, "plain", false, "")
}

func (c *SessionCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	view := console.New(in, out, cfg.Banner, cfg.Color && !c.plain)
	err := session.New(view, svc, cfg.Log).Run(ctx)
	switch {
	case err == nil:
		return exitcode.Success
	case errors.Is(err, console.ErrInputClosed):
		// Keep the transcript on its own line before reporting.
		fmt.Fprintln(out)
		fmt.Fprintln(errOut, "error: input closed")
		return exitcode.IOError
	default:
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}
}
