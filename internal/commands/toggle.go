package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"dashboard/internal/config"
	"dashboard/internal/exitcode"
	"dashboard/internal/output"
	"dashboard/internal/service"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string       { return "toggle" }
func (c *ToggleCmd) Aliases() []string  { return []string{"done"} }
func (c *ToggleCmd) Synopsis() string   { return "Toggle task completion" }
func (c *ToggleCmd) Usage() string      { return "dashboard toggle <id...>" }
func (c *ToggleCmd) NeedsService() bool { return true }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	ids, err := ParseTaskIDs(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	for _, id := range ids {
		if err := svc.ToggleTask(ctx, id); err != nil {
			if errors.Is(err, service.ErrTaskNotFound) {
				fmt.Fprintf(errOut, "error: task not found: %d\n", id)
				return exitcode.UserError
			}
			fmt.Fprintf(errOut, "error: failed to toggle task %d: %v\n", id, err)
			return exitcode.DataError
		}
		cfg.Debugf("toggled task %d", id)
	}

	if cfg.Quiet {
		return exitcode.Success
	}
	tasks, err := svc.Tasks(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: failed to read tasks: %v\n", err)
		return exitcode.DataError
	}
	output.FormatTasks(out, tasks)
	return exitcode.Success
}
